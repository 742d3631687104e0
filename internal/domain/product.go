package domain

import "time"

// AIStatus — состояние AI-обогащения записи продукта.
type AIStatus string

const (
	AIStatusPending    AIStatus = "pending"
	AIStatusProcessing AIStatus = "processing"
	AIStatusCompleted  AIStatus = "completed"
	AIStatusFailed     AIStatus = "failed"
)

// Terminal сообщает, что из статуса нет дальнейших переходов.
func (s AIStatus) Terminal() bool {
	return s == AIStatusCompleted || s == AIStatusFailed
}

// Product описывает продукт каталога LCA
type Product struct {
	ID          int64
	AccountID   string
	Code        string // бизнес-ключ, уникален в рамках аккаунта
	Name        string
	Description string
	Weight      *float64 // кг

	CountryOfOrigin string
	SupplierName    string
	Category        string
	SubCategory     string

	Images               []string
	Materials            []Material
	ManufacturingProcess []ManufacturingProcess
	CO2Emission          float64
	CO2EmissionRawMat    float64
	CO2EmissionProcesses float64
	AIProcessingStatus   AIStatus
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}

func NewProduct(accountID, code, name, description string) *Product {
	return &Product{
		AccountID:          accountID,
		Code:               code,
		Name:               name,
		Description:        description,
		AIProcessingStatus: AIStatusPending,
	}
}
