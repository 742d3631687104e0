package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID                   int64      `db:"id"`
	AccountID            string     `db:"account_id"`
	Code                 string     `db:"code"`
	Name                 string     `db:"name"`
	Description          string     `db:"description"`
	Weight               *float64   `db:"weight"`
	CountryOfOrigin      *string    `db:"country_of_origin"`
	SupplierName         *string    `db:"supplier_name"`
	Category             *string    `db:"category"`
	SubCategory          *string    `db:"sub_category"`
	Images               []string   `db:"images"`
	Materials            []byte     `db:"materials"`             // jsonb
	ManufacturingProcess []byte     `db:"manufacturing_process"` // jsonb
	CO2Emission          *float64   `db:"co2_emission"`
	CO2EmissionRawMat    *float64   `db:"co2_emission_raw_materials"`
	CO2EmissionProcesses *float64   `db:"co2_emission_processes"`
	AIProcessingStatus   string     `db:"ai_processing_status"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            *time.Time `db:"updated_at"`
}

// ScanDest возвращает указатели на поля в порядке ProductColumns.
func (m *ProductModel) ScanDest() []any {
	return []any{
		&m.ID, &m.AccountID, &m.Code, &m.Name, &m.Description, &m.Weight,
		&m.CountryOfOrigin, &m.SupplierName, &m.Category, &m.SubCategory,
		&m.Images, &m.Materials, &m.ManufacturingProcess,
		&m.CO2Emission, &m.CO2EmissionRawMat, &m.CO2EmissionProcesses,
		&m.AIProcessingStatus, &m.CreatedAt, &m.UpdatedAt,
	}
}

// ProductColumns — список колонок для RETURNING и SELECT.
const ProductColumns = `id, account_id, code, name, description, weight,
	country_of_origin, supplier_name, category, sub_category,
	images, materials, manufacturing_process,
	co2_emission, co2_emission_raw_materials, co2_emission_processes,
	ai_processing_status, created_at, updated_at`
