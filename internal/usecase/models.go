package usecase

import (
	"time"

	"github.com/DRSN-tech/lca-catalog/internal/domain"
)

// IMPORT USECASE

// ImportProductsReq — запрос на массовую загрузку продуктов из таблицы.
type ImportProductsReq struct {
	AccountID string
	FileName  string
	Extension string // ".csv", ".xlsx", ".xlsm"
	Data      []byte
	SheetName string
	Mapping   domain.FieldMapping
}

// ImportProductsRes — созданные записи и коды, которые уже были в каталоге.
type ImportProductsRes struct {
	Products     []domain.Product
	SkippedCodes []string
}

// Table — разобранный табличный файл. Ячейки и заголовки уже обрезаны.
type Table struct {
	Headers []string
	Rows    [][]string
}

// IMAGES USECASE

// DistributeImagesReq — архив с папками по кодам продуктов.
type DistributeImagesReq struct {
	AccountID string
	FileName  string
	Origin    string // Origin запроса, определяет хост загрузки
	Archive   []byte
}

// DistributeImagesRes — итог обработки архива.
type DistributeImagesRes struct {
	Uploaded       int
	Linked         int
	UnmatchedCodes []string
}

// CLASSIFICATION USECASE

type TriggerRes struct {
	Dispatched int
}

// ClassificationEvent публикуется после финальной записи статуса продукта.
type ClassificationEvent struct {
	EventID     string
	ProductID   int64
	AccountID   string
	Code        string
	Status      domain.AIStatus
	Category    string
	SubCategory string
	CO2Emission float64
	OccurredAt  time.Time
}

// INFRASTRUCTURE

type UploadImageReq struct {
	Image  *domain.Image
	Origin string
}

type UploadImageRes struct {
	URL string
}

type ClassifyProductReq struct {
	Code        string
	Name        string
	Description string
}

type ClassifyBOMReq struct {
	Code        string
	Name        string
	Description string
	Weight      *float64
}

type ClassifyProcessReq struct {
	Code        string
	Name        string
	Description string
	Materials   []domain.Material
}

// MAPPERS

func NewImportProductsRes(products []domain.Product, skipped []string) *ImportProductsRes {
	return &ImportProductsRes{
		Products:     products,
		SkippedCodes: skipped,
	}
}

func NewDistributeImagesRes(uploaded, linked int, unmatched []string) *DistributeImagesRes {
	return &DistributeImagesRes{
		Uploaded:       uploaded,
		Linked:         linked,
		UnmatchedCodes: unmatched,
	}
}

func NewTriggerRes(dispatched int) *TriggerRes {
	return &TriggerRes{Dispatched: dispatched}
}

func NewUploadImageReq(image *domain.Image, origin string) *UploadImageReq {
	return &UploadImageReq{
		Image:  image,
		Origin: origin,
	}
}

func NewUploadImageRes(url string) *UploadImageRes {
	return &UploadImageRes{URL: url}
}

func NewClassifyProductReq(p *domain.Product) *ClassifyProductReq {
	return &ClassifyProductReq{
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
	}
}

func NewClassifyBOMReq(p *domain.Product) *ClassifyBOMReq {
	return &ClassifyBOMReq{
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Weight:      p.Weight,
	}
}

func NewClassifyProcessReq(p *domain.Product, materials []domain.Material) *ClassifyProcessReq {
	return &ClassifyProcessReq{
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Materials:   materials,
	}
}

func NewClassificationEvent(eventID string, p *domain.Product, status domain.AIStatus, res *domain.ClassificationResult, at time.Time) *ClassificationEvent {
	ev := &ClassificationEvent{
		EventID:    eventID,
		ProductID:  p.ID,
		AccountID:  p.AccountID,
		Code:       p.Code,
		Status:     status,
		OccurredAt: at,
	}
	if res != nil && status == domain.AIStatusCompleted {
		ev.Category = res.Classification.Category
		ev.SubCategory = res.Classification.SubCategory
		ev.CO2Emission = res.Emissions.Total
	}

	return ev
}
