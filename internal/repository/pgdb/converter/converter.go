package converter

import (
	"encoding/json"

	"github.com/DRSN-tech/lca-catalog/internal/domain"
	"github.com/samber/lo"
)

// ProductConverter преобразует Product между domain и моделью PostgreSQL.
type ProductConverter struct{}

func NewProductConverter() ProductConverter {
	return ProductConverter{}
}

func (ProductConverter) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:                 entity.ID,
		AccountID:          entity.AccountID,
		Code:               entity.Code,
		Name:               entity.Name,
		Description:        entity.Description,
		Weight:             entity.Weight,
		CountryOfOrigin:    lo.EmptyableToPtr(entity.CountryOfOrigin),
		SupplierName:       lo.EmptyableToPtr(entity.SupplierName),
		Category:           lo.EmptyableToPtr(entity.Category),
		SubCategory:        lo.EmptyableToPtr(entity.SubCategory),
		Images:             lo.Ternary(entity.Images == nil, []string{}, entity.Images),
		AIProcessingStatus: string(entity.AIProcessingStatus),
		CreatedAt:          entity.CreatedAt,
		UpdatedAt:          entity.UpdatedAt,
	}
}

// ToEntity не падает на битом jsonb: такие поля остаются пустыми.
func (ProductConverter) ToEntity(model *ProductModel) *domain.Product {
	p := &domain.Product{
		ID:                   model.ID,
		AccountID:            model.AccountID,
		Code:                 model.Code,
		Name:                 model.Name,
		Description:          model.Description,
		Weight:               model.Weight,
		CountryOfOrigin:      lo.FromPtr(model.CountryOfOrigin),
		SupplierName:         lo.FromPtr(model.SupplierName),
		Category:             lo.FromPtr(model.Category),
		SubCategory:          lo.FromPtr(model.SubCategory),
		Images:               model.Images,
		CO2Emission:          lo.FromPtr(model.CO2Emission),
		CO2EmissionRawMat:    lo.FromPtr(model.CO2EmissionRawMat),
		CO2EmissionProcesses: lo.FromPtr(model.CO2EmissionProcesses),
		AIProcessingStatus:   domain.AIStatus(model.AIProcessingStatus),
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}

	if len(model.Materials) > 0 {
		_ = json.Unmarshal(model.Materials, &p.Materials)
	}
	if len(model.ManufacturingProcess) > 0 {
		_ = json.Unmarshal(model.ManufacturingProcess, &p.ManufacturingProcess)
	}

	return p
}

func (c ProductConverter) ToArrEntity(models []*ProductModel) []domain.Product {
	return lo.Map(models, func(m *ProductModel, _ int) domain.Product {
		return *c.ToEntity(m)
	})
}

// ClassificationJSON сериализует BOM и процессы для jsonb-колонок.
// nil-срезы записываются как пустой массив.
func ClassificationJSON(res *domain.ClassificationResult) (materials, processes []byte, err error) {
	materials, err = json.Marshal(lo.Ternary(res.Materials == nil, []domain.Material{}, res.Materials))
	if err != nil {
		return nil, nil, err
	}

	processes, err = json.Marshal(lo.Ternary(res.ManufacturingProcess == nil, []domain.ManufacturingProcess{}, res.ManufacturingProcess))
	if err != nil {
		return nil, nil, err
	}

	return materials, processes, nil
}
