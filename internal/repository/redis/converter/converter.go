package converter

import "github.com/DRSN-tech/lca-catalog/internal/domain"

// ClassificationConverter преобразует классификацию между domain и моделью кэша.
type ClassificationConverter struct{}

func NewClassificationConverter() ClassificationConverter {
	return ClassificationConverter{}
}

func (ClassificationConverter) ToRedisModel(entity *domain.ProductClassification) *ProductClassificationRedisModel {
	return &ProductClassificationRedisModel{
		Category:    entity.Category,
		SubCategory: entity.SubCategory,
	}
}

func (ClassificationConverter) ToDomain(model *ProductClassificationRedisModel) *domain.ProductClassification {
	return &domain.ProductClassification{
		Category:    model.Category,
		SubCategory: model.SubCategory,
	}
}
