package domain

// Material — позиция спецификации материалов (BOM).
type Material struct {
	MaterialClass    string  `json:"materialClass"`
	SpecificMaterial string  `json:"specificMaterial"`
	Weight           float64 `json:"weight"`
}

// ManufacturingProcess — группа производственных процессов одной категории.
type ManufacturingProcess struct {
	Category  string   `json:"category"`
	Processes []string `json:"processes"`
}

// ProductClassification — результат классификации продукта по категории.
type ProductClassification struct {
	Category    string `json:"category"`
	SubCategory string `json:"subcategory"`
}

// Complete сообщает, что определены и категория, и подкатегория.
func (c *ProductClassification) Complete() bool {
	return c != nil && c.Category != "" && c.SubCategory != ""
}

// Emissions — оценка выбросов CO2e, кг.
type Emissions struct {
	RawMaterials float64
	Processes    float64
	Total        float64
}

// ClassificationResult — всё, что сохраняется при успешной классификации.
type ClassificationResult struct {
	Classification       ProductClassification
	Materials            []Material
	ManufacturingProcess []ManufacturingProcess
	Emissions            Emissions
}
