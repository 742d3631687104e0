package domain

// FieldMapping связывает поля продукта с именами колонок загружаемого файла.
// Пустое значение означает, что поле не сопоставлено.
type FieldMapping struct {
	Code            string `json:"code" validate:"required"`
	Name            string `json:"name" validate:"required"`
	Description     string `json:"description" validate:"required"`
	Weight          string `json:"weight"`
	CountryOfOrigin string `json:"countryOfOrigin"`
	SupplierName    string `json:"supplierName"`
	Category        string `json:"category"`
	SubCategory     string `json:"subCategory"`
}

// MappedField — пара "поле продукта → колонка файла".
type MappedField struct {
	Field  string
	Column string
}

// Fields возвращает сопоставленные поля в фиксированном порядке.
func (m FieldMapping) Fields() []MappedField {
	all := []MappedField{
		{Field: "code", Column: m.Code},
		{Field: "name", Column: m.Name},
		{Field: "description", Column: m.Description},
		{Field: "weight", Column: m.Weight},
		{Field: "countryOfOrigin", Column: m.CountryOfOrigin},
		{Field: "supplierName", Column: m.SupplierName},
		{Field: "category", Column: m.Category},
		{Field: "subCategory", Column: m.SubCategory},
	}

	out := make([]MappedField, 0, len(all))
	for _, f := range all {
		if f.Column != "" {
			out = append(out, f)
		}
	}

	return out
}
