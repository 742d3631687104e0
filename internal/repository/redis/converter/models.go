package converter

// ProductClassificationRedisModel — закэшированный ответ классификатора.
type ProductClassificationRedisModel struct {
	Category    string `json:"category"`
	SubCategory string `json:"subcategory"`
}
