package domain

// Image описывает изображение из архива, которое загружается на внешний хост
type Image struct {
	Name         string // сгенерированное уникальное имя с исходным расширением
	OriginalName string
	Path         string // путь в scratch-директории
	ProductCode  string
	AccountID    string
	Size         int64
}

func NewImage(name, originalName, path, productCode, accountID string, size int64) *Image {
	return &Image{
		Name:         name,
		OriginalName: originalName,
		Path:         path,
		ProductCode:  productCode,
		AccountID:    accountID,
		Size:         size,
	}
}
