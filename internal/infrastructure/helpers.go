package infrastructure

import (
	"path/filepath"
	"strings"
)

// ContentTypeByName возвращает MIME-тип изображения по расширению имени файла.
// Для неизвестных расширений возвращается application/octet-stream.
func ContentTypeByName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
