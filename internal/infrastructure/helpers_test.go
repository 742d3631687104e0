package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentTypeByName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"a.jpg":  "image/jpeg",
		"b.JPEG": "image/jpeg",
		"c.png":  "image/png",
		"d.Gif":  "image/gif",
		"e.webp": "image/webp",
		"f.tiff": "application/octet-stream",
		"no-ext": "application/octet-stream",
	}

	for name, want := range tests {
		assert.Equal(t, want, ContentTypeByName(name), name)
	}
}
