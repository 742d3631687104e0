package contenthost

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DRSN-tech/lca-catalog/internal/cfg"
	"github.com/DRSN-tech/lca-catalog/internal/domain"
	"github.com/DRSN-tech/lca-catalog/internal/usecase"
	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImage(t *testing.T) *domain.Image {
	t.Helper()

	path := filepath.Join(t.TempDir(), "img1.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg-bytes"), 0o600))

	name := gofakeit.UUID() + ".jpg"
	return domain.NewImage(name, "img1.jpg", path, "ABC123", "acc", 10)
}

func newHostCfg(origin string) *cfg.ContentHostCfg {
	return &cfg.ContentHostCfg{
		Driver:        cfg.ContentHostHTTP,
		DefaultOrigin: origin,
		UploadPath:    "/api/upload",
		PublicPath:    "/api/files",
		QueryParam:    "filename",
		Timeout:       2 * time.Second,
	}
}

func TestHTTPHostUpload(t *testing.T) {
	t.Parallel()

	image := newImage(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/upload", r.URL.Path)
		assert.Equal(t, image.Name, r.URL.Query().Get("filename"))

		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, _ := io.ReadAll(file)
		assert.Equal(t, "jpeg-bytes", string(data))
		assert.Equal(t, image.Name, header.Filename)
		assert.Equal(t, "image/jpeg", header.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	host := NewHTTPHost(newHostCfg("http://unused.invalid"))

	res, err := host.Upload(context.Background(), usecase.NewUploadImageReq(image, srv.URL))
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/api/files?filename="+image.Name, res.URL)
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPHostFallsBackToDefaultOrigin(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	host := NewHTTPHost(newHostCfg(srv.URL))

	for _, origin := range []string{"", "null", "ftp://files.example.com"} {
		image := newImage(t)

		res, err := host.Upload(context.Background(), usecase.NewUploadImageReq(image, origin))
		require.NoError(t, err, origin)
		assert.Equal(t, srv.URL+"/api/files?filename="+image.Name, res.URL)
	}
}

func TestHTTPHostRejectedUpload(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	host := NewHTTPHost(newHostCfg(srv.URL))

	image := newImage(t)
	_, err := host.Upload(context.Background(), usecase.NewUploadImageReq(image, ""))
	assert.ErrorIs(t, err, e.ErrImageUpload)
	assert.Equal(t, map[string]any{"image": image.Name, "status": http.StatusInternalServerError}, e.DetailsOf(err))
}

func TestHTTPHostTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := newHostCfg(srv.URL)
	c.Timeout = 50 * time.Millisecond

	_, err := NewHTTPHost(c).Upload(context.Background(), usecase.NewUploadImageReq(newImage(t), ""))
	assert.ErrorIs(t, err, e.ErrImageUpload)
}
