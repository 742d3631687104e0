package minio

import (
	"context"
	"errors"
	"net/url"
	"path"

	"github.com/DRSN-tech/lca-catalog/internal/cfg"
	"github.com/DRSN-tech/lca-catalog/internal/usecase"
	"github.com/DRSN-tech/lca-catalog/pkg/e"
)

type objectStore interface {
	Put(ctx context.Context, key, path string) (string, error)
}

// MinioInfrastructure — драйвер контент-хоста поверх объектного хранилища.
// Объекты раскладываются по <account>/<code>/<name>.
type MinioInfrastructure struct {
	store objectStore
	cfg   *cfg.MinIOCfg
}

func NewMinioInfrastructure(store objectStore, cfg *cfg.MinIOCfg) *MinioInfrastructure {
	return &MinioInfrastructure{
		store: store,
		cfg:   cfg,
	}
}

func (m *MinioInfrastructure) Upload(ctx context.Context, req *usecase.UploadImageReq) (*usecase.UploadImageRes, error) {
	const op = "MinioInfrastructure.Upload"

	image := req.Image
	key := path.Join(url.PathEscape(image.AccountID), url.PathEscape(image.ProductCode), image.Name)

	storedKey, err := m.store.Put(ctx, key, image.Path)
	if err != nil {
		return nil, e.Wrap(op, errors.Join(e.ErrImageUpload, err))
	}

	return usecase.NewUploadImageRes(m.cfg.PublicURL + "/" + m.cfg.BucketName + "/" + storedKey), nil
}
