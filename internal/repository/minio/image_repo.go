package minio

import (
	"context"
	"os"

	"github.com/DRSN-tech/lca-catalog/internal/cfg"
	"github.com/DRSN-tech/lca-catalog/internal/infrastructure"
	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ImageRepo реализует хранилище изображений поверх MinIO.
type ImageRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewImageRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ImageRepo {
	return &ImageRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Put загружает файл с диска под ключом key и возвращает ключ объекта.
func (i *ImageRepo) Put(ctx context.Context, key, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	info, err := i.mc.PutObject(ctx, i.cfg.BucketName, key, f, stat.Size(), minio.PutObjectOptions{
		ContentType: infrastructure.ContentTypeByName(key),
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}
