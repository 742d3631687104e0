package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/lca-catalog/internal/domain"
)

type ProductRepository interface {
	// CreateBatch вставляет продукты со статусом pending. Коды, уже существующие
	// в аккаунте, пропускаются. Возвращает только вставленные записи.
	CreateBatch(ctx context.Context, products []domain.Product) ([]domain.Product, error)
	// AppendImage добавляет URL в конец списка изображений продукта.
	// false означает, что продукта с таким кодом нет.
	AppendImage(ctx context.Context, accountID, code, url string) (bool, error)
	ClaimPending(ctx context.Context, accountID string, limit int) ([]domain.Product, error)
	CompleteClassification(ctx context.Context, id int64, res *domain.ClassificationResult) error
	MarkFailed(ctx context.Context, id int64) error
	FailStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

type ClassificationCache interface {
	// GetProductClassification возвращает nil без ошибки при промахе.
	GetProductClassification(ctx context.Context, key string) (*domain.ProductClassification, error)
	SetProductClassification(ctx context.Context, key string, c *domain.ProductClassification) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
