package usecase

import "context"

type ImportUC interface {
	ImportProducts(ctx context.Context, req *ImportProductsReq) (*ImportProductsRes, error)
}

type ImagesUC interface {
	DistributeImages(ctx context.Context, req *DistributeImagesReq) (*DistributeImagesRes, error)
}

type ClassificationUC interface {
	Trigger(ctx context.Context, accountID string) (*TriggerRes, error)
}
