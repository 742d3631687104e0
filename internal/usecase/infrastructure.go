package usecase

import (
	"context"

	"github.com/DRSN-tech/lca-catalog/internal/domain"
)

type TabularParser interface {
	Parse(data []byte, ext, sheet string) (*Table, error)
}

type ArchiveExtractor interface {
	Extract(ctx context.Context, archivePath, destDir string) error
}

type ImageHost interface {
	Upload(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error)
}

type Classifier interface {
	ClassifyProduct(ctx context.Context, req *ClassifyProductReq) (*domain.ProductClassification, error)
	ClassifyBillOfMaterials(ctx context.Context, req *ClassifyBOMReq) ([]domain.Material, error)
	ClassifyManufacturingProcess(ctx context.Context, req *ClassifyProcessReq) ([]domain.ManufacturingProcess, error)
}

type EmissionsCalculator interface {
	RawMaterials(materials []domain.Material, country string) float64
	Processes(processes []domain.ManufacturingProcess) float64
}

type EventPublisher interface {
	PublishClassified(ctx context.Context, ev *ClassificationEvent) error
}

type TaskRunner interface {
	Submit(task func()) error
}
