package ml_service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DRSN-tech/lca-catalog/internal/domain"
	"github.com/DRSN-tech/lca-catalog/internal/usecase"
	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/DRSN-tech/lca-catalog/pkg/logger"
	"github.com/jimlawless/whereami"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	classificationService              = "/classification.v1.ClassificationService/"
	methodClassifyProduct              = classificationService + "ClassifyProduct"
	methodClassifyBillOfMaterials      = classificationService + "ClassifyBillOfMaterials"
	methodClassifyManufacturingProcess = classificationService + "ClassifyManufacturingProcess"
)

type bomResponse struct {
	Materials *[]domain.Material `json:"materials"`
}

type processResponse struct {
	ManufacturingProcess *[]domain.ManufacturingProcess `json:"manufacturingProcess"`
}

// MLService — клиент сервиса классификации. Запросы и ответы передаются
// как google.protobuf.Struct, сгенерированный клиент не используется.
type MLService struct {
	conn    grpc.ClientConnInterface
	timeout time.Duration
	logger  logger.Logger
}

func NewMLService(conn grpc.ClientConnInterface, timeout time.Duration, logger logger.Logger) *MLService {
	return &MLService{
		conn:    conn,
		timeout: timeout,
		logger:  logger,
	}
}

// ClassifyProduct определяет категорию и подкатегорию. Пустые значения допустимы,
// решение о статусе продукта принимает вызывающий код.
func (m *MLService) ClassifyProduct(ctx context.Context, req *usecase.ClassifyProductReq) (*domain.ProductClassification, error) {
	const op = "MLService.ClassifyProduct"

	var out domain.ProductClassification
	err := m.invoke(ctx, methodClassifyProduct, map[string]any{
		"code":        req.Code,
		"name":        req.Name,
		"description": req.Description,
	}, &out)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	out.Category = strings.TrimSpace(out.Category)
	out.SubCategory = strings.TrimSpace(out.SubCategory)

	return &out, nil
}

func (m *MLService) ClassifyBillOfMaterials(ctx context.Context, req *usecase.ClassifyBOMReq) ([]domain.Material, error) {
	const op = "MLService.ClassifyBillOfMaterials"

	in := map[string]any{
		"code":        req.Code,
		"name":        req.Name,
		"description": req.Description,
	}
	if req.Weight != nil {
		in["weight"] = *req.Weight
	}

	var out bomResponse
	if err := m.invoke(ctx, methodClassifyBillOfMaterials, in, &out); err != nil {
		return nil, e.Wrap(op, err)
	}

	if out.Materials == nil {
		return nil, e.Wrap(op, fmt.Errorf("%w: materials missing", e.ErrInvalidClassification))
	}

	return *out.Materials, nil
}

func (m *MLService) ClassifyManufacturingProcess(ctx context.Context, req *usecase.ClassifyProcessReq) ([]domain.ManufacturingProcess, error) {
	const op = "MLService.ClassifyManufacturingProcess"

	materials := make([]any, 0, len(req.Materials))
	for _, mat := range req.Materials {
		materials = append(materials, map[string]any{
			"materialClass":    mat.MaterialClass,
			"specificMaterial": mat.SpecificMaterial,
			"weight":           mat.Weight,
		})
	}

	var out processResponse
	err := m.invoke(ctx, methodClassifyManufacturingProcess, map[string]any{
		"code":        req.Code,
		"name":        req.Name,
		"description": req.Description,
		"materials":   materials,
	}, &out)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if out.ManufacturingProcess == nil {
		return nil, e.Wrap(op, fmt.Errorf("%w: manufacturingProcess missing", e.ErrInvalidClassification))
	}

	return *out.ManufacturingProcess, nil
}

// invoke выполняет унарный вызов и декодирует Struct-ответ в out.
func (m *MLService) invoke(ctx context.Context, method string, in map[string]any, out any) error {
	reqStruct, err := structpb.NewStruct(in)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), errors.Join(e.ErrClassification, err))
	}

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	resStruct := &structpb.Struct{}
	if err := m.conn.Invoke(ctx, method, reqStruct, resStruct); err != nil {
		m.logger.Debugf("classifier call %s failed: %v", method, err)
		return e.Wrap(method, errors.Join(e.ErrClassification, err))
	}

	data, err := protojson.Marshal(resStruct)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), errors.Join(e.ErrInvalidClassification, err))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return e.Wrap(whereami.WhereAmI(), errors.Join(e.ErrInvalidClassification, err))
	}

	return nil
}
