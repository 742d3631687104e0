package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/DRSN-tech/lca-catalog/internal/domain"
	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/DRSN-tech/lca-catalog/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// productRow — обязательные поля строки после сопоставления колонок.
type productRow struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// ImportUseCase разбирает табличный файл, проверяет строки и сохраняет продукты одной транзакцией.
type ImportUseCase struct {
	productRepo ProductRepository
	txManager   TxManager
	parser      TabularParser
	validate    *validator.Validate
	logger      logger.Logger
}

func NewImportUC(
	productRepo ProductRepository,
	txManager TxManager,
	parser TabularParser,
	logger logger.Logger,
) *ImportUseCase {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &ImportUseCase{
		productRepo: productRepo,
		txManager:   txManager,
		parser:      parser,
		validate:    validate,
		logger:      logger,
	}
}

// ImportProducts импортирует все строки файла или ни одной.
// Классификация не запускается, продукты остаются в статусе pending.
func (i *ImportUseCase) ImportProducts(ctx context.Context, req *ImportProductsReq) (*ImportProductsRes, error) {
	const op = "ImportUseCase.ImportProducts"

	if err := validateAccountID(req.AccountID); err != nil {
		return nil, e.Wrap(op, err)
	}

	log := i.logger.With("account_id", req.AccountID, "file", req.FileName)

	mapping := trimMapping(req.Mapping)
	if err := i.validateMapping(mapping); err != nil {
		return nil, e.Wrap(op, err)
	}

	table, err := i.parser.Parse(req.Data, req.Extension, req.SheetName)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := checkMappedColumns(mapping, table.Headers); err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(table.Rows) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyFile)
	}

	products, rowErrors := i.normalizeRows(req.AccountID, mapping, table)
	if len(rowErrors) > 0 {
		log.Infof("rejected file: %d row errors", len(rowErrors))
		return nil, e.Wrap(op, e.NewDetailedError(e.ErrRowValidation, map[string]any{
			"rowErrors": rowErrors,
		}))
	}

	var inserted []domain.Product
	err = i.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		inserted, err = i.productRepo.CreateBatch(ctx, products)
		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	insertedCodes := lo.SliceToMap(inserted, func(p domain.Product) (string, struct{}) {
		return p.Code, struct{}{}
	})
	skipped := lo.FilterMap(products, func(p domain.Product, _ int) (string, bool) {
		_, ok := insertedCodes[p.Code]
		return p.Code, !ok
	})

	log.Infof("imported %d products, skipped %d existing codes", len(inserted), len(skipped))

	return NewImportProductsRes(inserted, skipped), nil
}

// validateMapping проверяет, что сопоставлены все обязательные поля.
func (i *ImportUseCase) validateMapping(m domain.FieldMapping) error {
	err := i.validate.Struct(m)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return e.Wrap(e.ErrInvalidFieldMapping.Error(), err)
	}

	missing := lo.Map(verrs, func(fe validator.FieldError, _ int) string {
		return fe.Field()
	})

	return e.NewDetailedError(e.ErrMissingMappings, map[string]any{
		"missingMappings": missing,
	})
}

// checkMappedColumns возвращает ровно те сопоставленные колонки, которых нет в заголовке.
func checkMappedColumns(m domain.FieldMapping, headers []string) error {
	present := lo.SliceToMap(headers, func(h string) (string, struct{}) {
		return h, struct{}{}
	})

	var missing []string
	for _, f := range m.Fields() {
		if _, ok := present[f.Column]; !ok {
			missing = append(missing, f.Column)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	return e.NewDetailedError(e.ErrMissingMappedFields, map[string]any{
		"missingFields":    missing,
		"availableHeaders": headers,
	})
}

func (i *ImportUseCase) normalizeRows(accountID string, m domain.FieldMapping, t *Table) ([]domain.Product, map[string]string) {
	index := make(map[string]int, len(t.Headers))
	for j, h := range t.Headers {
		if _, ok := index[h]; !ok {
			index[h] = j
		}
	}

	products := make([]domain.Product, 0, len(t.Rows))
	rowErrors := make(map[string]string)
	seen := make(map[string]int)

	for n, row := range t.Rows {
		rowNum := n + 2

		cell := func(column string) string {
			j, ok := index[column]
			if column == "" || !ok || j >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[j])
		}

		r := productRow{
			Code:        cell(m.Code),
			Name:        cell(m.Name),
			Description: cell(m.Description),
		}

		if err := i.validate.Struct(r); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				for _, fe := range verrs {
					rowErrors[rowKey(rowNum, fe.Field())] = "is required"
				}
			} else {
				rowErrors[rowKey(rowNum, "row")] = err.Error()
			}
		}

		if r.Code != "" {
			if first, ok := seen[r.Code]; ok {
				rowErrors[rowKey(rowNum, "code")] = fmt.Sprintf("duplicate of row %d", first)
			} else {
				seen[r.Code] = rowNum
			}
		}

		weight, msg := parseWeight(cell(m.Weight))
		if msg != "" {
			rowErrors[rowKey(rowNum, "weight")] = msg
		}

		p := domain.NewProduct(accountID, r.Code, r.Name, r.Description)
		p.Weight = weight
		p.CountryOfOrigin = cell(m.CountryOfOrigin)
		p.SupplierName = cell(m.SupplierName)
		p.Category = cell(m.Category)
		p.SubCategory = cell(m.SubCategory)

		products = append(products, *p)
	}

	return products, rowErrors
}

// parseWeight принимает как точку, так и запятую в качестве разделителя.
func parseWeight(v string) (*float64, string) {
	if v == "" {
		return nil, ""
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(v, ",", "."))
	if err != nil {
		return nil, "must be a number"
	}

	if d.IsNegative() {
		return nil, "must not be negative"
	}

	f := d.InexactFloat64()
	return &f, ""
}

func rowKey(rowNum int, field string) string {
	return fmt.Sprintf("Row %d, %s", rowNum, field)
}

func trimMapping(m domain.FieldMapping) domain.FieldMapping {
	return domain.FieldMapping{
		Code:            strings.TrimSpace(m.Code),
		Name:            strings.TrimSpace(m.Name),
		Description:     strings.TrimSpace(m.Description),
		Weight:          strings.TrimSpace(m.Weight),
		CountryOfOrigin: strings.TrimSpace(m.CountryOfOrigin),
		SupplierName:    strings.TrimSpace(m.SupplierName),
		Category:        strings.TrimSpace(m.Category),
		SubCategory:     strings.TrimSpace(m.SubCategory),
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}
