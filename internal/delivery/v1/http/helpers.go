package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/DRSN-tech/lca-catalog/internal/domain"
	"github.com/DRSN-tech/lca-catalog/internal/usecase"
	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/jimlawless/whereami"
)

const (
	accountHeader    = "X-Account-ID"
	defaultAccountID = "default"
	maxFormMemory    = 32 << 20
)

type ErrorResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func NewErrorResponse(code int, message string, details map[string]any) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

var badRequestErrors = []error{
	e.ErrStatusBadRequest,
	e.ErrExpectedMultipart,
	e.ErrMissingFile,
	e.ErrFileTooLarge,
	e.ErrInvalidFieldMapping,
	e.ErrMissingMappings,
	e.ErrMissingMappedFields,
	e.ErrRowValidation,
	e.ErrEmptyFile,
	e.ErrUnsupportedFileType,
	e.ErrSheetNotFound,
	e.ErrParseFailed,
	e.ErrUnsupportedArchive,
	e.ErrUnsafeArchivePath,
	e.ErrArchiveExtract,
	e.ErrInvalidAccountID,
}

var badGatewayErrors = []error{
	e.ErrImageUpload,
	e.ErrClassification,
	e.ErrInvalidClassification,
}

// ToHTTPResponse возвращает код ответа и сообщение sentinel-ошибки из цепочки.
func ToHTTPResponse(err error) (int, string) {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, target.Error()
		}
	}

	for _, target := range badGatewayErrors {
		if errors.Is(err, target) {
			return http.StatusBadGateway, target.Error()
		}
	}

	return http.StatusInternalServerError, e.ErrInternalServerError.Error()
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)

	var details map[string]any
	if code != http.StatusInternalServerError {
		details = e.DetailsOf(err)
	}

	WriteSuccess(w, code, NewErrorResponse(code, msg, details))
}

func WriteSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func accountID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(accountHeader)); id != "" {
		return id
	}

	return defaultAccountID
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return e.Wrap(whereami.WhereAmI(), e.ErrFileTooLarge)
		}
		return e.Wrap(whereami.WhereAmI(), errors.Join(e.ErrStatusBadRequest, err))
	}

	return nil
}

// readFormFile читает единственный файл поля field целиком.
func readFormFile(r *http.Request, field string) ([]byte, *multipart.FileHeader, error) {
	src, fh, err := r.FormFile(field)
	if err != nil {
		return nil, nil, e.Wrap(whereami.WhereAmI(), e.ErrMissingFile)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, fh, nil
}

func parseFieldMapping(raw string) (domain.FieldMapping, error) {
	var mapping domain.FieldMapping
	if strings.TrimSpace(raw) == "" {
		return mapping, e.Wrap(whereami.WhereAmI(), e.ErrInvalidFieldMapping)
	}

	if err := json.Unmarshal([]byte(raw), &mapping); err != nil {
		return mapping, e.NewDetailedError(e.ErrInvalidFieldMapping, map[string]any{"reason": err.Error()})
	}

	return mapping, nil
}

func fileExtension(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// ProductResponse — представление записи продукта в ответах API.
type ProductResponse struct {
	ID                 int64    `json:"id"`
	Code               string   `json:"code"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Weight             *float64 `json:"weight,omitempty"`
	CountryOfOrigin    string   `json:"countryOfOrigin,omitempty"`
	SupplierName       string   `json:"supplierName,omitempty"`
	Category           string   `json:"category,omitempty"`
	SubCategory        string   `json:"subCategory,omitempty"`
	Images             []string `json:"images"`
	AIProcessingStatus string   `json:"aiProcessingStatus"`
	CreatedDate        string   `json:"createdDate"`
}

type ImportProductsResponse struct {
	Products     []ProductResponse `json:"products"`
	SkippedCodes []string          `json:"skippedCodes"`
}

type DistributeImagesResponse struct {
	Uploaded       int      `json:"uploaded"`
	Linked         int      `json:"linked"`
	UnmatchedCodes []string `json:"unmatchedCodes"`
}

type TriggerResponse struct {
	Dispatched int `json:"dispatched"`
}

func toProductResponse(p *domain.Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}

	return ProductResponse{
		ID:                 p.ID,
		Code:               p.Code,
		Name:               p.Name,
		Description:        p.Description,
		Weight:             p.Weight,
		CountryOfOrigin:    p.CountryOfOrigin,
		SupplierName:       p.SupplierName,
		Category:           p.Category,
		SubCategory:        p.SubCategory,
		Images:             images,
		AIProcessingStatus: string(p.AIProcessingStatus),
		CreatedDate:        p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toImportProductsResponse(res *usecase.ImportProductsRes) *ImportProductsResponse {
	out := &ImportProductsResponse{
		Products:     make([]ProductResponse, 0, len(res.Products)),
		SkippedCodes: res.SkippedCodes,
	}
	if out.SkippedCodes == nil {
		out.SkippedCodes = []string{}
	}

	for i := range res.Products {
		out.Products = append(out.Products, toProductResponse(&res.Products[i]))
	}

	return out
}

func toDistributeImagesResponse(res *usecase.DistributeImagesRes) *DistributeImagesResponse {
	unmatched := res.UnmatchedCodes
	if unmatched == nil {
		unmatched = []string{}
	}

	return &DistributeImagesResponse{
		Uploaded:       res.Uploaded,
		Linked:         res.Linked,
		UnmatchedCodes: unmatched,
	}
}
