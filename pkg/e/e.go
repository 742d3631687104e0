package e

import (
	"errors"
	"fmt"
)

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Конфигурация
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest    = fmt.Errorf("bad request")
	ErrExpectedMultipart   = fmt.Errorf("expected multipart/form-data")
	ErrMissingFile         = fmt.Errorf("file is required")
	ErrFileTooLarge        = fmt.Errorf("file too large")
	ErrInvalidFieldMapping = fmt.Errorf("invalid field mapping")
	ErrMissingMappings     = fmt.Errorf("missing required field mappings")
	ErrMissingMappedFields = fmt.Errorf("missing mapped fields")
	ErrRowValidation       = fmt.Errorf("row validation failed")
	ErrEmptyFile           = fmt.Errorf("file contains no data rows")
	ErrUnsupportedFileType = fmt.Errorf("unsupported file type")
	ErrSheetNotFound       = fmt.Errorf("sheet not found")
	ErrParseFailed         = fmt.Errorf("failed to parse file")
	ErrUnsupportedArchive  = fmt.Errorf("unsupported archive type")
	ErrUnsafeArchivePath   = fmt.Errorf("archive entry escapes extraction directory")
	ErrArchiveExtract      = fmt.Errorf("failed to extract archive")
	ErrInvalidAccountID    = fmt.Errorf("invalid account id")

	// 502 Bad Gateway
	ErrImageUpload           = fmt.Errorf("image upload failed")
	ErrClassification        = fmt.Errorf("classification request failed")
	ErrInvalidClassification = fmt.Errorf("invalid classification response")

	// Состояние записей
	ErrStatusConflict = fmt.Errorf("product is not in the expected processing status")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// DetailedError связывает sentinel-ошибку с данными, которые нужны клиенту
// для исправления запроса (список полей, строк, заголовков).
type DetailedError struct {
	Err     error
	Details map[string]any
}

func NewDetailedError(err error, details map[string]any) *DetailedError {
	return &DetailedError{Err: err, Details: details}
}

func (d *DetailedError) Error() string {
	return d.Err.Error()
}

func (d *DetailedError) Unwrap() error {
	return d.Err
}

// DetailsOf возвращает детали первой DetailedError в цепочке.
func DetailsOf(err error) map[string]any {
	var detailed *DetailedError
	if errors.As(err, &detailed) {
		return detailed.Details
	}

	return nil
}

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
