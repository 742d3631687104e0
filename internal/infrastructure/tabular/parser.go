// Package tabular читает CSV и книги Excel в единое табличное представление.
package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"

	"github.com/DRSN-tech/lca-catalog/internal/usecase"
	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/gocarina/gocsv"
	"github.com/jimlawless/whereami"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
)

const utf8BOM = "\uFEFF"

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse возвращает заголовки (первая непустая строка) и строки данных.
// Пустые строки пропускаются, значения обрезаются по краям.
func (p *Parser) Parse(data []byte, ext, sheet string) (*usecase.Table, error) {
	var (
		records [][]string
		err     error
	)

	switch strings.ToLower(ext) {
	case ".csv":
		records, err = readCSV(data)
	case ".xlsx", ".xlsm":
		records, err = readWorkbook(data, sheet)
	default:
		return nil, e.NewDetailedError(e.ErrUnsupportedFileType, map[string]any{"extension": ext})
	}
	if err != nil {
		return nil, err
	}

	return toTable(records)
}

func readCSV(data []byte) ([][]string, error) {
	reader := gocsv.LazyCSVReader(bytes.NewReader(bytes.TrimPrefix(data, []byte(utf8BOM))))
	if r, ok := reader.(*csv.Reader); ok {
		r.FieldsPerRecord = -1
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), errors.Join(e.ErrParseFailed, err))
	}

	return records, nil
}

// readWorkbook читает указанный лист или первый, если имя не задано.
func readWorkbook(data []byte, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), errors.Join(e.ErrParseFailed, err))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, e.ErrEmptyFile
	}

	name := strings.TrimSpace(sheet)
	if name == "" {
		name = sheets[0]
	} else if !lo.Contains(sheets, name) {
		return nil, e.NewDetailedError(e.ErrSheetNotFound, map[string]any{
			"sheetName":       name,
			"availableSheets": sheets,
		})
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), errors.Join(e.ErrParseFailed, err))
	}

	return rows, nil
}

func toTable(records [][]string) (*usecase.Table, error) {
	table := &usecase.Table{}

	for _, record := range records {
		cells := lo.Map(record, func(c string, _ int) string { return strings.TrimSpace(c) })
		if lo.EveryBy(cells, func(c string) bool { return c == "" }) {
			continue
		}

		if table.Headers == nil {
			table.Headers = cells
			continue
		}

		table.Rows = append(table.Rows, cells)
	}

	if table.Headers == nil {
		return nil, e.ErrEmptyFile
	}

	return table, nil
}
