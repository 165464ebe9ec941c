package services

import (
	"encoding/csv"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Bester1/hoenders-sub000/internal/catalog"
	"github.com/Bester1/hoenders-sub000/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImportService turns order-sheet exports into normalized order lines.
// Two inputs land here: CSV downloaded from the shared spreadsheet, and
// text lifted out of scanned PDF sheets by the OCR step. Both go through
// the same tabular parse.
type ImportService struct {
	Logger *zap.Logger
}

func NewImportService(logger *zap.Logger) *ImportService {
	return &ImportService{Logger: logger}
}

// ocrColumnSplit breaks an OCR line on tabs or runs of two-plus spaces,
// which is how column gaps survive text extraction.
var ocrColumnSplit = regexp.MustCompile(`\t+| {2,}`)

// IngestCSV parses raw CSV text into normalized lines.
func (s *ImportService) IngestCSV(raw string) (*model.ImportResult, error) {
	r := csv.NewReader(strings.NewReader(raw))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.New("could not parse CSV input")
	}
	return s.ingest(records)
}

// IngestText parses OCR-extracted sheet text into normalized lines.
func (s *ImportService) IngestText(raw string) (*model.ImportResult, error) {
	var records [][]string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, ocrColumnSplit.Split(strings.TrimSpace(line), -1))
	}
	return s.ingest(records)
}

// ingest walks header + data rows. A row without usable email or name is
// skipped and counted; inside a kept row every unmapped or non-numeric
// cell is skipped silently so one odd column never costs the whole row.
func (s *ImportService) ingest(records [][]string) (*model.ImportResult, error) {
	if len(records) == 0 {
		return nil, errors.New("input has no header row")
	}

	header := records[0]
	emailCol := findColumn(header, "email")
	nameCol := findColumn(header, "name")
	phoneCol := findColumn(header, "phone")
	// "Email Address" also contains "address"; exclude the claimed column
	addressCol := findColumn(header, "address", emailCol)

	// exact match against the catalog's sheet-header mapping, kept in
	// column order so output lines follow the sheet
	type productCol struct {
		col int
		key string
	}
	var productCols []productCol
	for i, h := range header {
		if key, ok := catalog.ImportKey(strings.TrimSpace(h)); ok {
			productCols = append(productCols, productCol{col: i, key: key})
		}
	}

	result := &model.ImportResult{Lines: []model.ImportedOrderLine{}}
	importedAt := time.Now().UTC()

	for _, row := range records[1:] {
		email := cell(row, emailCol)
		name := cell(row, nameCol)
		if email == "" || name == "" {
			result.SkippedRows++
			continue
		}

		for _, pc := range productCols {
			qty, ok := parseQuantity(cell(row, pc.col))
			if !ok {
				continue
			}
			p, ok := catalog.Get(pc.key)
			if !ok {
				continue
			}
			result.Lines = append(result.Lines, model.ImportedOrderLine{
				GeneratedID: uuid.NewString(),
				Date:        importedAt,
				Name:        name,
				Email:       email,
				Phone:       cell(row, phoneCol),
				Address:     cell(row, addressCol),
				Product:     pc.key,
				Quantity:    qty,
				UnitPrice:   p.PricePerKg,
				Total:       catalog.LineTotal(p, qty),
			})
		}
	}

	s.Logger.Info("import run finished",
		zap.Int("lines", len(result.Lines)), zap.Int("skipped_rows", result.SkippedRows))
	return result, nil
}

// findColumn locates a header by case-insensitive substring match, -1 when
// the sheet has no such column. Indices in exclude are never returned.
func findColumn(header []string, needle string, exclude ...int) int {
	for i, h := range header {
		if contains(exclude, i) {
			continue
		}
		if strings.Contains(strings.ToLower(h), needle) {
			return i
		}
	}
	return -1
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// parseQuantity accepts positive integers only. A parseable 0 is deliberately
// treated like a blank cell instead of emitting a zero-quantity line, and
// scribbles ("2kg", "-1", "ja") likewise mean no order in that column.
func parseQuantity(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
