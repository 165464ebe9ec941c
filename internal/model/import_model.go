package model

import "time"

// ImportedOrderLine is one normalized line produced by the spreadsheet
// importer. Same shape per product as an interactive order line, plus the
// contact columns of the source row.
type ImportedOrderLine struct {
	GeneratedID string    `json:"generatedId"`
	Date        time.Time `json:"date"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Product     string    `json:"product"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	Total       float64   `json:"total"`
}

// ImportResult is what one ingestion run produced, with enough counts for
// the dashboard to report partial success precisely.
type ImportResult struct {
	Lines       []ImportedOrderLine `json:"lines"`
	SkippedRows int                 `json:"skippedRows"`
}
