package catalog

import (
	"math"
	"sort"
)

// Category groups products for the portal filter tabs.
type Category string

const (
	CategoryWhole Category = "whole"
	CategoryHalf  Category = "half"
	CategoryCuts  Category = "cuts"
	CategoryMixed Category = "mixed"
)

// Product is a catalog entry. The catalog is fixed at deploy time; prices
// change by editing this file and redeploying.
type Product struct {
	Key               string   `json:"key"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	PricePerKg        float64  `json:"pricePerKg"`
	EstimatedWeightKg float64  `json:"estimatedWeightKg"`
	Category          Category `json:"category"`
}

var products = map[string]Product{
	"HEEL_HOENDER": {
		Key:               "HEEL_HOENDER",
		Name:              "Heel Hoender",
		Description:       "Whole pasture-raised chicken, cleaned and bagged",
		PricePerKg:        67.00,
		EstimatedWeightKg: 2.5,
		Category:          CategoryWhole,
	},
	"HALWE_HOENDER": {
		Key:               "HALWE_HOENDER",
		Name:              "Halwe Hoender",
		Description:       "Half chicken, split along the breastbone",
		PricePerKg:        69.00,
		EstimatedWeightKg: 1.3,
		Category:          CategoryHalf,
	},
	"BORSIES": {
		Key:               "BORSIES",
		Name:              "Hoender Borsies",
		Description:       "Breast fillets, skin on",
		PricePerKg:        85.00,
		EstimatedWeightKg: 1.0,
		Category:          CategoryCuts,
	},
	"BOUDE_EN_DYE": {
		Key:               "BOUDE_EN_DYE",
		Name:              "Boude en Dye",
		Description:       "Leg quarters and thighs",
		PricePerKg:        75.00,
		EstimatedWeightKg: 1.1,
		Category:          CategoryCuts,
	},
	"VLERKIES": {
		Key:               "VLERKIES",
		Name:              "Vlerkies",
		Description:       "Wings, braai-ready",
		PricePerKg:        65.00,
		EstimatedWeightKg: 0.9,
		Category:          CategoryCuts,
	},
	"LEWERTJIES": {
		Key:               "LEWERTJIES",
		Name:              "Lewertjies",
		Description:       "Chicken livers, tub of roughly half a kilogram",
		PricePerKg:        45.00,
		EstimatedWeightKg: 0.5,
		Category:          CategoryCuts,
	},
	"GEMENGDE_PAKKET": {
		Key:               "GEMENGDE_PAKKET",
		Name:              "Gemengde Pakket",
		Description:       "Mixed family pack: one whole bird plus assorted cuts",
		PricePerKg:        72.00,
		EstimatedWeightKg: 5.0,
		Category:          CategoryMixed,
	},
}

// importNames maps the free-text column headers used on the order
// spreadsheets to catalog keys. Matching is exact after trimming; anything
// not listed here is ignored by the importer.
var importNames = map[string]string{
	"Heel Hoender":    "HEEL_HOENDER",
	"Whole Chicken":   "HEEL_HOENDER",
	"Halwe Hoender":   "HALWE_HOENDER",
	"Half Chicken":    "HALWE_HOENDER",
	"Borsies":         "BORSIES",
	"Breast Fillets":  "BORSIES",
	"Boude en Dye":    "BOUDE_EN_DYE",
	"Leg Quarters":    "BOUDE_EN_DYE",
	"Vlerkies":        "VLERKIES",
	"Wings":           "VLERKIES",
	"Lewertjies":      "LEWERTJIES",
	"Chicken Livers":  "LEWERTJIES",
	"Gemengde Pakket": "GEMENGDE_PAKKET",
	"Mixed Pack":      "GEMENGDE_PAKKET",
}

// Get returns the product for key, if it exists.
func Get(key string) (Product, bool) {
	p, ok := products[key]
	return p, ok
}

// All returns every product sorted by key, for the catalog endpoint.
func All() []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Snapshot returns a copy of the whole catalog, frozen into an order at
// checkout time so later price edits never change what a customer agreed to.
func Snapshot() map[string]Product {
	out := make(map[string]Product, len(products))
	for k, p := range products {
		out[k] = p
	}
	return out
}

// ImportKey resolves a spreadsheet column header to a product key.
func ImportKey(header string) (string, bool) {
	key, ok := importNames[header]
	return key, ok
}

// LineWeightKg is quantity times the product's estimated bird weight.
func LineWeightKg(p Product, quantity int) float64 {
	return float64(quantity) * p.EstimatedWeightKg
}

// LineTotal prices a line at estimated weight, rounded to cents.
func LineTotal(p Product, quantity int) float64 {
	return Round2(float64(quantity) * p.EstimatedWeightKg * p.PricePerKg)
}

// Round2 rounds to two decimals. All money in the system is rand rounded
// to cents; final amounts are corrected at weighing anyway.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
