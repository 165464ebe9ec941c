package services

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/Bester1/hoenders-sub000/internal/catalog"
	"github.com/Bester1/hoenders-sub000/internal/model"
)

const (
	MaxDistinctItems = 50
	MaxOrderTotal    = 50000.0
	MinNameLen       = 2
	MaxNameLen       = 100
	MinAddressLen    = 10
	MaxAddressLen    = 500
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	// SA numbers: optional +27 or 0 prefix, then exactly nine digits
	phoneRegex = regexp.MustCompile(`^(\+27|0)?[0-9]{9}$`)
)

// ValidationResult carries every rule violation found, not just the first,
// so the portal can show the customer the full list in one pass.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidateOrder checks an order against the business rules. It is a pure
// function and never panics past its boundary: any unexpected failure
// during validation comes back as a single generic error.
func ValidateOrder(order *model.Order) (result ValidationResult) {
	defer func() {
		if r := recover(); r != nil {
			result = ValidationResult{IsValid: false, Errors: []string{"order could not be validated"}}
		}
	}()

	if order == nil {
		return ValidationResult{IsValid: false, Errors: []string{"order is missing"}}
	}

	var errs []string

	if !validName(order.Customer.Name) {
		errs = append(errs, fmt.Sprintf("customer name must be %d to %d characters", MinNameLen, MaxNameLen))
	}
	if !validPhone(order.Customer.Phone) {
		errs = append(errs, "phone number must be a valid South African number")
	}
	if !validAddress(order.Customer.Address) {
		errs = append(errs, fmt.Sprintf("delivery address must be %d to %d characters", MinAddressLen, MaxAddressLen))
	}
	if order.Customer.Email != "" && !emailRegex.MatchString(order.Customer.Email) {
		errs = append(errs, "email address is not valid")
	}

	if len(order.Items) == 0 {
		errs = append(errs, "order has no items")
	}
	if len(order.Items) > MaxDistinctItems {
		errs = append(errs, fmt.Sprintf("order has more than %d different products", MaxDistinctItems))
	}
	for key, item := range order.Items {
		if _, ok := catalog.Get(key); !ok {
			errs = append(errs, fmt.Sprintf("unknown product %q", key))
		}
		if item.Quantity <= 0 || item.Quantity > MaxItemQuantity {
			errs = append(errs, fmt.Sprintf("quantity for %q must be between 1 and %d", key, MaxItemQuantity))
		}
	}

	if math.IsNaN(order.EstimatedTotal) || math.IsInf(order.EstimatedTotal, 0) ||
		order.EstimatedTotal <= 0 || order.EstimatedTotal > MaxOrderTotal {
		errs = append(errs, fmt.Sprintf("order total must be between R0 and R%.0f", MaxOrderTotal))
	}

	if order.OrderNumber == "" {
		errs = append(errs, "order number is missing")
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

func validName(name string) bool {
	n := len(strings.TrimSpace(name))
	return n >= MinNameLen && n <= MaxNameLen
}

func validAddress(addr string) bool {
	n := len(strings.TrimSpace(addr))
	return n >= MinAddressLen && n <= MaxAddressLen
}

func validPhone(phone string) bool {
	// customers paste numbers with spaces; strip all whitespace first
	stripped := strings.Join(strings.Fields(phone), "")
	return phoneRegex.MatchString(stripped)
}

func validEmail(email string) bool {
	return emailRegex.MatchString(email)
}
