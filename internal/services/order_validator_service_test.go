package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/Bester1/hoenders-sub000/internal/catalog"
	"github.com/Bester1/hoenders-sub000/internal/model"
)

func wellFormedOrder() *model.Order {
	return &model.Order{
		OrderNumber: "ORD-CUSTOMER-171234",
		Customer: model.Customer{
			Name:    "Jean Dreyer",
			Phone:   "0796167761",
			Address: "123 Main Street, Pretoria, 0001",
			Email:   "jean@example.com",
		},
		Items: model.Cart{
			"HEEL_HOENDER": {Quantity: 2, AddedAt: time.Now()},
		},
		Products:       catalog.Snapshot(),
		Timestamp:      time.Now(),
		Status:         model.StatusProvisional,
		EstimatedTotal: 335.00, // 2 x 2.5kg x R67/kg
		TotalWeightKg:  5.0,
		ItemCount:      2,
	}
}

func TestValidateOrder_WellFormed(t *testing.T) {
	res := ValidateOrder(wellFormedOrder())
	if !res.IsValid {
		t.Errorf("expected valid order, got errors: %v", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Errorf("expected no errors, got %v", res.Errors)
	}
}

func TestValidateOrder_NilOrder(t *testing.T) {
	res := ValidateOrder(nil)
	if res.IsValid || len(res.Errors) == 0 {
		t.Error("nil order must be invalid with an error")
	}
}

func TestValidateOrder_EmptyItems(t *testing.T) {
	o := wellFormedOrder()
	o.Items = model.Cart{}
	res := ValidateOrder(o)
	if res.IsValid {
		t.Error("empty items must be invalid")
	}
}

func TestValidateOrder_TooManyDistinctItems(t *testing.T) {
	o := wellFormedOrder()
	for i := 0; i < 51; i++ {
		o.Items[fmt.Sprintf("FAKE_%d", i)] = model.CartItem{Quantity: 1}
	}
	res := ValidateOrder(o)
	if res.IsValid {
		t.Error("more than 50 distinct items must be invalid")
	}
}

func TestValidateOrder_TotalTooLarge(t *testing.T) {
	o := wellFormedOrder()
	o.EstimatedTotal = 50001
	res := ValidateOrder(o)
	if res.IsValid {
		t.Error("total above 50000 must be invalid")
	}
}

func TestValidateOrder_MalformedPhone(t *testing.T) {
	o := wellFormedOrder()
	o.Customer.Phone = "123"
	res := ValidateOrder(o)
	if res.IsValid {
		t.Error("phone 123 must be invalid")
	}
}

func TestValidateOrder_PhoneWithSpacesAndPrefix(t *testing.T) {
	o := wellFormedOrder()
	o.Customer.Phone = "+27 79 616 7761"
	res := ValidateOrder(o)
	if !res.IsValid {
		t.Errorf("spaced +27 number should validate, got %v", res.Errors)
	}
}

func TestValidateOrder_MalformedEmail(t *testing.T) {
	o := wellFormedOrder()
	o.Customer.Email = "not-an-email"
	res := ValidateOrder(o)
	if res.IsValid {
		t.Error("malformed email must be invalid")
	}
}

func TestValidateOrder_EmailIsOptional(t *testing.T) {
	o := wellFormedOrder()
	o.Customer.Email = ""
	res := ValidateOrder(o)
	if !res.IsValid {
		t.Errorf("missing email should be allowed, got %v", res.Errors)
	}
}

func TestValidateOrder_CollectsAllViolations(t *testing.T) {
	o := wellFormedOrder()
	o.Customer.Name = "x"
	o.Customer.Phone = "123"
	o.Customer.Address = "short"
	o.OrderNumber = ""
	res := ValidateOrder(o)
	if res.IsValid {
		t.Fatal("expected invalid order")
	}
	if len(res.Errors) < 4 {
		t.Errorf("expected all violations collected, got %v", res.Errors)
	}
}

func TestValidateOrder_UnknownProductKey(t *testing.T) {
	o := wellFormedOrder()
	o.Items["NIE_BESTAAN_NIE"] = model.CartItem{Quantity: 1}
	res := ValidateOrder(o)
	if res.IsValid {
		t.Error("unknown product key must be invalid")
	}
}

func TestValidateOrder_QuantityOutOfRange(t *testing.T) {
	o := wellFormedOrder()
	o.Items["HEEL_HOENDER"] = model.CartItem{Quantity: 1000}
	res := ValidateOrder(o)
	if res.IsValid {
		t.Error("quantity above 999 must be invalid")
	}
}
