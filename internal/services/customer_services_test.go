package services

import (
	"strings"
	"testing"

	"github.com/Bester1/hoenders-sub000/internal/localstore"
	"github.com/Bester1/hoenders-sub000/internal/model"
	"github.com/Bester1/hoenders-sub000/internal/repository"

	"go.uber.org/zap"
)

func newCustomerService(t *testing.T) *CustomerService {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewCustomerService(repository.NewCustomerRepository(store), zap.NewNop())
}

func TestCustomerUpdate_RoundTrip(t *testing.T) {
	svc := newCustomerService(t)

	in := model.Customer{
		Name:    "Jean Dreyer",
		Phone:   "079 616 7761",
		Address: "123 Main Street, Pretoria, 0001",
		Email:   "jean@example.com",
	}
	if _, err := svc.Update("cust1", in); err != nil {
		t.Fatal(err)
	}

	got := svc.Get("cust1")
	if got.Name != "Jean Dreyer" || got.Email != "jean@example.com" {
		t.Errorf("profile did not round trip: %+v", got)
	}
}

func TestCustomerUpdate_SanitizesInput(t *testing.T) {
	svc := newCustomerService(t)

	in := model.Customer{
		Name:    "  Jean\x00 Dreyer  ",
		Phone:   "0796167761",
		Address: "123 Main Street, Pretoria, 0001",
	}
	saved, err := svc.Update("cust1", in)
	if err != nil {
		t.Fatal(err)
	}
	if saved.Name != "Jean Dreyer" {
		t.Errorf("expected trimmed, control-free name, got %q", saved.Name)
	}
}

func TestCustomerUpdate_CollectsAllViolations(t *testing.T) {
	svc := newCustomerService(t)

	_, err := svc.Update("cust1", model.Customer{
		Name:    "x",
		Phone:   "123",
		Address: "kort",
		Email:   "not-an-email",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"name", "phone", "address", "email"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q violation in %q", want, msg)
		}
	}
}

func TestCustomerGet_DefaultWhenUnset(t *testing.T) {
	svc := newCustomerService(t)
	got := svc.Get("nobody")
	if got.Name != "" || got.Phone != "" {
		t.Errorf("expected empty default profile, got %+v", got)
	}
}
