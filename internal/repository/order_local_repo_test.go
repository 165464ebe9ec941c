package repository

import (
	"testing"
	"time"

	"github.com/Bester1/hoenders-sub000/internal/localstore"
	"github.com/Bester1/hoenders-sub000/internal/model"
)

func newLocalRepo(t *testing.T) (*OrderLocalRepository, *localstore.Store) {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewOrderLocalRepository(store), store
}

func sampleOrder(number string) *model.Order {
	return &model.Order{
		OrderNumber: number,
		Customer:    model.Customer{Name: "Jean Dreyer", Phone: "0796167761", Address: "123 Main Street, Pretoria"},
		Items:       model.Cart{"HEEL_HOENDER": {Quantity: 2, AddedAt: time.Now()}},
		Timestamp:   time.Now().UTC(),
		Status:      model.StatusProvisional,
	}
}

func TestAppendAndGetOrder(t *testing.T) {
	repo, _ := newLocalRepo(t)

	if err := repo.AppendOrder(sampleOrder("ORD-CUSTOMER-1")); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendOrder(sampleOrder("ORD-CUSTOMER-2")); err != nil {
		t.Fatal(err)
	}

	orders, err := repo.ListOrders()
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].OrderNumber != "ORD-CUSTOMER-1" {
		t.Error("log must keep append order")
	}

	got, err := repo.GetOrder("ORD-CUSTOMER-2")
	if err != nil {
		t.Fatal(err)
	}
	if got.Customer.Name != "Jean Dreyer" {
		t.Errorf("order did not round trip: %+v", got)
	}

	if _, err := repo.GetOrder("ORD-CUSTOMER-9"); err == nil {
		t.Error("expected not-found error")
	}
}

func TestAppendOrder_RecoversFromCorruptLog(t *testing.T) {
	repo, store := newLocalRepo(t)

	if err := store.Set("order_log", "{broken"); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendOrder(sampleOrder("ORD-CUSTOMER-1")); err != nil {
		t.Fatalf("corrupt log must reset, not fail: %v", err)
	}

	orders, err := repo.ListOrders()
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 {
		t.Errorf("expected the fresh order in a reset log, got %d", len(orders))
	}
}

func TestAppendLineItems(t *testing.T) {
	repo, _ := newLocalRepo(t)

	rows := []model.OrderRow{
		{ID: "ORD-CUSTOMER-1-0", OrderNumber: "ORD-CUSTOMER-1", ProductKey: "HEEL_HOENDER", Quantity: 2},
	}
	if err := repo.AppendLineItems(rows); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendLineItems(rows); err != nil {
		t.Fatal(err)
	}

	var log []model.OrderRow
	if ok, err := repo.Store.GetJSON("order_items_log", &log); err != nil || !ok {
		t.Fatalf("line-item log unreadable: ok=%v err=%v", ok, err)
	}
	if len(log) != 2 {
		t.Errorf("expected 2 appended rows, got %d", len(log))
	}
}
