package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Bester1/hoenders-sub000/internal/localstore"
	"github.com/Bester1/hoenders-sub000/internal/model"
	"github.com/Bester1/hoenders-sub000/internal/repository"

	"go.uber.org/zap"
)

func newCartService(t *testing.T) (*CartService, *repository.CartRepository) {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCartRepository(store)
	return NewCartService(repo, zap.NewNop()), repo
}

func TestSetQuantity_RoundTrip(t *testing.T) {
	svc, _ := newCartService(t)

	svc.SetQuantity("cust1", "HEEL_HOENDER", 2)

	cart := svc.Load("cust1")
	item, ok := cart["HEEL_HOENDER"]
	if !ok {
		t.Fatal("expected HEEL_HOENDER in reloaded cart")
	}
	if item.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", item.Quantity)
	}
}

func TestSetQuantity_ZeroRemoves(t *testing.T) {
	svc, _ := newCartService(t)

	svc.SetQuantity("cust1", "HEEL_HOENDER", 2)
	svc.SetQuantity("cust1", "HEEL_HOENDER", 0)

	cart := svc.Load("cust1")
	if _, ok := cart["HEEL_HOENDER"]; ok {
		t.Error("quantity 0 must remove the entry")
	}
}

func TestSetQuantity_ClampsOutOfRangeToRemoval(t *testing.T) {
	svc, _ := newCartService(t)

	svc.SetQuantity("cust1", "HEEL_HOENDER", 2)
	svc.SetQuantity("cust1", "HEEL_HOENDER", 1000)
	if _, ok := svc.Load("cust1")["HEEL_HOENDER"]; ok {
		t.Error("quantity above 999 clamps to 0 and removes the entry")
	}

	svc.SetQuantity("cust1", "VLERKIES", 3)
	svc.SetQuantity("cust1", "VLERKIES", -5)
	if _, ok := svc.Load("cust1")["VLERKIES"]; ok {
		t.Error("negative quantity clamps to 0 and removes the entry")
	}
}

func TestSetQuantity_UnknownKeyIsNoOp(t *testing.T) {
	svc, _ := newCartService(t)

	svc.SetQuantity("cust1", "HEEL_HOENDER", 1)
	sum := svc.SetQuantity("cust1", "SPRINGBOK", 5)

	if sum.DistinctProducts != 1 {
		t.Errorf("unknown key must not change the cart, got %d products", sum.DistinctProducts)
	}
	if _, ok := svc.Load("cust1")["SPRINGBOK"]; ok {
		t.Error("unknown key must not be stored")
	}
}

func TestLoad_ExpiredSnapshotComesBackEmpty(t *testing.T) {
	svc, repo := newCartService(t)

	old := &model.CartSnapshot{
		Items:      model.Cart{"HEEL_HOENDER": {Quantity: 2, AddedAt: time.Now()}},
		Timestamp:  time.Now().Add(-25 * time.Hour),
		CustomerID: "cust1",
		Version:    SnapshotVersion,
	}
	if err := repo.SaveSnapshot(old); err != nil {
		t.Fatal(err)
	}

	cart := svc.Load("cust1")
	if len(cart) != 0 {
		t.Errorf("expired snapshot must load as empty cart, got %v", cart)
	}
	// and the stale snapshot must be gone
	if _, ok, _ := repo.LoadSnapshot("cust1"); ok {
		t.Error("expired snapshot should be deleted on load")
	}
}

func TestLoad_FreshSnapshotSurvives(t *testing.T) {
	svc, repo := newCartService(t)

	snap := &model.CartSnapshot{
		Items:      model.Cart{"BORSIES": {Quantity: 1, AddedAt: time.Now()}},
		Timestamp:  time.Now().Add(-23 * time.Hour),
		CustomerID: "cust1",
		Version:    SnapshotVersion,
	}
	if err := repo.SaveSnapshot(snap); err != nil {
		t.Fatal(err)
	}

	cart := svc.Load("cust1")
	if cart["BORSIES"].Quantity != 1 {
		t.Errorf("snapshot inside TTL must survive, got %v", cart)
	}
}

func TestClear_RemovesSnapshot(t *testing.T) {
	svc, repo := newCartService(t)

	svc.SetQuantity("cust1", "HEEL_HOENDER", 2)
	svc.Clear("cust1")

	if _, ok, _ := repo.LoadSnapshot("cust1"); ok {
		t.Error("clear must delete the persisted snapshot")
	}
	if len(svc.Load("cust1")) != 0 {
		t.Error("cleared cart must load empty")
	}
}

func TestSummary_Totals(t *testing.T) {
	svc, _ := newCartService(t)

	svc.SetQuantity("cust1", "HEEL_HOENDER", 2) // 2 x 2.5kg x 67 = 335.00
	svc.SetQuantity("cust1", "VLERKIES", 1)     // 1 x 0.9kg x 65 = 58.50

	sum := svc.Summary("cust1")
	if sum.DistinctProducts != 2 {
		t.Errorf("expected 2 distinct products, got %d", sum.DistinctProducts)
	}
	if sum.TotalUnits != 3 {
		t.Errorf("expected 3 units, got %d", sum.TotalUnits)
	}
	if sum.EstimatedTotal != 393.50 {
		t.Errorf("expected total 393.50, got %v", sum.EstimatedTotal)
	}
	if sum.TotalWeightKg != 5.9 {
		t.Errorf("expected weight 5.9, got %v", sum.TotalWeightKg)
	}
}

func TestSetQuantity_WriteFailureKeepsStateWithWarning(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "store")
	store, err := localstore.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	svc := NewCartService(repository.NewCartRepository(store), zap.NewNop())

	// removing the backing directory makes every snapshot write fail
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}

	sum := svc.SetQuantity("cust1", "HEEL_HOENDER", 2)
	if sum.Warning == "" {
		t.Fatal("expected a warning when the snapshot write fails")
	}
	if len(sum.Lines) != 1 || sum.Lines[0].ProductKey != "HEEL_HOENDER" || sum.Lines[0].Quantity != 2 {
		t.Errorf("in-memory mutation must survive the failed write, got %+v", sum.Lines)
	}
	if sum.EstimatedTotal != 335.00 {
		t.Errorf("expected total 335.00, got %v", sum.EstimatedTotal)
	}
}

func TestCartsAreIsolatedPerCustomer(t *testing.T) {
	svc, _ := newCartService(t)

	svc.SetQuantity("cust1", "HEEL_HOENDER", 2)
	svc.SetQuantity("cust2", "VLERKIES", 1)

	if _, ok := svc.Load("cust1")["VLERKIES"]; ok {
		t.Error("carts leaked between customers")
	}
	if _, ok := svc.Load("cust2")["HEEL_HOENDER"]; ok {
		t.Error("carts leaked between customers")
	}
}
