package catalog

import "testing"

func TestGet_KnownKey(t *testing.T) {
	p, ok := Get("HEEL_HOENDER")
	if !ok {
		t.Fatal("expected HEEL_HOENDER to exist")
	}
	if p.PricePerKg != 67.00 {
		t.Errorf("expected price 67.00, got %v", p.PricePerKg)
	}
	if p.EstimatedWeightKg != 2.5 {
		t.Errorf("expected weight 2.5, got %v", p.EstimatedWeightKg)
	}
	if p.Category != CategoryWhole {
		t.Errorf("expected category whole, got %q", p.Category)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	if _, ok := Get("BILTONG"); ok {
		t.Error("expected unknown key to be absent")
	}
}

func TestLineTotal(t *testing.T) {
	p, _ := Get("HEEL_HOENDER")
	// 2 birds x 2.5kg x R67/kg
	if got := LineTotal(p, 2); got != 335.00 {
		t.Errorf("expected 335.00, got %v", got)
	}
	if got := LineWeightKg(p, 2); got != 5.0 {
		t.Errorf("expected 5.0kg, got %v", got)
	}
}

func TestImportKey(t *testing.T) {
	key, ok := ImportKey("Heel Hoender")
	if !ok || key != "HEEL_HOENDER" {
		t.Errorf("expected HEEL_HOENDER, got %q (ok=%v)", key, ok)
	}
	key, ok = ImportKey("Whole Chicken")
	if !ok || key != "HEEL_HOENDER" {
		t.Errorf("expected english alias to map, got %q (ok=%v)", key, ok)
	}
	if _, ok := ImportKey("heel hoender"); ok {
		t.Error("header match is exact, lowercase should not map")
	}
	if _, ok := ImportKey("Notes"); ok {
		t.Error("unmapped header should not map")
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	snap := Snapshot()
	snap["HEEL_HOENDER"] = Product{Key: "HEEL_HOENDER", PricePerKg: 1}
	p, _ := Get("HEEL_HOENDER")
	if p.PricePerKg != 67.00 {
		t.Error("mutating a snapshot must not touch the catalog")
	}
}

func TestAll_SortedByKey(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("catalog should not be empty")
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Key >= all[i].Key {
			t.Errorf("catalog not sorted at %d: %q >= %q", i, all[i-1].Key, all[i].Key)
		}
	}
}
