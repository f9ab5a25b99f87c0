package cart

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/your-org/storefront/internal/domain/catalog"
)

func product(id string, price float64) catalog.Product {
	return catalog.Product{ID: id, Name: "Product " + id, Price: price, InStock: true}
}

func TestAddItem_IncrementsExistingLine(t *testing.T) {
	s := NewStore()
	p := product("p1", 10)

	s.AddItem(p)
	s.AddItem(p)

	snap := s.Snapshot()
	if len(snap.Items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(snap.Items))
	}
	if snap.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", snap.Items[0].Quantity)
	}
}

func TestCartTotalScenario(t *testing.T) {
	s := NewStore()
	p1 := product("p1", 10.00)
	p2 := product("p2", 5.00)

	s.AddItem(p1)
	s.AddItem(p1)
	s.AddItem(p2)

	snap := s.Snapshot()
	if snap.Totals.Total != 25.00 {
		t.Fatalf("expected total 25.00, got %v", snap.Totals.Total)
	}
	if snap.Totals.ItemCount != 2 {
		t.Fatalf("expected 2 unique items, got %d", snap.Totals.ItemCount)
	}
	if snap.Totals.TotalQuantity != 3 {
		t.Fatalf("expected total quantity 3, got %d", snap.Totals.TotalQuantity)
	}
}

func TestSetQuantity_TableDriven(t *testing.T) {
	cases := []struct {
		name         string
		quantity     int
		wantLines    int
		wantQuantity int
	}{
		{"positive quantity updates line", 5, 1, 5},
		{"zero removes line", 0, 0, 0},
		{"negative removes line", -3, 0, 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s := NewStore()
			s.AddItem(product("p1", 10))

			s.SetQuantity("p1", tc.quantity)

			snap := s.Snapshot()
			if len(snap.Items) != tc.wantLines {
				t.Fatalf("expected %d line items, got %d", tc.wantLines, len(snap.Items))
			}
			if tc.wantLines > 0 && snap.Items[0].Quantity != tc.wantQuantity {
				t.Fatalf("expected quantity %d, got %d", tc.wantQuantity, snap.Items[0].Quantity)
			}
		})
	}
}

func TestSetQuantity_AbsentIDIsNoOp(t *testing.T) {
	s := NewStore()
	s.AddItem(product("p1", 10))

	s.SetQuantity("no-such", 3)

	snap := s.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0].Product.ID != "p1" {
		t.Fatalf("no-op mutated cart: %+v", snap.Items)
	}
	if snap.Totals.Total != 10 {
		t.Fatalf("total changed on no-op: %v", snap.Totals.Total)
	}
}

func TestRemoveItem(t *testing.T) {
	s := NewStore()
	s.AddItem(product("p1", 10))
	s.AddItem(product("p2", 20))

	s.RemoveItem("p1")

	snap := s.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0].Product.ID != "p2" {
		t.Fatalf("expected only p2 to remain, got %+v", snap.Items)
	}
	if snap.Totals.Total != 20 {
		t.Fatalf("expected total 20, got %v", snap.Totals.Total)
	}

	// absent id is a no-op, not an error
	s.RemoveItem("no-such")
	if snap := s.Snapshot(); len(snap.Items) != 1 {
		t.Fatalf("remove of absent id mutated cart")
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.AddItem(product("p1", 10))
	s.AddItem(product("p2", 20))

	s.Clear()

	snap := s.Snapshot()
	if len(snap.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(snap.Items))
	}
	if snap.Totals.Total != 0 {
		t.Fatalf("expected total 0, got %v", snap.Totals.Total)
	}
}

func TestOpenFlag(t *testing.T) {
	s := NewStore()

	s.SetOpen(true)
	if !s.Snapshot().IsOpen {
		t.Fatalf("expected cart open")
	}

	if open := s.ToggleOpen(); open {
		t.Fatalf("expected toggle to close the cart")
	}

	// visibility is orthogonal to line items
	s.AddItem(product("p1", 10))
	if s.Snapshot().IsOpen {
		t.Fatalf("adding an item changed visibility")
	}
}

// TestTotalInvariant_RandomOps drives the cart with randomized
// add/remove/setQuantity sequences and checks the total against an
// independently maintained model after every step.
func TestTotalInvariant_RandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	products := make([]catalog.Product, 8)
	for i := range products {
		products[i] = product("p-"+strconv.Itoa(i), float64(rng.Intn(5000))/100)
	}

	s := NewStore()
	model := make(map[string]int)

	expected := func() float64 {
		sum := 0.0
		for i, p := range products {
			sum += p.Price * float64(model["p-"+strconv.Itoa(i)])
		}
		return sum
	}

	for step := 0; step < 1000; step++ {
		p := products[rng.Intn(len(products))]
		switch rng.Intn(3) {
		case 0:
			s.AddItem(p)
			model[p.ID]++
		case 1:
			s.RemoveItem(p.ID)
			delete(model, p.ID)
		case 2:
			q := rng.Intn(7) - 2
			if _, ok := model[p.ID]; ok {
				if q <= 0 {
					delete(model, p.ID)
				} else {
					model[p.ID] = q
				}
			}
			s.SetQuantity(p.ID, q)
		}

		snap := s.Snapshot()
		if len(snap.Items) != len(model) {
			t.Fatalf("step %d: expected %d line items, got %d", step, len(model), len(snap.Items))
		}
		if diff := math.Abs(snap.Totals.Total - expected()); diff > 1e-9 {
			t.Fatalf("step %d: total drifted by %v", step, diff)
		}
		for _, item := range snap.Items {
			if item.Quantity <= 0 {
				t.Fatalf("step %d: zero-quantity line item survived", step)
			}
			if model[item.Product.ID] != item.Quantity {
				t.Fatalf("step %d: quantity mismatch for %s", step, item.Product.ID)
			}
		}
	}
}
