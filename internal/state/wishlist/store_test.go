package wishlist_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"clothiq/internal/domain"
	"clothiq/internal/state/wishlist"
)

func product(id int64) domain.Product {
	return domain.Product{
		ID:       domain.ProductID(id),
		Title:    "dress " + domain.ProductID(id).String(),
		Category: "womens-dresses",
		Price:    decimal.NewFromInt(id),
	}
}

func TestToggle_FavoritesThenUnfavorites(t *testing.T) {
	w := wishlist.New()
	p := product(7)

	w.Toggle(p)
	if !w.IsFavorited(7) {
		t.Fatal("expected product 7 to be favorited after first toggle")
	}

	w.Toggle(p)
	if w.IsFavorited(7) {
		t.Fatal("expected product 7 to be removed after second toggle")
	}
}

func TestToggle_PairRestoresMembership(t *testing.T) {
	w := wishlist.New()
	w.Toggle(product(1))
	w.Toggle(product(2))

	before := w.Products()
	w.Toggle(product(3))
	w.Toggle(product(3))
	after := w.Products()

	if len(before) != len(after) {
		t.Fatalf("len: before %d, after %d", len(before), len(after))
	}
	for i := range before {
		if before[i].ID != after[i].ID {
			t.Fatalf("entry %d: before %s, after %s", i, before[i].ID, after[i].ID)
		}
	}
}

func TestToggle_StoresFullRecord(t *testing.T) {
	w := wishlist.New()
	p := product(4)
	p.Description = "linen summer dress"
	w.Toggle(p)

	got := w.Products()
	if len(got) != 1 || got[0].Description != p.Description || got[0].Category != p.Category {
		t.Fatalf("stored record = %+v, want %+v", got, p)
	}
}

func TestToggle_MatchesByIDOnly(t *testing.T) {
	w := wishlist.New()
	w.Toggle(product(5))

	renamed := product(5)
	renamed.Title = "something else"
	w.Toggle(renamed)

	if w.IsFavorited(5) || w.Len() != 0 {
		t.Fatalf("expected toggle with same id to remove entry, len=%d", w.Len())
	}
}

func TestToggle_IgnoresZeroID(t *testing.T) {
	w := wishlist.New()
	w.Toggle(domain.Product{Title: "nameless"})
	if w.Len() != 0 {
		t.Fatalf("len = %d, want 0", w.Len())
	}
}

func TestIsFavorited_UnknownID(t *testing.T) {
	w := wishlist.New()
	w.Toggle(product(1))
	if w.IsFavorited(2) {
		t.Fatal("unexpected membership for id 2")
	}
}
