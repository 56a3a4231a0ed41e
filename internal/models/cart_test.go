package models

import (
	"errors"
	"testing"

	"pgregory.net/rapid"

	"github.com/swagshop/ecommerce/internal/catalog"
)

func catalogSlugs() []string {
	products := catalog.Default()
	slugs := make([]string, len(products))
	for i, p := range products {
		slugs[i] = p.Slug
	}
	return slugs
}

func TestCartAddRemove(t *testing.T) {
	cart := NewCart()

	if cart.Count() != 0 {
		t.Fatalf("new cart count = %d, want 0", cart.Count())
	}
	if items := cart.Items(); len(items) != 0 {
		t.Fatalf("new cart items = %v, want empty slice", items)
	}

	if err := cart.Add("trail-backpack"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := cart.Add("bolt-bike-light"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if cart.Count() != 2 {
		t.Errorf("count = %d, want 2", cart.Count())
	}
	if !cart.Contains("trail-backpack") {
		t.Error("expected cart to contain trail-backpack")
	}

	// Insertion order is preserved
	items := cart.Items()
	if items[0].Slug != "trail-backpack" || items[1].Slug != "bolt-bike-light" {
		t.Errorf("unexpected item order: %v", items)
	}

	if err := cart.Remove("trail-backpack"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if cart.Count() != 1 {
		t.Errorf("count after remove = %d, want 1", cart.Count())
	}
	if cart.Contains("trail-backpack") {
		t.Error("removed product still in cart")
	}
}

func TestCartErrors(t *testing.T) {
	cart := NewCart()

	if err := cart.Add("no-such-product"); !errors.Is(err, ErrProductNotInCatalog) {
		t.Errorf("Add(unknown) error = %v, want ErrProductNotInCatalog", err)
	}

	if err := cart.Add("logo-tee"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := cart.Add("logo-tee"); !errors.Is(err, ErrProductAlreadyAdded) {
		t.Errorf("double Add error = %v, want ErrProductAlreadyAdded", err)
	}

	if err := cart.Remove("trail-backpack"); !errors.Is(err, ErrProductNotInCart) {
		t.Errorf("Remove(absent) error = %v, want ErrProductNotInCart", err)
	}
}

func TestCartTotal(t *testing.T) {
	cart := NewCart()
	cart.Add("trail-backpack") // 2999
	cart.Add("bolt-bike-light") // 999

	if got, want := cart.TotalCents(), int64(3998); got != want {
		t.Errorf("total = %d, want %d", got, want)
	}

	cart.Clear()
	if cart.Count() != 0 || cart.TotalCents() != 0 {
		t.Errorf("cleared cart count = %d total = %d, want 0/0", cart.Count(), cart.TotalCents())
	}
}

// TestCartInvariants drives random add/remove sequences against a model
// set and checks that count, membership and total always agree.
func TestCartInvariants(t *testing.T) {
	slugs := catalogSlugs()

	rapid.Check(t, func(t *rapid.T) {
		cart := NewCart()
		model := make(map[string]bool)

		steps := rapid.IntRange(0, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			slug := rapid.SampledFrom(slugs).Draw(t, "slug")
			if rapid.Bool().Draw(t, "add") {
				err := cart.Add(slug)
				if model[slug] {
					if !errors.Is(err, ErrProductAlreadyAdded) {
						t.Fatalf("Add(%q) on full slot: error = %v", slug, err)
					}
				} else if err != nil {
					t.Fatalf("Add(%q) error = %v", slug, err)
				} else {
					model[slug] = true
				}
			} else {
				err := cart.Remove(slug)
				if model[slug] {
					if err != nil {
						t.Fatalf("Remove(%q) error = %v", slug, err)
					}
					delete(model, slug)
				} else if !errors.Is(err, ErrProductNotInCart) {
					t.Fatalf("Remove(%q) on empty slot: error = %v", slug, err)
				}
			}
		}

		if cart.Count() != len(model) {
			t.Fatalf("count = %d, model size = %d", cart.Count(), len(model))
		}

		var wantTotal int64
		for slug := range model {
			product, _ := catalog.BySlug(slug)
			wantTotal += product.PriceCents
			if !cart.Contains(slug) {
				t.Fatalf("cart missing %q", slug)
			}
		}
		if cart.TotalCents() != wantTotal {
			t.Fatalf("total = %d, want %d", cart.TotalCents(), wantTotal)
		}
	})
}
