package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/swagshop/ecommerce/internal/session"
)

func newInventoryHandler(t *testing.T, store *session.Store) *InventoryHandler {
	t.Helper()
	handler, err := NewInventoryHandler(tmplPath("inventory.html"), store)
	if err != nil {
		t.Fatalf("Failed to create handler: %v", err)
	}
	return handler
}

func TestInventoryHandler_RequiresSession(t *testing.T) {
	handler := newInventoryHandler(t, session.NewStore())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, getRequest("/inventory", nil))

	assertRedirect(t, w, "/")
}

func TestInventoryHandler_ListsAllProducts(t *testing.T) {
	store, sess := loggedInSession(t)
	handler := newInventoryHandler(t, store)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, getRequest("/inventory", sess))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	doc := parseDoc(t, w.Body)
	if got := doc.Find("[data-test='inventory-item']").Length(); got != 6 {
		t.Errorf("inventory items = %d, want 6", got)
	}

	// Empty cart renders no badge at all
	if doc.Find("[data-test='shopping-cart-badge']").Length() != 0 {
		t.Error("badge should be absent for an empty cart")
	}

	// Every product gets an add-to-cart button
	if got := doc.Find("button[data-test^='add-to-cart-']").Length(); got != 6 {
		t.Errorf("add-to-cart buttons = %d, want 6", got)
	}
}

func TestInventoryHandler_BadgeAndRemoveButtons(t *testing.T) {
	store, sess := loggedInSession(t)
	handler := newInventoryHandler(t, store)

	sess.Cart.Add("trail-backpack")
	sess.Cart.Add("logo-tee")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, getRequest("/inventory", sess))

	doc := parseDoc(t, w.Body)
	badge := doc.Find("[data-test='shopping-cart-badge']")
	if badge.Length() != 1 {
		t.Fatal("expected cart badge to be rendered")
	}
	if badge.Text() != "2" {
		t.Errorf("badge = %q, want %q", badge.Text(), "2")
	}

	if doc.Find("button[data-test='remove-trail-backpack']").Length() != 1 {
		t.Error("in-cart product should render a remove button")
	}
	if doc.Find("button[data-test='add-to-cart-trail-backpack']").Length() != 0 {
		t.Error("in-cart product should not render an add button")
	}
	if got := doc.Find("button[data-test^='add-to-cart-']").Length(); got != 4 {
		t.Errorf("add-to-cart buttons = %d, want 4", got)
	}
}

func TestInventoryHandler_SortOrder(t *testing.T) {
	tests := []struct {
		name      string
		sort      string
		wantFirst string
	}{
		{"default is name ascending", "", "Bolt Bike Light"},
		{"name descending", "za", "Trail Backpack"},
		{"price low to high", "lohi", "Canvas Onesie"},
		{"price high to low", "hilo", "Fleece Jacket Onyx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, sess := loggedInSession(t)
			handler := newInventoryHandler(t, store)

			target := "/inventory"
			if tt.sort != "" {
				target += "?sort=" + tt.sort
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, getRequest(target, sess))

			doc := parseDoc(t, w.Body)
			first := doc.Find("[data-test='inventory-item-name']").First().Text()
			if first != tt.wantFirst {
				t.Errorf("first item = %q, want %q", first, tt.wantFirst)
			}
		})
	}
}

func TestInventoryHandler_MethodNotAllowed(t *testing.T) {
	store, sess := loggedInSession(t)
	handler := newInventoryHandler(t, store)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, postForm("/inventory", sess, nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}
