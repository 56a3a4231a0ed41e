package handlers

import (
	"html/template"
	"net/http"

	"github.com/swagshop/ecommerce/internal/catalog"
	"github.com/swagshop/ecommerce/internal/session"
)

// InventoryHandler serves the product listing page
type InventoryHandler struct {
	template *template.Template
	sessions *session.Store
}

// InventoryItem pairs a catalog product with its cart state for rendering
type InventoryItem struct {
	catalog.Product
	InCart bool
}

// InventoryData represents the data passed to the inventory template
type InventoryData struct {
	Items     []InventoryItem
	CartCount int
	Sort      string
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(templatePath string, sessions *session.Store) (*InventoryHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, err
	}

	return &InventoryHandler{
		template: tmpl,
		sessions: sessions,
	}, nil
}

// ServeHTTP handles the GET /inventory request
func (h *InventoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess, ok := requireSession(h.sessions, w, r)
	if !ok {
		return
	}

	sortOption := r.URL.Query().Get("sort")
	if sortOption == "" {
		sortOption = catalog.SortNameAsc
	}

	products := catalog.Sorted(catalog.Default(), sortOption)
	items := make([]InventoryItem, len(products))
	for i, p := range products {
		items[i] = InventoryItem{Product: p, InCart: sess.Cart.Contains(p.Slug)}
	}

	data := InventoryData{
		Items:     items,
		CartCount: sess.Cart.Count(),
		Sort:      sortOption,
	}

	if err := h.template.Execute(w, data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
