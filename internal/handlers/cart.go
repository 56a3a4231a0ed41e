package handlers

import (
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/swagshop/ecommerce/internal/catalog"
	"github.com/swagshop/ecommerce/internal/models"
	"github.com/swagshop/ecommerce/internal/session"
)

// CartHandler serves the cart page
type CartHandler struct {
	template *template.Template
	sessions *session.Store
}

// CartData represents the data passed to the cart template
type CartData struct {
	Items     []catalog.Product
	CartCount int
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(templatePath string, sessions *session.Store) (*CartHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, err
	}

	return &CartHandler{
		template: tmpl,
		sessions: sessions,
	}, nil
}

// ServeHTTP handles the GET /cart request
func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess, ok := requireSession(h.sessions, w, r)
	if !ok {
		return
	}

	data := CartData{
		Items:     sess.Cart.Items(),
		CartCount: sess.Cart.Count(),
	}

	if err := h.template.Execute(w, data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Cart item actions, routed as POST /cart/add and POST /cart/remove
const (
	CartActionAdd    = "add"
	CartActionRemove = "remove"
)

// CartItemHandler mutates the session cart and redirects back to the page
// the shopper acted from
type CartItemHandler struct {
	sessions *session.Store
	action   string
}

// NewCartAddHandler creates the handler for POST /cart/add
func NewCartAddHandler(sessions *session.Store) *CartItemHandler {
	return &CartItemHandler{sessions: sessions, action: CartActionAdd}
}

// NewCartRemoveHandler creates the handler for POST /cart/remove
func NewCartRemoveHandler(sessions *session.Store) *CartItemHandler {
	return &CartItemHandler{sessions: sessions, action: CartActionRemove}
}

// ServeHTTP applies the cart mutation and redirects
func (h *CartItemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess, ok := requireSession(h.sessions, w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	slug := r.PostFormValue("slug")

	var err error
	switch h.action {
	case CartActionAdd:
		err = sess.Cart.Add(slug)
	case CartActionRemove:
		err = sess.Cart.Remove(slug)
	}

	switch {
	case errors.Is(err, models.ErrProductNotInCatalog):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		log.Printf("Cart %s %q failed: %v", h.action, slug, err)
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	http.Redirect(w, r, returnTarget(r), http.StatusSeeOther)
}

// returnTarget decides where a cart mutation sends the shopper back to.
// Only in-app destinations are allowed.
func returnTarget(r *http.Request) string {
	switch r.PostFormValue("return") {
	case "cart":
		return "/cart"
	default:
		target := "/inventory"
		if sort := r.PostFormValue("sort"); sort != "" {
			target += "?sort=" + sort
		}
		return target
	}
}
