package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/swagshop/ecommerce/internal/catalog"
	"github.com/swagshop/ecommerce/internal/models"
	"github.com/swagshop/ecommerce/internal/services"
	"github.com/swagshop/ecommerce/internal/session"
)

// CheckoutStepOneHandler serves the shipping information form
type CheckoutStepOneHandler struct {
	template *template.Template
	sessions *session.Store
}

// CheckoutStepOneData represents the data passed to the step-one template
type CheckoutStepOneData struct {
	Error     string
	CartCount int
}

// NewCheckoutStepOneHandler creates a new CheckoutStepOneHandler
func NewCheckoutStepOneHandler(templatePath string, sessions *session.Store) (*CheckoutStepOneHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, err
	}

	return &CheckoutStepOneHandler{
		template: tmpl,
		sessions: sessions,
	}, nil
}

// ServeHTTP handles GET (form) and POST (submission) for /checkout-step-one
func (h *CheckoutStepOneHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(h.sessions, w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.render(w, sess, "")
	case http.MethodPost:
		h.handleSubmit(w, r, sess)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *CheckoutStepOneHandler) render(w http.ResponseWriter, sess *session.Session, errorMessage string) {
	data := CheckoutStepOneData{
		Error:     errorMessage,
		CartCount: sess.Cart.Count(),
	}
	if err := h.template.Execute(w, data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *CheckoutStepOneHandler) handleSubmit(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	customer := models.CustomerInfo{
		FirstName:  r.PostFormValue("first-name"),
		LastName:   r.PostFormValue("last-name"),
		PostalCode: r.PostFormValue("postal-code"),
	}

	if err := customer.Validate(); err != nil {
		h.render(w, sess, err.Error())
		return
	}

	sess.Checkout = &customer
	http.Redirect(w, r, "/checkout-step-two", http.StatusSeeOther)
}

// CheckoutStepTwoHandler serves the order overview and places the order
type CheckoutStepTwoHandler struct {
	template *template.Template
	sessions *session.Store
	orders   services.OrderService
}

// CheckoutStepTwoData represents the data passed to the overview template
type CheckoutStepTwoData struct {
	Items     []catalog.Product
	CartCount int
	Total     string
}

// NewCheckoutStepTwoHandler creates a new CheckoutStepTwoHandler
func NewCheckoutStepTwoHandler(templatePath string, sessions *session.Store, orders services.OrderService) (*CheckoutStepTwoHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, err
	}

	return &CheckoutStepTwoHandler{
		template: tmpl,
		sessions: sessions,
		orders:   orders,
	}, nil
}

// ServeHTTP handles GET (overview) and POST (finish) for /checkout-step-two
func (h *CheckoutStepTwoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(h.sessions, w, r)
	if !ok {
		return
	}

	// Step two is only reachable after step one was submitted
	if sess.Checkout == nil {
		http.Redirect(w, r, "/checkout-step-one", http.StatusSeeOther)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.render(w, sess)
	case http.MethodPost:
		h.handleFinish(w, r, sess)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *CheckoutStepTwoHandler) render(w http.ResponseWriter, sess *session.Session) {
	data := CheckoutStepTwoData{
		Items:     sess.Cart.Items(),
		CartCount: sess.Cart.Count(),
		Total:     (&models.Order{TotalCents: sess.Cart.TotalCents()}).DisplayTotal(),
	}
	if err := h.template.Execute(w, data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *CheckoutStepTwoHandler) handleFinish(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	order, err := h.orders.PlaceOrder(*sess.Checkout, sess.Cart)
	if err != nil {
		log.Printf("Failed to place order for %s: %v", sess.Username, err)
		http.Error(w, "Failed to place order", http.StatusInternalServerError)
		return
	}

	log.Printf("Order placed - Reference: %s, Total: %s", order.Reference, order.DisplayTotal())

	sess.Cart.Clear()
	sess.Checkout = nil
	sess.LastOrderRef = order.Reference

	http.Redirect(w, r, "/checkout-complete", http.StatusSeeOther)
}

// CheckoutCompleteHandler serves the order confirmation page
type CheckoutCompleteHandler struct {
	template *template.Template
	sessions *session.Store
}

// CheckoutCompleteData represents the data passed to the complete template
type CheckoutCompleteData struct {
	OrderReference string
}

// NewCheckoutCompleteHandler creates a new CheckoutCompleteHandler
func NewCheckoutCompleteHandler(templatePath string, sessions *session.Store) (*CheckoutCompleteHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, err
	}

	return &CheckoutCompleteHandler{
		template: tmpl,
		sessions: sessions,
	}, nil
}

// ServeHTTP handles the GET /checkout-complete request
func (h *CheckoutCompleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess, ok := requireSession(h.sessions, w, r)
	if !ok {
		return
	}

	data := CheckoutCompleteData{
		OrderReference: sess.LastOrderRef,
	}

	if err := h.template.Execute(w, data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
