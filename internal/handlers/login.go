package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/swagshop/ecommerce/internal/models"
	"github.com/swagshop/ecommerce/internal/session"
)

// LoginHandler serves the login page and processes login submissions
type LoginHandler struct {
	template *template.Template
	sessions *session.Store
}

// LoginData represents the data passed to the login template
type LoginData struct {
	Error string
}

// NewLoginHandler creates a new LoginHandler
func NewLoginHandler(templatePath string, sessions *session.Store) (*LoginHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, err
	}

	return &LoginHandler{
		template: tmpl,
		sessions: sessions,
	}, nil
}

// ServeHTTP handles GET / (login form) and POST / (login submission)
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.renderForm(w, "")
	case http.MethodPost:
		h.handleLogin(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *LoginHandler) renderForm(w http.ResponseWriter, errorMessage string) {
	if err := h.template.Execute(w, LoginData{Error: errorMessage}); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *LoginHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("user-name")
	password := r.PostFormValue("password")

	account, err := models.Authenticate(username, password)
	if err != nil {
		log.Printf("Login rejected for %q: %v", username, err)
		// The error text is user-facing copy, rendered verbatim on the page
		h.renderForm(w, "Epic sadface: "+err.Error())
		return
	}

	sess := h.sessions.Create(account.Username)
	session.SetCookie(w, sess)
	http.Redirect(w, r, "/inventory", http.StatusSeeOther)
}
