package session

import (
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/swagshop/ecommerce/internal/models"
)

// CookieName is the session cookie set after a successful login
const CookieName = "swagshop-session"

// ErrNotFound is returned when a session ID is unknown or expired
var ErrNotFound = errors.New("session not found")

// Session holds the per-shopper state: who is logged in and what is in
// their cart. A session is only ever touched by one request at a time, but
// the store itself is shared across requests.
type Session struct {
	ID       string
	Username string
	Cart     *models.Cart

	// Checkout holds the step-one shipping info until the order is placed
	Checkout *models.CustomerInfo
	// LastOrderRef is the reference of the most recently completed order,
	// shown on the order-complete page
	LastOrderRef string
}

// Store is an in-memory session store keyed by session ID
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session for the given username
func (s *Store) Create(username string) *Session {
	session := &Session{
		ID:       uuid.New().String(),
		Username: username,
		Cart:     models.NewCart(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

// Get looks a session up by ID
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

// Delete ends a session. Deleting an unknown ID is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// FromRequest resolves the session referenced by the request's cookie
func (s *Store) FromRequest(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.Get(cookie.Value)
}

// SetCookie attaches the session cookie to the response
func SetCookie(w http.ResponseWriter, session *Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
