package handlers

import (
	"net/http"

	"github.com/swagshop/ecommerce/internal/session"
)

// requireSession resolves the shopper's session or redirects to the login
// page. The second return value reports whether the request may proceed.
func requireSession(store *session.Store, w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := store.FromRequest(r)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil, false
	}
	return sess, true
}
