package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/swagshop/ecommerce/internal/models"
	"github.com/swagshop/ecommerce/internal/session"
)

// tmplPath resolves a template file relative to this package
func tmplPath(name string) string {
	return filepath.Join("..", "..", "templates", name)
}

// loggedInSession creates a store with one authenticated session
func loggedInSession(t *testing.T) (*session.Store, *session.Session) {
	t.Helper()
	store := session.NewStore()
	sess := store.Create(models.StandardUser)
	return store, sess
}

// getRequest builds a GET request carrying the session cookie
func getRequest(target string, sess *session.Session) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if sess != nil {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.ID})
	}
	return req
}

// postForm builds a POST form request carrying the session cookie
func postForm(target string, sess *session.Session, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if sess != nil {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.ID})
	}
	return req
}

// parseDoc parses a rendered page for selector assertions
func parseDoc(t *testing.T, body io.Reader) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		t.Fatalf("failed to parse response HTML: %v", err)
	}
	return doc
}

// assertRedirect checks for a see-other redirect to the given location
func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Location = %q, want %q", got, location)
	}
}
