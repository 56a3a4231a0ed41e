package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/swagshop/ecommerce/internal/models"
	"github.com/swagshop/ecommerce/internal/session"
)

func newLoginHandler(t *testing.T, store *session.Store) *LoginHandler {
	t.Helper()
	handler, err := NewLoginHandler(tmplPath("login.html"), store)
	if err != nil {
		t.Fatalf("Failed to create handler: %v", err)
	}
	return handler
}

func TestLoginHandler_RenderForm(t *testing.T) {
	handler := newLoginHandler(t, session.NewStore())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	doc := parseDoc(t, w.Body)
	for _, sel := range []string{
		"[data-test='username']",
		"[data-test='password']",
		"[data-test='login-button']",
	} {
		if doc.Find(sel).Length() != 1 {
			t.Errorf("expected exactly one %s element", sel)
		}
	}
	if doc.Find("[data-test='error']").Length() != 0 {
		t.Error("fresh login form should not show an error")
	}
}

func TestLoginHandler_ValidCredentials(t *testing.T) {
	store := session.NewStore()
	handler := newLoginHandler(t, store)

	form := url.Values{
		"user-name": {models.StandardUser},
		"password":  {models.AccountPassword},
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, postForm("/", nil, form))

	assertRedirect(t, w, "/inventory")

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != session.CookieName {
		t.Fatalf("expected session cookie, got %v", cookies)
	}

	sess, err := store.Get(cookies[0].Value)
	if err != nil {
		t.Fatalf("session not created: %v", err)
	}
	if sess.Username != models.StandardUser {
		t.Errorf("session username = %q, want %q", sess.Username, models.StandardUser)
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		password    string
		wantMessage string
	}{
		{
			name:        "wrong password",
			username:    models.StandardUser,
			password:    "wrong",
			wantMessage: "Username and password do not match",
		},
		{
			name:        "unknown user",
			username:    "ghost_user",
			password:    models.AccountPassword,
			wantMessage: "Username and password do not match",
		},
		{
			name:        "locked out user",
			username:    models.LockedOutUser,
			password:    models.AccountPassword,
			wantMessage: "this user has been locked out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newLoginHandler(t, session.NewStore())

			form := url.Values{
				"user-name": {tt.username},
				"password":  {tt.password},
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, postForm("/", nil, form))

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}

			doc := parseDoc(t, w.Body)
			errorText := doc.Find("[data-test='error']").Text()
			if !strings.Contains(errorText, tt.wantMessage) {
				t.Errorf("error = %q, want substring %q", errorText, tt.wantMessage)
			}
			if !strings.HasPrefix(errorText, "Epic sadface:") {
				t.Errorf("error = %q, want Epic sadface prefix", errorText)
			}
		})
	}
}

func TestLoginHandler_MethodNotAllowed(t *testing.T) {
	handler := newLoginHandler(t, session.NewStore())

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}
