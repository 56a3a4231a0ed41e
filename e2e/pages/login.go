package pages

import (
	"testing"

	"github.com/playwright-community/playwright-go"
)

// LoginPage is the entry page of the storefront.
type LoginPage struct {
	t    *testing.T
	page playwright.Page
}

// NewLoginPage creates a page object for the login page.
func NewLoginPage(t *testing.T, page playwright.Page) *LoginPage {
	return &LoginPage{t: t, page: page}
}

func (p *LoginPage) usernameField() playwright.Locator {
	return p.page.Locator(testSelector("username"))
}

func (p *LoginPage) passwordField() playwright.Locator {
	return p.page.Locator(testSelector("password"))
}

func (p *LoginPage) loginButton() playwright.Locator {
	return p.page.Locator(testSelector("login-button"))
}

func (p *LoginPage) errorMessage() playwright.Locator {
	return p.page.Locator(testSelector("error"))
}

// Navigate opens the login page.
func (p *LoginPage) Navigate() *LoginPage {
	p.t.Helper()
	if _, err := p.page.Goto(cfg.BaseURL + "/"); err != nil {
		p.t.Fatalf("failed to open login page: %v", err)
	}
	return p
}

// TypeUsername fills the username field.
func (p *LoginPage) TypeUsername(username string) *LoginPage {
	p.t.Helper()
	if err := p.usernameField().Fill(username); err != nil {
		p.t.Fatalf("failed to fill username: %v", err)
	}
	return p
}

// TypePassword fills the password field.
func (p *LoginPage) TypePassword(password string) *LoginPage {
	p.t.Helper()
	if err := p.passwordField().Fill(password); err != nil {
		p.t.Fatalf("failed to fill password: %v", err)
	}
	return p
}

// ClearUsername empties the username field.
func (p *LoginPage) ClearUsername() *LoginPage {
	p.t.Helper()
	if err := p.usernameField().Clear(); err != nil {
		p.t.Fatalf("failed to clear username: %v", err)
	}
	return p
}

// ClearPassword empties the password field.
func (p *LoginPage) ClearPassword() *LoginPage {
	p.t.Helper()
	if err := p.passwordField().Clear(); err != nil {
		p.t.Fatalf("failed to clear password: %v", err)
	}
	return p
}

// UsernameValue reads the current value of the username field.
func (p *LoginPage) UsernameValue() string {
	p.t.Helper()
	value, err := p.usernameField().InputValue()
	if err != nil {
		p.t.Fatalf("failed to read username value: %v", err)
	}
	return value
}

// Submit clicks the login button expecting a successful login.
func (p *LoginPage) Submit() *InventoryPage {
	p.t.Helper()
	if err := p.loginButton().Click(); err != nil {
		p.t.Fatalf("failed to submit login form: %v", err)
	}
	return NewInventoryPage(p.t, p.page)
}

// SubmitExpectingError clicks the login button expecting to stay on the
// login page with an error message.
func (p *LoginPage) SubmitExpectingError() *LoginPage {
	p.t.Helper()
	if err := p.loginButton().Click(); err != nil {
		p.t.Fatalf("failed to submit login form: %v", err)
	}
	if err := expect.Locator(p.errorMessage()).ToBeVisible(); err != nil {
		p.t.Fatalf("expected a login error message: %v", err)
	}
	return p
}

// LoginAs fills the credentials and submits the form.
func (p *LoginPage) LoginAs(username, password string) *InventoryPage {
	p.t.Helper()
	return p.TypeUsername(username).TypePassword(password).Submit()
}

// AssertErrorContains checks that the error message contains the given text.
func (p *LoginPage) AssertErrorContains(text string) *LoginPage {
	p.t.Helper()
	if err := expect.Locator(p.errorMessage()).ToContainText(text); err != nil {
		p.t.Fatalf("login error should contain %q: %v", text, err)
	}
	return p
}
