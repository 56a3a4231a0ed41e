// Package pages provides page objects for the storefront. Each page object
// wraps a playwright.Page and fails the owning test on any driver error, so
// specs read as a linear sequence of actions and assertions.
package pages

import (
	"fmt"
	"strconv"
	"sync"
	"testing"

	"github.com/playwright-community/playwright-go"
)

// Config holds the suite-wide settings shared by every page object.
type Config struct {
	// BaseURL is the root of the storefront under test, without a trailing slash.
	BaseURL string
	// DefaultTimeout is the retry window for assertions, in milliseconds.
	DefaultTimeout float64
}

var (
	configMu   sync.Mutex
	cfg        Config
	configured bool
	expect     playwright.PlaywrightAssertions
)

// Configure sets the suite configuration. It must be called exactly once,
// before any page object is created.
func Configure(c Config) {
	configMu.Lock()
	defer configMu.Unlock()

	if configured {
		panic("pages: Configure called more than once")
	}
	if c.BaseURL == "" {
		panic("pages: Configure requires a base URL")
	}

	cfg = c
	expect = playwright.NewPlaywrightAssertions(c.DefaultTimeout)
	configured = true
}

// testSelector builds a selector for the data-test attributes the templates
// expose for testing.
func testSelector(id string) string {
	return fmt.Sprintf("[data-test='%s']", id)
}

// header covers the cart link and badge rendered at the top of every
// storefront page after login.
type header struct {
	t    *testing.T
	page playwright.Page
}

func (h header) cartLink() playwright.Locator {
	return h.page.Locator(testSelector("shopping-cart-link"))
}

func (h header) cartBadge() playwright.Locator {
	return h.page.Locator(testSelector("shopping-cart-badge"))
}

func (h header) title() playwright.Locator {
	return h.page.Locator(testSelector("title"))
}

// AssertBadgeCount checks that the cart badge is visible and reads count.
func (h header) AssertBadgeCount(count int) {
	h.t.Helper()
	if err := expect.Locator(h.cartBadge()).ToHaveText(strconv.Itoa(count)); err != nil {
		h.t.Fatalf("cart badge should read %d: %v", count, err)
	}
}

// AssertNoBadge checks that no cart badge is rendered at all.
func (h header) AssertNoBadge() {
	h.t.Helper()
	if err := expect.Locator(h.cartBadge()).ToHaveCount(0); err != nil {
		h.t.Fatalf("cart badge should be absent: %v", err)
	}
}

// OpenCart clicks the cart link and lands on the cart page.
func (h header) OpenCart() *CartPage {
	h.t.Helper()
	if err := h.cartLink().Click(); err != nil {
		h.t.Fatalf("failed to open cart: %v", err)
	}
	return NewCartPage(h.t, h.page)
}

func (h header) assertTitle(text string) {
	h.t.Helper()
	if err := expect.Locator(h.title()).ToHaveText(text); err != nil {
		h.t.Fatalf("page title should be %q: %v", text, err)
	}
}
