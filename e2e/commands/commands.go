// Package commands holds reusable test steps that are shared across specs,
// looked up by name. Commands are registered once at init time; registering
// a name twice or running an unknown name is a programming error and panics.
package commands

import (
	"fmt"
	"testing"

	"github.com/playwright-community/playwright-go"

	"github.com/swagshop/ecommerce/e2e/pages"
	"github.com/swagshop/ecommerce/internal/catalog"
	"github.com/swagshop/ecommerce/internal/models"
)

// FillCartSize is how many products the fillCart command puts in the cart.
const FillCartSize = 3

// Command is a reusable test step operating on a live page.
type Command func(t *testing.T, page playwright.Page)

var registry = map[string]Command{}

// Register adds a command under the given name.
func Register(name string, cmd Command) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("commands: %q is already registered", name))
	}
	if cmd == nil {
		panic(fmt.Sprintf("commands: %q registered with a nil command", name))
	}
	registry[name] = cmd
}

// Run executes the named command against the given page.
func Run(name string, t *testing.T, page playwright.Page) {
	t.Helper()
	cmd, ok := registry[name]
	if !ok {
		panic(fmt.Sprintf("commands: unknown command %q", name))
	}
	cmd(t, page)
}

func init() {
	// loginAsStandardUser opens the storefront and signs in, leaving the
	// browser on the inventory page.
	Register("loginAsStandardUser", func(t *testing.T, page playwright.Page) {
		t.Helper()
		pages.NewLoginPage(t, page).
			Navigate().
			LoginAs(models.StandardUser, models.AccountPassword).
			AssertLoaded()
	})

	// fillCart adds the first products of the catalog to the cart. It
	// expects the browser to be on the inventory page.
	Register("fillCart", func(t *testing.T, page playwright.Page) {
		t.Helper()
		inventory := pages.NewInventoryPage(t, page)
		for _, product := range catalog.Default()[:FillCartSize] {
			inventory.AddToCart(product.Slug)
		}
		inventory.AssertBadgeCount(FillCartSize)
	})
}
