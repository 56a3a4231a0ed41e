package pages

import (
	"fmt"
	"testing"

	"github.com/playwright-community/playwright-go"
)

// InventoryPage lists the products and lets the customer manage the cart.
type InventoryPage struct {
	header
}

// NewInventoryPage creates a page object for the inventory page.
func NewInventoryPage(t *testing.T, page playwright.Page) *InventoryPage {
	return &InventoryPage{header{t: t, page: page}}
}

func (p *InventoryPage) items() playwright.Locator {
	return p.page.Locator(testSelector("inventory-item"))
}

func (p *InventoryPage) itemNames() playwright.Locator {
	return p.page.Locator(testSelector("inventory-item-name"))
}

func (p *InventoryPage) sortSelect() playwright.Locator {
	return p.page.Locator(testSelector("product-sort-container"))
}

func (p *InventoryPage) addToCartButton(slug string) playwright.Locator {
	return p.page.Locator(testSelector("add-to-cart-" + slug))
}

func (p *InventoryPage) removeButton(slug string) playwright.Locator {
	return p.page.Locator(testSelector("remove-" + slug))
}

// AssertLoaded checks the page title to confirm the inventory is shown.
func (p *InventoryPage) AssertLoaded() *InventoryPage {
	p.assertTitle("Products")
	return p
}

// AssertProductCount checks how many products are listed.
func (p *InventoryPage) AssertProductCount(count int) *InventoryPage {
	p.t.Helper()
	if err := expect.Locator(p.items()).ToHaveCount(count); err != nil {
		p.t.Fatalf("inventory should list %d products: %v", count, err)
	}
	return p
}

// FirstProductName reads the name of the first listed product.
func (p *InventoryPage) FirstProductName() string {
	p.t.Helper()
	name, err := p.itemNames().First().TextContent()
	if err != nil {
		p.t.Fatalf("failed to read first product name: %v", err)
	}
	return name
}

// ProductNames reads all listed product names in display order.
func (p *InventoryPage) ProductNames() []string {
	p.t.Helper()
	names, err := p.itemNames().AllTextContents()
	if err != nil {
		p.t.Fatalf("failed to read product names: %v", err)
	}
	return names
}

// SortBy picks a sort option, which submits the sort form.
func (p *InventoryPage) SortBy(option string) *InventoryPage {
	p.t.Helper()
	values := []string{option}
	if _, err := p.sortSelect().SelectOption(playwright.SelectOptionValues{Values: &values}); err != nil {
		p.t.Fatalf("failed to select sort option %q: %v", option, err)
	}
	return p
}

// AddToCart clicks the add-to-cart button for the given product.
func (p *InventoryPage) AddToCart(slug string) *InventoryPage {
	p.t.Helper()
	if err := p.addToCartButton(slug).Click(); err != nil {
		p.t.Fatalf("failed to add %s to cart: %v", slug, err)
	}
	return p
}

// RemoveFromCart clicks the remove button for the given product.
func (p *InventoryPage) RemoveFromCart(slug string) *InventoryPage {
	p.t.Helper()
	if err := p.removeButton(slug).Click(); err != nil {
		p.t.Fatalf("failed to remove %s from cart: %v", slug, err)
	}
	return p
}

// AssertRemovable checks that the product shows a remove button, which only
// renders while the product is in the cart.
func (p *InventoryPage) AssertRemovable(slug string) *InventoryPage {
	p.t.Helper()
	if err := expect.Locator(p.removeButton(slug)).ToBeVisible(); err != nil {
		p.t.Fatalf("%s should show a remove button: %v", slug, err)
	}
	return p
}

// AssertURL checks that the browser is on the inventory page.
func (p *InventoryPage) AssertURL() *InventoryPage {
	p.t.Helper()
	if err := expect.Page(p.page).ToHaveURL(fmt.Sprintf("%s/inventory", cfg.BaseURL)); err != nil {
		p.t.Fatalf("expected to be on the inventory page: %v", err)
	}
	return p
}
