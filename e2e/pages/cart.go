package pages

import (
	"testing"

	"github.com/playwright-community/playwright-go"
)

// CartPage lists the products the customer has picked so far.
type CartPage struct {
	header
}

// NewCartPage creates a page object for the cart page.
func NewCartPage(t *testing.T, page playwright.Page) *CartPage {
	return &CartPage{header{t: t, page: page}}
}

func (p *CartPage) items() playwright.Locator {
	return p.page.Locator(testSelector("cart-item"))
}

func (p *CartPage) itemNames() playwright.Locator {
	return p.page.Locator(testSelector("cart-item-name"))
}

func (p *CartPage) removeButton(slug string) playwright.Locator {
	return p.page.Locator(testSelector("remove-" + slug))
}

func (p *CartPage) continueShoppingLink() playwright.Locator {
	return p.page.Locator(testSelector("continue-shopping"))
}

func (p *CartPage) checkoutLink() playwright.Locator {
	return p.page.Locator(testSelector("checkout"))
}

// AssertLoaded checks the page title to confirm the cart is shown.
func (p *CartPage) AssertLoaded() *CartPage {
	p.assertTitle("Your Cart")
	return p
}

// AssertItemCount checks how many items the cart lists.
func (p *CartPage) AssertItemCount(count int) *CartPage {
	p.t.Helper()
	if err := expect.Locator(p.items()).ToHaveCount(count); err != nil {
		p.t.Fatalf("cart should list %d items: %v", count, err)
	}
	return p
}

// ItemNames reads all cart item names in display order.
func (p *CartPage) ItemNames() []string {
	p.t.Helper()
	names, err := p.itemNames().AllTextContents()
	if err != nil {
		p.t.Fatalf("failed to read cart item names: %v", err)
	}
	return names
}

// RemoveItem clicks the remove button for the given product.
func (p *CartPage) RemoveItem(slug string) *CartPage {
	p.t.Helper()
	if err := p.removeButton(slug).Click(); err != nil {
		p.t.Fatalf("failed to remove %s from cart: %v", slug, err)
	}
	return p
}

// ContinueShopping returns to the inventory page.
func (p *CartPage) ContinueShopping() *InventoryPage {
	p.t.Helper()
	if err := p.continueShoppingLink().Click(); err != nil {
		p.t.Fatalf("failed to continue shopping: %v", err)
	}
	return NewInventoryPage(p.t, p.page)
}

// Checkout begins the checkout flow.
func (p *CartPage) Checkout() *CheckoutStepOnePage {
	p.t.Helper()
	if err := p.checkoutLink().Click(); err != nil {
		p.t.Fatalf("failed to start checkout: %v", err)
	}
	return NewCheckoutStepOnePage(p.t, p.page)
}
