package pages

import (
	"fmt"
	"testing"

	"github.com/playwright-community/playwright-go"
)

// CheckoutStepOnePage collects the customer's shipping information.
type CheckoutStepOnePage struct {
	header
}

// NewCheckoutStepOnePage creates a page object for the information step.
func NewCheckoutStepOnePage(t *testing.T, page playwright.Page) *CheckoutStepOnePage {
	return &CheckoutStepOnePage{header{t: t, page: page}}
}

func (p *CheckoutStepOnePage) firstNameField() playwright.Locator {
	return p.page.Locator(testSelector("first-name"))
}

func (p *CheckoutStepOnePage) lastNameField() playwright.Locator {
	return p.page.Locator(testSelector("last-name"))
}

func (p *CheckoutStepOnePage) postalCodeField() playwright.Locator {
	return p.page.Locator(testSelector("postal-code"))
}

func (p *CheckoutStepOnePage) continueButton() playwright.Locator {
	return p.page.Locator(testSelector("continue"))
}

func (p *CheckoutStepOnePage) cancelLink() playwright.Locator {
	return p.page.Locator(testSelector("cancel"))
}

func (p *CheckoutStepOnePage) errorMessage() playwright.Locator {
	return p.page.Locator(testSelector("error"))
}

// AssertLoaded checks the page title to confirm the information step is shown.
func (p *CheckoutStepOnePage) AssertLoaded() *CheckoutStepOnePage {
	p.assertTitle("Checkout: Your Information")
	return p
}

// AssertURL checks that the browser is on the information step.
func (p *CheckoutStepOnePage) AssertURL() *CheckoutStepOnePage {
	p.t.Helper()
	if err := expect.Page(p.page).ToHaveURL(fmt.Sprintf("%s/checkout-step-one", cfg.BaseURL)); err != nil {
		p.t.Fatalf("expected to be on the checkout information step: %v", err)
	}
	return p
}

// FillInformation fills the shipping form. Empty values are skipped so
// specs can leave individual fields blank.
func (p *CheckoutStepOnePage) FillInformation(firstName, lastName, postalCode string) *CheckoutStepOnePage {
	p.t.Helper()
	fields := []struct {
		locator playwright.Locator
		value   string
	}{
		{p.firstNameField(), firstName},
		{p.lastNameField(), lastName},
		{p.postalCodeField(), postalCode},
	}
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		if err := field.locator.Fill(field.value); err != nil {
			p.t.Fatalf("failed to fill checkout information: %v", err)
		}
	}
	return p
}

// Continue submits the form expecting to advance to the overview step.
func (p *CheckoutStepOnePage) Continue() *CheckoutStepTwoPage {
	p.t.Helper()
	if err := p.continueButton().Click(); err != nil {
		p.t.Fatalf("failed to continue checkout: %v", err)
	}
	return NewCheckoutStepTwoPage(p.t, p.page)
}

// ContinueExpectingError submits the form expecting a validation error.
func (p *CheckoutStepOnePage) ContinueExpectingError() *CheckoutStepOnePage {
	p.t.Helper()
	if err := p.continueButton().Click(); err != nil {
		p.t.Fatalf("failed to continue checkout: %v", err)
	}
	if err := expect.Locator(p.errorMessage()).ToBeVisible(); err != nil {
		p.t.Fatalf("expected a validation error message: %v", err)
	}
	return p
}

// AssertErrorContains checks that the validation error contains the given text.
func (p *CheckoutStepOnePage) AssertErrorContains(text string) *CheckoutStepOnePage {
	p.t.Helper()
	if err := expect.Locator(p.errorMessage()).ToContainText(text); err != nil {
		p.t.Fatalf("checkout error should contain %q: %v", text, err)
	}
	return p
}

// Cancel abandons the checkout and returns to the cart.
func (p *CheckoutStepOnePage) Cancel() *CartPage {
	p.t.Helper()
	if err := p.cancelLink().Click(); err != nil {
		p.t.Fatalf("failed to cancel checkout: %v", err)
	}
	return NewCartPage(p.t, p.page)
}

// CheckoutStepTwoPage shows the order overview before placing it.
type CheckoutStepTwoPage struct {
	header
}

// NewCheckoutStepTwoPage creates a page object for the overview step.
func NewCheckoutStepTwoPage(t *testing.T, page playwright.Page) *CheckoutStepTwoPage {
	return &CheckoutStepTwoPage{header{t: t, page: page}}
}

func (p *CheckoutStepTwoPage) items() playwright.Locator {
	return p.page.Locator(testSelector("cart-item"))
}

func (p *CheckoutStepTwoPage) totalLabel() playwright.Locator {
	return p.page.Locator(testSelector("total"))
}

func (p *CheckoutStepTwoPage) finishButton() playwright.Locator {
	return p.page.Locator(testSelector("finish"))
}

func (p *CheckoutStepTwoPage) cancelLink() playwright.Locator {
	return p.page.Locator(testSelector("cancel"))
}

// AssertLoaded checks the page title to confirm the overview step is shown.
func (p *CheckoutStepTwoPage) AssertLoaded() *CheckoutStepTwoPage {
	p.assertTitle("Checkout: Overview")
	return p
}

// AssertItemCount checks how many items the overview lists.
func (p *CheckoutStepTwoPage) AssertItemCount(count int) *CheckoutStepTwoPage {
	p.t.Helper()
	if err := expect.Locator(p.items()).ToHaveCount(count); err != nil {
		p.t.Fatalf("overview should list %d items: %v", count, err)
	}
	return p
}

// AssertTotalContains checks the displayed order total.
func (p *CheckoutStepTwoPage) AssertTotalContains(text string) *CheckoutStepTwoPage {
	p.t.Helper()
	if err := expect.Locator(p.totalLabel()).ToContainText(text); err != nil {
		p.t.Fatalf("order total should contain %q: %v", text, err)
	}
	return p
}

// Finish places the order.
func (p *CheckoutStepTwoPage) Finish() *CheckoutCompletePage {
	p.t.Helper()
	if err := p.finishButton().Click(); err != nil {
		p.t.Fatalf("failed to finish checkout: %v", err)
	}
	return NewCheckoutCompletePage(p.t, p.page)
}

// Cancel abandons the checkout and returns to the inventory.
func (p *CheckoutStepTwoPage) Cancel() *InventoryPage {
	p.t.Helper()
	if err := p.cancelLink().Click(); err != nil {
		p.t.Fatalf("failed to cancel checkout: %v", err)
	}
	return NewInventoryPage(p.t, p.page)
}

// CheckoutCompletePage confirms the placed order.
type CheckoutCompletePage struct {
	header
}

// NewCheckoutCompletePage creates a page object for the confirmation page.
func NewCheckoutCompletePage(t *testing.T, page playwright.Page) *CheckoutCompletePage {
	return &CheckoutCompletePage{header{t: t, page: page}}
}

func (p *CheckoutCompletePage) completeHeader() playwright.Locator {
	return p.page.Locator(testSelector("complete-header"))
}

func (p *CheckoutCompletePage) orderReference() playwright.Locator {
	return p.page.Locator(testSelector("order-reference"))
}

func (p *CheckoutCompletePage) backToProductsLink() playwright.Locator {
	return p.page.Locator(testSelector("back-to-products"))
}

// AssertLoaded checks the page title to confirm the order confirmation is shown.
func (p *CheckoutCompletePage) AssertLoaded() *CheckoutCompletePage {
	p.assertTitle("Checkout: Complete!")
	return p
}

// AssertThankYou checks the confirmation header.
func (p *CheckoutCompletePage) AssertThankYou() *CheckoutCompletePage {
	p.t.Helper()
	if err := expect.Locator(p.completeHeader()).ToHaveText("Thank you for your order!"); err != nil {
		p.t.Fatalf("expected the thank-you header: %v", err)
	}
	return p
}

// OrderReference reads the reference of the placed order.
func (p *CheckoutCompletePage) OrderReference() string {
	p.t.Helper()
	reference, err := p.orderReference().TextContent()
	if err != nil {
		p.t.Fatalf("failed to read order reference: %v", err)
	}
	return reference
}

// BackToProducts returns to the inventory page.
func (p *CheckoutCompletePage) BackToProducts() *InventoryPage {
	p.t.Helper()
	if err := p.backToProductsLink().Click(); err != nil {
		p.t.Fatalf("failed to go back to products: %v", err)
	}
	return NewInventoryPage(p.t, p.page)
}
