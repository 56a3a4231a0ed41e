package e2e

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swagshop/ecommerce/e2e/pages"
	"github.com/swagshop/ecommerce/internal/models"
)

func TestLoginWithValidCredentials(t *testing.T) {
	page := newPage(t)

	pages.NewLoginPage(t, page).
		Navigate().
		LoginAs(models.StandardUser, models.AccountPassword).
		AssertLoaded().
		AssertProductCount(6)
}

func TestLoginWithInvalidCredentials(t *testing.T) {
	page := newPage(t)

	pages.NewLoginPage(t, page).
		Navigate().
		TypeUsername(models.StandardUser).
		TypePassword("definitely-wrong").
		SubmitExpectingError().
		AssertErrorContains("Epic sadface: Username and password do not match any user in this service")
}

func TestLoginWithLockedOutUser(t *testing.T) {
	page := newPage(t)

	pages.NewLoginPage(t, page).
		Navigate().
		TypeUsername(models.LockedOutUser).
		TypePassword(models.AccountPassword).
		SubmitExpectingError().
		AssertErrorContains("Sorry, this user has been locked out.")
}

func TestLoginFieldsCanBeCleared(t *testing.T) {
	page := newPage(t)

	login := pages.NewLoginPage(t, page).
		Navigate().
		TypeUsername("typo_user").
		ClearUsername().
		TypeUsername(models.StandardUser)

	require.Equal(t, models.StandardUser, login.UsernameValue())

	login.
		TypePassword("wrong").
		ClearPassword().
		TypePassword(models.AccountPassword).
		Submit().
		AssertLoaded()
}
