package models

import "errors"

// Authentication errors surfaced on the login page
var (
	ErrInvalidCredentials = errors.New("Username and password do not match any user in this service")
	ErrUserLockedOut      = errors.New("Sorry, this user has been locked out.")
)

// Well-known test accounts. All accounts share the same password, matching
// the public demo convention.
const (
	StandardUser  = "standard_user"
	LockedOutUser = "locked_out_user"
	ProblemUser   = "problem_user"

	AccountPassword = "secret_sauce"
)

// Account represents a login account for the store
type Account struct {
	Username  string
	LockedOut bool
}

var accounts = map[string]Account{
	StandardUser:  {Username: StandardUser},
	LockedOutUser: {Username: LockedOutUser, LockedOut: true},
	ProblemUser:   {Username: ProblemUser},
}

// Authenticate validates a credential pair against the known accounts.
// Locked-out accounts fail with ErrUserLockedOut even with the correct
// password.
func Authenticate(username, password string) (Account, error) {
	account, ok := accounts[username]
	if !ok || password != AccountPassword {
		return Account{}, ErrInvalidCredentials
	}
	if account.LockedOut {
		return Account{}, ErrUserLockedOut
	}
	return account, nil
}
