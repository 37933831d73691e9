package domain

import "errors"

// Domain errors. Every rejected operation reports one of these; the
// handler layer maps them to HTTP status codes.
var (
	// ErrInvalidAmount rejects deposits and withdrawals of zero or
	// negative amounts.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInsufficientFunds rejects withdrawals above the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrLimitExceeded rejects a single withdrawal above the account's
	// overdraft limit.
	ErrLimitExceeded = errors.New("withdrawal exceeds the account limit")

	// ErrDailyLimitExceeded rejects a withdrawal once the account has
	// reached its daily withdrawal count.
	ErrDailyLimitExceeded = errors.New("daily withdrawal limit reached")

	// ErrCustomerNotFound is returned by registry lookups that miss.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrAccountNotFound is returned when an account number does not
	// belong to the customer.
	ErrAccountNotFound = errors.New("account not found")

	// ErrCustomerExists rejects registering a CPF twice.
	ErrCustomerExists = errors.New("customer already registered")

	// ErrNoAccounts is returned when a customer has no account to
	// operate on.
	ErrNoAccounts = errors.New("customer has no accounts")
)
