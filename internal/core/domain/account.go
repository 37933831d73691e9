package domain

import "time"

// AccountKind selects the withdrawal policy for an account.
type AccountKind string

const (
	// KindAccount is the base account with no extra withdrawal policy.
	KindAccount AccountKind = "account"
	// KindChecking adds an overdraft limit and a daily withdrawal cap.
	KindChecking AccountKind = "checking"
)

// Account holds a balance in minor units (centavos) together with the
// owning customer and the transaction history. The balance is only ever
// mutated through Deposit and Withdraw; there is no setter.
//
// Checking accounts are the same struct with Kind set to KindChecking
// and the limit fields populated; withdrawal dispatches on the kind.
type Account struct {
	Number  int
	Branch  string
	Owner   *Customer
	History *History
	Kind    AccountKind

	// Checking-only policy. Ignored for the base kind.
	OverdraftLimit       int64
	DailyWithdrawalLimit int

	balance int64
}

// NewAccount creates a base account with a zero balance.
func NewAccount(number int, branch string, owner *Customer) *Account {
	return &Account{
		Number:  number,
		Branch:  branch,
		Owner:   owner,
		History: NewHistory(),
		Kind:    KindAccount,
	}
}

// NewCheckingAccount creates a checking account with the given overdraft
// limit (max single withdrawal, in centavos) and daily withdrawal cap.
func NewCheckingAccount(number int, branch string, owner *Customer, overdraftLimit int64, dailyLimit int) *Account {
	a := NewAccount(number, branch, owner)
	a.Kind = KindChecking
	a.OverdraftLimit = overdraftLimit
	a.DailyWithdrawalLimit = dailyLimit
	return a
}

// Balance returns the current balance in centavos.
func (a *Account) Balance() int64 {
	return a.balance
}

// Deposit credits amount to the balance. Rejects non-positive amounts.
// It does not touch the history; recording is the transaction
// protocol's job.
func (a *Account) Deposit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	a.balance += amount
	return nil
}

// Withdraw debits amount from the balance, applying the account kind's
// policy first. On any failure the balance is untouched.
func (a *Account) Withdraw(amount int64) error {
	if a.Kind == KindChecking {
		if err := a.checkWithdrawalPolicy(amount); err != nil {
			return err
		}
	}
	return a.withdraw(amount)
}

// checkWithdrawalPolicy runs the checking-account checks in the fixed
// order: overdraft limit, daily count, funds. The funds check repeats
// inside withdraw; the order here is the contract callers observe, so
// the redundancy stays.
func (a *Account) checkWithdrawalPolicy(amount int64) error {
	if amount > a.OverdraftLimit {
		return ErrLimitExceeded
	}
	if a.History.CountOnDay(Withdrawal, time.Now()) >= a.DailyWithdrawalLimit {
		return ErrDailyLimitExceeded
	}
	if amount > a.balance {
		return ErrInsufficientFunds
	}
	return nil
}

// withdraw is the base-account debit shared by every kind.
func (a *Account) withdraw(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > a.balance {
		return ErrInsufficientFunds
	}
	a.balance -= amount
	return nil
}
