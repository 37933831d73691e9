package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind tags the two transaction variants.
type TransactionKind string

const (
	Deposit    TransactionKind = "deposit"
	Withdrawal TransactionKind = "withdrawal"
)

// Transaction is an immutable monetary movement waiting to be applied
// to an account. It is constructed per request, applied exactly once
// through Register, and either recorded in the account's history or
// discarded.
type Transaction struct {
	ID     uuid.UUID
	Kind   TransactionKind
	Amount int64
}

// NewDeposit builds a pending deposit of amount centavos.
func NewDeposit(amount int64) Transaction {
	return Transaction{ID: uuid.New(), Kind: Deposit, Amount: amount}
}

// NewWithdrawal builds a pending withdrawal of amount centavos.
func NewWithdrawal(amount int64) Transaction {
	return Transaction{ID: uuid.New(), Kind: Withdrawal, Amount: amount}
}

// Register applies the transaction to the account and, if the account
// accepted it, appends it to the account's history. There is no
// rollback phase: the account either fully applies the change or
// reports an error having changed nothing.
//
// On success it returns the recorded entry; on failure the error is the
// account's rejection and nothing is recorded.
func (t Transaction) Register(a *Account) (Entry, error) {
	var err error
	switch t.Kind {
	case Deposit:
		err = a.Deposit(t.Amount)
	case Withdrawal:
		err = a.Withdraw(t.Amount)
	default:
		err = ErrInvalidAmount
	}
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		ID:     t.ID,
		Kind:   t.Kind,
		Amount: t.Amount,
		At:     time.Now().Truncate(time.Second),
	}
	a.History.Append(e)
	return e, nil
}
