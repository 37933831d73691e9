package domain

import "time"

// Customer owns zero or more accounts and initiates transactions
// against them. Customers are registered once and never removed;
// accounts are appended in opening order.
type Customer struct {
	CPF       string
	Name      string
	Address   string
	BirthDate time.Time
	Accounts  []*Account
}

func NewCustomer(cpf, name, address string, birthDate time.Time) *Customer {
	return &Customer{CPF: cpf, Name: name, Address: address, BirthDate: birthDate}
}

// AddAccount appends a newly opened account to the customer's
// collection.
func (c *Customer) AddAccount(a *Account) {
	c.Accounts = append(c.Accounts, a)
}

// Initiate runs the transaction against the given account. Ownership of
// the account is the caller's problem: the registry only resolves
// accounts from this customer's own collection before calling here.
func (c *Customer) Initiate(a *Account, t Transaction) (Entry, error) {
	return t.Register(a)
}
