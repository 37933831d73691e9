package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/ramisesreis/modelando-sistema-bancario/internal/core/domain"
)

// Ledger owns the process-wide customer and account collections and
// runs every operation the API exposes. All state lives in memory for
// the lifetime of the process.
//
// A single mutex serializes every operation. The domain core is
// single-threaded by contract, so the host takes one lock per request
// instead of pushing synchronization into the accounts.
type Ledger struct {
	mu sync.Mutex

	branchCode           string
	overdraftLimit       int64
	dailyWithdrawalLimit int

	customers []*domain.Customer
	accounts  []*domain.Account
}

func NewLedger(branchCode string, overdraftLimit int64, dailyWithdrawalLimit int) *Ledger {
	return &Ledger{
		branchCode:           branchCode,
		overdraftLimit:       overdraftLimit,
		dailyWithdrawalLimit: dailyWithdrawalLimit,
	}
}

// CustomerSummary is a point-in-time view of one customer. The ledger
// never hands out live domain pointers; everything crossing the lock
// boundary is a value copy.
type CustomerSummary struct {
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	Address   string    `json:"address"`
	BirthDate time.Time `json:"birth_date"`
	Accounts  []int     `json:"accounts"`
}

func summarizeCustomer(c *domain.Customer) CustomerSummary {
	numbers := make([]int, 0, len(c.Accounts))
	for _, a := range c.Accounts {
		numbers = append(numbers, a.Number)
	}
	return CustomerSummary{
		Name:      c.Name,
		CPF:       c.CPF,
		Address:   c.Address,
		BirthDate: c.BirthDate,
		Accounts:  numbers,
	}
}

// RegisterCustomer adds a new customer. The CPF must be unique across
// the ledger.
func (l *Ledger) RegisterCustomer(name, cpf, address string, birthDate time.Time) (CustomerSummary, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.findCustomer(cpf) != nil {
		return CustomerSummary{}, fmt.Errorf("register customer %s: %w", cpf, domain.ErrCustomerExists)
	}
	c := domain.NewCustomer(cpf, name, address, birthDate)
	l.customers = append(l.customers, c)
	return summarizeCustomer(c), nil
}

// FindCustomer looks a customer up by CPF, exact match.
func (l *Ledger) FindCustomer(cpf string) (CustomerSummary, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c := l.findCustomer(cpf)
	if c == nil {
		return CustomerSummary{}, domain.ErrCustomerNotFound
	}
	return summarizeCustomer(c), nil
}

// findCustomer is the linear scan shared by the locked entry points.
func (l *Ledger) findCustomer(cpf string) *domain.Customer {
	for _, c := range l.customers {
		if c.CPF == cpf {
			return c
		}
	}
	return nil
}

// AccountSummary is a point-in-time view of one account for listings.
type AccountSummary struct {
	Number  int    `json:"number"`
	Branch  string `json:"branch"`
	Holder  string `json:"holder"`
	CPF     string `json:"cpf"`
	Balance int64  `json:"balance"`
}

func summarizeAccount(a *domain.Account) AccountSummary {
	return AccountSummary{
		Number:  a.Number,
		Branch:  a.Branch,
		Holder:  a.Owner.Name,
		CPF:     a.Owner.CPF,
		Balance: a.Balance(),
	}
}

// OpenAccount opens a checking account for a registered customer and
// appends it to both the ledger and the customer's collection. Account
// numbers are assigned monotonically and never reused.
func (l *Ledger) OpenAccount(cpf string) (AccountSummary, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c := l.findCustomer(cpf)
	if c == nil {
		return AccountSummary{}, fmt.Errorf("open account: %w", domain.ErrCustomerNotFound)
	}

	number := len(l.accounts) + 1
	a := domain.NewCheckingAccount(number, l.branchCode, c, l.overdraftLimit, l.dailyWithdrawalLimit)
	l.accounts = append(l.accounts, a)
	c.AddAccount(a)
	return summarizeAccount(a), nil
}

// ListAccounts returns a snapshot of every account in opening order.
func (l *Ledger) ListAccounts() []AccountSummary {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]AccountSummary, 0, len(l.accounts))
	for _, a := range l.accounts {
		out = append(out, summarizeAccount(a))
	}
	return out
}

// OperationResult describes a recorded transaction: the history entry,
// the account it landed on and the balance after it.
type OperationResult struct {
	Entry         domain.Entry
	AccountNumber int
	Balance       int64
}

// Deposit records a deposit on one of the customer's accounts. When
// accountNumber is zero the customer's first (oldest) account is used.
func (l *Ledger) Deposit(cpf string, accountNumber int, amount int64) (OperationResult, error) {
	return l.perform(cpf, accountNumber, domain.NewDeposit(amount))
}

// Withdraw records a withdrawal on one of the customer's accounts,
// subject to the account's withdrawal policy.
func (l *Ledger) Withdraw(cpf string, accountNumber int, amount int64) (OperationResult, error) {
	return l.perform(cpf, accountNumber, domain.NewWithdrawal(amount))
}

func (l *Ledger) perform(cpf string, accountNumber int, t domain.Transaction) (OperationResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c := l.findCustomer(cpf)
	if c == nil {
		return OperationResult{}, domain.ErrCustomerNotFound
	}
	a, err := accountFor(c, accountNumber)
	if err != nil {
		return OperationResult{}, err
	}

	e, err := c.Initiate(a, t)
	if err != nil {
		return OperationResult{}, err
	}
	return OperationResult{Entry: e, AccountNumber: a.Number, Balance: a.Balance()}, nil
}

// Statement returns the account's history in chronological order plus
// the current balance.
func (l *Ledger) Statement(cpf string, accountNumber int) ([]domain.Entry, int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c := l.findCustomer(cpf)
	if c == nil {
		return nil, 0, domain.ErrCustomerNotFound
	}
	a, err := accountFor(c, accountNumber)
	if err != nil {
		return nil, 0, err
	}
	return a.History.All(), a.Balance(), nil
}

// accountFor resolves an account strictly from the customer's own
// collection, so an operation can never target another customer's
// account. Zero means "the first account".
func accountFor(c *domain.Customer, number int) (*domain.Account, error) {
	if len(c.Accounts) == 0 {
		return nil, domain.ErrNoAccounts
	}
	if number == 0 {
		return c.Accounts[0], nil
	}
	for _, a := range c.Accounts {
		if a.Number == number {
			return a, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}
