// Package customer models the directory entry that owns a set of accounts.
// An account belongs to exactly one customer for its lifetime.
package customer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/corebank-ledger/internal/domain/account"
	"github.com/corebank-ledger/internal/idgen"
)

// ErrNilAccount indicates an attempt to attach an absent account.
var ErrNilAccount = errors.New("cannot attach a nil account")

// Customer owns zero or more accounts. Lookups hand out the shared account
// values; the account list itself is only ever appended to.
type Customer struct {
	id      string
	name    string
	address string
	phone   string

	mu       sync.Mutex
	accounts []account.Account
}

// New creates a customer with a fresh customer ID.
func New(ids *idgen.Generator, name, address, phone string) *Customer {
	return &Customer{
		id:      fmt.Sprintf("CUS%d", ids.Next(idgen.ClassCustomer)),
		name:    name,
		address: address,
		phone:   phone,
	}
}

func (c *Customer) ID() string      { return c.id }
func (c *Customer) Name() string    { return c.name }
func (c *Customer) Address() string { return c.address }
func (c *Customer) Phone() string   { return c.phone }

// AddAccount attaches an account to this customer, taking ownership.
func (c *Customer) AddAccount(acc account.Account) error {
	if acc == nil {
		return ErrNilAccount
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts = append(c.accounts, acc)
	return nil
}

// Account looks up one of this customer's accounts by number.
func (c *Customer) Account(number string) (account.Account, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, acc := range c.accounts {
		if acc.Number() == number {
			return acc, true
		}
	}
	return nil, false
}

// Accounts returns a copy of the account list in attachment order.
func (c *Customer) Accounts() []account.Account {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]account.Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}
