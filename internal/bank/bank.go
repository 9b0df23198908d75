// Package bank hosts the directory of customers and accounts, the transfer
// protocol and the monthly maintenance sweep. The bank owns its customers,
// each customer owns its accounts; nothing is ever removed during the
// process lifetime.
package bank

import (
	"fmt"
	"sync"

	"github.com/corebank-ledger/internal/domain/account"
	"github.com/corebank-ledger/internal/domain/customer"
	"github.com/corebank-ledger/internal/eventlog"
	"github.com/corebank-ledger/internal/idgen"
	"github.com/panjf2000/ants/v2"
)

// Bank is the top-level directory and transaction coordinator. It is
// constructed once at startup with the process-wide ID generator and event
// sink; there are no hidden singletons behind it.
type Bank struct {
	name   string
	ids    *idgen.Generator
	events *eventlog.Sink
	pool   *ants.Pool

	mu        sync.RWMutex
	customers []*customer.Customer
}

// New creates a bank with a maintenance worker pool of the given size.
func New(name string, ids *idgen.Generator, events *eventlog.Sink, poolSize int) (*Bank, error) {
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create maintenance worker pool: %w", err)
	}

	events.Info("Bank '%s' initialized", name)

	return &Bank{
		name:   name,
		ids:    ids,
		events: events,
		pool:   pool,
	}, nil
}

// Name returns the bank's display name.
func (b *Bank) Name() string { return b.name }

// Close releases the maintenance worker pool.
func (b *Bank) Close() {
	b.pool.Release()
}

// CreateCustomer registers a new customer in the directory.
func (b *Bank) CreateCustomer(name, address, phone string) *customer.Customer {
	cust := customer.New(b.ids, name, address, phone)

	b.mu.Lock()
	b.customers = append(b.customers, cust)
	b.mu.Unlock()

	b.events.Info("New customer registered: %s (%s)", cust.ID(), cust.Name())
	return cust
}

// Customer looks up a customer by ID.
func (b *Bank) Customer(id string) (*customer.Customer, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, cust := range b.customers {
		if cust.ID() == id {
			return cust, nil
		}
	}
	return nil, ErrCustomerNotFound{ID: id}
}

// CustomerByName looks up the first customer with the given name.
func (b *Bank) CustomerByName(name string) (*customer.Customer, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, cust := range b.customers {
		if cust.Name() == name {
			return cust, nil
		}
	}
	return nil, ErrCustomerNotFound{}
}

// Customers returns all registered customers in registration order.
func (b *Bank) Customers() []*customer.Customer {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*customer.Customer, len(b.customers))
	copy(out, b.customers)
	return out
}

// CreateSavingsAccount opens a savings account for an existing customer.
func (b *Bank) CreateSavingsAccount(customerID string, initialBalance, interestRate float64) (*account.Savings, error) {
	cust, err := b.Customer(customerID)
	if err != nil {
		b.events.Error("Failed to create savings account: customer %s not found", customerID)
		return nil, err
	}

	acc, err := account.NewSavings(b.ids, b.events, customerID, initialBalance, interestRate)
	if err != nil {
		return nil, err
	}
	if err := cust.AddAccount(acc); err != nil {
		b.events.Warning("Attempted to add an invalid account to customer %s", customerID)
		return nil, err
	}

	b.events.Info("Account %s added to customer %s", acc.Number(), customerID)
	return acc, nil
}

// CreateCheckingAccount opens a checking account for an existing customer.
func (b *Bank) CreateCheckingAccount(customerID string, initialBalance, overdraftLimit float64) (*account.Checking, error) {
	cust, err := b.Customer(customerID)
	if err != nil {
		b.events.Error("Failed to create checking account: customer %s not found", customerID)
		return nil, err
	}

	acc, err := account.NewChecking(b.ids, b.events, customerID, initialBalance, overdraftLimit)
	if err != nil {
		return nil, err
	}
	if err := cust.AddAccount(acc); err != nil {
		b.events.Warning("Attempted to add an invalid account to customer %s", customerID)
		return nil, err
	}

	b.events.Info("Account %s added to customer %s", acc.Number(), customerID)
	return acc, nil
}

// Account finds an account by number across all customers.
func (b *Bank) Account(number string) (account.Account, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, cust := range b.customers {
		if acc, ok := cust.Account(number); ok {
			return acc, nil
		}
	}
	return nil, ErrAccountNotFound{Number: number}
}

// Accounts returns every account reachable from every customer.
func (b *Bank) Accounts() []account.Account {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []account.Account
	for _, cust := range b.customers {
		out = append(out, cust.Accounts()...)
	}
	return out
}

// Transfer moves funds between two accounts as a paired withdraw+deposit.
// Both accounts are resolved before any mutation so a missing account is
// reported distinctly from an amount or funds failure. A withdrawal failure
// leaves both accounts untouched. The destination deposit cannot fail for a
// resolved destination and a validated amount; if it ever does, the source
// withdrawal is compensated and ErrDestinationCredit is returned, so money
// is conserved on every path. No two account locks are held at once.
func (b *Bank) Transfer(fromNumber, toNumber string, amount float64, description string) error {
	if amount <= 0 {
		b.events.Warning("Transfer failed: invalid amount $%.2f", amount)
		return account.ErrInvalidAmount
	}

	from, err := b.Account(fromNumber)
	if err != nil {
		b.events.Error("Transfer failed: source account %s not found", fromNumber)
		return err
	}
	to, err := b.Account(toNumber)
	if err != nil {
		b.events.Error("Transfer failed: destination account %s not found", toNumber)
		return err
	}

	withdrawDesc := "Transfer to " + toNumber
	depositDesc := "Transfer from " + fromNumber
	if description != "" {
		withdrawDesc += ": " + description
		depositDesc += ": " + description
	}

	if err := from.Withdraw(amount, withdrawDesc); err != nil {
		b.events.Warning("Transfer failed between %s and %s due to withdrawal issue", fromNumber, toNumber)
		return err
	}

	if err := to.Deposit(amount, depositDesc); err != nil {
		if rbErr := from.Deposit(amount, "Transfer reversal: "+withdrawDesc); rbErr != nil {
			b.events.Error("Transfer rollback failed for %s after destination credit failure: %v", fromNumber, rbErr)
		}
		b.events.Error("Transfer failed: destination credit to %s failed, withdrawal from %s reversed", toNumber, fromNumber)
		return ErrDestinationCredit
	}

	b.events.Info("Successfully transferred $%.2f from %s to %s", amount, fromNumber, toNumber)
	return nil
}
