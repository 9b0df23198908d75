package handler

import (
	"github.com/corebank-ledger/internal/domain/account"
	"github.com/corebank-ledger/internal/domain/customer"
	"github.com/corebank-ledger/internal/eventlog"
)

// BankService is the surface of the banking core the HTTP layer depends on.
// Implemented by *bank.Bank.
type BankService interface {
	// CreateCustomer registers a new customer in the directory
	CreateCustomer(name, address, phone string) *customer.Customer

	// Customer retrieves a customer by ID
	// Returns ErrCustomerNotFound if the customer doesn't exist
	Customer(id string) (*customer.Customer, error)

	// Customers returns all customers in registration order
	Customers() []*customer.Customer

	// CreateSavingsAccount opens a savings account for an existing customer
	CreateSavingsAccount(customerID string, initialBalance, interestRate float64) (*account.Savings, error)

	// CreateCheckingAccount opens a checking account for an existing customer
	CreateCheckingAccount(customerID string, initialBalance, overdraftLimit float64) (*account.Checking, error)

	// Account retrieves an account by number across all customers
	// Returns ErrAccountNotFound if the account doesn't exist
	Account(number string) (account.Account, error)

	// Transfer moves funds between two accounts as one logical operation
	Transfer(fromNumber, toNumber string, amount float64, description string) error

	// RunMonthlyMaintenance sweeps every account once and returns the
	// number of accounts visited
	RunMonthlyMaintenance() int
}

// EventStore is the read/reset surface of the event sink.
// Implemented by *eventlog.Sink.
type EventStore interface {
	Snapshot() []eventlog.Entry
	Reset()
}
