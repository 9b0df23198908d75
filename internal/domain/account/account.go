// Package account implements the balance-mutation core of the ledger: the
// two account variants, their withdrawal policies, and the append-only
// transaction history attached to each account.
package account

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/corebank-ledger/internal/eventlog"
	"github.com/corebank-ledger/internal/idgen"
)

// Common errors
var (
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInsufficientFunds      = errors.New("insufficient funds for withdrawal")
	ErrNegativeInitialBalance = errors.New("initial balance cannot be negative")
	ErrNegativeInterestRate   = errors.New("interest rate cannot be negative")
	ErrNegativeOverdraftLimit = errors.New("overdraft limit cannot be negative")
)

// Account is the capability shared by both account variants. Every method
// that mutates the balance is serialized per account, appends exactly one
// transaction record on success and none on failure, and records the outcome
// in the event sink.
type Account interface {
	// Number returns the unique account number, assigned at creation.
	Number() string

	// OwnerID returns the identifier of the owning customer.
	OwnerID() string

	// Balance returns the current balance in dollars.
	Balance() float64

	// History returns a copy of the transaction history in chronological
	// append order.
	History() []Transaction

	// Deposit credits the account. Returns ErrInvalidAmount when amount
	// is not positive; no state changes on failure.
	Deposit(amount float64, description string) error

	// Withdraw debits the account under the variant's withdrawal policy.
	// Returns ErrInvalidAmount or ErrInsufficientFunds; no state changes
	// on failure.
	Withdraw(amount float64, description string) error

	// MonthlyMaintenance runs the variant's periodic upkeep: interest
	// accrual for savings, a no-op hook for checking. Failures inside
	// maintenance are logged, never returned.
	MonthlyMaintenance()
}

// base carries the state and behavior common to both variants. The mutex
// guards every balance read-modify-write so the invariants hold under
// concurrent callers.
type base struct {
	mu      sync.Mutex
	number  string
	ownerID string
	balance float64
	history []Transaction
	ids     *idgen.Generator
	events  *eventlog.Sink
}

func newBase(ids *idgen.Generator, events *eventlog.Sink, ownerID string, initialBalance float64) (base, error) {
	if initialBalance < 0 {
		events.Warning("Account creation rejected for owner %s: negative initial balance $%.2f", ownerID, initialBalance)
		return base{}, ErrNegativeInitialBalance
	}

	number := fmt.Sprintf("ACC%d", ids.Next(idgen.ClassAccount))
	events.Info("Account created: %s for owner %s with initial balance $%.2f", number, ownerID, initialBalance)

	return base{
		number:  number,
		ownerID: ownerID,
		balance: initialBalance,
		ids:     ids,
		events:  events,
	}, nil
}

func (b *base) Number() string { return b.number }

func (b *base) OwnerID() string { return b.ownerID }

func (b *base) Balance() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balance
}

func (b *base) History() []Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Transaction, len(b.history))
	copy(out, b.history)
	return out
}

func (b *base) Deposit(amount float64, description string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if amount <= 0 {
		b.events.Warning("Deposit failed for %s: invalid amount $%.2f", b.number, amount)
		return ErrInvalidAmount
	}

	b.balance += amount
	b.record(TypeDeposit, amount, description)
	b.events.Info("Deposited $%.2f into %s. New balance: $%.2f", amount, b.number, b.balance)
	return nil
}

// debit applies the shared withdrawal mechanics. headroom is the amount the
// balance may go below zero: 0 for savings, the overdraft limit for checking.
func (b *base) debit(amount, headroom float64, description string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if amount <= 0 {
		b.events.Warning("Withdrawal failed for %s: invalid amount $%.2f", b.number, amount)
		return ErrInvalidAmount
	}
	if amount > b.balance+headroom {
		b.events.Warning("Withdrawal failed for %s: attempted $%.2f, available $%.2f", b.number, amount, b.balance+headroom)
		return ErrInsufficientFunds
	}

	b.balance -= amount
	b.record(TypeWithdrawal, amount, description)

	if b.balance < 0 {
		b.events.Warning("Overdraft incurred for %s. New balance: $%.2f", b.number, b.balance)
	} else {
		b.events.Info("Withdrew $%.2f from %s. New balance: $%.2f", amount, b.number, b.balance)
	}
	return nil
}

// record appends a transaction to the history. Callers must hold b.mu.
func (b *base) record(typ TransactionType, amount float64, description string) {
	b.history = append(b.history, Transaction{
		ID:            b.ids.Next(idgen.ClassTransaction),
		Timestamp:     time.Now(),
		Type:          typ,
		Amount:        amount,
		AccountNumber: b.number,
		Description:   description,
	})
}
