package account

import (
	"github.com/corebank-ledger/internal/eventlog"
	"github.com/corebank-ledger/internal/idgen"
)

// Checking is an account that may overdraft down to a fixed limit below
// zero. Its monthly maintenance has no balance effect; the hook exists for
// future fees.
type Checking struct {
	base
	overdraftLimit float64
}

// NewChecking creates a checking account for the given owner. The overdraft
// limit is the maximum amount the balance may go below zero.
func NewChecking(ids *idgen.Generator, events *eventlog.Sink, ownerID string, initialBalance, overdraftLimit float64) (*Checking, error) {
	if overdraftLimit < 0 {
		return nil, ErrNegativeOverdraftLimit
	}

	b, err := newBase(ids, events, ownerID, initialBalance)
	if err != nil {
		return nil, err
	}

	c := &Checking{base: b, overdraftLimit: overdraftLimit}
	events.Info("Checking account %s opened with overdraft limit $%.2f", c.number, overdraftLimit)
	return c, nil
}

// OverdraftLimit returns the maximum permitted negative balance magnitude.
func (c *Checking) OverdraftLimit() float64 { return c.overdraftLimit }

// Withdraw allows the balance to go negative down to -overdraftLimit.
// A withdrawal that leaves the balance negative records a distinct
// "overdraft incurred" warning in the event log.
func (c *Checking) Withdraw(amount float64, description string) error {
	return c.debit(amount, c.overdraftLimit, description)
}

// MonthlyMaintenance records that maintenance ran. No fees are charged in
// this model.
func (c *Checking) MonthlyMaintenance() {
	c.events.Info("Performed monthly maintenance for checking account %s", c.number)
}
