package account

import (
	"github.com/corebank-ledger/internal/eventlog"
	"github.com/corebank-ledger/internal/idgen"
)

// Savings is an account that never overdrafts and accrues a flat monthly
// interest rate during maintenance.
type Savings struct {
	base
	interestRate float64
}

// NewSavings creates a savings account for the given owner. The interest
// rate is a fraction, e.g. 0.01 for 1% per month.
func NewSavings(ids *idgen.Generator, events *eventlog.Sink, ownerID string, initialBalance, interestRate float64) (*Savings, error) {
	if interestRate < 0 {
		return nil, ErrNegativeInterestRate
	}

	b, err := newBase(ids, events, ownerID, initialBalance)
	if err != nil {
		return nil, err
	}

	s := &Savings{base: b, interestRate: interestRate}
	events.Info("Savings account %s opened with interest rate %.4f", s.number, interestRate)
	return s, nil
}

// InterestRate returns the flat monthly interest rate.
func (s *Savings) InterestRate() float64 { return s.interestRate }

// Withdraw applies the base policy: the balance never goes below zero.
func (s *Savings) Withdraw(amount float64, description string) error {
	return s.debit(amount, 0, description)
}

// ApplyInterest deposits one month of interest on the current balance.
// When the computed interest is not positive the deposit is rejected by its
// own contract; that outcome is logged and accepted, not special-cased.
func (s *Savings) ApplyInterest() {
	interest := s.Balance() * s.interestRate

	if err := s.Deposit(interest, "Monthly Interest"); err != nil {
		s.events.Error("Failed to apply interest to savings account %s: %v", s.number, err)
		return
	}
	s.events.Info("Interest of $%.2f applied to savings account %s. New balance: $%.2f", interest, s.number, s.Balance())
}

// MonthlyMaintenance accrues interest.
func (s *Savings) MonthlyMaintenance() {
	s.ApplyInterest()
}
