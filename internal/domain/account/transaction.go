package account

import (
	"fmt"
	"time"
)

// TransactionType defines the balance-affecting operations recorded in an
// account's history.
type TransactionType string

const (
	TypeDeposit    TransactionType = "DEPOSIT"
	TypeWithdrawal TransactionType = "WITHDRAWAL"
	TypeTransfer   TransactionType = "TRANSFER"
)

// Transaction is an immutable record of one balance-affecting event. It is
// owned exclusively by the account whose history it lives in and is never
// shared or mutated after creation. Amount is always a positive magnitude;
// the type says which direction the balance moved.
type Transaction struct {
	ID            int64           `json:"id"`
	Timestamp     time.Time       `json:"timestamp"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	AccountNumber string          `json:"account_number"`
	Description   string          `json:"description,omitempty"`
}

// String renders the transaction in the console statement format.
func (t Transaction) String() string {
	s := fmt.Sprintf("[TRXID:%d] [%s] [%s] Account: %s, Amount: $%.2f",
		t.ID, t.Timestamp.Format(time.RFC3339), t.Type, t.AccountNumber, t.Amount)
	if t.Description != "" {
		s += " (" + t.Description + ")"
	}
	return s
}
