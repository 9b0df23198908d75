package handler

import (
	"errors"
	"time"

	"github.com/corebank-ledger/internal/bank"
	"github.com/corebank-ledger/internal/domain/account"
	"github.com/corebank-ledger/internal/domain/customer"
	"github.com/corebank-ledger/internal/eventlog"
	"github.com/gin-gonic/gin"
)

// respondDomainError converts a banking-core error into the matching HTTP
// response: not-found lookups map to 404, business-rule violations to 422,
// anything unrecognized to 500.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, bank.ErrAccountNotFound{}):
		RespondNotFound(c, "Account not found")
	case errors.Is(err, bank.ErrCustomerNotFound{}):
		RespondNotFound(c, "Customer not found")
	case errors.Is(err, account.ErrInvalidAmount),
		errors.Is(err, account.ErrInsufficientFunds),
		errors.Is(err, account.ErrNegativeInitialBalance),
		errors.Is(err, account.ErrNegativeInterestRate),
		errors.Is(err, account.ErrNegativeOverdraftLimit),
		errors.Is(err, customer.ErrNilAccount),
		errors.Is(err, bank.ErrDestinationCredit):
		RespondUnprocessable(c, err.Error())
	default:
		RespondInternalError(c)
	}
}

func mapAccountToResponse(acc account.Account) AccountResponse {
	resp := AccountResponse{
		Number:  acc.Number(),
		OwnerID: acc.OwnerID(),
		Balance: acc.Balance(),
	}

	switch a := acc.(type) {
	case *account.Savings:
		resp.Type = "SAVINGS"
		rate := a.InterestRate()
		resp.InterestRate = &rate
	case *account.Checking:
		resp.Type = "CHECKING"
		limit := a.OverdraftLimit()
		resp.OverdraftLimit = &limit
	}
	return resp
}

func mapCustomerToResponse(cust *customer.Customer) CustomerResponse {
	accounts := cust.Accounts()
	accountResponses := make([]AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		accountResponses = append(accountResponses, mapAccountToResponse(acc))
	}

	return CustomerResponse{
		ID:       cust.ID(),
		Name:     cust.Name(),
		Address:  cust.Address(),
		Phone:    cust.Phone(),
		Accounts: accountResponses,
	}
}

func mapTransactionToResponse(tx account.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            tx.ID,
		Timestamp:     tx.Timestamp.Format(time.RFC3339),
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		AccountNumber: tx.AccountNumber,
		Description:   tx.Description,
	}
}

func mapEventToResponse(entry eventlog.Entry) EventResponse {
	return EventResponse{
		ID:          entry.ID,
		Timestamp:   entry.Timestamp.Format(time.RFC3339),
		Level:       string(entry.Level),
		Description: entry.Description,
	}
}
