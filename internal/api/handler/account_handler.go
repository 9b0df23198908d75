package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles HTTP requests for account operations
type AccountHandler struct {
	bankService BankService
	logger      *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(logger *slog.Logger, bankService BankService) *AccountHandler {
	return &AccountHandler{
		bankService: bankService,
		logger:      logger,
	}
}

// Create opens a new savings or checking account for an existing customer
func (h *AccountHandler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var resp AccountResponse
	switch req.Type {
	case "SAVINGS":
		acc, err := h.bankService.CreateSavingsAccount(req.CustomerID, req.InitialBalance, req.InterestRate)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		resp = mapAccountToResponse(acc)
	case "CHECKING":
		acc, err := h.bankService.CreateCheckingAccount(req.CustomerID, req.InitialBalance, req.OverdraftLimit)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		resp = mapAccountToResponse(acc)
	}

	RespondCreated(c, resp)
}

// GetByNumber retrieves an account by its account number
func (h *AccountHandler) GetByNumber(c *gin.Context) {
	acc, err := h.bankService.Account(c.Param("number"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	RespondOK(c, mapAccountToResponse(acc))
}

// GetTransactions returns the account's full transaction history in
// chronological order
func (h *AccountHandler) GetTransactions(c *gin.Context) {
	acc, err := h.bankService.Account(c.Param("number"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	history := acc.History()
	responses := make([]TransactionResponse, 0, len(history))
	for _, tx := range history {
		responses = append(responses, mapTransactionToResponse(tx))
	}
	RespondOK(c, responses)
}

// Deposit credits an account
func (h *AccountHandler) Deposit(c *gin.Context) {
	h.mutate(c, func(req AmountRequest) (string, error) {
		acc, err := h.bankService.Account(c.Param("number"))
		if err != nil {
			return "", err
		}
		return acc.Number(), acc.Deposit(req.Amount, req.Description)
	})
}

// Withdraw debits an account under its variant's withdrawal policy
func (h *AccountHandler) Withdraw(c *gin.Context) {
	h.mutate(c, func(req AmountRequest) (string, error) {
		acc, err := h.bankService.Account(c.Param("number"))
		if err != nil {
			return "", err
		}
		return acc.Number(), acc.Withdraw(req.Amount, req.Description)
	})
}

// mutate runs one balance mutation and responds with the refreshed account
// state on success.
func (h *AccountHandler) mutate(c *gin.Context, op func(AmountRequest) (string, error)) {
	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	number, err := op(req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	acc, err := h.bankService.Account(number)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	RespondOK(c, mapAccountToResponse(acc))
}
