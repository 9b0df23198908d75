package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// TransferHandler handles HTTP requests for the transfer protocol
type TransferHandler struct {
	bankService BankService
	logger      *slog.Logger
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(logger *slog.Logger, bankService BankService) *TransferHandler {
	return &TransferHandler{
		bankService: bankService,
		logger:      logger,
	}
}

// Create executes a transfer between two accounts. A failed transfer leaves
// both accounts unchanged.
func (h *TransferHandler) Create(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.bankService.Transfer(req.FromAccount, req.ToAccount, req.Amount, req.Description); err != nil {
		respondDomainError(c, err)
		return
	}

	from, err := h.bankService.Account(req.FromAccount)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	to, err := h.bankService.Account(req.ToAccount)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"from": mapAccountToResponse(from),
		"to":   mapAccountToResponse(to),
	})
}
