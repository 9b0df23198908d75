package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// CustomerHandler handles HTTP requests for the customer directory
type CustomerHandler struct {
	bankService BankService
	logger      *slog.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(logger *slog.Logger, bankService BankService) *CustomerHandler {
	return &CustomerHandler{
		bankService: bankService,
		logger:      logger,
	}
}

// Create registers a new customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cust := h.bankService.CreateCustomer(req.Name, req.Address, req.Phone)
	RespondCreated(c, mapCustomerToResponse(cust))
}

// GetByID retrieves a customer with all of their accounts
func (h *CustomerHandler) GetByID(c *gin.Context) {
	cust, err := h.bankService.Customer(c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	RespondOK(c, mapCustomerToResponse(cust))
}

// List returns every registered customer
func (h *CustomerHandler) List(c *gin.Context) {
	customers := h.bankService.Customers()

	responses := make([]CustomerResponse, 0, len(customers))
	for _, cust := range customers {
		responses = append(responses, mapCustomerToResponse(cust))
	}
	RespondOK(c, responses)
}
