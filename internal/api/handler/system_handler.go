package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// SystemHandler handles the maintenance sweep and the event log surface
type SystemHandler struct {
	bankService BankService
	events      EventStore
	logger      *slog.Logger
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(logger *slog.Logger, bankService BankService, events EventStore) *SystemHandler {
	return &SystemHandler{
		bankService: bankService,
		events:      events,
		logger:      logger,
	}
}

// RunMaintenance triggers one monthly maintenance sweep over all accounts
func (h *SystemHandler) RunMaintenance(c *gin.Context) {
	visited := h.bankService.RunMonthlyMaintenance()
	RespondOK(c, MaintenanceResponse{AccountsVisited: visited})
}

// GetEvents returns a snapshot of the event log in append order
func (h *SystemHandler) GetEvents(c *gin.Context) {
	entries := h.events.Snapshot()

	responses := make([]EventResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, mapEventToResponse(entry))
	}
	RespondOK(c, responses)
}

// ResetEvents clears the event log. Administrative use only.
func (h *SystemHandler) ResetEvents(c *gin.Context) {
	h.events.Reset()
	h.logger.Info("event log reset via API")
	RespondNoContent(c)
}
