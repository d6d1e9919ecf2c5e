package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kinderly/kinderly/internal/models"
	"github.com/kinderly/kinderly/internal/service"
)

type allocatePaymentRequest struct {
	GuardianID string   `json:"guardianId" binding:"required"`
	ChildIDs   []string `json:"childIds" binding:"required,min=1"`
	Amount     float64  `json:"amount" binding:"required,gt=0"`
}

// AllocatePayment handles POST /payments
func (s *Server) AllocatePayment(c *gin.Context) {
	var req allocatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	result, err := s.payments.AllocatePayment(c.Request.Context(), req.GuardianID, req.ChildIDs, req.Amount)
	if err != nil {
		slog.Warn("Allocation rejected", "guardian_id", req.GuardianID, "error", err)
		observeAllocation(string(service.KindOf(err)), 0)
		writeError(c, err)
		return
	}

	observeAllocation("ok", req.Amount)
	c.JSON(http.StatusCreated, result)
}

// ListPayments handles GET /payments
func (s *Server) ListPayments(c *gin.Context) {
	payments, err := s.payments.ListPayments(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list payments", "error", err)
		writeError(c, err)
		return
	}
	if payments == nil {
		// Return empty list instead of null for JSON consistency
		c.JSON(http.StatusOK, []*models.Payment{})
		return
	}
	c.JSON(http.StatusOK, payments)
}
