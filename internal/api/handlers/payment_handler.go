package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lionfit/gym-management-backend/internal/models"
	"github.com/lionfit/gym-management-backend/internal/service"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// List returns all payments, newest first
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.paymentService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	response := make([]models.PaymentResponse, len(payments))
	for i, p := range payments {
		response[i] = toPaymentResponse(p)
	}
	c.JSON(http.StatusOK, response)
}

// Record persists a payment and renews the paying member's period.
// An unknown member id still records the payment; that is the
// documented behavior, not an error.
func (h *PaymentHandler) Record(c *gin.Context) {
	var req models.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), req.MemberID, req.Amount, req.Date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusCreated, toPaymentResponse(payment))
}

// ListForMember returns one member's payments, newest first
func (h *PaymentHandler) ListForMember(c *gin.Context) {
	memberID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member id"})
		return
	}

	payments, err := h.paymentService.ListForMember(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	response := make([]models.PaymentResponse, len(payments))
	for i, p := range payments {
		response[i] = toPaymentResponse(p)
	}
	c.JSON(http.StatusOK, response)
}

// Delete removes a payment record without touching the member it
// renewed
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment id"})
		return
	}

	if err := h.paymentService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted"})
}
