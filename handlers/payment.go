package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tutorgo/models"
	"tutorgo/utils"
)

// CreatePendingPaymentHandler quotes and records a pending payment for a
// reserved session.
func (h *HandlerBundle) CreatePendingPaymentHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	payment, err := h.PaymentSvc.CreatePendingPayment(userID, c.Param("sessionId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// ConfirmPaymentHandler charges the card token and confirms the session.
func (h *HandlerBundle) ConfirmPaymentHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req models.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment request", err.Error())
		return
	}

	payment, err := h.PaymentSvc.ConfirmPayment(userID, c.Param("sessionId"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// PaymentHistoryHandler pages through payments made (students) or received (tutors).
func (h *HandlerBundle) PaymentHistoryHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	history, err := h.PaymentSvc.History(userID, authedRole(c), page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
