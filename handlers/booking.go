package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tutorgo/models"
	"tutorgo/utils"
)

// StartFlowHandler opens a booking flow against a tutor and returns the flow
// state plus the tutor's open blocks.
func (h *HandlerBundle) StartFlowHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req struct {
		TutorID string `json:"tutorId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	flow, blocks, err := h.BookingSvc.StartFlow(c.Request.Context(), userID, req.TutorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"flow": flow, "blocks": blocks})
}

// GetFlowHandler returns the current state of an in-progress flow.
func (h *HandlerBundle) GetFlowHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	flow, err := h.BookingSvc.GetFlow(c.Request.Context(), c.Param("flowId"), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if flow == nil {
		utils.JSONError(c, http.StatusNotFound, "Booking flow not found or expired", "")
		return
	}
	c.JSON(http.StatusOK, flow)
}

// SelectBlockHandler picks an availability block inside the flow.
func (h *HandlerBundle) SelectBlockHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req struct {
		BlockID string `json:"blockId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	flow, err := h.BookingSvc.FlowSelectBlock(c.Request.Context(), c.Param("flowId"), userID, req.BlockID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, flow)
}

// ChooseStartHandler picks one of the block's hourly start options.
func (h *HandlerBundle) ChooseStartHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req struct {
		StartTime string `json:"startTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	flow, err := h.BookingSvc.FlowChooseStart(c.Request.Context(), c.Param("flowId"), userID, req.StartTime)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, flow)
}

// SetDurationHandler sets the session length in whole hours.
func (h *HandlerBundle) SetDurationHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req struct {
		Hours int `json:"hours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	flow, err := h.BookingSvc.FlowSetDuration(c.Request.Context(), c.Param("flowId"), userID, req.Hours)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, flow)
}

// SubmitFlowHandler attempts the reservation. The flow survives a failed
// submit so the student can retry with a different slot.
func (h *HandlerBundle) SubmitFlowHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	result, flow, err := h.BookingSvc.FlowSubmit(c.Request.Context(), c.Param("flowId"), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	status := http.StatusOK
	if result.Success {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"result": result, "flow": flow})
}

// ReserveHandler creates a pending session directly, without a flow.
func (h *HandlerBundle) ReserveHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reservation request", err.Error())
		return
	}

	session, err := h.BookingSvc.Reserve(userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.ReservationResponse{
		Success: true,
		Message: "Session reserved. Continue to checkout.",
		Data:    session,
	})
}

// ListMySessionsHandler lists the caller's sessions, student or tutor side.
func (h *HandlerBundle) ListMySessionsHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	if authedRole(c) == models.RoleTutor {
		t, err := h.TutorSvc.GetByUserID(userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		sessions, err := h.BookingSvc.ListTutorSessions(t.ID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, sessions)
		return
	}

	sessions, err := h.BookingSvc.ListStudentSessions(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// CancelSessionHandler cancels a pending session owned by the caller.
func (h *HandlerBundle) CancelSessionHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	if err := h.BookingSvc.CancelSession(userID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session cancelled."})
}
