package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tutorgo/models"
	"tutorgo/utils"
)

// GetProfileHandler returns the authenticated user's account.
func (h *HandlerBundle) GetProfileHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	account, err := h.UserSvc.GetUserByID(userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Account not found", "")
		return
	}
	c.JSON(http.StatusOK, account)
}

// UpdateProfileHandler updates name and photo on the authenticated account.
func (h *HandlerBundle) UpdateProfileHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update request", err.Error())
		return
	}

	account, err := h.UserSvc.UpdateProfile(userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// ChangePasswordHandler rotates the password and revokes existing tokens.
func (h *HandlerBundle) ChangePasswordHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.UserSvc.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed. Please log in again."})
}
