package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tutorgo/models"
	"tutorgo/utils"
)

// RegisterHandler creates a new account and returns an auth token.
func (h *HandlerBundle) RegisterHandler(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration request", err.Error())
		return
	}

	resp, err := h.UserSvc.Register(req)
	if err != nil {
		utils.GetLogger().Warn("RegisterHandler: registration failed", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler authenticates credentials and returns a fresh token.
func (h *HandlerBundle) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login request", err.Error())
		return
	}

	resp, err := h.UserSvc.Authenticate(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler revokes the authenticated account's current token.
func (h *HandlerBundle) LogoutHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	if err := h.UserSvc.RevokeToken(userID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out."})
}
