package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tutorgo/utils"
)

// AdminListUsersHandler returns every account on the platform.
func (h *HandlerBundle) AdminListUsersHandler(c *gin.Context) {
	users, err := h.UserSvc.GetAllUsers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// AdminListTutorsHandler returns every tutor profile on the platform.
func (h *HandlerBundle) AdminListTutorsHandler(c *gin.Context) {
	tutors, err := h.TutorSvc.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tutors)
}

// HealthHandler reports liveness of the backing services.
func (h *HandlerBundle) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
