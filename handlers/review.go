package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tutorgo/models"
	"tutorgo/utils"
)

// CreateReviewHandler lets the student who booked a confirmed session rate it.
func (h *HandlerBundle) CreateReviewHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid review request", err.Error())
		return
	}

	review, err := h.ReviewSvc.CreateReview(userID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// ListTutorReviewsHandler lists a tutor's reviews (public).
func (h *HandlerBundle) ListTutorReviewsHandler(c *gin.Context) {
	reviews, err := h.ReviewSvc.ListByTutor(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
