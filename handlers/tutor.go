package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tutorgo/models"
	"tutorgo/utils"
)

// SearchTutorsHandler lists tutors matching the query-string filters.
func (h *HandlerBundle) SearchTutorsHandler(c *gin.Context) {
	filter := models.TutorSearchFilter{
		Query:    c.Query("q"),
		DateFrom: c.Query("dateFrom"),
		DateTo:   c.Query("dateTo"),
	}
	filter.MaxRate, _ = strconv.ParseFloat(c.Query("maxRate"), 64)
	filter.MinRating, _ = strconv.ParseFloat(c.Query("minRating"), 64)
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	filter.PageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	if tf := c.Query("timeFrom"); tf != "" {
		m, err := utils.ClockToMinutes(tf)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid timeFrom", err.Error())
			return
		}
		filter.TimeFrom = m
	}
	if tt := c.Query("timeTo"); tt != "" {
		m, err := utils.ClockToMinutes(tt)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid timeTo", err.Error())
			return
		}
		filter.TimeTo = m
	}

	page, err := h.TutorSvc.Search(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetTutorProfileHandler returns a tutor's public profile with topics and reviews.
func (h *HandlerBundle) GetTutorProfileHandler(c *gin.Context) {
	profile, err := h.TutorSvc.GetProfile(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Tutor not found", "")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateTutorProfileHandler edits the authenticated tutor's teaching profile.
func (h *HandlerBundle) UpdateTutorProfileHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req struct {
		Field      string  `json:"field,omitempty"`
		Bio        string  `json:"bio,omitempty"`
		HourlyRate float64 `json:"hourlyRate,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update request", err.Error())
		return
	}

	t, err := h.TutorSvc.UpdateProfile(userID, req.Field, req.Bio, req.HourlyRate)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// ListTutorAvailabilityHandler lists a tutor's open blocks (public).
func (h *HandlerBundle) ListTutorAvailabilityHandler(c *gin.Context) {
	blocks, err := h.BookingSvc.GetTutorAvailability(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, blocks)
}

// AddAvailabilityHandler creates an availability block for the authenticated tutor.
func (h *HandlerBundle) AddAvailabilityHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid availability request", err.Error())
		return
	}

	block, err := h.TutorSvc.AddAvailability(userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, block)
}

// RemoveAvailabilityHandler deletes one of the authenticated tutor's blocks.
func (h *HandlerBundle) RemoveAvailabilityHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	if err := h.TutorSvc.RemoveAvailability(userID, c.Param("blockId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability block removed."})
}

// AttachTopicHandler links a catalog topic to the authenticated tutor.
func (h *HandlerBundle) AttachTopicHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	t, err := h.TutorSvc.AttachTopic(userID, c.Param("topicId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DetachTopicHandler unlinks a topic from the authenticated tutor.
func (h *HandlerBundle) DetachTopicHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	t, err := h.TutorSvc.DetachTopic(userID, c.Param("topicId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}
