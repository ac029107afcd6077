package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tutorgo/models"
	"tutorgo/utils"
)

// ListTopicsHandler returns the topic catalog (public).
func (h *HandlerBundle) ListTopicsHandler(c *gin.Context) {
	topics, err := h.TopicSvc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, topics)
}

// CreateTopicHandler adds a catalog topic (admin).
func (h *HandlerBundle) CreateTopicHandler(c *gin.Context) {
	var req models.TopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid topic request", err.Error())
		return
	}

	topic, err := h.TopicSvc.Create(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, topic)
}

// UpdateTopicHandler edits a catalog topic (admin).
func (h *HandlerBundle) UpdateTopicHandler(c *gin.Context) {
	var req models.TopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid topic request", err.Error())
		return
	}

	topic, err := h.TopicSvc.Update(c.Param("id"), req)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Topic not found", "")
		return
	}
	c.JSON(http.StatusOK, topic)
}

// DeleteTopicHandler removes a catalog topic (admin).
func (h *HandlerBundle) DeleteTopicHandler(c *gin.Context) {
	if err := h.TopicSvc.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Topic deleted."})
}
