package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListNotificationsHandler returns the caller's notifications, newest first.
func (h *HandlerBundle) ListNotificationsHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	items, err := h.NotificationSvc.ListForUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// UnreadCountHandler returns the caller's unread notification count.
func (h *HandlerBundle) UnreadCountHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	count, err := h.NotificationSvc.UnreadCount(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// MarkNotificationReadHandler marks one of the caller's notifications as read.
func (h *HandlerBundle) MarkNotificationReadHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	if err := h.NotificationSvc.MarkRead(c.Param("id"), userID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read."})
}
