package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	userRepoPkg "tutorgo/database/repository/user"
	"tutorgo/services/booking"
	"tutorgo/services/notification"
	"tutorgo/services/payment"
	"tutorgo/services/review"
	"tutorgo/services/topic"
	"tutorgo/services/tutor"
	"tutorgo/services/user"
	"tutorgo/utils"
)

// HandlerBundle groups all endpoint handlers and the services they call.
// UserRepo is exposed for the auth middleware's token-hash fallback lookup.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	UserSvc         user.UserService
	TutorSvc        tutor.TutorService
	TopicSvc        topic.TopicService
	BookingSvc      booking.BookingService
	PaymentSvc      payment.PaymentService
	NotificationSvc notification.NotificationService
	ReviewSvc       review.ReviewService
}

// authedUserID returns the userID set by the auth middleware, aborting with
// 401 when missing.
func authedUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	id, ok := userID.(string)
	if !exists || !ok || id == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing authenticated user")
		return "", false
	}
	return id, true
}

func authedRole(c *gin.Context) string {
	role, _ := c.Get("role")
	roleStr, _ := role.(string)
	return roleStr
}

// respondServiceError maps service error types to HTTP responses. Unknown
// errors become a 500 without leaking internals.
func respondServiceError(c *gin.Context, err error) {
	var authErr *user.AuthError
	if errors.As(err, &authErr) {
		utils.JSONError(c, http.StatusUnauthorized, authErr.Message, "")
		return
	}
	var resErr *booking.ReservationError
	if errors.As(err, &resErr) {
		utils.JSONError(c, http.StatusConflict, resErr.Message, "")
		return
	}
	switch {
	case errors.Is(err, booking.ErrSubmitInFlight), errors.Is(err, booking.ErrFlowAlreadyDone):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
		return
	case errors.Is(err, booking.ErrNoStartTime), errors.Is(err, booking.ErrNoBlockSelected),
		errors.Is(err, booking.ErrInvalidStartTime):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	var payErr *payment.PaymentError
	if errors.As(err, &payErr) {
		utils.JSONError(c, http.StatusBadRequest, payErr.Message, "")
		return
	}
	var profErr *tutor.ProfileError
	if errors.As(err, &profErr) {
		utils.JSONError(c, http.StatusBadRequest, profErr.Message, "")
		return
	}
	var revErr *review.ReviewError
	if errors.As(err, &revErr) {
		utils.JSONError(c, http.StatusBadRequest, revErr.Message, "")
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "Something went wrong. Please try again later.", "")
}
