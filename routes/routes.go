package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tutorgo/handlers"
	"tutorgo/middleware"
	"tutorgo/models"
)

// RegisterAuthRoutes registers registration, login and logout.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterUserRoutes registers account profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetProfileHandler)
		api.PATCH("/me", hb.UpdateProfileHandler)
		api.PUT("/me/password", hb.ChangePasswordHandler)
	}
}

// RegisterTutorRoutes registers the public tutor surface and the tutor-side
// profile, availability and topic management endpoints.
func RegisterTutorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tutors")
	{
		// Public discovery endpoints.
		api.GET("", hb.SearchTutorsHandler)
		api.GET("/:id", hb.GetTutorProfileHandler)
		api.GET("/:id/availability", hb.ListTutorAvailabilityHandler)
		api.GET("/:id/reviews", hb.ListTutorReviewsHandler)

		// Tutor-only management endpoints.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleTutor))
		protected.PATCH("/me", hb.UpdateTutorProfileHandler)
		protected.POST("/me/availability", hb.AddAvailabilityHandler)
		protected.DELETE("/me/availability/:blockId", hb.RemoveAvailabilityHandler)
		protected.POST("/me/topics/:topicId", hb.AttachTopicHandler)
		protected.DELETE("/me/topics/:topicId", hb.DetachTopicHandler)
	}
}

// RegisterBookingRoutes registers the interactive booking flow and the direct
// reservation endpoint.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleStudent))
		api.POST("/flows", hb.StartFlowHandler)
		api.GET("/flows/:flowId", hb.GetFlowHandler)
		api.PUT("/flows/:flowId/block", hb.SelectBlockHandler)
		api.PUT("/flows/:flowId/start", hb.ChooseStartHandler)
		api.PUT("/flows/:flowId/duration", hb.SetDurationHandler)
		api.POST("/flows/:flowId/submit", hb.SubmitFlowHandler)
		api.POST("/reserve", hb.ReserveHandler)
	}
}

// RegisterSessionRoutes registers session listing, cancellation and reviews.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListMySessionsHandler)
		api.DELETE("/:id", hb.CancelSessionHandler)
		api.POST("/:id/review", middleware.RequireRole(models.RoleStudent), hb.CreateReviewHandler)
	}
}

// RegisterPaymentRoutes registers checkout and payment history.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/sessions/:sessionId", middleware.RequireRole(models.RoleStudent), hb.CreatePendingPaymentHandler)
		api.POST("/sessions/:sessionId/confirm", middleware.RequireRole(models.RoleStudent), hb.ConfirmPaymentHandler)
		api.GET("/history", hb.PaymentHistoryHandler)
	}
}

// RegisterNotificationRoutes registers in-app notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListNotificationsHandler)
		api.GET("/unread-count", hb.UnreadCountHandler)
		api.PUT("/:id/read", hb.MarkNotificationReadHandler)
	}
}

// RegisterTopicRoutes registers the public topic catalog.
func RegisterTopicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/topics", hb.ListTopicsHandler)
}

// RegisterAdminRoutes registers admin-only endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleAdmin))
		api.GET("/users", hb.AdminListUsersHandler)
		api.GET("/tutors", hb.AdminListTutorsHandler)
		api.POST("/topics", hb.CreateTopicHandler)
		api.PUT("/topics/:id", hb.UpdateTopicHandler)
		api.DELETE("/topics/:id", hb.DeleteTopicHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterTutorRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterTopicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
