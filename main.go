package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutorgo/config"
	"tutorgo/cron"
	"tutorgo/database"
	availabilityRepoPkg "tutorgo/database/repository/availability"
	notificationRepoPkg "tutorgo/database/repository/notification"
	paymentRepoPkg "tutorgo/database/repository/payment"
	reviewRepoPkg "tutorgo/database/repository/review"
	sessionRepoPkg "tutorgo/database/repository/session"
	topicRepoPkg "tutorgo/database/repository/topic"
	tutorRepoPkg "tutorgo/database/repository/tutor"
	userRepoPkg "tutorgo/database/repository/user"
	"tutorgo/handlers"
	"tutorgo/middleware"
	"tutorgo/routes"
	"tutorgo/services/booking"
	"tutorgo/services/notification"
	"tutorgo/services/payment"
	"tutorgo/services/review"
	"tutorgo/services/topic"
	"tutorgo/services/tutor"
	"tutorgo/services/user"
	"tutorgo/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	tutorRepo := tutorRepoPkg.NewMongoTutorRepo()
	topicRepo := topicRepoPkg.NewMongoTopicRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	sessionRepo := sessionRepoPkg.NewMongoSessionRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// Services.
	notificationService := &notification.DefaultNotificationService{
		Repo: notificationRepo,
	}

	userService := &user.DefaultUserService{
		Repo:      userRepo,
		TutorRepo: tutorRepo,
	}

	tutorService := &tutor.DefaultTutorService{
		Repo:             tutorRepo,
		AvailabilityRepo: availabilityRepo,
		TopicRepo:        topicRepo,
		ReviewRepo:       reviewRepo,
	}

	topicService := &topic.DefaultTopicService{
		Repo: topicRepo,
	}

	bookingService := &booking.DefaultBookingService{
		SessionRepo:      sessionRepo,
		AvailabilityRepo: availabilityRepo,
		TutorRepo:        tutorRepo,
		Flows:            booking.NewFlowStore(utils.GetBookingFlowClient()),
		NotificationSvc:  notificationService,
	}

	paymentService := &payment.DefaultPaymentService{
		PaymentRepo:      paymentRepo,
		SessionRepo:      sessionRepo,
		TutorRepo:        tutorRepo,
		AvailabilityRepo: availabilityRepo,
		NotificationSvc:  notificationService,
		Processor:        &payment.StripeProcessor{},
		ScheduleReminder: cron.ScheduleSessionReminder,
	}

	reviewService := &review.DefaultReviewService{
		Repo:        reviewRepo,
		SessionRepo: sessionRepo,
		TutorRepo:   tutorRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:        userRepo,
		UserSvc:         userService,
		TutorSvc:        tutorService,
		TopicSvc:        topicService,
		BookingSvc:      bookingService,
		PaymentSvc:      paymentService,
		NotificationSvc: notificationService,
		ReviewSvc:       reviewService,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker and health monitor.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetBookingFlowClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
