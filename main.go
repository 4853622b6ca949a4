package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookwise/config"
	"bookwise/cron"
	"bookwise/database"
	accountRepo "bookwise/database/repository/account"
	slotRepo "bookwise/database/repository/slot"
	"bookwise/handlers"
	"bookwise/middleware"
	"bookwise/models"
	"bookwise/routes"
	"bookwise/services/admin"
	"bookwise/services/booking"
	"bookwise/services/notification"
	"bookwise/services/provider"
	"bookwise/services/verification"
	"bookwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// Storage.
	mongoClient, err := database.Connect(rootCtx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("main: mongo unavailable", zap.Error(err))
	}
	defer mongoClient.Disconnect(context.Background())
	db := mongoClient.Database(cfg.DatabaseName)

	accounts := accountRepo.NewMongoAccountRepo(db)
	if err := accounts.EnsureIndexes(rootCtx); err != nil {
		logger.Fatal("main: account indexes", zap.Error(err))
	}
	slots := slotRepo.NewMongoSlotRepo(db)
	if err := slots.EnsureIndexes(rootCtx); err != nil {
		logger.Fatal("main: slot indexes", zap.Error(err))
	}

	redisClient, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisOTPDB)
	if err != nil {
		logger.Fatal("main: redis unavailable", zap.Error(err))
	}
	defer redisClient.Close()

	// Notifications and background worker.
	queueOpts := asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisQueueDB}
	asynqClient := asynq.NewClient(queueOpts)
	defer asynqClient.Close()
	queue := notification.NewQueueNotifier(asynqClient, cfg.OTPTTL, logger)

	var (
		notifier notification.Notifier
		mailer   notification.Mailer
	)
	switch cfg.NotifierMode {
	case config.NotifierLog:
		logNotifier := notification.NewLogNotifier(logger)
		notifier, mailer = logNotifier, logNotifier
	default:
		sender := notification.NewMailSender(notification.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.MailFrom,
		}, nil, logger)
		mailer = sender
		notifier = sender
		if cfg.NotifierMode == config.NotifierQueue {
			notifier = queue
		}
	}

	worker := cron.NewWorker(queueOpts, mailer, accounts, logger)
	worker.Start()
	defer worker.Shutdown()

	// Services.
	verificationService := &verification.DefaultVerificationService{
		Accounts:   accounts,
		Codec:      utils.NewTokenCodec(cfg.JWTSecret),
		OTP:        utils.NewOTPGenerator(cfg.OTPLength),
		Hasher:     utils.NewBcryptHasher(bcrypt.DefaultCost),
		Notifier:   notifier,
		Limiter:    verification.NewRedisAttemptLimiter(redisClient, cfg.OTPMaxAttempts),
		Logger:     logger,
		OTPTTL:     cfg.OTPTTL,
		SessionTTL: cfg.SessionTTL,
	}
	if err := verificationService.Validate(); err != nil {
		logger.Fatal("main: verification service", zap.Error(err))
	}

	bookingService := &booking.DefaultBookingService{
		Slots:        slots,
		Accounts:     accounts,
		Reminders:    queue,
		Logger:       logger,
		Location:     cfg.Location(),
		ReminderLead: cfg.ReminderLead,
	}
	if err := bookingService.Validate(); err != nil {
		logger.Fatal("main: booking service", zap.Error(err))
	}

	adminService, err := admin.NewDefaultAdminService(accounts, logger)
	if err != nil {
		logger.Fatal("main: admin service", zap.Error(err))
	}
	directoryService, err := provider.NewDefaultDirectoryService(accounts)
	if err != nil {
		logger.Fatal("main: directory service", zap.Error(err))
	}

	health := utils.NewHealthMonitor(redisClient, mongoClient)
	health.Start(rootCtx, 30*time.Second)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserAuth:     handlers.NewAuthHandler(verificationService, models.RoleUser),
		ProviderAuth: handlers.NewAuthHandler(verificationService, models.RoleProvider),
		Booking:      handlers.NewBookingHandler(bookingService),
		Directory:    handlers.NewDirectoryHandler(directoryService),
		Admin:        handlers.NewAdminHandler(adminService),

		UserAuthMiddleware:     middleware.SessionAuth(verificationService, logger, models.RoleUser),
		ProviderAuthMiddleware: middleware.SessionAuth(verificationService, logger, models.RoleProvider),
		AdminMiddleware:        middleware.AdminAuth(cfg.AdminToken, logger),

		HealthHandler:  handlers.HealthHandler(health),
		MetricsHandler: middleware.MetricsHandler(),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.ErrorHandler(logger))
	router.Use(utils.RequestLogger(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.NewRateLimiter(cfg.MaxRequestsPerMin).Middleware(logger))

	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Info("main: starting server", zap.String("addr", srv.Addr), zap.String("notifier", cfg.NotifierMode))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
