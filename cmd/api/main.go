package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"academy/internal/bootstrap"
	"academy/internal/config"
	"academy/internal/database"
	"academy/internal/domain/admin"
	"academy/internal/domain/auth"
	"academy/internal/domain/chat"
	"academy/internal/domain/club"
	"academy/internal/domain/event"
	"academy/internal/domain/lead"
	"academy/internal/domain/membership"
	"academy/internal/domain/news"
	"academy/internal/domain/payment"
	"academy/internal/domain/shop"
	"academy/internal/domain/sitecontent"
	"academy/internal/domain/wall"
	"academy/internal/metrics"
	"academy/internal/middleware"
	"academy/internal/notification"
	"academy/internal/pkg/credential"
	applogger "academy/internal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := applogger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	dsn, err := cfg.DatabaseDSN()
	if err != nil {
		return err
	}
	db, err := database.Connect(dsn, logger)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(db, bootstrap.Models()...); err != nil {
		return err
	}

	var mailer notification.Mailer
	if cfg.Mail.Enabled() {
		mailer = notification.NewSendGridMailer(cfg.Mail.SendGridAPIKey, cfg.Mail.FromEmail, cfg.Mail.FromName)
	} else {
		logger.Warn("SENDGRID_API_KEY not set, emails are only logged")
		mailer = notification.NewLogMailer(logger)
	}
	dispatcher := notification.NewDispatcher(mailer, logger, 0)

	creds := credential.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	// repositories
	userRepo := auth.NewUserRepository(db)
	clubRepo := club.NewRepository(db)
	newsRepo := news.NewRepository(db)
	eventRepo := event.NewRepository(db)
	leadRepo := lead.NewRepository(db)
	membershipRepo := membership.NewRepository(db)
	chatRepo := chat.NewRepository(db)
	wallRepo := wall.NewRepository(db)
	shopRepo := shop.NewRepository(db)
	paymentRepo := payment.NewRepository(db)
	siteContentRepo := sitecontent.NewRepository(db)

	// services
	clubService := club.NewService(clubRepo, userRepo, logger)
	authService := auth.NewService(userRepo, creds, dispatcher, logger).WithClubs(clubService)
	newsService := news.NewService(newsRepo, logger)
	eventService := event.NewService(eventRepo, logger)
	leadService := lead.NewService(leadRepo, dispatcher, cfg.Mail.AdminNotifyEmail, logger)
	membershipService := membership.NewService(membershipRepo, authService, creds, dispatcher, logger)
	chatService := chat.NewService(chatRepo, userRepo, logger)
	wallService := wall.NewService(wallRepo, userRepo, logger)
	shopService := shop.NewService(shopRepo, logger)
	siteContentService := sitecontent.NewService(siteContentRepo, logger)
	paymentService := payment.NewService(payment.Deps{
		Repo:      paymentRepo,
		Provider:  payment.NewStripeProvider(cfg.Payment.StripeSecretKey),
		Users:     userRepo,
		Catalogue: shopService,
		Orders:    shopRepo,
		Notifier:  dispatcher,
		Logger:    logger,
	}, cfg.Payment, cfg.OriginAllowed)
	adminService := admin.NewService(userRepo, authService, admin.NewStatsRepository(db),
		membershipService, paymentService, cfg.Payment.Currency, logger)

	if err := bootstrap.EnsureAdmin(context.Background(), authService, cfg.Admin, logger); err != nil {
		return err
	}

	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORSOrigins),
		middleware.Metrics(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	authHandler := auth.NewHandler(authService)
	clubHandler := club.NewHandler(clubService)
	newsHandler := news.NewHandler(newsService)
	eventHandler := event.NewHandler(eventService)
	leadHandler := lead.NewHandler(leadService)
	membershipHandler := membership.NewHandler(membershipService)
	chatHandler := chat.NewHandler(chatService)
	wallHandler := wall.NewHandler(wallService)
	shopHandler := shop.NewHandler(shopService)
	paymentHandler := payment.NewHandler(paymentService, payment.NewStripeVerifier(cfg.Payment.WebhookSecret))
	adminHandler := admin.NewHandler(adminService)
	siteContentHandler := sitecontent.NewHandler(siteContentService)

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		clubHandler.RegisterPublicRoutes(api)
		newsHandler.RegisterPublicRoutes(api)
		eventHandler.RegisterPublicRoutes(api)
		lead.RegisterPublicRoutes(api, leadHandler)
		membershipHandler.RegisterPublicRoutes(api)
		shopHandler.RegisterPublicRoutes(api)
		paymentHandler.RegisterPublicRoutes(api)
		siteContentHandler.RegisterPublicRoutes(api)

		resolver := auth.NewSessionResolver(creds, userRepo)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(resolver))
		{
			authHandler.RegisterProtectedRoutes(protected)
			eventHandler.RegisterProtectedRoutes(protected)
			chatHandler.RegisterProtectedRoutes(protected)
			wallHandler.RegisterProtectedRoutes(protected)
			shopHandler.RegisterProtectedRoutes(protected)
			paymentHandler.RegisterProtectedRoutes(protected)
		}

		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.JWTAuth(resolver), middleware.AdminOnly())
		{
			clubHandler.RegisterAdminRoutes(adminGroup)
			newsHandler.RegisterAdminRoutes(adminGroup)
			eventHandler.RegisterAdminRoutes(adminGroup)
			lead.RegisterAdminRoutes(adminGroup, leadHandler)
			membershipHandler.RegisterAdminRoutes(adminGroup)
			shopHandler.RegisterAdminRoutes(adminGroup)
			adminHandler.RegisterAdminRoutes(adminGroup)
			siteContentHandler.RegisterAdminRoutes(adminGroup)
		}
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}
	if err := dispatcher.Wait(ctx); err != nil {
		logger.Warn("pending emails not drained", zap.Error(err))
	}
	return nil
}
