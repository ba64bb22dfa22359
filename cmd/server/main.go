package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	billingapp "github.com/condo/backend/internal/application/billing"
	communicationapp "github.com/condo/backend/internal/application/communication"
	condominiumapp "github.com/condo/backend/internal/application/condominium"
	eventapp "github.com/condo/backend/internal/application/event"
	frontdeskapp "github.com/condo/backend/internal/application/frontdesk"
	identityapp "github.com/condo/backend/internal/application/identity"
	reportapp "github.com/condo/backend/internal/application/report"
	reservationapp "github.com/condo/backend/internal/application/reservation"
	ticketapp "github.com/condo/backend/internal/application/ticket"
	"github.com/condo/backend/internal/domain/identity"
	"github.com/condo/backend/internal/infrastructure/auth"
	"github.com/condo/backend/internal/infrastructure/cache"
	"github.com/condo/backend/internal/infrastructure/config"
	"github.com/condo/backend/internal/infrastructure/event"
	"github.com/condo/backend/internal/infrastructure/logger"
	"github.com/condo/backend/internal/infrastructure/persistence"
	"github.com/condo/backend/internal/infrastructure/persistence/condoscope"
	"github.com/condo/backend/internal/infrastructure/scheduler"
	"github.com/condo/backend/internal/interfaces/http/handler"
	"github.com/condo/backend/internal/interfaces/http/middleware"
	"github.com/condo/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Condo Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection with a GORM log level derived from the app log level
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogLevel)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Queries running in a request context get the condominium clause
	// added automatically when the repository query does not carry one.
	condoscope.EnableAutoCondoFilter(db.DB, false)

	// Initialize repositories
	condominiumRepo := persistence.NewGormCondominiumRepository(db.DB)
	unidadeRepo := persistence.NewGormUnidadeRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	boletoRepo := persistence.NewGormBoletoRepository(db.DB)
	acordoRepo := persistence.NewGormAcordoRepository(db.DB)
	espacoRepo := persistence.NewGormEspacoRepository(db.DB)
	reservaRepo := persistence.NewGormReservaRepository(db.DB)
	visitaRepo := persistence.NewGormVisitaRepository(db.DB)
	encomendaRepo := persistence.NewGormEncomendaRepository(db.DB)
	ocorrenciaRepo := persistence.NewGormOcorrenciaRepository(db.DB)
	avisoRepo := persistence.NewGormAvisoRepository(db.DB)
	enqueteRepo := persistence.NewGormEnqueteRepository(db.DB)
	billingReportRepo := persistence.NewGormBillingReportRepository(db.DB)
	operationsReportRepo := persistence.NewGormOperationsReportRepository(db.DB)
	outboxRepo := event.NewGormOutboxRepository(db.DB)

	// Initialize event serializer and register all event types
	eventSerializer := event.NewEventSerializer()
	event.RegisterAllEvents(eventSerializer)

	// Create outbox publisher for transactional event saving
	outboxPublisher := event.NewOutboxPublisher(eventSerializer)

	// Inject outbox publisher into repositories that need transactional event publishing
	boletoRepo.SetOutboxEventSaver(outboxPublisher)
	acordoRepo.SetOutboxEventSaver(outboxPublisher)

	// Initialize application services
	condominiumService := condominiumapp.NewCondominiumService(condominiumRepo, unidadeRepo)
	boletoService := billingapp.NewBoletoService(boletoRepo)
	acordoService := billingapp.NewAcordoService(acordoRepo, boletoRepo)
	espacoService := reservationapp.NewEspacoService(espacoRepo)
	reservaService := reservationapp.NewReservaService(espacoRepo, reservaRepo)
	visitaService := frontdeskapp.NewVisitaService(visitaRepo)
	encomendaService := frontdeskapp.NewEncomendaService(encomendaRepo)
	ocorrenciaService := ticketapp.NewOcorrenciaService(ocorrenciaRepo)
	avisoService := communicationapp.NewAvisoService(avisoRepo)
	enqueteService := communicationapp.NewEnqueteService(enqueteRepo)
	reportService := reportapp.NewReportService(billingReportRepo, operationsReportRepo)
	outboxService := eventapp.NewOutboxService(outboxRepo, log)

	// Identity services (auth, users)
	jwtService := auth.NewJWTService(cfg.JWT)
	blacklist := newTokenBlacklist(cfg, log)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, identityapp.DefaultAuthServiceConfig(), log)
	userService := identityapp.NewUserService(userRepo)

	// Initialize event bus and cross-context handlers
	eventBus := event.NewInMemoryEventBus(log)

	// Idempotency store keeps at-least-once outbox delivery from running
	// a handler twice for the same event
	storeFactory := cache.NewIdempotencyStoreFactory(cfg.Redis, cache.WithLogger(log))
	idempotencyStore, err := storeFactory.CreateStore()
	if err != nil {
		log.Fatal("Failed to create idempotency store", zap.Error(err))
	}

	// Package received -> notify residents of the destination unit
	encomendaReceivedHandler := frontdeskapp.NewEncomendaReceivedHandler(log)
	eventBus.Subscribe(event.NewIdempotentHandler(encomendaReceivedHandler, idempotencyStore, log))

	// Occurrence opened -> alert the sindico for triage
	ocorrenciaOpenedHandler := ticketapp.NewOcorrenciaOpenedHandler(log)
	eventBus.Subscribe(event.NewIdempotentHandler(ocorrenciaOpenedHandler, idempotencyStore, log))

	log.Info("Event handlers registered",
		zap.Strings("encomenda_received_events", encomendaReceivedHandler.EventTypes()),
		zap.Strings("ocorrencia_opened_events", ocorrenciaOpenedHandler.EventTypes()),
	)

	// Start event bus
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Initialize and start outbox processor for guaranteed event delivery
	// The outbox processor reads events from the outbox_events table and publishes them to the event bus
	outboxProcessorConfig := event.DefaultOutboxProcessorConfig()
	outboxProcessor := event.NewOutboxProcessor(outboxRepo, eventBus, eventSerializer, outboxProcessorConfig, log)
	if err := outboxProcessor.Start(context.Background()); err != nil {
		log.Fatal("Failed to start outbox processor", zap.Error(err))
	}
	defer func() {
		if err := outboxProcessor.Stop(context.Background()); err != nil {
			log.Error("Error stopping outbox processor", zap.Error(err))
		}
	}()
	log.Info("Outbox processor started",
		zap.Int("batch_size", outboxProcessorConfig.BatchSize),
		zap.Duration("poll_interval", outboxProcessorConfig.PollInterval),
	)

	// Inject event bus into services that publish events
	boletoService.SetEventPublisher(eventBus)
	acordoService.SetEventPublisher(eventBus)
	reservaService.SetEventPublisher(eventBus)
	visitaService.SetEventPublisher(eventBus)
	encomendaService.SetEventPublisher(eventBus)
	ocorrenciaService.SetEventPublisher(eventBus)
	avisoService.SetEventPublisher(eventBus)
	enqueteService.SetEventPublisher(eventBus)
	userService.SetEventPublisher(eventBus)

	// Initialize daily maintenance scheduler (overdue sweep, package reminders)
	if cfg.Scheduler.Enabled {
		schedulerConfig := scheduler.DefaultDailyCronSchedulerConfig()
		schedulerConfig.Enabled = cfg.Scheduler.Enabled
		schedulerConfig.MaxConcurrentJobs = cfg.Scheduler.MaxConcurrentJobs
		schedulerConfig.JobTimeout = cfg.Scheduler.JobTimeout
		schedulerConfig.RetryAttempts = cfg.Scheduler.RetryAttempts
		schedulerConfig.RetryDelay = cfg.Scheduler.RetryDelay
		if cfg.Scheduler.DailyCronSchedule != "" {
			hour, minute, err := scheduler.ParseCronSchedule(cfg.Scheduler.DailyCronSchedule)
			if err != nil {
				log.Fatal("Invalid daily cron schedule", zap.String("schedule", cfg.Scheduler.DailyCronSchedule), zap.Error(err))
			}
			schedulerConfig.DailyCronSchedule = cfg.Scheduler.DailyCronSchedule
			schedulerConfig.CronHour = hour
			schedulerConfig.CronMinute = minute
		}

		jobExecutor := scheduler.NewDailyJobExecutor(boletoService, encomendaService, cfg.Billing.PackageReminderDays, log)
		schedulerJobRepo := scheduler.NewSchedulerJobRepository(db.DB)
		dailyScheduler := scheduler.NewDailyCronScheduler(schedulerConfig, jobExecutor, condominiumRepo, schedulerJobRepo, log)
		if err := dailyScheduler.Start(context.Background()); err != nil {
			log.Fatal("Failed to start daily scheduler", zap.Error(err))
		}
		defer func() {
			if err := dailyScheduler.Stop(context.Background()); err != nil {
				log.Error("Error stopping daily scheduler", zap.Error(err))
			}
		}()
		log.Info("Daily scheduler started",
			zap.Int("cron_hour", schedulerConfig.CronHour),
			zap.Int("cron_minute", schedulerConfig.CronMinute),
			zap.Duration("job_timeout", schedulerConfig.JobTimeout),
		)
	}

	// Initialize HTTP handlers
	condominiumHandler := handler.NewCondominiumHandler(condominiumService)
	boletoHandler := handler.NewBoletoHandler(boletoService)
	acordoHandler := handler.NewAcordoHandler(acordoService)
	espacoHandler := handler.NewEspacoHandler(espacoService)
	reservaHandler := handler.NewReservaHandler(reservaService)
	visitaHandler := handler.NewVisitaHandler(visitaService)
	encomendaHandler := handler.NewEncomendaHandler(encomendaService)
	ocorrenciaHandler := handler.NewOcorrenciaHandler(ocorrenciaService)
	avisoHandler := handler.NewAvisoHandler(avisoService)
	enqueteHandler := handler.NewEnqueteHandler(enqueteService)
	reportHandler := handler.NewReportHandler(reportService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	outboxHandler := handler.NewOutboxHandler(outboxService)

	// Residents may only act on behalf of units they own or rent
	reservaHandler.SetUnitResolver(condominiumService)
	visitaHandler.SetUnitResolver(condominiumService)
	enqueteHandler.SetUnitResolver(condominiumService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication middleware to API routes
	// Configure skip paths for public endpoints
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/ping",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Resolve the condominium scope: JWT claims first, X-Condominium-ID
	// header as fallback for tokens without one (platform admins). Not
	// required globally; handlers reject unscoped requests themselves.
	condoConfig := middleware.DefaultCondominiumConfig()
	condoConfig.Required = false
	condoConfig.Logger = log
	r.Use(middleware.CondominiumMiddlewareWithConfig(condoConfig))

	// Role groups used by route guards
	staff := middleware.RequireAnyRole(string(identity.RoleSindico), string(identity.RoleAdmin))
	frontdeskStaff := middleware.RequireAnyRole(string(identity.RolePorteiro), string(identity.RoleSindico), string(identity.RoleAdmin))
	adminOnly := middleware.RequireRole(string(identity.RoleAdmin))

	// Identity domain - public auth routes
	authRoutes := router.NewDomainGroup("auth", "/auth")
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		byClientIP := func(c *gin.Context) string { return c.ClientIP() }
		authRoutes.POST("/login", middleware.RateLimitByKey(authLimiter, byClientIP), authHandler.Login)
		authRoutes.POST("/refresh", middleware.RateLimitByKey(authLimiter, byClientIP), authHandler.RefreshToken)
	} else {
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/refresh", authHandler.RefreshToken)
	}
	// Auth routes requiring authentication
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.GetCurrentUser)
	authRoutes.PUT("/password", authHandler.ChangePassword)

	// User management routes
	userRoutes := router.NewDomainGroup("users", "/users")
	userRoutes.POST("", staff, userHandler.Register)
	userRoutes.GET("", staff, userHandler.List)
	userRoutes.GET("/:id", userHandler.Get)
	userRoutes.POST("/:id/activate", staff, userHandler.Activate)
	userRoutes.POST("/:id/deactivate", staff, userHandler.Deactivate)
	userRoutes.POST("/:id/roles", staff, userHandler.AssignRole)
	userRoutes.DELETE("/:id/roles", staff, userHandler.RemoveRole)
	userRoutes.PUT("/:id/unit", staff, userHandler.AssignUnit)
	userRoutes.PUT("/:id/password", staff, userHandler.ResetPassword)

	// Condominium domain (condominiums, unidades)
	condominiumRoutes := router.NewDomainGroup("condominium", "/condominiums")
	condominiumRoutes.POST("", adminOnly, condominiumHandler.Create)
	condominiumRoutes.GET("", adminOnly, condominiumHandler.List)
	condominiumRoutes.GET("/:id", condominiumHandler.Get)
	condominiumRoutes.PUT("/:id/contact", staff, condominiumHandler.UpdateContact)
	condominiumRoutes.PUT("/:id/settings", staff, condominiumHandler.UpdateSettings)
	condominiumRoutes.PUT("/:id/active", adminOnly, condominiumHandler.SetActive)

	unidadeRoutes := router.NewDomainGroup("unidades", "/unidades")
	unidadeRoutes.POST("", staff, condominiumHandler.CreateUnidade)
	unidadeRoutes.GET("", condominiumHandler.ListUnidades)
	unidadeRoutes.PUT("/:id/owner", staff, condominiumHandler.AssignOwner)
	unidadeRoutes.PUT("/:id/tenant", staff, condominiumHandler.AssignTenant)

	// Billing domain (boletos, acordos)
	boletoRoutes := router.NewDomainGroup("boletos", "/boletos")
	boletoRoutes.POST("", staff, boletoHandler.Create)
	boletoRoutes.GET("", boletoHandler.List)
	boletoRoutes.GET("/:id", boletoHandler.Get)
	boletoRoutes.POST("/:id/register", staff, boletoHandler.Register)
	boletoRoutes.POST("/:id/send", staff, boletoHandler.Send)
	boletoRoutes.POST("/:id/pay", staff, boletoHandler.Pay)
	boletoRoutes.POST("/:id/cancel", staff, boletoHandler.Cancel)
	boletoRoutes.POST("/mark-overdue", staff, boletoHandler.MarkOverdue)

	acordoRoutes := router.NewDomainGroup("acordos", "/acordos")
	acordoRoutes.POST("", staff, acordoHandler.Create)
	acordoRoutes.GET("", acordoHandler.ListByUnit)
	acordoRoutes.GET("/:id", acordoHandler.Get)
	acordoRoutes.POST("/:id/parcelas/:seq/boleto", staff, acordoHandler.IssueParcela)
	acordoRoutes.POST("/:id/parcelas/:seq/pay", staff, acordoHandler.PayParcela)
	acordoRoutes.POST("/:id/cancel", staff, acordoHandler.Cancel)

	// Reservation domain (espacos, reservas)
	espacoRoutes := router.NewDomainGroup("espacos", "/espacos")
	espacoRoutes.POST("", staff, espacoHandler.Create)
	espacoRoutes.GET("", espacoHandler.List)
	espacoRoutes.GET("/:id", espacoHandler.Get)
	espacoRoutes.PUT("/:id/rules", staff, espacoHandler.ConfigureRules)
	espacoRoutes.PUT("/:id/active", staff, espacoHandler.SetActive)

	reservaRoutes := router.NewDomainGroup("reservas", "/reservas")
	reservaRoutes.POST("", reservaHandler.Request)
	reservaRoutes.GET("", reservaHandler.List)
	reservaRoutes.GET("/:id", reservaHandler.Get)
	reservaRoutes.POST("/:id/approve", staff, reservaHandler.Approve)
	reservaRoutes.POST("/:id/reject", staff, reservaHandler.Reject)
	reservaRoutes.POST("/:id/cancel", reservaHandler.Cancel)
	reservaRoutes.POST("/:id/admin-cancel", staff, reservaHandler.CancelByAdmin)

	// Front desk domain (visitas, encomendas)
	visitaRoutes := router.NewDomainGroup("visitas", "/visitas")
	visitaRoutes.POST("/expect", visitaHandler.Expect)
	visitaRoutes.POST("/walk-in", frontdeskStaff, visitaHandler.WalkIn)
	visitaRoutes.GET("", visitaHandler.List)
	visitaRoutes.GET("/:id", visitaHandler.Get)
	visitaRoutes.POST("/:id/check-in", frontdeskStaff, visitaHandler.CheckIn)
	visitaRoutes.POST("/:id/check-out", frontdeskStaff, visitaHandler.CheckOut)
	visitaRoutes.POST("/:id/cancel", visitaHandler.Cancel)

	encomendaRoutes := router.NewDomainGroup("encomendas", "/encomendas")
	encomendaRoutes.POST("", frontdeskStaff, encomendaHandler.Receive)
	encomendaRoutes.GET("", encomendaHandler.List)
	encomendaRoutes.GET("/pending", frontdeskStaff, encomendaHandler.ListPendingPickup)
	encomendaRoutes.GET("/:id", encomendaHandler.Get)
	encomendaRoutes.POST("/:id/deliver", frontdeskStaff, encomendaHandler.Deliver)
	encomendaRoutes.POST("/:id/return", frontdeskStaff, encomendaHandler.Return)

	// Ticket domain (ocorrencias)
	ocorrenciaRoutes := router.NewDomainGroup("ocorrencias", "/ocorrencias")
	ocorrenciaRoutes.POST("", ocorrenciaHandler.Open)
	ocorrenciaRoutes.GET("", ocorrenciaHandler.List)
	ocorrenciaRoutes.GET("/summary", staff, ocorrenciaHandler.StatusSummary)
	ocorrenciaRoutes.GET("/:id", ocorrenciaHandler.Get)
	ocorrenciaRoutes.POST("/:id/assign", staff, ocorrenciaHandler.Assign)
	ocorrenciaRoutes.POST("/:id/resolve", staff, ocorrenciaHandler.Resolve)
	ocorrenciaRoutes.POST("/:id/close", staff, ocorrenciaHandler.Close)
	ocorrenciaRoutes.POST("/:id/reopen", ocorrenciaHandler.Reopen)
	ocorrenciaRoutes.POST("/:id/comments", ocorrenciaHandler.AddComment)

	// Communication domain (avisos, enquetes)
	avisoRoutes := router.NewDomainGroup("avisos", "/avisos")
	avisoRoutes.POST("", staff, avisoHandler.Create)
	avisoRoutes.GET("", avisoHandler.List)
	avisoRoutes.GET("/:id", avisoHandler.Get)
	avisoRoutes.POST("/:id/publish", staff, avisoHandler.Publish)
	avisoRoutes.POST("/:id/archive", staff, avisoHandler.Archive)

	enqueteRoutes := router.NewDomainGroup("enquetes", "/enquetes")
	enqueteRoutes.POST("", staff, enqueteHandler.Create)
	enqueteRoutes.GET("", enqueteHandler.List)
	enqueteRoutes.GET("/:id", enqueteHandler.Get)
	enqueteRoutes.POST("/:id/votes", enqueteHandler.CastVote)
	enqueteRoutes.POST("/:id/close", staff, enqueteHandler.Close)

	// Report domain
	reportRoutes := router.NewDomainGroup("reports", "/reports")
	reportRoutes.GET("/billing-summary", staff, reportHandler.BillingSummary)
	reportRoutes.GET("/delinquency", staff, reportHandler.Delinquency)
	reportRoutes.GET("/reservation-usage", staff, reportHandler.ReservationUsage)
	reportRoutes.GET("/ticket-summary", staff, reportHandler.TicketSummary)

	// System routes (health, outbox administration)
	systemHandler := handler.NewSystemHandler()
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/outbox/dead", adminOnly, outboxHandler.GetDeadLetterEntries)
	systemRoutes.GET("/outbox/stats", adminOnly, outboxHandler.GetStats)
	systemRoutes.GET("/outbox/:id", adminOnly, outboxHandler.GetEntry)
	systemRoutes.POST("/outbox/:id/retry", adminOnly, outboxHandler.RetryDeadEntry)
	systemRoutes.POST("/outbox/dead/retry-all", adminOnly, outboxHandler.RetryAllDeadEntries)

	// Register all domain groups
	r.Register(authRoutes).
		Register(userRoutes).
		Register(condominiumRoutes).
		Register(unidadeRoutes).
		Register(boletoRoutes).
		Register(acordoRoutes).
		Register(espacoRoutes).
		Register(reservaRoutes).
		Register(visitaRoutes).
		Register(encomendaRoutes).
		Register(ocorrenciaRoutes).
		Register(avisoRoutes).
		Register(enqueteRoutes).
		Register(reportRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// newTokenBlacklist prefers the Redis blacklist so revocations survive restarts
// and are shared across instances; it falls back to the in-memory one when
// Redis is not reachable.
func newTokenBlacklist(cfg *config.Config, log *zap.Logger) auth.TokenBlacklist {
	blacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		return auth.NewInMemoryTokenBlacklist()
	}
	log.Info("Using Redis token blacklist")
	return blacklist
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
