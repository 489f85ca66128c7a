package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "quickgigs/docs"
	"quickgigs/internal/adapter/http/handlers"
	"quickgigs/internal/adapter/http/middleware"
	"quickgigs/internal/infrastructure/auth"
	"quickgigs/internal/infrastructure/config"
	"quickgigs/internal/infrastructure/jobs"
	"quickgigs/internal/infrastructure/metrics"
	"quickgigs/internal/infrastructure/payments"
	"quickgigs/internal/infrastructure/ratelimit"
	"quickgigs/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Dependencies is everything the HTTP surface needs.
type Dependencies struct {
	Gigs           *handlers.GigHandler
	Applications   *handlers.ApplicationHandler
	Payments       *handlers.PaymentHandler
	Tokens         middleware.TokenValidator
	Callbacks      middleware.CallbackValidator
	Limiter        ratelimit.Limiter
	Metrics        *metrics.Metrics
	AllowedOrigins []string
}

// Run will start the server and block until SIGINT or SIGTERM.
func Run(cfg *config.Config) error {
	ctx := context.Background()

	st, err := openStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			log.WithError(err).Warn("[routes] closing store")
		}
	}()

	gateway, err := payments.NewGateway(cfg.Gateway)
	if err != nil {
		return err
	}
	log.WithField("provider", gateway.Provider()).Info("[routes] payment gateway configured")

	limiter, closeLimiter, err := ratelimit.New(cfg.RateLimit.RedisURL, cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	if err != nil {
		return err
	}
	defer func() { _ = closeLimiter() }()

	m := metrics.New()
	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, 0)

	gigUseCase := usecase.NewGigUseCase(st.gigs)
	applicationUseCase := usecase.NewApplicationUseCase(st.applications, st.gigs)
	featuringUseCase := usecase.NewFeaturingUseCase(st.gigs, st.payments, st.events, gateway, tokens, usecase.FeaturingConfig{
		Price:          cfg.Featuring.Price,
		Currency:       cfg.Featuring.Currency,
		ProductName:    cfg.Featuring.ProductName,
		SessionTTL:     cfg.Featuring.SessionTTL,
		GatewayTimeout: cfg.Gateway.Timeout,
		PublicBaseURL:  cfg.Server.PublicBaseURL,
	}, m)

	sweeper := jobs.NewReconcileSweeper(featuringUseCase, cfg.Jobs.SweepSchedule)
	if err := sweeper.Start(); err != nil {
		return err
	}
	defer sweeper.Stop()

	router := NewRouter(Dependencies{
		Gigs:           handlers.NewGigHandler(gigUseCase),
		Applications:   handlers.NewApplicationHandler(applicationUseCase),
		Payments:       handlers.NewPaymentHandler(featuringUseCase),
		Tokens:         tokens,
		Callbacks:      tokens,
		Limiter:        limiter,
		Metrics:        m,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Server.Port).Info("[routes] server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Info("[routes] shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine with middlewares and all /v1 routes.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	requireAuth := middleware.RequireAuth(deps.Tokens)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addGigRoutes(v1, deps, requireAuth)
	addApplicationRoutes(v1, deps, requireAuth)
	addPaymentRoutes(v1, deps, requireAuth)
	return router
}

func setMiddlewares(router *gin.Engine, deps Dependencies) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("panic", recovered).Error("[routes] recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	if len(deps.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     deps.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
	}
}
