package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/localmaps-api/internal/classifier"
	"github.com/prperemyshlev/localmaps-api/internal/config"
	"github.com/prperemyshlev/localmaps-api/internal/gemini"
	"github.com/prperemyshlev/localmaps-api/internal/handler"
	"github.com/prperemyshlev/localmaps-api/internal/places"
	"github.com/prperemyshlev/localmaps-api/internal/repository"
	"github.com/prperemyshlev/localmaps-api/internal/service"
	"github.com/prperemyshlev/localmaps-api/internal/utils"
	"github.com/prperemyshlev/localmaps-api/pkg/observability"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Clients lets callers replace the outbound HTTP clients, e.g. with test servers
type Clients struct {
	Places *http.Client
	Gemini *http.Client
}

type App struct {
	infra  Infrastructure
	config *config.Config
	router *gin.Engine
	server *http.Server
}

func NewApp(ctx context.Context, infra Infrastructure, cfg *config.Config, clients Clients) (*App, error) {
	logger := infra.Logger()

	if err := utils.RegisterValidations(); err != nil {
		return nil, fmt.Errorf("failed to register validations: %w", err)
	}

	for _, key := range cfg.MissingAPIKeys() {
		logger.Warn("API key is not configured; dependent endpoints will fail", zap.String("variable", key))
	}

	hasher, err := utils.NewPasswordHasher(cfg.Security.PasswordHasher, cfg.Security.BCryptCost)
	if err != nil {
		return nil, err
	}
	if cfg.Security.PasswordHasher == config.HasherSHA256 {
		logger.Warn("Passwords are stored as unsalted SHA-256 digests; set SECURITY_PASSWORD_HASHER=bcrypt for new deployments")
	}

	repos := repository.NewRepositories(infra.Postgres())

	placesClient := places.NewClient(places.Config{
		APIKey:        cfg.Google.MapsAPIKey,
		TextSearchURL: cfg.Google.TextSearchURL,
		DetailsURL:    cfg.Google.PlaceDetailsURL,
		Radius:        cfg.Google.SearchRadius,
		Timeout:       cfg.Google.Timeout.Duration,
		HTTPClient:    clients.Places,
	})

	geminiClient, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:     cfg.Gemini.APIKey,
		Endpoint:   cfg.Gemini.Endpoint,
		Model:      cfg.Gemini.Model,
		Timeout:    cfg.Gemini.Timeout.Duration,
		HTTPClient: clients.Gemini,
	})
	if err != nil {
		return nil, err
	}

	var detailsCache service.PlaceDetailsCache
	if ttl := cfg.Cache.PlaceDetailsTTL.Duration; ttl > 0 {
		detailsCache = service.NewRedisPlaceDetailsCache(infra.Redis(), ttl)
	}

	credentials := service.NewCredentialStore(repos.User, repos.Session, hasher, cfg.Session.TTL.Duration)
	authService := service.NewAuthService(credentials, logger)
	favoritesService := service.NewFavoritesService(repos.Favorite)
	searchService := service.NewSearchService(
		placesClient,
		classifier.New(geminiClient, logger),
		detailsCache,
		logger,
	)

	healthChecker := NewHealthChecker(infra.Postgres(), infra.Redis(), cfg, logger)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(serviceName))
	router.Use(handler.LoggerMiddleware(logger))
	router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.CORS.AllowedMethods, cfg.CORS.AllowedHeaders))

	setupRoutes(
		router,
		handler.NewAuthHandler(authService),
		handler.NewFavoritesHandler(favoritesService, logger),
		handler.NewSearchHandler(searchService),
		authService,
		healthChecker,
		infra.MetricsHandler(),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	return &App{
		infra:  infra,
		config: cfg,
		router: router,
		server: srv,
	}, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func setupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	favoritesHandler *handler.FavoritesHandler,
	searchHandler *handler.SearchHandler,
	authService service.AuthService,
	healthChecker *HealthChecker,
	metricsHandler http.Handler,
) {
	router.GET("/", handler.Info)
	router.GET("/metrics", observability.PrometheusHandler(metricsHandler))

	api := router.Group("/api")
	{
		api.GET("/health", healthChecker.Handler)
		api.POST("/search", searchHandler.Search)
		api.GET("/place/:placeId", searchHandler.PlaceDetails)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", handler.AuthMiddleware(authService), authHandler.GetMe)

			favorites := auth.Group("/favorites")
			{
				favorites.GET("/check/:placeId", handler.OptionalAuthMiddleware(authService), favoritesHandler.Check)

				protected := favorites.Group("", handler.AuthMiddleware(authService))
				protected.POST("", favoritesHandler.Add)
				protected.GET("", favoritesHandler.List)
				protected.DELETE("/:placeId", favoritesHandler.Remove)
			}
		}
	}
}

func (a *App) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		a.infra.Logger().Info("Application starting",
			zap.String("host", a.config.Server.Host),
			zap.String("port", a.config.Server.Port),
		)

		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.infra.Logger().Error("Server error", zap.Error(err))
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case err := <-errChan:
		a.infra.Logger().Error("Application failed to start", zap.Error(err))
		serverErr = err
	case <-ctx.Done():
		a.infra.Logger().Info("Application stopped by context")
	}

	if err := a.Shutdown(); err != nil {
		if serverErr != nil {
			return errors.Join(serverErr, err)
		}
		return err
	}

	return serverErr
}

func (a *App) Shutdown() error {
	a.infra.Logger().Info("Application shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.infra.Logger().Error("HTTP server shutdown failed", zap.Error(err))
		return errors.Join(err, a.infra.Shutdown(ctx))
	}

	a.infra.Logger().Info("Application exited successfully")
	return a.infra.Shutdown(ctx)
}
