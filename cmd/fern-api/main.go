package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gobusters/ectoenv"
	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectoinject/ectocontainer"
	"github.com/Gobusters/ectologger"
	"github.com/Gobusters/ectologger/zapadapter"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.uber.org/zap"

	"github.com/Ramsey-B/fern/config"
	boosttierrepo "github.com/Ramsey-B/fern/internal/repositories/boosttier"
	"github.com/Ramsey-B/fern/internal/repositories/savedsearch"
	boosttiersvc "github.com/Ramsey-B/fern/internal/services/boosttier"
	offersvc "github.com/Ramsey-B/fern/internal/services/offer"
	"github.com/Ramsey-B/fern/pkg/database"
	"github.com/Ramsey-B/fern/pkg/events"
	"github.com/Ramsey-B/fern/pkg/middleware"
	"github.com/Ramsey-B/fern/pkg/redis"
	"github.com/Ramsey-B/fern/pkg/routes/boosttiers"
	"github.com/Ramsey-B/fern/pkg/routes/health"
	"github.com/Ramsey-B/fern/pkg/routes/offers"
	"github.com/Ramsey-B/fern/pkg/routes/redirect"
	"github.com/Ramsey-B/fern/pkg/routes/searches"
	"github.com/Ramsey-B/fern/pkg/search"
	"github.com/Ramsey-B/fern/pkg/startup"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

const version = "1.0.0"

func main() {
	_ = godotenv.Load()

	var cfg config.Config
	if err := ectoenv.BindEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Error("fern-api exited with error")
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) (ectologger.Logger, error) {
	var zapLogger *zap.Logger
	var err error
	if cfg.PrettyLogs {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return zapadapter.NewZapEctoLogger(zapLogger, nil), nil
}

func run(cfg config.Config, logger ectologger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		ServiceName: cfg.AppName,
		Endpoint:    cfg.TracingEndpoint,
		Insecure:    cfg.TracingInsecure,
	})
	if err != nil {
		return fmt.Errorf("failed to init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// Postgres
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DatabaseHost, cfg.DatabasePort, cfg.DatabaseUserName, cfg.DatabasePassword, cfg.DatabaseName, cfg.DatabaseSSLMode,
	)
	sqlxDB, err := sqlx.Connect(cfg.DatabaseDriver, dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlxDB.SetMaxOpenConns(cfg.DatabaseMaxOpenConns)
	sqlxDB.SetMaxIdleConns(cfg.DatabaseMaxIdleConns)
	sqlxDB.SetConnMaxLifetime(cfg.DatabaseConnMaxLifetime)
	db := database.NewDatabaseInstance(sqlxDB, logger)
	defer db.Close()

	driver, err := migratepg.WithInstance(sqlxDB.DB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}
	migrations := database.NewMigrationService(logger, &database.MigrationConfig{
		MigrationFolderPath: cfg.DatabaseMigrationFolderPath,
	})
	if err := migrations.Migrate(cfg.DatabaseName, driver); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Search backend, optionally cached through Redis
	var searcher search.Searcher = search.NewClient(search.ClientConfig{
		Endpoint: cfg.SearchEndpoint,
		APIKey:   cfg.SearchAPIKey,
		Timeout:  cfg.SearchTimeout,
	}, logger)

	var redisClient *redis.Client
	if cfg.RedisHost != "" {
		redisClient, err = redis.NewClient(redis.Config{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, logger)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer redisClient.Close()
		searcher = search.NewCachedSearcher(searcher, redisClient, cfg.SearchCacheTTL, logger)
	} else {
		logger.Warn("redis not configured, search responses are not cached")
	}

	// Click events
	emitter, err := events.NewEmitter(events.EmitterConfig{
		Brokers:      cfg.KafkaBrokers,
		Topic:        cfg.KafkaClickTopic,
		BatchSize:    cfg.KafkaBatchSize,
		BatchTimeout: time.Duration(cfg.KafkaBatchTimeout) * time.Millisecond,
		RequiredAcks: cfg.KafkaRequiredAcks,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create click emitter: %w", err)
	}
	defer emitter.Close()

	// Services
	tierRepo := boosttierrepo.NewRepository(db, logger)
	tierService := boosttiersvc.NewService(tierRepo, logger)
	if err := tierService.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to load boost tiers: %w", err)
	}
	tierService.StartRefresh(ctx, cfg.BoostTierRefreshInterval)

	searchStore := savedsearch.NewRepository(db, logger)
	offerService := offersvc.NewService(searcher, tierService, logger)

	container, err := ectoinject.NewDIDefaultContainer()
	if err != nil {
		return fmt.Errorf("failed to create DI container: %w", err)
	}
	if err := ectoinject.RegisterInstance[offers.OfferService](container, offerService); err != nil {
		return err
	}
	if err := ectoinject.RegisterInstance[boosttiers.BoostTierService](container, tierService); err != nil {
		return err
	}
	if err := ectoinject.RegisterInstance[savedsearch.Store](container, searchStore); err != nil {
		return err
	}
	if err := ectoinject.RegisterInstance[redirect.ClickEmitter](container, emitter); err != nil {
		return err
	}
	if err := ectoinject.RegisterInstance[*redirect.Options](container, &redirect.Options{
		DefaultLandingURL: cfg.AffiliateDefaultLandingURL,
	}); err != nil {
		return err
	}

	e := newServer(cfg, logger, container)

	var redisPinger interface{ Ping(ctx context.Context) error }
	if redisClient != nil {
		redisPinger = redisClient
	}
	checker := health.NewChecker(db, redisPinger, version)
	checker.RegisterRoutes(e)

	boot := startup.NewStartup(logger, cfg.StartupMaxAttempts)
	boot.AddDependency(&httpServer{e: e, port: cfg.Port, logger: logger, checker: checker})

	if err := boot.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	logger.Info("shutdown signal received")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return boot.Stop(stopCtx)
}

func newServer(cfg config.Config, logger ectologger.Logger, container ectocontainer.DIContainer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.Error(logger)

	e.Use(otelecho.Middleware(cfg.AppName))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: cfg.AllowMethods,
	}))
	e.Use(middleware.Context())
	e.Use(middleware.Logger(logger))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, err := ectoinject.SetActiveContainer(c.Request().Context(), container.GetContainerID())
			if err != nil {
				return err
			}
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	api := e.Group("/api/v1")
	api.GET("/offers", offers.ListOffers)
	api.POST("/offers/breakdown", offers.BreakdownOffer)
	api.GET("/boost-tiers", boosttiers.ListTiers)
	api.GET("/boost-tiers/:id", boosttiers.GetTier)
	api.PUT("/boost-tiers/:id", boosttiers.UpsertTier)
	api.POST("/searches", searches.CreateSearch)
	api.GET("/searches", searches.ListSearches)
	api.GET("/searches/:id", searches.GetSearch)
	api.DELETE("/searches/:id", searches.DeleteSearch)

	e.GET("/r/w", redirect.Wildfire)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

// httpServer adapts echo to the startup dependency lifecycle.
type httpServer struct {
	e       *echo.Echo
	port    int
	logger  ectologger.Logger
	checker *health.Checker
}

func (s *httpServer) GetName() string     { return "http-server" }
func (s *httpServer) DependsOn() []string { return nil }

func (s *httpServer) Start(_ context.Context) error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Infof("fern-api listening on %s", addr)
		if err := s.e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.WithError(err).Error("http server stopped unexpectedly")
		}
	}()
	s.checker.SetReady(true)
	return nil
}

func (s *httpServer) Stop(ctx context.Context) error {
	s.checker.SetReady(false)
	return s.e.Shutdown(ctx)
}
