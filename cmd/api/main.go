package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"daily-news/internal/common/pagination"
	"daily-news/internal/config"
	"daily-news/internal/infra/adapter/persistence/memory"
	mongoRepo "daily-news/internal/infra/adapter/persistence/mongodb"
	pgRepo "daily-news/internal/infra/adapter/persistence/postgres"
	"daily-news/internal/infra/db"
	"daily-news/internal/observability/logging"
	"daily-news/internal/observability/tracing"
	"daily-news/internal/repository"
	"daily-news/internal/resilience/circuitbreaker"

	artUC "daily-news/internal/usecase/article"
	pubUC "daily-news/internal/usecase/publisher"
	tstUC "daily-news/internal/usecase/testimonial"
	userUC "daily-news/internal/usecase/user"

	hhttp "daily-news/internal/handler/http"
	harticle "daily-news/internal/handler/http/article"
	hauth "daily-news/internal/handler/http/auth"
	"daily-news/internal/handler/http/middleware"
	hpublisher "daily-news/internal/handler/http/publisher"
	"daily-news/internal/handler/http/requestid"
	htestimonial "daily-news/internal/handler/http/testimonial"
	huser "daily-news/internal/handler/http/user"
	authservice "daily-news/internal/service/auth"

	_ "daily-news/docs" // swagger docs
)

// @title           Daily News API
// @version         1.0
// @description     ニュース記事・ユーザー・出版社・推薦文を管理する REST API
// @description     記事の投稿と承認、トレンド記事、プレミアム会員の管理を提供します。

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT トークンによる認証。ヘッダーに "Bearer {token}" 形式で指定するか、token クッキーを送信してください。

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg)

	shutdownTracing, err := tracing.Setup("daily-news", cfg.Server.Version)
	if err != nil {
		logger.Error("failed to set up tracing", slog.Any("error", err))
		os.Exit(1)
	}

	store, err := openStore(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to open store",
			slog.String("driver", cfg.Store.Driver),
			slog.Any("error", err))
		os.Exit(1)
	}

	components, err := setupServer(logger, cfg, store)
	if err != nil {
		logger.Error("failed to set up server", slog.Any("error", err))
		store.close(context.Background())
		os.Exit(1)
	}

	runServer(logger, cfg, components)

	closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	store.close(closeCtx)
	if err := shutdownTracing(closeCtx); err != nil {
		logger.Warn("tracer shutdown failed", slog.Any("error", err))
	}
}

// initLogger builds the process logger from configuration and makes it the default.
func initLogger(cfg *config.Config) *slog.Logger {
	logger := logging.NewLogger(cfg.Log.Level, cfg.Log.Format).With(
		slog.String("service", "daily-news"),
		slog.String("env", cfg.Server.Env),
	)
	slog.SetDefault(logger)
	return logger
}

// storeHandle bundles the repositories of one driver with its health check and closer.
type storeHandle struct {
	driver       string
	articles     repository.ArticleRepository
	users        repository.UserRepository
	publishers   repository.PublisherRepository
	testimonials repository.TestimonialRepository
	pinger       hhttp.Pinger
	close        func(ctx context.Context)
}

// openStore connects the configured driver and prepares its schema or indexes.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*storeHandle, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		m, err := db.ConnectMongo(ctx, db.MongoConfig{
			URI:            cfg.Store.MongoURI,
			Database:       cfg.Store.MongoDatabase,
			ConnectTimeout: 10 * time.Second,
		})
		if err != nil {
			return nil, err
		}
		if err := db.EnsureIndexes(ctx, m.DB); err != nil {
			_ = m.Close(ctx)
			return nil, err
		}
		logger.Info("connected to document store", slog.String("database", cfg.Store.MongoDatabase))
		return &storeHandle{
			driver:       config.DriverMongo,
			articles:     mongoRepo.NewArticleRepo(m.DB),
			users:        mongoRepo.NewUserRepo(m.DB),
			publishers:   mongoRepo.NewPublisherRepo(m.DB),
			testimonials: mongoRepo.NewTestimonialRepo(m.DB),
			pinger:       m,
			close: func(ctx context.Context) {
				if err := m.Close(ctx); err != nil {
					logger.Error("failed to disconnect document store", slog.Any("error", err))
				}
			},
		}, nil

	case config.DriverPostgres:
		sqlDB, err := db.OpenPostgres(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.MigratePostgres(ctx, sqlDB); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		return &storeHandle{
			driver:       config.DriverPostgres,
			articles:     pgRepo.NewArticleRepo(sqlDB),
			users:        pgRepo.NewUserRepo(sqlDB),
			publishers:   pgRepo.NewPublisherRepo(sqlDB),
			testimonials: pgRepo.NewTestimonialRepo(sqlDB),
			pinger:       hhttp.PingFunc(sqlDB.PingContext),
			close: func(context.Context) {
				if err := sqlDB.Close(); err != nil {
					logger.Error("failed to close database", slog.Any("error", err))
				}
			},
		}, nil

	case config.DriverMemory:
		logger.Warn("using in-memory store; data is lost on restart")
		mem := memory.NewStore()
		return &storeHandle{
			driver:       config.DriverMemory,
			articles:     mem.Articles(),
			users:        mem.Users(),
			publishers:   mem.Publishers(),
			testimonials: mem.Testimonials(),
			pinger:       mem,
			close:        func(context.Context) {},
		}, nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
}

// ServerComponents holds components needed for server operation and cleanup.
type ServerComponents struct {
	Handler      http.Handler
	TokenLimiter *middleware.IPRateLimiter
}

// setupServer builds services, routes and the middleware chain.
func setupServer(logger *slog.Logger, cfg *config.Config, store *storeHandle) (*ServerComponents, error) {
	guard := circuitbreaker.NewStoreGuard(circuitbreaker.StoreConfig(), cfg.Store.Timeout, repository.ErrDuplicateKey)

	artSvc := &artUC.Service{Repo: store.articles, Guard: guard, TrendingLimit: cfg.Articles.TrendingLimit}
	userSvc := &userUC.Service{Repo: store.users, Guard: guard}
	pubSvc := &pubUC.Service{Repo: store.publishers, Guard: guard}
	tstSvc := &tstUC.Service{Repo: store.testimonials, Guard: guard}

	tokens, err := authservice.NewTokenService(cfg.Auth.JWTSecret)
	if err != nil {
		return nil, err
	}

	proxies, err := middleware.ParseTrustedProxies(cfg.Server.TrustedProxies)
	if err != nil {
		return nil, err
	}
	var ipExtractor middleware.IPExtractor = middleware.RemoteAddrExtractor{}
	if len(proxies) > 0 {
		ipExtractor = middleware.TrustedProxyExtractor{Trusted: proxies}
		logger.Info("rate limiting: trusted proxy mode enabled",
			slog.Int("trusted_proxies_count", len(proxies)))
	}

	tokenLimiter := middleware.NewIPRateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.TokenRPS,
		Burst:             cfg.RateLimit.TokenBurst,
		IdleTTL:           10 * time.Minute,
		Scope:             "token",
	}, ipExtractor)

	mux := setupRoutes(cfg, store, guard, tokens, tokenLimiter, routeServices{
		articles:     artSvc,
		users:        userSvc,
		publishers:   pubSvc,
		testimonials: tstSvc,
	})

	logger.Info("CORS enabled", slog.Any("allowed_origins", cfg.CORS.AllowedOrigins))

	return &ServerComponents{
		Handler:      applyMiddleware(logger, cfg, mux),
		TokenLimiter: tokenLimiter,
	}, nil
}

type routeServices struct {
	articles     *artUC.Service
	users        *userUC.Service
	publishers   *pubUC.Service
	testimonials *tstUC.Service
}

// setupRoutes registers all HTTP routes (public and protected).
func setupRoutes(
	cfg *config.Config,
	store *storeHandle,
	guard *circuitbreaker.StoreGuard,
	tokens *authservice.TokenService,
	tokenLimiter *middleware.IPRateLimiter,
	svc routeServices,
) *http.ServeMux {
	authenticated := hauth.RequireAuthenticated(tokens)
	admin := hauth.RequireAdmin(svc.users, guard)
	adminOnly := func(h http.Handler) http.Handler { return authenticated(admin(h)) }

	mux := http.NewServeMux()

	mux.Handle("GET /{$}", hhttp.BannerHandler())
	mux.Handle("POST /jwt", tokenLimiter.Middleware(hauth.TokenHandler{
		Issuer:     tokens,
		AccessTTL:  cfg.Auth.AccessTTL,
		SessionTTL: cfg.Auth.SessionTTL,
		Production: cfg.IsProduction(),
	}))

	// ヘルスチェックエンドポイント（認証不要）
	mux.Handle("GET /health", &hhttp.HealthHandler{
		Store:   store.pinger,
		Driver:  store.driver,
		Breaker: guard,
		Version: cfg.Server.Version,
	})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Store: store.pinger})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	// Swagger UI（認証不要）
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	articlePages := pagination.DefaultConfig()
	articlePages.DefaultLimit = cfg.Pagination.DefaultLimit
	articlePages.MaxLimit = cfg.Pagination.MaxLimit

	userPages := pagination.UsersConfig().WithDefaultLimit(cfg.Pagination.UsersDefaultLimit)
	userPages.MaxLimit = cfg.Pagination.MaxLimit

	harticle.Register(mux, svc.articles, articlePages, guard, adminOnly)
	huser.Register(mux, svc.users, userPages, guard, huser.Guards{
		Authenticated: authenticated,
		Admin:         admin,
	})
	hpublisher.Register(mux, svc.publishers, guard, adminOnly)
	htestimonial.Register(mux, svc.testimonials, guard)

	return mux
}

// applyMiddleware wraps the handler with the middleware chain, outermost first:
// Recover → Request ID → Tracing → Logging → Metrics → CORS → Security headers → Input validation → Body limit.
func applyMiddleware(logger *slog.Logger, cfg *config.Config, handler http.Handler) http.Handler {
	corsConfig := middleware.DefaultCORSConfig(cfg.CORS.AllowedOrigins)
	corsConfig.Logger = logger

	return hhttp.Chain(handler,
		hhttp.Recover(logger),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.MetricsMiddleware,
		middleware.CORS(corsConfig),
		middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig()),
		hhttp.InputValidation(),
		hhttp.LimitRequestBody(hhttp.MaxRequestBodyBytes),
	)
}

// runServer starts the HTTP server and blocks until SIGINT/SIGTERM, then drains it.
func runServer(logger *slog.Logger, cfg *config.Config, components *ServerComponents) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	components.TokenLimiter.StartCleanup(ctx, time.Minute)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           components.Handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("version", cfg.Server.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
