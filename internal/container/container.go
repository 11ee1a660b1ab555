package container

import (
	"context"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/serroba/templink/internal/handlers"
	"github.com/serroba/templink/internal/health"
	"github.com/serroba/templink/internal/middleware"
	"github.com/serroba/templink/internal/shortener"
	"github.com/serroba/templink/internal/store"
	"go.uber.org/zap"
)

// connectTimeout bounds the startup connectivity check of the store.
const connectTimeout = 5 * time.Second

type Options struct {
	Port         int    `default:"8888"           help:"Port to listen on"                              short:"p"`
	BaseURL      string `help:"Base URL for short links; defaults to http://localhost:<port>"`
	RedisAddr    string `default:"localhost:6379" help:"Redis server address"                           short:"r"`
	PostgresDSN  string `help:"PostgreSQL DSN; used instead of Redis when set"`
	TTL          int    `default:"600"            help:"Mapping lifetime in seconds"`
	CodeBytes    int    `default:"8"              help:"Random bytes per short code"                    short:"c"`
	MaxAttempts  int    `default:"10"             help:"Collision retries before giving up"`
	MaxURLLength int    `default:"2048"           help:"Longest accepted URL in bytes"`
	LogFormat    string `default:"console"        help:"Log format: console or json"`
}

// LoggerPackage provides the application logger.
func LoggerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*zap.Logger, error) {
		opts := do.MustInvoke[*Options](i)

		if opts.LogFormat == "json" {
			return zap.NewProduction()
		}

		return zap.NewDevelopment()
	})
}

// RedisPackage provides the Redis client. The client is managed
// externally to the components that use it and lives for the process.
func RedisPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*redis.Client, error) {
		opts := do.MustInvoke[*Options](i)

		return redis.NewClient(&redis.Options{
			Addr: opts.RedisAddr,
		}), nil
	})
}

// PostgresPackage provides the PostgreSQL connection pool. The provider
// is only invoked when a DSN is configured.
func PostgresPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*pgxpool.Pool, error) {
		opts := do.MustInvoke[*Options](i)

		return pgxpool.New(context.Background(), opts.PostgresDSN)
	})
}

// StorePackage provides the mapping store, backed by PostgreSQL when a
// DSN is configured and by Redis otherwise. Connectivity is verified
// once here so a dead backend fails startup instead of the first request.
func StorePackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (shortener.MappingStore, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()

		if opts.PostgresDSN != "" {
			pool := do.MustInvoke[*pgxpool.Pool](i)

			s := store.NewPostgresStore(pool, logger)
			if err := s.EnsureSchema(ctx); err != nil {
				return nil, fmt.Errorf("postgres schema: %w", err)
			}

			logger.Info("using postgres mapping store")

			return s, nil
		}

		client := do.MustInvoke[*redis.Client](i)

		s := store.NewRedisStore(client)
		if err := s.Ping(ctx); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}

		logger.Info("using redis mapping store", zap.String("addr", opts.RedisAddr))

		return s, nil
	})
}

// ShortenerPackage provides the shortener service.
func ShortenerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*shortener.Service, error) {
		opts := do.MustInvoke[*Options](i)
		mappingStore := do.MustInvoke[shortener.MappingStore](i)

		generator, err := shortener.NewTokenGenerator(opts.CodeBytes)
		if err != nil {
			return nil, err
		}

		return shortener.NewService(mappingStore, generator, shortener.Config{
			TTL:          time.Duration(opts.TTL) * time.Second,
			MaxAttempts:  opts.MaxAttempts,
			MaxURLLength: opts.MaxURLLength,
		}), nil
	})
}

// HTTPPackage provides the router and the API with all routes registered.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*chi.Mux, error) {
		return chi.NewMux(), nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)
		router := do.MustInvoke[*chi.Mux](i)
		service := do.MustInvoke[*shortener.Service](i)

		api := humachi.New(router, huma.DefaultConfig("TempLink", "1.0.0"))
		api.UseMiddleware(middleware.RequestLogger(logger))

		baseURL := opts.BaseURL
		if baseURL == "" {
			baseURL = fmt.Sprintf("http://localhost:%d", opts.Port)
		}

		handlers.RegisterRoutes(api, handlers.NewURLHandler(service, baseURL, logger))
		health.RegisterRoutes(api, health.NewHandler())

		return api, nil
	})
}
