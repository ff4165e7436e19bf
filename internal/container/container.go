package container

import (
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jaevor/go-nanoid"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/serroba/web-toolbox/internal/apierror"
	"github.com/serroba/web-toolbox/internal/handlers"
	"github.com/serroba/web-toolbox/internal/health"
	"github.com/serroba/web-toolbox/internal/logger"
	"github.com/serroba/web-toolbox/internal/metrics"
	"github.com/serroba/web-toolbox/internal/middleware"
	"github.com/serroba/web-toolbox/internal/shortener"
	"github.com/serroba/web-toolbox/internal/store"
	"github.com/serroba/web-toolbox/internal/tools/markdown"
	"go.uber.org/zap"
)

const (
	Name    = "Web Toolbox"
	Version = "1.0.0"

	pdfCachePrefix = "pdf:"
)

func LoggerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*zap.Logger, error) {
		opts := do.MustInvoke[*Options](i)

		return logger.New(logger.Config{
			Development: !opts.IsProduction(),
			Level:       opts.LogLevel,
			Format:      opts.LogFormat,
			File:        opts.LogFile,
		})
	})
}

// RegistryPackage provides the in-memory short code registry.
func RegistryPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (shortener.Repository, error) {
		return store.NewMemoryStore(), nil
	})
}

func ShortenerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (shortener.Strategy, error) {
		opts := do.MustInvoke[*Options](i)

		if opts.Provider == shortener.ProviderTinyURL {
			return shortener.NewTinyURLStrategy(opts.TinyURLEndpoint, seconds(opts.UpstreamTimeout)), nil
		}

		generator, err := nanoid.Standard(opts.CodeLength)
		if err != nil {
			return nil, fmt.Errorf("code generator: %w", err)
		}

		repo := do.MustInvoke[shortener.Repository](i)

		return shortener.NewTokenStrategy(repo, generator, opts.ShortLinkBase()), nil
	})

	do.Provide(injector, func(i *do.Injector) (*shortener.Service, error) {
		return shortener.NewService(
			do.MustInvoke[shortener.Repository](i),
			do.MustInvoke[shortener.Strategy](i),
		), nil
	})
}

// CachePackage provides the Redis client and PDF cache. Nothing is registered when
// no Redis address is configured.
func CachePackage(injector *do.Injector) {
	opts := do.MustInvoke[*Options](injector)
	if opts.RedisAddr == "" {
		return
	}

	do.Provide(injector, func(_ *do.Injector) (*redis.Client, error) {
		return redis.NewClient(&redis.Options{Addr: opts.RedisAddr}), nil
	})

	do.Provide(injector, func(i *do.Injector) (*store.RedisBlobCache, error) {
		return store.NewRedisBlobCache(do.MustInvoke[*redis.Client](i), pdfCachePrefix, seconds(opts.CacheTTL)), nil
	})
}

// RenderPackage provides the PDF renderer, wrapped in the Redis cache when one is configured.
func RenderPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (markdown.Renderer, error) {
		opts := do.MustInvoke[*Options](i)
		chrome := markdown.NewChromeRenderer(opts.ChromePath, seconds(opts.RenderTimeout))

		if opts.RedisAddr == "" {
			return chrome, nil
		}

		cache := do.MustInvoke[*store.RedisBlobCache](i)

		return markdown.NewCachingRenderer(chrome, cache, do.MustInvoke[*zap.Logger](i)), nil
	})
}

func MetricsPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*metrics.Metrics, error) {
		return metrics.New(), nil
	})
}

// HTTPPackage provides the router and the huma API with every route registered.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*health.Handler, error) {
		opts := do.MustInvoke[*Options](i)

		checks := map[string]health.Checker{}
		if opts.RedisAddr != "" {
			checks["redis"] = health.NewRedisChecker(do.MustInvoke[*redis.Client](i))
		}

		return health.NewHandler(health.Info{Version: Version, Environment: opts.Environment}, checks), nil
	})

	do.Provide(injector, func(i *do.Injector) (*chi.Mux, error) {
		opts := do.MustInvoke[*Options](i)
		log := do.MustInvoke[*zap.Logger](i)
		m := do.MustInvoke[*metrics.Metrics](i)

		router := chi.NewMux()
		router.Use(
			middleware.RequestID,
			middleware.Logger(log),
			middleware.Recoverer(log, !opts.IsProduction()),
			m.Middleware,
			cors.Handler(cors.Options{
				AllowedOrigins:   []string{opts.FrontendURL},
				AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
				AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
				ExposedHeaders:   []string{middleware.RequestIDHeader, "Content-Disposition"},
				AllowCredentials: true,
				MaxAge:           300,
			}),
		)
		router.Handle("/metrics", m.Handler())

		return router, nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		opts := do.MustInvoke[*Options](i)
		log := do.MustInvoke[*zap.Logger](i)
		m := do.MustInvoke[*metrics.Metrics](i)

		apierror.Install(!opts.IsProduction())

		api := humachi.New(do.MustInvoke[*chi.Mux](i), huma.DefaultConfig(Name, Version))
		api.UseMiddleware(middleware.RequestMeta(api))

		urlHandler := handlers.NewURLHandler(do.MustInvoke[*shortener.Service](i), m, log)
		toolsHandler := handlers.NewToolsHandler(do.MustInvoke[markdown.Renderer](i), m, log)

		handlers.RegisterRoutes(api, urlHandler, toolsHandler)
		health.RegisterRoutes(api, do.MustInvoke[*health.Handler](i))

		return api, nil
	})
}

// Register wires every package onto injector.
func Register(injector *do.Injector, options *Options) {
	do.ProvideValue(injector, options)
	LoggerPackage(injector)
	RegistryPackage(injector)
	ShortenerPackage(injector)
	CachePackage(injector)
	RenderPackage(injector)
	MetricsPackage(injector)
	HTTPPackage(injector)
}
