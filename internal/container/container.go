package container

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/serroba/shortlink/internal/edge"
	"github.com/serroba/shortlink/internal/events"
	"github.com/serroba/shortlink/internal/handlers"
	"github.com/serroba/shortlink/internal/health"
	"github.com/serroba/shortlink/internal/logging"
	"github.com/serroba/shortlink/internal/messaging"
	"github.com/serroba/shortlink/internal/middleware"
	"github.com/serroba/shortlink/internal/qr"
	"github.com/serroba/shortlink/internal/shortener"
	"github.com/serroba/shortlink/internal/store"
	"go.uber.org/zap"
)

const eventsConsumerGroup = "shortener-audit"

// LoggerPackage provides *zap.Logger built from *LogOptions.
func LoggerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*zap.Logger, error) {
		opts := do.MustInvoke[*LogOptions](i)

		return logging.New(opts.Format, opts.Level)
	})
}

// RepositoryPackage provides the in-memory mapping store and the shortening strategy.
func RepositoryPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*store.MemoryStore, error) {
		return store.NewMemoryStore(), nil
	})

	do.Provide(injector, func(i *do.Injector) (shortener.Repository, error) {
		return do.MustInvoke[*store.MemoryStore](i), nil
	})

	do.Provide(injector, func(i *do.Injector) (shortener.Strategy, error) {
		opts := do.MustInvoke[*Options](i)
		repo := do.MustInvoke[shortener.Repository](i)

		gen, err := shortener.NewCodeGenerator(opts.CodeLength)
		if err != nil {
			return nil, err
		}

		return shortener.NewTokenStrategy(repo, gen, shortener.WithCollisionRetries(opts.CollisionRetries)), nil
	})
}

// redisClient closes the client when the injector shuts down.
type redisClient struct {
	*redis.Client
}

func (c *redisClient) Shutdown() error {
	return c.Close()
}

// EventsPackage provides the creation event transport, publisher and audit consumer group.
func EventsPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.Transport, error) {
		opts := do.MustInvoke[*Options](i)
		wmLogger := logging.NewWatermillAdapter(do.MustInvoke[*zap.Logger](i))

		if opts.EventsRedisAddr == "" {
			return messaging.NewInProcessTransport(wmLogger), nil
		}

		client := do.MustInvoke[*redisClient](i)

		return messaging.NewRedisStreamTransport(client.Client, eventsConsumerGroup, wmLogger)
	})

	do.Provide(injector, func(i *do.Injector) (*redisClient, error) {
		opts := do.MustInvoke[*Options](i)

		return &redisClient{Client: redis.NewClient(&redis.Options{Addr: opts.EventsRedisAddr})}, nil
	})

	do.Provide(injector, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		return messaging.NewPublisherGroup(do.MustInvoke[*messaging.Transport](i).Publisher), nil
	})

	do.Provide(injector, func(i *do.Injector) (messaging.Publish[events.URLCreatedEvent], error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return messaging.NewPublishFunc[events.URLCreatedEvent](group.Publisher(), events.TopicURLCreated), nil
	})

	do.Provide(injector, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		logger := do.MustInvoke[*zap.Logger](i)
		transport := do.MustInvoke[*messaging.Transport](i)

		group := messaging.NewConsumerGroup(transport.Subscriber, logger)
		group.Add(messaging.NewConsumer(
			transport.Subscriber,
			events.TopicURLCreated,
			events.NewAuditLog(logger.Named("audit")).HandleURLCreated,
			logger,
		))

		return group, nil
	})
}

// HTTPPackage provides the shortener router and its huma API with all routes registered.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*chi.Mux, error) {
		return newRouter(do.MustInvoke[*zap.Logger](i)), nil
	})

	do.Provide(injector, func(i *do.Injector) (*handlers.URLHandler, error) {
		opts := do.MustInvoke[*Options](i)

		return handlers.NewURLHandler(
			do.MustInvoke[shortener.Strategy](i),
			do.MustInvoke[shortener.Repository](i),
			qr.NewPNGRenderer(qr.DefaultSize),
			shortener.BaseURL(opts.PublicDomain, opts.Port),
			do.MustInvoke[messaging.Publish[events.URLCreatedEvent]](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		opts := do.MustInvoke[*Options](i)
		router := do.MustInvoke[*chi.Mux](i)

		handlers.UseErrorResponses()

		api := humachi.New(router, handlers.NewAPIConfig())
		api.UseMiddleware(middleware.RequestMeta(api))

		if opts.DebugListing {
			do.MustInvoke[*zap.Logger](i).Warn("GET /urls is enabled and lists every mapping without authentication")
		}

		health.RegisterRoutes(api, health.NewHandler(time.Now))
		handlers.RegisterRoutes(api, do.MustInvoke[*handlers.URLHandler](i), handlers.RouteOptions{
			DebugListing: opts.DebugListing,
		})

		return api, nil
	})
}

// EdgePackage provides the edge service router serving *EdgeOptions.PublicDir.
func EdgePackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*chi.Mux, error) {
		opts := do.MustInvoke[*EdgeOptions](i)
		logger := do.MustInvoke[*zap.Logger](i)

		info, err := os.Stat(opts.PublicDir)
		if err != nil {
			return nil, fmt.Errorf("public dir: %w", err)
		}

		if !info.IsDir() {
			return nil, fmt.Errorf("public dir %q is not a directory", opts.PublicDir)
		}

		router := newRouter(logger)
		edge.NewHandler(os.DirFS(opts.PublicDir), opts.ShortenerURL, opts.CodeLength, logger).RegisterRoutes(router)

		return router, nil
	})
}

func newRouter(logger *zap.Logger) *chi.Mux {
	router := chi.NewMux()
	router.Use(
		chimw.RequestID,
		middleware.RequestLogger(logger),
		middleware.Recover(logger),
		cors.AllowAll().Handler,
	)

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		middleware.WriteError(w, http.StatusNotFound, "Not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return router
}
