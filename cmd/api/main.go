package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/georgemunganga/aeroparts-backend/internal/config"
	"github.com/georgemunganga/aeroparts-backend/internal/db"
	"github.com/georgemunganga/aeroparts-backend/internal/logging"
	apimw "github.com/georgemunganga/aeroparts-backend/internal/middleware"
	"github.com/georgemunganga/aeroparts-backend/internal/modules/auth"
	"github.com/georgemunganga/aeroparts-backend/internal/modules/cart"
	"github.com/georgemunganga/aeroparts-backend/internal/modules/catalog"
	"github.com/georgemunganga/aeroparts-backend/internal/modules/category"
	"github.com/georgemunganga/aeroparts-backend/internal/modules/inventory"
	"github.com/georgemunganga/aeroparts-backend/internal/modules/seller"
	"github.com/georgemunganga/aeroparts-backend/internal/telemetry"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var version = "dev"

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// referenceData is where parts, sellers and categories are read from.
type referenceData struct {
	parts      catalog.Repository
	sellers    seller.Repository
	categories category.Repository
	db         *sql.DB
}

func (r referenceData) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

func openReferenceData(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (referenceData, error) {
	switch cfg.CatalogSource {
	case "postgres":
		if cfg.RunMigrations {
			if err := db.RunMigrations(cfg.DatabaseURL, log); err != nil {
				return referenceData{}, err
			}
		}
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return referenceData{}, err
		}
		log.Info("reading reference data from postgres")
		return referenceData{
			parts:      catalog.NewPostgresRepository(conn),
			sellers:    seller.NewPostgresRepository(conn),
			categories: category.NewPostgresRepository(conn),
			db:         conn,
		}, nil

	case "fixtures":
		var (
			parts catalog.Repository
			err   error
		)
		if cfg.CatalogFixtures != "" {
			parts, err = catalog.NewFileRepository(cfg.CatalogFixtures)
		} else {
			parts, err = catalog.NewFixtureRepository()
		}
		if err != nil {
			return referenceData{}, err
		}
		sellers, err := seller.NewFixtureRepository()
		if err != nil {
			return referenceData{}, err
		}
		categories, err := category.NewFixtureRepository()
		if err != nil {
			return referenceData{}, err
		}
		log.WithField("file", cfg.CatalogFixtures).Info("reading reference data from fixtures")
		return referenceData{parts: parts, sellers: sellers, categories: categories}, nil

	default:
		return referenceData{}, errors.Errorf("unknown CATALOG_SOURCE %q", cfg.CatalogSource)
	}
}

func openCartStorage(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (cart.Storage, func() error, error) {
	noop := func() error { return nil }
	switch cfg.CartStorage {
	case "memory":
		log.Warn("carts are kept in memory and lost on restart")
		return cart.NewMemoryStorage(), noop, nil
	case "file":
		fs, err := cart.NewFileStorage(cfg.CartDir)
		if err != nil {
			return nil, nil, err
		}
		log.WithField("dir", cfg.CartDir).Info("carts persisted to disk")
		return fs, noop, nil
	case "redis":
		rs, err := cart.NewRedisStorage(ctx, cfg.RedisURL, cfg.CartTTL)
		if err != nil {
			return nil, nil, err
		}
		log.WithField("ttl", cfg.CartTTL).Info("carts persisted to redis")
		return rs, rs.Close, nil
	default:
		return nil, nil, errors.Errorf("unknown CART_STORAGE %q", cfg.CartStorage)
	}
}

func run(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	shutdownTracer, err := telemetry.InitTracer(cfg.TracingEnabled, os.Stderr, version)
	if err != nil {
		return err
	}
	defer shutdownTracer(context.Background())

	ref, err := openReferenceData(ctx, cfg, log)
	if err != nil {
		return errors.Wrap(err, "reference data")
	}
	defer ref.Close()

	storage, closeStorage, err := openCartStorage(ctx, cfg, log)
	if err != nil {
		return errors.Wrap(err, "cart storage")
	}
	defer closeStorage()

	if cfg.SessionSecret == "change-me" {
		log.Warn("SESSION_SECRET is the default; cart sessions can be forged")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logging.RequestLogger(log))
	router.Use(middleware.Recoverer)
	router.Use(apimw.CORS(cfg.CORSAllowOrigins, auth.HeaderSession))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ── Catalog & reference data ────────────────────────────
	catalogService := catalog.NewService(ref.parts, log, cfg.CatalogLatency)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	categoryService := category.NewService(ref.categories, cfg.CatalogLatency)
	category.NewHandler(categoryService, catalogService).RegisterRoutes(router)

	inventoryService := inventory.NewService(catalogService, inventory.DefaultLowStockThreshold)
	inventory.NewHandler(inventoryService).RegisterRoutes(router)

	sellerService := seller.NewService(ref.sellers, cfg.CatalogLatency)
	seller.NewHandler(sellerService, catalogService, inventoryService).RegisterRoutes(router)

	// ── Cart ────────────────────────────────────────────────
	issuer := auth.NewIssuer(cfg.SessionSecret, cfg.SessionTTL)
	sessions := cart.NewSessions(storage, log, cfg.CartSessionMax, cfg.CartSessionIdle)
	cart.NewHandler(sessions, catalogService, issuer).RegisterRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(router, "aeroparts-api"),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
