package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/slava-del/RTAF/internal/auth"
	"github.com/slava-del/RTAF/internal/config"
	"github.com/slava-del/RTAF/internal/database"
	"github.com/slava-del/RTAF/internal/database/migration"
	handlers "github.com/slava-del/RTAF/internal/http/handler"
	"github.com/slava-del/RTAF/internal/http/middleware"
	"github.com/slava-del/RTAF/internal/otel"
	"github.com/slava-del/RTAF/internal/repository"
	"github.com/slava-del/RTAF/internal/repository/memory"
	"github.com/slava-del/RTAF/internal/repository/postgres"
	"github.com/slava-del/RTAF/internal/service"
	"github.com/slava-del/RTAF/internal/storage"
)

// repos bundles one repository per entity kind, whatever the backend.
type repos struct {
	users         repository.UserRepository
	documents     repository.DocumentRepository
	orders        repository.OrderRepository
	residents     repository.ResidentRepository
	notifications repository.NotificationRepository
	activities    repository.ActivityRepository
}

func main() {
	// Configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	ctx := context.Background()

	// Tracing (no-op when OTEL_SDK_DISABLED=true)
	shutdownTracing, err := otel.Init(ctx, time.Local)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Persistence backend: in-memory by default, PostgreSQL when configured
	var db *sql.DB
	var r repos
	switch cfg.StoreBackend {
	case config.StorePostgres:
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, time.Local, cfg.Database.Host); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}

		r = repos{
			users:         postgres.NewUserPostgres(db),
			documents:     postgres.NewDocumentPostgres(db),
			orders:        postgres.NewOrderPostgres(db),
			residents:     postgres.NewResidentPostgres(db),
			notifications: postgres.NewNotificationPostgres(db),
			activities:    postgres.NewActivityPostgres(db),
		}
	case config.StoreMemory:
		stores := memory.New()
		r = repos{
			users:         stores.Users,
			documents:     stores.Documents,
			orders:        stores.Orders,
			residents:     stores.Residents,
			notifications: stores.Notifications,
			activities:    stores.Activities,
		}
	default:
		log.Fatalf("unknown store backend: %q", cfg.StoreBackend)
	}

	// Document storage backend
	var objStore storage.Storage
	switch cfg.Storage.Backend {
	case config.StorageMinIO:
		objStore, err = storage.NewMinIO(cfg.Storage.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
	case config.StorageLocal:
		objStore, err = storage.NewLocal(cfg.Storage.LocalDir)
		if err != nil {
			log.Fatalf("failed to initialize local storage: %v", err)
		}
	default:
		log.Fatalf("unknown storage backend: %q", cfg.Storage.Backend)
	}

	// The registry ships with its initial entries
	if err := service.SeedResidents(ctx, r.residents); err != nil {
		log.Fatalf("failed to seed residents: %v", err)
	}

	sessions := auth.NewManager(auth.NewMemoryStore(), cfg.Session.TTL)
	events := service.NewFanout(r.notifications, r.activities)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    int(cfg.Upload.MaxSizeBytes) + 1<<20, // headroom for multipart framing
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())
	app.Use(promMiddleware.Handler())
	app.Use(middleware.Authenticate(sessions, cfg.Session.CookieName))

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:            db,
		Sessions:      sessions,
		SessionCfg:    cfg.Session,
		Auth:          service.NewAuthService(r.users, events),
		Documents:     service.NewDocumentService(r.documents, objStore, events, cfg.Upload.MaxSizeBytes),
		Orders:        service.NewOrderService(r.orders, events),
		Residents:     service.NewResidentService(r.residents),
		Notifications: service.NewNotificationService(r.notifications),
		Activities:    service.NewActivityService(r.activities),
		Metrics:       reg,
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
