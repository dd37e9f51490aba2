package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	accounthandler "rentora/internal/account/handler"
	accountmodels "rentora/internal/account/models"
	"rentora/internal/account/revocation"
	"rentora/internal/account/secrets"
	accountservice "rentora/internal/account/service"
	accountstore "rentora/internal/account/store"
	"rentora/internal/account/token"
	"rentora/internal/alert"
	alerthandler "rentora/internal/alert/handler"
	alertstore "rentora/internal/alert/store"
	"rentora/internal/audit"
	buildinghandler "rentora/internal/building/handler"
	buildingservice "rentora/internal/building/service"
	buildingstore "rentora/internal/building/store"
	dashboardhandler "rentora/internal/dashboard/handler"
	dashboardservice "rentora/internal/dashboard/service"
	"rentora/internal/docgen"
	docgenhandler "rentora/internal/docgen/handler"
	"rentora/internal/files"
	fileshandler "rentora/internal/files/handler"
	ownerhandler "rentora/internal/owner/handler"
	ownerservice "rentora/internal/owner/service"
	ownerstore "rentora/internal/owner/store"
	"rentora/internal/platform/config"
	"rentora/internal/platform/httpserver"
	"rentora/internal/platform/logger"
	"rentora/internal/platform/metrics"
	"rentora/internal/platform/redis"
	tenanthandler "rentora/internal/tenant/handler"
	tenantservice "rentora/internal/tenant/service"
	tenantstore "rentora/internal/tenant/store"
	httptransport "rentora/internal/transport/http"
	"rentora/pkg/platform/sentinel"
)

const tokenIssuer = "rentora"

type revocationList interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

type stores struct {
	accounts  accountstore.Store
	owners    ownerstore.Store
	buildings buildingstore.Store
	tenants   tenantstore.Store
	alerts    alertstore.Store
}

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	log := logger.New()
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	m := metrics.New()

	st, db, err := buildStores(cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		return err
	}
	var revoked revocationList = revocation.NewInMemory()
	if redisClient != nil {
		revoked = revocation.NewRedisList(redisClient.Client)
		defer redisClient.Close()
		log.Info("token revocation backed by redis")
	}

	disk, err := files.NewDisk(cfg.DataDir)
	if err != nil {
		return err
	}
	templates := files.NewTemplateDir(cfg.TemplateDir)

	auditLog := audit.NewPublisher(audit.NewInMemoryStore())
	tokens := token.NewService(cfg.JWTSigningKey, tokenIssuer)

	accountSvc := accountservice.New(st.accounts, tokens, revoked, cfg.TokenTTL,
		accountservice.WithLogger(log),
		accountservice.WithMetrics(m),
		accountservice.WithAuditPublisher(auditLog),
	)
	ownerSvc := ownerservice.New(st.owners,
		ownerservice.WithLogger(log),
		ownerservice.WithAuditPublisher(auditLog),
	)
	buildingSvc := buildingservice.New(st.buildings, ownerSvc,
		buildingservice.WithLogger(log),
		buildingservice.WithAuditPublisher(auditLog),
	)
	tenantSvc := tenantservice.New(st.tenants, buildingSvc,
		tenantservice.WithLogger(log),
		tenantservice.WithMetrics(m),
		tenantservice.WithAuditPublisher(auditLog),
	)
	// The referential-integrity counters point back up the chain, so they
	// can only be wired once all three services exist.
	ownerservice.WithBuildingCounter(buildingSvc)(ownerSvc)
	buildingservice.WithTenantCounter(tenantSvc)(buildingSvc)

	dashboardSvc := dashboardservice.New(st.owners, st.buildings, st.tenants)
	docgenSvc := docgen.NewService(templates, disk, tenantSvc, ownerSvc, buildingSvc,
		docgen.WithLogger(log),
		docgen.WithMetrics(m),
		docgen.WithAuditPublisher(auditLog),
	)

	if err := seedAdmin(context.Background(), st.accounts, cfg, log); err != nil {
		return err
	}

	handlers := httptransport.Handlers{
		Accounts:   accounthandler.New(accountSvc, log),
		Owners:     ownerhandler.New(ownerSvc, log),
		Buildings:  buildinghandler.New(buildingSvc, log),
		Tenants:    tenanthandler.New(tenantSvc, log),
		Alerts:     alerthandler.New(st.alerts, log),
		Dashboard:  dashboardhandler.New(dashboardSvc, log),
		Files:      fileshandler.New(disk, tenantSvc, log),
		Agreements: docgenhandler.New(docgenSvc, log),
	}
	router := httptransport.NewRouter(handlers, tokens, revoked, log, m)
	srv := httpserver.New(cfg.Addr, router)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	worker := alert.NewWorker(st.alerts, st.tenants, st.buildings, cfg.AlertInterval, cfg.AlertWindowDays,
		alert.WithWorkerLogger(log),
		alert.WithWorkerMetrics(m),
	)
	go worker.Run(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", "signal", sig.String())
	}

	stopWorker()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// buildStores selects Postgres when DATABASE_URL is set, otherwise the
// in-memory stores used for development and tests.
func buildStores(cfg config.Server, log *slog.Logger) (stores, *sql.DB, error) {
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set, using in-memory stores")
		return stores{
			accounts:  accountstore.NewInMemory(),
			owners:    ownerstore.NewInMemory(),
			buildings: buildingstore.NewInMemory(),
			tenants:   tenantstore.NewInMemory(),
			alerts:    alertstore.NewInMemory(),
		}, nil, nil
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return stores{}, nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return stores{}, nil, err
	}
	log.Info("connected to postgres")
	return stores{
		accounts:  accountstore.NewPostgres(db),
		owners:    ownerstore.NewPostgres(db),
		buildings: buildingstore.NewPostgres(db),
		tenants:   tenantstore.NewPostgres(db),
		alerts:    alertstore.NewPostgres(db),
	}, db, nil
}

// seedAdmin creates the initial admin account on first boot.
func seedAdmin(ctx context.Context, accounts accountstore.Store, cfg config.Server, log *slog.Logger) error {
	_, err := accounts.FindByUsername(ctx, cfg.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return err
	}

	hash, err := secrets.Hash(cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin, err := accountmodels.NewAccount(uuid.New(), cfg.AdminUsername, hash, "Administrator", accountmodels.RoleAdmin)
	if err != nil {
		return err
	}
	if err := accounts.Create(ctx, admin); err != nil {
		return err
	}
	log.Info("seeded admin account", "username", cfg.AdminUsername)
	return nil
}
