package modules

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"

	"agriplot.io/agriplot/ent"
	"agriplot.io/agriplot/internal/config"
	"agriplot.io/agriplot/internal/governance/audit"
	"agriplot.io/agriplot/internal/infrastructure"
	"agriplot.io/agriplot/internal/notification"
	"agriplot.io/agriplot/internal/pkg/worker"
	"agriplot.io/agriplot/internal/registry"
)

// Infrastructure holds shared cross-cutting dependencies for all modules.
// It is a provider, not a Module.
type Infrastructure struct {
	Config      *config.Config
	DB          *infrastructure.DatabaseClients
	Pools       *worker.Pools
	EntClient   *ent.Client
	Pool        *pgxpool.Pool
	RiverClient *river.Client[pgx.Tx]
	AuditLogger *audit.Logger
	Registry    registry.Client
	Notifier    *notification.Triggers
}

// NewInfrastructure initializes DB/pools and shared services.
func NewInfrastructure(ctx context.Context, cfg *config.Config) (*Infrastructure, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	// Dev-mode: auto-create Ent tables + River queue tables.
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize:  cfg.Worker.GeneralPoolSize,
		RegistryPoolSize: cfg.Worker.RegistryPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	entClient := db.EntClient

	notifier := notification.NewTriggers(notification.NewInboxSender(entClient), entClient)
	notifier.SetEmailRecorder(notification.NewEmailRecorder(entClient, notification.ConsoleEmailSender{}))
	notifier.SetWorkerPools(pools)

	return &Infrastructure{
		Config:      cfg,
		DB:          db,
		Pools:       pools,
		EntClient:   entClient,
		Pool:        db.Pool,
		RiverClient: db.RiverClient,
		AuditLogger: audit.NewLogger(entClient),
		Registry:    newRegistryClient(cfg.Registry),
		Notifier:    notifier,
	}, nil
}

// newRegistryClient selects the external land-registry integration. The
// mock keeps the full pipeline exercisable without upstream credentials.
func newRegistryClient(cfg config.RegistryConfig) registry.Client {
	if cfg.UseMock || cfg.BaseURL == "" {
		return registry.NewMockClient()
	}
	return registry.NewArdhisasaClient(cfg.BaseURL, cfg.APIKey, cfg.CallTimeout)
}

// InitRiver initializes River client on top of a prepared worker registry.
func (i *Infrastructure) InitRiver(workers *river.Workers) error {
	if i == nil || i.DB == nil || i.Config == nil {
		return fmt.Errorf("infrastructure is not initialized")
	}
	if err := i.DB.InitRiverClient(workers, i.Config.River); err != nil {
		return fmt.Errorf("init river: %w", err)
	}
	i.RiverClient = i.DB.RiverClient
	return nil
}

// Close releases infra resources in reverse dependency order.
func (i *Infrastructure) Close() {
	if i == nil {
		return
	}
	if i.Pools != nil {
		i.Pools.Shutdown()
	}
	if i.DB != nil {
		i.DB.Close()
	}
}
