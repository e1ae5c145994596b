// Package app is the composition root; bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"

	"agriplot.io/agriplot/internal/app/modules"
	"agriplot.io/agriplot/internal/config"
	"agriplot.io/agriplot/internal/infrastructure"
	"agriplot.io/agriplot/internal/jobs"
	"agriplot.io/agriplot/internal/pkg/worker"
)

// Application holds composed application dependencies.
type Application struct {
	Config       *config.Config
	DB           *infrastructure.DatabaseClients
	Pools        *worker.Pools
	Modules      []modules.Module
	Verification *modules.VerificationModule
	Listing      *modules.ListingModule
}

// Bootstrap initializes all dependencies using module-oriented manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	infra, err := modules.NewInfrastructure(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	verificationModule := modules.NewVerificationModule(infra)
	listingModule := modules.NewListingModule(infra, verificationModule)
	allModules := []modules.Module{verificationModule, listingModule}

	workers := river.NewWorkers()
	for _, mod := range allModules {
		mod.RegisterWorkers(workers)
	}
	if err := infra.InitRiver(workers); err != nil {
		infra.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}

	// Notification retention cleanup: run daily and once on startup to
	// avoid long-lived inbox bloat.
	if infra.RiverClient != nil {
		infra.RiverClient.PeriodicJobs().Add(
			river.NewPeriodicJob(
				river.PeriodicInterval(24*time.Hour),
				func() (river.JobArgs, *river.InsertOpts) {
					return jobs.NotificationCleanupArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		)
		listingModule.SetEnqueuer(jobs.NewEnqueuer(infra.RiverClient))
	}

	return &Application{
		Config:       cfg,
		DB:           infra.DB,
		Pools:        infra.Pools,
		Modules:      allModules,
		Verification: verificationModule,
		Listing:      listingModule,
	}, nil
}
