// Package main provides data seeding for the AgriPlot verification service.
//
// The service itself auto-migrates in dev mode but never creates users.
// This command performs an idempotent bootstrap of the staff reviewer
// roster that task notifications fan out to.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agriplot.io/agriplot/ent"
	entuser "agriplot.io/agriplot/ent/user"
	"agriplot.io/agriplot/internal/config"
	"agriplot.io/agriplot/internal/infrastructure"
	"agriplot.io/agriplot/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	logger.Info("Starting data seeding...")

	// Database and River migrations are expected to be executed before
	// seeding. This command only performs idempotent data bootstrap.
	if err := seedStaffRoster(ctx, db.EntClient); err != nil {
		return fmt.Errorf("seed staff roster: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

// staffUser defines a built-in reviewer account for seeding.
type staffUser struct {
	Username    string
	Email       string
	DisplayName string
}

var builtInStaff = []staffUser{
	{Username: "admin", Email: "admin@agriplot.io", DisplayName: "Platform Admin"},
	{Username: "reviewer.documents", Email: "documents@agriplot.io", DisplayName: "Document Reviewer"},
	{Username: "reviewer.extension", Email: "extension@agriplot.io", DisplayName: "Agricultural Extension Officer"},
	{Username: "reviewer.survey", Email: "survey@agriplot.io", DisplayName: "Licensed Surveyor"},
}

// seedStaffRoster creates the built-in staff reviewers if missing.
// Existing users are left untouched so local edits survive re-runs.
func seedStaffRoster(ctx context.Context, client *ent.Client) error {
	for _, s := range builtInStaff {
		exists, err := client.User.Query().
			Where(entuser.Username(s.Username)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check user %s: %w", s.Username, err)
		}
		if exists {
			logger.Debug("staff user already present", zap.String("username", s.Username))
			continue
		}

		_, err = client.User.Create().
			SetID(uuid.NewString()).
			SetUsername(s.Username).
			SetEmail(s.Email).
			SetDisplayName(s.DisplayName).
			SetStaff(true).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				// Concurrent seeding run won the race.
				continue
			}
			return fmt.Errorf("create user %s: %w", s.Username, err)
		}
		logger.Info("Seeded staff user", zap.String("username", s.Username))
	}
	return nil
}
