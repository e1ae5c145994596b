// Package jobs defines River Queue job types for async processing.
//
// Claim-check pattern: job args carry only the verification record ID;
// workers re-read everything else from the database.
package jobs

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"agriplot.io/agriplot/internal/pkg/logger"
	"agriplot.io/agriplot/internal/verification"
)

// ProfileVerifyArgs carries only the record ID (claim-check pattern).
type ProfileVerifyArgs struct {
	RecordID string `json:"record_id"`
}

// Kind returns the job kind identifier for profile verification.
func (ProfileVerifyArgs) Kind() string { return "profile_verify" }

// InsertOpts returns default insert options for profile verification jobs.
// Unique by args so a profile entering verification twice enqueues once.
func (ProfileVerifyArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 2,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByQueue: true,
		},
	}
}

// ProfileVerifyWorker runs the external registry verification chain for a
// newly created profile. The chain itself is fail-fast: a check that comes
// back negative rejects the record and completes the job. Only
// infrastructure failures return an error and trigger a River retry.
type ProfileVerifyWorker struct {
	river.WorkerDefaults[ProfileVerifyArgs]
	orchestrator *verification.Orchestrator
}

// NewProfileVerifyWorker creates a new ProfileVerifyWorker.
func NewProfileVerifyWorker(orchestrator *verification.Orchestrator) *ProfileVerifyWorker {
	return &ProfileVerifyWorker{orchestrator: orchestrator}
}

// Work runs the verification chain for the record in the job args.
func (w *ProfileVerifyWorker) Work(ctx context.Context, job *river.Job[ProfileVerifyArgs]) error {
	if w == nil || w.orchestrator == nil {
		return fmt.Errorf("profile verify worker is not initialized")
	}

	outcome, err := w.orchestrator.StartVerification(ctx, job.Args.RecordID)
	if err != nil {
		return fmt.Errorf("verify record %s: %w", job.Args.RecordID, err)
	}

	logger.Info("profile verification job completed",
		zap.String("record_id", outcome.RecordID),
		zap.Bool("passed", outcome.Passed),
		zap.String("failed_step", outcome.FailedStep),
	)
	return nil
}
