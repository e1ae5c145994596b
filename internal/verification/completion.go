package verification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"agriplot.io/agriplot/ent"
	entplot "agriplot.io/agriplot/ent/plot"
	"agriplot.io/agriplot/ent/verificationtask"
	"agriplot.io/agriplot/internal/domain"
	"agriplot.io/agriplot/internal/governance/audit"
	"agriplot.io/agriplot/internal/notification"
	"agriplot.io/agriplot/internal/pkg/logger"
)

// Completion advances a plot's verification record once every task on the
// plot is finished.
type Completion struct {
	client   *ent.Client
	records  *Records
	audit    *audit.Logger
	notifier *notification.Triggers // Optional: nil-safe
}

// NewCompletion creates the completion aggregator.
func NewCompletion(client *ent.Client, records *Records, auditLogger *audit.Logger) *Completion {
	return &Completion{client: client, records: records, audit: auditLogger}
}

// SetNotifier configures the notification trigger service.
func (c *Completion) SetNotifier(notifier *notification.Triggers) {
	c.notifier = notifier
}

// CheckPlotCompletion approves the plot's verification record when no
// open tasks remain, lists the plot and notifies the owner. Returns true
// only when this call performed the approval.
//
// The count and the advancement are separate statements: a task created
// between them is not seen by this call. Task creation happens before
// any completion in the submission flow, so the window is accepted
// rather than locked against.
func (c *Completion) CheckPlotCompletion(ctx context.Context, plotID string) (bool, error) {
	total, err := c.client.VerificationTask.Query().
		Where(verificationtask.HasPlotWith(entplot.ID(plotID))).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count tasks for plot %s: %w", plotID, err)
	}
	if total == 0 {
		// Nothing to aggregate; the plot has not entered verification.
		return false, nil
	}

	open, err := c.client.VerificationTask.Query().
		Where(
			verificationtask.HasPlotWith(entplot.ID(plotID)),
			verificationtask.StatusIn(verificationtask.StatusPending, verificationtask.StatusInProgress),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count open tasks for plot %s: %w", plotID, err)
	}
	if open > 0 {
		return false, nil
	}

	subject := plotSubject(plotID)
	rec, err := c.records.GetBySubject(ctx, subject)
	if err != nil {
		return false, err
	}
	if domain.Stage(rec.Stage).IsTerminal() {
		// Another completion already decided this record.
		return false, nil
	}

	if _, err := c.records.AdvanceStage(ctx, rec.ID, domain.StageApproved, map[string]interface{}{
		"completed_tasks": total,
	}); err != nil {
		return false, err
	}

	p, err := c.client.Plot.UpdateOneID(plotID).
		SetListed(true).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("list plot %s after approval: %w", plotID, err)
	}

	if c.audit != nil {
		_ = c.audit.LogAction(ctx, "plot.approved", subject, audit.ActorSystem, "", map[string]interface{}{
			"record_id":       rec.ID,
			"completed_tasks": total,
		})
	}
	if c.notifier != nil {
		if owner, oerr := resolvePlotOwner(ctx, c.client, p); oerr == nil {
			c.notifier.OnPlotApproved(ctx, p.ID, p.Title, owner.UserID, owner.Email)
		} else {
			logger.Warn("Cannot notify owner of plot approval",
				zap.String("plot_id", plotID),
				zap.Error(oerr),
			)
		}
	}

	logger.Info("Plot verification completed",
		zap.String("plot_id", plotID),
		zap.Int("completed_tasks", total),
	)
	return true, nil
}
