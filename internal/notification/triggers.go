package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"agriplot.io/agriplot/ent"
	entuser "agriplot.io/agriplot/ent/user"
	"agriplot.io/agriplot/internal/pkg/logger"
	"agriplot.io/agriplot/internal/pkg/worker"
)

// Triggers encapsulates notification trigger logic for verification events:
//  1. TASK_ASSIGNED: notify the staff member a task lands on
//  2. TASK_COMPLETED: fan out to the staff roster when a reviewer finishes
//  3. PLOT_APPROVED / PLOT_REJECTED / CHANGES_REQUESTED: notify the owner
//  4. VERIFICATION_STARTED / VERIFICATION_DECIDED: profile lifecycle
//
// All triggers are best-effort: failures are logged, never returned to the
// state transition that fired them.
type Triggers struct {
	sender Sender
	client *ent.Client
	email  *EmailRecorder // optional
	pools  *worker.Pools  // optional: roster fan-out runs detached when set
}

// NewTriggers creates a new notification trigger service.
func NewTriggers(sender Sender, client *ent.Client) *Triggers {
	return &Triggers{sender: sender, client: client}
}

// SetEmailRecorder enables email delivery alongside inbox notifications.
func (t *Triggers) SetEmailRecorder(email *EmailRecorder) {
	t.email = email
}

// SetWorkerPools makes staff roster fan-outs run on the general worker
// pool instead of the caller's goroutine.
func (t *Triggers) SetWorkerPools(pools *worker.Pools) {
	t.pools = pools
}

// OnTaskAssigned fires when a verification task is assigned to a reviewer.
func (t *Triggers) OnTaskAssigned(ctx context.Context, taskID, taskType, plotID, plotTitle, assigneeID string) {
	params := Params{
		RecipientID: assigneeID,
		Type:        TypeTaskAssigned,
		Title:       fmt.Sprintf("New %s task assigned", humanTaskType(taskType)),
		Message:     fmt.Sprintf("You have been assigned a %s task for plot %q", humanTaskType(taskType), plotTitle),
		PlotID:      plotID,
		TaskID:      taskID,
	}

	if err := t.sender.Send(ctx, params); err != nil {
		logger.Error("failed to send TASK_ASSIGNED notification",
			zap.String("task_id", taskID),
			zap.String("assignee", assigneeID),
			zap.Error(err),
		)
	}
}

// OnTaskCompleted fires when a reviewer completes a task.
// Notifies the staff roster so remaining reviewers see progress.
func (t *Triggers) OnTaskCompleted(ctx context.Context, taskID, taskType, plotID, plotTitle, completedBy, outcome string) {
	params := Params{
		Type:    TypeTaskCompleted,
		Title:   fmt.Sprintf("%s task %s", humanTaskType(taskType), outcome),
		Message: fmt.Sprintf("%s completed the %s task for plot %q (%s)", completedBy, humanTaskType(taskType), plotTitle, outcome),
		PlotID:  plotID,
		TaskID:  taskID,
	}
	t.fanOutToStaff(ctx, params, "task "+taskID)
}

// OnPlotSubmitted fires when a plot enters verification.
// Fans out to the staff roster so reviewers can pick up the new tasks.
func (t *Triggers) OnPlotSubmitted(ctx context.Context, plotID, plotTitle, submitterName string) {
	params := Params{
		Type:    TypeVerificationStarted,
		Title:   "New plot awaiting verification",
		Message: fmt.Sprintf("%s submitted plot %q for verification", submitterName, plotTitle),
		PlotID:  plotID,
	}
	t.fanOutToStaff(ctx, params, "plot "+plotID)
}

// OnPlotApproved fires when a plot clears verification. Notifies the owner
// and emails them when an email recorder is configured.
func (t *Triggers) OnPlotApproved(ctx context.Context, plotID, plotTitle, ownerUserID, ownerEmail string) {
	params := Params{
		RecipientID: ownerUserID,
		Type:        TypePlotApproved,
		Title:       "Your plot has been verified",
		Message:     fmt.Sprintf("Plot %q passed verification and is now listed", plotTitle),
		PlotID:      plotID,
	}
	if err := t.sender.Send(ctx, params); err != nil {
		logger.Error("failed to send PLOT_APPROVED notification",
			zap.String("plot_id", plotID),
			zap.String("owner", ownerUserID),
			zap.Error(err),
		)
	}
	t.deliverEmail(ctx, ownerEmail, "Your plot has been verified", "plot_approved", map[string]interface{}{
		"plot_id":    plotID,
		"plot_title": plotTitle,
	})
}

// OnPlotRejected fires when a plot fails verification.
func (t *Triggers) OnPlotRejected(ctx context.Context, plotID, plotTitle, ownerUserID, ownerEmail, reason string) {
	msg := fmt.Sprintf("Plot %q did not pass verification", plotTitle)
	if reason != "" {
		msg += ": " + reason
	}
	params := Params{
		RecipientID: ownerUserID,
		Type:        TypePlotRejected,
		Title:       "Your plot verification was rejected",
		Message:     msg,
		PlotID:      plotID,
	}
	if err := t.sender.Send(ctx, params); err != nil {
		logger.Error("failed to send PLOT_REJECTED notification",
			zap.String("plot_id", plotID),
			zap.String("owner", ownerUserID),
			zap.Error(err),
		)
	}
	t.deliverEmail(ctx, ownerEmail, "Your plot verification was rejected", "plot_rejected", map[string]interface{}{
		"plot_id":    plotID,
		"plot_title": plotTitle,
		"reason":     reason,
	})
}

// OnChangesRequested fires when a reviewer sends a plot back for changes.
func (t *Triggers) OnChangesRequested(ctx context.Context, plotID, plotTitle, ownerUserID, notes string) {
	msg := fmt.Sprintf("A reviewer requested changes to plot %q", plotTitle)
	if notes != "" {
		msg += ": " + notes
	}
	params := Params{
		RecipientID: ownerUserID,
		Type:        TypeChangesRequested,
		Title:       "Changes requested on your plot",
		Message:     msg,
		PlotID:      plotID,
	}
	if err := t.sender.Send(ctx, params); err != nil {
		logger.Error("failed to send CHANGES_REQUESTED notification",
			zap.String("plot_id", plotID),
			zap.String("owner", ownerUserID),
			zap.Error(err),
		)
	}
}

// OnVerificationDecided fires on a terminal profile verification decision.
func (t *Triggers) OnVerificationDecided(ctx context.Context, recipientID, subjectLabel string, approved bool, reason string) {
	title := fmt.Sprintf("Your %s verification was approved", subjectLabel)
	msg := fmt.Sprintf("Your %s profile has been verified", subjectLabel)
	if !approved {
		title = fmt.Sprintf("Your %s verification was rejected", subjectLabel)
		msg = fmt.Sprintf("Your %s profile verification was rejected", subjectLabel)
		if reason != "" {
			msg += ": " + reason
		}
	}
	params := Params{
		RecipientID: recipientID,
		Type:        TypeVerificationDecided,
		Title:       title,
		Message:     msg,
	}
	if err := t.sender.Send(ctx, params); err != nil {
		logger.Error("failed to send VERIFICATION_DECIDED notification",
			zap.String("recipient", recipientID),
			zap.Bool("approved", approved),
			zap.Error(err),
		)
	}
}

// fanOutToStaff delivers params to every enabled staff user. Runs on the
// general worker pool when pools are configured so the triggering request
// does not wait for roster-sized writes.
func (t *Triggers) fanOutToStaff(ctx context.Context, params Params, about string) {
	deliver := func(ctx context.Context) {
		staffIDs, err := t.findStaffUserIDs(ctx)
		if err != nil {
			logger.Error("failed to load staff roster for notification",
				zap.String("about", about),
				zap.Error(err),
			)
			return
		}
		if len(staffIDs) == 0 {
			logger.Warn("no staff reviewers found for notification", zap.String("about", about))
			return
		}
		if err := t.sender.SendToMany(ctx, staffIDs, params); err != nil {
			logger.Error("failed to fan out staff notifications",
				zap.String("about", about),
				zap.Int("staff_count", len(staffIDs)),
				zap.Error(err),
			)
		}
	}

	if t.pools != nil {
		if err := t.pools.SubmitDetached("general", deliver); err != nil {
			logger.Error("failed to submit staff fan-out task", zap.String("about", about), zap.Error(err))
		}
		return
	}
	deliver(ctx)
}

// findStaffUserIDs returns the IDs of all enabled staff users.
func (t *Triggers) findStaffUserIDs(ctx context.Context) ([]string, error) {
	ids, err := t.client.User.Query().
		Where(entuser.Staff(true), entuser.Enabled(true)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("query staff roster: %w", err)
	}
	return ids, nil
}

func (t *Triggers) deliverEmail(ctx context.Context, recipient, subject, template string, templateCtx map[string]interface{}) {
	if t.email == nil || recipient == "" {
		return
	}
	// Best-effort: Deliver already records the failure in email_logs.
	_ = t.email.Deliver(ctx, recipient, subject, template, templateCtx)
}

func humanTaskType(taskType string) string {
	switch taskType {
	case "document_review":
		return "document review"
	case "extension_review":
		return "extension review"
	case "surveyor_inspection":
		return "surveyor inspection"
	default:
		return taskType
	}
}
