package verification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agriplot.io/agriplot/ent"
	entplot "agriplot.io/agriplot/ent/plot"
	entuser "agriplot.io/agriplot/ent/user"
	"agriplot.io/agriplot/ent/verificationtask"
	"agriplot.io/agriplot/internal/domain"
	"agriplot.io/agriplot/internal/governance/audit"
	"agriplot.io/agriplot/internal/notification"
	pkgerrors "agriplot.io/agriplot/internal/pkg/errors"
	"agriplot.io/agriplot/internal/pkg/logger"
)

// OverdueAfter is how long an in_progress task may sit before the
// statistics report counts it as overdue.
const OverdueAfter = 48 * time.Hour

// TaskRegistry manages per-plot verification tasks. At most one task
// exists per (plot, type); the unique index backs the get-or-create.
type TaskRegistry struct {
	client     *ent.Client
	audit      *audit.Logger
	notifier   *notification.Triggers // Optional: nil-safe
	completion *Completion
}

// NewTaskRegistry creates the task registry.
func NewTaskRegistry(client *ent.Client, auditLogger *audit.Logger, completion *Completion) *TaskRegistry {
	return &TaskRegistry{client: client, audit: auditLogger, completion: completion}
}

// SetNotifier configures the notification trigger service.
func (t *TaskRegistry) SetNotifier(notifier *notification.Triggers) {
	t.notifier = notifier
}

// CreateTasksForPlot ensures every applicable task exists for the plot and
// returns the types created by this call. Applicability: document review
// always; extension review for agricultural land; surveyor inspection for
// plots above the area threshold. Concurrent callers race on the unique
// (plot, type) index and each type is created exactly once.
func (t *TaskRegistry) CreateTasksForPlot(ctx context.Context, plotID string) ([]domain.TaskType, error) {
	p, err := t.getPlot(ctx, plotID)
	if err != nil {
		return nil, err
	}

	var created []domain.TaskType
	for _, taskType := range domain.ApplicableTaskTypes(domain.LandType(p.LandType), p.Area) {
		_, err := t.client.VerificationTask.Create().
			SetID(generateTaskID()).
			SetType(verificationtask.Type(taskType)).
			SetPlotID(plotID).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				// Task already exists for this (plot, type).
				continue
			}
			return nil, fmt.Errorf("create %s task for plot %s: %w", taskType, plotID, err)
		}
		created = append(created, taskType)
	}

	if len(created) > 0 {
		if t.audit != nil {
			_ = t.audit.LogAction(ctx, "tasks.created", plotSubject(plotID), audit.ActorSystem, "", map[string]interface{}{
				"types": taskTypeNames(created),
			})
		}
		logger.Info("Verification tasks created",
			zap.String("plot_id", plotID),
			zap.Strings("types", taskTypeNames(created)),
		)
	}
	return created, nil
}

// Assign hands a pending task to a staff reviewer and stamps assigned_at.
func (t *TaskRegistry) Assign(ctx context.Context, taskID, assigneeID, actor string) (*ent.VerificationTask, error) {
	task, err := t.getTaskWithPlot(ctx, taskID)
	if err != nil {
		return nil, err
	}

	updated, err := task.Update().
		SetStatus(verificationtask.StatusInProgress).
		SetAssigneeID(assigneeID).
		SetAssignedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("assign task %s to %s: %w", taskID, assigneeID, err)
	}

	p := task.Edges.Plot
	if t.audit != nil {
		_ = t.audit.LogTaskEvent(ctx, "assigned", plotUUID(p.ID), taskID, string(task.Type), actor,
			fmt.Sprintf("assigned to %s", assigneeID))
	}
	if t.notifier != nil {
		t.notifier.OnTaskAssigned(ctx, taskID, string(task.Type), p.ID, p.Title, assigneeID)
	}

	logger.Info("Verification task assigned",
		zap.String("task_id", taskID),
		zap.String("type", string(task.Type)),
		zap.String("assignee", assigneeID),
		zap.String("actor", actor),
	)
	return updated, nil
}

// Complete finishes a task with an optional tri-state outcome. approved
// nil means the reviewer recorded work without a verdict. The staff roster
// is notified, the plot owner hears about explicit verdicts, and the
// completion aggregator runs afterwards.
func (t *TaskRegistry) Complete(ctx context.Context, taskID, completedBy, notes string, approved *bool) (*ent.VerificationTask, error) {
	task, err := t.getTaskWithPlot(ctx, taskID)
	if err != nil {
		return nil, err
	}

	update := task.Update().
		SetStatus(verificationtask.StatusCompleted).
		SetNotes(notes)
	if task.CompletedAt == nil {
		update.SetCompletedAt(time.Now())
	}
	if approved != nil {
		update.SetApproved(*approved)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete task %s: %w", taskID, err)
	}

	outcome := taskOutcome(approved)
	p := task.Edges.Plot

	if t.audit != nil {
		_ = t.audit.LogTaskEvent(ctx, outcome, plotUUID(p.ID), taskID, string(task.Type), completedBy, notes)
	}
	if t.notifier != nil {
		t.notifier.OnTaskCompleted(ctx, taskID, string(task.Type), p.ID, p.Title, completedBy, outcome)
		if approved != nil {
			t.notifyOwnerOfVerdict(ctx, p, task, *approved, notes)
		}
	}

	logger.Info("Verification task completed",
		zap.String("task_id", taskID),
		zap.String("type", string(task.Type)),
		zap.String("outcome", outcome),
		zap.String("completed_by", completedBy),
	)

	if t.completion != nil {
		if _, err := t.completion.CheckPlotCompletion(ctx, p.ID); err != nil {
			// The task itself completed; aggregation can be retried by the
			// next completion on the same plot.
			logger.Error("Plot completion check failed",
				zap.String("plot_id", p.ID),
				zap.Error(err),
			)
		}
	}
	return updated, nil
}

// ResetTasksForPlot sends all of a plot's tasks back to pending, clearing
// assignee, notes and outcome. Used by the critical-edit path.
func (t *TaskRegistry) ResetTasksForPlot(ctx context.Context, plotID, actor, trigger string) error {
	n, err := t.client.VerificationTask.Update().
		Where(verificationtask.HasPlotWith(entplot.ID(plotID))).
		SetStatus(verificationtask.StatusPending).
		ClearAssigneeID().
		ClearNotes().
		ClearApproved().
		ClearAssignedAt().
		ClearCompletedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("reset tasks for plot %s: %w", plotID, err)
	}

	if t.audit != nil {
		_ = t.audit.LogAction(ctx, "tasks.reset", plotSubject(plotID), actor, trigger, map[string]interface{}{
			"task_count": n,
		})
	}
	logger.Info("Verification tasks reset",
		zap.String("plot_id", plotID),
		zap.Int("task_count", n),
		zap.String("trigger", trigger),
	)
	return nil
}

// StaffWorkloadEntry summarizes one reviewer's open and recent work.
type StaffWorkloadEntry struct {
	UserID         string `json:"user_id"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	InProgress     int    `json:"in_progress"`
	CompletedToday int    `json:"completed_today"`
}

// StaffWorkload reports per-reviewer task counts for the whole roster.
func (t *TaskRegistry) StaffWorkload(ctx context.Context) ([]StaffWorkloadEntry, error) {
	staff, err := t.client.User.Query().
		Where(entuser.Staff(true), entuser.Enabled(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query staff roster: %w", err)
	}

	startOfDay := startOfToday()
	entries := make([]StaffWorkloadEntry, 0, len(staff))
	for _, u := range staff {
		inProgress, err := t.client.VerificationTask.Query().
			Where(
				verificationtask.AssigneeID(u.ID),
				verificationtask.StatusEQ(verificationtask.StatusInProgress),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count in-progress tasks for %s: %w", u.ID, err)
		}

		completedToday, err := t.client.VerificationTask.Query().
			Where(
				verificationtask.AssigneeID(u.ID),
				verificationtask.StatusEQ(verificationtask.StatusCompleted),
				verificationtask.CompletedAtGTE(startOfDay),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count completed tasks for %s: %w", u.ID, err)
		}

		entries = append(entries, StaffWorkloadEntry{
			UserID:         u.ID,
			Username:       u.Username,
			DisplayName:    u.DisplayName,
			InProgress:     inProgress,
			CompletedToday: completedToday,
		})
	}
	return entries, nil
}

// TaskStatistics is the operations dashboard summary.
type TaskStatistics struct {
	Pending        int            `json:"pending"`
	InProgress     int            `json:"in_progress"`
	CompletedToday int            `json:"completed_today"`
	Overdue        int            `json:"overdue"`
	PendingByType  map[string]int `json:"pending_by_type"`
}

// Statistics reports queue-level counts. Overdue means in_progress and
// assigned more than OverdueAfter ago.
func (t *TaskRegistry) Statistics(ctx context.Context) (*TaskStatistics, error) {
	stats := &TaskStatistics{PendingByType: make(map[string]int)}

	var err error
	stats.Pending, err = t.client.VerificationTask.Query().
		Where(verificationtask.StatusEQ(verificationtask.StatusPending)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count pending tasks: %w", err)
	}

	stats.InProgress, err = t.client.VerificationTask.Query().
		Where(verificationtask.StatusEQ(verificationtask.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count in-progress tasks: %w", err)
	}

	stats.CompletedToday, err = t.client.VerificationTask.Query().
		Where(
			verificationtask.StatusEQ(verificationtask.StatusCompleted),
			verificationtask.CompletedAtGTE(startOfToday()),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count completed tasks: %w", err)
	}

	stats.Overdue, err = t.client.VerificationTask.Query().
		Where(
			verificationtask.StatusEQ(verificationtask.StatusInProgress),
			verificationtask.AssignedAtLTE(time.Now().Add(-OverdueAfter)),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count overdue tasks: %w", err)
	}

	for _, taskType := range []verificationtask.Type{
		verificationtask.TypeDocumentReview,
		verificationtask.TypeExtensionReview,
		verificationtask.TypeSurveyorInspection,
	} {
		n, err := t.client.VerificationTask.Query().
			Where(
				verificationtask.StatusEQ(verificationtask.StatusPending),
				verificationtask.TypeEQ(taskType),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count pending %s tasks: %w", taskType, err)
		}
		stats.PendingByType[string(taskType)] = n
	}
	return stats, nil
}

// notifyOwnerOfVerdict tells the plot owner about an explicit task verdict.
func (t *TaskRegistry) notifyOwnerOfVerdict(ctx context.Context, p *ent.Plot, task *ent.VerificationTask, approved bool, notes string) {
	owner, err := resolvePlotOwner(ctx, t.client, p)
	if err != nil {
		logger.Warn("Cannot notify plot owner of task verdict",
			zap.String("plot_id", p.ID),
			zap.Error(err),
		)
		return
	}
	if approved {
		t.notifier.OnPlotApproved(ctx, p.ID, p.Title, owner.UserID, "")
		return
	}
	t.notifier.OnPlotRejected(ctx, p.ID, p.Title, owner.UserID, "",
		fmt.Sprintf("%s task rejected: %s", string(task.Type), notes))
}

func (t *TaskRegistry) getPlot(ctx context.Context, plotID string) (*ent.Plot, error) {
	p, err := t.client.Plot.Get(ctx, plotID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, pkgerrors.ErrPlotNotFoundf(plotID)
		}
		return nil, fmt.Errorf("get plot %s: %w", plotID, err)
	}
	return p, nil
}

func (t *TaskRegistry) getTaskWithPlot(ctx context.Context, taskID string) (*ent.VerificationTask, error) {
	task, err := t.client.VerificationTask.Query().
		Where(verificationtask.ID(taskID)).
		WithPlot().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, pkgerrors.ErrTaskNotFoundf(taskID)
		}
		return nil, fmt.Errorf("get task %s: %w", taskID, err)
	}
	return task, nil
}

func taskOutcome(approved *bool) string {
	switch {
	case approved == nil:
		return "completed"
	case *approved:
		return "approved"
	default:
		return "rejected"
	}
}

func taskTypeNames(types []domain.TaskType) []string {
	names := make([]string, len(types))
	for i, tt := range types {
		names[i] = string(tt)
	}
	return names
}

func plotSubject(plotID string) domain.SubjectRef {
	return domain.SubjectRef{Kind: domain.SubjectPlot, ID: plotUUID(plotID)}
}

func plotUUID(plotID string) uuid.UUID {
	id, _ := uuid.Parse(plotID)
	return id
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return fmt.Sprintf("vtask-%s", id.String())
}
