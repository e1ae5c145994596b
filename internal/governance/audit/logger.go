// Package audit implements the verification audit trail.
//
// Log entries are append-only compliance records. Hard-delete is NOT allowed.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agriplot.io/agriplot/ent"
	"agriplot.io/agriplot/internal/domain"
	"agriplot.io/agriplot/internal/pkg/logger"
)

// ActorSystem marks automated actions in the audit trail.
const ActorSystem = "system"

// Logger writes verification log entries to the database.
type Logger struct {
	client *ent.Client
}

// NewLogger creates a new audit Logger.
func NewLogger(client *ent.Client) *Logger {
	return &Logger{client: client}
}

// LogAction records an auditable action against a verification subject.
func (l *Logger) LogAction(ctx context.Context, action string, subject domain.SubjectRef, actor, comment string, details map[string]interface{}) error {
	_, err := l.client.VerificationLogEntry.Create().
		SetID(generateLogID()).
		SetAction(action).
		SetSubjectKind(string(subject.Kind)).
		SetSubjectID(subject.ID.String()).
		SetActor(actor).
		SetComment(comment).
		SetDetails(details).
		Save(ctx)
	if err != nil {
		logger.Error("Failed to write verification log entry",
			zap.String("action", action),
			zap.String("subject", subject.String()),
			zap.Error(err),
		)
		return fmt.Errorf("write verification log entry: %w", err)
	}
	return nil
}

// LogStageChange records a stage transition on a verification record.
func (l *Logger) LogStageChange(ctx context.Context, subject domain.SubjectRef, from, to domain.Stage, actor string) error {
	return l.LogAction(ctx, "stage."+string(to), subject, actor, "", map[string]interface{}{
		"from": string(from),
		"to":   string(to),
	})
}

// LogTaskEvent records a task lifecycle event ("assigned", "completed", ...).
func (l *Logger) LogTaskEvent(ctx context.Context, event string, plotID uuid.UUID, taskID, taskType, actor, comment string) error {
	subject := domain.SubjectRef{Kind: domain.SubjectPlot, ID: plotID}
	return l.LogAction(ctx, "task."+event, subject, actor, comment, map[string]interface{}{
		"task_id":   taskID,
		"task_type": taskType,
	})
}

func generateLogID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return fmt.Sprintf("vlog-%s", id.String())
}
