// Package service implements listing-facing application services on top
// of the verification engine.
package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agriplot.io/agriplot/ent"
	entplot "agriplot.io/agriplot/ent/plot"
	"agriplot.io/agriplot/ent/verificationtask"
	"agriplot.io/agriplot/internal/domain"
	"agriplot.io/agriplot/internal/governance/audit"
	"agriplot.io/agriplot/internal/notification"
	pkgerrors "agriplot.io/agriplot/internal/pkg/errors"
	"agriplot.io/agriplot/internal/pkg/logger"
	"agriplot.io/agriplot/internal/verification"
)

// PlotService handles plot submission and editing around the
// verification pipeline.
type PlotService struct {
	client   *ent.Client
	records  *verification.Records
	tasks    *verification.TaskRegistry
	audit    *audit.Logger
	notifier *notification.Triggers // Optional: nil-safe
}

// NewPlotService creates the plot service.
func NewPlotService(client *ent.Client, records *verification.Records, tasks *verification.TaskRegistry, auditLogger *audit.Logger) *PlotService {
	return &PlotService{client: client, records: records, tasks: tasks, audit: auditLogger}
}

// SetNotifier configures the notification trigger service.
func (s *PlotService) SetNotifier(notifier *notification.Triggers) {
	s.notifier = notifier
}

// PlotInput carries the attributes of a new listing.
type PlotInput struct {
	Title        string
	Location     string
	Area         float64
	Price        float64
	LandType     string
	LandownerID  string
	AgentID      string
	ParcelNumber string
	SoilType     string
}

// Create stores a new plot. The plot stays unlisted until verification
// approves it.
func (s *PlotService) Create(ctx context.Context, input PlotInput) (*ent.Plot, error) {
	create := s.client.Plot.Create().
		SetID(uuid.NewString()).
		SetTitle(input.Title).
		SetLocation(input.Location).
		SetArea(input.Area).
		SetPrice(input.Price).
		SetLandType(entplot.LandType(input.LandType))
	if input.LandownerID != "" {
		create.SetLandownerID(input.LandownerID)
	}
	if input.AgentID != "" {
		create.SetAgentID(input.AgentID)
	}
	if input.ParcelNumber != "" {
		create.SetParcelNumber(input.ParcelNumber)
	}
	if input.SoilType != "" {
		create.SetSoilType(input.SoilType)
	}

	p, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create plot: %w", err)
	}
	logger.Info("Plot created", zap.String("plot_id", p.ID), zap.String("title", p.Title))
	return p, nil
}

// SubmitForVerification enters a plot into the verification pipeline:
// creates its status record, materializes applicable tasks and alerts
// the staff roster.
func (s *PlotService) SubmitForVerification(ctx context.Context, plotID, actor string) (*ent.VerificationRecord, error) {
	p, err := s.getPlot(ctx, plotID)
	if err != nil {
		return nil, err
	}

	plotUUID, err := uuid.Parse(plotID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeSubjectInvalid,
			fmt.Sprintf("plot id %q is not a valid subject id", plotID), http.StatusBadRequest)
	}
	subject := domain.SubjectRef{Kind: domain.SubjectPlot, ID: plotUUID}

	rec, err := s.records.CreateFor(ctx, subject)
	if err != nil {
		return nil, err
	}
	created, err := s.tasks.CreateTasksForPlot(ctx, plotID)
	if err != nil {
		return nil, err
	}

	if s.audit != nil {
		_ = s.audit.LogAction(ctx, "plot.submitted", subject, actor, "", map[string]interface{}{
			"record_id":     rec.ID,
			"created_tasks": len(created),
		})
	}
	if s.notifier != nil {
		s.notifier.OnPlotSubmitted(ctx, p.ID, p.Title, actor)
	}

	logger.Info("Plot submitted for verification",
		zap.String("plot_id", plotID),
		zap.String("record_id", rec.ID),
		zap.Int("created_tasks", len(created)),
	)
	return rec, nil
}

// PlotUpdate carries partial edits; nil fields are untouched.
type PlotUpdate struct {
	Title    *string
	Location *string
	Area     *float64
	Price    *float64
	SoilType *string
}

// criticalChanges lists the edited fields that invalidate a running or
// finished verification.
func (u PlotUpdate) criticalChanges(p *ent.Plot) []string {
	var changed []string
	if u.Title != nil && *u.Title != p.Title {
		changed = append(changed, "title")
	}
	if u.Location != nil && *u.Location != p.Location {
		changed = append(changed, "location")
	}
	if u.Area != nil && *u.Area != p.Area {
		changed = append(changed, "area")
	}
	if u.Price != nil && *u.Price != p.Price {
		changed = append(changed, "price")
	}
	return changed
}

// Update applies edits to a plot. Changing a critical field (title,
// location, area, price) on a plot that entered verification resets its
// record and tasks, re-evaluates task applicability against the new
// attributes and unlists the plot.
func (s *PlotService) Update(ctx context.Context, plotID, actor string, update PlotUpdate) (*ent.Plot, error) {
	p, err := s.getPlot(ctx, plotID)
	if err != nil {
		return nil, err
	}
	critical := update.criticalChanges(p)

	mut := p.Update()
	if update.Title != nil {
		mut.SetTitle(*update.Title)
	}
	if update.Location != nil {
		mut.SetLocation(*update.Location)
	}
	if update.Area != nil {
		mut.SetArea(*update.Area)
	}
	if update.Price != nil {
		mut.SetPrice(*update.Price)
	}
	if update.SoilType != nil {
		mut.SetSoilType(*update.SoilType)
	}
	if len(critical) > 0 {
		mut.SetListed(false)
	}

	updated, err := mut.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update plot %s: %w", plotID, err)
	}

	if len(critical) > 0 {
		if err := s.resetVerification(ctx, updated, actor, critical); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

// resetVerification restarts the pipeline after a critical edit.
func (s *PlotService) resetVerification(ctx context.Context, p *ent.Plot, actor string, changed []string) error {
	plotUUID, _ := uuid.Parse(p.ID)
	subject := domain.SubjectRef{Kind: domain.SubjectPlot, ID: plotUUID}

	rec, err := s.records.GetBySubject(ctx, subject)
	if err != nil {
		if _, ok := pkgerrors.IsAppError(err); ok {
			// Never submitted; nothing to reset.
			return nil
		}
		return err
	}

	reason := fmt.Sprintf("critical fields changed: %v", changed)
	if _, err := s.records.Reset(ctx, rec.ID, reason, actor); err != nil {
		return err
	}
	if err := s.tasks.ResetTasksForPlot(ctx, p.ID, actor, reason); err != nil {
		return err
	}

	// Applicability may have shifted with the new attributes: newly
	// required tasks are added, no-longer-required ones dropped.
	if _, err := s.tasks.CreateTasksForPlot(ctx, p.ID); err != nil {
		return err
	}
	if err := s.pruneInapplicableTasks(ctx, p); err != nil {
		return err
	}

	if s.audit != nil {
		_ = s.audit.LogAction(ctx, "plot.edited", subject, actor, reason, map[string]interface{}{
			"changed_fields": changed,
		})
	}
	logger.Info("Plot verification reset after critical edit",
		zap.String("plot_id", p.ID),
		zap.Strings("changed_fields", changed),
	)
	return nil
}

// pruneInapplicableTasks removes tasks whose type no longer applies to
// the plot's current attributes, e.g. the surveyor inspection after the
// area drops back under the threshold.
func (s *PlotService) pruneInapplicableTasks(ctx context.Context, p *ent.Plot) error {
	applicable := make(map[verificationtask.Type]bool)
	for _, tt := range domain.ApplicableTaskTypes(domain.LandType(p.LandType), p.Area) {
		applicable[verificationtask.Type(tt)] = true
	}

	existing, err := s.client.VerificationTask.Query().
		Where(verificationtask.HasPlotWith(entplot.ID(p.ID))).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query tasks for plot %s: %w", p.ID, err)
	}
	for _, task := range existing {
		if applicable[task.Type] {
			continue
		}
		if err := s.client.VerificationTask.DeleteOne(task).Exec(ctx); err != nil {
			return fmt.Errorf("drop inapplicable %s task for plot %s: %w", task.Type, p.ID, err)
		}
	}
	return nil
}

func (s *PlotService) getPlot(ctx context.Context, plotID string) (*ent.Plot, error) {
	p, err := s.client.Plot.Get(ctx, plotID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, pkgerrors.ErrPlotNotFoundf(plotID)
		}
		return nil, fmt.Errorf("get plot %s: %w", plotID, err)
	}
	return p, nil
}
