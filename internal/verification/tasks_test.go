package verification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entnotification "agriplot.io/agriplot/ent/notification"
	entplot "agriplot.io/agriplot/ent/plot"
	entuser "agriplot.io/agriplot/ent/user"
	"agriplot.io/agriplot/ent/verificationtask"
	"agriplot.io/agriplot/internal/domain"
	pkgerrors "agriplot.io/agriplot/internal/pkg/errors"
)

func TestCreateTasksForPlot_Applicability(t *testing.T) {
	t.Parallel()
	client := openClient(t, "tasks_applicability")
	_, tasks, _ := newServices(t, client)
	ctx := context.Background()

	owner := seedUser(t, client, "owner-appl", false)
	landowner := seedLandowner(t, client, owner.ID, "Achieng Odhiambo")

	tests := []struct {
		name     string
		landType entplot.LandType
		area     float64
		want     []domain.TaskType
	}{
		{
			name:     "residential small",
			landType: entplot.LandTypeResidential,
			area:     3,
			want:     []domain.TaskType{domain.TaskDocumentReview},
		},
		{
			name:     "agricultural small",
			landType: entplot.LandTypeAgricultural,
			area:     10,
			want:     []domain.TaskType{domain.TaskDocumentReview, domain.TaskExtensionReview},
		},
		{
			name:     "agricultural large",
			landType: entplot.LandTypeAgricultural,
			area:     80,
			want:     []domain.TaskType{domain.TaskDocumentReview, domain.TaskExtensionReview, domain.TaskSurveyorInspection},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := seedPlot(t, client, landowner.ID, tt.landType, tt.area)

			created, err := tasks.CreateTasksForPlot(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, created)

			// Second call is a no-op thanks to the unique (plot, type) index.
			again, err := tasks.CreateTasksForPlot(ctx, p.ID)
			require.NoError(t, err)
			assert.Empty(t, again)

			count, err := client.VerificationTask.Query().
				Where(verificationtask.HasPlotWith(entplot.ID(p.ID))).
				Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), count)
		})
	}
}

func TestCreateTasksForPlot_UnknownPlot(t *testing.T) {
	t.Parallel()
	client := openClient(t, "tasks_unknown_plot")
	_, tasks, _ := newServices(t, client)

	_, err := tasks.CreateTasksForPlot(context.Background(), "plot-missing")
	appErr, ok := pkgerrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, pkgerrors.CodePlotNotFound, appErr.Code)
}

func TestAssign_MovesToInProgressAndNotifies(t *testing.T) {
	t.Parallel()
	client := openClient(t, "tasks_assign")
	_, tasks, _ := newServices(t, client)
	ctx := context.Background()

	owner := seedUser(t, client, "owner-assign", false)
	reviewer := seedUser(t, client, "reviewer-assign", true)
	landowner := seedLandowner(t, client, owner.ID, "Mutua Nzioka")
	p := seedPlot(t, client, landowner.ID, entplot.LandTypeResidential, 5)

	_, err := tasks.CreateTasksForPlot(ctx, p.ID)
	require.NoError(t, err)
	task, err := client.VerificationTask.Query().
		Where(verificationtask.HasPlotWith(entplot.ID(p.ID))).
		Only(ctx)
	require.NoError(t, err)

	assigned, err := tasks.Assign(ctx, task.ID, reviewer.ID, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, verificationtask.StatusInProgress, assigned.Status)
	assert.Equal(t, reviewer.ID, assigned.AssigneeID)
	require.NotNil(t, assigned.AssignedAt)

	// Assignee got an inbox notification.
	n, err := client.Notification.Query().
		Where(entnotification.TypeEQ(entnotification.TypeTASK_ASSIGNED)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, task.ID, n.TaskID)
	assert.Equal(t, p.ID, n.PlotID)
}

func TestAssign_UnknownTask(t *testing.T) {
	t.Parallel()
	client := openClient(t, "tasks_assign_unknown")
	_, tasks, _ := newServices(t, client)

	_, err := tasks.Assign(context.Background(), "vtask-missing", "reviewer", "admin")
	appErr, ok := pkgerrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, pkgerrors.CodeTaskNotFound, appErr.Code)
}

func TestComplete_RecordsOutcomeAndNotifiesRoster(t *testing.T) {
	t.Parallel()
	client := openClient(t, "tasks_complete")
	records, tasks, _ := newServices(t, client)
	ctx := context.Background()

	owner := seedUser(t, client, "owner-complete", false)
	reviewer := seedUser(t, client, "reviewer-complete", true)
	landowner := seedLandowner(t, client, owner.ID, "Njeri Kariuki")
	p := seedPlot(t, client, landowner.ID, entplot.LandTypeAgricultural, 10)

	_, err := records.CreateFor(ctx, plotRef(t, p.ID))
	require.NoError(t, err)
	_, err = tasks.CreateTasksForPlot(ctx, p.ID)
	require.NoError(t, err)

	docTask, err := client.VerificationTask.Query().
		Where(
			verificationtask.HasPlotWith(entplot.ID(p.ID)),
			verificationtask.TypeEQ(verificationtask.TypeDocumentReview),
		).
		Only(ctx)
	require.NoError(t, err)

	rejected := false
	completed, err := tasks.Complete(ctx, docTask.ID, reviewer.ID, "missing mutation form", &rejected)
	require.NoError(t, err)
	assert.Equal(t, verificationtask.StatusCompleted, completed.Status)
	require.NotNil(t, completed.Approved)
	assert.False(t, *completed.Approved)
	assert.Equal(t, "missing mutation form", completed.Notes)
	require.NotNil(t, completed.CompletedAt)

	// Roster got the completion notice.
	rosterCount, err := client.Notification.Query().
		Where(entnotification.TypeEQ(entnotification.TypeTASK_COMPLETED)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rosterCount, "one staff reviewer on the roster")

	// An explicit negative verdict reaches the owner as a rejection.
	ownerNotif, err := client.Notification.Query().
		Where(
			entnotification.TypeEQ(entnotification.TypePLOT_REJECTED),
			entnotification.HasUserWith(entuser.ID(owner.ID)),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Contains(t, ownerNotif.Message, "document_review task rejected")
}

func TestComplete_AllTasksDoneApprovesPlot(t *testing.T) {
	t.Parallel()
	client := openClient(t, "tasks_complete_all")
	records, tasks, _ := newServices(t, client)
	ctx := context.Background()

	owner := seedUser(t, client, "owner-all-done", false)
	seedUser(t, client, "reviewer-all-done", true)
	landowner := seedLandowner(t, client, owner.ID, "Barasa Wekesa")
	p := seedPlot(t, client, landowner.ID, entplot.LandTypeAgricultural, 12)

	rec, err := records.CreateFor(ctx, plotRef(t, p.ID))
	require.NoError(t, err)
	_, err = tasks.CreateTasksForPlot(ctx, p.ID)
	require.NoError(t, err)

	all, err := client.VerificationTask.Query().
		Where(verificationtask.HasPlotWith(entplot.ID(p.ID))).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	approvedFlag := true
	for _, task := range all {
		_, err := tasks.Complete(ctx, task.ID, "reviewer-all-done", "ok", &approvedFlag)
		require.NoError(t, err)
	}

	// The aggregator approved the record and listed the plot.
	reloaded, err := records.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.EqualValues(t, domain.StageApproved, reloaded.Stage)
	require.NotNil(t, reloaded.ApprovedAt)

	plotRow, err := client.Plot.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, plotRow.Listed)
}

func TestResetTasksForPlot_ClearsAssignmentAndOutcome(t *testing.T) {
	t.Parallel()
	client := openClient(t, "tasks_reset")
	_, tasks, _ := newServices(t, client)
	ctx := context.Background()

	owner := seedUser(t, client, "owner-reset", false)
	reviewer := seedUser(t, client, "reviewer-reset", true)
	landowner := seedLandowner(t, client, owner.ID, "Wafula Simiyu")
	p := seedPlot(t, client, landowner.ID, entplot.LandTypeCommercial, 8)

	_, err := tasks.CreateTasksForPlot(ctx, p.ID)
	require.NoError(t, err)
	task, err := client.VerificationTask.Query().
		Where(verificationtask.HasPlotWith(entplot.ID(p.ID))).
		Only(ctx)
	require.NoError(t, err)
	_, err = tasks.Assign(ctx, task.ID, reviewer.ID, "admin-1")
	require.NoError(t, err)

	require.NoError(t, tasks.ResetTasksForPlot(ctx, p.ID, "owner-reset", "area changed"))

	reloaded, err := client.VerificationTask.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, verificationtask.StatusPending, reloaded.Status)
	assert.Empty(t, reloaded.AssigneeID)
	assert.Nil(t, reloaded.Approved)
	assert.Nil(t, reloaded.AssignedAt)
	assert.Nil(t, reloaded.CompletedAt)
}

func TestStatisticsAndWorkload(t *testing.T) {
	t.Parallel()
	client := openClient(t, "tasks_stats")
	_, tasks, _ := newServices(t, client)
	ctx := context.Background()

	owner := seedUser(t, client, "owner-stats", false)
	reviewer := seedUser(t, client, "reviewer-stats", true)
	landowner := seedLandowner(t, client, owner.ID, "Koech Kiprotich")

	// Large agricultural plot: three tasks.
	p := seedPlot(t, client, landowner.ID, entplot.LandTypeAgricultural, 100)
	_, err := tasks.CreateTasksForPlot(ctx, p.ID)
	require.NoError(t, err)

	docTask, err := client.VerificationTask.Query().
		Where(
			verificationtask.HasPlotWith(entplot.ID(p.ID)),
			verificationtask.TypeEQ(verificationtask.TypeDocumentReview),
		).
		Only(ctx)
	require.NoError(t, err)
	_, err = tasks.Assign(ctx, docTask.ID, reviewer.ID, "admin-1")
	require.NoError(t, err)

	surveyTask, err := client.VerificationTask.Query().
		Where(
			verificationtask.HasPlotWith(entplot.ID(p.ID)),
			verificationtask.TypeEQ(verificationtask.TypeSurveyorInspection),
		).
		Only(ctx)
	require.NoError(t, err)
	_, err = tasks.Assign(ctx, surveyTask.ID, reviewer.ID, "admin-1")
	require.NoError(t, err)
	_, err = tasks.Complete(ctx, surveyTask.ID, reviewer.ID, "inspected", nil)
	require.NoError(t, err)

	// Backdate the in-progress doc review past the overdue threshold.
	_, err = client.VerificationTask.UpdateOneID(docTask.ID).
		SetAssignedAt(time.Now().Add(-OverdueAfter - time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	stats, err := tasks.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Pending, "extension review still pending")
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 1, stats.CompletedToday)
	assert.Equal(t, 1, stats.Overdue)
	assert.Equal(t, 1, stats.PendingByType[string(domain.TaskExtensionReview)])
	assert.Equal(t, 0, stats.PendingByType[string(domain.TaskDocumentReview)])

	workload, err := tasks.StaffWorkload(ctx)
	require.NoError(t, err)
	require.Len(t, workload, 1)
	assert.Equal(t, reviewer.ID, workload[0].UserID)
	assert.Equal(t, 1, workload[0].InProgress)
	assert.Equal(t, 1, workload[0].CompletedToday)
}
