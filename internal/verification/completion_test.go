package verification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entnotification "agriplot.io/agriplot/ent/notification"
	entplot "agriplot.io/agriplot/ent/plot"
	"agriplot.io/agriplot/ent/verificationtask"
	"agriplot.io/agriplot/internal/domain"
)

func TestCheckPlotCompletion_NoTasks(t *testing.T) {
	t.Parallel()
	client := openClient(t, "completion_no_tasks")
	records, _, completion := newServices(t, client)
	ctx := context.Background()

	owner := seedUser(t, client, "owner-comp-none", false)
	landowner := seedLandowner(t, client, owner.ID, "Otieno Ouma")
	p := seedPlot(t, client, landowner.ID, entplot.LandTypeResidential, 2)
	_, err := records.CreateFor(ctx, plotRef(t, p.ID))
	require.NoError(t, err)

	done, err := completion.CheckPlotCompletion(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, done, "a plot without tasks has not entered verification")
}

func TestCheckPlotCompletion_OpenTasksBlockApproval(t *testing.T) {
	t.Parallel()
	client := openClient(t, "completion_open_tasks")
	records, tasks, completion := newServices(t, client)
	ctx := context.Background()

	owner := seedUser(t, client, "owner-comp-open", false)
	landowner := seedLandowner(t, client, owner.ID, "Chebet Langat")
	p := seedPlot(t, client, landowner.ID, entplot.LandTypeAgricultural, 20)

	rec, err := records.CreateFor(ctx, plotRef(t, p.ID))
	require.NoError(t, err)
	_, err = tasks.CreateTasksForPlot(ctx, p.ID)
	require.NoError(t, err)

	done, err := completion.CheckPlotCompletion(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, done)

	reloaded, err := records.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.EqualValues(t, domain.StageDocumentUploaded, reloaded.Stage)

	plotRow, err := client.Plot.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, plotRow.Listed)
}

func TestCheckPlotCompletion_ApprovesOnceAndNotifiesOwner(t *testing.T) {
	t.Parallel()
	client := openClient(t, "completion_approves")
	records, tasks, completion := newServices(t, client)
	ctx := context.Background()

	owner := seedUser(t, client, "owner-comp-done", false)
	landowner := seedLandowner(t, client, owner.ID, "Moraa Nyaboke")
	p := seedPlot(t, client, landowner.ID, entplot.LandTypeResidential, 4)

	rec, err := records.CreateFor(ctx, plotRef(t, p.ID))
	require.NoError(t, err)
	_, err = tasks.CreateTasksForPlot(ctx, p.ID)
	require.NoError(t, err)

	// Mark the single task completed directly so the aggregator is the
	// only actor under test.
	_, err = client.VerificationTask.Update().
		Where(verificationtask.HasPlotWith(entplot.ID(p.ID))).
		SetStatus(verificationtask.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	done, err := completion.CheckPlotCompletion(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, done)

	reloaded, err := records.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.EqualValues(t, domain.StageApproved, reloaded.Stage)
	require.NotNil(t, reloaded.ApprovedAt)

	plotRow, err := client.Plot.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, plotRow.Listed)

	ownerNotifs, err := client.Notification.Query().
		Where(entnotification.TypeEQ(entnotification.TypePLOT_APPROVED)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, ownerNotifs)

	// Second invocation sees the terminal record and stays quiet.
	done, err = completion.CheckPlotCompletion(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, done)
}
