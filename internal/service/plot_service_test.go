package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriplot.io/agriplot/ent"
	entplot "agriplot.io/agriplot/ent/plot"
	"agriplot.io/agriplot/ent/verificationtask"
	"agriplot.io/agriplot/internal/domain"
)

func TestPlotServiceCreateStartsUnlisted(t *testing.T) {
	t.Parallel()
	client := openClient(t, "svc_plot_create")
	svc, _ := newPlotService(t, client)

	owner := seedUser(t, client, "wanjiku", false)
	profile := seedLandowner(t, client, owner.ID, "Wanjiku Kamau")

	p := agriculturalPlot(t, svc, profile.ID, 12)
	assert.False(t, p.Listed)
	assert.EqualValues(t, entplot.LandTypeAgricultural, p.LandType)
}

func TestPlotServiceSubmitCreatesRecordAndTasks(t *testing.T) {
	t.Parallel()
	client := openClient(t, "svc_plot_submit")
	svc, records := newPlotService(t, client)
	ctx := context.Background()

	owner := seedUser(t, client, "otieno", false)
	profile := seedLandowner(t, client, owner.ID, "Otieno Odhiambo")
	p := agriculturalPlot(t, svc, profile.ID, 12)

	rec, err := svc.SubmitForVerification(ctx, p.ID, owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, domain.StageDocumentUploaded, rec.Stage)

	got, err := records.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)

	types := taskTypesFor(t, client, p.ID)
	assert.ElementsMatch(t,
		[]verificationtask.Type{verificationtask.TypeDocumentReview, verificationtask.TypeExtensionReview},
		types)
}

func TestPlotServiceSubmitUnknownPlot(t *testing.T) {
	t.Parallel()
	client := openClient(t, "svc_plot_submit_missing")
	svc, _ := newPlotService(t, client)

	_, err := svc.SubmitForVerification(context.Background(), "no-such-plot", "someone")
	require.Error(t, err)
}

func TestPlotServiceNonCriticalEditKeepsVerification(t *testing.T) {
	t.Parallel()
	client := openClient(t, "svc_plot_edit_soft")
	svc, records := newPlotService(t, client)
	ctx := context.Background()

	owner := seedUser(t, client, "njeri", false)
	profile := seedLandowner(t, client, owner.ID, "Njeri Mwangi")
	p := agriculturalPlot(t, svc, profile.ID, 12)
	rec, err := svc.SubmitForVerification(ctx, p.ID, owner.ID)
	require.NoError(t, err)

	_, err = records.AdvanceStage(ctx, rec.ID, domain.StageAPIVerificationStarted, nil)
	require.NoError(t, err)

	soil := "volcanic loam"
	updated, err := svc.Update(ctx, p.ID, owner.ID, PlotUpdate{SoilType: &soil})
	require.NoError(t, err)
	assert.Equal(t, soil, updated.SoilType)

	reloaded, err := records.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.EqualValues(t, domain.StageAPIVerificationStarted, reloaded.Stage)
}

func TestPlotServiceCriticalEditResetsVerification(t *testing.T) {
	t.Parallel()
	client := openClient(t, "svc_plot_edit_hard")
	svc, records := newPlotService(t, client)
	ctx := context.Background()

	owner := seedUser(t, client, "chebet", false)
	profile := seedLandowner(t, client, owner.ID, "Chebet Kiprono")
	p := agriculturalPlot(t, svc, profile.ID, 12)
	rec, err := svc.SubmitForVerification(ctx, p.ID, owner.ID)
	require.NoError(t, err)

	_, err = records.AdvanceStage(ctx, rec.ID, domain.StageAPIVerificationStarted, nil)
	require.NoError(t, err)
	require.NoError(t, p.Update().SetListed(true).Exec(ctx))

	price := 3_100_000.0
	updated, err := svc.Update(ctx, p.ID, owner.ID, PlotUpdate{Price: &price})
	require.NoError(t, err)
	assert.False(t, updated.Listed, "critical edit must unlist the plot")
	assert.Equal(t, price, updated.Price)

	reloaded, err := records.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.EqualValues(t, domain.StageDocumentUploaded, reloaded.Stage)
}

func TestPlotServiceAreaIncreaseAddsSurveyorTask(t *testing.T) {
	t.Parallel()
	client := openClient(t, "svc_plot_area_up")
	svc, _ := newPlotService(t, client)
	ctx := context.Background()

	owner := seedUser(t, client, "baraka", false)
	profile := seedLandowner(t, client, owner.ID, "Baraka Mutua")
	p := agriculturalPlot(t, svc, profile.ID, 40)
	_, err := svc.SubmitForVerification(ctx, p.ID, owner.ID)
	require.NoError(t, err)
	require.NotContains(t, taskTypesFor(t, client, p.ID), verificationtask.TypeSurveyorInspection)

	area := 80.0
	_, err = svc.Update(ctx, p.ID, owner.ID, PlotUpdate{Area: &area})
	require.NoError(t, err)

	assert.Contains(t, taskTypesFor(t, client, p.ID), verificationtask.TypeSurveyorInspection)
}

func TestPlotServiceAreaDecreasePrunesSurveyorTask(t *testing.T) {
	t.Parallel()
	client := openClient(t, "svc_plot_area_down")
	svc, _ := newPlotService(t, client)
	ctx := context.Background()

	owner := seedUser(t, client, "akinyi", false)
	profile := seedLandowner(t, client, owner.ID, "Akinyi Owuor")
	p := agriculturalPlot(t, svc, profile.ID, 120)
	_, err := svc.SubmitForVerification(ctx, p.ID, owner.ID)
	require.NoError(t, err)
	require.Contains(t, taskTypesFor(t, client, p.ID), verificationtask.TypeSurveyorInspection)

	area := 30.0
	_, err = svc.Update(ctx, p.ID, owner.ID, PlotUpdate{Area: &area})
	require.NoError(t, err)

	types := taskTypesFor(t, client, p.ID)
	assert.NotContains(t, types, verificationtask.TypeSurveyorInspection)
	assert.ElementsMatch(t,
		[]verificationtask.Type{verificationtask.TypeDocumentReview, verificationtask.TypeExtensionReview},
		types)
}

func TestPlotServiceCriticalEditBeforeSubmission(t *testing.T) {
	t.Parallel()
	client := openClient(t, "svc_plot_edit_unsubmitted")
	svc, _ := newPlotService(t, client)
	ctx := context.Background()

	owner := seedUser(t, client, "wafula", false)
	profile := seedLandowner(t, client, owner.ID, "Wafula Simiyu")
	p := agriculturalPlot(t, svc, profile.ID, 12)

	title := "Renamed farm"
	updated, err := svc.Update(ctx, p.ID, owner.ID, PlotUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)

	count, err := client.VerificationTask.Query().
		Where(verificationtask.HasPlotWith(entplot.ID(p.ID))).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func taskTypesFor(t *testing.T, client *ent.Client, plotID string) []verificationtask.Type {
	t.Helper()
	tasks, err := client.VerificationTask.Query().
		Where(verificationtask.HasPlotWith(entplot.ID(plotID))).
		All(context.Background())
	require.NoError(t, err)
	types := make([]verificationtask.Type, 0, len(tasks))
	for _, task := range tasks {
		types = append(types, task.Type)
	}
	return types
}
