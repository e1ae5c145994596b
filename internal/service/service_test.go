package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"agriplot.io/agriplot/ent"
	entplot "agriplot.io/agriplot/ent/plot"
	"agriplot.io/agriplot/internal/governance/audit"
	"agriplot.io/agriplot/internal/pkg/logger"
	"agriplot.io/agriplot/internal/testutil"
	"agriplot.io/agriplot/internal/verification"
)

func init() {
	_ = logger.Init("error", "json")
}

func seedUser(t *testing.T, client *ent.Client, username string, staff bool) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetID(uuid.NewString()).
		SetUsername(username).
		SetEmail(username + "@example.com").
		SetDisplayName(username).
		SetStaff(staff).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func seedLandowner(t *testing.T, client *ent.Client, userID, fullName string) *ent.LandownerProfile {
	t.Helper()
	p, err := client.LandownerProfile.Create().
		SetID(uuid.NewString()).
		SetUserID(userID).
		SetFullName(fullName).
		SetNationalIDNo("23456789").
		Save(context.Background())
	require.NoError(t, err)
	return p
}

// newPlotService wires a plot service plus the verification services it
// depends on against the test client.
func newPlotService(t *testing.T, client *ent.Client) (*PlotService, *verification.Records) {
	t.Helper()
	auditLogger := audit.NewLogger(client)
	records := verification.NewRecords(client, auditLogger)
	completion := verification.NewCompletion(client, records, auditLogger)
	tasks := verification.NewTaskRegistry(client, auditLogger, completion)
	return NewPlotService(client, records, tasks, auditLogger), records
}

func openClient(t *testing.T, prefix string) *ent.Client {
	t.Helper()
	return testutil.OpenEntPostgres(t, prefix)
}

func agriculturalPlot(t *testing.T, svc *PlotService, landownerID string, area float64) *ent.Plot {
	t.Helper()
	p, err := svc.Create(context.Background(), PlotInput{
		Title:       "Maize farm " + uuid.NewString()[:8],
		Location:    "Nakuru County",
		Area:        area,
		Price:       2_400_000,
		LandType:    string(entplot.LandTypeAgricultural),
		LandownerID: landownerID,
	})
	require.NoError(t, err)
	return p
}
