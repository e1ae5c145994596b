package verification

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"agriplot.io/agriplot/ent"
	entplot "agriplot.io/agriplot/ent/plot"
	"agriplot.io/agriplot/internal/domain"
	"agriplot.io/agriplot/internal/governance/audit"
	"agriplot.io/agriplot/internal/notification"
	"agriplot.io/agriplot/internal/pkg/logger"
	"agriplot.io/agriplot/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

// seedUser creates a marketplace or staff user.
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

// seedLandowner creates a landowner profile for user.
func seedLandowner(t *testing.T, client *ent.Client, userID, fullName string) *ent.LandownerProfile {
	t.Helper()
	p, err := client.LandownerProfile.Create().
		SetID(uuid.NewString()).
		SetUserID(userID).
		SetFullName(fullName).
		SetNationalIDNo("12345678").
		Save(context.Background())
	require.NoError(t, err)
	return p
}

// seedPlot creates a plot owned by the given landowner profile.
func seedPlot(t *testing.T, client *ent.Client, landownerID string, landType entplot.LandType, area float64) *ent.Plot {
	t.Helper()
	p, err := client.Plot.Create().
		SetID(uuid.NewString()).
		SetTitle("Plot " + uuid.NewString()[:8]).
		SetLocation("Kiambu County").
		SetArea(area).
		SetPrice(1_500_000).
		SetLandType(landType).
		SetLandownerID(landownerID).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

// newServices wires the verification services against the test client
// with an inbox notifier and no worker pools.
func newServices(t *testing.T, client *ent.Client) (*Records, *TaskRegistry, *Completion) {
	t.Helper()
	auditLogger := audit.NewLogger(client)
	records := NewRecords(client, auditLogger)
	completion := NewCompletion(client, records, auditLogger)
	tasks := NewTaskRegistry(client, auditLogger, completion)

	notifier := notification.NewTriggers(notification.NewInboxSender(client), client)
	completion.SetNotifier(notifier)
	tasks.SetNotifier(notifier)
	return records, tasks, completion
}

func plotRef(t *testing.T, plotID string) domain.SubjectRef {
	t.Helper()
	id, err := uuid.Parse(plotID)
	require.NoError(t, err)
	return domain.SubjectRef{Kind: domain.SubjectPlot, ID: id}
}

func openClient(t *testing.T, prefix string) *ent.Client {
	t.Helper()
	return testutil.OpenEntPostgres(t, prefix)
}
