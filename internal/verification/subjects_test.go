package verification

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriplot.io/agriplot/ent"
	entplot "agriplot.io/agriplot/ent/plot"
	pkgerrors "agriplot.io/agriplot/internal/pkg/errors"
)

func seedAgent(t *testing.T, client *ent.Client, userID, fullName string) *ent.AgentProfile {
	t.Helper()
	p, err := client.AgentProfile.Create().
		SetID(uuid.NewString()).
		SetUserID(userID).
		SetFullName(fullName).
		SetLicenseNumber("EAK/2021/0815").
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func TestResolvePlotOwner_AgentTakesPrecedence(t *testing.T) {
	t.Parallel()
	client := openClient(t, "subjects_agent_first")
	ctx := context.Background()

	ownerUser := seedUser(t, client, "subj-landowner", false)
	agentUser := seedUser(t, client, "subj-agent", false)
	landowner := seedLandowner(t, client, ownerUser.ID, "Wambui Ndungu")
	agent := seedAgent(t, client, agentUser.ID, "Omondi Okoth")

	brokered, err := client.Plot.Create().
		SetID(uuid.NewString()).
		SetTitle("Brokered plot").
		SetLocation("Machakos County").
		SetArea(8).
		SetPrice(900_000).
		SetLandType(entplot.LandTypeResidential).
		SetLandownerID(landowner.ID).
		SetAgentID(agent.ID).
		Save(ctx)
	require.NoError(t, err)

	// The listing agent is the plot's contact when one is attached.
	contact, err := resolvePlotOwner(ctx, client, brokered)
	require.NoError(t, err)
	assert.Equal(t, agentUser.ID, contact.UserID)
	assert.Equal(t, "Omondi Okoth", contact.FullName)

	direct := seedPlot(t, client, landowner.ID, entplot.LandTypeResidential, 5)
	contact, err = resolvePlotOwner(ctx, client, direct)
	require.NoError(t, err)
	assert.Equal(t, ownerUser.ID, contact.UserID)
}

func TestResolvePlotOwner_NoProfilesAttached(t *testing.T) {
	t.Parallel()
	client := openClient(t, "subjects_orphan")
	ctx := context.Background()

	orphan, err := client.Plot.Create().
		SetID(uuid.NewString()).
		SetTitle("Orphan plot").
		SetLocation("Isiolo County").
		SetArea(3).
		SetPrice(200_000).
		SetLandType(entplot.LandTypeResidential).
		Save(ctx)
	require.NoError(t, err)

	_, err = resolvePlotOwner(ctx, client, orphan)
	appErr, ok := pkgerrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, pkgerrors.CodeSubjectInvalid, appErr.Code)
}
