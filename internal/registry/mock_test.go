package registry

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockClient_AllChecksPass(t *testing.T) {
	c := NewMockClient()
	ctx := context.Background()
	info := SubjectInfo{SubjectID: uuid.New(), OwnerName: "Wanjiku Kamau"}

	title, err := c.SearchTitle(ctx, info)
	require.NoError(t, err)
	assert.True(t, title.Verified)
	assert.Contains(t, title.Reference, "SRCH")
	assert.Equal(t, "Wanjiku Kamau", title.RegisteredOwner)
	assert.EqualValues(t, 500, title.Fee)
	assert.Empty(t, title.Encumbrances)

	owner, err := c.VerifyOwner(ctx, info)
	require.NoError(t, err)
	assert.True(t, owner.Verified)

	enc, err := c.CheckEncumbrances(ctx, info)
	require.NoError(t, err)
	assert.True(t, enc.Verified)
	assert.Empty(t, enc.Encumbrances)
}

func TestMockClient_DeterministicReference(t *testing.T) {
	c := NewMockClient()
	fixed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	res, err := c.SearchTitle(context.Background(), SubjectInfo{SubjectID: uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, "SRCH20250314092653", res.Reference)
	assert.Equal(t, "Unknown", res.RegisteredOwner)
}

func TestMockClient_TitleNumberFallback(t *testing.T) {
	c := NewMockClient()
	fixed := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }
	id := uuid.New()

	res, err := c.SearchTitle(context.Background(), SubjectInfo{SubjectID: id})
	require.NoError(t, err)
	assert.Equal(t, "TITLE/2025/"+id.String(), res.ParcelDetails["title_number"])

	res, err = c.SearchTitle(context.Background(), SubjectInfo{SubjectID: id, TitleNumber: "NBI/BLOCK1/42"})
	require.NoError(t, err)
	assert.Equal(t, "NBI/BLOCK1/42", res.ParcelDetails["title_number"])
}

func TestMockClient_InjectedFailures(t *testing.T) {
	c := NewMockClient()
	ctx := context.Background()
	info := SubjectInfo{SubjectID: uuid.New()}

	c.FailStage(StageOwnerCheck, "registered owner mismatch")

	title, err := c.SearchTitle(ctx, info)
	require.NoError(t, err)
	assert.True(t, title.Verified)

	owner, err := c.VerifyOwner(ctx, info)
	require.NoError(t, err)
	assert.False(t, owner.Verified)
	assert.Equal(t, "registered owner mismatch", owner.Message)

	c.Reset()
	owner, err = c.VerifyOwner(ctx, info)
	require.NoError(t, err)
	assert.True(t, owner.Verified)
}

func TestMockClient_ContextCancelled(t *testing.T) {
	c := NewMockClient()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.SearchTitle(ctx, SubjectInfo{SubjectID: uuid.New()})
	assert.ErrorIs(t, err, context.Canceled)
}
