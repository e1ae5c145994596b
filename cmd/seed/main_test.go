package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entuser "agriplot.io/agriplot/ent/user"
	"agriplot.io/agriplot/internal/pkg/logger"
	"agriplot.io/agriplot/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestBuiltInStaffWellFormed(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for _, s := range builtInStaff {
		assert.NotEmpty(t, s.Username)
		assert.NotEmpty(t, s.Email)
		assert.False(t, seen[s.Username], "duplicate username %s", s.Username)
		seen[s.Username] = true
	}
}

func TestSeedStaffRosterIdempotent(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, "seed_roster")
	ctx := context.Background()

	require.NoError(t, seedStaffRoster(ctx, client))
	require.NoError(t, seedStaffRoster(ctx, client))

	count, err := client.User.Query().
		Where(entuser.Staff(true), entuser.Enabled(true)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(builtInStaff), count)
}
