package slugs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnique(t *testing.T) {
	used := map[string]bool{"stage-ete": true, "stage-ete-2": true}
	taken := func(_ context.Context, s string) (bool, error) { return used[s], nil }

	s, err := Unique(context.Background(), "Stage Été", taken)
	require.NoError(t, err)
	assert.Equal(t, "stage-ete-3", s)

	s, err = Unique(context.Background(), "Nouveau Club", taken)
	require.NoError(t, err)
	assert.Equal(t, "nouveau-club", s)
}

func TestUnique_EmptyTitle(t *testing.T) {
	s, err := Unique(context.Background(), "!!!", func(context.Context, string) (bool, error) { return false, nil })
	require.NoError(t, err)
	assert.Equal(t, "item", s)
}
