package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	taxonomy := []string{"person", "ships", "ship", "car"}

	ranked := Rank("Ship", taxonomy)
	require.Len(t, ranked, 4)

	// Equal scores keep taxonomy order.
	assert.Equal(t, 1, ranked[0].ID)
	assert.Equal(t, 2, ranked[1].ID)
	assert.InDelta(t, 1.0, ranked[0].Score, 1e-9)
	assert.InDelta(t, 1.0, ranked[1].Score, 1e-9)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}

	best := ranked.Best()
	require.NotNil(t, best)
	assert.Equal(t, "ships", best.Name)

	assert.Len(t, ranked.AboveThreshold(0.6), 2)
	assert.Len(t, ranked.Top(1), 1)
	assert.Len(t, ranked.Top(10), 4)
	assert.Equal(t, "ships (ID: 1), ship (ID: 2)", ranked.Top(2).String())
}

func TestRank_Empty(t *testing.T) {
	ranked := Rank("ship", nil)

	assert.Empty(t, ranked)
	assert.Nil(t, ranked.Best())
	assert.Empty(t, ranked.AboveThreshold(0))
}
