package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/samurai-duel/internal/domain/geom"
)

func TestFrameAreas_At(t *testing.T) {
	all := geom.Rect{Left: -20, Top: -40, Right: 20, Bottom: 30}
	areas := FrameAreas{
		All:    &all,
		Frames: map[int]geom.Rect{3: {Left: -10, Top: -10, Right: 10, Bottom: 10}},
	}

	r, ok := areas.At(0)
	require.True(t, ok)
	assert.Equal(t, all, r)

	r, ok = areas.At(3)
	require.True(t, ok)
	assert.Equal(t, 10.0, r.Right)

	_, ok = FrameAreas{}.At(0)
	assert.False(t, ok)
}

func TestParseState(t *testing.T) {
	for _, s := range States {
		got, err := ParseState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseState("dash")
	assert.Error(t, err)
	assert.Equal(t, "unknown", State(42).String())
}

func TestArchetype_Variants(t *testing.T) {
	arch := createTestArchetype()

	assert.Equal(t, 2, arch.Variants(Attack))
	assert.Equal(t, 1, arch.Variants(Idle))
	assert.NoError(t, arch.Validate())

	var missing *Archetype
	assert.Error(t, missing.Validate())
}
