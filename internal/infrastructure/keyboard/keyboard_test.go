package keyboard

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/samurai-duel/internal/domain/input"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.Key
	}{
		{"Space", ebiten.KeySpace},
		{"A", ebiten.KeyA},
		{"ArrowLeft", ebiten.KeyArrowLeft},
		{"Enter", ebiten.KeyEnter},
		{"Tab", ebiten.KeyTab},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := ParseKey(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, k)
		})
	}

	_, err := ParseKey("Hyper")
	assert.Error(t, err)
}

func TestNewKeymap(t *testing.T) {
	_, err := NewKeymap(map[string][]string{"dodge": {"S"}})
	assert.Error(t, err)

	_, err = NewKeymap(map[string][]string{"jump": {"Hyper"}})
	assert.Error(t, err)

	km, err := NewKeymap(map[string][]string{"jump": {"W", "ArrowUp"}, "debug": nil})
	require.NoError(t, err)
	assert.Len(t, km.bindings, 1)
}

func TestKeymap_Events(t *testing.T) {
	km, err := NewKeymap(map[string][]string{
		"start":  {"Space", "Enter"},
		"attack": {"Space"},
		"left":   {"A", "ArrowLeft"},
	})
	require.NoError(t, err)

	keys := func(ks ...ebiten.Key) func(ebiten.Key) bool {
		return func(k ebiten.Key) bool {
			for _, x := range ks {
				if x == k {
					return true
				}
			}
			return false
		}
	}

	t.Run("shared key fires start before attack", func(t *testing.T) {
		events := km.events(keys(ebiten.KeySpace), keys())
		assert.Equal(t, []input.Event{input.Press(input.ActionStart), input.Press(input.ActionAttack)}, events)
	})

	t.Run("two keys for one action fire once", func(t *testing.T) {
		events := km.events(keys(ebiten.KeyA, ebiten.KeyArrowLeft), keys())
		assert.Equal(t, []input.Event{input.Press(input.ActionLeft)}, events)
	})

	t.Run("release", func(t *testing.T) {
		events := km.events(keys(), keys(ebiten.KeyArrowLeft))
		assert.Equal(t, []input.Event{input.Release(input.ActionLeft)}, events)
	})

	t.Run("idle", func(t *testing.T) {
		assert.Empty(t, km.events(keys(), keys()))
	})
}
