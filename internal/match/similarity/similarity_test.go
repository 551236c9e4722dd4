package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {

	t.Run("IdenticalStrings", func(t *testing.T) {
		assert.Equal(t, 1.0, Ratio("blooming beauty", "blooming beauty"))
	})

	t.Run("BothEmpty", func(t *testing.T) {
		assert.Equal(t, 1.0, Ratio("", ""))
	})

	t.Run("OneEmpty", func(t *testing.T) {
		assert.Equal(t, 0.0, Ratio("", "abc"))
	})

	t.Run("DisjointStrings", func(t *testing.T) {
		assert.Equal(t, 0.0, Ratio("abc", "xyz"))
	})

	t.Run("PartialOverlap", func(t *testing.T) {
		// One substitution across five runes.
		assert.InDelta(t, 0.8, Ratio("maine", "mainz"), 1e-9)
	})

	t.Run("AlwaysWithinUnitInterval", func(t *testing.T) {
		pairs := [][2]string{
			{"a", "abcdefghij"},
			{"clinic", "klinik"},
			{"42 wallaby way", "42 wallaby way sydney"},
		}
		for _, pair := range pairs {
			score := Ratio(pair[0], pair[1])
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	})
}

func TestHaversineKm(t *testing.T) {

	t.Run("SamePoint", func(t *testing.T) {
		assert.InDelta(t, 0.0, HaversineKm(28.7589, -81.3178, 28.7589, -81.3178), 1e-9)
	})

	t.Run("LakeMaryToChicago", func(t *testing.T) {
		// Roughly 1,590 km apart; well past any plausible same-business bound.
		distance := HaversineKm(28.7589, -81.3178, 41.8781, -87.6298)
		assert.InDelta(t, 1590, distance, 20)
	})

	t.Run("NeighboringAddresses", func(t *testing.T) {
		distance := HaversineKm(28.7589, -81.3178, 28.7601, -81.3190)
		assert.Less(t, distance, 1.0)
	})
}
