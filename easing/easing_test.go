package easing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoints(t *testing.T) {
	// every transition is exact at 0 and 1
	for _, e := range All() {
		assert.InDelta(t, 0, e.Ease(0), 1e-9, "for %s", e)
		assert.InDelta(t, 1, e.Ease(1), 1e-9, "for %s", e)
	}
}

func TestParseNames(t *testing.T) {
	for _, e := range All() {
		got, err := Parse(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}

	e, err := Parse("out_sine")
	require.NoError(t, err)
	assert.Equal(t, OutSine, e)

	_, err = Parse("sproing")
	assert.Error(t, err)
}

func TestKnownValues(t *testing.T) {
	assert.InDelta(t, 0.5, Linear.Ease(0.5), 1e-9)
	assert.InDelta(t, 0.25, InQuad.Ease(0.5), 1e-9)
	assert.InDelta(t, 0.75, OutQuad.Ease(0.5), 1e-9)
	assert.InDelta(t, 0.5, InOutCubic.Ease(0.5), 1e-9)
	assert.InDelta(t, 0.875, OutCubic.Ease(0.5), 1e-9)
}

func TestOvershoot(t *testing.T) {
	// back and elastic leave [0,1] in the interior
	overshoots := func(e Easing) bool {
		for i := 1; i < 100; i++ {
			v := e.Ease(float64(i) / 100)
			if v < 0 || v > 1 {
				return true
			}
		}
		return false
	}
	assert.True(t, overshoots(InBack))
	assert.True(t, overshoots(OutElastic))
	assert.False(t, overshoots(OutSine))
	assert.False(t, overshoots(OutBounce))
}
