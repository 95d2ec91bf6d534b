package process

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSpringCoefficients(t *testing.T) {
	t.Parallel()

	cfg := DefaultSpring()
	assert.InDelta(t, math.Sqrt(95/1.05), cfg.AngularFrequency(), 1e-12)
	assert.InDelta(t, 1.7021, cfg.DampingRatio(), 1e-3)
	assert.Greater(t, cfg.DampingRatio(), 1.0, "default spring is overdamped")
}

func TestSmootherConvergesToTarget(t *testing.T) {
	t.Parallel()

	s := NewSmoother(DefaultSpring(), DefaultFPS, 1)
	for frame := 0; frame < 10*DefaultFPS; frame++ {
		s.Step(0, 100)
	}
	assert.InDelta(t, 100, s.Position(0), 0.01)
	assert.InDelta(t, 0, s.Velocity(0), 0.01)
}

func TestSmootherIsContinuousAcrossTargetJumps(t *testing.T) {
	t.Parallel()

	s := NewSmoother(DefaultSpring(), DefaultFPS, 1)
	s.Snap(0, 100)

	prev := s.Position(0)
	for frame := 0; frame < 3*DefaultFPS; frame++ {
		target := 2000.0
		if frame >= DefaultFPS {
			target = 24
		}
		pos := s.Step(0, target)
		assert.Less(t, math.Abs(pos-prev), 200.0, "frame %d jumped", frame)
		prev = pos
	}

	s.Snap(0, 100)
	first := s.Step(0, 2000)
	assert.Greater(t, math.Abs(2000-first), 1000.0)
}

func TestSmootherDoesNotOvershootFromRest(t *testing.T) {
	t.Parallel()

	s := NewSmoother(DefaultSpring(), DefaultFPS, 1)
	s.Snap(0, 2580)
	for frame := 0; frame < 5*DefaultFPS; frame++ {
		pos := s.Step(0, 48)
		require.GreaterOrEqual(t, pos, 48.0-1e-9, "frame %d", frame)
	}
}

func TestSmootherSnapAndIgnoreNaN(t *testing.T) {
	t.Parallel()

	s := NewSmoother(DefaultSpring(), DefaultFPS, 2)
	s.Snap(1, 72)
	assert.Equal(t, 72.0, s.Position(1))
	assert.Equal(t, 0.0, s.Velocity(1))

	assert.Equal(t, 72.0, s.Step(1, math.NaN()))
	s.Snap(1, math.Inf(1))
	assert.Equal(t, 72.0, s.Position(1))

	assert.Equal(t, 0.0, s.Step(5, 10))
	assert.Equal(t, 0.0, s.Position(-1))
}

func TestSmootherResizeKeepsPositions(t *testing.T) {
	t.Parallel()

	s := NewSmoother(DefaultSpring(), DefaultFPS, 2)
	s.Snap(0, 10)
	s.Snap(1, 20)

	s.Resize(4)
	require.Equal(t, 4, s.Len())
	assert.Equal(t, 10.0, s.Position(0))
	assert.Equal(t, 20.0, s.Position(1))
	assert.Equal(t, 0.0, s.Position(3))

	s.Resize(1)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 10.0, s.Position(0))
}

func TestSmootherInvalidConfigFallsBack(t *testing.T) {
	t.Parallel()

	s := NewSmoother(SpringConfig{Damping: math.NaN()}, 0, 1)
	for frame := 0; frame < 10*DefaultFPS; frame++ {
		s.Step(0, 50)
	}
	assert.InDelta(t, 50, s.Position(0), 0.01)
}
