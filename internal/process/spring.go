package process

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// DefaultFPS is the frame rate the smoother integrates at.
const DefaultFPS = 60

// SpringConfig describes the physical spring shared by every card.
type SpringConfig struct {
	Damping   float64
	Stiffness float64
	Mass      float64
}

// DefaultSpring returns the section's spring constants.
func DefaultSpring() SpringConfig {
	return SpringConfig{Damping: 34, Stiffness: 95, Mass: 1.05}
}

func (c SpringConfig) valid() bool {
	return finite(c.Damping) && finite(c.Stiffness) && finite(c.Mass) &&
		c.Damping >= 0 && c.Stiffness > 0 && c.Mass > 0
}

// AngularFrequency returns sqrt(stiffness/mass).
func (c SpringConfig) AngularFrequency() float64 {
	return math.Sqrt(c.Stiffness / c.Mass)
}

// DampingRatio returns damping / (2*sqrt(stiffness*mass)).
func (c SpringConfig) DampingRatio() float64 {
	return c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))
}

// Smoother filters each card's raw target through a damped spring so that
// jumps in the target become continuous motion. Call Step once per frame.
type Smoother struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
}

// NewSmoother returns a smoother for n cards integrating at fps frames per
// second. Invalid spring constants fall back to DefaultSpring.
func NewSmoother(cfg SpringConfig, fps, n int) *Smoother {
	if !cfg.valid() {
		cfg = DefaultSpring()
	}
	if fps <= 0 {
		fps = DefaultFPS
	}
	s := &Smoother{
		spring: harmonica.NewSpring(harmonica.FPS(fps), cfg.AngularFrequency(), cfg.DampingRatio()),
	}
	s.Resize(n)
	return s
}

// Len returns the number of tracked cards.
func (s *Smoother) Len() int {
	return len(s.pos)
}

// Resize grows or shrinks the tracked set, keeping existing positions.
func (s *Smoother) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n == len(s.pos) {
		return
	}
	pos := make([]float64, n)
	vel := make([]float64, n)
	copy(pos, s.pos)
	copy(vel, s.vel)
	s.pos = pos
	s.vel = vel
}

// Snap places card i at target with zero velocity.
func (s *Smoother) Snap(i int, target float64) {
	if i < 0 || i >= len(s.pos) || !finite(target) {
		return
	}
	s.pos[i] = target
	s.vel[i] = 0
}

// Step advances card i one frame toward target and returns its position.
// A non-finite target leaves the card where it is.
func (s *Smoother) Step(i int, target float64) float64 {
	if i < 0 || i >= len(s.pos) {
		return 0
	}
	if !finite(target) {
		return s.pos[i]
	}
	p, v := s.spring.Update(s.pos[i], s.vel[i], target)
	if !finite(p) || !finite(v) {
		s.Snap(i, target)
		return target
	}
	s.pos[i] = p
	s.vel[i] = v
	return p
}

// Position returns card i's current position.
func (s *Smoother) Position(i int) float64 {
	if i < 0 || i >= len(s.pos) {
		return 0
	}
	return s.pos[i]
}

// Velocity returns card i's current velocity.
func (s *Smoother) Velocity(i int) float64 {
	if i < 0 || i >= len(s.vel) {
		return 0
	}
	return s.vel[i]
}
