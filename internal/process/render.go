package process

// BaseZOrder is the stacking order of the first card.
const BaseZOrder = 10

// ThemeCount is the number of card color themes cycled by index.
const ThemeCount = 5

// ZOrder returns the stacking order of step index. Later steps stack above
// earlier ones.
func ZOrder(index int) int {
	return BaseZOrder + index
}

// RenderPosition is where a card is drawn on a given frame.
type RenderPosition struct {
	Y float64
	Z int
}

// Card is a step ready to be painted.
type Card struct {
	Step     Step
	Position RenderPosition
	Target   float64
	Phase    StepPhase
	Side     float64
	Theme    int
	Total    int
}

// Frame is everything a painter needs for one animation frame.
type Frame struct {
	Layout   Layout
	Progress float64
	Cards    []Card
}

// Painter draws frames.
type Painter interface {
	Paint(Frame)
}

// PainterFunc adapts a function to Painter.
type PainterFunc func(Frame)

// Paint calls f.
func (f PainterFunc) Paint(frame Frame) {
	f(frame)
}

// Renderer assembles cards from smoothed positions and hands them to a
// painter. It never mutates the steps it is given.
type Renderer struct {
	painter Painter
}

// NewRenderer returns a renderer painting to p. A nil painter only builds
// frames.
func NewRenderer(p Painter) Renderer {
	return Renderer{painter: p}
}

// Render builds the frame for steps at progress using the smoothed
// positions in s and the targets from m.
func (r Renderer) Render(layout Layout, progress float64, steps []Step, m Mapper, s *Smoother) Frame {
	cards := make([]Card, len(steps))
	for i, step := range steps {
		cards[i] = Card{
			Step: step,
			Position: RenderPosition{
				Y: s.Position(i),
				Z: ZOrder(i),
			},
			Target: m.Target(i, progress),
			Phase:  m.Phase(i, progress),
			Side:   layout.CardSide,
			Theme:  i % ThemeCount,
			Total:  len(steps),
		}
	}
	frame := Frame{Layout: layout, Progress: progress, Cards: cards}
	if r.painter != nil {
		r.painter.Paint(frame)
	}
	return frame
}
