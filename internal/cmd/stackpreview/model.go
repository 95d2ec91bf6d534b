package stackpreview

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/volt-agency/site/internal/platform/i18n"
	"github.com/volt-agency/site/internal/process"
)

const (
	// narrowWidth is the phone width the "w" key switches to.
	narrowWidth = 390
	// wideWidth is used when the configured window is already narrow.
	wideWidth = 1280

	lineFraction = 0.05
	pageFraction = 0.5
)

type tickMsg time.Time

func tickCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// window is the simulated browser window the stage reads on mount.
type window struct {
	vp  process.Viewport
	top float64
}

func (w *window) Viewport() process.Viewport { return w.vp }

func (w *window) SectionTop() float64 { return w.top }

// Model is the bubbletea model of the preview. The stage, language signal
// and window are shared by every copy of the model.
type Model struct {
	stage     *process.Stage
	lang      *process.Signal[i18n.Code]
	win       *window
	tuning    process.Tuning
	baseWidth float64
	fps       int

	frame    process.Frame
	cols     int
	rows     int
	quitting bool
}

// NewModel mounts a stage over source with the window described by cfg.
func NewModel(source process.StepSource, cfg Config) Model {
	fps := cfg.FPS
	if fps <= 0 {
		fps = process.DefaultFPS
	}
	stageCfg := process.DefaultStageConfig()
	stageCfg.FPS = fps

	lang := process.NewSignal(i18n.Normalize(cfg.Lang))
	win := &window{
		vp:  process.Viewport{Width: cfg.Width, Height: cfg.Height},
		top: cfg.Top,
	}
	stage := process.NewStage(stageCfg, source, win, lang, nil)
	stage.Mount()

	return Model{
		stage:     stage,
		lang:      lang,
		win:       win,
		tuning:    stageCfg.Tuning,
		baseWidth: cfg.Width,
		fps:       fps,
		frame:     stage.Frame(),
		cols:      80,
		rows:      24,
	}
}

// Close unmounts the stage.
func (m Model) Close() {
	m.stage.Unmount()
}

// Frame returns the last painted frame.
func (m Model) Frame() process.Frame {
	return m.frame
}

// Progress returns the stage's scroll progress.
func (m Model) Progress() float64 {
	return m.stage.Progress()
}

// Language returns the language the cards currently show.
func (m Model) Language() i18n.Code {
	return m.stage.Language()
}

// ScrollY returns the simulated scroll offset.
func (m Model) ScrollY() float64 {
	return m.win.vp.ScrollY
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		m.frame = m.stage.Frame()
		return m, tickCmd(m.fps)
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if isQuit(msg) {
		m.quitting = true
		m.stage.Unmount()
		return m, tea.Quit
	}
	vh := m.win.vp.Height
	switch msg.String() {
	case "down", "j":
		m.scrollTo(m.win.vp.ScrollY + vh*lineFraction)
	case "up", "k":
		m.scrollTo(m.win.vp.ScrollY - vh*lineFraction)
	case "pgdown", " ", "f":
		m.scrollTo(m.win.vp.ScrollY + vh*pageFraction)
	case "pgup", "b":
		m.scrollTo(m.win.vp.ScrollY - vh*pageFraction)
	case "home", "g":
		m.scrollTo(0)
	case "end", "G":
		m.scrollTo(m.stage.Layout().Range.End)
	case "l":
		m.lang.Set(nextLanguage(m.lang.Get()))
	case "w":
		m.toggleWidth()
	}
	return m, nil
}

// scrollTo moves the window, keeping it between the top of the document and
// one viewport past the end of the section.
func (m Model) scrollTo(y float64) {
	limit := m.stage.Layout().Range.End + m.win.vp.Height
	if y > limit {
		y = limit
	}
	if y < 0 {
		y = 0
	}
	m.win.vp.ScrollY = y
	m.stage.OnScroll(y)
}

func (m Model) toggleWidth() {
	next := float64(narrowWidth)
	if process.ClassFor(m.win.vp.Width) == process.ViewportNarrow {
		next = m.baseWidth
		if process.ClassFor(next) == process.ViewportNarrow {
			next = wideWidth
		}
	}
	m.win.vp.Width = next
	m.stage.OnResize(m.win.vp)
}

func nextLanguage(current i18n.Code) i18n.Code {
	codes := i18n.Supported()
	for i, code := range codes {
		if code == current {
			return codes[(i+1)%len(codes)]
		}
	}
	return i18n.Default()
}

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	layout := m.frame.Layout
	status := fmt.Sprintf("%s  %s %.0fx%.0f  scroll %.0f  progress %.3f",
		m.Language().Label(), layout.Class, m.win.vp.Width, m.win.vp.Height, m.win.vp.ScrollY, m.frame.Progress)
	body := renderStack(m.frame, m.tuning.StackOffset, m.cols, m.rows-2)
	return headerStyle.Render("VOLT / PROCESS") + "  " + statusStyle.Render(status) + "\n" +
		body + "\n" +
		helpStyle.Render(helpText)
}
