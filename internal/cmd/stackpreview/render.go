package stackpreview

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/volt-agency/site/internal/process"
)

const (
	minCols     = 32
	minRows     = 8
	minCardRows = 4
	cardMargin  = 2
	helpText    = "j/k scroll  f/b page  g/G start/end  l language  w width  q quit"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#d4ff00"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)

// cardThemes mirror the site's five card backgrounds.
var cardThemes = [process.ThemeCount]lipgloss.Style{
	lipgloss.NewStyle().Background(lipgloss.Color("#d4ff00")).Foreground(lipgloss.Color("#0a0a0a")),
	lipgloss.NewStyle().Background(lipgloss.Color("#ffffff")).Foreground(lipgloss.Color("#0a0a0a")),
	lipgloss.NewStyle().Background(lipgloss.Color("#111111")).Foreground(lipgloss.Color("#f5f5f0")),
	lipgloss.NewStyle().Background(lipgloss.Color("#00d1ff")).Foreground(lipgloss.Color("#0a0a0a")),
	lipgloss.NewStyle().Background(lipgloss.Color("#ff4d6d")).Foreground(lipgloss.Color("#0a0a0a")),
}

// renderStack draws frame onto a cols x rows grid. One row stands for
// pxPerRow pixels, so settled cards sit one row apart and each earlier card
// keeps its title row visible above the next.
func renderStack(frame process.Frame, pxPerRow float64, cols, rows int) string {
	cols = max(cols, minCols)
	rows = max(rows, minRows)
	if !(pxPerRow > 0) || math.IsInf(pxPerRow, 0) {
		pxPerRow = process.DefaultStackOffset
	}
	canvas := make([]string, rows)

	cards := slices.Clone(frame.Cards)
	slices.SortStableFunc(cards, func(a, b process.Card) int {
		return a.Position.Z - b.Position.Z
	})

	width := cols - 2*cardMargin
	indent := strings.Repeat(" ", cardMargin)
	for _, card := range cards {
		if math.IsNaN(card.Position.Y) || math.IsInf(card.Position.Y, 0) {
			continue
		}
		top := int(math.Round(card.Position.Y / pxPerRow))
		if top >= rows {
			continue
		}
		height := min(max(int(math.Round(card.Side/pxPerRow)), minCardRows), rows)
		lines := cardLines(card, width, height)
		style := cardThemes[card.Theme%process.ThemeCount].Width(width).MaxWidth(width)
		for k, line := range lines {
			row := top + k
			if row < 0 || row >= rows {
				continue
			}
			canvas[row] = indent + style.Render(line)
		}
	}
	return strings.Join(canvas, "\n")
}

// cardLines lays out one card as height text rows of at most width cells.
func cardLines(card process.Card, width, height int) []string {
	inner := width - 2
	lines := make([]string, height)
	lines[0] = " " + fit(card.Step.Ordinal+"  "+strings.ToUpper(card.Step.Title), inner)
	lines[1] = " " + fit(fmt.Sprintf("Step %d/%d  %s", card.Step.Index+1, card.Total, card.Phase), inner)

	body := strings.Split(lipgloss.NewStyle().Width(inner).Render(card.Step.Description), "\n")
	for i, line := range body {
		row := 2 + i
		if row >= height-1 {
			break
		}
		lines[row] = " " + fit(line, inner)
	}

	counter := fmt.Sprintf("%d/%d", card.Step.Index+1, card.Total)
	brand := "VOLT / PROCESS"
	gap := max(inner-len(brand)-len(counter), 1)
	lines[height-1] = " " + fit(brand+strings.Repeat(" ", gap)+counter, inner)
	return lines
}

// fit truncates s to n runes.
func fit(s string, n int) string {
	r := []rune(strings.TrimRight(s, " "))
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-1]) + "…"
}
