package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// palette maps core.Color to lipgloss styles (ANSI 256 codes).
var palette = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorGrid:      lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
	core.ColorText:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorDim:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	core.ColorSnakeHead: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
	core.ColorSnakeBody: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorSnakeTail: lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	core.ColorFood:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
	core.ColorSlow:      lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("40")),
	core.ColorFast:      lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214")),
	core.ColorVeryFast:  lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")),
	core.ColorGameOver:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	core.ColorBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := palette[c]; ok {
		return style
	}
	return palette[core.ColorDefault]
}

// RenderScreen turns a Screen into a styled string.
// Each row is split into runs of equal colour so that every run costs one
// escape sequence instead of one per cell.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		runColor := s.GetCell(0, y).Color
		run.Reset()
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				sb.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(styleFor(runColor).Render(run.String()))
		}
	}
	return sb.String()
}
