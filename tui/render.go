package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marisvali/blockfall/world"
)

// pieceColors is indexed by cell value, which is the piece type.
var pieceColors = [world.NumPieceTypes + 1]lipgloss.Color{
	"",
	world.PieceT: "93",
	world.PieceI: "51",
	world.PieceS: "46",
	world.PieceZ: "196",
	world.PieceL: "208",
	world.PieceJ: "21",
	world.PieceO: "226",
}

var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("15"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	textStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
)

const (
	cellText  = "██"
	ghostText = "░░"
	emptyText = " ."
)

func renderCell(val int) string {
	if val <= 0 || val >= len(pieceColors) {
		return emptyStyle.Render(emptyText)
	}
	return lipgloss.NewStyle().Foreground(pieceColors[val]).Render(cellText)
}

func renderBoard(s *world.Snapshot) string {
	var b strings.Builder
	var pt world.Pt
	for pt.Y = 0; pt.Y < len(s.Field); pt.Y++ {
		for pt.X = 0; pt.X < len(s.Field[pt.Y]); pt.X++ {
			val := s.Cell(pt)
			if val == 0 && s.IsGhost(pt) {
				b.WriteString(lipgloss.NewStyle().
					Foreground(pieceColors[s.ActiveType]).Render(ghostText))
				continue
			}
			b.WriteString(renderCell(val))
		}
		if pt.Y < len(s.Field)-1 {
			b.WriteString("\n")
		}
	}
	return borderStyle.Render(b.String())
}

// renderPreview draws the next piece in a 4x4 box, the size of the largest
// shape.
func renderPreview(shape [][]int) string {
	var b strings.Builder
	for y := range 4 {
		for x := range 4 {
			val := 0
			if y < len(shape) && x < len(shape[y]) {
				val = shape[y][x]
			}
			if val == 0 {
				b.WriteString("  ")
			} else {
				b.WriteString(renderCell(val))
			}
		}
		if y < 3 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderInfo(m *Model, s *world.Snapshot) string {
	lines := []string{
		titleStyle.Render("NEXT"),
		renderPreview(s.Next),
		"",
		textStyle.Render(fmt.Sprintf("SCORE %d", s.Score)),
		textStyle.Render(fmt.Sprintf("LINES %d", s.Lines)),
		textStyle.Render(fmt.Sprintf("LEVEL %d", s.Level)),
		textStyle.Render(fmt.Sprintf("SPEED %dms", s.DropIntervalMs)),
		textStyle.Render(fmt.Sprintf("BEST  %d", m.bestScore)),
		"",
	}
	switch {
	case s.State == world.GameOver:
		lines = append(lines,
			titleStyle.Render("GAME OVER"),
			textStyle.Render(fmt.Sprintf("final score %d", s.FinalScore)),
			helpStyle.Render("r to restart"))
	case m.paused:
		lines = append(lines, titleStyle.Render("PAUSED"),
			helpStyle.Render("p to continue"))
	case m.Flash() != "":
		lines = append(lines, titleStyle.Render(m.Flash()))
	}
	lines = append(lines, "",
		helpStyle.Render("←→ move  ↑ rotate  z rotate back"),
		helpStyle.Render("↓ soft drop  space hard drop"),
		helpStyle.Render("p pause  r restart  esc quit"))
	return lipgloss.NewStyle().PaddingLeft(2).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) View() string {
	s := m.world.Snapshot()
	content := lipgloss.JoinHorizontal(lipgloss.Top, renderBoard(&s), renderInfo(&m, &s))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
