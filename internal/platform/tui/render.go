package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// cellWidth is the number of terminal columns per board cell. Terminal
// characters are roughly twice as tall as wide.
const cellWidth = 2

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// BoardSize returns the screen area a board of n cells needs, including
// its frame and the status line below it.
func BoardSize(n int) (w, h int) {
	return n*cellWidth + 2, n + 3
}

// DrawSnapshot draws the board, HUD, status line and state overlay.
func DrawSnapshot(dst *core.Screen, s snake.Snapshot) {
	dst.Clear()

	needW, needH := BoardSize(s.BoardSize)
	if dst.Width() < needW || dst.Height() < needH {
		drawOverlay(dst, dst.Bounds(), core.ColorYellow,
			"Window too small",
			fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	frame := core.CenterIn(dst.Bounds(), needW, needH-1)
	dst.DrawBox(frame, core.ColorGray)
	drawHUD(dst, frame, s)

	inner := frame.Inset(1)
	if s.HasFood {
		drawCell(dst, inner, s.Food, "◆◆", core.ColorBrightRed)
	}
	// Tail first so the head wins if cells ever overlap.
	for i := len(s.Snake) - 1; i >= 0; i-- {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		drawCell(dst, inner, s.Snake[i], "██", color)
	}

	drawStatus(dst, frame, s)

	switch s.State {
	case snake.StateReady:
		drawOverlay(dst, inner, core.ColorCyan, "S N A K E", "Press SPACE to start")
	case snake.StatePaused:
		drawOverlay(dst, inner, core.ColorYellow, "Paused", "Press P to continue")
	case snake.StateGameOver:
		lines := []string{"Game Over"}
		if s.Result != nil {
			lines = append(lines,
				fmt.Sprintf("Score %d  Length %d", s.Result.Score, s.Result.SnakeLength),
				fmt.Sprintf("Time %s", formatSeconds(s.Result.DurationSeconds)))
		}
		lines = append(lines, "SPACE to play again")
		drawOverlay(dst, inner, core.ColorRed, lines...)
	}
}

// drawHUD embeds the score line into the top border of the frame.
func drawHUD(dst *core.Screen, frame core.Rect, s snake.Snapshot) {
	hud := fmt.Sprintf(" Score %d  Length %d  %dms ", s.Score, s.Len(), s.Interval.Milliseconds())
	maxLen := frame.W - 4
	if utf8.RuneCountInString(hud) > maxLen {
		hud = fmt.Sprintf(" %d ", s.Score)
	}
	dst.DrawText(frame.X+2, frame.Y, hud, core.ColorYellow)
}

// drawStatus writes play time and the report status below the frame.
func drawStatus(dst *core.Screen, frame core.Rect, s snake.Snapshot) {
	y := frame.Bottom()
	dst.DrawText(frame.X, y, "Time "+formatDuration(s.PlayTime), core.ColorGray)

	var msg string
	color := core.ColorGray
	switch {
	case s.Notice != "":
		msg, color = s.Notice, core.ColorRed
	case s.Report == snake.ReportPending:
		msg = "saving score..."
	case s.Report == snake.ReportSaved:
		msg, color = "score saved", core.ColorGreen
	}
	if msg == "" {
		return
	}

	// Right-align, truncating long notices to the frame width.
	room := frame.W - 12
	if room <= 0 {
		return
	}
	if n := utf8.RuneCountInString(msg); n > room {
		msg = string([]rune(msg)[:room-1]) + "…"
	}
	dst.DrawText(frame.Right()-utf8.RuneCountInString(msg), y, msg, color)
}

// drawCell paints one board cell. Cells outside the board are skipped.
func drawCell(dst *core.Screen, inner core.Rect, c snake.Cell, glyph string, color core.Color) {
	x := inner.X + c.X*cellWidth
	y := inner.Y + c.Y
	if !inner.Contains(x, y) {
		return
	}
	dst.DrawText(x, y, glyph, color)
}

// drawOverlay draws a boxed message centered in area.
func drawOverlay(dst *core.Screen, area core.Rect, color core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	box := core.CenterIn(area, width+4, len(lines)+2)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ', core.ColorDefault)
		}
	}
	dst.DrawBox(box, color)

	for i, l := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextCentered(box, box.Y+1+i, l, c)
	}
}

func formatDuration(d time.Duration) string {
	return formatSeconds(int(d / time.Second))
}

func formatSeconds(sec int) string {
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}
