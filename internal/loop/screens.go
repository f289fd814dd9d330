package loop

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/among-the-stars/internal/draw"
	"github.com/tomz197/among-the-stars/internal/object"
)

const barWidth = 20

// styles holds the lipgloss styles bound to one output's color profile.
type styles struct {
	fuel    lipgloss.Style
	oxygen  lipgloss.Style
	label   lipgloss.Style
	warn    lipgloss.Style
	title   lipgloss.Style
	dim     lipgloss.Style
	docking lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		fuel:    r.NewStyle().Foreground(lipgloss.Color("11")),
		oxygen:  r.NewStyle().Foreground(lipgloss.Color("12")),
		label:   r.NewStyle().Bold(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		title:   r.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		dim:     r.NewStyle().Faint(true),
		docking: r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	}
}

// bar renders a resource gauge like [#######.....].
func bar(value, limit float64, width int) string {
	filled := int(math.Round(value / limit * float64(width)))
	filled = min(max(filled, 0), width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

// padRight pads s with spaces to width visible cells so stale characters
// from the previous frame are overwritten.
func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// writeCentered writes s centered on row.
func writeCentered(cw *draw.ChunkWriter, termWidth, row int, s string) {
	col := (termWidth-lipgloss.Width(s))/2 + 1
	cw.WriteAt(max(col, 1), row, s)
}

// drawHUD draws the two status rows below the canvas.
func (g *Game) drawHUD(termWidth, row int) {
	st := g.state.Status
	sty := g.styles

	fuel := sty.fuel.Render(fmt.Sprintf("FUEL %s %3.0f", bar(st.Fuel, object.MaxResource, barWidth), st.Fuel))
	oxygenStyle := sty.oxygen
	if st.Oxygen < 20 {
		oxygenStyle = sty.warn
	}
	oxygen := oxygenStyle.Render(fmt.Sprintf("OXYGEN %s %3.0f", bar(st.Oxygen, object.MaxResource, barWidth), st.Oxygen))
	line := fuel + "  " + oxygen
	if st.Burning {
		line += "  " + sty.dim.Render("thrust")
	}
	g.cw.WriteAt(1, row, padRight(line, termWidth))

	info := fmt.Sprintf("%s %d  %s %.0f  %s %.0f  x:%.0f y:%.0f",
		sty.label.Render("LEVEL"), g.session.Level(),
		sty.label.Render("SCORE"), st.Score,
		sty.label.Render("TOTAL"), g.session.TotalScore(st.Score),
		st.Position.X, st.Position.Y)
	if st.Docked {
		info += "  " + sty.docking.Render(fmt.Sprintf("BOARDING IN %.0fs", math.Max(st.BoardingCountdown, 0)))
	}
	help := sty.dim.Render("WASD/arrows thrust  SPACE brake  Q quit")
	gap := termWidth - lipgloss.Width(info) - lipgloss.Width(help)
	if gap >= 2 {
		info += strings.Repeat(" ", gap) + help
	}
	g.cw.WriteAt(1, row+1, padRight(info, termWidth))
}

// drawWinScreen draws the level-complete banner. The banner fades in and
// out over WinScreenSeconds.
func (g *Game) drawWinScreen(termWidth, centerY int) {
	phase := g.state.WinTimer / WinScreenSeconds * winFadeCycles * math.Pi
	shade := string(draw.ShadeLevel(math.Abs(math.Sin(phase))))
	banner := strings.Repeat(shade, 30)

	writeCentered(g.cw, termWidth, centerY-3, banner)
	writeCentered(g.cw, termWidth, centerY-1, g.styles.title.Render("YOU MADE IT ABOARD"))
	writeCentered(g.cw, termWidth, centerY, fmt.Sprintf("Level %d complete, +%.0f points", g.session.Level()-1, g.state.LevelScore))
	writeCentered(g.cw, termWidth, centerY+1, fmt.Sprintf("Total score %.0f", g.session.WonScore()))
	remaining := int(math.Ceil(WinScreenSeconds - g.state.WinTimer))
	writeCentered(g.cw, termWidth, centerY+3, g.styles.dim.Render(fmt.Sprintf("Next level in %d  (ENTER to skip)", max(remaining, 0))))
	writeCentered(g.cw, termWidth, centerY+5, banner)
}

// drawDeadScreen draws the game over prompt.
func (g *Game) drawDeadScreen(termWidth, centerY int) {
	writeCentered(g.cw, termWidth, centerY-2, g.styles.warn.Render("LOST AMONG THE STARS"))
	writeCentered(g.cw, termWidth, centerY, fmt.Sprintf("Reached level %d with %.0f points", g.session.Level(), g.session.TotalScore(g.state.Status.Score)))
	writeCentered(g.cw, termWidth, centerY+2, g.styles.title.Render("Continue? [Y/N]"))
}
