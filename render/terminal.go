package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/algostep/algorithms"
	"github.com/katalvlaran/algostep/config"
	"github.com/katalvlaran/algostep/player"
	"github.com/katalvlaran/algostep/step"
)

// Styles are the lipgloss styles derived from a config.Theme.
type Styles struct {
	Title   lipgloss.Style
	Compare lipgloss.Style
	Swap    lipgloss.Style
	Sorted  lipgloss.Style
	Visit   lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t config.Theme) Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Visit)),
		Compare: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Compare)),
		Swap:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Swap)),
		Sorted:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Sorted)),
		Visit:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Visit)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
	}
}

// Terminal draws a Board to w after every Reset and Render.
type Terminal struct {
	w      io.Writer
	styles Styles
	board  *Board
	width  int
}

// NewTerminal renders to w with the given theme. Bars are scaled to width
// columns.
func NewTerminal(w io.Writer, theme config.Theme, width int) *Terminal {
	if width <= 0 {
		width = 40
	}
	return &Terminal{w: w, styles: NewStyles(theme), board: NewBoard(), width: width}
}

// Board returns the underlying state.
func (t *Terminal) Board() *Board { return t.board }

// Reset implements player.Renderer.
func (t *Terminal) Reset(sc player.Scene) error {
	if err := t.board.Reset(sc); err != nil {
		return err
	}
	title := string(sc.Algorithm)
	if info, err := algorithms.Lookup(sc.Algorithm); err == nil {
		title = info.Name
	}
	_, err := fmt.Fprintln(t.w, t.styles.Title.Render("▶ "+title))
	return err
}

// Render implements player.Renderer.
func (t *Terminal) Render(i int, s step.Step) error {
	if err := t.board.Render(i, s); err != nil {
		return err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", t.styles.Muted.Render(fmt.Sprintf("[%3d] %-11s", i+1, s.Kind())), s.Description())
	if t.board.Scene.Family == algorithms.FamilySorting || t.board.Scene.Family == algorithms.FamilySearching {
		b.WriteString(t.bars())
	}
	_, err := io.WriteString(t.w, b.String())
	return err
}

// bars draws one line of blocks per array element, styled by role.
func (t *Terminal) bars() string {
	a := t.board.Array
	if len(a) == 0 {
		return ""
	}
	hi := 1
	for _, v := range a {
		hi = max(hi, v)
	}
	active := map[int]bool{}
	for _, i := range t.board.Active {
		active[i] = true
	}
	var b strings.Builder
	for i, v := range a {
		n := max(1, v*t.width/hi)
		bar := strings.Repeat("█", n) + " " + strconv.Itoa(v)
		st := t.styles.Muted
		switch {
		case i == t.board.Found:
			st = t.styles.Visit
		case active[i]:
			st = t.styles.Compare
		case i == t.board.Pivot:
			st = t.styles.Swap
		case i < len(t.board.Sorted) && t.board.Sorted[i]:
			st = t.styles.Sorted
		}
		b.WriteString("  ")
		b.WriteString(st.Render(bar))
		b.WriteByte('\n')
	}
	return b.String()
}

// Summary describes the final board in one styled block.
func (t *Terminal) Summary() string {
	bd := t.board
	var lines []string
	switch bd.Scene.Family {
	case algorithms.FamilySorting, algorithms.FamilySearching:
		lines = append(lines, "array: "+fmt.Sprint(bd.Array))
	case algorithms.FamilyGraph:
		lines = append(lines, "visited: "+strings.Join(bd.Visited, " "))
		if len(bd.Chosen) > 0 {
			lines = append(lines, "edges: "+strings.Join(bd.Chosen, " "))
		}
		if len(bd.Unreachable) > 0 {
			lines = append(lines, "unreachable: "+strings.Join(bd.Unreachable, " "))
		}
	case algorithms.FamilyTree:
		lines = append(lines, "visited: "+strings.Join(bd.Visited, " "))
		if bd.Rotations > 0 {
			lines = append(lines, fmt.Sprintf("rotations: %d", bd.Rotations))
		}
	}
	lines = append(lines, fmt.Sprintf("steps applied: %d", bd.Applied))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.styles.Sorted.GetForeground()).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
