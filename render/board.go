// Package render holds reference renderers for the player: Board, a pure
// state model that applies steps to a copy of the input, and Terminal,
// which draws the Board as styled text after every step.
package render

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/player"
	"github.com/katalvlaran/algostep/step"
)

// ErrUnknownStep is returned for a step type the Board does not know.
var ErrUnknownStep = errors.New("render: unknown step type")

// Board is the visual state of one replay. Every field is derived from the
// scene and the steps applied so far, so two Boards fed the same scene and
// the same steps are equal.
type Board struct {
	Scene player.Scene

	// array family
	Array  []int
	Active []int
	Sorted []bool
	Pivot  int
	Found  int
	Range  []int // [left, right] or nil
	Missed bool

	// graph and tree families
	Current     string
	FoundNode   string
	Visited     []string
	Measures    map[string]int64 // level, depth or distance from the latest visit/update
	Chosen      []string         // "from-to" of edges taken
	Skipped     []string
	Checking    string
	Unreachable []string
	Rotations   int

	Description string
	Applied     int
}

// NewBoard returns an empty Board; call Reset before rendering.
func NewBoard() *Board { return &Board{} }

// Reset implements player.Renderer.
func (b *Board) Reset(sc player.Scene) error {
	*b = Board{
		Scene:    sc,
		Array:    slices.Clone(sc.Array),
		Sorted:   make([]bool, len(sc.Array)),
		Pivot:    -1,
		Found:    -1,
		Measures: map[string]int64{},
	}
	return nil
}

// Render implements player.Renderer.
func (b *Board) Render(_ int, s step.Step) error {
	b.Active = nil
	b.Checking = ""
	switch v := s.(type) {
	case step.Compare:
		b.Active = v.Indices()
	case step.NodeCompare:
		b.Current = v.Node
	case step.Swap:
		b.Array = v.Array()
		b.Active = []int{v.I, v.J}
	case step.Merge:
		b.Array = v.Array()
		b.Active = []int{v.Index}
	case step.Sorted:
		b.markSorted(v.Index)
	case step.Pivot:
		b.Pivot = v.Index
	case step.Found:
		b.Found = v.Index
	case step.NodeFound:
		b.Current = v.Node
		b.FoundNode = v.Node
	case step.NotFound:
		b.Missed = true
	case step.Range:
		b.Range = []int{v.Left, v.Right}
	case step.Init:
		b.Current = v.Node
	case step.ArrayInit:
		b.Array = v.Array()
		b.Sorted = make([]bool, len(b.Array))
	case step.Visit:
		b.Current = v.Node
		b.Visited = append(b.Visited, v.Node)
		if v.Measure != step.MeasureNone {
			b.Measures[v.Node] = v.Value
		}
	case step.Edge:
		b.Current = v.To
		b.Chosen = append(b.Chosen, v.From+"-"+v.To)
	case step.Update:
		b.Measures[v.Node] = v.Distance
	case step.Unreachable:
		b.Unreachable = v.Nodes()
	case step.Check:
		b.Checking = v.From + "-" + v.To
	case step.Skip:
		b.Skipped = append(b.Skipped, v.From+"-"+v.To)
	case step.Rotate:
		b.Current = v.Node
		b.Rotations++
	case step.Backtrack:
		b.Current = v.Node
	default:
		return errors.Wrapf(ErrUnknownStep, "%T", s)
	}
	b.Description = s.Description()
	b.Applied++
	return nil
}

func (b *Board) markSorted(i int) {
	if i >= 0 && i < len(b.Sorted) {
		b.Sorted[i] = true
	}
}

// Clone deep-copies the board.
func (b *Board) Clone() *Board {
	c := *b
	c.Array = slices.Clone(b.Array)
	c.Active = slices.Clone(b.Active)
	c.Sorted = slices.Clone(b.Sorted)
	c.Range = slices.Clone(b.Range)
	c.Visited = slices.Clone(b.Visited)
	c.Chosen = slices.Clone(b.Chosen)
	c.Skipped = slices.Clone(b.Skipped)
	c.Unreachable = slices.Clone(b.Unreachable)
	c.Measures = make(map[string]int64, len(b.Measures))
	for k, v := range b.Measures {
		c.Measures[k] = v
	}
	return &c
}
