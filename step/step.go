package step

import (
	"fmt"
	"slices"
)

// Step is one immutable event in an algorithm's execution.
//
// The set of implementations is closed; switch on the concrete type (or on
// Kind) to render a step. Slice payloads are copied on construction and on
// read, so a Step never aliases the algorithm's working array.
type Step interface {
	Kind() Kind
	// Description is the human-readable narration shown next to the frame.
	Description() string
	// String is a compact, deterministic rendering used by golden tests.
	String() string

	isStep()
}

// Measure qualifies the number carried by a Visit.
type Measure uint8

const (
	MeasureNone Measure = iota
	MeasureDistance
	MeasureLevel
	MeasureDepth
)

func (m Measure) String() string {
	switch m {
	case MeasureDistance:
		return "distance"
	case MeasureLevel:
		return "level"
	case MeasureDepth:
		return "depth"
	default:
		return ""
	}
}

// Direction of an AVL rotation.
type Direction uint8

const (
	RotateLeft Direction = iota + 1
	RotateRight
)

func (d Direction) String() string {
	switch d {
	case RotateLeft:
		return "left"
	case RotateRight:
		return "right"
	default:
		return "unknown"
	}
}

type desc string

func (d desc) Description() string { return string(d) }
func (desc) isStep() {}

// Compare marks one or two array indices being compared.
type Compare struct {
	desc
	indices []int
}

// NewCompare records a comparison of the given indices (one or two).
func NewCompare(description string, indices ...int) Compare {
	return Compare{desc: desc(description), indices: slices.Clone(indices)}
}

func (Compare) Kind() Kind { return KindCompare }
func (c Compare) Indices() []int { return slices.Clone(c.indices) }
func (c Compare) String() string { return fmt.Sprintf("compare %v", c.indices) }

// NodeCompare marks a tree node being compared against the value in flight.
type NodeCompare struct {
	desc
	Node  string
	Value int
}

func NewNodeCompare(description, node string, value int) NodeCompare {
	return NodeCompare{desc: desc(description), Node: node, Value: value}
}

func (NodeCompare) Kind() Kind { return KindCompare }
func (c NodeCompare) String() string {
	return fmt.Sprintf("compare node=%s value=%d", c.Node, c.Value)
}

// Swap exchanges two indices; the snapshot is the array after the exchange.
type Swap struct {
	desc
	I, J  int
	array []int
}

func NewSwap(description string, i, j int, snapshot []int) Swap {
	return Swap{desc: desc(description), I: i, J: j, array: slices.Clone(snapshot)}
}

func (Swap) Kind() Kind { return KindSwap }
func (s Swap) Array() []int { return slices.Clone(s.array) }
func (s Swap) String() string { return fmt.Sprintf("swap [%d %d] %v", s.I, s.J, s.array) }

// Merge writes one index; the snapshot is the array after the write.
type Merge struct {
	desc
	Index int
	array []int
}

func NewMerge(description string, index int, snapshot []int) Merge {
	return Merge{desc: desc(description), Index: index, array: slices.Clone(snapshot)}
}

func (Merge) Kind() Kind { return KindMerge }
func (m Merge) Array() []int { return slices.Clone(m.array) }
func (m Merge) String() string { return fmt.Sprintf("merge %d %v", m.Index, m.array) }

// Sorted marks an index as holding its final value.
type Sorted struct {
	desc
	Index int
}

func NewSorted(description string, index int) Sorted {
	return Sorted{desc: desc(description), Index: index}
}

func (Sorted) Kind() Kind { return KindSorted }
func (s Sorted) String() string { return fmt.Sprintf("sorted %d", s.Index) }

// Pivot marks the partition pivot.
type Pivot struct {
	desc
	Index int
}

func NewPivot(description string, index int) Pivot {
	return Pivot{desc: desc(description), Index: index}
}

func (Pivot) Kind() Kind { return KindPivot }
func (p Pivot) String() string { return fmt.Sprintf("pivot %d", p.Index) }

// Found reports the array index holding the target.
type Found struct {
	desc
	Index int
}

func NewFound(description string, index int) Found {
	return Found{desc: desc(description), Index: index}
}

func (Found) Kind() Kind { return KindFound }
func (f Found) String() string { return fmt.Sprintf("found %d", f.Index) }

// NodeFound reports the tree node holding the target.
type NodeFound struct {
	desc
	Node string
}

func NewNodeFound(description, node string) NodeFound {
	return NodeFound{desc: desc(description), Node: node}
}

func (NodeFound) Kind() Kind { return KindFound }
func (f NodeFound) String() string { return "found node=" + f.Node }

// NotFound is the terminal step of an unsuccessful search.
type NotFound struct {
	desc
	Target int
}

func NewNotFound(description string, target int) NotFound {
	return NotFound{desc: desc(description), Target: target}
}

func (NotFound) Kind() Kind { return KindNotFound }
func (n NotFound) String() string { return fmt.Sprintf("notFound target=%d", n.Target) }

// Range is the closed interval still under consideration.
type Range struct {
	desc
	Left, Right int
}

func NewRange(description string, left, right int) Range {
	return Range{desc: desc(description), Left: left, Right: right}
}

func (Range) Kind() Kind { return KindRange }
func (r Range) String() string { return fmt.Sprintf("range [%d %d]", r.Left, r.Right) }

// Init starts a graph algorithm at Node. Node may be empty.
type Init struct {
	desc
	Node string
}

func NewInit(description, node string) Init {
	return Init{desc: desc(description), Node: node}
}

func (Init) Kind() Kind { return KindInit }
func (i Init) String() string {
	if i.Node == "" {
		return "init"
	}
	return "init " + i.Node
}

// ArrayInit publishes a full array before a search runs over it.
type ArrayInit struct {
	desc
	array []int
}

func NewArrayInit(description string, snapshot []int) ArrayInit {
	return ArrayInit{desc: desc(description), array: slices.Clone(snapshot)}
}

func (ArrayInit) Kind() Kind { return KindInit }
func (a ArrayInit) Array() []int { return slices.Clone(a.array) }
func (a ArrayInit) String() string { return fmt.Sprintf("init %v", a.array) }

// Visit marks a node as visited, optionally with a distance, level or depth.
type Visit struct {
	desc
	Node    string
	Measure Measure
	Value   int64
}

func NewVisit(description, node string) Visit {
	return Visit{desc: desc(description), Node: node}
}

func NewMeasuredVisit(description, node string, m Measure, value int64) Visit {
	return Visit{desc: desc(description), Node: node, Measure: m, Value: value}
}

func (Visit) Kind() Kind { return KindVisit }
func (v Visit) String() string {
	if v.Measure == MeasureNone {
		return "visit " + v.Node
	}
	return fmt.Sprintf("visit %s %s=%d", v.Node, v.Measure, v.Value)
}

// Edge marks an edge as traversed or accepted.
type Edge struct {
	desc
	From, To string
	Weight   int64
}

func NewEdge(description, from, to string, weight int64) Edge {
	return Edge{desc: desc(description), From: from, To: to, Weight: weight}
}

func (Edge) Kind() Kind { return KindEdge }
func (e Edge) String() string { return fmt.Sprintf("edge %s->%s w=%d", e.From, e.To, e.Weight) }

// Update lowers a node's tentative distance.
type Update struct {
	desc
	Node     string
	Distance int64
}

func NewUpdate(description, node string, distance int64) Update {
	return Update{desc: desc(description), Node: node, Distance: distance}
}

func (Update) Kind() Kind { return KindUpdate }
func (u Update) String() string {
	return fmt.Sprintf("update %s distance=%d", u.Node, u.Distance)
}

// Unreachable lists the nodes left without a finite distance or tree edge.
type Unreachable struct {
	desc
	nodes []string
}

func NewUnreachable(description string, nodes []string) Unreachable {
	return Unreachable{desc: desc(description), nodes: slices.Clone(nodes)}
}

func (Unreachable) Kind() Kind { return KindUnreachable }
func (u Unreachable) Nodes() []string { return slices.Clone(u.nodes) }
func (u Unreachable) String() string { return fmt.Sprintf("unreachable %v", u.nodes) }

// Check marks a candidate edge under consideration.
type Check struct {
	desc
	From, To string
	Weight   int64
}

func NewCheck(description, from, to string, weight int64) Check {
	return Check{desc: desc(description), From: from, To: to, Weight: weight}
}

func (Check) Kind() Kind { return KindCheck }
func (c Check) String() string { return fmt.Sprintf("check %s->%s w=%d", c.From, c.To, c.Weight) }

// Skip rejects a candidate edge that would close a cycle.
type Skip struct {
	desc
	From, To string
	Weight   int64
}

func NewSkip(description, from, to string, weight int64) Skip {
	return Skip{desc: desc(description), From: from, To: to, Weight: weight}
}

func (Skip) Kind() Kind { return KindSkip }
func (s Skip) String() string { return fmt.Sprintf("skip %s->%s w=%d", s.From, s.To, s.Weight) }

// Rotate records an AVL rotation around Node.
type Rotate struct {
	desc
	Node      string
	Direction Direction
}

func NewRotate(description, node string, dir Direction) Rotate {
	return Rotate{desc: desc(description), Node: node, Direction: dir}
}

func (Rotate) Kind() Kind { return KindRotate }
func (r Rotate) String() string { return fmt.Sprintf("rotate %s %s", r.Direction, r.Node) }

// Backtrack marks a node whose neighbor list is exhausted.
type Backtrack struct {
	desc
	Node string
}

func NewBacktrack(description, node string) Backtrack {
	return Backtrack{desc: desc(description), Node: node}
}

func (Backtrack) Kind() Kind { return KindBacktrack }
func (b Backtrack) String() string { return "backtrack " + b.Node }
