package player

import (
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/algorithms"
	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/step"
)

// Sentinel errors.
var (
	// ErrAlreadyRunning rejects Run while a run is active or paused.
	ErrAlreadyRunning = errors.New("player: already running")

	// ErrNoSteps is returned when the algorithm produced an empty log.
	ErrNoSteps = errors.New("player: algorithm did not generate any steps")

	// ErrNotRunning is returned by Pause outside Running.
	ErrNotRunning = errors.New("player: not running")

	// ErrNotPaused is returned by Resume outside Paused.
	ErrNotPaused = errors.New("player: not paused")

	// ErrBusy rejects stepping and input changes while a run is rendering.
	ErrBusy = errors.New("player: busy")

	// ErrNoLog is returned when stepping without a generated log.
	ErrNoLog = errors.New("player: no log")

	// ErrEndOfLog is returned by StepForward at the last step.
	ErrEndOfLog = errors.New("player: at end of log")

	// ErrStartOfLog is returned by StepBackward before the first step.
	ErrStartOfLog = errors.New("player: at start of log")

	// ErrInterrupted is returned by Run when Reset superseded it.
	ErrInterrupted = errors.New("player: run interrupted by reset")

	// ErrInvalidSpeed is returned by SetSpeed outside 1..100.
	ErrInvalidSpeed = errors.New("player: speed out of range")
)

// State is the playback state.
type State uint8

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Scene is the pristine input a renderer is reset to before replay.
type Scene struct {
	Algorithm algorithms.ID
	Family    algorithms.Family
	Array     []int
	Graph     *core.Graph
	Tree      []int
}

// sceneOf builds the scene for id over in. Traversals fall back to the
// array for their tree, as the algorithm does.
func sceneOf(id algorithms.ID, in algorithms.Input) Scene {
	in = in.Clone()
	sc := Scene{
		Algorithm: id,
		Family:    algorithms.FamilyOf(id),
		Array:     in.Array,
		Graph:     in.Graph,
		Tree:      in.Tree,
	}
	if sc.Family == algorithms.FamilyTree && len(sc.Tree) == 0 {
		sc.Tree = in.Array
	}
	return sc
}

// Renderer turns steps into visual updates. Reset is called before replay
// starts and on every backward seek; Render once per step, in log order.
// A Renderer is only ever called by one goroutine at a time.
type Renderer interface {
	Reset(sc Scene) error
	Render(index int, s step.Step) error
}

// Clock supplies the inter-step delay.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// StepHook observes every step rendered by a run or a manual step. Hooks
// must not call back into the Player.
type StepHook func(index int, s step.Step)

// Options configure a Player.
type Options struct {
	Clock   Clock
	Logger  *slog.Logger
	Speed   int
	Metrics *Metrics
	Hooks   []StepHook
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the wall clock, slog.Default, speed 50 and no
// metrics.
func DefaultOptions() Options {
	return Options{Clock: realClock{}, Logger: slog.Default(), Speed: DefaultSpeed}
}

// WithClock injects the delay source. Panics on nil.
func WithClock(c Clock) Option {
	if c == nil {
		panic("player: WithClock(nil)")
	}
	return func(o *Options) { o.Clock = c }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("player: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithSpeed sets the initial speed. Panics outside MinSpeed..MaxSpeed.
func WithSpeed(speed int) Option {
	if speed < MinSpeed || speed > MaxSpeed {
		panic("player: WithSpeed out of range")
	}
	return func(o *Options) { o.Speed = speed }
}

// WithMetrics records run, step and render-error counters.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithStepHook adds a hook called after every rendered step.
func WithStepHook(h StepHook) Option {
	if h == nil {
		panic("player: WithStepHook(nil)")
	}
	return func(o *Options) { o.Hooks = append(o.Hooks, h) }
}

// Status is a point-in-time view of a Player.
type Status struct {
	State     State
	Algorithm algorithms.ID
	RunID     string
	Cursor    int
	Len       int
	Speed     int
}
