package step

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Log is the ordered, append-only record of one algorithm run.
//
// Only a Recorder appends. Once the generating call returns, a Log is never
// mutated again and may be read from any number of goroutines.
type Log struct {
	steps []Step
}

// NewLog wraps already generated steps. The slice is copied.
func NewLog(steps ...Step) *Log {
	l := &Log{steps: make([]Step, len(steps))}
	copy(l.steps, steps)
	return l
}

// Len returns the number of steps. A nil Log is empty.
func (l *Log) Len() int {
	if l == nil {
		return 0
	}
	return len(l.steps)
}

// At returns the i-th step. It panics when i is out of range, like a slice.
func (l *Log) At(i int) Step { return l.steps[i] }

// Steps returns a copy of the step sequence.
func (l *Log) Steps() []Step {
	if l == nil {
		return nil
	}
	out := make([]Step, len(l.steps))
	copy(out, l.steps)
	return out
}

// Count returns how many steps of kind k the log holds.
func (l *Log) Count(k Kind) int {
	n := 0
	for _, s := range l.Steps() {
		if s.Kind() == k {
			n++
		}
	}
	return n
}

// Slice returns a copy of steps [from, to).
func (l *Log) Slice(from, to int) []Step {
	out := make([]Step, to-from)
	copy(out, l.steps[from:to])
	return out
}

// Kinds returns the distinct kinds present, in order of first appearance.
func (l *Log) Kinds() []Kind {
	var (
		out  []Kind
		seen = make(map[Kind]bool)
	)
	for _, s := range l.Steps() {
		if !seen[s.Kind()] {
			seen[s.Kind()] = true
			out = append(out, s.Kind())
		}
	}
	return out
}

// Last returns the final step, or nil for an empty log.
func (l *Log) Last() Step {
	if l.Len() == 0 {
		return nil
	}
	return l.steps[len(l.steps)-1]
}

// Observer is invoked after each step is appended. A non-nil error aborts
// generation.
type Observer func(index int, s Step) error

// Options configure a Recorder. Every algorithm entry point accepts them.
type Options struct {
	// Ctx is checked once per emitted step; cancellation aborts generation.
	Ctx context.Context

	// Observer sees every step live, in order.
	Observer Observer

	// Capacity pre-sizes the log.
	Capacity int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Background context, no observer, no preallocation.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithObserver installs a live observer.
func WithObserver(fn Observer) Option {
	return func(o *Options) { o.Observer = fn }
}

// WithCapacity preallocates room for n steps. Negative n panics.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("step: WithCapacity(n<0)")
	}
	return func(o *Options) { o.Capacity = n }
}

// Recorder appends steps to a Log while honoring cancellation and the
// observer.
type Recorder struct {
	opts Options
	log  *Log
}

// NewRecorder builds a Recorder from opts.
func NewRecorder(opts ...Option) *Recorder {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Recorder{opts: o, log: &Log{steps: make([]Step, 0, o.Capacity)}}
}

// Emit appends s. It returns the context error if generation was cancelled
// before s, or the observer's error after s was appended.
func (r *Recorder) Emit(s Step) error {
	select {
	case <-r.opts.Ctx.Done():
		return errors.Wrapf(r.opts.Ctx.Err(), "step: cancelled before step %d", len(r.log.steps))
	default:
	}
	r.log.steps = append(r.log.steps, s)
	if r.opts.Observer != nil {
		idx := len(r.log.steps) - 1
		if err := r.opts.Observer(idx, s); err != nil {
			return errors.Wrapf(err, "step: observer rejected step %d (%s)", idx, s.Kind())
		}
	}
	return nil
}

// Context returns the recorder's cancellation context.
func (r *Recorder) Context() context.Context { return r.opts.Ctx }

// Log returns the log built so far. Callers hand it out only after
// generation finished.
func (r *Recorder) Log() *Log { return r.log }

// Len is the number of steps emitted so far.
func (r *Recorder) Len() int { return len(r.log.steps) }
