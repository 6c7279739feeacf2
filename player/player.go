package player

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/katalvlaran/algostep/algorithms"
	"github.com/katalvlaran/algostep/step"
)

// Player owns the current input, the generated log, the cursor and the
// playback state. The zero value is not usable; call New.
type Player struct {
	mu sync.Mutex

	r       Renderer
	clock   Clock
	logger  *slog.Logger
	metrics *Metrics
	hooks   []StepHook

	input algorithms.Input
	speed int
	state State

	id     algorithms.ID
	family algorithms.Family
	runID  string
	log    *step.Log
	cursor int // steps rendered so far; the next step to render

	gen    uint64        // bumped by Run and Reset
	stop   chan struct{} // closed by Reset to cut the pending delay
	resume chan struct{} // closed by Resume
}

// New creates an idle Player rendering through r.
func New(r Renderer, opts ...Option) *Player {
	if r == nil {
		panic("player: New(nil renderer)")
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Player{
		r:       r,
		clock:   o.Clock,
		logger:  o.Logger,
		metrics: o.Metrics,
		hooks:   o.Hooks,
		speed:   o.Speed,
	}
}

// Status returns a snapshot of the player.
func (p *Player) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Status{
		State:     p.state,
		Algorithm: p.id,
		RunID:     p.runID,
		Cursor:    p.cursor,
		Len:       p.log.Len(),
		Speed:     p.speed,
	}
}

// Log returns the current log, or nil.
func (p *Player) Log() *step.Log {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.log
}

// SetInput replaces the input, discards any log and resets the renderer
// to the new input. It is rejected while a run is active or paused.
func (p *Player) SetInput(in algorithms.Input) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Idle {
		return errors.Wrapf(ErrBusy, "set input while %s", p.state)
	}
	p.input = in.Clone()
	p.log, p.cursor = nil, 0
	return p.r.Reset(sceneOf(p.id, p.input))
}

// SetSpeed changes the cadence; it applies from the next delay on.
func (p *Player) SetSpeed(speed int) error {
	if speed < MinSpeed || speed > MaxSpeed {
		return errors.Wrapf(ErrInvalidSpeed, "%d not in %d..%d", speed, MinSpeed, MaxSpeed)
	}
	p.mu.Lock()
	p.speed = speed
	p.mu.Unlock()
	return nil
}

// Run generates the log for id over the current input and replays it,
// blocking until the last step was rendered, the run was reset
// (ErrInterrupted), ctx was cancelled, or a render failed. The player is
// Idle again whenever Run returns; the log stays available for stepping.
func (p *Player) Run(ctx context.Context, id algorithms.ID) error {
	p.mu.Lock()
	if p.state != Idle {
		p.mu.Unlock()
		return errors.Wrapf(ErrAlreadyRunning, "run %s", id)
	}
	p.gen++
	gen := p.gen
	p.state = Running
	p.id, p.family = id, algorithms.FamilyOf(id)
	p.runID = uuid.New().String()
	p.log, p.cursor = nil, 0
	p.stop = make(chan struct{})
	in := p.input.Clone()
	logger := p.logger.With("run_id", p.runID, "algorithm", string(id))
	p.mu.Unlock()

	start := time.Now()
	res, err := algorithms.Run(ctx, id, in, nil)
	p.metrics.generated(time.Since(start).Seconds())
	if err == nil && res.Log.Len() == 0 {
		err = errors.Wrapf(ErrNoSteps, "%s", id)
	}
	if err != nil {
		p.finish(gen, "failed")
		logger.Error("algorithm failed", "error", err)
		return err
	}

	p.mu.Lock()
	if p.gen != gen {
		p.mu.Unlock()
		return ErrInterrupted
	}
	p.log = res.Log
	if err := p.r.Reset(sceneOf(id, in)); err != nil {
		p.mu.Unlock()
		p.finish(gen, "failed")
		return errors.Wrap(err, "player: renderer reset")
	}
	p.mu.Unlock()

	logger.Info("run started", "steps", res.Log.Len())
	err = p.loop(ctx, gen, logger)
	switch {
	case err == nil:
		p.finish(gen, "completed")
		logger.Info("run completed", "steps", res.Log.Len())
	case errors.Is(err, ErrInterrupted):
		p.metrics.run(string(id), "interrupted")
		logger.Info("run interrupted")
	case ctx.Err() != nil:
		p.finish(gen, "cancelled")
		logger.Info("run cancelled", "error", err)
	default:
		p.finish(gen, "failed")
		logger.Error("run failed", "error", err)
	}
	return err
}

// finish returns to Idle unless a Reset already took over.
func (p *Player) finish(gen uint64, outcome string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.metrics.run(string(p.id), outcome)
	if p.gen == gen {
		p.state = Idle
	}
}

// loop renders steps from the cursor until the log is exhausted.
func (p *Player) loop(ctx context.Context, gen uint64, logger *slog.Logger) error {
	for {
		p.mu.Lock()
		if p.gen != gen {
			p.mu.Unlock()
			return ErrInterrupted
		}
		if err := ctx.Err(); err != nil {
			p.mu.Unlock()
			return errors.Wrap(err, "player: run cancelled")
		}
		if p.state == Paused {
			resume, stop := p.resume, p.stop
			p.mu.Unlock()
			select {
			case <-resume:
			case <-stop:
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "player: paused run cancelled")
			}
			continue
		}
		if p.cursor >= p.log.Len() {
			p.mu.Unlock()
			return nil
		}
		i := p.cursor
		s := p.log.At(i)
		err := p.render(i, s)
		p.cursor++
		d := Delay(p.speed, p.family)
		stop := p.stop
		p.mu.Unlock()

		if err != nil {
			if p.family != algorithms.FamilyGraph {
				return errors.Wrapf(err, "player: step %d", i)
			}
			logger.Warn("render failed, continuing", "step", i, "kind", s.Kind().String(), "error", err)
		} else {
			logger.Debug("step", "index", i, "kind", s.Kind().String(), "description", s.Description())
			p.runHooks(i, s)
		}

		select {
		case <-p.clock.After(d):
		case <-stop:
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "player: run cancelled")
		}
	}
}

// render calls the renderer with p.mu held, turning a panic into an error.
func (p *Player) render(i int, s step.Step) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("renderer panicked on %s: %v", s.Kind(), r)
		}
		if err != nil {
			p.metrics.renderError(string(p.id))
			return
		}
		p.metrics.step(string(p.id), s.Kind().String())
	}()
	return p.r.Render(i, s)
}

func (p *Player) runHooks(i int, s step.Step) {
	for _, h := range p.hooks {
		h(i, s)
	}
}

// Pause stops the replay before the next step; the delay already in
// progress still runs out.
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Running || p.log == nil {
		return errors.Wrapf(ErrNotRunning, "pause while %s", p.state)
	}
	p.state = Paused
	p.resume = make(chan struct{})
	p.logger.Info("paused", "run_id", p.runID, "cursor", p.cursor)
	return nil
}

// Resume continues a paused run from the exact cursor.
func (p *Player) Resume() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Paused {
		return errors.Wrapf(ErrNotPaused, "resume while %s", p.state)
	}
	p.state = Running
	close(p.resume)
	p.logger.Info("resumed", "run_id", p.runID, "cursor", p.cursor)
	return nil
}

// steppable reports whether manual stepping is allowed. p.mu must be held.
func (p *Player) steppable(op string) error {
	if p.log == nil {
		return errors.Wrapf(ErrNoLog, "%s", op)
	}
	if p.state == Running {
		return errors.Wrapf(ErrBusy, "%s while running", op)
	}
	return nil
}

// StepForward renders exactly the next step. Allowed when Idle with a log
// or Paused.
func (p *Player) StepForward() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.steppable("step forward"); err != nil {
		return err
	}
	if p.cursor >= p.log.Len() {
		return ErrEndOfLog
	}
	i := p.cursor
	s := p.log.At(i)
	if err := p.render(i, s); err != nil {
		return errors.Wrapf(err, "player: step %d", i)
	}
	p.cursor++
	p.runHooks(i, s)
	return nil
}

// StepBackward moves the cursor back one step by resetting the renderer
// to the input and replaying steps [0, cursor-1).
func (p *Player) StepBackward() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.steppable("step backward"); err != nil {
		return err
	}
	if p.cursor == 0 {
		return ErrStartOfLog
	}
	target := p.cursor - 1
	if err := p.r.Reset(sceneOf(p.id, p.input)); err != nil {
		return errors.Wrap(err, "player: renderer reset")
	}
	p.cursor = 0
	for p.cursor < target {
		if err := p.render(p.cursor, p.log.At(p.cursor)); err != nil {
			return errors.Wrapf(err, "player: replaying step %d", p.cursor)
		}
		p.cursor++
	}
	return nil
}

// Seek replays to cursor n from the input, like repeated StepBackward or
// StepForward calls would.
func (p *Player) Seek(n int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.steppable("seek"); err != nil {
		return err
	}
	if n < 0 || n > p.log.Len() {
		return errors.Newf("player: seek %d outside 0..%d", n, p.log.Len())
	}
	if err := p.r.Reset(sceneOf(p.id, p.input)); err != nil {
		return errors.Wrap(err, "player: renderer reset")
	}
	for p.cursor = 0; p.cursor < n; p.cursor++ {
		if err := p.render(p.cursor, p.log.At(p.cursor)); err != nil {
			return errors.Wrapf(err, "player: replaying step %d", p.cursor)
		}
	}
	return nil
}

// Reset cancels the pending delay, stops any active run, discards the log
// and cursor, resets the renderer to the input and returns to Idle.
func (p *Player) Reset() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
	if p.state != Idle {
		p.logger.Info("reset", "run_id", p.runID, "state", p.state.String(), "cursor", p.cursor)
	}
	p.state = Idle
	p.log, p.cursor = nil, 0
	if err := p.r.Reset(sceneOf(p.id, p.input)); err != nil {
		return errors.Wrap(err, "player: renderer reset")
	}
	return nil
}

// String implements fmt.Stringer for logs and the CLI prompt.
func (p *Player) String() string {
	st := p.Status()
	return fmt.Sprintf("%s %s %d/%d", st.Algorithm, st.State, st.Cursor, st.Len)
}
