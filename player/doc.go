// Package player paces, pauses, seeks and replays a step log through a
// Renderer.
//
// A Player is an explicit state machine:
//
//	Idle ──Run──▶ Running ◀──Resume── Paused
//	  ▲              │  └────Pause────▶  │
//	  └──────────────┴── completion, Reset, error ──┘
//
// Run generates the complete log eagerly, resets the renderer to the input,
// then renders one step per tick on the calling goroutine. The tick comes
// from an injected Clock, so tests drive playback without real time.
// Control methods (Pause, Resume, StepForward, StepBackward, Reset,
// SetSpeed) may be called from any goroutine.
//
// Seeking backward has no inverse operation: the renderer is reset to the
// input and steps [0, cursor) are replayed. A Reset bumps the run
// generation, so a superseded replay loop renders nothing further.
package player
