// Package step defines the event vocabulary shared by every algorithm in
// algostep, and the append-only Log that records one run.
//
// What
//
//   - Step is a sealed interface; each concrete type (Compare, Swap, Merge,
//     Sorted, Pivot, Found, NotFound, Range, Init, Visit, Edge, Update,
//     Unreachable, Check, Skip, Rotate, Backtrack and the node variants) is
//     one shape a renderer must draw.
//   - Recorder is the only writer of a Log. It checks the context once per
//     emitted step and forwards each step to an optional Observer.
//   - Record flattens a step for YAML/JSON/msgpack output; Log.Fingerprint
//     hashes the records with BLAKE3 for determinism checks.
//
// Usage
//
//	rec := step.NewRecorder(step.WithContext(ctx), step.WithObserver(fn))
//	if err := rec.Emit(step.NewCompare("Comparing 5 and 3", 0, 1)); err != nil {
//		return nil, err
//	}
//	log := rec.Log()
package step
