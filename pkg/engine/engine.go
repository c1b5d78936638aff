package engine

import (
	"log/slog"

	"github.com/ryanrudat/Nomenklatura-sub003/pkg/event"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/state"
)

// Engine resolves one game turn at a time. It is synchronous and
// single-threaded: given the full session state and its injected random
// source, ResolveTurn mutates the state in place and returns the events
// surfaced to the player. Two runs over identical state with identical
// random sequences produce identical results.
type Engine struct {
	logger *slog.Logger
	rng    Rand
	sink   event.Sink
	laws   LawRegistry
}

// NewEngine creates an engine with the given logger and random source.
func NewEngine(logger *slog.Logger, rng Rand) *Engine {
	return &Engine{
		logger: logger,
		rng:    rng,
		laws:   NoopLawRegistry{},
	}
}

// WithSink sets the narrative-event sink. Returns the engine for chaining.
func (e *Engine) WithSink(sink event.Sink) *Engine {
	e.sink = sink
	return e
}

// WithLaws sets the law-registry collaborator. Returns the engine for
// chaining.
func (e *Engine) WithLaws(laws LawRegistry) *Engine {
	e.laws = laws
	return e
}

// ResolveTurn runs the full per-turn pipeline:
//
//  1. Relationship and need decay.
//  2. The reactive motivation evaluator; a reactive event short-circuits
//     autonomous processing for the turn.
//  3. Autonomous actions for up to maxActorsPerTurn actors in descending
//     position order; of the events they generate, only the single
//     highest-priority one is surfaced, though every interaction is
//     recorded in both actors' memories.
//
// The returned slice holds the surfaced events (zero or one per turn).
func (e *Engine) ResolveTurn(gs *state.GameState) []event.Event {
	gs.Turn++

	e.DecayRelationships(gs)
	e.decayNeeds(gs)

	if ev := e.EvaluateReactive(gs); ev != nil {
		e.surface(gs, *ev)
		return []event.Event{*ev}
	}

	var generated []event.Event
	acted := 0
	for _, a := range gs.ActorsByPosition() {
		if acted >= maxActorsPerTurn {
			break
		}
		if ev, ok := e.runAutonomous(gs, a); ok {
			acted++
			if ev != nil {
				generated = append(generated, *ev)
			}
		}
	}

	if len(generated) == 0 {
		return nil
	}

	best := generated[0]
	for _, ev := range generated[1:] {
		if ev.Priority > best.Priority {
			best = ev
		}
	}
	e.surface(gs, best)
	return []event.Event{best}
}

// surface records an event in the session history and hands it to the sink.
func (e *Engine) surface(gs *state.GameState, ev event.Event) {
	gs.RecordEvent(ev)
	if e.sink != nil {
		e.sink.Emit(ev)
	}
	e.logger.Debug("event surfaced",
		"turn", gs.Turn,
		"category", ev.Category,
		"priority", ev.Priority.String(),
		"actor", ev.ActorID,
		"action", ev.Action)
}
