package engine

import (
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/actor"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/state"
)

// newEdge builds a directed edge at the neutral baseline and applies the
// faction and track initialization rules. jitter is an optional extra spread
// applied to the faction bias; bulk initialization passes a random jitter,
// lazy creation passes 0 so ad-hoc edges stay comparable.
func newEdge(source, target *actor.Actor, jitter int) *actor.Relationship {
	r := &actor.Relationship{
		SourceID:    source.ID,
		TargetID:    target.ID,
		Disposition: neutralDisposition,
		Trust:       neutralTrust,
		Fear:        neutralFear,
		Respect:     neutralRespect,
		Grudge:      neutralGrudge,
		Gratitude:   neutralGratitude,
	}

	if source.Faction != "" && source.Faction == target.Faction {
		r.Disposition += 20 + jitter
		r.Trust += 15 + jitter
	}

	// Direct competitors start cold.
	if source.Track == target.Track && source.Position == target.Position {
		r.Disposition -= 15
	}

	// Juniors fear and respect seniors in proportion to the gap.
	if gap := target.Position - source.Position; gap > 0 {
		r.Fear += gap * 3
		r.Respect += gap * 4
	}

	r.Clamp()
	return r
}

// InitializeRelationships creates a directed edge for every ordered pair of
// distinct actors that does not already have one. Same-track same-position
// pairs have a 30% chance of starting as rivals.
func (e *Engine) InitializeRelationships(gs *state.GameState) {
	for _, source := range gs.ActorsByPosition() {
		for _, target := range gs.ActorsByPosition() {
			if source.ID == target.ID {
				continue
			}
			if gs.Relation(source.ID, target.ID) != nil {
				continue
			}
			jitter := e.rng.Intn(11) - 5
			r := newEdge(source, target, jitter)
			if source.Track == target.Track && source.Position == target.Position &&
				e.rng.Float64() < 0.30 {
				r.MarkRivalry()
			}
			gs.SetRelation(r)
		}
	}
}

// GetOrCreateRelation is the idempotent edge accessor. A missing edge is
// created with fixed baseline values; repeated calls without intervening
// mutation return identical state. Unknown actor ids yield nil, never an
// error.
func GetOrCreateRelation(gs *state.GameState, sourceID, targetID string) *actor.Relationship {
	if r := gs.Relation(sourceID, targetID); r != nil {
		return r
	}
	source := gs.Actor(sourceID)
	target := gs.Actor(targetID)
	if source == nil || target == nil || sourceID == targetID {
		return nil
	}
	r := newEdge(source, target, 0)
	gs.SetRelation(r)
	return r
}

// DecayRelationships drifts every edge's extreme attributes toward the
// neutral baseline. This is a smoothing pass, never a reset: each field moves
// at most relationshipDecayStep per turn.
func (e *Engine) DecayRelationships(gs *state.GameState) {
	for _, r := range gs.Relations {
		r.Disposition = drift(r.Disposition, neutralDisposition, relationshipDecayStep)
		r.Trust = drift(r.Trust, neutralTrust, relationshipDecayStep)
		r.Fear = drift(r.Fear, neutralFear, relationshipDecayStep)
		r.Respect = drift(r.Respect, neutralRespect, relationshipDecayStep)
		r.Grudge = drift(r.Grudge, neutralGrudge, relationshipDecayStep)
		r.Gratitude = drift(r.Gratitude, neutralGratitude, relationshipDecayStep)
	}
}

// decayNeeds drains every actor's need gauges by the per-need rate.
func (e *Engine) decayNeeds(gs *state.GameState) {
	for _, a := range gs.Actors {
		a.Needs.Security -= needDecayPerTurn.security
		a.Needs.Power -= needDecayPerTurn.power
		a.Needs.Loyalty -= needDecayPerTurn.loyalty
		a.Needs.Recognition -= needDecayPerTurn.recognition
		a.Needs.Stability -= needDecayPerTurn.stability
		a.Needs.Ideology -= needDecayPerTurn.ideology
		a.Clamp()
	}
}

// drift moves v one step toward target, without overshooting.
func drift(v, target, step int) int {
	switch {
	case v > target+step:
		return v - step
	case v < target-step:
		return v + step
	default:
		return target
	}
}
