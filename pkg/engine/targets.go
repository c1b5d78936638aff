package engine

import (
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/action"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/actor"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/state"
)

// selectTargetWithCooldown picks a target for the action, enforcing the
// per-pair interaction cooldown. A cooled-down first choice forces exactly
// one re-selection pass with that target excluded; if the second pass also
// fails, the action is abandoned.
func (e *Engine) selectTargetWithCooldown(gs *state.GameState, a *actor.Actor, kind action.Kind) *actor.Actor {
	first := e.selectTarget(gs, a, kind, nil)
	if first == nil {
		return nil
	}
	if !pairOnCooldown(gs, a.ID, first.ID) {
		return first
	}

	second := e.selectTarget(gs, a, kind, map[string]bool{first.ID: true})
	if second == nil || pairOnCooldown(gs, a.ID, second.ID) {
		return nil
	}
	return second
}

// pairOnCooldown reports whether the two actors interacted, in either
// direction, within the last pairCooldown turns.
func pairOnCooldown(gs *state.GameState, aID, bID string) bool {
	for _, r := range []*actor.Relationship{
		gs.Relation(aID, bID),
		gs.Relation(bID, aID),
	} {
		if r != nil && r.LastInteractionTurn > 0 && gs.Turn-r.LastInteractionTurn < pairCooldown {
			return true
		}
	}
	return false
}

// selectTarget applies the action-specific filter/rank/random rule. Every
// rule degrades gracefully: an empty primary pool either falls back to a
// looser one or returns nil, which skips the action for this turn.
func (e *Engine) selectTarget(gs *state.GameState, a *actor.Actor, kind action.Kind, exclude map[string]bool) *actor.Actor {
	pool := candidatePool(gs, a, exclude)
	if len(pool) == 0 {
		return nil
	}

	switch kind {
	case action.FormAlliance:
		// A new ally: not already allied, not a rival, within two position
		// levels. No fallback; alliance with nobody suitable is a skip.
		eligible := filter(pool, func(t *actor.Actor) bool {
			r := gs.Relation(a.ID, t.ID)
			if r != nil && (r.Alliance || r.Rivalry) {
				return false
			}
			return abs(a.Position-t.Position) <= 2
		})
		return e.bestByMemory(a, kind, eligible, gs.Turn)

	case action.BetrayAlliance:
		// Only a current ally whose alliance has aged past the betrayal
		// threshold. No fallback.
		eligible := filter(pool, func(t *actor.Actor) bool {
			r := gs.Relation(a.ID, t.ID)
			return r != nil && r.CanBetray(gs.Turn)
		})
		return e.randomOf(eligible)

	case action.Denounce, action.LaunchInvestigation, action.SpreadRumors,
		action.Sabotage, action.SurveilRival, action.BlockPromotion,
		action.GatherCompromat:
		// Aggression prefers declared rivals below one's own position, then
		// the most corrupt candidate available.
		rivals := filter(pool, func(t *actor.Actor) bool {
			r := gs.Relation(a.ID, t.ID)
			return r != nil && r.Rivalry && t.Position <= a.Position
		})
		if t := e.bestByMemory(a, kind, rivals, gs.Turn); t != nil {
			return t
		}
		return mostCorrupt(pool)

	case action.DetainSuspect:
		// Lower-position actors already afraid or visibly corrupt, falling
		// back to any lower-position actor.
		lower := filter(pool, func(t *actor.Actor) bool {
			return t.Position < a.Position && t.Status != actor.StatusDetained
		})
		suspects := filter(lower, func(t *actor.Actor) bool {
			return t.Fear > 40 || t.Personality.Corrupt > 60
		})
		if t := e.randomOf(suspects); t != nil {
			return t
		}
		return e.randomOf(lower)

	case action.CurryFavor, action.SeekProtection, action.RepayFavor:
		// Upward maneuvers need someone senior; without one the maneuver
		// makes no sense and is skipped.
		seniors := filter(pool, func(t *actor.Actor) bool {
			return t.Position > a.Position
		})
		return e.bestByMemory(a, kind, seniors, gs.Turn)

	case action.IssueDirective, action.EnforceDiscipline, action.PurgeDepartment:
		// Downward authority, falling back to anyone when nobody is junior.
		juniors := filter(pool, func(t *actor.Actor) bool {
			return t.Position < a.Position
		})
		if t := e.randomOf(juniors); t != nil {
			return t
		}
		return e.randomOf(pool)

	case action.ConveneStandingCommittee, action.OrganizeGathering,
		action.CultivateClientele:
		// Prefer fellow committee members, then anyone.
		members := filter(pool, func(t *actor.Actor) bool {
			return gs.OnCommittee(t.ID)
		})
		if t := e.randomOf(members); t != nil {
			return t
		}
		return e.randomOf(pool)

	default:
		if track := action.RequiredTrack(kind); track != "" {
			// Governance lands on a matching-track colleague when one
			// exists; otherwise anyone is affected.
			sameTrack := filter(pool, func(t *actor.Actor) bool {
				return t.Track == track
			})
			if t := e.randomOf(sameTrack); t != nil {
				return t
			}
		}
		return e.randomOf(pool)
	}
}

// candidatePool is everyone except the actor itself and any exclusions.
// Unknown or removed ids never appear because the pool is built from the
// live actor collection.
func candidatePool(gs *state.GameState, a *actor.Actor, exclude map[string]bool) []*actor.Actor {
	var pool []*actor.Actor
	for _, t := range gs.ActorsByPosition() {
		if t.ID == a.ID || exclude[t.ID] {
			continue
		}
		pool = append(pool, t)
	}
	return pool
}

// bestByMemory ranks candidates by the actor's decayed memories of them and
// picks uniformly among the top scorers.
func (e *Engine) bestByMemory(a *actor.Actor, kind action.Kind, pool []*actor.Actor, turn int) *actor.Actor {
	if len(pool) == 0 {
		return nil
	}
	best := memoryTargetModifier(a, kind, pool[0].ID, turn)
	for _, t := range pool[1:] {
		if s := memoryTargetModifier(a, kind, t.ID, turn); s > best {
			best = s
		}
	}
	top := filter(pool, func(t *actor.Actor) bool {
		return memoryTargetModifier(a, kind, t.ID, turn) == best
	})
	return e.randomOf(top)
}

// mostCorrupt returns the candidate with the highest corruption score.
func mostCorrupt(pool []*actor.Actor) *actor.Actor {
	var best *actor.Actor
	for _, t := range pool {
		if best == nil || t.Personality.Corrupt > best.Personality.Corrupt {
			best = t
		}
	}
	return best
}

// randomOf picks uniformly, or nil from an empty pool.
func (e *Engine) randomOf(pool []*actor.Actor) *actor.Actor {
	if len(pool) == 0 {
		return nil
	}
	return pick(e.rng, pool)
}

func filter(pool []*actor.Actor, keep func(*actor.Actor) bool) []*actor.Actor {
	var out []*actor.Actor
	for _, t := range pool {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
