package engine

import (
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/actor"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/ledger"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/state"
)

// Law is one standing policy an actor can propose to enact or repeal.
// Effects apply to the national ledger while the law is active; the faction
// fields describe who gains and loses politically.
type Law struct {
	ID              string                   `json:"id"`
	Name            string                   `json:"name"`
	Active          bool                     `json:"active"`
	Effects         map[ledger.Indicator]int `json:"effects,omitempty"`
	BenefitsFaction string                   `json:"benefits_faction,omitempty"`
	HarmsFaction    string                   `json:"harms_faction,omitempty"`
}

// LawRegistry is the collaborator that owns the body of standing laws. The
// engine only searches it for a proposal worth making; enactment mechanics
// live with the registry owner.
type LawRegistry interface {
	// Laws returns the current body of laws in stable order.
	Laws() []Law
	// Propose records an actor's proposal to enact (activate=true) or repeal
	// an existing law.
	Propose(lawID string, actorID string, activate bool)
}

// NoopLawRegistry is the default registry: no laws, proposals vanish.
type NoopLawRegistry struct{}

func (NoopLawRegistry) Laws() []Law                           { return nil }
func (NoopLawRegistry) Propose(lawID, actorID string, _ bool) {}

// proposeLaw searches the registry for the law whose status change most
// favors the proposer's faction and records that proposal. Repealing a law
// that harms one's own faction outranks enacting one that merely helps it.
func (e *Engine) proposeLaw(gs *state.GameState, a *actor.Actor) {
	laws := e.laws.Laws()
	if len(laws) == 0 {
		return
	}

	var (
		best      *Law
		bestScore int
		activate  bool
	)
	for i := range laws {
		l := &laws[i]
		score, act := lawPreference(l, a)
		if score > bestScore {
			best, bestScore, activate = l, score, act
		}
	}
	if best == nil {
		return
	}
	e.laws.Propose(best.ID, a.ID, activate)
	e.logger.Debug("law proposed",
		"turn", gs.Turn,
		"actor", a.ID,
		"law", best.ID,
		"activate", activate)
}

// lawPreference scores one law for one proposer and says which direction the
// proposal would go. Zero means indifference.
func lawPreference(l *Law, a *actor.Actor) (score int, activate bool) {
	switch {
	case l.Active && l.HarmsFaction == a.Faction:
		return 30 + a.Personality.Ambitious/5, false
	case !l.Active && l.BenefitsFaction == a.Faction:
		return 20 + a.Personality.Ambitious/5, true
	case l.Active && l.BenefitsFaction != "" && l.BenefitsFaction != a.Faction && a.Personality.Ruthless > highTrait:
		return 10, false
	default:
		return 0, false
	}
}
