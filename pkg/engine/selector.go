package engine

import (
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/action"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/actor"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/event"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/ledger"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/state"
)

// actionMotivation scores how driven an actor is to act at all this turn.
func actionMotivation(a *actor.Actor) int {
	p := a.Personality
	return 20 + p.Ambitious/3 + p.Ruthless/4 + p.Competent/4 + p.Paranoid/5 + a.Position*3
}

// runAutonomous gives one actor its chance to act. The bool result reports
// whether the actor passed the firing gate and consumed one of the turn's
// action slots; the event is non-nil only when the action was visible enough
// to surface.
func (e *Engine) runAutonomous(gs *state.GameState, a *actor.Actor) (*event.Event, bool) {
	if a.Status == actor.StatusDetained {
		return nil, false
	}
	if gs.Turn-a.LastActionTurn < actorCooldown {
		return nil, false
	}

	gate := 0.25 + float64(actionMotivation(a))/200
	if !chance(e.rng, gate) {
		return nil, false
	}

	kind := e.selectAction(gs, a)
	target := e.selectTargetWithCooldown(gs, a, kind)
	if target == nil {
		// No eligible target: the action is abandoned silently.
		return nil, true
	}

	ev := e.execute(gs, a, target, kind)
	return ev, true
}

// selectAction draws one action kind from the weighted distribution over
// everything the actor is permitted to do. A zero total falls back to
// spreading rumors; everyone can always do that.
func (e *Engine) selectAction(gs *state.GameState, a *actor.Actor) action.Kind {
	weights := e.ActionWeights(gs, a)

	total := 0
	for _, k := range action.Kinds {
		if w := weights[k]; w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return action.SpreadRumors
	}

	roll := e.rng.Intn(total)
	for _, k := range action.Kinds {
		w := weights[k]
		if w <= 0 {
			continue
		}
		if roll < w {
			return k
		}
		roll -= w
	}
	return action.SpreadRumors
}

// ActionWeights computes the full weighted distribution over the actions
// available to an actor: a flat base, then personality style, position tier,
// game-state pressure, goal alignment, need pressure, party devotion, and
// decayed memories, applied in that order. Kinds the actor is not permitted
// to take are absent; kinds driven to zero or below are dropped at draw time.
func (e *Engine) ActionWeights(gs *state.GameState, a *actor.Actor) map[action.Kind]int {
	weights := make(map[action.Kind]int)
	for _, k := range action.Kinds {
		if action.AvailableTo(k, a) {
			weights[k] = baseActionWeight
		}
	}

	applyPersonalityWeights(weights, a)
	applyPositionWeights(weights, a)
	applyStateWeights(weights, gs)
	for _, g := range a.ActiveGoals() {
		applyGoalWeights(weights, g)
	}
	applyNeedWeights(weights, a)
	applyDevotionWeights(weights, a)
	applyMemoryWeights(weights, a, gs.Turn)

	return weights
}

// applyPersonalityWeights adds the style bonuses of defining traits.
func applyPersonalityWeights(w map[action.Kind]int, a *actor.Actor) {
	p := a.Personality

	if p.Ambitious > highTrait {
		bump(w, action.ProposeLawChange, 20)
		bump(w, action.BlockPromotion, 20)
		bump(w, action.CultivateClientele, 10)
		bump(w, action.CurryFavor, 10)
	}
	if p.Ruthless > highTrait {
		bump(w, action.Denounce, 20)
		bump(w, action.LaunchInvestigation, 20)
		bump(w, action.DetainSuspect, 20)
		bump(w, action.Sabotage, 15)
		bump(w, action.PurgeDepartment, 15)
		bump(w, action.SuppressUnrest, 10)
	}
	if p.Paranoid > highTrait {
		bump(w, action.SeekProtection, 20)
		bump(w, action.SurveilRival, 20)
		bump(w, action.ExpandSurveillance, 15)
		bump(w, action.GatherCompromat, 10)
	}
	if p.Loyal > highTrait {
		bump(w, action.FormAlliance, 10)
		bump(w, action.IdeologicalCampaign, 15)
		bump(w, action.OrganizeStudySession, 10)
		bump(w, action.EnforceDiscipline, 10)
		// Loyal actors do not betray.
		if _, ok := w[action.BetrayAlliance]; ok {
			w[action.BetrayAlliance] = 0
		}
	}
	if p.Corrupt > highTrait {
		bump(w, action.CurryFavor, 15)
		bump(w, action.GatherCompromat, 10)
		bump(w, action.ReallocateResources, 10)
	}
	if p.Competent > highTrait {
		bump(w, action.RespondToCrisis, 15)
		bump(w, action.AddressShortage, 10)
		bump(w, action.ReviewPlanTargets, 5)
	}
}

// applyPositionWeights adds the seniority tier bonuses.
func applyPositionWeights(w map[action.Kind]int, a *actor.Actor) {
	if a.Position >= 5 {
		bump(w, action.OrganizeGathering, 15)
		bump(w, action.IssueDirective, 15)
		bump(w, action.ConveneStandingCommittee, 10)
	}
	if a.Position <= 3 {
		bump(w, action.CurryFavor, 15)
		bump(w, action.SeekProtection, 10)
	}
}

// applyStateWeights adds the crisis-signal bonuses from the ledger.
func applyStateWeights(w map[action.Kind]int, gs *state.GameState) {
	l := gs.Ledger

	if l.Get(ledger.Stability) < 40 {
		bump(w, action.RespondToCrisis, 25)
		bump(w, action.SuppressUnrest, 20)
		bump(w, action.DetainSuspect, 10)
	}
	if l.Get(ledger.FoodSupply) < 40 {
		bump(w, action.ManageFoodSupply, 25)
		bump(w, action.AddressShortage, 20)
		bump(w, action.StabilizeMarkets, 15)
	}
	if l.Get(ledger.IndustrialOutput) < 40 {
		bump(w, action.SetProductionQuota, 20)
		bump(w, action.ReallocateResources, 15)
		bump(w, action.ReviewPlanTargets, 10)
	}
	if l.Get(ledger.InternationalStanding) < 40 {
		bump(w, action.HandleIncident, 20)
		bump(w, action.NegotiateTreaty, 15)
		bump(w, action.RecallEnvoy, 10)
	}
	if l.Get(ledger.Stability) > 70 {
		bump(w, action.FormAlliance, 10)
		bump(w, action.OrganizeGathering, 10)
		bump(w, action.HostDelegation, 5)
	}
}

// goalActionBonuses lists explicit per-action bonuses for goal kinds whose
// pursuit maps onto specific maneuvers.
var goalActionBonuses = map[actor.GoalKind]map[action.Kind]int{
	actor.GoalDestroyRival: {
		action.LaunchInvestigation: 25,
		action.Denounce:            20,
		action.SpreadRumors:        15,
		action.Sabotage:            15,
		action.BlockPromotion:      15,
	},
	actor.GoalBlockRival: {
		action.BlockPromotion: 25,
		action.SpreadRumors:   10,
		action.SurveilRival:   10,
	},
	actor.GoalSeekPromotion: {
		action.CurryFavor:         20,
		action.CultivateClientele: 10,
		action.OrganizeGathering:  10,
	},
	actor.GoalCultivatePatron: {
		action.CurryFavor: 25,
		action.RepayFavor: 15,
	},
	actor.GoalSecureProtection: {
		action.SeekProtection: 30,
		action.FormAlliance:   15,
	},
	actor.GoalAvoidPurge: {
		action.SeekProtection: 20,
		action.CurryFavor:     15,
	},
	actor.GoalExposeTraitor: {
		action.RootOutSpies:        25,
		action.LaunchInvestigation: 15,
		action.ExpandSurveillance:  15,
	},
	actor.GoalProtectCover: {
		action.CurryFavor:   10,
		action.SpreadRumors: 10,
	},
	actor.GoalFixShortages: {
		action.AddressShortage:  25,
		action.StabilizeMarkets: 15,
		action.ManageFoodSupply: 15,
	},
	actor.GoalMeetQuota: {
		action.SetProductionQuota:  20,
		action.ReallocateResources: 15,
	},
	actor.GoalSecureArmyLoyalty: {
		action.SecureArmyLoyalty:  25,
		action.InspectGarrison:    15,
		action.PoliticalEducation: 10,
	},
	actor.GoalEnforceOrthodoxy: {
		action.IdeologicalCampaign: 20,
		action.EnforceDiscipline:   20,
	},
	actor.GoalBuildClientele: {
		action.CultivateClientele: 25,
		action.OrganizeGathering:  15,
		action.RepayFavor:         10,
	},
}

// themeActionBonuses covers the rest of the goal catalog: any active goal
// also pushes toward its theme's typical maneuvers.
var themeActionBonuses = map[actor.GoalTheme]map[action.Kind]int{
	actor.ThemeCareer: {
		action.CurryFavor:     10,
		action.BlockPromotion: 5,
	},
	actor.ThemeSurvival: {
		action.SeekProtection: 10,
		action.CurryFavor:     5,
	},
	actor.ThemeEspionage: {
		action.GatherCompromat: 10,
		action.SpreadRumors:    5,
	},
	actor.ThemeSecurity: {
		action.ExpandSurveillance: 10,
		action.RootOutSpies:       5,
	},
	actor.ThemeEconomic: {
		action.ReallocateResources: 10,
		action.ReviewPlanTargets:   5,
	},
	actor.ThemeMilitary: {
		action.InspectGarrison:   10,
		action.SecureArmyLoyalty: 5,
	},
	actor.ThemeParty: {
		action.IdeologicalCampaign: 10,
		action.EnforceDiscipline:   5,
	},
	actor.ThemeState: {
		action.ReformMinistry:  10,
		action.IssueRegulation: 5,
	},
}

// applyGoalWeights adds the alignment bonus of one active goal.
func applyGoalWeights(w map[action.Kind]int, g actor.Goal) {
	if table, ok := goalActionBonuses[g.Kind]; ok {
		for k, bonus := range table {
			bump(w, k, bonus)
		}
		return
	}
	for k, bonus := range themeActionBonuses[g.Kind.Theme()] {
		bump(w, k, bonus)
	}
}

// applyNeedWeights adds urgency-scaled bonuses for every gauge under lowNeed
// and penalties to actions that would worsen the deficit.
func applyNeedWeights(w map[action.Kind]int, a *actor.Actor) {
	urgency := func(v int) int {
		if v >= lowNeed {
			return 0
		}
		return (lowNeed - v) / 2
	}

	if u := urgency(a.Needs.Security); u > 0 {
		bump(w, action.SeekProtection, u)
		bump(w, action.FormAlliance, u/2)
		bump(w, action.CurryFavor, u/2)
		bump(w, action.Denounce, -u)
		bump(w, action.BetrayAlliance, -u)
		bump(w, action.Sabotage, -u/2)
	}
	if u := urgency(a.Needs.Power); u > 0 {
		bump(w, action.BlockPromotion, u)
		bump(w, action.CultivateClientele, u)
		bump(w, action.GatherCompromat, u/2)
		bump(w, action.LaunchInvestigation, u/2)
	}
	if u := urgency(a.Needs.Loyalty); u > 0 {
		bump(w, action.FormAlliance, u)
		bump(w, action.OrganizeGathering, u/2)
		bump(w, action.RepayFavor, u/2)
		bump(w, action.BetrayAlliance, -u)
	}
	if u := urgency(a.Needs.Recognition); u > 0 {
		bump(w, action.OrganizeGathering, u)
		bump(w, action.RespondToCrisis, u/2)
		bump(w, action.IdeologicalCampaign, u/2)
		bump(w, action.CurryFavor, u/2)
	}
	if u := urgency(a.Needs.Stability); u > 0 {
		bump(w, action.AddressShortage, u/2)
		bump(w, action.StabilizeMarkets, u/2)
		bump(w, action.RespondToCrisis, u/2)
		bump(w, action.Sabotage, -u)
	}
	if u := urgency(a.Needs.Ideology); u > 0 {
		bump(w, action.IdeologicalCampaign, u)
		bump(w, action.OrganizeStudySession, u)
		bump(w, action.PoliticalEducation, u/2)
	}
}

// applyDevotionWeights rewards devoted party members for ideological and
// disciplinary work and punishes self-enriching sabotage.
func applyDevotionWeights(w map[action.Kind]int, a *actor.Actor) {
	if a.Personality.Loyal <= devotionTrait {
		return
	}
	scaled := (a.Personality.Loyal - devotionTrait) / 2
	bump(w, action.IdeologicalCampaign, scaled)
	bump(w, action.EnforceDiscipline, scaled)
	bump(w, action.OrganizeStudySession, scaled/2)
	bump(w, action.PoliticalEducation, scaled/2)
	bump(w, action.Sabotage, -scaled)
}

// applyMemoryWeights folds decayed memories into the distribution: being
// wronged pushes toward retaliation, being helped pushes toward cooperation.
func applyMemoryWeights(w map[action.Kind]int, a *actor.Actor, turn int) {
	for _, m := range a.Memories {
		s := m.Strength(turn)
		if s == 0 {
			continue
		}
		if m.Hostile() {
			bump(w, action.Denounce, s/10)
			bump(w, action.LaunchInvestigation, s/10)
			bump(w, action.GatherCompromat, s/20)
			bump(w, action.FormAlliance, -s/20)
		} else {
			bump(w, action.FormAlliance, s/10)
			bump(w, action.RepayFavor, s/10)
			bump(w, action.CurryFavor, s/20)
		}
	}
}

// memoryTargetModifier scores how memories of a specific actor shift the
// appeal of taking a given action against them: strong hostile memories make
// aggression attractive and alliance unattractive, and vice versa.
func memoryTargetModifier(a *actor.Actor, k action.Kind, otherID string, turn int) int {
	mod := 0
	for _, m := range a.MemoriesAbout(otherID) {
		s := m.Strength(turn)
		if s == 0 {
			continue
		}
		if m.Hostile() {
			switch k {
			case action.Denounce, action.LaunchInvestigation, action.Sabotage,
				action.BlockPromotion, action.SpreadRumors, action.DetainSuspect:
				mod += s / 5
			case action.FormAlliance, action.CurryFavor, action.RepayFavor:
				mod -= s / 5
			}
		} else {
			switch k {
			case action.FormAlliance, action.CurryFavor, action.RepayFavor:
				mod += s / 5
			case action.Denounce, action.LaunchInvestigation, action.Sabotage,
				action.BetrayAlliance:
				mod -= s / 5
			}
		}
	}
	return mod
}

// bump adds a delta to a kind's weight only when the actor may take it at all.
func bump(w map[action.Kind]int, k action.Kind, delta int) {
	if _, ok := w[k]; ok {
		w[k] += delta
	}
}
