package engine

import (
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/action"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/actor"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/event"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/ledger"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/state"
)

// relDelta is a set of signed changes to one directed relationship edge.
type relDelta struct {
	disposition int
	trust       int
	fear        int
	respect     int
	grudge      int
	gratitude   int
}

// personDelta is a set of signed changes to an actor's own gauges.
type personDelta struct {
	disposition int
	fear        int
	grudge      int
	trust       int
	gratitude   int
	status      string // non-empty replaces the actor's status
}

// needDelta is a set of signed changes to an actor's need gauges.
type needDelta struct {
	security    int
	power       int
	loyalty     int
	recognition int
	stability   int
	ideology    int
}

// memorySpec describes the memory one side records about the interaction.
// Severity comes from the action's severity table.
type memorySpec struct {
	kind      actor.MemoryKind
	sentiment int
}

// effect is the full descriptor of what one action kind does. The executor
// is a single dispatch loop over this data; adding an action means adding a
// row, not a case.
type effect struct {
	sourceEdge relDelta
	targetEdge relDelta // the disposition column of the action table is added on top
	sourceSelf personDelta
	targetSelf personDelta

	ledgerDeltas map[ledger.Indicator]int
	// ledgerRand adds rng.Intn(n+1) on top of the fixed delta, for actions
	// whose national consequences vary in size.
	ledgerRand map[ledger.Indicator]int
	// ledgerFail replaces ledgerDeltas/ledgerRand on the failure path.
	ledgerFail map[ledger.Indicator]int

	sourceMem memorySpec
	targetMem memorySpec

	sourceNeeds needDelta
	targetNeeds needDelta

	// successChance > 0 marks the action as attemptable: the roll can fail,
	// in which case failure-path effects apply and aligned goals gain
	// frustration instead of progress.
	successChance float64

	// special runs any mutation the declarative fields cannot express.
	special func(e *Engine, gs *state.GameState, a, t *actor.Actor)
}

var effectTable = map[action.Kind]effect{
	action.SpreadRumors: {
		targetEdge:  relDelta{grudge: 10},
		targetSelf:  personDelta{grudge: 5},
		sourceMem:   memorySpec{kind: actor.MemorySpreadRumors, sentiment: 10},
		targetMem:   memorySpec{kind: actor.MemoryWasSlandered, sentiment: -40},
		sourceNeeds: needDelta{power: 5, recognition: 5},
	},
	action.FormAlliance: {
		sourceEdge:  relDelta{disposition: 20, trust: 20},
		targetEdge:  relDelta{trust: 15},
		sourceMem:   memorySpec{kind: actor.MemoryAllianceFormed, sentiment: 50},
		targetMem:   memorySpec{kind: actor.MemoryAllianceFormed, sentiment: 50},
		sourceNeeds: needDelta{security: 15, loyalty: 10},
		targetNeeds: needDelta{security: 10, loyalty: 10},
		special: func(e *Engine, gs *state.GameState, a, t *actor.Actor) {
			GetOrCreateRelation(gs, a.ID, t.ID).FormAlliance(gs.Turn)
			GetOrCreateRelation(gs, t.ID, a.ID).FormAlliance(gs.Turn)
		},
	},
	action.BetrayAlliance: {
		sourceEdge:  relDelta{disposition: -30, trust: -40},
		targetEdge:  relDelta{trust: -50, grudge: 40},
		targetSelf:  personDelta{grudge: 20},
		sourceMem:   memorySpec{kind: actor.MemoryBetrayedAlly, sentiment: -10},
		targetMem:   memorySpec{kind: actor.MemoryWasBetrayed, sentiment: -90},
		sourceNeeds: needDelta{power: 10, loyalty: -20, security: -5},
		targetNeeds: needDelta{security: -20, loyalty: -10},
		special: func(e *Engine, gs *state.GameState, a, t *actor.Actor) {
			GetOrCreateRelation(gs, a.ID, t.ID).BreakAlliance()
			GetOrCreateRelation(gs, t.ID, a.ID).BreakAlliance()
			GetOrCreateRelation(gs, t.ID, a.ID).MarkRivalry()
		},
	},
	action.Denounce: {
		sourceEdge:   relDelta{grudge: 5},
		targetEdge:   relDelta{fear: 20, grudge: 30},
		targetSelf:   personDelta{fear: 15, grudge: 10},
		ledgerDeltas: map[ledger.Indicator]int{ledger.EliteLoyalty: -2},
		sourceMem:    memorySpec{kind: actor.MemoryDenounced, sentiment: 15},
		targetMem:    memorySpec{kind: actor.MemoryWasDenounced, sentiment: -70},
		sourceNeeds:  needDelta{power: 10, recognition: 10, security: -5},
		targetNeeds:  needDelta{security: -20},
	},
	action.LaunchInvestigation: {
		sourceEdge:  relDelta{trust: 10},
		targetEdge:  relDelta{fear: 25, disposition: -10},
		targetSelf:  personDelta{fear: 20},
		sourceMem:   memorySpec{kind: actor.MemoryInvestigated, sentiment: 15},
		targetMem:   memorySpec{kind: actor.MemoryWasInvestigated, sentiment: -65},
		sourceNeeds: needDelta{power: 10},
		targetNeeds: needDelta{security: -25},
	},
	action.BlockPromotion: {
		targetEdge:  relDelta{grudge: 25, respect: -10},
		targetSelf:  personDelta{grudge: 15},
		sourceMem:   memorySpec{kind: actor.MemoryBlockedPromotion, sentiment: 15},
		targetMem:   memorySpec{kind: actor.MemoryWasBlocked, sentiment: -55},
		sourceNeeds: needDelta{power: 15},
		targetNeeds: needDelta{recognition: -15, power: -10},
	},
	action.CurryFavor: {
		sourceEdge:  relDelta{respect: 10, gratitude: 5},
		targetEdge:  relDelta{disposition: 10, gratitude: 10},
		sourceMem:   memorySpec{kind: actor.MemoryCurriedFavor, sentiment: 25},
		targetMem:   memorySpec{kind: actor.MemoryReceivedFavor, sentiment: 35},
		sourceNeeds: needDelta{recognition: 10, security: 5},
	},
	action.SeekProtection: {
		sourceEdge:  relDelta{respect: 15, fear: 5},
		targetEdge:  relDelta{disposition: 5, respect: 5},
		sourceMem:   memorySpec{kind: actor.MemoryProtectedBy, sentiment: 30},
		targetMem:   memorySpec{kind: actor.MemoryWasProtected, sentiment: 25},
		sourceNeeds: needDelta{security: 20},
		special: func(e *Engine, gs *state.GameState, a, t *actor.Actor) {
			GetOrCreateRelation(gs, a.ID, t.ID).Client = true
			GetOrCreateRelation(gs, t.ID, a.ID).Patron = true
		},
	},
	action.Sabotage: {
		targetEdge:   relDelta{grudge: 30, trust: -20},
		targetSelf:   personDelta{grudge: 15},
		ledgerDeltas: map[ledger.Indicator]int{ledger.IndustrialOutput: -2},
		sourceMem:    memorySpec{kind: actor.MemorySabotaged, sentiment: 10},
		targetMem:    memorySpec{kind: actor.MemoryWasSabotaged, sentiment: -60},
		sourceNeeds:  needDelta{power: 10, stability: -5},
		targetNeeds:  needDelta{stability: -15},
	},
	action.SurveilRival: {
		sourceEdge:  relDelta{trust: -5},
		targetEdge:  relDelta{fear: 10},
		sourceMem:   memorySpec{kind: actor.MemorySurveilled, sentiment: 5},
		targetMem:   memorySpec{kind: actor.MemoryWasSurveilled, sentiment: -35},
		sourceNeeds: needDelta{security: 10},
	},
	action.GatherCompromat: {
		targetEdge:  relDelta{fear: 15},
		sourceMem:   memorySpec{kind: actor.MemorySurveilled, sentiment: 10},
		targetMem:   memorySpec{kind: actor.MemoryWasSurveilled, sentiment: -30},
		sourceNeeds: needDelta{power: 10, security: 5},
	},
	action.RepayFavor: {
		sourceEdge:  relDelta{gratitude: -10, disposition: 10},
		targetEdge:  relDelta{disposition: 10, gratitude: 10, trust: 10},
		sourceMem:   memorySpec{kind: actor.MemoryCurriedFavor, sentiment: 25},
		targetMem:   memorySpec{kind: actor.MemoryReceivedFavor, sentiment: 40},
		sourceNeeds: needDelta{loyalty: 10},
	},

	action.NegotiateTreaty: {
		successChance: 0.6,
		ledgerDeltas:  map[ledger.Indicator]int{ledger.InternationalStanding: 3},
		ledgerRand:    map[ledger.Indicator]int{ledger.InternationalStanding: 3},
		ledgerFail:    map[ledger.Indicator]int{ledger.InternationalStanding: -2},
		sourceMem:     memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 20},
		targetMem:     memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 15},
		sourceNeeds:   needDelta{recognition: 10},
	},
	action.HandleIncident: {
		successChance: 0.65,
		ledgerDeltas:  map[ledger.Indicator]int{ledger.InternationalStanding: 2, ledger.Stability: 1},
		ledgerRand:    map[ledger.Indicator]int{ledger.InternationalStanding: 2},
		ledgerFail:    map[ledger.Indicator]int{ledger.InternationalStanding: -3},
		sourceMem:     memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 15},
		targetMem:     memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 10},
		sourceNeeds:   needDelta{recognition: 10, stability: 5},
	},
	action.HostDelegation: {
		ledgerDeltas: map[ledger.Indicator]int{ledger.InternationalStanding: 2},
		sourceMem:    memorySpec{kind: actor.MemorySharedGathering, sentiment: 20},
		targetMem:    memorySpec{kind: actor.MemorySharedGathering, sentiment: 20},
		sourceNeeds:  needDelta{recognition: 10},
	},
	action.RecallEnvoy: {
		ledgerDeltas: map[ledger.Indicator]int{ledger.InternationalStanding: -1},
		targetEdge:   relDelta{fear: 5},
		sourceMem:    memorySpec{kind: actor.MemoryGaveOrders, sentiment: 10},
		targetMem:    memorySpec{kind: actor.MemoryTookOrders, sentiment: -10},
	},

	action.SetProductionQuota: {
		ledgerDeltas: map[ledger.Indicator]int{ledger.IndustrialOutput: 2},
		ledgerRand:   map[ledger.Indicator]int{ledger.IndustrialOutput: 3},
		targetEdge:   relDelta{respect: 5},
		sourceMem:    memorySpec{kind: actor.MemoryGaveOrders, sentiment: 15},
		targetMem:    memorySpec{kind: actor.MemoryTookOrders, sentiment: 5},
		sourceNeeds:  needDelta{power: 5, recognition: 5},
	},
	action.ReallocateResources: {
		ledgerDeltas: map[ledger.Indicator]int{ledger.IndustrialOutput: 1, ledger.Treasury: -1},
		sourceMem:    memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 10},
		targetMem:    memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 10},
		sourceNeeds:  needDelta{power: 5},
	},
	action.AddressShortage: {
		successChance: 0.7,
		ledgerDeltas:  map[ledger.Indicator]int{ledger.FoodSupply: 3, ledger.PopularSupport: 1},
		ledgerRand:    map[ledger.Indicator]int{ledger.FoodSupply: 3},
		ledgerFail:    map[ledger.Indicator]int{ledger.PopularSupport: -2},
		sourceMem:     memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 20},
		targetMem:     memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 15},
		sourceNeeds:   needDelta{recognition: 10, stability: 10},
	},
	action.ReviewPlanTargets: {
		ledgerDeltas: map[ledger.Indicator]int{ledger.IndustrialOutput: 1},
		sourceMem:    memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 10},
		targetMem:    memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 10},
	},

	action.DetainSuspect: {
		sourceEdge:   relDelta{fear: -5},
		targetEdge:   relDelta{fear: 40, grudge: 30, disposition: -20},
		targetSelf:   personDelta{fear: 30, status: actor.StatusDetained},
		ledgerDeltas: map[ledger.Indicator]int{ledger.Stability: 1, ledger.EliteLoyalty: -2},
		sourceMem:    memorySpec{kind: actor.MemoryDetained, sentiment: 20},
		targetMem:    memorySpec{kind: actor.MemoryWasDetained, sentiment: -90},
		sourceNeeds:  needDelta{power: 15, security: 10},
		targetNeeds:  needDelta{security: -40},
	},
	action.ExpandSurveillance: {
		targetEdge:   relDelta{fear: 15},
		targetSelf:   personDelta{fear: 10},
		ledgerDeltas: map[ledger.Indicator]int{ledger.Stability: 1, ledger.PopularSupport: -1},
		sourceMem:    memorySpec{kind: actor.MemorySurveilled, sentiment: 10},
		targetMem:    memorySpec{kind: actor.MemoryWasSurveilled, sentiment: -30},
		sourceNeeds:  needDelta{security: 15},
	},
	action.RootOutSpies: {
		successChance: 0.5,
		targetEdge:    relDelta{fear: 20},
		targetSelf:    personDelta{fear: 15},
		ledgerDeltas:  map[ledger.Indicator]int{ledger.Stability: 2},
		ledgerFail:    map[ledger.Indicator]int{ledger.EliteLoyalty: -1},
		sourceMem:     memorySpec{kind: actor.MemoryInvestigated, sentiment: 15},
		targetMem:     memorySpec{kind: actor.MemoryWasInvestigated, sentiment: -50},
		sourceNeeds:   needDelta{security: 10},
		targetNeeds:   needDelta{security: -15},
	},
	action.PurgeDepartment: {
		targetEdge:   relDelta{fear: 35, grudge: 25},
		targetSelf:   personDelta{fear: 25},
		ledgerDeltas: map[ledger.Indicator]int{ledger.EliteLoyalty: -3, ledger.Stability: -1},
		sourceMem:    memorySpec{kind: actor.MemoryDetained, sentiment: 15},
		targetMem:    memorySpec{kind: actor.MemoryWasInvestigated, sentiment: -75},
		sourceNeeds:  needDelta{power: 20, security: 5},
		targetNeeds:  needDelta{security: -30},
	},

	action.ReformMinistry: {
		ledgerDeltas: map[ledger.Indicator]int{ledger.Stability: 1, ledger.IndustrialOutput: 1},
		sourceMem:    memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 15},
		targetMem:    memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 10},
		sourceNeeds:  needDelta{recognition: 10},
	},
	action.ManageFoodSupply: {
		successChance: 0.7,
		ledgerDeltas:  map[ledger.Indicator]int{ledger.FoodSupply: 3},
		ledgerRand:    map[ledger.Indicator]int{ledger.FoodSupply: 2},
		ledgerFail:    map[ledger.Indicator]int{ledger.FoodSupply: -1, ledger.PopularSupport: -1},
		sourceMem:     memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 15},
		targetMem:     memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 10},
		sourceNeeds:   needDelta{stability: 10},
	},
	action.IssueRegulation: {
		ledgerDeltas: map[ledger.Indicator]int{ledger.Stability: 1},
		sourceMem:    memorySpec{kind: actor.MemoryGaveOrders, sentiment: 10},
		targetMem:    memorySpec{kind: actor.MemoryTookOrders, sentiment: 0},
	},

	action.IdeologicalCampaign: {
		ledgerDeltas: map[ledger.Indicator]int{ledger.PopularSupport: 1, ledger.EliteLoyalty: 1},
		targetEdge:   relDelta{respect: 5},
		sourceMem:    memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 20},
		targetMem:    memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 15},
		sourceNeeds:  needDelta{ideology: 15, recognition: 10},
		targetNeeds:  needDelta{ideology: 10},
	},
	action.EnforceDiscipline: {
		targetEdge:   relDelta{fear: 15, respect: 5},
		targetSelf:   personDelta{fear: 10},
		ledgerDeltas: map[ledger.Indicator]int{ledger.EliteLoyalty: 2},
		sourceMem:    memorySpec{kind: actor.MemoryGaveOrders, sentiment: 10},
		targetMem:    memorySpec{kind: actor.MemoryTookOrders, sentiment: -20},
		sourceNeeds:  needDelta{ideology: 10, power: 5},
		targetNeeds:  needDelta{ideology: 5},
	},
	action.OrganizeStudySession: {
		sourceEdge:  relDelta{disposition: 5},
		targetEdge:  relDelta{disposition: 5, respect: 5},
		sourceMem:   memorySpec{kind: actor.MemorySharedGathering, sentiment: 15},
		targetMem:   memorySpec{kind: actor.MemorySharedGathering, sentiment: 15},
		sourceNeeds: needDelta{ideology: 10, loyalty: 5},
		targetNeeds: needDelta{ideology: 10},
	},

	action.InspectGarrison: {
		ledgerDeltas: map[ledger.Indicator]int{ledger.MilitaryLoyalty: 1},
		targetEdge:   relDelta{fear: 5, respect: 5},
		sourceMem:    memorySpec{kind: actor.MemoryGaveOrders, sentiment: 10},
		targetMem:    memorySpec{kind: actor.MemoryTookOrders, sentiment: 0},
	},
	action.PoliticalEducation: {
		ledgerDeltas: map[ledger.Indicator]int{ledger.MilitaryLoyalty: 1},
		sourceMem:    memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 10},
		targetMem:    memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 10},
		sourceNeeds:  needDelta{ideology: 10},
		targetNeeds:  needDelta{ideology: 10},
	},
	action.SecureArmyLoyalty: {
		successChance: 0.7,
		ledgerDeltas:  map[ledger.Indicator]int{ledger.MilitaryLoyalty: 3},
		ledgerRand:    map[ledger.Indicator]int{ledger.MilitaryLoyalty: 2},
		ledgerFail:    map[ledger.Indicator]int{ledger.MilitaryLoyalty: -1},
		targetEdge:    relDelta{trust: 10},
		sourceMem:     memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 20},
		targetMem:     memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 15},
		sourceNeeds:   needDelta{security: 10, power: 5},
	},

	action.CultivateClientele: {
		sourceEdge:  relDelta{disposition: 10, trust: 10},
		targetEdge:  relDelta{disposition: 15, gratitude: 15},
		sourceMem:   memorySpec{kind: actor.MemoryCurriedFavor, sentiment: 25},
		targetMem:   memorySpec{kind: actor.MemoryReceivedFavor, sentiment: 35},
		sourceNeeds: needDelta{power: 10, loyalty: 5},
		special: func(e *Engine, gs *state.GameState, a, t *actor.Actor) {
			GetOrCreateRelation(gs, a.ID, t.ID).Patron = true
			GetOrCreateRelation(gs, t.ID, a.ID).Client = true
		},
	},
	action.OrganizeGathering: {
		sourceEdge:  relDelta{disposition: 10},
		targetEdge:  relDelta{disposition: 10, respect: 5},
		sourceMem:   memorySpec{kind: actor.MemorySharedGathering, sentiment: 25},
		targetMem:   memorySpec{kind: actor.MemorySharedGathering, sentiment: 25},
		sourceNeeds: needDelta{recognition: 15, loyalty: 10},
		targetNeeds: needDelta{loyalty: 5},
	},
	action.IssueDirective: {
		targetEdge:   relDelta{fear: 10, respect: 10},
		ledgerDeltas: map[ledger.Indicator]int{ledger.Stability: 1},
		sourceMem:    memorySpec{kind: actor.MemoryGaveOrders, sentiment: 15},
		targetMem:    memorySpec{kind: actor.MemoryTookOrders, sentiment: -10},
		sourceNeeds:  needDelta{power: 10},
	},
	action.ConveneStandingCommittee: {
		sourceEdge:   relDelta{respect: 5},
		targetEdge:   relDelta{respect: 10},
		ledgerDeltas: map[ledger.Indicator]int{ledger.EliteLoyalty: 1},
		sourceMem:    memorySpec{kind: actor.MemorySharedGathering, sentiment: 20},
		targetMem:    memorySpec{kind: actor.MemorySharedGathering, sentiment: 20},
		sourceNeeds:  needDelta{power: 10, recognition: 10},
	},
	action.ProposeLawChange: {
		sourceMem:   memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 20},
		targetMem:   memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 10},
		sourceNeeds: needDelta{power: 15, recognition: 10},
		special: func(e *Engine, gs *state.GameState, a, t *actor.Actor) {
			e.proposeLaw(gs, a)
		},
	},

	action.RespondToCrisis: {
		successChance: 0.65,
		ledgerDeltas:  map[ledger.Indicator]int{ledger.Stability: 2},
		ledgerRand:    map[ledger.Indicator]int{ledger.Stability: 3},
		ledgerFail:    map[ledger.Indicator]int{ledger.Stability: -1},
		sourceMem:     memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 25},
		targetMem:     memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 15},
		sourceNeeds:   needDelta{recognition: 15, stability: 10},
	},
	action.SuppressUnrest: {
		successChance: 0.7,
		ledgerDeltas:  map[ledger.Indicator]int{ledger.Stability: 3, ledger.PopularSupport: -2},
		ledgerRand:    map[ledger.Indicator]int{ledger.Stability: 2},
		ledgerFail:    map[ledger.Indicator]int{ledger.Stability: -2, ledger.PopularSupport: -1},
		targetEdge:    relDelta{fear: 15},
		sourceMem:     memorySpec{kind: actor.MemoryGaveOrders, sentiment: 10},
		targetMem:     memorySpec{kind: actor.MemoryTookOrders, sentiment: -15},
		sourceNeeds:   needDelta{power: 10, stability: 10},
	},
	action.StabilizeMarkets: {
		successChance: 0.7,
		ledgerDeltas:  map[ledger.Indicator]int{ledger.FoodSupply: 2, ledger.Treasury: -1},
		ledgerRand:    map[ledger.Indicator]int{ledger.FoodSupply: 2},
		ledgerFail:    map[ledger.Indicator]int{ledger.Treasury: -2},
		sourceMem:     memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 15},
		targetMem:     memorySpec{kind: actor.MemoryGovernedTogether, sentiment: 10},
		sourceNeeds:   needDelta{stability: 10},
	},
}

// goalProgressTable maps goal kinds to the actions that advance them and by
// how much. Actions not listed for a goal leave it unchanged.
var goalProgressTable = map[actor.GoalKind]map[action.Kind]int{
	actor.GoalDestroyRival: {
		action.DetainSuspect:       40,
		action.LaunchInvestigation: 25,
		action.Denounce:            15,
		action.Sabotage:            15,
		action.BlockPromotion:      10,
		action.SpreadRumors:        5,
	},
	actor.GoalBlockRival: {
		action.BlockPromotion: 30,
		action.SpreadRumors:   10,
	},
	actor.GoalSeekPromotion: {
		action.CurryFavor:         15,
		action.OrganizeGathering:  10,
		action.CultivateClientele: 10,
	},
	actor.GoalCultivatePatron: {
		action.CurryFavor: 20,
		action.RepayFavor: 20,
	},
	actor.GoalSecureProtection: {
		action.SeekProtection: 30,
		action.FormAlliance:   20,
	},
	actor.GoalAvoidPurge: {
		action.SeekProtection: 15,
		action.CurryFavor:     10,
	},
	actor.GoalExposeTraitor: {
		action.RootOutSpies:        30,
		action.LaunchInvestigation: 15,
		action.ExpandSurveillance:  10,
	},
	actor.GoalFixShortages: {
		action.AddressShortage:  30,
		action.ManageFoodSupply: 20,
		action.StabilizeMarkets: 15,
	},
	actor.GoalMeetQuota: {
		action.SetProductionQuota:  25,
		action.ReallocateResources: 15,
	},
	actor.GoalSecureArmyLoyalty: {
		action.SecureArmyLoyalty:  30,
		action.InspectGarrison:    10,
		action.PoliticalEducation: 10,
	},
	actor.GoalEnforceOrthodoxy: {
		action.IdeologicalCampaign: 20,
		action.EnforceDiscipline:   20,
	},
	actor.GoalBuildClientele: {
		action.CultivateClientele: 25,
		action.OrganizeGathering:  10,
		action.RepayFavor:         10,
	},
	actor.GoalGainRecognition: {
		action.RespondToCrisis:   25,
		action.OrganizeGathering: 15,
		action.HostDelegation:    10,
	},
	actor.GoalSuppressDissent: {
		action.SuppressUnrest:     30,
		action.ExpandSurveillance: 15,
		action.DetainSuspect:      20,
	},
	actor.GoalDeflectBlame: {
		action.SpreadRumors: 20,
		action.Denounce:     15,
	},
	actor.GoalPurchaseProtection: {
		action.CurryFavor: 20,
		action.RepayFavor: 15,
	},
	actor.GoalCompileDossiers: {
		action.ExpandSurveillance: 25,
		action.GatherCompromat:    20,
	},
	actor.GoalGroomCadres: {
		action.PoliticalEducation: 25,
		action.CultivateClientele: 10,
	},
}

// rollLedgerBonuses applies variable-size ledger gains in the fixed indicator
// order. Map iteration order would consume the random sequence differently
// from run to run once a row names more than one indicator.
func (e *Engine) rollLedgerBonuses(gs *state.GameState, bonuses map[ledger.Indicator]int) {
	for _, k := range ledger.Indicators {
		if n, ok := bonuses[k]; ok {
			gs.Ledger.Adjust(k, e.rng.Intn(n+1))
		}
	}
}

// execute applies one action's full consequences and returns a surfaced
// event when the visibility roll passes. State mutation happens regardless
// of visibility; invisible maneuvers still leave memories and scars.
func (e *Engine) execute(gs *state.GameState, a, t *actor.Actor, kind action.Kind) *event.Event {
	eff := effectTable[kind]

	succeeded := true
	if eff.successChance > 0 {
		succeeded = chance(e.rng, eff.successChance)
	}

	src := GetOrCreateRelation(gs, a.ID, t.ID)
	tgt := GetOrCreateRelation(gs, t.ID, a.ID)
	if src == nil || tgt == nil {
		// Target vanished between selection and execution; treat as skip.
		return nil
	}

	applyRelDelta(src, eff.sourceEdge)
	applyRelDelta(tgt, eff.targetEdge)
	tgt.Disposition += action.DispositionEffect(kind)
	src.Clamp()
	tgt.Clamp()

	applyPersonDelta(a, eff.sourceSelf)
	applyPersonDelta(t, eff.targetSelf)

	if succeeded {
		for k, d := range eff.ledgerDeltas {
			gs.Ledger.Adjust(k, d)
		}
		e.rollLedgerBonuses(gs, eff.ledgerRand)
	} else {
		for k, d := range eff.ledgerFail {
			gs.Ledger.Adjust(k, d)
		}
	}

	severity := action.Severity(kind)
	if eff.sourceMem.kind != "" {
		a.Remember(actor.Memory{
			Kind:      eff.sourceMem.kind,
			Turn:      gs.Turn,
			OtherID:   t.ID,
			Severity:  severity,
			Sentiment: eff.sourceMem.sentiment,
		})
	}
	if eff.targetMem.kind != "" {
		t.Remember(actor.Memory{
			Kind:      eff.targetMem.kind,
			Turn:      gs.Turn,
			OtherID:   a.ID,
			Severity:  severity,
			Sentiment: eff.targetMem.sentiment,
		})
	}

	applyNeedDelta(&a.Needs, eff.sourceNeeds)
	applyNeedDelta(&t.Needs, eff.targetNeeds)

	if succeeded {
		for goalKind, increments := range goalProgressTable {
			if inc, ok := increments[kind]; ok {
				a.AdvanceGoals(goalKind, t.ID, inc)
			}
		}
	} else {
		for goalKind, increments := range goalProgressTable {
			if _, ok := increments[kind]; ok {
				a.FrustrateGoals(goalKind, 10)
			}
		}
	}

	if eff.special != nil {
		eff.special(e, gs, a, t)
	}

	src.LastInteractionTurn = gs.Turn
	tgt.LastInteractionTurn = gs.Turn
	a.LastActionTurn = gs.Turn
	a.Clamp()
	t.Clamp()

	var exposure *event.Event
	if a.Espionage != nil && a.Espionage.Active {
		exposure = e.updateEspionage(gs, a, kind)
	}
	if exposure != nil {
		return exposure
	}

	if !chance(e.rng, visibility(gs, a, t, kind)) {
		return nil
	}
	ev := e.buildActionEvent(gs, a, t, kind, succeeded)
	return &ev
}

func applyRelDelta(r *actor.Relationship, d relDelta) {
	r.Disposition += d.disposition
	r.Trust += d.trust
	r.Fear += d.fear
	r.Respect += d.respect
	r.Grudge += d.grudge
	r.Gratitude += d.gratitude
}

func applyPersonDelta(a *actor.Actor, d personDelta) {
	a.Disposition += d.disposition
	a.Fear += d.fear
	a.Grudge += d.grudge
	a.Trust += d.trust
	a.Gratitude += d.gratitude
	if d.status != "" {
		a.Status = d.status
	}
}

func applyNeedDelta(n *actor.Needs, d needDelta) {
	n.Security += d.security
	n.Power += d.power
	n.Loyalty += d.loyalty
	n.Recognition += d.recognition
	n.Stability += d.stability
	n.Ideology += d.ideology
}

// visibility computes the probability that an action reaches the player.
func visibility(gs *state.GameState, a, t *actor.Actor, kind action.Kind) float64 {
	roleActor := func(id string) bool {
		return id != "" && (id == gs.PatronID || id == gs.RivalID)
	}
	if roleActor(a.ID) || roleActor(t.ID) {
		return 1.0
	}

	p := 0.5
	if a.Position >= 4 || t.Position >= 4 {
		p = 0.9
	}
	if action.Dramatic(kind) {
		p += 0.25
	}
	if action.Governance(kind) {
		p += 0.15
	}
	if track := action.RequiredTrack(kind); track != "" && track == gs.PlayerTrack {
		p += 0.20
	}
	if p > 1 {
		p = 1
	}
	return p
}

// buildActionEvent wraps an executed action in a structured narrative event.
func (e *Engine) buildActionEvent(gs *state.GameState, a, t *actor.Actor, kind action.Kind, succeeded bool) event.Event {
	cat := event.CategoryIntrigue
	if action.Governance(kind) {
		cat = event.CategoryGovernance
	}

	pri := event.PriorityNormal
	switch {
	case action.Dramatic(kind):
		pri = event.PriorityElevated
	case action.Governance(kind):
		pri = event.PriorityBackground
	}
	if a.ID == gs.PatronID || a.ID == gs.RivalID || t.ID == gs.PatronID || t.ID == gs.RivalID {
		if pri < event.PriorityElevated {
			pri = event.PriorityElevated
		}
	}

	ev := event.New(cat, pri, a.ID, gs.Turn)
	ev.TargetID = t.ID
	ev.Action = kind
	ev.Options = actionOptions(kind, succeeded)
	return ev
}

// actionOptions supplies the player's response choices: labels plus indicator
// deltas only; a collaborator renders the prose.
func actionOptions(kind action.Kind, succeeded bool) []event.Option {
	if action.Governance(kind) {
		return []event.Option{
			{Label: "commend", Effects: map[ledger.Indicator]int{ledger.EliteLoyalty: 1, ledger.Standing: 1}},
			{Label: "take_note", Effects: nil},
		}
	}
	if !succeeded {
		return []event.Option{
			{Label: "exploit_failure", Effects: map[ledger.Indicator]int{ledger.Standing: 2, ledger.EliteLoyalty: -1}},
			{Label: "stay_out", Effects: nil},
		}
	}
	return []event.Option{
		{Label: "intervene", Effects: map[ledger.Indicator]int{ledger.Standing: -1, ledger.Network: 2}},
		{Label: "observe", Effects: map[ledger.Indicator]int{ledger.Network: 1}},
		{Label: "ignore", Effects: nil},
	}
}

// updateEspionage advances an active asset's exposure after an action and
// rolls for detection. A detected asset is exposed, loses active status, and
// produces an urgent event that preempts normal visibility.
func (e *Engine) updateEspionage(gs *state.GameState, a *actor.Actor, kind action.Kind) *event.Event {
	esp := a.Espionage
	esp.LastActivityTurn = gs.Turn

	risk := action.Severity(kind)/20 - esp.Tradecraft/25
	if action.Dramatic(kind) {
		risk += 2
	}
	if risk < 0 {
		risk = 0
	}
	esp.Suspicion += risk
	esp.Cover -= 1 + risk/2
	a.Clamp()

	p := float64(esp.Suspicion) * float64(150-esp.Cover) / 40000
	if !chance(e.rng, p) {
		return nil
	}

	esp.Active = false
	a.Status = actor.StatusExposed
	a.Remember(actor.Memory{
		Kind:      actor.MemoryWasInvestigated,
		Turn:      gs.Turn,
		Severity:  100,
		Sentiment: -100,
	})
	gs.Ledger.SetFlag("spy_exposed")
	gs.Ledger.Adjust(ledger.Stability, -2)

	ev := event.New(event.CategoryEspionage, event.PriorityUrgent, a.ID, gs.Turn)
	ev.Options = []event.Option{
		{Label: "public_trial", Effects: map[ledger.Indicator]int{ledger.Stability: 2, ledger.InternationalStanding: -2}},
		{Label: "quiet_removal", Effects: map[ledger.Indicator]int{ledger.EliteLoyalty: 1}},
	}
	return &ev
}
