package state

import (
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/ledger"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/scenario"
)

// defaultIndicatorValue is where every indicator starts unless the scenario
// overrides it.
const defaultIndicatorValue = 50

// NewFromScenario builds the opening game state for a scenario. Relationship
// edges are not created here; the engine's lifecycle manager initializes them
// so that bulk and lazy edge creation share one rule set.
func NewFromScenario(scen *scenario.Scenario) *GameState {
	gs := NewGameState()
	gs.Scenario = scen.Name
	gs.Turn = 1
	gs.PlayerTrack = scen.PlayerTrack
	gs.PlayerPosition = scen.PlayerPosition
	gs.PatronID = scen.PatronID
	gs.RivalID = scen.RivalID
	gs.ContactIDs = append([]string(nil), scen.ContactIDs...)
	gs.Committee = append([]string(nil), scen.Committee...)

	for _, k := range ledger.Indicators {
		gs.Ledger.Set(k, defaultIndicatorValue)
	}
	for k, v := range scen.Indicators {
		gs.Ledger.Set(k, v)
	}

	for _, spec := range scen.Actors {
		gs.AddActor(spec.BuildActor())
	}

	return gs
}
