package engine

import (
	"io"
	"log/slog"
	"testing"

	"github.com/ryanrudat/Nomenklatura-sub003/pkg/event"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/ledger"
)

func TestEvaluateReactivePatronFiresOnLowFavor(t *testing.T) {
	e := alwaysPassEngine()
	gs := populatedState()
	gs.Ledger.Set(ledger.PatronFavor, 10)

	ev := e.EvaluateReactive(gs)
	if ev == nil {
		t.Fatal("expected a patron event")
	}
	if ev.Category != event.CategoryPatron {
		t.Fatalf("category = %s, want patron", ev.Category)
	}
	if ev.Priority != event.PriorityUrgent {
		t.Errorf("priority = %s, want urgent for favor 10", ev.Priority)
	}
	if ev.ActorID != gs.PatronID {
		t.Errorf("actor = %s, want the patron", ev.ActorID)
	}
	if len(ev.Options) == 0 {
		t.Error("reactive events should offer response options")
	}

	// The fired category goes on cooldown.
	if !gs.CategoryOnCooldown(event.CategoryPatron) {
		t.Error("patron category should be on cooldown after firing")
	}
}

func TestEvaluateReactiveCooldownSilences(t *testing.T) {
	e := alwaysPassEngine()
	gs := populatedState()
	gs.Ledger.Set(ledger.PatronFavor, 10)
	gs.SetCategoryCooldown(event.CategoryPatron, gs.Turn+reactiveCooldownTurns)

	if ev := e.EvaluateReactive(gs); ev != nil && ev.Category == event.CategoryPatron {
		t.Error("patron event fired during its cooldown")
	}

	// Past the cooldown turn the category is live again.
	gs.Turn += reactiveCooldownTurns
	ev := e.EvaluateReactive(gs)
	if ev == nil || ev.Category != event.CategoryPatron {
		t.Error("patron event should fire once the cooldown expires")
	}
}

func TestEvaluateReactivePatronOutranksRival(t *testing.T) {
	e := alwaysPassEngine()
	gs := populatedState()
	gs.Ledger.Set(ledger.PatronFavor, 10)
	gs.Ledger.Set(ledger.RivalThreat, 90)
	gs.Actor(gs.RivalID).Personality.Ambitious = 90

	ev := e.EvaluateReactive(gs)
	if ev == nil || ev.Category != event.CategoryPatron {
		t.Errorf("patron check precedes rival check, got %+v", ev)
	}
}

func TestEvaluateReactiveRivalThreat(t *testing.T) {
	e := alwaysPassEngine()
	gs := populatedState()
	gs.Ledger.Set(ledger.RivalThreat, 90)
	gs.Ledger.Set(ledger.Standing, 30)
	rival := gs.Actor(gs.RivalID)
	rival.Personality.Ambitious = 90
	rival.Grudge = 60

	ev := e.EvaluateReactive(gs)
	if ev == nil {
		t.Fatal("expected a rival event")
	}
	if ev.Category != event.CategoryRival {
		t.Fatalf("category = %s, want rival", ev.Category)
	}
	if ev.Priority != event.PriorityUrgent {
		t.Errorf("priority = %s, want urgent at threat 90", ev.Priority)
	}
}

func TestEvaluateReactiveSkipsInactiveRoles(t *testing.T) {
	e := alwaysPassEngine()
	gs := populatedState()
	gs.Ledger.Set(ledger.PatronFavor, 10)
	gs.Actor(gs.PatronID).Status = "detained"

	if ev := e.EvaluateReactive(gs); ev != nil && ev.Category == event.CategoryPatron {
		t.Error("detained patron should not generate patron events")
	}
}

func TestEvaluateReactiveQuietWhenNothingPresses(t *testing.T) {
	// A non-passing random source plus comfortable indicators: no reactive
	// event at all.
	e := NewEngine(slog.New(slog.NewTextHandler(io.Discard, nil)),
		&scriptedRand{floats: []float64{0.99, 0.99, 0.99, 0.99, 0.99, 0.99}})
	gs := populatedState()
	gs.Ledger.Set(ledger.PatronFavor, 55)
	gs.Ledger.Set(ledger.RivalThreat, 10)

	if ev := e.EvaluateReactive(gs); ev != nil {
		t.Errorf("expected no reactive event, got %+v", ev)
	}
}

func TestEvaluateReactiveAllyReachesOut(t *testing.T) {
	e := alwaysPassEngine()
	gs := populatedState()
	gs.Ledger.Set(ledger.PatronFavor, 55)
	gs.Ledger.Set(ledger.RivalThreat, 0)
	gs.Ledger.Set(ledger.Network, 20)
	ally := gs.Actor("kosygin")
	ally.Disposition = 70
	ally.Trust = 60

	ev := e.EvaluateReactive(gs)
	if ev == nil {
		t.Fatal("expected an ally event")
	}
	if ev.Category != event.CategoryAlly {
		t.Fatalf("category = %s, want ally", ev.Category)
	}
	if ev.ActorID != "kosygin" {
		t.Errorf("actor = %s, want kosygin", ev.ActorID)
	}
}
