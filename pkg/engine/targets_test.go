package engine

import (
	"testing"

	"github.com/ryanrudat/Nomenklatura-sub003/pkg/action"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/actor"
)

func TestPairOnCooldown(t *testing.T) {
	gs := newTestState(
		testActor("a", actor.TrackParty, 4),
		testActor("b", actor.TrackParty, 4),
	)
	gs.Turn = 10

	if pairOnCooldown(gs, "a", "b") {
		t.Error("pair with no history should not be on cooldown")
	}

	r := GetOrCreateRelation(gs, "a", "b")
	r.LastInteractionTurn = 9
	if !pairOnCooldown(gs, "a", "b") {
		t.Error("pair that interacted last turn should be on cooldown")
	}
	if !pairOnCooldown(gs, "b", "a") {
		t.Error("cooldown should apply in both directions")
	}

	r.LastInteractionTurn = 10 - pairCooldown
	if pairOnCooldown(gs, "a", "b") {
		t.Error("pair past the cooldown window should be free")
	}
}

func TestSelectTargetUpwardManeuversNeedSeniors(t *testing.T) {
	e := newTestEngine(1)
	top := testActor("top", actor.TrackParty, 7)
	gs := newTestState(top, testActor("junior", actor.TrackParty, 2))

	if got := e.selectTarget(gs, top, action.CurryFavor, nil); got != nil {
		t.Errorf("highest-ranked actor has nobody to flatter, got %s", got.ID)
	}

	junior := gs.Actor("junior")
	got := e.selectTarget(gs, junior, action.SeekProtection, nil)
	if got == nil || got.ID != "top" {
		t.Errorf("junior should seek protection upward, got %v", got)
	}
}

func TestSelectTargetBetrayalRequiresAgedAlliance(t *testing.T) {
	e := newTestEngine(1)
	a := testActor("a", actor.TrackParty, 5)
	b := testActor("b", actor.TrackSecurity, 5)
	gs := newTestState(a, b)
	gs.Turn = 10

	if got := e.selectTarget(gs, a, action.BetrayAlliance, nil); got != nil {
		t.Errorf("no allies, expected nil target, got %s", got.ID)
	}

	r := GetOrCreateRelation(gs, "a", "b")
	r.FormAlliance(10)
	if got := e.selectTarget(gs, a, action.BetrayAlliance, nil); got != nil {
		t.Errorf("fresh alliance must not be betrayable, got %s", got.ID)
	}

	r.AllianceTurn = 10 - actor.AllianceBetrayalAge
	got := e.selectTarget(gs, a, action.BetrayAlliance, nil)
	if got == nil || got.ID != "b" {
		t.Errorf("aged alliance should be betrayable, got %v", got)
	}
}

func TestSelectTargetAggressionPrefersRivals(t *testing.T) {
	e := newTestEngine(1)
	a := testActor("a", actor.TrackSecurity, 5)
	rival := testActor("rival", actor.TrackSecurity, 5)
	bystander := testActor("bystander", actor.TrackEconomic, 4)
	bystander.Personality.Corrupt = 90
	gs := newTestState(a, rival, bystander)

	GetOrCreateRelation(gs, "a", "rival").MarkRivalry()
	got := e.selectTarget(gs, a, action.LaunchInvestigation, nil)
	if got == nil || got.ID != "rival" {
		t.Errorf("declared rival should be the target, got %v", got)
	}

	// Without a rival, aggression lands on the most corrupt candidate.
	gs.Relation("a", "rival").Rivalry = false
	got = e.selectTarget(gs, a, action.LaunchInvestigation, nil)
	if got == nil || got.ID != "bystander" {
		t.Errorf("most corrupt candidate should be the fallback, got %v", got)
	}
}

func TestSelectTargetDetainSkipsDetained(t *testing.T) {
	e := newTestEngine(1)
	chief := testActor("chief", actor.TrackSecurity, 6)
	held := testActor("held", actor.TrackState, 3)
	held.Status = actor.StatusDetained
	held.Fear = 80
	free := testActor("free", actor.TrackState, 3)
	gs := newTestState(chief, held, free)

	got := e.selectTarget(gs, chief, action.DetainSuspect, nil)
	if got == nil || got.ID != "free" {
		t.Errorf("already-detained actor must not be re-detained, got %v", got)
	}
}

func TestSelectTargetWithCooldownRetriesOnce(t *testing.T) {
	e := newTestEngine(1)
	junior := testActor("junior", actor.TrackParty, 2)
	boss := testActor("boss", actor.TrackParty, 5)
	mentor := testActor("mentor", actor.TrackParty, 4)
	gs := newTestState(junior, boss, mentor)
	gs.Turn = 10

	// Interacting with everyone senior last turn exhausts the retry.
	GetOrCreateRelation(gs, "junior", "boss").LastInteractionTurn = 9
	GetOrCreateRelation(gs, "junior", "mentor").LastInteractionTurn = 9
	if got := e.selectTargetWithCooldown(gs, junior, action.CurryFavor); got != nil {
		t.Errorf("all candidates on cooldown, expected nil, got %s", got.ID)
	}

	// Freeing one candidate makes the retry land on them.
	gs.Relation("junior", "mentor").LastInteractionTurn = 0
	got := e.selectTargetWithCooldown(gs, junior, action.CurryFavor)
	if got == nil || got.ID != "mentor" {
		t.Errorf("retry should land on the free candidate, got %v", got)
	}
}
