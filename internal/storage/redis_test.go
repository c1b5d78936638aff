package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"

	"github.com/ryanrudat/Nomenklatura-sub003/pkg/actor"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/ledger"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/state"
)

func testStorage(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewRedisStorage(mr.Addr(), t.TempDir(), logger)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestPing(t *testing.T) {
	s, mr := testStorage(t)
	ctx := context.Background()

	if err := s.Ping(ctx); err != nil {
		t.Errorf("ping failed: %v", err)
	}

	mr.Close()
	if err := s.Ping(ctx); err == nil {
		t.Error("expected ping error after server close")
	}
}

func TestGameStateRoundTrip(t *testing.T) {
	s, _ := testStorage(t)
	ctx := context.Background()

	gs := state.NewGameState()
	gs.Turn = 7
	gs.Scenario = "succession-crisis"
	gs.Ledger.Set(ledger.Stability, 35)
	gs.AddActor(&actor.Actor{ID: "kosygin", Name: "Kosygin", Position: 5, Status: actor.StatusActive})
	gs.SetRelation(&actor.Relationship{SourceID: "kosygin", TargetID: "brezhnev", Disposition: 25, Alliance: true})

	if err := s.SaveGameState(ctx, gs.ID, gs); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if gs.UpdatedAt.IsZero() {
		t.Error("save should stamp UpdatedAt")
	}

	loaded, err := s.LoadGameState(ctx, gs.ID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected gamestate, got nil")
	}
	if loaded.Turn != 7 || loaded.Scenario != "succession-crisis" {
		t.Errorf("session fields corrupted: turn %d scenario %q", loaded.Turn, loaded.Scenario)
	}
	if loaded.Ledger.Get(ledger.Stability) != 35 {
		t.Errorf("ledger corrupted: stability %d", loaded.Ledger.Get(ledger.Stability))
	}
	if a := loaded.Actor("kosygin"); a == nil || a.Position != 5 {
		t.Errorf("actor corrupted: %+v", a)
	}
	if r := loaded.Relation("kosygin", "brezhnev"); r == nil || !r.Alliance || r.Disposition != 25 {
		t.Errorf("relation corrupted: %+v", r)
	}
}

func TestLoadGameStateNotFound(t *testing.T) {
	s, _ := testStorage(t)

	gs, err := s.LoadGameState(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gs != nil {
		t.Error("missing gamestate should load as nil, not error")
	}
}

func TestDeleteGameState(t *testing.T) {
	s, _ := testStorage(t)
	ctx := context.Background()

	gs := state.NewGameState()
	if err := s.SaveGameState(ctx, gs.ID, gs); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := s.DeleteGameState(ctx, gs.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	loaded, err := s.LoadGameState(ctx, gs.ID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded != nil {
		t.Error("deleted gamestate should be gone")
	}
}

func TestScenarioFilesystem(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	dataDir := t.TempDir()
	scenariosDir := filepath.Join(dataDir, "scenarios")
	if err := os.MkdirAll(scenariosDir, 0o755); err != nil {
		t.Fatal(err)
	}
	doc := `{
		"name": "succession-crisis",
		"player_track": "party_apparatus",
		"player_position": 3,
		"actors": [
			{"id": "brezhnev", "name": "Brezhnev", "track": "party_apparatus", "position": 6}
		]
	}`
	if err := os.WriteFile(filepath.Join(scenariosDir, "succession.json"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewRedisStorage(mr.Addr(), dataDir, logger)
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	list, err := s.ListScenarios(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if list["succession-crisis"] != "succession.json" {
		t.Errorf("list = %v, want succession-crisis -> succession.json", list)
	}

	scen, err := s.GetScenario(ctx, "succession.json")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if scen.Name != "succession-crisis" || len(scen.Actors) != 1 {
		t.Errorf("scenario corrupted: %+v", scen)
	}

	if _, err := s.GetScenario(ctx, "missing.json"); err == nil {
		t.Error("expected error for missing scenario file")
	}
}
