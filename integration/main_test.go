//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/ryanrudat/Nomenklatura-sub003/pkg/event"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/ledger"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/state"
)

var (
	apiBaseURL string
	client     *http.Client
)

func TestMain(m *testing.M) {
	apiBaseURL = os.Getenv("API_BASE_URL")
	if apiBaseURL == "" {
		apiBaseURL = "http://localhost:8080" // Default to localhost
	}
	timeoutSeconds := getIntEnv("TEST_TIMEOUT_SECONDS", 30)
	client = &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second}

	fmt.Printf("Running Nomenklatura Integration Tests\n")
	fmt.Printf("   API Base URL: %s\n", apiBaseURL)

	os.Exit(m.Run())
}

type turnResponse struct {
	Turn      int              `json:"turn"`
	Events    []event.Event    `json:"events"`
	GameState *state.GameState `json:"gamestate"`
}

// TestSimulationLifecycle drives a full session against a running API:
// create from every available scenario, resolve a run of turns, and verify
// the session stays structurally sound throughout.
func TestSimulationLifecycle(t *testing.T) {
	scenarios := listScenarios(t)
	if len(scenarios) == 0 {
		t.Fatal("API reported no scenarios; is the data directory mounted?")
	}

	const turnsToRun = 10

	for name, file := range scenarios {
		t.Run(name, func(t *testing.T) {
			gs := createSession(t, file)
			defer deleteSession(t, gs)

			if gs.Turn != 1 {
				t.Fatalf("new session Turn = %d, want 1", gs.Turn)
			}
			if len(gs.Actors) == 0 {
				t.Fatal("new session has no actors")
			}
			wantEdges := len(gs.Actors) * (len(gs.Actors) - 1)
			if len(gs.Relations) != wantEdges {
				t.Fatalf("new session has %d relationship edges, want %d", len(gs.Relations), wantEdges)
			}

			prevTurn := gs.Turn
			for i := 0; i < turnsToRun; i++ {
				resp := resolveTurn(t, gs)
				if resp.Turn != prevTurn+1 {
					t.Fatalf("turn did not advance: got %d after %d", resp.Turn, prevTurn)
				}
				prevTurn = resp.Turn

				if resp.Events == nil {
					t.Fatal("turn response events must never be null")
				}
				for _, e := range resp.Events {
					if e.ActorID == "" {
						t.Errorf("event %s has no actor", e.ID)
					}
					if e.Turn < 1 || e.Turn > resp.Turn {
						t.Errorf("event %s carries turn %d outside 1..%d", e.ID, e.Turn, resp.Turn)
					}
				}

				for _, k := range ledger.Indicators {
					if v := resp.GameState.Ledger.Get(k); v < 0 || v > 100 {
						t.Errorf("indicator %s = %d outside 0..100", k, v)
					}
				}
				for id, a := range resp.GameState.Actors {
					if a.Position < 0 || a.Position > 10 {
						t.Errorf("actor %s position %d outside 0..10", id, a.Position)
					}
				}
			}

			// A reload must observe the same turn the last resolution reported.
			reloaded := getSession(t, gs)
			if reloaded.Turn != prevTurn {
				t.Fatalf("reloaded session Turn = %d, want %d", reloaded.Turn, prevTurn)
			}
		})
	}
}

func listScenarios(t *testing.T) map[string]string {
	t.Helper()
	resp, err := client.Get(apiBaseURL + "/v1/scenarios")
	if err != nil {
		t.Fatalf("failed to list scenarios: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list scenarios returned status %d", resp.StatusCode)
	}

	var scenarios map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&scenarios); err != nil {
		t.Fatalf("failed to decode scenario list: %v", err)
	}
	return scenarios
}

func createSession(t *testing.T, scenarioFile string) *state.GameState {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"scenario": scenarioFile})
	resp, err := client.Post(apiBaseURL+"/v1/gamestate", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create session returned status %d", resp.StatusCode)
	}

	var gs state.GameState
	if err := json.NewDecoder(resp.Body).Decode(&gs); err != nil {
		t.Fatalf("failed to decode created session: %v", err)
	}
	return &gs
}

func getSession(t *testing.T, gs *state.GameState) *state.GameState {
	t.Helper()
	resp, err := client.Get(apiBaseURL + "/v1/gamestate/" + gs.ID.String())
	if err != nil {
		t.Fatalf("failed to read session: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("read session returned status %d", resp.StatusCode)
	}

	var got state.GameState
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode session: %v", err)
	}
	return &got
}

func resolveTurn(t *testing.T, gs *state.GameState) *turnResponse {
	t.Helper()
	resp, err := client.Post(apiBaseURL+"/v1/gamestate/"+gs.ID.String()+"/turn", "application/json", nil)
	if err != nil {
		t.Fatalf("failed to resolve turn: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("resolve turn returned status %d", resp.StatusCode)
	}

	var turn turnResponse
	if err := json.NewDecoder(resp.Body).Decode(&turn); err != nil {
		t.Fatalf("failed to decode turn response: %v", err)
	}
	return &turn
}

func deleteSession(t *testing.T, gs *state.GameState) {
	t.Helper()
	req, err := http.NewRequest(http.MethodDelete, apiBaseURL+"/v1/gamestate/"+gs.ID.String(), nil)
	if err != nil {
		t.Fatalf("failed to build delete request: %v", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("failed to delete session: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete session returned status %d", resp.StatusCode)
	}
}

func getIntEnv(name string, defaultValue int) int {
	str := os.Getenv(name)
	if str == "" {
		return defaultValue
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return defaultValue
	}

	return val
}
