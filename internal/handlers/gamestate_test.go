package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanrudat/Nomenklatura-sub003/internal/storage"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/actor"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/engine"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/scenario"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/state"
)

func testGameStateHandler(mock *storage.MockStorage) *GameStateHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	eng := engine.NewEngine(logger, engine.NewRand(1))
	return NewGameStateHandler(mock, eng, logger)
}

func testScenario() *scenario.Scenario {
	return &scenario.Scenario{
		Name:           "succession-crisis",
		PlayerTrack:    actor.TrackParty,
		PlayerPosition: 3,
		PatronID:       "brezhnev",
		RivalID:        "shelepin",
		Actors: []scenario.ActorSpec{
			{ID: "brezhnev", Name: "Brezhnev", Track: actor.TrackParty, Position: 6},
			{ID: "shelepin", Name: "Shelepin", Track: actor.TrackSecurity, Position: 5},
			{ID: "kosygin", Name: "Kosygin", Track: actor.TrackEconomic, Position: 5},
		},
	}
}

func TestGameStateCreate(t *testing.T) {
	mock := storage.NewMockStorage()
	mock.Scenarios["succession.json"] = testScenario()
	h := testGameStateHandler(mock)

	body, _ := json.Marshal(CreateGameStateRequest{Scenario: "succession"})
	req := httptest.NewRequest(http.MethodPost, "/v1/gamestate", bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var gs state.GameState
	require.NoError(t, json.NewDecoder(w.Body).Decode(&gs))
	assert.Equal(t, 1, gs.Turn)
	assert.Equal(t, "brezhnev", gs.PatronID)
	assert.Len(t, gs.Actors, 3)
	assert.Len(t, gs.Relations, 6, "every ordered actor pair should have an edge")
	assert.Contains(t, mock.GameStates, gs.ID, "created session should be persisted")
}

func TestGameStateCreateValidation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"invalid json", "{not json", http.StatusBadRequest},
		{"missing scenario", `{}`, http.StatusBadRequest},
		{"unknown scenario", `{"scenario":"ghost"}`, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := testGameStateHandler(storage.NewMockStorage())
			req := httptest.NewRequest(http.MethodPost, "/v1/gamestate", bytes.NewReader([]byte(tc.body)))
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestGameStateCreateRejectsInvalidScenario(t *testing.T) {
	mock := storage.NewMockStorage()
	broken := testScenario()
	broken.PatronID = "ghost"
	mock.Scenarios["broken.json"] = broken
	h := testGameStateHandler(mock)

	body, _ := json.Marshal(CreateGameStateRequest{Scenario: "broken"})
	req := httptest.NewRequest(http.MethodPost, "/v1/gamestate", bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp.Error, "Invalid scenario")
}

func TestGameStateRead(t *testing.T) {
	mock := storage.NewMockStorage()
	gs := state.NewFromScenario(testScenario())
	mock.GameStates[gs.ID] = gs
	h := testGameStateHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/v1/gamestate/"+gs.ID.String(), nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got state.GameState
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, gs.ID, got.ID)
}

func TestGameStateReadErrors(t *testing.T) {
	h := testGameStateHandler(storage.NewMockStorage())

	req := httptest.NewRequest(http.MethodGet, "/v1/gamestate/not-a-uuid", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/gamestate/"+uuid.New().String(), nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/gamestate", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGameStateTurn(t *testing.T) {
	mock := storage.NewMockStorage()
	gs := state.NewFromScenario(testScenario())
	mock.GameStates[gs.ID] = gs
	h := testGameStateHandler(mock)
	h.engine.InitializeRelationships(gs)

	req := httptest.NewRequest(http.MethodPost, "/v1/gamestate/"+gs.ID.String()+"/turn", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp TurnResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Turn)
	assert.NotNil(t, resp.Events)
	assert.Equal(t, 2, resp.GameState.Turn)
}

func TestGameStateTurnEndedSession(t *testing.T) {
	mock := storage.NewMockStorage()
	gs := state.NewFromScenario(testScenario())
	gs.IsEnded = true
	mock.GameStates[gs.ID] = gs
	h := testGameStateHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/v1/gamestate/"+gs.ID.String()+"/turn", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGameStateDelete(t *testing.T) {
	mock := storage.NewMockStorage()
	gs := state.NewFromScenario(testScenario())
	mock.GameStates[gs.ID] = gs
	h := testGameStateHandler(mock)

	req := httptest.NewRequest(http.MethodDelete, "/v1/gamestate/"+gs.ID.String(), nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotContains(t, mock.GameStates, gs.ID)
}

func TestGameStateMethodNotAllowed(t *testing.T) {
	h := testGameStateHandler(storage.NewMockStorage())

	req := httptest.NewRequest(http.MethodPut, "/v1/gamestate", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
