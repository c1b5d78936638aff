package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ryanrudat/Nomenklatura-sub003/internal/logger"
	"github.com/ryanrudat/Nomenklatura-sub003/internal/storage"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/engine"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/event"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/state"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// GameStateHandler owns the session lifecycle endpoints.
//
// Routes:
//
//	POST   /v1/gamestate           - Create a new session from a scenario
//	GET    /v1/gamestate/{id}      - Read a session by ID
//	DELETE /v1/gamestate/{id}      - Delete a session by ID
//	POST   /v1/gamestate/{id}/turn - Resolve one simulation turn
type GameStateHandler struct {
	storage storage.Storage
	engine  *engine.Engine
	logger  *slog.Logger
}

func NewGameStateHandler(storage storage.Storage, eng *engine.Engine, logger *slog.Logger) *GameStateHandler {
	return &GameStateHandler{
		storage: storage,
		engine:  eng,
		logger:  logger,
	}
}

func (h *GameStateHandler) writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		h.logger.Error("Failed to encode error response", "error", err)
	}
}

func (h *GameStateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/gamestate"), "/")
	parts := []string{}
	if path != "" {
		parts = strings.Split(path, "/")
	}

	var gameStateID uuid.UUID
	if len(parts) > 0 {
		var err error
		gameStateID, err = uuid.Parse(parts[0])
		if err != nil {
			h.logger.Warn("Invalid game state ID", "id", parts[0], "error", err)
			h.writeError(w, http.StatusBadRequest, "Invalid game state ID format")
			return
		}
	}

	isTurn := len(parts) == 2 && parts[1] == "turn"

	switch {
	case r.Method == http.MethodPost && isTurn:
		h.handleTurn(w, r, gameStateID)

	case r.Method == http.MethodPost && len(parts) == 0:
		h.handleCreate(w, r)

	case r.Method == http.MethodGet:
		if gameStateID == uuid.Nil {
			h.writeError(w, http.StatusBadRequest, "Game state ID is required for GET requests")
			return
		}
		h.handleRead(w, r, gameStateID)

	case r.Method == http.MethodDelete:
		if gameStateID == uuid.Nil {
			h.writeError(w, http.StatusBadRequest, "Game state ID is required for DELETE requests")
			return
		}
		h.handleDelete(w, r, gameStateID)

	default:
		h.logger.Warn("Method not allowed for game state endpoint", "method", r.Method, "path", r.URL.Path)
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST, GET, DELETE")
	}
}

// CreateGameStateRequest defines the request body for creating a new session.
type CreateGameStateRequest struct {
	Scenario string `json:"scenario"` // Required: scenario filename
}

// Normalize ensures the scenario filename carries a .json extension.
func (req *CreateGameStateRequest) Normalize() {
	if req.Scenario != "" && !strings.HasSuffix(req.Scenario, ".json") {
		req.Scenario += ".json"
	}
}

func (h *GameStateHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Creating new game state")

	var req CreateGameStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	req.Normalize()

	if req.Scenario == "" {
		h.logger.Warn("Missing required field: scenario")
		h.writeError(w, http.StatusBadRequest, "scenario field is required")
		return
	}

	s, err := h.storage.GetScenario(r.Context(), req.Scenario)
	if err != nil {
		h.logger.Warn("Failed to load scenario", "error", err)
		h.writeError(w, http.StatusBadRequest, "Failed to load scenario: "+err.Error())
		return
	}
	if err := s.Validate(); err != nil {
		h.logger.Warn("Scenario failed validation", "scenario", req.Scenario, "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid scenario: "+err.Error())
		return
	}

	gs := state.NewFromScenario(s)
	gs.Scenario = req.Scenario
	h.engine.InitializeRelationships(gs)

	log := logger.WithSession(h.logger, gs.ID.String())
	if err := h.storage.SaveGameState(r.Context(), gs.ID, gs); err != nil {
		logger.WithError(log, err).Error("Failed to save new game state")
		h.writeError(w, http.StatusInternalServerError, "Failed to create game state")
		return
	}

	log.Debug("Game state created successfully")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(gs); err != nil {
		h.logger.Error("Failed to encode game state response", "error", err)
	}
}

func (h *GameStateHandler) handleRead(w http.ResponseWriter, r *http.Request, gameStateID uuid.UUID) {
	gs, err := h.storage.LoadGameState(r.Context(), gameStateID)
	if err != nil {
		h.logger.Error("Failed to load game state", "error", err, "id", gameStateID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to load game state")
		return
	}
	if gs == nil {
		h.logger.Warn("Game state not found", "id", gameStateID.String())
		h.writeError(w, http.StatusNotFound, "Game state not found")
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(gs); err != nil {
		h.logger.Error("Failed to encode game state response", "error", err)
	}
}

// TurnResponse carries the surfaced events of a resolved turn plus the
// updated session state.
type TurnResponse struct {
	Turn      int              `json:"turn"`
	Events    []event.Event    `json:"events"`
	GameState *state.GameState `json:"gamestate"`
}

func (h *GameStateHandler) handleTurn(w http.ResponseWriter, r *http.Request, gameStateID uuid.UUID) {
	log := logger.WithSession(h.logger, gameStateID.String())

	gs, err := h.storage.LoadGameState(r.Context(), gameStateID)
	if err != nil {
		logger.WithError(log, err).Error("Failed to load game state for turn")
		h.writeError(w, http.StatusInternalServerError, "Failed to load game state")
		return
	}
	if gs == nil {
		log.Warn("Game state not found for turn")
		h.writeError(w, http.StatusNotFound, "Game state not found")
		return
	}
	if gs.IsEnded {
		h.writeError(w, http.StatusConflict, "Game has ended")
		return
	}

	events := h.engine.ResolveTurn(gs)
	log = logger.WithTurn(log, gs.Turn)

	if err := h.storage.SaveGameState(r.Context(), gameStateID, gs); err != nil {
		logger.WithError(log, err).Error("Failed to save game state after turn")
		h.writeError(w, http.StatusInternalServerError, "Failed to save game state")
		return
	}

	log.Info("Turn resolved", "events", len(events))
	w.WriteHeader(http.StatusOK)
	resp := TurnResponse{Turn: gs.Turn, Events: events, GameState: gs}
	if resp.Events == nil {
		resp.Events = []event.Event{}
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Failed to encode turn response", "error", err)
	}
}

func (h *GameStateHandler) handleDelete(w http.ResponseWriter, r *http.Request, gameStateID uuid.UUID) {
	if err := h.storage.DeleteGameState(r.Context(), gameStateID); err != nil {
		h.logger.Error("Failed to delete game state", "error", err, "id", gameStateID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to delete game state")
		return
	}
	h.logger.Debug("Game state deleted successfully", "id", gameStateID.String())
	w.WriteHeader(http.StatusNoContent)
}
