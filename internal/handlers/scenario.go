package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ryanrudat/Nomenklatura-sub003/internal/storage"
)

// ScenarioHandler serves the scenario catalog.
//
// Routes:
//
//	GET /v1/scenarios            - List available scenarios
//	GET /v1/scenarios/{filename} - Read one scenario definition
type ScenarioHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

func NewScenarioHandler(storage storage.Storage, logger *slog.Logger) *ScenarioHandler {
	return &ScenarioHandler{
		storage: storage,
		logger:  logger,
	}
}

func (h *ScenarioHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		if err := json.NewEncoder(w).Encode(ErrorResponse{Error: "Method not allowed. Supported methods: GET"}); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	filename := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/scenarios"), "/")
	if filename == "" {
		h.handleList(w, r)
		return
	}
	h.handleGet(w, r, filename)
}

func (h *ScenarioHandler) handleList(w http.ResponseWriter, r *http.Request) {
	scenarios, err := h.storage.ListScenarios(r.Context())
	if err != nil {
		h.logger.Error("Failed to list scenarios", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		if err := json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to list scenarios"}); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(scenarios); err != nil {
		h.logger.Error("Failed to encode scenarios response", "error", err)
	}
}

func (h *ScenarioHandler) handleGet(w http.ResponseWriter, r *http.Request, filename string) {
	if !strings.HasSuffix(filename, ".json") {
		filename += ".json"
	}

	scen, err := h.storage.GetScenario(r.Context(), filename)
	if err != nil {
		h.logger.Warn("Failed to load scenario", "filename", filename, "error", err)
		w.WriteHeader(http.StatusNotFound)
		if err := json.NewEncoder(w).Encode(ErrorResponse{Error: "Scenario not found"}); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(scen); err != nil {
		h.logger.Error("Failed to encode scenario response", "error", err)
	}
}
