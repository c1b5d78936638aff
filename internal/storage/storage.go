package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/ryanrudat/Nomenklatura-sub003/pkg/scenario"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/state"
)

// Storage is the persistence boundary of the API: game sessions in Redis,
// scenario definitions on the filesystem.
type Storage interface {
	Ping(ctx context.Context) error
	Close() error

	SaveGameState(ctx context.Context, id uuid.UUID, gs *state.GameState) error
	LoadGameState(ctx context.Context, id uuid.UUID) (*state.GameState, error)
	DeleteGameState(ctx context.Context, id uuid.UUID) error

	ListScenarios(ctx context.Context) (map[string]string, error)
	GetScenario(ctx context.Context, filename string) (*scenario.Scenario, error)
}
