package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/ryanrudat/Nomenklatura-sub003/pkg/scenario"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/state"
)

// MockStorage is an in-memory Storage for handler tests. Error fields force
// failures per operation.
type MockStorage struct {
	mu sync.Mutex

	GameStates map[uuid.UUID]*state.GameState
	Scenarios  map[string]*scenario.Scenario

	PingError   error
	SaveError   error
	LoadError   error
	DeleteError error
	ListError   error
	GetError    error
}

var _ Storage = (*MockStorage)(nil)

func NewMockStorage() *MockStorage {
	return &MockStorage{
		GameStates: make(map[uuid.UUID]*state.GameState),
		Scenarios:  make(map[string]*scenario.Scenario),
	}
}

func (m *MockStorage) Ping(ctx context.Context) error { return m.PingError }

func (m *MockStorage) Close() error { return nil }

func (m *MockStorage) SaveGameState(ctx context.Context, id uuid.UUID, gs *state.GameState) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GameStates[id] = gs
	return nil
}

func (m *MockStorage) LoadGameState(ctx context.Context, id uuid.UUID) (*state.GameState, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.GameStates[id], nil
}

func (m *MockStorage) DeleteGameState(ctx context.Context, id uuid.UUID) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.GameStates, id)
	return nil
}

func (m *MockStorage) ListScenarios(ctx context.Context) (map[string]string, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.Scenarios))
	for filename, s := range m.Scenarios {
		out[s.Name] = filename
	}
	return out, nil
}

func (m *MockStorage) GetScenario(ctx context.Context, filename string) (*scenario.Scenario, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.Scenarios[filename]
	if !ok {
		return nil, fmt.Errorf("scenario not found: %s", filename)
	}
	return s, nil
}
