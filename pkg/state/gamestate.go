package state

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ryanrudat/Nomenklatura-sub003/pkg/actor"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/event"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/ledger"
)

// PairKey identifies a directed relationship edge. It serializes as
// "source>target" so relationship maps survive JSON round-trips.
type PairKey struct {
	Source string
	Target string
}

// Pair builds the key for a directed edge.
func Pair(source, target string) PairKey {
	return PairKey{Source: source, Target: target}
}

// Reverse returns the key for the opposite direction.
func (k PairKey) Reverse() PairKey {
	return PairKey{Source: k.Target, Target: k.Source}
}

// MarshalText implements encoding.TextMarshaler for JSON map keys.
func (k PairKey) MarshalText() ([]byte, error) {
	return []byte(k.Source + ">" + k.Target), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON map keys.
func (k *PairKey) UnmarshalText(text []byte) error {
	parts := strings.SplitN(string(text), ">", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid pair key %q", string(text))
	}
	k.Source, k.Target = parts[0], parts[1]
	return nil
}

// GameState is the full mutable state of one game session: the ledger, the
// actor population, the relationship graph, and the player's standing.
// Turn resolution mutates it in place under single-writer access.
type GameState struct {
	ID       uuid.UUID `json:"id"`
	Scenario string    `json:"scenario,omitempty"`
	Turn     int       `json:"turn"`

	Ledger *ledger.Ledger `json:"ledger"`

	Actors    map[string]*actor.Actor         `json:"actors,omitempty"`
	Relations map[PairKey]*actor.Relationship `json:"relations,omitempty"`

	PlayerTrack    actor.Track `json:"player_track,omitempty"`
	PlayerPosition int         `json:"player_position"`

	// Distinguished relationship roles for the reactive evaluator.
	PatronID      string   `json:"patron_id,omitempty"`
	RivalID       string   `json:"rival_id,omitempty"`
	ContactIDs    []string `json:"contact_ids,omitempty"`
	DiscoveredIDs []string `json:"discovered_ids,omitempty"`
	Committee     []string `json:"committee,omitempty"`

	// EventCooldowns maps an event category to the next turn at which the
	// reactive evaluator may emit that category again.
	EventCooldowns map[event.Category]int `json:"event_cooldowns,omitempty"`

	// Events is the surfaced event history, retained for rendering.
	Events []event.Event `json:"events,omitempty"`

	IsEnded   bool      `json:"is_ended"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// NewGameState creates an empty session with a fresh id.
func NewGameState() *GameState {
	return &GameState{
		ID:             uuid.New(),
		Ledger:         ledger.New(),
		Actors:         make(map[string]*actor.Actor),
		Relations:      make(map[PairKey]*actor.Relationship),
		EventCooldowns: make(map[event.Category]int),
		CreatedAt:      time.Now(),
	}
}

// Actor returns an actor by id, or nil when the id is unknown. Missing actors
// are ordinary during play (external collaborators may remove them), so this
// never errors.
func (gs *GameState) Actor(id string) *actor.Actor {
	if gs.Actors == nil {
		return nil
	}
	return gs.Actors[id]
}

// AddActor inserts an actor into the session.
func (gs *GameState) AddActor(a *actor.Actor) {
	if gs.Actors == nil {
		gs.Actors = make(map[string]*actor.Actor)
	}
	gs.Actors[a.ID] = a
}

// Relation returns the directed edge from source to target, or nil when no
// edge exists yet.
func (gs *GameState) Relation(source, target string) *actor.Relationship {
	if gs.Relations == nil {
		return nil
	}
	return gs.Relations[Pair(source, target)]
}

// SetRelation stores a directed edge.
func (gs *GameState) SetRelation(r *actor.Relationship) {
	if gs.Relations == nil {
		gs.Relations = make(map[PairKey]*actor.Relationship)
	}
	gs.Relations[Pair(r.SourceID, r.TargetID)] = r
}

// ActorsByPosition returns all actors sorted by descending position index,
// ties broken by id so iteration order is deterministic.
func (gs *GameState) ActorsByPosition() []*actor.Actor {
	out := make([]*actor.Actor, 0, len(gs.Actors))
	for _, a := range gs.Actors {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position > out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ActorIDs returns all actor ids in ascending order.
func (gs *GameState) ActorIDs() []string {
	ids := make([]string, 0, len(gs.Actors))
	for id := range gs.Actors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsContact reports whether the actor is in the player's contact list.
func (gs *GameState) IsContact(id string) bool {
	for _, c := range gs.ContactIDs {
		if c == id {
			return true
		}
	}
	return false
}

// OnCommittee reports whether the actor sits on the standing committee.
func (gs *GameState) OnCommittee(id string) bool {
	for _, c := range gs.Committee {
		if c == id {
			return true
		}
	}
	return false
}

// CategoryOnCooldown reports whether an event category may not fire yet.
func (gs *GameState) CategoryOnCooldown(cat event.Category) bool {
	if gs.EventCooldowns == nil {
		return false
	}
	return gs.Turn < gs.EventCooldowns[cat]
}

// SetCategoryCooldown blocks an event category until the given turn.
func (gs *GameState) SetCategoryCooldown(cat event.Category, untilTurn int) {
	if gs.EventCooldowns == nil {
		gs.EventCooldowns = make(map[event.Category]int)
	}
	gs.EventCooldowns[cat] = untilTurn
}

// maxEventHistory bounds the retained event log so long sessions do not grow
// the persisted state without limit.
const maxEventHistory = 200

// RecordEvent appends a surfaced event to the session history, dropping the
// oldest entries past the retention cap.
func (gs *GameState) RecordEvent(e event.Event) {
	gs.Events = append(gs.Events, e)
	if len(gs.Events) > maxEventHistory {
		gs.Events = gs.Events[len(gs.Events)-maxEventHistory:]
	}
}
