package event

import (
	"github.com/google/uuid"

	"github.com/ryanrudat/Nomenklatura-sub003/pkg/action"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/ledger"
)

// Category tags the origin of a narrative event. Reactive-role categories
// double as cooldown keys: the evaluator will not emit two events of the
// same category within the cooldown window.
type Category string

const (
	CategoryPatron     Category = "patron"
	CategoryRival      Category = "rival"
	CategoryAlly       Category = "ally"
	CategoryContact    Category = "contact"
	CategoryDiscovered Category = "discovered"
	CategoryIntrigue   Category = "intrigue"
	CategoryGovernance Category = "governance"
	CategoryEspionage  Category = "espionage"
)

// Priority is the urgency tier of an event.
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityNormal
	PriorityElevated
	PriorityUrgent
)

// String returns the tier name.
func (p Priority) String() string {
	switch p {
	case PriorityBackground:
		return "background"
	case PriorityNormal:
		return "normal"
	case PriorityElevated:
		return "elevated"
	case PriorityUrgent:
		return "urgent"
	default:
		return "unknown"
	}
}

// Option is a player-selectable response. The core supplies only the label
// and indicator deltas; a collaborator renders prose.
type Option struct {
	Label   string                   `json:"label"`
	Effects map[ledger.Indicator]int `json:"effects,omitempty"`
}

// Event is a structured narrative event. The core never renders text;
// collaborators turn events into player-visible messages.
type Event struct {
	ID       uuid.UUID   `json:"id"`
	Category Category    `json:"category"`
	Priority Priority    `json:"priority"`
	ActorID  string      `json:"actor_id"`
	TargetID string      `json:"target_id,omitempty"`
	Action   action.Kind `json:"action,omitempty"`
	Turn     int         `json:"turn"`
	Options  []Option    `json:"options,omitempty"`
}

// New creates an event with a fresh id.
func New(cat Category, pri Priority, actorID string, turn int) Event {
	return Event{
		ID:       uuid.New(),
		Category: cat,
		Priority: pri,
		ActorID:  actorID,
		Turn:     turn,
	}
}

// Sink receives narrative events for rendering and delivery.
type Sink interface {
	Emit(e Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(e Event)

// Emit calls the wrapped function.
func (f SinkFunc) Emit(e Event) { f(e) }
