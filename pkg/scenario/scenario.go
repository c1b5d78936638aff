package scenario

import (
	"fmt"

	"github.com/ryanrudat/Nomenklatura-sub003/pkg/actor"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/ledger"
)

// GoalSpec seeds one goal on a cast member.
type GoalSpec struct {
	Kind     actor.GoalKind `json:"kind"`
	Priority int            `json:"priority,omitempty"`
	TargetID string         `json:"target_id,omitempty"`
}

// ActorSpec is the serializable definition of one cast member.
type ActorSpec struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Faction     string                 `json:"faction,omitempty"`
	Track       actor.Track            `json:"track"`
	Position    int                    `json:"position"`
	Personality actor.Personality      `json:"personality"`
	Needs       *actor.Needs           `json:"needs,omitempty"`
	Goals       []GoalSpec             `json:"goals,omitempty"`
	Espionage   *actor.EspionageStatus `json:"espionage,omitempty"`
}

// Scenario defines the starting situation of a game session: the cast,
// the opening indicator values, and the player's standing.
type Scenario struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	PlayerTrack    actor.Track `json:"player_track"`
	PlayerPosition int         `json:"player_position"`

	PatronID   string   `json:"patron_id,omitempty"`
	RivalID    string   `json:"rival_id,omitempty"`
	ContactIDs []string `json:"contact_ids,omitempty"`
	Committee  []string `json:"committee,omitempty"`

	Factions   []string                 `json:"factions,omitempty"`
	Indicators map[ledger.Indicator]int `json:"indicators,omitempty"`

	Actors []ActorSpec `json:"actors"`
}

// defaultNeeds is the gauge level every cast member starts at when the
// scenario does not say otherwise.
var defaultNeeds = actor.Needs{
	Security:    60,
	Power:       50,
	Loyalty:     60,
	Recognition: 50,
	Stability:   60,
	Ideology:    50,
}

// BuildActor constructs the runtime actor for a cast member.
func (s ActorSpec) BuildActor() *actor.Actor {
	a := &actor.Actor{
		ID:          s.ID,
		Name:        s.Name,
		Faction:     s.Faction,
		Track:       s.Track,
		Position:    s.Position,
		Personality: s.Personality,
		Status:      actor.StatusActive,
		Needs:       defaultNeeds,
	}
	if s.Needs != nil {
		a.Needs = *s.Needs
	}
	if s.Espionage != nil {
		esp := *s.Espionage
		a.Espionage = &esp
	}
	for i, g := range s.Goals {
		a.AddGoal(actor.Goal{
			Kind:     g.Kind,
			Priority: g.Priority,
			TargetID: g.TargetID,
			Active:   i < actor.MaxActiveGoals,
		})
	}
	a.Clamp()
	return a
}

// Validate checks the scenario for structural problems. It returns the first
// error found.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Actors) == 0 {
		return fmt.Errorf("scenario must define at least one actor")
	}

	ids := make(map[string]bool, len(s.Actors))
	for i, a := range s.Actors {
		if a.ID == "" {
			return fmt.Errorf("actor %d is missing an id", i)
		}
		if ids[a.ID] {
			return fmt.Errorf("duplicate actor id %q", a.ID)
		}
		ids[a.ID] = true
		if a.Name == "" {
			return fmt.Errorf("actor %q is missing a name", a.ID)
		}
		if !validTrack(a.Track) {
			return fmt.Errorf("actor %q has unknown track %q", a.ID, a.Track)
		}
		if a.Position < 0 {
			return fmt.Errorf("actor %q has negative position", a.ID)
		}
		if err := validPersonality(a.Personality); err != nil {
			return fmt.Errorf("actor %q: %w", a.ID, err)
		}
		for _, g := range a.Goals {
			if !g.Kind.Valid() {
				return fmt.Errorf("actor %q has unknown goal kind %q", a.ID, g.Kind)
			}
			if g.TargetID != "" && !castHasID(s.Actors, g.TargetID) {
				return fmt.Errorf("actor %q goal %q targets unknown actor %q", a.ID, g.Kind, g.TargetID)
			}
		}
	}

	for _, ref := range []struct {
		field string
		id    string
	}{
		{"patron_id", s.PatronID},
		{"rival_id", s.RivalID},
	} {
		if ref.id != "" && !ids[ref.id] {
			return fmt.Errorf("%s references unknown actor %q", ref.field, ref.id)
		}
	}
	for _, id := range s.ContactIDs {
		if !ids[id] {
			return fmt.Errorf("contact_ids references unknown actor %q", id)
		}
	}
	for _, id := range s.Committee {
		if !ids[id] {
			return fmt.Errorf("committee references unknown actor %q", id)
		}
	}

	for k, v := range s.Indicators {
		if v < 0 || v > 100 {
			return fmt.Errorf("indicator %q value %d out of range 0..100", k, v)
		}
	}

	return nil
}

func validTrack(t actor.Track) bool {
	for _, known := range actor.Tracks {
		if t == known {
			return true
		}
	}
	return false
}

func validPersonality(p actor.Personality) error {
	fields := []struct {
		name string
		v    int
	}{
		{"ambitious", p.Ambitious},
		{"paranoid", p.Paranoid},
		{"ruthless", p.Ruthless},
		{"competent", p.Competent},
		{"loyal", p.Loyal},
		{"corrupt", p.Corrupt},
	}
	for _, f := range fields {
		if f.v < 0 || f.v > 100 {
			return fmt.Errorf("personality %s value %d out of range 0..100", f.name, f.v)
		}
	}
	return nil
}

func castHasID(cast []ActorSpec, id string) bool {
	for _, a := range cast {
		if a.ID == id {
			return true
		}
	}
	return false
}
