package actor

// Track is a career specialization. Track-specific governance actions are
// only available to actors on the matching track.
type Track string

const (
	TrackParty      Track = "party_apparatus"
	TrackSecurity   Track = "security_services"
	TrackMilitary   Track = "military_political"
	TrackForeign    Track = "foreign_affairs"
	TrackEconomic   Track = "economic_planning"
	TrackState      Track = "state_ministry"
	TrackRegional   Track = "regional"
	TrackLeadership Track = "leadership"
)

// Tracks lists every career track.
var Tracks = []Track{
	TrackParty,
	TrackSecurity,
	TrackMilitary,
	TrackForeign,
	TrackEconomic,
	TrackState,
	TrackRegional,
	TrackLeadership,
}

// LeadershipPosition is the position index at which an actor is considered
// top leadership and bypasses track checks on governance actions.
const LeadershipPosition = 7

// Status values for an actor's mutable condition.
const (
	StatusActive   = "active"
	StatusDetained = "detained"
	StatusExposed  = "exposed"
)

// Personality holds the six fixed personality scores, 0..100 each.
// Immutable after creation except by rare narrative events.
type Personality struct {
	Ambitious int `json:"ambitious"`
	Paranoid  int `json:"paranoid"`
	Ruthless  int `json:"ruthless"`
	Competent int `json:"competent"`
	Loyal     int `json:"loyal"`
	Corrupt   int `json:"corrupt"`
}

// Needs holds the six psychological gauges, 0..100 each. A deficit biases
// action selection toward actions that satisfy the need.
type Needs struct {
	Security    int `json:"security"`
	Power       int `json:"power"`
	Loyalty     int `json:"loyalty"`
	Recognition int `json:"recognition"`
	Stability   int `json:"stability"`
	Ideology    int `json:"ideology"`
}

// EspionageStatus tracks an actor's life as a foreign asset.
type EspionageStatus struct {
	Active           bool   `json:"active"`
	Suspicion        int    `json:"suspicion"`  // 0..100
	Tradecraft       int    `json:"tradecraft"` // 0..100
	Cover            int    `json:"cover"`      // 0..100
	ForeignPower     string `json:"foreign_power,omitempty"`
	LastActivityTurn int    `json:"last_activity_turn"`
}

// Actor is a simulated political character.
type Actor struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Faction string `json:"faction,omitempty"`

	Track    Track `json:"track"`
	Position int   `json:"position"` // 0 = lowest

	Personality Personality `json:"personality"`

	// Mutable status gauges.
	Disposition int    `json:"disposition"` // -100..100, attitude toward the player
	Fear        int    `json:"fear"`        // 0..100
	Grudge      int    `json:"grudge"`      // 0..100
	Trust       int    `json:"trust"`       // 0..100
	Gratitude   int    `json:"gratitude"`   // 0..100
	Status      string `json:"status,omitempty"`

	Goals    []Goal   `json:"goals,omitempty"`
	Needs    Needs    `json:"needs"`
	Memories []Memory `json:"memories,omitempty"`

	Espionage *EspionageStatus `json:"espionage,omitempty"`

	// LastActionTurn anchors the per-actor autonomous action cooldown.
	LastActionTurn int `json:"last_action_turn"`
}

// MaxActiveGoals caps how many goals an actor pursues at once.
const MaxActiveGoals = 3

// ActiveGoals returns the actor's active goals, at most MaxActiveGoals.
func (a *Actor) ActiveGoals() []Goal {
	var out []Goal
	for _, g := range a.Goals {
		if g.Active {
			out = append(out, g)
		}
	}
	return out
}

// AddGoal appends a goal, activating it only if the active cap allows.
func (a *Actor) AddGoal(g Goal) {
	if len(a.ActiveGoals()) >= MaxActiveGoals {
		g.Active = false
	}
	a.Goals = append(a.Goals, g)
}

// AdvanceGoals applies a progress increment to every active goal of the given
// kind. Goals targeting a specific actor only advance when targetID matches.
// A goal reaching 100 progress deactivates and stays inactive.
func (a *Actor) AdvanceGoals(kind GoalKind, targetID string, delta int) {
	for i := range a.Goals {
		g := &a.Goals[i]
		if !g.Active || g.Kind != kind {
			continue
		}
		if g.TargetID != "" && g.TargetID != targetID {
			continue
		}
		g.Progress = clamp(g.Progress+delta, 0, 100)
		g.Attempts++
		if g.Progress >= 100 {
			g.Active = false
		}
	}
}

// FrustrateGoals bumps the frustration accumulator on active goals of the
// given kind. Nothing in the core reads frustration further; see DESIGN.md.
func (a *Actor) FrustrateGoals(kind GoalKind, amount int) {
	for i := range a.Goals {
		g := &a.Goals[i]
		if g.Active && g.Kind == kind {
			g.Frustration += amount
			g.Attempts++
		}
	}
}

// Remember appends a memory record. Memories are never deleted; their
// behavioral influence decays with turn distance instead.
func (a *Actor) Remember(m Memory) {
	a.Memories = append(a.Memories, m)
}

// MemoriesAbout returns the actor's memories involving another actor.
func (a *Actor) MemoriesAbout(otherID string) []Memory {
	var out []Memory
	for _, m := range a.Memories {
		if m.OtherID == otherID {
			out = append(out, m)
		}
	}
	return out
}

// Clamp forces every mutable gauge back into its declared range.
func (a *Actor) Clamp() {
	a.Disposition = clamp(a.Disposition, -100, 100)
	a.Fear = clamp(a.Fear, 0, 100)
	a.Grudge = clamp(a.Grudge, 0, 100)
	a.Trust = clamp(a.Trust, 0, 100)
	a.Gratitude = clamp(a.Gratitude, 0, 100)
	a.Needs.Security = clamp(a.Needs.Security, 0, 100)
	a.Needs.Power = clamp(a.Needs.Power, 0, 100)
	a.Needs.Loyalty = clamp(a.Needs.Loyalty, 0, 100)
	a.Needs.Recognition = clamp(a.Needs.Recognition, 0, 100)
	a.Needs.Stability = clamp(a.Needs.Stability, 0, 100)
	a.Needs.Ideology = clamp(a.Needs.Ideology, 0, 100)
	if a.Espionage != nil {
		a.Espionage.Suspicion = clamp(a.Espionage.Suspicion, 0, 100)
		a.Espionage.Tradecraft = clamp(a.Espionage.Tradecraft, 0, 100)
		a.Espionage.Cover = clamp(a.Espionage.Cover, 0, 100)
	}
}

// IsLeadership reports whether the actor holds a top-leadership position.
func (a *Actor) IsLeadership() bool {
	return a.Position >= LeadershipPosition
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
