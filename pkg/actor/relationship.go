package actor

// AllianceBetrayalAge is the minimum number of turns an alliance must exist
// before it can be betrayed.
const AllianceBetrayalAge = 3

// Relationship is a directed edge from a source actor to a target actor.
// Edges are asymmetric: a pair of actors may hold zero, one, or two edges,
// and the two directions routinely diverge.
type Relationship struct {
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id"`

	Disposition int `json:"disposition"` // -100..100
	Trust       int `json:"trust"`       // 0..100
	Fear        int `json:"fear"`        // 0..100
	Respect     int `json:"respect"`     // 0..100
	Grudge      int `json:"grudge"`      // 0..100
	Gratitude   int `json:"gratitude"`   // 0..100

	// Alliance and Rivalry are mutually exclusive per directed edge.
	Alliance     bool `json:"alliance"`
	AllianceTurn int  `json:"alliance_turn,omitempty"`
	Rivalry      bool `json:"rivalry"`

	// Client means the source is a client of the target; Patron means the
	// source is a patron of the target.
	Client bool `json:"client,omitempty"`
	Patron bool `json:"patron,omitempty"`

	// LastInteractionTurn drives the per-pair interaction cooldown.
	LastInteractionTurn int `json:"last_interaction_turn"`
}

// FormAlliance marks the edge as an alliance formed on the given turn.
// Rivalry is cleared, since the two states are mutually exclusive.
func (r *Relationship) FormAlliance(turn int) {
	r.Alliance = true
	r.AllianceTurn = turn
	r.Rivalry = false
}

// BreakAlliance clears alliance state.
func (r *Relationship) BreakAlliance() {
	r.Alliance = false
	r.AllianceTurn = 0
}

// MarkRivalry flags the edge as a rivalry, clearing any alliance.
func (r *Relationship) MarkRivalry() {
	r.Rivalry = true
	r.Alliance = false
	r.AllianceTurn = 0
}

// CanBetray reports whether the alliance on this edge is old enough to be
// betrayed at the given turn.
func (r *Relationship) CanBetray(turn int) bool {
	return r.Alliance && turn-r.AllianceTurn >= AllianceBetrayalAge
}

// AllianceAge returns how many turns the alliance has existed, or 0 when
// there is no alliance.
func (r *Relationship) AllianceAge(turn int) int {
	if !r.Alliance {
		return 0
	}
	return turn - r.AllianceTurn
}

// Clamp forces every mutable field back into its declared range.
func (r *Relationship) Clamp() {
	r.Disposition = clamp(r.Disposition, -100, 100)
	r.Trust = clamp(r.Trust, 0, 100)
	r.Fear = clamp(r.Fear, 0, 100)
	r.Respect = clamp(r.Respect, 0, 100)
	r.Grudge = clamp(r.Grudge, 0, 100)
	r.Gratitude = clamp(r.Gratitude, 0, 100)
}
