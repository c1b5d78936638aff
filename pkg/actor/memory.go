package actor

// MemoryKind tags the kind of past interaction a memory records.
type MemoryKind string

const (
	MemoryWasInvestigated  MemoryKind = "was_investigated"
	MemoryWasDenounced     MemoryKind = "was_denounced"
	MemoryWasDetained      MemoryKind = "was_detained"
	MemoryWasSabotaged     MemoryKind = "was_sabotaged"
	MemoryWasSurveilled    MemoryKind = "was_surveilled"
	MemoryWasBlocked       MemoryKind = "was_blocked"
	MemoryWasSlandered     MemoryKind = "was_slandered"
	MemoryWasBetrayed      MemoryKind = "was_betrayed"
	MemoryWasProtected     MemoryKind = "was_protected"
	MemoryReceivedFavor    MemoryKind = "received_favor"
	MemoryAllianceFormed   MemoryKind = "alliance_formed"
	MemoryGaveOrders       MemoryKind = "gave_orders"
	MemoryTookOrders       MemoryKind = "took_orders"
	MemoryDenounced        MemoryKind = "denounced"
	MemoryInvestigated     MemoryKind = "investigated"
	MemoryDetained         MemoryKind = "detained"
	MemorySabotaged        MemoryKind = "sabotaged"
	MemorySurveilled       MemoryKind = "surveilled"
	MemoryBlockedPromotion MemoryKind = "blocked_promotion"
	MemorySpreadRumors     MemoryKind = "spread_rumors"
	MemoryBetrayedAlly     MemoryKind = "betrayed_ally"
	MemoryProtectedBy      MemoryKind = "sought_protection"
	MemoryCurriedFavor     MemoryKind = "curried_favor"
	MemorySharedGathering  MemoryKind = "shared_gathering"
	MemoryGovernedTogether MemoryKind = "governed_together"
)

// MemoryDecayPerTurn is how much effective strength a memory loses per turn
// of distance. Influence vanishes asymptotically to zero, never below.
const MemoryDecayPerTurn = 4

// Memory is a decaying record of a past interaction. Records are append-only;
// behavioral influence fades with turn distance via Strength.
type Memory struct {
	Kind        MemoryKind `json:"kind"`
	Turn        int        `json:"turn"`
	OtherID     string     `json:"other_id,omitempty"`
	Severity    int        `json:"severity"`  // 0..100
	Sentiment   int        `json:"sentiment"` // -100..100
	Description string     `json:"description,omitempty"`
}

// Strength returns the memory's effective strength at the given turn:
// severity minus decay for each elapsed turn, floored at zero.
func (m Memory) Strength(currentTurn int) int {
	age := currentTurn - m.Turn
	if age < 0 {
		age = 0
	}
	s := m.Severity - age*MemoryDecayPerTurn
	if s < 0 {
		return 0
	}
	return s
}

// Hostile reports whether the memory records being wronged by the other actor.
func (m Memory) Hostile() bool {
	return m.Sentiment < 0
}
