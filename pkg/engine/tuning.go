package engine

// Hand-tuned balance constants. The absolute magnitudes are tunable; what
// matters is the relative ordering (security pressure decays faster than
// stability pressure, reactive events stay rarer than autonomous ones).

const (
	// Turn loop.
	maxActorsPerTurn = 3
	actorCooldown    = 2 // min turns between autonomous actions by one actor
	pairCooldown     = 2 // min turns between interactions of the same pair

	// Action selection.
	baseActionWeight = 20
	highTrait        = 60 // personality score treated as a defining trait
	devotionTrait    = 70 // loyalty score granting the party-devotion modifier
	lowNeed          = 40 // gauge level below which a need exerts pressure

	// Reactive evaluator.
	reactiveCooldownTurns = 4
	patronNormalizer      = 160.0
	rivalNormalizer       = 140.0
	allyNormalizer        = 180.0
	contactNormalizer     = 200.0
	discoveredNormalizer  = 220.0

	// Relationship decay: extreme fields drift toward these baselines by
	// relationshipDecayStep per turn.
	relationshipDecayStep = 2
	neutralDisposition    = 0
	neutralTrust          = 20
	neutralFear           = 10
	neutralRespect        = 20
	neutralGrudge         = 0
	neutralGratitude      = 0
)

// needDecayPerTurn drains each gauge every turn. Security decays fastest,
// stability slowest; the ordering is load-bearing, the magnitudes are not.
var needDecayPerTurn = struct {
	security, power, loyalty, recognition, stability, ideology int
}{
	security:    3,
	power:       2,
	loyalty:     2,
	recognition: 2,
	stability:   1,
	ideology:    1,
}
