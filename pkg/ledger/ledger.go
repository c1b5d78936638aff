package ledger

// Indicator is a named national indicator tracked by the game-state ledger.
// All indicator values are clamped to 0..100 after mutation.
type Indicator string

const (
	Stability             Indicator = "stability"
	EliteLoyalty          Indicator = "elite_loyalty"
	PopularSupport        Indicator = "popular_support"
	MilitaryLoyalty       Indicator = "military_loyalty"
	IndustrialOutput      Indicator = "industrial_output"
	InternationalStanding Indicator = "international_standing"
	FoodSupply            Indicator = "food_supply"
	Network               Indicator = "network"
	Standing              Indicator = "standing"
	PatronFavor           Indicator = "patron_favor"
	Treasury              Indicator = "treasury"
	RivalThreat           Indicator = "rival_threat"
)

// Indicators lists every known indicator, in a stable order.
var Indicators = []Indicator{
	Stability,
	EliteLoyalty,
	PopularSupport,
	MilitaryLoyalty,
	IndustrialOutput,
	InternationalStanding,
	FoodSupply,
	Network,
	Standing,
	PatronFavor,
	Treasury,
	RivalThreat,
}

// Ledger is the shared store of national indicators, string flags,
// and free-form variables. It is owned by the game session and mutated
// in place by the simulation core.
type Ledger struct {
	Indicators map[Indicator]int `json:"indicators,omitempty"`
	Flags      map[string]bool   `json:"flags,omitempty"`
	Vars       map[string]string `json:"vars,omitempty"`
}

// New creates an empty ledger with all maps initialized.
func New() *Ledger {
	return &Ledger{
		Indicators: make(map[Indicator]int),
		Flags:      make(map[string]bool),
		Vars:       make(map[string]string),
	}
}

// Get returns the current value of an indicator. Unknown indicators read as 0.
func (l *Ledger) Get(k Indicator) int {
	if l.Indicators == nil {
		return 0
	}
	return l.Indicators[k]
}

// Set writes an indicator value, clamped to 0..100.
func (l *Ledger) Set(k Indicator, v int) {
	if l.Indicators == nil {
		l.Indicators = make(map[Indicator]int)
	}
	l.Indicators[k] = clamp(v, 0, 100)
}

// Adjust adds a delta to an indicator, clamping the result to 0..100.
func (l *Ledger) Adjust(k Indicator, delta int) {
	l.Set(k, l.Get(k)+delta)
}

// HasFlag reports whether a flag is set.
func (l *Ledger) HasFlag(name string) bool {
	if l.Flags == nil {
		return false
	}
	return l.Flags[name]
}

// SetFlag sets a flag.
func (l *Ledger) SetFlag(name string) {
	if l.Flags == nil {
		l.Flags = make(map[string]bool)
	}
	l.Flags[name] = true
}

// ClearFlag removes a flag.
func (l *Ledger) ClearFlag(name string) {
	delete(l.Flags, name)
}

// Var returns a free-form variable value, or "" when unset.
func (l *Ledger) Var(name string) string {
	if l.Vars == nil {
		return ""
	}
	return l.Vars[name]
}

// SetVar writes a free-form variable.
func (l *Ledger) SetVar(name, value string) {
	if l.Vars == nil {
		l.Vars = make(map[string]string)
	}
	l.Vars[name] = value
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
