package engine

import (
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/actor"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/event"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/ledger"
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/state"
)

// EvaluateReactive checks whether any actor close to the player has cause to
// act toward them this turn. Roles are checked in fixed precedence order:
// patron, then rival, then close allies, then contacts, then merely
// discovered actors. The first role that both passes its motivation gate and
// wins its probability roll produces the turn's single reactive event; every
// fired category is then cooled down for reactiveCooldownTurns.
func (e *Engine) EvaluateReactive(gs *state.GameState) *event.Event {
	if ev := e.evalPatron(gs); ev != nil {
		return ev
	}
	if ev := e.evalRival(gs); ev != nil {
		return ev
	}
	if ev := e.evalAllies(gs); ev != nil {
		return ev
	}
	if ev := e.evalContacts(gs); ev != nil {
		return ev
	}
	return e.evalDiscovered(gs)
}

// fires applies the motivation gate. Caution scales the perceived risk: a
// fully ruthless actor discounts risk to half, a fully cautious one weighs
// it in full.
func fires(motivation, opportunity, risk int, a *actor.Actor) bool {
	caution := float64(100-a.Personality.Ruthless)/100*0.5 + 0.5
	return float64(motivation+opportunity) > float64(risk)*caution
}

func (e *Engine) armCooldown(gs *state.GameState, cat event.Category) {
	gs.SetCategoryCooldown(cat, gs.Turn+reactiveCooldownTurns)
}

// evalPatron fires when the patron's favor has drifted out of the
// comfortable band, or when national instability reflects on their protege.
func (e *Engine) evalPatron(gs *state.GameState) *event.Event {
	if gs.CategoryOnCooldown(event.CategoryPatron) {
		return nil
	}
	p := gs.Actor(gs.PatronID)
	if p == nil || p.Status != actor.StatusActive {
		return nil
	}

	favor := gs.Ledger.Get(ledger.PatronFavor)
	stability := gs.Ledger.Get(ledger.Stability)

	motivation := 0
	if favor < 35 {
		motivation += (35 - favor) * 2
	}
	if favor > 75 {
		motivation += favor - 75
	}
	if stability < 35 {
		motivation += 35 - stability
	}
	if motivation == 0 {
		return nil
	}

	opportunity := p.Position * 5
	risk := 20 + p.Fear/2
	if !fires(motivation, opportunity, risk, p) {
		return nil
	}
	if !chance(e.rng, float64(motivation)/patronNormalizer) {
		return nil
	}

	pri := event.PriorityElevated
	if favor < 20 {
		pri = event.PriorityUrgent
	}
	ev := event.New(event.CategoryPatron, pri, p.ID, gs.Turn)
	if favor > 75 {
		ev.Options = []event.Option{
			{Label: "accept_assignment", Effects: map[ledger.Indicator]int{ledger.Standing: 2, ledger.PatronFavor: 1}},
			{Label: "decline_politely", Effects: map[ledger.Indicator]int{ledger.PatronFavor: -2}},
		}
	} else {
		ev.Options = []event.Option{
			{Label: "make_amends", Effects: map[ledger.Indicator]int{ledger.PatronFavor: 3, ledger.Standing: -1}},
			{Label: "stand_firm", Effects: map[ledger.Indicator]int{ledger.PatronFavor: -2, ledger.Standing: 1}},
		}
	}
	e.armCooldown(gs, event.CategoryPatron)
	return &ev
}

// evalRival fires on accumulated rival threat and the rival's own ambition,
// amplified when the player's standing dips low enough to invite a move.
func (e *Engine) evalRival(gs *state.GameState) *event.Event {
	if gs.CategoryOnCooldown(event.CategoryRival) {
		return nil
	}
	r := gs.Actor(gs.RivalID)
	if r == nil || r.Status != actor.StatusActive {
		return nil
	}

	threat := gs.Ledger.Get(ledger.RivalThreat)
	standing := gs.Ledger.Get(ledger.Standing)

	motivation := threat/2 + r.Personality.Ambitious/3 + r.Grudge/4
	opportunity := 0
	if standing < 40 {
		opportunity = 40 - standing
	}
	risk := 30 + r.Fear/2
	if !fires(motivation, opportunity, risk, r) {
		return nil
	}
	if !chance(e.rng, float64(motivation)/rivalNormalizer) {
		return nil
	}

	pri := event.PriorityElevated
	if threat > 70 {
		pri = event.PriorityUrgent
	}
	ev := event.New(event.CategoryRival, pri, r.ID, gs.Turn)
	ev.Options = []event.Option{
		{Label: "counterattack", Effects: map[ledger.Indicator]int{ledger.RivalThreat: -3, ledger.EliteLoyalty: -1}},
		{Label: "absorb_the_blow", Effects: map[ledger.Indicator]int{ledger.Standing: -2}},
		{Label: "seek_mediation", Effects: map[ledger.Indicator]int{ledger.RivalThreat: -1, ledger.PatronFavor: -1}},
	}
	e.armCooldown(gs, event.CategoryRival)
	return &ev
}

// evalAllies fires for well-disposed actors who either need help or sense
// the player's network weakening.
func (e *Engine) evalAllies(gs *state.GameState) *event.Event {
	if gs.CategoryOnCooldown(event.CategoryAlly) {
		return nil
	}
	network := gs.Ledger.Get(ledger.Network)

	for _, a := range gs.ActorsByPosition() {
		if a.ID == gs.PatronID || a.ID == gs.RivalID {
			continue
		}
		if a.Status != actor.StatusActive || a.Disposition < 60 {
			continue
		}

		motivation := 0
		if network < 40 {
			motivation += (40 - network) / 2
		}
		if a.Needs.Security < lowNeed {
			motivation += (lowNeed - a.Needs.Security) / 2
		}
		if motivation == 0 {
			continue
		}
		motivation += a.Gratitude / 4

		opportunity := a.Trust / 2
		risk := 25
		if !fires(motivation, opportunity, risk, a) {
			continue
		}
		if !chance(e.rng, float64(motivation)/allyNormalizer) {
			continue
		}

		ev := event.New(event.CategoryAlly, event.PriorityNormal, a.ID, gs.Turn)
		ev.Options = []event.Option{
			{Label: "lend_support", Effects: map[ledger.Indicator]int{ledger.Network: 2, ledger.Standing: -1}},
			{Label: "offer_sympathy", Effects: map[ledger.Indicator]int{ledger.Network: 1}},
			{Label: "keep_distance", Effects: map[ledger.Indicator]int{ledger.Network: -2}},
		}
		e.armCooldown(gs, event.CategoryAlly)
		return &ev
	}
	return nil
}

// evalContacts fires for listed contacts when the player's network is thin
// enough that staying in touch matters.
func (e *Engine) evalContacts(gs *state.GameState) *event.Event {
	if gs.CategoryOnCooldown(event.CategoryContact) {
		return nil
	}
	network := gs.Ledger.Get(ledger.Network)

	for _, id := range gs.ContactIDs {
		a := gs.Actor(id)
		if a == nil || a.Status != actor.StatusActive {
			continue
		}
		if a.ID == gs.PatronID || a.ID == gs.RivalID {
			continue
		}

		motivation := a.Disposition / 3
		if network < 50 {
			motivation += (50 - network) / 2
		}
		if motivation <= 0 {
			continue
		}

		opportunity := a.Position * 3
		risk := 30
		if !fires(motivation, opportunity, risk, a) {
			continue
		}
		if !chance(e.rng, float64(motivation)/contactNormalizer) {
			continue
		}

		ev := event.New(event.CategoryContact, event.PriorityNormal, a.ID, gs.Turn)
		ev.Options = []event.Option{
			{Label: "cultivate", Effects: map[ledger.Indicator]int{ledger.Network: 2}},
			{Label: "exchange_pleasantries", Effects: map[ledger.Indicator]int{ledger.Network: 1}},
			{Label: "brush_off", Effects: nil},
		}
		e.armCooldown(gs, event.CategoryContact)
		return &ev
	}
	return nil
}

// evalDiscovered fires rarely: actors the player merely knows of approach an
// influential player on their own initiative.
func (e *Engine) evalDiscovered(gs *state.GameState) *event.Event {
	if gs.CategoryOnCooldown(event.CategoryDiscovered) {
		return nil
	}
	standing := gs.Ledger.Get(ledger.Standing)

	for _, id := range gs.DiscoveredIDs {
		if gs.IsContact(id) || id == gs.PatronID || id == gs.RivalID {
			continue
		}
		a := gs.Actor(id)
		if a == nil || a.Status != actor.StatusActive {
			continue
		}

		motivation := standing/3 + a.Personality.Ambitious/4
		if motivation <= 0 {
			continue
		}

		opportunity := a.Personality.Corrupt / 4
		risk := 35
		if !fires(motivation, opportunity, risk, a) {
			continue
		}
		if !chance(e.rng, float64(motivation)/discoveredNormalizer) {
			continue
		}

		ev := event.New(event.CategoryDiscovered, event.PriorityBackground, a.ID, gs.Turn)
		ev.Options = []event.Option{
			{Label: "hear_them_out", Effects: map[ledger.Indicator]int{ledger.Network: 1}},
			{Label: "refer_elsewhere", Effects: nil},
		}
		e.armCooldown(gs, event.CategoryDiscovered)
		return &ev
	}
	return nil
}
