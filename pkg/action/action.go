package action

import (
	"github.com/ryanrudat/Nomenklatura-sub003/pkg/actor"
)

// Category groups action kinds by the sphere of political life they touch.
type Category string

const (
	CategoryScheming   Category = "scheming"
	CategoryForeign    Category = "foreign_affairs"
	CategoryEconomic   Category = "economic_planning"
	CategorySecurity   Category = "security_services"
	CategoryState      Category = "state_ministry"
	CategoryParty      Category = "party_apparatus"
	CategoryMilitary   Category = "military_political"
	CategoryLeadership Category = "leadership"
	CategoryGovernance Category = "reactive_governance"
)

// Kind is one of the closed set of autonomous actions an actor can take.
type Kind string

const (
	// Scheming: available to everyone.
	SpreadRumors        Kind = "spread_rumors"
	FormAlliance        Kind = "form_alliance"
	BetrayAlliance      Kind = "betray_alliance"
	Denounce            Kind = "denounce"
	LaunchInvestigation Kind = "launch_investigation"
	BlockPromotion      Kind = "block_promotion"
	CurryFavor          Kind = "curry_favor"
	SeekProtection      Kind = "seek_protection"
	Sabotage            Kind = "sabotage"
	SurveilRival        Kind = "surveil_rival"
	GatherCompromat     Kind = "gather_compromat"
	RepayFavor          Kind = "repay_favor"

	// Foreign affairs.
	NegotiateTreaty Kind = "negotiate_treaty"
	HandleIncident  Kind = "handle_incident"
	HostDelegation  Kind = "host_delegation"
	RecallEnvoy     Kind = "recall_envoy"

	// Economic planning.
	SetProductionQuota  Kind = "set_production_quota"
	ReallocateResources Kind = "reallocate_resources"
	AddressShortage     Kind = "address_shortage"
	ReviewPlanTargets   Kind = "review_plan_targets"

	// Security services.
	DetainSuspect      Kind = "detain_suspect"
	ExpandSurveillance Kind = "expand_surveillance"
	RootOutSpies       Kind = "root_out_spies"
	PurgeDepartment    Kind = "purge_department"

	// State ministry.
	ReformMinistry   Kind = "reform_ministry"
	ManageFoodSupply Kind = "manage_food_supply"
	IssueRegulation  Kind = "issue_regulation"

	// Party apparatus.
	IdeologicalCampaign  Kind = "ideological_campaign"
	EnforceDiscipline    Kind = "enforce_discipline"
	OrganizeStudySession Kind = "organize_study_session"

	// Military-political.
	InspectGarrison    Kind = "inspect_garrison"
	PoliticalEducation Kind = "political_education"
	SecureArmyLoyalty  Kind = "secure_army_loyalty"

	// Leadership: escalating position requirements.
	CultivateClientele       Kind = "cultivate_clientele"
	OrganizeGathering        Kind = "organize_gathering"
	IssueDirective           Kind = "issue_directive"
	ConveneStandingCommittee Kind = "convene_standing_committee"
	ProposeLawChange         Kind = "propose_law_change"

	// Reactive governance.
	RespondToCrisis  Kind = "respond_to_crisis"
	SuppressUnrest   Kind = "suppress_unrest"
	StabilizeMarkets Kind = "stabilize_markets"
)

// spec is the semantic row for one action kind. Presentation (icon, color,
// prose) lives separately; decision logic depends only on these fields.
type spec struct {
	category    Category
	minPosition int
	track       actor.Track // "" when any track qualifies
	severity    int         // 0..100, drives memory severity
	disposition int         // signed effect on the target's view of the actor
	dramatic    bool        // raises event visibility
	governance  bool        // routine governance, modest visibility bump
}

var specs = map[Kind]spec{
	SpreadRumors:        {category: CategoryScheming, severity: 25, disposition: -10, dramatic: false},
	FormAlliance:        {category: CategoryScheming, severity: 40, disposition: 20},
	BetrayAlliance:      {category: CategoryScheming, severity: 90, disposition: -60, dramatic: true},
	Denounce:            {category: CategoryScheming, severity: 70, disposition: -40, dramatic: true},
	LaunchInvestigation: {category: CategoryScheming, severity: 65, disposition: -35, dramatic: true},
	BlockPromotion:      {category: CategoryScheming, severity: 50, disposition: -30},
	CurryFavor:          {category: CategoryScheming, severity: 20, disposition: 15},
	SeekProtection:      {category: CategoryScheming, severity: 30, disposition: 10},
	Sabotage:            {category: CategoryScheming, severity: 60, disposition: -35, dramatic: true},
	SurveilRival:        {category: CategoryScheming, severity: 35, disposition: -15},
	GatherCompromat:     {category: CategoryScheming, severity: 45, disposition: -20},
	RepayFavor:          {category: CategoryScheming, severity: 20, disposition: 15},

	NegotiateTreaty: {category: CategoryForeign, minPosition: 3, track: actor.TrackForeign, severity: 30, disposition: 5, governance: true},
	HandleIncident:  {category: CategoryForeign, minPosition: 3, track: actor.TrackForeign, severity: 35, disposition: 5, governance: true},
	HostDelegation:  {category: CategoryForeign, minPosition: 3, track: actor.TrackForeign, severity: 25, disposition: 5, governance: true},
	RecallEnvoy:     {category: CategoryForeign, minPosition: 3, track: actor.TrackForeign, severity: 30, disposition: -5, governance: true},

	SetProductionQuota:  {category: CategoryEconomic, minPosition: 3, track: actor.TrackEconomic, severity: 30, disposition: -5, governance: true},
	ReallocateResources: {category: CategoryEconomic, minPosition: 3, track: actor.TrackEconomic, severity: 30, disposition: 0, governance: true},
	AddressShortage:     {category: CategoryEconomic, minPosition: 3, track: actor.TrackEconomic, severity: 30, disposition: 5, governance: true},
	ReviewPlanTargets:   {category: CategoryEconomic, minPosition: 3, track: actor.TrackEconomic, severity: 25, disposition: 0, governance: true},

	DetainSuspect:      {category: CategorySecurity, minPosition: 3, track: actor.TrackSecurity, severity: 85, disposition: -50, dramatic: true},
	ExpandSurveillance: {category: CategorySecurity, minPosition: 3, track: actor.TrackSecurity, severity: 40, disposition: -15, governance: true},
	RootOutSpies:       {category: CategorySecurity, minPosition: 3, track: actor.TrackSecurity, severity: 55, disposition: -20, governance: true},
	PurgeDepartment:    {category: CategorySecurity, minPosition: 4, track: actor.TrackSecurity, severity: 75, disposition: -40, dramatic: true},

	ReformMinistry:   {category: CategoryState, minPosition: 3, track: actor.TrackState, severity: 30, disposition: 0, governance: true},
	ManageFoodSupply: {category: CategoryState, minPosition: 3, track: actor.TrackState, severity: 30, disposition: 5, governance: true},
	IssueRegulation:  {category: CategoryState, minPosition: 3, track: actor.TrackState, severity: 25, disposition: 0, governance: true},

	IdeologicalCampaign:  {category: CategoryParty, minPosition: 3, track: actor.TrackParty, severity: 35, disposition: 0, governance: true},
	EnforceDiscipline:    {category: CategoryParty, minPosition: 3, track: actor.TrackParty, severity: 45, disposition: -20, governance: true},
	OrganizeStudySession: {category: CategoryParty, minPosition: 3, track: actor.TrackParty, severity: 20, disposition: 5, governance: true},

	InspectGarrison:    {category: CategoryMilitary, minPosition: 3, track: actor.TrackMilitary, severity: 30, disposition: -5, governance: true},
	PoliticalEducation: {category: CategoryMilitary, minPosition: 3, track: actor.TrackMilitary, severity: 25, disposition: 0, governance: true},
	SecureArmyLoyalty:  {category: CategoryMilitary, minPosition: 3, track: actor.TrackMilitary, severity: 40, disposition: 5, governance: true},

	CultivateClientele:       {category: CategoryLeadership, minPosition: 4, severity: 30, disposition: 15},
	OrganizeGathering:        {category: CategoryLeadership, minPosition: 5, severity: 25, disposition: 10},
	IssueDirective:           {category: CategoryLeadership, minPosition: 5, severity: 35, disposition: -5, governance: true},
	ConveneStandingCommittee: {category: CategoryLeadership, minPosition: 6, severity: 40, disposition: 0, dramatic: true},
	ProposeLawChange:         {category: CategoryLeadership, minPosition: 7, severity: 50, disposition: 0, dramatic: true},

	RespondToCrisis:  {category: CategoryGovernance, minPosition: 3, severity: 40, disposition: 5, governance: true},
	SuppressUnrest:   {category: CategoryGovernance, minPosition: 3, severity: 55, disposition: -15, dramatic: true},
	StabilizeMarkets: {category: CategoryGovernance, minPosition: 3, severity: 30, disposition: 0, governance: true},
}

// Kinds lists every action kind in a stable order.
var Kinds = []Kind{
	SpreadRumors, FormAlliance, BetrayAlliance, Denounce, LaunchInvestigation,
	BlockPromotion, CurryFavor, SeekProtection, Sabotage, SurveilRival,
	GatherCompromat, RepayFavor,
	NegotiateTreaty, HandleIncident, HostDelegation, RecallEnvoy,
	SetProductionQuota, ReallocateResources, AddressShortage, ReviewPlanTargets,
	DetainSuspect, ExpandSurveillance, RootOutSpies, PurgeDepartment,
	ReformMinistry, ManageFoodSupply, IssueRegulation,
	IdeologicalCampaign, EnforceDiscipline, OrganizeStudySession,
	InspectGarrison, PoliticalEducation, SecureArmyLoyalty,
	CultivateClientele, OrganizeGathering, IssueDirective,
	ConveneStandingCommittee, ProposeLawChange,
	RespondToCrisis, SuppressUnrest, StabilizeMarkets,
}

// Valid reports whether the kind belongs to the catalog.
func (k Kind) Valid() bool {
	_, ok := specs[k]
	return ok
}

// GetCategory returns the category of an action kind.
func GetCategory(k Kind) Category {
	return specs[k].category
}

// MinPosition returns the minimum position index required to take the action.
func MinPosition(k Kind) int {
	return specs[k].minPosition
}

// RequiredTrack returns the career track required for the action, or ""
// when any track qualifies.
func RequiredTrack(k Kind) actor.Track {
	return specs[k].track
}

// Severity returns the action's memory severity, 0..100.
func Severity(k Kind) int {
	return specs[k].severity
}

// DispositionEffect returns the signed change the action applies to the
// target's disposition toward the acting actor.
func DispositionEffect(k Kind) int {
	return specs[k].disposition
}

// Dramatic reports whether the action is dramatic enough to raise event
// visibility.
func Dramatic(k Kind) bool {
	return specs[k].dramatic
}

// Governance reports whether the action is routine governance.
func Governance(k Kind) bool {
	return specs[k].governance
}

// AvailableTo reports whether an actor may take the action: the actor's
// position must meet the action's minimum, and for track-specific actions
// the actor's track must match. Top leadership bypasses the track check.
func AvailableTo(k Kind, a *actor.Actor) bool {
	s, ok := specs[k]
	if !ok {
		return false
	}
	if a.Position < s.minPosition {
		return false
	}
	if s.track != "" && a.Track != s.track && !a.IsLeadership() {
		return false
	}
	return true
}
