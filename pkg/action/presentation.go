package action

// Presenter supplies display metadata for action kinds. Decision logic never
// reads these tables; they exist for event rendering collaborators.
type Presenter interface {
	Icon(k Kind) string
	Color(k Kind) string
	Describe(k Kind) string
}

// DefaultPresenter is the built-in presentation table.
type DefaultPresenter struct{}

var _ Presenter = DefaultPresenter{}

var categoryIcons = map[Category]string{
	CategoryScheming:   "dagger",
	CategoryForeign:    "globe",
	CategoryEconomic:   "factory",
	CategorySecurity:   "shield",
	CategoryState:      "ministry",
	CategoryParty:      "star",
	CategoryMilitary:   "medal",
	CategoryLeadership: "podium",
	CategoryGovernance: "gavel",
}

var categoryColors = map[Category]string{
	CategoryScheming:   "#AF3A3A",
	CategoryForeign:    "#3A6EA5",
	CategoryEconomic:   "#A57C3A",
	CategorySecurity:   "#5A5A5A",
	CategoryState:      "#3AA57C",
	CategoryParty:      "#C23B22",
	CategoryMilitary:   "#4F6228",
	CategoryLeadership: "#8A5FA5",
	CategoryGovernance: "#3A8AA5",
}

var descriptions = map[Kind]string{
	SpreadRumors:        "spreads rumors through the corridors",
	FormAlliance:        "quietly proposes an understanding",
	BetrayAlliance:      "turns on a trusted ally",
	Denounce:            "delivers a public denunciation",
	LaunchInvestigation: "opens a formal investigation",
	BlockPromotion:      "moves to block an advancement",
	CurryFavor:          "curries favor with a superior",
	SeekProtection:      "seeks protection from a powerful figure",
	Sabotage:            "sabotages a colleague's work",
	SurveilRival:        "places a rival under quiet observation",
	GatherCompromat:     "collects compromising material",
	RepayFavor:          "repays an old debt",

	NegotiateTreaty: "negotiates terms with a foreign power",
	HandleIncident:  "manages a diplomatic incident",
	HostDelegation:  "hosts a visiting delegation",
	RecallEnvoy:     "recalls an envoy for consultations",

	SetProductionQuota:  "sets new production quotas",
	ReallocateResources: "reallocates scarce resources",
	AddressShortage:     "moves to address a shortage",
	ReviewPlanTargets:   "reviews the plan targets",

	DetainSuspect:      "orders a suspect detained",
	ExpandSurveillance: "expands the surveillance apparatus",
	RootOutSpies:       "hunts for foreign agents",
	PurgeDepartment:    "purges an unreliable department",

	ReformMinistry:   "reorganizes the ministry",
	ManageFoodSupply: "intervenes in the food supply",
	IssueRegulation:  "issues new regulations",

	IdeologicalCampaign:  "launches an ideological campaign",
	EnforceDiscipline:    "enforces party discipline",
	OrganizeStudySession: "organizes a study session",

	InspectGarrison:    "inspects a garrison",
	PoliticalEducation: "conducts political education",
	SecureArmyLoyalty:  "works to secure the army's loyalty",

	CultivateClientele:       "cultivates a circle of clients",
	OrganizeGathering:        "hosts an informal gathering",
	IssueDirective:           "issues a binding directive",
	ConveneStandingCommittee: "convenes the standing committee",
	ProposeLawChange:         "proposes a change in the law",

	RespondToCrisis:  "takes charge of the crisis response",
	SuppressUnrest:   "orders unrest suppressed",
	StabilizeMarkets: "intervenes to stabilize supplies",
}

// Icon returns a symbolic icon name for the action's category.
func (DefaultPresenter) Icon(k Kind) string {
	return categoryIcons[GetCategory(k)]
}

// Color returns a hex color for the action's category.
func (DefaultPresenter) Color(k Kind) string {
	return categoryColors[GetCategory(k)]
}

// Describe returns a short third-person description of the action.
func (DefaultPresenter) Describe(k Kind) string {
	return descriptions[k]
}
