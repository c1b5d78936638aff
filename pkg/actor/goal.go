package actor

// GoalTheme groups goal kinds by the part of political life they serve.
type GoalTheme string

const (
	ThemeCareer    GoalTheme = "career"
	ThemeSurvival  GoalTheme = "survival"
	ThemeEspionage GoalTheme = "espionage"
	ThemeSecurity  GoalTheme = "security"
	ThemeEconomic  GoalTheme = "economic"
	ThemeMilitary  GoalTheme = "military_political"
	ThemeParty     GoalTheme = "party_apparatus"
	ThemeState     GoalTheme = "state_ministry"
)

// GoalKind is one of the closed set of behavioral objectives an actor can
// pursue. Kinds are grouped by theme; the theme of a kind is fixed.
type GoalKind string

const (
	// Career
	GoalSeekPromotion      GoalKind = "seek_promotion"
	GoalDestroyRival       GoalKind = "destroy_rival"
	GoalBlockRival         GoalKind = "block_rival"
	GoalCultivatePatron    GoalKind = "cultivate_patron"
	GoalBuildClientele     GoalKind = "build_clientele"
	GoalJoinCommittee      GoalKind = "join_committee"
	GoalGainRecognition    GoalKind = "gain_recognition"
	GoalSwitchTrack        GoalKind = "switch_track"
	GoalAccumulateFavors   GoalKind = "accumulate_favors"
	GoalOutshineColleagues GoalKind = "outshine_colleagues"
	GoalGroomSuccessor     GoalKind = "groom_successor"
	GoalEarnDecoration     GoalKind = "earn_decoration"
	GoalEnterInnerCircle   GoalKind = "enter_inner_circle"

	// Survival
	GoalAvoidPurge         GoalKind = "avoid_purge"
	GoalSecureProtection   GoalKind = "secure_protection"
	GoalBuryEvidence       GoalKind = "bury_evidence"
	GoalEscapeSuspicion    GoalKind = "escape_suspicion"
	GoalAppeaseSuperiors   GoalKind = "appease_superiors"
	GoalStockpileLeverage  GoalKind = "stockpile_leverage"
	GoalRemainInvisible    GoalKind = "remain_invisible"
	GoalRepairReputation   GoalKind = "repair_reputation"
	GoalDeflectBlame       GoalKind = "deflect_blame"
	GoalFeignLoyalty       GoalKind = "feign_loyalty"
	GoalPurchaseProtection GoalKind = "purchase_protection"
	GoalEraseAssociations  GoalKind = "erase_past_associations"

	// Espionage
	GoalServeForeignPower   GoalKind = "serve_foreign_power"
	GoalRecruitAsset        GoalKind = "recruit_asset"
	GoalProtectCover        GoalKind = "protect_cover"
	GoalPassIntelligence    GoalKind = "pass_intelligence"
	GoalIdentifyWatchers    GoalKind = "identify_watchers"
	GoalPrepareExfil        GoalKind = "prepare_exfil"
	GoalEstablishDeadDrop   GoalKind = "establish_dead_drop"
	GoalCultivateHandler    GoalKind = "cultivate_handler"
	GoalSpreadDisinfo       GoalKind = "spread_disinformation"
	GoalMapSecurityOrgans   GoalKind = "map_security_apparatus"

	// Security
	GoalExposeTraitor     GoalKind = "expose_traitor"
	GoalExpandSurveil     GoalKind = "expand_surveillance"
	GoalPurgeDepartment   GoalKind = "purge_department"
	GoalControlArchives   GoalKind = "control_archives"
	GoalBuildInformantNet GoalKind = "build_informant_network"
	GoalSuppressDissent   GoalKind = "suppress_dissent"
	GoalInfiltrateFaction GoalKind = "infiltrate_faction"
	GoalCompileDossiers   GoalKind = "compile_dossiers"
	GoalGuardLeadership   GoalKind = "guard_leadership"
	GoalTightenBorders    GoalKind = "tighten_borders"

	// Economic
	GoalMeetQuota         GoalKind = "meet_quota"
	GoalFixShortages      GoalKind = "fix_shortages"
	GoalControlResources  GoalKind = "control_resources"
	GoalSkimTreasury      GoalKind = "skim_treasury"
	GoalModernizeIndustry GoalKind = "modernize_industry"
	GoalSecureSupplyLines GoalKind = "secure_supply_lines"
	GoalHideDeficits      GoalKind = "hide_deficits"
	GoalCornerSupplyChain GoalKind = "corner_supply_chain"
	GoalWinPlanApproval   GoalKind = "win_plan_approval"
	GoalBoostExports      GoalKind = "boost_exports"

	// Military-political
	GoalSecureArmyLoyalty   GoalKind = "secure_army_loyalty"
	GoalPoliticizeOfficer   GoalKind = "politicize_officers"
	GoalExpandGarrison      GoalKind = "expand_garrison"
	GoalWinCommandPost      GoalKind = "win_command_post"
	GoalCourtGenerals       GoalKind = "court_generals"
	GoalModernizeArsenal    GoalKind = "modernize_arsenal"
	GoalPurgeOfficerCorps   GoalKind = "purge_officer_corps"
	GoalSecureBorderCommand GoalKind = "secure_border_command"
	GoalBuildVeteranNetwork GoalKind = "build_veteran_network"

	// Party-apparatus
	GoalEnforceOrthodoxy  GoalKind = "enforce_orthodoxy"
	GoalRunCampaign       GoalKind = "run_ideological_campaign"
	GoalControlNomination GoalKind = "control_nominations"
	GoalDisciplineCadres  GoalKind = "discipline_cadres"
	GoalWriteDoctrine     GoalKind = "write_doctrine"
	GoalPackCongress      GoalKind = "pack_party_congress"
	GoalRewriteHistory    GoalKind = "rewrite_official_history"
	GoalGroomCadres       GoalKind = "groom_young_cadres"

	// State-ministry
	GoalReformMinistry      GoalKind = "reform_ministry"
	GoalDefendBudget        GoalKind = "defend_budget"
	GoalExpandMandate       GoalKind = "expand_mandate"
	GoalDeliverServices     GoalKind = "deliver_services"
	GoalCaptureRegulator    GoalKind = "capture_regulator"
	GoalStreamlineBureaus   GoalKind = "streamline_bureaucracy"
	GoalControlPermits      GoalKind = "control_permits"
	GoalDeliverGrandProject GoalKind = "deliver_grand_projects"
)

// goalThemes maps every goal kind to its theme.
var goalThemes = map[GoalKind]GoalTheme{
	GoalSeekPromotion:      ThemeCareer,
	GoalDestroyRival:       ThemeCareer,
	GoalBlockRival:         ThemeCareer,
	GoalCultivatePatron:    ThemeCareer,
	GoalBuildClientele:     ThemeCareer,
	GoalJoinCommittee:      ThemeCareer,
	GoalGainRecognition:    ThemeCareer,
	GoalSwitchTrack:        ThemeCareer,
	GoalAccumulateFavors:   ThemeCareer,
	GoalOutshineColleagues: ThemeCareer,
	GoalGroomSuccessor:     ThemeCareer,
	GoalEarnDecoration:     ThemeCareer,
	GoalEnterInnerCircle:   ThemeCareer,

	GoalAvoidPurge:         ThemeSurvival,
	GoalSecureProtection:   ThemeSurvival,
	GoalBuryEvidence:       ThemeSurvival,
	GoalEscapeSuspicion:    ThemeSurvival,
	GoalAppeaseSuperiors:   ThemeSurvival,
	GoalStockpileLeverage:  ThemeSurvival,
	GoalRemainInvisible:    ThemeSurvival,
	GoalRepairReputation:   ThemeSurvival,
	GoalDeflectBlame:       ThemeSurvival,
	GoalFeignLoyalty:       ThemeSurvival,
	GoalPurchaseProtection: ThemeSurvival,
	GoalEraseAssociations:  ThemeSurvival,

	GoalServeForeignPower: ThemeEspionage,
	GoalRecruitAsset:      ThemeEspionage,
	GoalProtectCover:      ThemeEspionage,
	GoalPassIntelligence:  ThemeEspionage,
	GoalIdentifyWatchers:  ThemeEspionage,
	GoalPrepareExfil:      ThemeEspionage,
	GoalEstablishDeadDrop: ThemeEspionage,
	GoalCultivateHandler:  ThemeEspionage,
	GoalSpreadDisinfo:     ThemeEspionage,
	GoalMapSecurityOrgans: ThemeEspionage,

	GoalExposeTraitor:     ThemeSecurity,
	GoalExpandSurveil:     ThemeSecurity,
	GoalPurgeDepartment:   ThemeSecurity,
	GoalControlArchives:   ThemeSecurity,
	GoalBuildInformantNet: ThemeSecurity,
	GoalSuppressDissent:   ThemeSecurity,
	GoalInfiltrateFaction: ThemeSecurity,
	GoalCompileDossiers:   ThemeSecurity,
	GoalGuardLeadership:   ThemeSecurity,
	GoalTightenBorders:    ThemeSecurity,

	GoalMeetQuota:         ThemeEconomic,
	GoalFixShortages:      ThemeEconomic,
	GoalControlResources:  ThemeEconomic,
	GoalSkimTreasury:      ThemeEconomic,
	GoalModernizeIndustry: ThemeEconomic,
	GoalSecureSupplyLines: ThemeEconomic,
	GoalHideDeficits:      ThemeEconomic,
	GoalCornerSupplyChain: ThemeEconomic,
	GoalWinPlanApproval:   ThemeEconomic,
	GoalBoostExports:      ThemeEconomic,

	GoalSecureArmyLoyalty:   ThemeMilitary,
	GoalPoliticizeOfficer:   ThemeMilitary,
	GoalExpandGarrison:      ThemeMilitary,
	GoalWinCommandPost:      ThemeMilitary,
	GoalCourtGenerals:       ThemeMilitary,
	GoalModernizeArsenal:    ThemeMilitary,
	GoalPurgeOfficerCorps:   ThemeMilitary,
	GoalSecureBorderCommand: ThemeMilitary,
	GoalBuildVeteranNetwork: ThemeMilitary,

	GoalEnforceOrthodoxy:  ThemeParty,
	GoalRunCampaign:       ThemeParty,
	GoalControlNomination: ThemeParty,
	GoalDisciplineCadres:  ThemeParty,
	GoalWriteDoctrine:     ThemeParty,
	GoalPackCongress:      ThemeParty,
	GoalRewriteHistory:    ThemeParty,
	GoalGroomCadres:       ThemeParty,

	GoalReformMinistry:      ThemeState,
	GoalDefendBudget:        ThemeState,
	GoalExpandMandate:       ThemeState,
	GoalDeliverServices:     ThemeState,
	GoalCaptureRegulator:    ThemeState,
	GoalStreamlineBureaus:   ThemeState,
	GoalControlPermits:      ThemeState,
	GoalDeliverGrandProject: ThemeState,
}

// Theme returns the theme of a goal kind, or "" for unknown kinds.
func (k GoalKind) Theme() GoalTheme {
	return goalThemes[k]
}

// Valid reports whether the goal kind belongs to the catalog.
func (k GoalKind) Valid() bool {
	_, ok := goalThemes[k]
	return ok
}

// Goal is a persistent behavioral objective biasing action selection.
type Goal struct {
	Kind        GoalKind `json:"kind"`
	Priority    int      `json:"priority"`
	Progress    int      `json:"progress"` // 0..100; 100 deactivates the goal
	TargetID    string   `json:"target_id,omitempty"`
	Active      bool     `json:"active"`
	Attempts    int      `json:"attempts"`
	Frustration int      `json:"frustration"`
}
