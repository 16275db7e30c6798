package dto

import "time"

type CreateViolationNoteRequest struct {
	Location         string `json:"location" validate:"required"`
	SubmittedBy      string `json:"submitted_by"`
	Department       string `json:"department" validate:"required,oneof=Operations Safety Accounting"`
	NoteType         string `json:"note_type" validate:"required"`
	OtherDescription string `json:"other_description"`
	AdditionalNotes  string `json:"additional_notes"`
	ImagePDF         []byte `json:"image_pdf,omitempty"`
}

type CreateEvaluationRequest struct {
	Location             string            `json:"location" validate:"required"`
	SubmittedBy          string            `json:"submitted_by"`
	Answers              map[string]string `json:"answers" validate:"required"`
	AdditionalNotes      string            `json:"additional_notes"`
	FollowUpInstructions string            `json:"follow_up_instructions"`
	ImagePDF             []byte            `json:"image_pdf,omitempty"`
}

type CreateCapitalRequestRequest struct {
	Location    string `json:"location" validate:"required"`
	SubmittedBy string `json:"submitted_by"`

	RequestTypes  []string `json:"request_types" validate:"required,min=1"`
	EquipmentArea string   `json:"equipment_area" validate:"required"`
	Description   string   `json:"description" validate:"required"`

	OperationalImpact string `json:"operational_impact"`
	CustomerImpact    string `json:"customer_impact"`
	SafetyImpact      string `json:"safety_impact"`
	RevenueImpact     string `json:"revenue_impact"`
	ImportanceRanking int    `json:"importance_ranking" validate:"omitempty,min=1,max=5"`

	CostRange              string `json:"cost_range"`
	VendorSupplier         string `json:"vendor_supplier"`
	OperationalRequirement string `json:"operational_requirement"`

	Recommendation   string   `json:"recommendation" validate:"omitempty,oneof=Approve Hold Deny"`
	FollowUpActions  []string `json:"follow_up_actions"`
	Justification    string   `json:"justification"`
	FollowUpDeadline string   `json:"follow_up_deadline"`

	ImagePDF []byte `json:"image_pdf,omitempty"`
}

type CreateMarketResearchRequest struct {
	SubmittedBy string `json:"submitted_by"`

	CompetitorBrand   string `json:"competitor_brand" validate:"required"`
	CompetitorAddress string `json:"competitor_address"`
	OperationType     string `json:"operation_type"`
	TunnelLength      string `json:"tunnel_length"`
	VisitDateTime     string `json:"visit_date_time"`

	StaffingLevels        string   `json:"staffing_levels"`
	StaffProfessionalism  string   `json:"staff_professionalism"`
	SpeedOfService        string   `json:"speed_of_service"`
	QueueLength           string   `json:"queue_length"`
	EquipmentCondition    []string `json:"equipment_condition"`
	TechnologyUsed        []string `json:"technology_used"`
	OperationalStrengths  string   `json:"operational_strengths"`
	OperationalWeaknesses string   `json:"operational_weaknesses"`

	CustomerServiceQuality string   `json:"customer_service_quality"`
	SiteCleanliness        string   `json:"site_cleanliness"`
	VacuumAreaCondition    string   `json:"vacuum_area_condition"`
	AmenitiesOffered       []string `json:"amenities_offered"`
	UpkeepIssues           string   `json:"upkeep_issues"`
	CustomerVolume         string   `json:"customer_volume"`

	WashPackages      string `json:"wash_packages"`
	Pricing           string `json:"pricing"`
	MembershipPricing string `json:"membership_pricing"`
	MembershipPerks   string `json:"membership_perks"`
	PromotionalOffers string `json:"promotional_offers"`
	UpgradesAddons    string `json:"upgrades_addons"`

	CompetitorStandout   string `json:"competitor_standout"`
	CompetitorStrengths  string `json:"competitor_strengths"`
	CompetitorWeaknesses string `json:"competitor_weaknesses"`
	Opportunities        string `json:"opportunities"`

	ImagePDF []byte `json:"image_pdf,omitempty"`
}

type CreateStaffingCultureRequest struct {
	Location    string `json:"location" validate:"required"`
	SubmittedBy string `json:"submitted_by"`

	StaffingLevels           string   `json:"staffing_levels"`
	SkillLevel               string   `json:"skill_level"`
	StaffingConcerns         []string `json:"staffing_concerns"`
	HighPotentialEmployees   string   `json:"high_potential_employees"`
	EmployeesNeedingCoaching string   `json:"employees_needing_coaching"`
	StaffingSummary          string   `json:"staffing_summary"`

	LeadershipPresence  string   `json:"leadership_presence"`
	LeadershipBehaviors []string `json:"leadership_behaviors"`
	GmPerformance       string   `json:"gm_performance"`
	GmNotes             string   `json:"gm_notes"`
	LeadershipFollowUp  string   `json:"leadership_follow_up"`
	PotentialLeaders    string   `json:"potential_leaders"`

	TeamMorale                string   `json:"team_morale"`
	CultureObserved           []string `json:"culture_observed"`
	CustomerInteractions      string   `json:"customer_interactions"`
	CustomerInteractionsNotes string   `json:"customer_interactions_notes"`
	RecognitionMoments        string   `json:"recognition_moments"`
	CultureIssues             string   `json:"culture_issues"`
	OverallCulture            string   `json:"overall_culture"`

	KeyTakeaways         string   `json:"key_takeaways"`
	FollowUpActions      []string `json:"follow_up_actions"`
	FollowUpInstructions string   `json:"follow_up_instructions"`

	ImagePDF []byte `json:"image_pdf,omitempty"`
}

// RecordResponse is the flat list-row shape shared by every form.
type RecordResponse struct {
	Id          int            `json:"id"`
	Location    string         `json:"location,omitempty"`
	SubmittedBy string         `json:"submitted_by,omitempty"`
	SubmittedAt time.Time      `json:"submitted_at"`
	HasImage    bool           `json:"has_image"`
	Values      map[string]any `json:"values"`
}

type CreateRecordResponse struct {
	Id int `json:"id"`
}

type DeleteRecordsRequest struct {
	Ids []int `json:"ids" validate:"required,min=1"`
}

type DeleteRecordsResponse struct {
	Deleted int64 `json:"deleted"`
}

type StatsResponse struct {
	Total      int64            `json:"total"`
	ByCategory map[string]int64 `json:"by_category,omitempty"`
	BySite     map[string]int64 `json:"by_site,omitempty"`
}
