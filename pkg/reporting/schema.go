package reporting

// FormType identifies one of the submission forms tracked by the system.
type FormType string

const (
	FormViolationNotes  FormType = "notes"
	FormEvaluations     FormType = "evaluations"
	FormCapitalRequests FormType = "capital-requests"
	FormMarketResearch  FormType = "market-research"
	FormStaffingCulture FormType = "staffing-culture"
)

// FieldKind describes how a field participates in filtering, sorting and export.
type FieldKind int

const (
	KindCategorical FieldKind = iota
	KindText
	KindTag
	KindNumeric
	KindDate
)

type Field struct {
	Name  string
	Label string
	Kind  FieldKind
}

// Section groups fields the way the submission form groups them. The
// document exporter renders one titled block per section.
type Section struct {
	Title  string
	Fields []Field
}

// Schema is the per-form descriptor that parameterizes the shared
// filter/sort/export engine. Every dashboard is a Schema plus UI bindings;
// no per-form report logic exists anywhere else.
type Schema struct {
	Form        FormType
	Title       string // heading on the document report
	ReportLabel string // filename stem, e.g. Site_Evaluation_Report
	EntryNoun   string // "Review", "Request", ... used for detail headings

	// PrimaryField names the field used as the per-record headline.
	// Empty means the record's location is the headline.
	PrimaryField string

	// CategoryField drives workbook breakout sheets and summary counts.
	CategoryField string
	// CategoryValues fixes the ordering of summary counts. Values seen in
	// the data but not listed here are appended in first-seen order.
	CategoryValues []string

	// SiteSheets adds one workbook sheet per location that has records.
	SiteSheets bool

	// Tabular selects the lightweight one-row-per-record document layout
	// instead of per-record detail blocks.
	Tabular bool

	Sections []Section
	SortKeys []SortKey
}

// Fields returns every section field in declaration order.
func (s *Schema) Fields() []Field {
	var out []Field
	for _, sec := range s.Sections {
		out = append(out, sec.Fields...)
	}
	return out
}

// FieldByName looks a field up across all sections.
func (s *Schema) FieldByName(name string) (Field, bool) {
	for _, sec := range s.Sections {
		for _, f := range sec.Fields {
			if f.Name == name {
				return f, true
			}
		}
	}
	return Field{}, false
}

// HasSortKey reports whether key is valid for this form.
func (s *Schema) HasSortKey(key SortKey) bool {
	for _, k := range s.SortKeys {
		if k == key {
			return true
		}
	}
	return false
}

var schemas = map[FormType]*Schema{
	FormViolationNotes:  violationNoteSchema,
	FormEvaluations:     evaluationSchema,
	FormCapitalRequests: capitalRequestSchema,
	FormMarketResearch:  marketResearchSchema,
	FormStaffingCulture: staffingCultureSchema,
}

// SchemaFor resolves the descriptor for a form type.
func SchemaFor(form FormType) (*Schema, bool) {
	s, ok := schemas[form]
	return s, ok
}

// Forms lists every registered form type.
func Forms() []FormType {
	return []FormType{
		FormViolationNotes,
		FormEvaluations,
		FormCapitalRequests,
		FormMarketResearch,
		FormStaffingCulture,
	}
}

var violationNoteSchema = &Schema{
	Form:           FormViolationNotes,
	Title:          "Mighty Note - Violation Report",
	ReportLabel:    "Mighty_Note_Report",
	EntryNoun:      "Note",
	CategoryField:  "department",
	CategoryValues: []string{"Operations", "Safety", "Accounting"},
	SiteSheets:     true,
	Tabular:        true,
	Sections: []Section{
		{
			Title: "Violation Details",
			Fields: []Field{
				{Name: "department", Label: "Department", Kind: KindCategorical},
				{Name: "note_type", Label: "Note Type", Kind: KindCategorical},
				{Name: "other_description", Label: "Other Description", Kind: KindText},
				{Name: "additional_notes", Label: "Additional Notes", Kind: KindText},
			},
		},
	},
	SortKeys: []SortKey{SortNewest, SortOldest, SortLocation, SortLocationDesc, SortDepartment},
}

var evaluationQuestions = []Field{
	{Name: "q1", Label: "Was the General Manager present during your visit?", Kind: KindCategorical},
	{Name: "q2", Label: "How would you rate overall site leadership at the time of the visit?", Kind: KindCategorical},
	{Name: "q3", Label: "Staffing levels observed:", Kind: KindCategorical},
	{Name: "q4", Label: "Employee engagement during the visit:", Kind: KindCategorical},
	{Name: "q5", Label: "Was the site following the proper SOP flow?", Kind: KindCategorical},
	{Name: "q6", Label: "Cleanliness inside the site (office / lobby / waiting area):", Kind: KindCategorical},
	{Name: "q7", Label: "Cleanliness outside (lot / vacuums / entrance / signage):", Kind: KindCategorical},
	{Name: "q8", Label: "Equipment status at the time of inspection:", Kind: KindCategorical},
	{Name: "q9", Label: "Customer experience during your visit:", Kind: KindCategorical},
	{Name: "q10", Label: "Did you observe any safety concerns?", Kind: KindCategorical},
	{Name: "q11", Label: "Accuracy of POS operations you observed:", Kind: KindCategorical},
	{Name: "q12", Label: "Uniform compliance:", Kind: KindCategorical},
	{Name: "q13", Label: "Professionalism of staff:", Kind: KindCategorical},
	{Name: "q14", Label: "Was the site operating according to the posted hours?", Kind: KindCategorical},
	{Name: "q15", Label: "Fleet and vendor processes observed:", Kind: KindCategorical},
	{Name: "q16", Label: "Condition of chemical rooms / inventory areas:", Kind: KindCategorical},
	{Name: "q17", Label: "Did the GM provide an update on current initiatives?", Kind: KindCategorical},
	{Name: "q18", Label: "Overall assessment of site performance:", Kind: KindCategorical},
	{Name: "q19", Label: "Immediate follow-up required?", Kind: KindCategorical},
}

var evaluationSchema = &Schema{
	Form:           FormEvaluations,
	Title:          "Site Evaluation Report",
	ReportLabel:    "Site_Evaluation_Report",
	EntryNoun:      "Review",
	CategoryField:  "q18",
	CategoryValues: []string{"Excellent", "Good", "Fair", "Poor"},
	SiteSheets:     true,
	Sections: []Section{
		{Title: "Evaluation", Fields: evaluationQuestions},
		{
			Title: "Notes",
			Fields: []Field{
				{Name: "additional_notes", Label: "Additional Notes", Kind: KindText},
				{Name: "follow_up_instructions", Label: "Follow-Up Instructions", Kind: KindText},
			},
		},
	},
	SortKeys: []SortKey{SortNewest, SortOldest, SortLocation, SortLocationDesc, SortRating},
}

var capitalRequestSchema = &Schema{
	Form:           FormCapitalRequests,
	Title:          "Capital Improvement Requests",
	ReportLabel:    "Capital_Requests",
	EntryNoun:      "Request",
	CategoryField:  "recommendation",
	CategoryValues: []string{"Approve", "Hold", "Deny"},
	SiteSheets:     true,
	Sections: []Section{
		{
			Title: "SECTION 1 — Request Details",
			Fields: []Field{
				{Name: "request_types", Label: "Type of Request", Kind: KindTag},
				{Name: "equipment_area", Label: "Equipment/Area", Kind: KindCategorical},
				{Name: "description", Label: "Description", Kind: KindText},
			},
		},
		{
			Title: "SECTION 2 — Impact Assessment",
			Fields: []Field{
				{Name: "operational_impact", Label: "Operational Impact", Kind: KindCategorical},
				{Name: "customer_impact", Label: "Customer Experience Impact", Kind: KindCategorical},
				{Name: "safety_impact", Label: "Safety Impact", Kind: KindCategorical},
				{Name: "revenue_impact", Label: "Revenue/Throughput Impact", Kind: KindCategorical},
				{Name: "importance_ranking", Label: "Importance Ranking", Kind: KindNumeric},
			},
		},
		{
			Title: "SECTION 3 — Financial Scope",
			Fields: []Field{
				{Name: "cost_range", Label: "Estimated Cost Range", Kind: KindCategorical},
				{Name: "vendor_supplier", Label: "Vendor/Supplier", Kind: KindText},
				{Name: "operational_requirement", Label: "Can Site Operate Without This", Kind: KindCategorical},
			},
		},
		{
			Title: "SECTION 4 — Approvals & Follow-Up",
			Fields: []Field{
				{Name: "recommendation", Label: "Recommendation", Kind: KindCategorical},
				{Name: "follow_up_actions", Label: "Follow-Up Actions", Kind: KindTag},
				{Name: "justification", Label: "Justification", Kind: KindText},
				{Name: "follow_up_deadline", Label: "Follow-Up Deadline", Kind: KindDate},
			},
		},
	},
	SortKeys: []SortKey{SortNewest, SortOldest, SortLocation, SortLocationDesc, SortImportance},
}

var marketResearchSchema = &Schema{
	Form:          FormMarketResearch,
	Title:         "Market Research Report",
	ReportLabel:   "Market_Research_Report",
	EntryNoun:     "Entry",
	PrimaryField:  "competitor_brand",
	CategoryField: "operation_type",
	Sections: []Section{
		{
			Title: "Competitor",
			Fields: []Field{
				{Name: "competitor_brand", Label: "Competitor Brand", Kind: KindCategorical},
				{Name: "competitor_address", Label: "Address", Kind: KindText},
				{Name: "operation_type", Label: "Operation Type", Kind: KindCategorical},
				{Name: "tunnel_length", Label: "Tunnel Length", Kind: KindCategorical},
				{Name: "visit_date_time", Label: "Visit Date/Time", Kind: KindDate},
			},
		},
		{
			Title: "Operations Observed",
			Fields: []Field{
				{Name: "staffing_levels", Label: "Staffing Levels", Kind: KindCategorical},
				{Name: "staff_professionalism", Label: "Staff Professionalism", Kind: KindCategorical},
				{Name: "speed_of_service", Label: "Speed of Service", Kind: KindCategorical},
				{Name: "queue_length", Label: "Queue Length", Kind: KindCategorical},
				{Name: "equipment_condition", Label: "Equipment Condition", Kind: KindTag},
				{Name: "technology_used", Label: "Technology Used", Kind: KindTag},
				{Name: "operational_strengths", Label: "Operational Strengths", Kind: KindText},
				{Name: "operational_weaknesses", Label: "Operational Weaknesses", Kind: KindText},
			},
		},
		{
			Title: "Site & Service",
			Fields: []Field{
				{Name: "customer_service_quality", Label: "Customer Service Quality", Kind: KindCategorical},
				{Name: "site_cleanliness", Label: "Site Cleanliness", Kind: KindCategorical},
				{Name: "vacuum_area_condition", Label: "Vacuum Area Condition", Kind: KindCategorical},
				{Name: "amenities_offered", Label: "Amenities Offered", Kind: KindTag},
				{Name: "upkeep_issues", Label: "Upkeep Issues", Kind: KindText},
				{Name: "customer_volume", Label: "Customer Volume", Kind: KindCategorical},
			},
		},
		{
			Title: "Pricing & Offers",
			Fields: []Field{
				{Name: "wash_packages", Label: "Wash Packages", Kind: KindText},
				{Name: "pricing", Label: "Pricing", Kind: KindText},
				{Name: "membership_pricing", Label: "Membership Pricing", Kind: KindText},
				{Name: "membership_perks", Label: "Membership Perks", Kind: KindText},
				{Name: "promotional_offers", Label: "Promotional Offers", Kind: KindText},
				{Name: "upgrades_addons", Label: "Upgrades/Add-Ons", Kind: KindText},
			},
		},
		{
			Title: "Takeaways",
			Fields: []Field{
				{Name: "competitor_standout", Label: "What Makes Them Stand Out", Kind: KindText},
				{Name: "competitor_strengths", Label: "Competitor Strengths", Kind: KindText},
				{Name: "competitor_weaknesses", Label: "Competitor Weaknesses", Kind: KindText},
				{Name: "opportunities", Label: "Opportunities", Kind: KindText},
			},
		},
	},
	SortKeys: []SortKey{SortNewest, SortOldest, SortBrand},
}

var staffingCultureSchema = &Schema{
	Form:           FormStaffingCulture,
	Title:          "Staffing, Leadership & Culture Report",
	ReportLabel:    "Staffing_Culture_Report",
	EntryNoun:      "Note",
	CategoryField:  "overall_culture",
	CategoryValues: []string{"Strong and healthy", "Mostly healthy", "Mixed", "Needs attention"},
	SiteSheets:     true,
	Sections: []Section{
		{
			Title: "Staffing",
			Fields: []Field{
				{Name: "staffing_levels", Label: "Staffing Levels", Kind: KindCategorical},
				{Name: "skill_level", Label: "Skill Level", Kind: KindCategorical},
				{Name: "staffing_concerns", Label: "Staffing Concerns", Kind: KindTag},
				{Name: "high_potential_employees", Label: "High Potential Employees", Kind: KindText},
				{Name: "employees_needing_coaching", Label: "Employees Needing Coaching", Kind: KindText},
				{Name: "staffing_summary", Label: "Staffing Summary", Kind: KindText},
			},
		},
		{
			Title: "Leadership",
			Fields: []Field{
				{Name: "leadership_presence", Label: "Leadership Presence", Kind: KindCategorical},
				{Name: "leadership_behaviors", Label: "Leadership Behaviors", Kind: KindTag},
				{Name: "gm_performance", Label: "GM Performance", Kind: KindCategorical},
				{Name: "gm_notes", Label: "GM Notes", Kind: KindText},
				{Name: "leadership_follow_up", Label: "Leadership Follow-Up", Kind: KindText},
				{Name: "potential_leaders", Label: "Potential Leaders", Kind: KindText},
			},
		},
		{
			Title: "Culture",
			Fields: []Field{
				{Name: "team_morale", Label: "Team Morale", Kind: KindCategorical},
				{Name: "culture_observed", Label: "Culture Observed", Kind: KindTag},
				{Name: "customer_interactions", Label: "Customer Interactions", Kind: KindCategorical},
				{Name: "customer_interactions_notes", Label: "Customer Interaction Notes", Kind: KindText},
				{Name: "recognition_moments", Label: "Recognition Moments", Kind: KindText},
				{Name: "culture_issues", Label: "Culture Issues/Risks", Kind: KindText},
				{Name: "overall_culture", Label: "Overall Culture Assessment", Kind: KindCategorical},
			},
		},
		{
			Title: "Follow-Up",
			Fields: []Field{
				{Name: "key_takeaways", Label: "Key Takeaways", Kind: KindText},
				{Name: "follow_up_actions", Label: "Follow-Up Actions", Kind: KindTag},
				{Name: "follow_up_instructions", Label: "Follow-Up Instructions", Kind: KindText},
			},
		},
	},
	SortKeys: []SortKey{SortNewest, SortOldest, SortLocation, SortLocationDesc},
}
