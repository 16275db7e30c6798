package entity

import "time"

// MarketResearch captures one competitor site visit. Location is empty
// for this form; entries are keyed by competitor brand instead.
type MarketResearch struct {
	Id          int
	SubmittedBy string

	CompetitorBrand   string
	CompetitorAddress string
	OperationType     string
	TunnelLength      string
	VisitDateTime     string

	StaffingLevels         string
	StaffProfessionalism   string
	SpeedOfService         string
	QueueLength            string
	EquipmentCondition     []string
	TechnologyUsed         []string
	OperationalStrengths   string
	OperationalWeaknesses  string

	CustomerServiceQuality string
	SiteCleanliness        string
	VacuumAreaCondition    string
	AmenitiesOffered       []string
	UpkeepIssues           string
	CustomerVolume         string

	WashPackages      string
	Pricing           string
	MembershipPricing string
	MembershipPerks   string
	PromotionalOffers string
	UpgradesAddons    string

	CompetitorStandout   string
	CompetitorStrengths  string
	CompetitorWeaknesses string
	Opportunities        string

	HasImage  bool
	ImagePDF  []byte
	CreatedAt time.Time
}
