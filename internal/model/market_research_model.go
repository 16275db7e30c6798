package model

import (
	"time"

	"gorm.io/datatypes"
)

type MarketResearch struct {
	Id          int    `gorm:"primaryKey;autoIncrement"`
	SubmittedBy string `gorm:"type:varchar(255)"`

	CompetitorBrand   string `gorm:"type:varchar(128);index"`
	CompetitorAddress string `gorm:"type:text"`
	OperationType     string `gorm:"type:varchar(64);index"`
	TunnelLength      string `gorm:"type:varchar(64)"`
	VisitDateTime     string `gorm:"type:varchar(64)"`

	StaffingLevels        string         `gorm:"type:varchar(64)"`
	StaffProfessionalism  string         `gorm:"type:varchar(64)"`
	SpeedOfService        string         `gorm:"type:varchar(64)"`
	QueueLength           string         `gorm:"type:varchar(64)"`
	EquipmentCondition    datatypes.JSON `gorm:"type:jsonb"`
	TechnologyUsed        datatypes.JSON `gorm:"type:jsonb"`
	OperationalStrengths  string         `gorm:"type:text"`
	OperationalWeaknesses string         `gorm:"type:text"`

	CustomerServiceQuality string         `gorm:"type:varchar(64)"`
	SiteCleanliness        string         `gorm:"type:varchar(64)"`
	VacuumAreaCondition    string         `gorm:"type:varchar(64)"`
	AmenitiesOffered       datatypes.JSON `gorm:"type:jsonb"`
	UpkeepIssues           string         `gorm:"type:text"`
	CustomerVolume         string         `gorm:"type:varchar(64)"`

	WashPackages      string `gorm:"type:text"`
	Pricing           string `gorm:"type:text"`
	MembershipPricing string `gorm:"type:text"`
	MembershipPerks   string `gorm:"type:text"`
	PromotionalOffers string `gorm:"type:text"`
	UpgradesAddons    string `gorm:"type:text"`

	CompetitorStandout   string `gorm:"type:text"`
	CompetitorStrengths  string `gorm:"type:text"`
	CompetitorWeaknesses string `gorm:"type:text"`
	Opportunities        string `gorm:"type:text"`

	ImagePDF  []byte    `gorm:"type:bytea"`
	HasImage  bool      `gorm:"->;-:migration"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (MarketResearch) TableName() string {
	return "market_research"
}

func (MarketResearch) ListColumns() string {
	return "id, submitted_by, competitor_brand, competitor_address, operation_type, tunnel_length, visit_date_time, " +
		"staffing_levels, staff_professionalism, speed_of_service, queue_length, equipment_condition, technology_used, " +
		"operational_strengths, operational_weaknesses, " +
		"customer_service_quality, site_cleanliness, vacuum_area_condition, amenities_offered, upkeep_issues, customer_volume, " +
		"wash_packages, pricing, membership_pricing, membership_perks, promotional_offers, upgrades_addons, " +
		"competitor_standout, competitor_strengths, competitor_weaknesses, opportunities, " +
		"created_at, (image_pdf IS NOT NULL) AS has_image"
}
