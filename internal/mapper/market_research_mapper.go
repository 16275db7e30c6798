package mapper

import (
	"mightyops-be/internal/entity"
	"mightyops-be/internal/model"
	"mightyops-be/pkg/reporting"
)

type MarketResearchMapper struct{}

func NewMarketResearchMapper() *MarketResearchMapper {
	return &MarketResearchMapper{}
}

func (m *MarketResearchMapper) ToEntity(r *model.MarketResearch) *entity.MarketResearch {
	if r == nil {
		return nil
	}
	return &entity.MarketResearch{
		Id:          r.Id,
		SubmittedBy: r.SubmittedBy,

		CompetitorBrand:   r.CompetitorBrand,
		CompetitorAddress: r.CompetitorAddress,
		OperationType:     r.OperationType,
		TunnelLength:      r.TunnelLength,
		VisitDateTime:     r.VisitDateTime,

		StaffingLevels:        r.StaffingLevels,
		StaffProfessionalism:  r.StaffProfessionalism,
		SpeedOfService:        r.SpeedOfService,
		QueueLength:           r.QueueLength,
		EquipmentCondition:    jsonToTags(r.EquipmentCondition),
		TechnologyUsed:        jsonToTags(r.TechnologyUsed),
		OperationalStrengths:  r.OperationalStrengths,
		OperationalWeaknesses: r.OperationalWeaknesses,

		CustomerServiceQuality: r.CustomerServiceQuality,
		SiteCleanliness:        r.SiteCleanliness,
		VacuumAreaCondition:    r.VacuumAreaCondition,
		AmenitiesOffered:       jsonToTags(r.AmenitiesOffered),
		UpkeepIssues:           r.UpkeepIssues,
		CustomerVolume:         r.CustomerVolume,

		WashPackages:      r.WashPackages,
		Pricing:           r.Pricing,
		MembershipPricing: r.MembershipPricing,
		MembershipPerks:   r.MembershipPerks,
		PromotionalOffers: r.PromotionalOffers,
		UpgradesAddons:    r.UpgradesAddons,

		CompetitorStandout:   r.CompetitorStandout,
		CompetitorStrengths:  r.CompetitorStrengths,
		CompetitorWeaknesses: r.CompetitorWeaknesses,
		Opportunities:        r.Opportunities,

		HasImage:  r.HasImage,
		ImagePDF:  r.ImagePDF,
		CreatedAt: r.CreatedAt,
	}
}

func (m *MarketResearchMapper) ToModel(r *entity.MarketResearch) *model.MarketResearch {
	if r == nil {
		return nil
	}
	return &model.MarketResearch{
		Id:          r.Id,
		SubmittedBy: r.SubmittedBy,

		CompetitorBrand:   r.CompetitorBrand,
		CompetitorAddress: r.CompetitorAddress,
		OperationType:     r.OperationType,
		TunnelLength:      r.TunnelLength,
		VisitDateTime:     r.VisitDateTime,

		StaffingLevels:        r.StaffingLevels,
		StaffProfessionalism:  r.StaffProfessionalism,
		SpeedOfService:        r.SpeedOfService,
		QueueLength:           r.QueueLength,
		EquipmentCondition:    tagsToJSON(r.EquipmentCondition),
		TechnologyUsed:        tagsToJSON(r.TechnologyUsed),
		OperationalStrengths:  r.OperationalStrengths,
		OperationalWeaknesses: r.OperationalWeaknesses,

		CustomerServiceQuality: r.CustomerServiceQuality,
		SiteCleanliness:        r.SiteCleanliness,
		VacuumAreaCondition:    r.VacuumAreaCondition,
		AmenitiesOffered:       tagsToJSON(r.AmenitiesOffered),
		UpkeepIssues:           r.UpkeepIssues,
		CustomerVolume:         r.CustomerVolume,

		WashPackages:      r.WashPackages,
		Pricing:           r.Pricing,
		MembershipPricing: r.MembershipPricing,
		MembershipPerks:   r.MembershipPerks,
		PromotionalOffers: r.PromotionalOffers,
		UpgradesAddons:    r.UpgradesAddons,

		CompetitorStandout:   r.CompetitorStandout,
		CompetitorStrengths:  r.CompetitorStrengths,
		CompetitorWeaknesses: r.CompetitorWeaknesses,
		Opportunities:        r.Opportunities,

		ImagePDF:  r.ImagePDF,
		CreatedAt: r.CreatedAt,
	}
}

func (m *MarketResearchMapper) ToEntities(rows []*model.MarketResearch) []*entity.MarketResearch {
	entities := make([]*entity.MarketResearch, len(rows))
	for i, r := range rows {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

func (m *MarketResearchMapper) ToRecord(r *entity.MarketResearch) reporting.Record {
	values := map[string]any{}
	putString(values, "competitor_brand", r.CompetitorBrand)
	putString(values, "competitor_address", r.CompetitorAddress)
	putString(values, "operation_type", r.OperationType)
	putString(values, "tunnel_length", r.TunnelLength)
	putString(values, "visit_date_time", r.VisitDateTime)
	putString(values, "staffing_levels", r.StaffingLevels)
	putString(values, "staff_professionalism", r.StaffProfessionalism)
	putString(values, "speed_of_service", r.SpeedOfService)
	putString(values, "queue_length", r.QueueLength)
	putTags(values, "equipment_condition", r.EquipmentCondition)
	putTags(values, "technology_used", r.TechnologyUsed)
	putString(values, "operational_strengths", r.OperationalStrengths)
	putString(values, "operational_weaknesses", r.OperationalWeaknesses)
	putString(values, "customer_service_quality", r.CustomerServiceQuality)
	putString(values, "site_cleanliness", r.SiteCleanliness)
	putString(values, "vacuum_area_condition", r.VacuumAreaCondition)
	putTags(values, "amenities_offered", r.AmenitiesOffered)
	putString(values, "upkeep_issues", r.UpkeepIssues)
	putString(values, "customer_volume", r.CustomerVolume)
	putString(values, "wash_packages", r.WashPackages)
	putString(values, "pricing", r.Pricing)
	putString(values, "membership_pricing", r.MembershipPricing)
	putString(values, "membership_perks", r.MembershipPerks)
	putString(values, "promotional_offers", r.PromotionalOffers)
	putString(values, "upgrades_addons", r.UpgradesAddons)
	putString(values, "competitor_standout", r.CompetitorStandout)
	putString(values, "competitor_strengths", r.CompetitorStrengths)
	putString(values, "competitor_weaknesses", r.CompetitorWeaknesses)
	putString(values, "opportunities", r.Opportunities)

	return reporting.Record{
		ID:          r.Id,
		SubmittedBy: r.SubmittedBy,
		SubmittedAt: r.CreatedAt,
		HasImage:    r.HasImage,
		Values:      values,
	}
}
