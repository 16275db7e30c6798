package mapper

import (
	"mightyops-be/internal/entity"
	"mightyops-be/internal/model"
	"mightyops-be/pkg/reporting"
)

type CapitalRequestMapper struct{}

func NewCapitalRequestMapper() *CapitalRequestMapper {
	return &CapitalRequestMapper{}
}

func (m *CapitalRequestMapper) ToEntity(r *model.CapitalRequest) *entity.CapitalRequest {
	if r == nil {
		return nil
	}
	return &entity.CapitalRequest{
		Id:          r.Id,
		Location:    r.Location,
		SubmittedBy: r.SubmittedBy,

		RequestTypes:  jsonToTags(r.RequestTypes),
		EquipmentArea: r.EquipmentArea,
		Description:   r.Description,

		OperationalImpact: r.OperationalImpact,
		CustomerImpact:    r.CustomerImpact,
		SafetyImpact:      r.SafetyImpact,
		RevenueImpact:     r.RevenueImpact,
		ImportanceRanking: r.ImportanceRanking,

		CostRange:              r.CostRange,
		VendorSupplier:         r.VendorSupplier,
		OperationalRequirement: r.OperationalRequirement,

		Recommendation:   r.Recommendation,
		FollowUpActions:  jsonToTags(r.FollowUpActions),
		Justification:    r.Justification,
		FollowUpDeadline: r.FollowUpDeadline,

		HasImage:  r.HasImage,
		ImagePDF:  r.ImagePDF,
		CreatedAt: r.CreatedAt,
	}
}

func (m *CapitalRequestMapper) ToModel(r *entity.CapitalRequest) *model.CapitalRequest {
	if r == nil {
		return nil
	}
	return &model.CapitalRequest{
		Id:          r.Id,
		Location:    r.Location,
		SubmittedBy: r.SubmittedBy,

		RequestTypes:  tagsToJSON(r.RequestTypes),
		EquipmentArea: r.EquipmentArea,
		Description:   r.Description,

		OperationalImpact: r.OperationalImpact,
		CustomerImpact:    r.CustomerImpact,
		SafetyImpact:      r.SafetyImpact,
		RevenueImpact:     r.RevenueImpact,
		ImportanceRanking: r.ImportanceRanking,

		CostRange:              r.CostRange,
		VendorSupplier:         r.VendorSupplier,
		OperationalRequirement: r.OperationalRequirement,

		Recommendation:   r.Recommendation,
		FollowUpActions:  tagsToJSON(r.FollowUpActions),
		Justification:    r.Justification,
		FollowUpDeadline: r.FollowUpDeadline,

		ImagePDF:  r.ImagePDF,
		CreatedAt: r.CreatedAt,
	}
}

func (m *CapitalRequestMapper) ToEntities(reqs []*model.CapitalRequest) []*entity.CapitalRequest {
	entities := make([]*entity.CapitalRequest, len(reqs))
	for i, r := range reqs {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

func (m *CapitalRequestMapper) ToRecord(r *entity.CapitalRequest) reporting.Record {
	values := map[string]any{}
	putTags(values, "request_types", r.RequestTypes)
	putString(values, "equipment_area", r.EquipmentArea)
	putString(values, "description", r.Description)
	putString(values, "operational_impact", r.OperationalImpact)
	putString(values, "customer_impact", r.CustomerImpact)
	putString(values, "safety_impact", r.SafetyImpact)
	putString(values, "revenue_impact", r.RevenueImpact)
	putInt(values, "importance_ranking", r.ImportanceRanking)
	putString(values, "cost_range", r.CostRange)
	putString(values, "vendor_supplier", r.VendorSupplier)
	putString(values, "operational_requirement", r.OperationalRequirement)
	putString(values, "recommendation", r.Recommendation)
	putTags(values, "follow_up_actions", r.FollowUpActions)
	putString(values, "justification", r.Justification)
	putString(values, "follow_up_deadline", r.FollowUpDeadline)

	return reporting.Record{
		ID:          r.Id,
		Location:    r.Location,
		SubmittedBy: r.SubmittedBy,
		SubmittedAt: r.CreatedAt,
		HasImage:    r.HasImage,
		Values:      values,
	}
}
