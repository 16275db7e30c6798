package mapper

import (
	"mightyops-be/internal/entity"
	"mightyops-be/internal/model"
	"mightyops-be/pkg/reporting"
)

type StaffingCultureMapper struct{}

func NewStaffingCultureMapper() *StaffingCultureMapper {
	return &StaffingCultureMapper{}
}

func (m *StaffingCultureMapper) ToEntity(n *model.StaffingCultureNote) *entity.StaffingCultureNote {
	if n == nil {
		return nil
	}
	return &entity.StaffingCultureNote{
		Id:          n.Id,
		Location:    n.Location,
		SubmittedBy: n.SubmittedBy,

		StaffingLevels:           n.StaffingLevels,
		SkillLevel:               n.SkillLevel,
		StaffingConcerns:         jsonToTags(n.StaffingConcerns),
		HighPotentialEmployees:   n.HighPotentialEmployees,
		EmployeesNeedingCoaching: n.EmployeesNeedingCoaching,
		StaffingSummary:          n.StaffingSummary,

		LeadershipPresence:  n.LeadershipPresence,
		LeadershipBehaviors: jsonToTags(n.LeadershipBehaviors),
		GmPerformance:       n.GmPerformance,
		GmNotes:             n.GmNotes,
		LeadershipFollowUp:  n.LeadershipFollowUp,
		PotentialLeaders:    n.PotentialLeaders,

		TeamMorale:                n.TeamMorale,
		CultureObserved:           jsonToTags(n.CultureObserved),
		CustomerInteractions:      n.CustomerInteractions,
		CustomerInteractionsNotes: n.CustomerInteractionsNotes,
		RecognitionMoments:        n.RecognitionMoments,
		CultureIssues:             n.CultureIssues,
		OverallCulture:            n.OverallCulture,

		KeyTakeaways:         n.KeyTakeaways,
		FollowUpActions:      jsonToTags(n.FollowUpActions),
		FollowUpInstructions: n.FollowUpInstructions,

		HasImage:  n.HasImage,
		ImagePDF:  n.ImagePDF,
		CreatedAt: n.CreatedAt,
	}
}

func (m *StaffingCultureMapper) ToModel(n *entity.StaffingCultureNote) *model.StaffingCultureNote {
	if n == nil {
		return nil
	}
	return &model.StaffingCultureNote{
		Id:          n.Id,
		Location:    n.Location,
		SubmittedBy: n.SubmittedBy,

		StaffingLevels:           n.StaffingLevels,
		SkillLevel:               n.SkillLevel,
		StaffingConcerns:         tagsToJSON(n.StaffingConcerns),
		HighPotentialEmployees:   n.HighPotentialEmployees,
		EmployeesNeedingCoaching: n.EmployeesNeedingCoaching,
		StaffingSummary:          n.StaffingSummary,

		LeadershipPresence:  n.LeadershipPresence,
		LeadershipBehaviors: tagsToJSON(n.LeadershipBehaviors),
		GmPerformance:       n.GmPerformance,
		GmNotes:             n.GmNotes,
		LeadershipFollowUp:  n.LeadershipFollowUp,
		PotentialLeaders:    n.PotentialLeaders,

		TeamMorale:                n.TeamMorale,
		CultureObserved:           tagsToJSON(n.CultureObserved),
		CustomerInteractions:      n.CustomerInteractions,
		CustomerInteractionsNotes: n.CustomerInteractionsNotes,
		RecognitionMoments:        n.RecognitionMoments,
		CultureIssues:             n.CultureIssues,
		OverallCulture:            n.OverallCulture,

		KeyTakeaways:         n.KeyTakeaways,
		FollowUpActions:      tagsToJSON(n.FollowUpActions),
		FollowUpInstructions: n.FollowUpInstructions,

		ImagePDF:  n.ImagePDF,
		CreatedAt: n.CreatedAt,
	}
}

func (m *StaffingCultureMapper) ToEntities(notes []*model.StaffingCultureNote) []*entity.StaffingCultureNote {
	entities := make([]*entity.StaffingCultureNote, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

func (m *StaffingCultureMapper) ToRecord(n *entity.StaffingCultureNote) reporting.Record {
	values := map[string]any{}
	putString(values, "staffing_levels", n.StaffingLevels)
	putString(values, "skill_level", n.SkillLevel)
	putTags(values, "staffing_concerns", n.StaffingConcerns)
	putString(values, "high_potential_employees", n.HighPotentialEmployees)
	putString(values, "employees_needing_coaching", n.EmployeesNeedingCoaching)
	putString(values, "staffing_summary", n.StaffingSummary)
	putString(values, "leadership_presence", n.LeadershipPresence)
	putTags(values, "leadership_behaviors", n.LeadershipBehaviors)
	putString(values, "gm_performance", n.GmPerformance)
	putString(values, "gm_notes", n.GmNotes)
	putString(values, "leadership_follow_up", n.LeadershipFollowUp)
	putString(values, "potential_leaders", n.PotentialLeaders)
	putString(values, "team_morale", n.TeamMorale)
	putTags(values, "culture_observed", n.CultureObserved)
	putString(values, "customer_interactions", n.CustomerInteractions)
	putString(values, "customer_interactions_notes", n.CustomerInteractionsNotes)
	putString(values, "recognition_moments", n.RecognitionMoments)
	putString(values, "culture_issues", n.CultureIssues)
	putString(values, "overall_culture", n.OverallCulture)
	putString(values, "key_takeaways", n.KeyTakeaways)
	putTags(values, "follow_up_actions", n.FollowUpActions)
	putString(values, "follow_up_instructions", n.FollowUpInstructions)

	return reporting.Record{
		ID:          n.Id,
		Location:    n.Location,
		SubmittedBy: n.SubmittedBy,
		SubmittedAt: n.CreatedAt,
		HasImage:    n.HasImage,
		Values:      values,
	}
}
