package model

import (
	"time"

	"gorm.io/datatypes"
)

type StaffingCultureNote struct {
	Id          int    `gorm:"primaryKey;autoIncrement"`
	Location    string `gorm:"type:varchar(64);not null;index"`
	SubmittedBy string `gorm:"type:varchar(255)"`

	StaffingLevels           string         `gorm:"type:varchar(64)"`
	SkillLevel               string         `gorm:"type:varchar(64)"`
	StaffingConcerns         datatypes.JSON `gorm:"type:jsonb"`
	HighPotentialEmployees   string         `gorm:"type:text"`
	EmployeesNeedingCoaching string         `gorm:"type:text"`
	StaffingSummary          string         `gorm:"type:text"`

	LeadershipPresence  string         `gorm:"type:varchar(64)"`
	LeadershipBehaviors datatypes.JSON `gorm:"type:jsonb"`
	GmPerformance       string         `gorm:"type:varchar(64)"`
	GmNotes             string         `gorm:"type:text"`
	LeadershipFollowUp  string         `gorm:"type:text"`
	PotentialLeaders    string         `gorm:"type:text"`

	TeamMorale                string         `gorm:"type:varchar(64)"`
	CultureObserved           datatypes.JSON `gorm:"type:jsonb"`
	CustomerInteractions      string         `gorm:"type:varchar(64)"`
	CustomerInteractionsNotes string         `gorm:"type:text"`
	RecognitionMoments        string         `gorm:"type:text"`
	CultureIssues             string         `gorm:"type:text"`
	OverallCulture            string         `gorm:"type:varchar(64);index"`

	KeyTakeaways         string         `gorm:"type:text"`
	FollowUpActions      datatypes.JSON `gorm:"type:jsonb"`
	FollowUpInstructions string         `gorm:"type:text"`

	ImagePDF  []byte    `gorm:"type:bytea"`
	HasImage  bool      `gorm:"->;-:migration"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (StaffingCultureNote) TableName() string {
	return "staffing_culture_notes"
}

func (StaffingCultureNote) ListColumns() string {
	return "id, location, submitted_by, staffing_levels, skill_level, staffing_concerns, " +
		"high_potential_employees, employees_needing_coaching, staffing_summary, " +
		"leadership_presence, leadership_behaviors, gm_performance, gm_notes, leadership_follow_up, potential_leaders, " +
		"team_morale, culture_observed, customer_interactions, customer_interactions_notes, " +
		"recognition_moments, culture_issues, overall_culture, " +
		"key_takeaways, follow_up_actions, follow_up_instructions, " +
		"created_at, (image_pdf IS NOT NULL) AS has_image"
}
