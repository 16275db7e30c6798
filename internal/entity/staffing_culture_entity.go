package entity

import "time"

type StaffingCultureNote struct {
	Id          int
	Location    string
	SubmittedBy string

	StaffingLevels           string
	SkillLevel               string
	StaffingConcerns         []string
	HighPotentialEmployees   string
	EmployeesNeedingCoaching string
	StaffingSummary          string

	LeadershipPresence  string
	LeadershipBehaviors []string
	GmPerformance       string
	GmNotes             string
	LeadershipFollowUp  string
	PotentialLeaders    string

	TeamMorale                string
	CultureObserved           []string
	CustomerInteractions      string
	CustomerInteractionsNotes string
	RecognitionMoments        string
	CultureIssues             string
	OverallCulture            string

	KeyTakeaways         string
	FollowUpActions      []string
	FollowUpInstructions string

	HasImage  bool
	ImagePDF  []byte
	CreatedAt time.Time
}
