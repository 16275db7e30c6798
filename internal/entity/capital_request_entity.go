package entity

import "time"

type CapitalRequest struct {
	Id          int
	Location    string
	SubmittedBy string

	RequestTypes  []string
	EquipmentArea string
	Description   string

	OperationalImpact string
	CustomerImpact    string
	SafetyImpact      string
	RevenueImpact     string
	// ImportanceRanking is 1..5, zero when the submitter left it blank.
	ImportanceRanking int

	CostRange              string
	VendorSupplier         string
	OperationalRequirement string

	Recommendation   string
	FollowUpActions  []string
	Justification    string
	FollowUpDeadline string

	HasImage  bool
	ImagePDF  []byte
	CreatedAt time.Time
}
