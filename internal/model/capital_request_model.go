package model

import (
	"time"

	"gorm.io/datatypes"
)

type CapitalRequest struct {
	Id          int    `gorm:"primaryKey;autoIncrement"`
	Location    string `gorm:"type:varchar(64);not null;index"`
	SubmittedBy string `gorm:"type:varchar(255)"`

	RequestTypes  datatypes.JSON `gorm:"type:jsonb"`
	EquipmentArea string         `gorm:"type:varchar(128)"`
	Description   string         `gorm:"type:text"`

	OperationalImpact string `gorm:"type:varchar(64)"`
	CustomerImpact    string `gorm:"type:varchar(64)"`
	SafetyImpact      string `gorm:"type:varchar(64)"`
	RevenueImpact     string `gorm:"type:varchar(64)"`
	ImportanceRanking int    `gorm:"index"`

	CostRange              string `gorm:"type:varchar(64)"`
	VendorSupplier         string `gorm:"type:varchar(255)"`
	OperationalRequirement string `gorm:"type:varchar(64)"`

	Recommendation   string         `gorm:"type:varchar(32);index"`
	FollowUpActions  datatypes.JSON `gorm:"type:jsonb"`
	Justification    string         `gorm:"type:text"`
	FollowUpDeadline string         `gorm:"type:varchar(32)"`

	ImagePDF  []byte    `gorm:"type:bytea"`
	HasImage  bool      `gorm:"->;-:migration"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (CapitalRequest) TableName() string {
	return "capital_requests"
}

func (CapitalRequest) ListColumns() string {
	return "id, location, submitted_by, request_types, equipment_area, description, " +
		"operational_impact, customer_impact, safety_impact, revenue_impact, importance_ranking, " +
		"cost_range, vendor_supplier, operational_requirement, " +
		"recommendation, follow_up_actions, justification, follow_up_deadline, " +
		"created_at, (image_pdf IS NOT NULL) AS has_image"
}
