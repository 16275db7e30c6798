package model

import (
	"time"

	"gorm.io/datatypes"
)

type Evaluation struct {
	Id                   int            `gorm:"primaryKey;autoIncrement"`
	Location             string         `gorm:"type:varchar(64);not null;index"`
	SubmittedBy          string         `gorm:"type:varchar(255)"`
	Answers              datatypes.JSON `gorm:"type:jsonb"`
	AdditionalNotes      string         `gorm:"type:text"`
	FollowUpInstructions string         `gorm:"type:text"`
	ImagePDF             []byte         `gorm:"type:bytea"`
	HasImage             bool           `gorm:"->;-:migration"`
	CreatedAt            time.Time      `gorm:"autoCreateTime;index"`
}

func (Evaluation) TableName() string {
	return "evaluations"
}

func (Evaluation) ListColumns() string {
	return "id, location, submitted_by, answers, additional_notes, follow_up_instructions, created_at, (image_pdf IS NOT NULL) AS has_image"
}
