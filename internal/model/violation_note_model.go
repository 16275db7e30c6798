package model

import "time"

// ViolationNote mirrors the notes table. ImagePDF stays out of list
// queries; HasImage is a computed column filled by the repository.
type ViolationNote struct {
	Id               int    `gorm:"primaryKey;autoIncrement"`
	Location         string `gorm:"type:varchar(64);not null;index"`
	SubmittedBy      string `gorm:"type:varchar(255)"`
	Department       string `gorm:"type:varchar(64);index"`
	NoteType         string `gorm:"type:varchar(64)"`
	OtherDescription string `gorm:"type:text"`
	AdditionalNotes  string `gorm:"type:text"`
	ImagePDF         []byte `gorm:"type:bytea"`
	HasImage         bool   `gorm:"->;-:migration"`
	CreatedAt        time.Time `gorm:"autoCreateTime;index"`
}

func (ViolationNote) TableName() string {
	return "notes"
}

// ListColumns selects everything except the raw pdf payload and derives
// has_image from it.
func (ViolationNote) ListColumns() string {
	return "id, location, submitted_by, department, note_type, other_description, additional_notes, created_at, (image_pdf IS NOT NULL) AS has_image"
}
