package entity

import "time"

// ViolationNote is one submitted violation note. ImagePDF is only
// populated by the image lookup, never on list reads.
type ViolationNote struct {
	Id               int
	Location         string
	SubmittedBy      string
	Department       string
	NoteType         string
	OtherDescription string
	AdditionalNotes  string
	HasImage         bool
	ImagePDF         []byte
	CreatedAt        time.Time
}
