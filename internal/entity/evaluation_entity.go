package entity

import "time"

// Evaluation holds one site walk-through. Answers is keyed q1..q19 in
// question order; a missing key means the reviewer skipped the question.
type Evaluation struct {
	Id                   int
	Location             string
	SubmittedBy          string
	Answers              map[string]string
	AdditionalNotes      string
	FollowUpInstructions string
	HasImage             bool
	ImagePDF             []byte
	CreatedAt            time.Time
}

// Rating returns the overall assessment answer, "" when unrated.
func (e *Evaluation) Rating() string {
	return e.Answers["q18"]
}
