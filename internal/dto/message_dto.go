package dto

const (
	RecordActionCreated = "created"
	RecordActionDeleted = "deleted"
)

// RecordEventMessage travels the in-process bus whenever records change,
// so stats caches get invalidated and the audit mirror stays current.
type RecordEventMessage struct {
	Action string `json:"action"`
	Form   string `json:"form"`
	Ids    []int  `json:"ids"`
}
