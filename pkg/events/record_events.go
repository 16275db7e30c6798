package events

import "time"

const (
	TypeRecordCreated  = "RECORD_CREATED"
	TypeRecordsDeleted = "RECORDS_DELETED"
)

// NewRecordCreated marks one submitted record of a form.
func NewRecordCreated(form string, id int) Event {
	return BaseEvent{
		Type: TypeRecordCreated,
		Data: map[string]interface{}{
			"form": form,
			"id":   id,
		},
		OccurredAt: time.Now(),
	}
}

// NewRecordsDeleted marks a bulk delete.
func NewRecordsDeleted(form string, ids []int) Event {
	return BaseEvent{
		Type: TypeRecordsDeleted,
		Data: map[string]interface{}{
			"form":  form,
			"ids":   ids,
			"count": len(ids),
		},
		OccurredAt: time.Now(),
	}
}
