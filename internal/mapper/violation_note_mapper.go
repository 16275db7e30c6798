package mapper

import (
	"mightyops-be/internal/entity"
	"mightyops-be/internal/model"
	"mightyops-be/pkg/reporting"
)

type ViolationNoteMapper struct{}

func NewViolationNoteMapper() *ViolationNoteMapper {
	return &ViolationNoteMapper{}
}

func (m *ViolationNoteMapper) ToEntity(n *model.ViolationNote) *entity.ViolationNote {
	if n == nil {
		return nil
	}
	return &entity.ViolationNote{
		Id:               n.Id,
		Location:         n.Location,
		SubmittedBy:      n.SubmittedBy,
		Department:       n.Department,
		NoteType:         n.NoteType,
		OtherDescription: n.OtherDescription,
		AdditionalNotes:  n.AdditionalNotes,
		HasImage:         n.HasImage,
		ImagePDF:         n.ImagePDF,
		CreatedAt:        n.CreatedAt,
	}
}

func (m *ViolationNoteMapper) ToModel(n *entity.ViolationNote) *model.ViolationNote {
	if n == nil {
		return nil
	}
	return &model.ViolationNote{
		Id:               n.Id,
		Location:         n.Location,
		SubmittedBy:      n.SubmittedBy,
		Department:       n.Department,
		NoteType:         n.NoteType,
		OtherDescription: n.OtherDescription,
		AdditionalNotes:  n.AdditionalNotes,
		ImagePDF:         n.ImagePDF,
		CreatedAt:        n.CreatedAt,
	}
}

func (m *ViolationNoteMapper) ToEntities(notes []*model.ViolationNote) []*entity.ViolationNote {
	entities := make([]*entity.ViolationNote, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

// ToRecord flattens a note for the report engine. Blank fields are
// left out of Values so filters treat them as unanswered.
func (m *ViolationNoteMapper) ToRecord(n *entity.ViolationNote) reporting.Record {
	values := map[string]any{}
	putString(values, "department", n.Department)
	putString(values, "note_type", n.NoteType)
	putString(values, "other_description", n.OtherDescription)
	putString(values, "additional_notes", n.AdditionalNotes)

	return reporting.Record{
		ID:          n.Id,
		Location:    n.Location,
		SubmittedBy: n.SubmittedBy,
		SubmittedAt: n.CreatedAt,
		HasImage:    n.HasImage,
		Values:      values,
	}
}

func putString(values map[string]any, key, v string) {
	if v != "" {
		values[key] = v
	}
}

func putTags(values map[string]any, key string, tags []string) {
	if len(tags) > 0 {
		values[key] = tags
	}
}

func putInt(values map[string]any, key string, v int) {
	if v != 0 {
		values[key] = v
	}
}
