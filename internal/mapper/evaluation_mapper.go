package mapper

import (
	"mightyops-be/internal/entity"
	"mightyops-be/internal/model"
	"mightyops-be/pkg/reporting"
)

type EvaluationMapper struct{}

func NewEvaluationMapper() *EvaluationMapper {
	return &EvaluationMapper{}
}

func (m *EvaluationMapper) ToEntity(e *model.Evaluation) *entity.Evaluation {
	if e == nil {
		return nil
	}
	return &entity.Evaluation{
		Id:                   e.Id,
		Location:             e.Location,
		SubmittedBy:          e.SubmittedBy,
		Answers:              jsonToMap(e.Answers),
		AdditionalNotes:      e.AdditionalNotes,
		FollowUpInstructions: e.FollowUpInstructions,
		HasImage:             e.HasImage,
		ImagePDF:             e.ImagePDF,
		CreatedAt:            e.CreatedAt,
	}
}

func (m *EvaluationMapper) ToModel(e *entity.Evaluation) *model.Evaluation {
	if e == nil {
		return nil
	}
	return &model.Evaluation{
		Id:                   e.Id,
		Location:             e.Location,
		SubmittedBy:          e.SubmittedBy,
		Answers:              mapToJSON(e.Answers),
		AdditionalNotes:      e.AdditionalNotes,
		FollowUpInstructions: e.FollowUpInstructions,
		ImagePDF:             e.ImagePDF,
		CreatedAt:            e.CreatedAt,
	}
}

func (m *EvaluationMapper) ToEntities(evals []*model.Evaluation) []*entity.Evaluation {
	entities := make([]*entity.Evaluation, len(evals))
	for i, e := range evals {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

func (m *EvaluationMapper) ToRecord(e *entity.Evaluation) reporting.Record {
	values := map[string]any{}
	for q, answer := range e.Answers {
		putString(values, q, answer)
	}
	putString(values, "additional_notes", e.AdditionalNotes)
	putString(values, "follow_up_instructions", e.FollowUpInstructions)

	return reporting.Record{
		ID:          e.Id,
		Location:    e.Location,
		SubmittedBy: e.SubmittedBy,
		SubmittedAt: e.CreatedAt,
		HasImage:    e.HasImage,
		Values:      values,
	}
}
