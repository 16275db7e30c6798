package mapper

import (
	"testing"
	"time"

	"mightyops-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapitalRequestModelRoundTrip(t *testing.T) {
	m := NewCapitalRequestMapper()
	in := &entity.CapitalRequest{
		Id:                7,
		Location:          "Site #4",
		SubmittedBy:       "casey",
		RequestTypes:      []string{"Equipment Replacement", "Safety Upgrade"},
		EquipmentArea:     "Tunnel",
		Description:       "Top brush assembly is shredding.",
		ImportanceRanking: 4,
		Recommendation:    "Approve",
		CreatedAt:         time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
	}

	out := m.ToEntity(m.ToModel(in))
	require.NotNil(t, out)
	assert.Equal(t, in.Id, out.Id)
	assert.Equal(t, in.RequestTypes, out.RequestTypes)
	assert.Equal(t, in.ImportanceRanking, out.ImportanceRanking)
	assert.Equal(t, in.Recommendation, out.Recommendation)
}

func TestCapitalRequestTagsNullWhenEmpty(t *testing.T) {
	m := NewCapitalRequestMapper()
	row := m.ToModel(&entity.CapitalRequest{Id: 1, Location: "Site #4"})

	// Nil keeps the jsonb column SQL NULL instead of the string "null".
	assert.Nil(t, row.RequestTypes)
	assert.Nil(t, row.FollowUpActions)
}

func TestCapitalRequestToRecordOmitsBlanks(t *testing.T) {
	m := NewCapitalRequestMapper()
	rec := m.ToRecord(&entity.CapitalRequest{
		Id:            3,
		Location:      "Site #4",
		RequestTypes:  []string{"New Equipment"},
		EquipmentArea: "Vacuum Lot",
		CreatedAt:     time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, 3, rec.ID)
	assert.Equal(t, []string{"New Equipment"}, rec.Values["request_types"])
	assert.Equal(t, "Vacuum Lot", rec.Values["equipment_area"])
	_, hasRanking := rec.Values["importance_ranking"]
	assert.False(t, hasRanking)
	_, hasRecommendation := rec.Values["recommendation"]
	assert.False(t, hasRecommendation)
}

func TestEvaluationRecordCarriesAnswers(t *testing.T) {
	m := NewEvaluationMapper()
	rec := m.ToRecord(&entity.Evaluation{
		Id:       9,
		Location: "Site #2",
		Answers:  map[string]string{"q1": "Yes", "q18": "Good"},
	})

	assert.Equal(t, "Yes", rec.Values["q1"])
	assert.Equal(t, "Good", rec.Values["q18"])
}
