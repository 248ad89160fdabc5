package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/nonsonwune/gradlink/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidatesCSV(t *testing.T) {
	candidates := []models.Candidate{
		{
			ID:        7,
			FirstName: "Ada",
			LastName:  "Obi",
			Email:     "ada@example.com",
			Location:  "Lagos",
			Skills: []models.Skill{
				{Name: "React", Proficiency: models.Intermediate},
				{Name: "Go", Proficiency: models.Beginner},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, CandidatesCSV(&buf, candidates))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"id", "name", "email", "location", "skills"}, records[0])
	assert.Equal(t, []string{"7", "Ada Obi", "ada@example.com", "Lagos", "React (intermediate); Go (beginner)"}, records[1])
}

func TestCandidatesCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CandidatesCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}
