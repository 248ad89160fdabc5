package screens

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/nonsonwune/gradlink/models"
	"github.com/stretchr/testify/assert"
)

func TestPipelineStatusUpdateRefetches(t *testing.T) {
	fetches := 0
	patches := 0
	status := models.Shortlisted

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			fetches++
			json.NewEncoder(w).Encode([]models.TrackingRecord{
				{ID: 4, JobSeekerID: 2, RecruiterID: 9, CandidateName: "Ada Obi", Status: status},
			})
		case r.Method == http.MethodPatch:
			patches++
			var body map[string]interface{}
			json.NewDecoder(r.Body).Decode(&body)
			status = models.TrackingStatus(body["status"].(string))
			w.Write([]byte(`{}`))
		}
	})

	// List, update record 4 to interviewed, then leave.
	env, out := testEnv(t, handler, "u\n4\n2\n\nq\n")
	ManagePipeline(env)

	assert.Equal(t, 1, patches)
	assert.Equal(t, 2, fetches, "the list is re-fetched after the mutation")
	assert.Equal(t, models.Interviewed, status)
	assert.Contains(t, out.String(), "Candidate moved to interviewed.")
	assert.Contains(t, out.String(), "interviewed", "re-fetched list reflects the change")
}

func TestPipelineFetchFailureLeavesScreen(t *testing.T) {
	env, out := testEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{}`))
	}), "")

	ManagePipeline(env)

	assert.Contains(t, out.String(), "You are not authorized to perform this action.")
}

func TestPipelineEmptyState(t *testing.T) {
	env, out := testEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}), "")

	ManagePipeline(env)

	assert.Contains(t, out.String(), "No candidates in your pipeline yet.")
}
