package screens

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchCandidatesEmptyState(t *testing.T) {
	env, out := testEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}), "React\nintermediate\n")

	SearchCandidates(env)

	assert.Contains(t, out.String(), "No candidates found with these skill criteria")
	assert.NotContains(t, out.String(), "Something went wrong")
}

func TestSearchCandidatesNotFoundIsEmptyState(t *testing.T) {
	env, out := testEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Not found."}`))
	}), "React\n\n")

	SearchCandidates(env)

	assert.Contains(t, out.String(), "No candidates found with these skill criteria")
	assert.NotContains(t, out.String(), "Not found.")
}

func TestSearchCandidatesRendersResults(t *testing.T) {
	env, out := testEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{
				"id":         1,
				"first_name": "Ada",
				"last_name":  "Obi",
				"location":   "Lagos",
				"skills": []map[string]interface{}{
					{"name": "React", "proffeciency_level": "intermediate"},
				},
			},
		})
	}), "React\n\nq\n")

	SearchCandidates(env)

	assert.Contains(t, out.String(), "Ada Obi")
	assert.Contains(t, out.String(), "1 candidates found")
}

func TestSearchCandidatesServerError(t *testing.T) {
	env, out := testEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}), "React\n\n")

	SearchCandidates(env)

	assert.Contains(t, out.String(), "Something went wrong. Please try again later.")
}
