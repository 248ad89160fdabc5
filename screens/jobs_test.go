package screens

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/nonsonwune/gradlink/api"
	"github.com/nonsonwune/gradlink/models"
	"github.com/stretchr/testify/assert"
)

func TestBrowseJobsRendersFeed(t *testing.T) {
	var pages []string
	env, out := testEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages = append(pages, r.URL.Query().Get("page"))
		json.NewEncoder(w).Encode(api.JobPage{
			Count: 1,
			Results: []models.JobPosting{
				{ID: 3, Title: "Backend Engineer", Location: "Remote", JobType: "full-time", SalaryMin: 100, SalaryMax: 200},
			},
		})
	}), "q\n")

	BrowseJobs(env)

	assert.Equal(t, []string{"1"}, pages)
	assert.Contains(t, out.String(), "Backend Engineer")
	assert.Contains(t, out.String(), "100 - 200")
}

func TestBrowseJobsPaginationRefetches(t *testing.T) {
	var pages []string
	env, _ := testEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages = append(pages, r.URL.Query().Get("page"))
		json.NewEncoder(w).Encode(api.JobPage{
			Count:   10,
			Results: []models.JobPosting{{ID: 1, Title: "Role"}},
		})
	}), "n\np\nq\n")

	BrowseJobs(env)

	assert.Equal(t, []string{"1", "2", "1"}, pages, "each page change is a full re-fetch")
}

func TestBrowseJobsEmptyFeed(t *testing.T) {
	env, out := testEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.JobPage{})
	}), "")

	BrowseJobs(env)

	assert.Contains(t, out.String(), "No job postings to show.")
}

func TestBrowseJobsFetchFailure(t *testing.T) {
	env, out := testEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}), "")

	BrowseJobs(env)

	assert.Contains(t, out.String(), "Something went wrong. Please try again later.")
}
