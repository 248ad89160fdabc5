package screens

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/nonsonwune/gradlink/models"
	"github.com/stretchr/testify/assert"
)

func TestAdminDashboardWidgetsFailIndependently(t *testing.T) {
	env, out := testEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/manage/admin/stats":
			w.WriteHeader(http.StatusInternalServerError)
		case "/manage/admin/documents":
			json.NewEncoder(w).Encode([]models.Document{
				{ID: 1, DocType: "registration", Status: models.DocumentPending},
			})
		}
	}), "")

	AdminDashboard(env)

	assert.Contains(t, out.String(), "Failed to load platform stats")
	assert.Contains(t, out.String(), "1 documents waiting for review.")
}

func TestAdminDashboardFormatsShares(t *testing.T) {
	env, out := testEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/manage/admin/stats":
			json.NewEncoder(w).Encode(models.PlatformStats{
				TotalUsers: 200, JobSeekers: 150, Employers: 50, ActiveJobPostings: 12,
			})
		case "/manage/admin/documents":
			w.Write([]byte(`[]`))
		}
	}), "")

	AdminDashboard(env)

	assert.Contains(t, out.String(), "75.0%")
	assert.Contains(t, out.String(), "25.0%")
	assert.Contains(t, out.String(), "Review queue is empty.")
}

func TestRecruiterDashboardPipelineShares(t *testing.T) {
	env, out := testEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/recruiter/stats":
			json.NewEncoder(w).Encode(models.PipelineStats{Shortlisted: 3, Interviewed: 1})
		case "/recruiter/candidates":
			w.Write([]byte(`[]`))
		}
	}), "")

	RecruiterDashboard(env)

	assert.Contains(t, out.String(), "75.0%")
	assert.Contains(t, out.String(), "No candidates in your pipeline yet.")
}
