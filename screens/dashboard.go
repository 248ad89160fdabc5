package screens

import (
	"fmt"
	"strconv"

	"github.com/nonsonwune/gradlink/ui"
)

// The dashboards assemble independent widgets. Each widget fetches its own
// slice of server-computed aggregates and fails on its own; one broken
// widget never takes down the rest of the dashboard.

// AdminDashboard shows the platform stats and the review queue size.
func AdminDashboard(env *Env) {
	ui.Title(env.Out, "\n=== Admin Dashboard ===")

	if stats, err := env.Client.PlatformStats(env.ctx()); err != nil {
		ui.Errorf(env.Out, "Failed to load platform stats: %s", err.Message)
	} else {
		ui.RenderTable(env.Out, []string{"Metric", "Count", "Share"}, [][]string{
			{"Total users", strconv.Itoa(stats.TotalUsers), ""},
			{"Job seekers", strconv.Itoa(stats.JobSeekers), fmt.Sprintf("%.1f%%", stats.Share(stats.JobSeekers))},
			{"Employers", strconv.Itoa(stats.Employers), fmt.Sprintf("%.1f%%", stats.Share(stats.Employers))},
			{"Active job postings", strconv.Itoa(stats.ActiveJobPostings), ""},
			{"Documents pending review", strconv.Itoa(stats.PendingDocuments), ""},
		})
	}

	if docs, err := env.Client.PendingDocuments(env.ctx()); err != nil {
		ui.Errorf(env.Out, "Failed to load review queue: %s", err.Message)
	} else if len(docs) == 0 {
		ui.Warn(env.Out, "Review queue is empty.")
	} else {
		fmt.Fprintf(env.Out, "%d documents waiting for review.\n", len(docs))
	}
}

// RecruiterDashboard shows the pipeline stage counts and the most recent
// tracked candidates.
func RecruiterDashboard(env *Env) {
	ui.Title(env.Out, "\n=== Recruiter Dashboard ===")

	if stats, err := env.Client.RecruiterStats(env.ctx()); err != nil {
		ui.Errorf(env.Out, "Failed to load pipeline stats: %s", err.Message)
	} else {
		total := stats.Total()
		share := func(n int) string {
			if total == 0 {
				return ""
			}
			return fmt.Sprintf("%.1f%%", float64(n)/float64(total)*100)
		}
		ui.RenderTable(env.Out, []string{"Stage", "Candidates", "Share"}, [][]string{
			{"Shortlisted", strconv.Itoa(stats.Shortlisted), share(stats.Shortlisted)},
			{"Interviewed", strconv.Itoa(stats.Interviewed), share(stats.Interviewed)},
			{"Hired", strconv.Itoa(stats.Hired), share(stats.Hired)},
			{"Rejected", strconv.Itoa(stats.Rejected), share(stats.Rejected)},
		})
	}

	if records, err := env.Client.Candidates(env.ctx()); err != nil {
		ui.Errorf(env.Out, "Failed to load recent candidates: %s", err.Message)
	} else if len(records) == 0 {
		ui.Warn(env.Out, "No candidates in your pipeline yet.")
	} else {
		if len(records) > 5 {
			records = records[:5]
		}
		rows := make([][]string, 0, len(records))
		for _, r := range records {
			rows = append(rows, []string{r.CandidateName, string(r.Status)})
		}
		ui.RenderTable(env.Out, []string{"Candidate", "Status"}, rows)
	}
}

// GraduateDashboard shows profile completeness and the newest postings.
func GraduateDashboard(env *Env) {
	ui.Title(env.Out, "\n=== Your Dashboard ===")

	if profile, err := env.Client.GraduateProfile(env.ctx()); err != nil {
		ui.Errorf(env.Out, "Failed to load profile: %s", err.Message)
	} else {
		fmt.Fprintf(env.Out, "Profile completeness: %.0f%%\n", profile.Completeness()*100)
	}

	if skills, err := env.Client.Skills(env.ctx()); err != nil {
		ui.Errorf(env.Out, "Failed to load skills: %s", err.Message)
	} else {
		fmt.Fprintf(env.Out, "Skills on profile: %d\n", len(skills))
	}

	if feed, err := env.Client.JobFeed(env.ctx(), 1); err != nil {
		ui.Errorf(env.Out, "Failed to load job feed: %s", err.Message)
	} else if len(feed.Results) == 0 {
		ui.Warn(env.Out, "No job postings to show.")
	} else {
		jobs := feed.Results
		if len(jobs) > 5 {
			jobs = jobs[:5]
		}
		rows := make([][]string, 0, len(jobs))
		for _, job := range jobs {
			rows = append(rows, []string{job.Title, job.Location, job.JobType})
		}
		ui.RenderTable(env.Out, []string{"Title", "Location", "Type"}, rows)
	}
}
