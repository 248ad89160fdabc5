package models

// PlatformStats carries the server-computed aggregates shown on the admin
// dashboard. The client only formats ratios; it never recomputes them.
type PlatformStats struct {
	TotalUsers        int `json:"total_users"`
	JobSeekers        int `json:"job_seekers"`
	Employers         int `json:"employers"`
	ActiveJobPostings int `json:"active_job_postings"`
	PendingDocuments  int `json:"pending_documents"`
}

// Share returns part over the user total as a percentage for display.
func (s PlatformStats) Share(part int) float64 {
	if s.TotalUsers == 0 {
		return 0
	}
	return float64(part) / float64(s.TotalUsers) * 100
}

// PipelineStats carries the recruiter dashboard counts per pipeline stage.
type PipelineStats struct {
	Shortlisted int `json:"shortlisted"`
	Interviewed int `json:"interviewed"`
	Hired       int `json:"hired"`
	Rejected    int `json:"rejected"`
}

// Total sums all stages.
func (s PipelineStats) Total() int {
	return s.Shortlisted + s.Interviewed + s.Hired + s.Rejected
}
