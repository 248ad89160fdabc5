package models

// TrackingStatus is the pipeline stage of a candidate being tracked by a
// recruiter.
type TrackingStatus string

const (
	Shortlisted TrackingStatus = "shortlisted"
	Interviewed TrackingStatus = "interviewed"
	Hired       TrackingStatus = "hired"
	Rejected    TrackingStatus = "rejected"
)

// TrackingStatuses lists the stages in pipeline order, for menus.
var TrackingStatuses = []TrackingStatus{Shortlisted, Interviewed, Hired, Rejected}

// TrackingRecord links one recruiter to one job seeker at a pipeline stage.
// Mutated only via explicit status-update calls; the client never edits it
// locally.
type TrackingRecord struct {
	ID            int            `json:"id"`
	JobSeekerID   int            `json:"job_seeker_id"`
	RecruiterID   int            `json:"recruiter_id"`
	CandidateName string         `json:"candidate_name,omitempty"`
	Status        TrackingStatus `json:"status"`
	Notes         string         `json:"notes"`
}
