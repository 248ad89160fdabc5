package api

import (
	"context"
	"net/http"

	"github.com/nonsonwune/gradlink/models"
)

// CandidateQuery is a skill-based job seeker search.
type CandidateQuery struct {
	Skills      []string
	Proficiency models.Proficiency
}

type wireCandidateQuery struct {
	Skills            []string `json:"skills"`
	ProffeciencyLevel string   `json:"proffeciency_level,omitempty"`
}

// SearchJobSeekers runs a candidate search. A 404 means the search matched
// nothing and reads as an empty result, not a failure.
func (c *Client) SearchJobSeekers(ctx context.Context, q CandidateQuery) ([]models.Candidate, *Error) {
	body := wireCandidateQuery{Skills: q.Skills}
	if q.Proficiency != "" {
		body.ProffeciencyLevel = models.ProficiencyToWire(q.Proficiency)
	}

	var out []models.Candidate
	if err := c.do(ctx, http.MethodPost, "/search/jobseekers/", body, &out); err != nil {
		if err.Kind == KindNotFound {
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}
