package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nonsonwune/gradlink/models"
)

// JobPage is one page of postings. The backend paginates by page number and
// the client re-fetches the whole page on every change.
type JobPage struct {
	Count   int                 `json:"count"`
	Results []models.JobPosting `json:"results"`
}

// JobFeed fetches one page of the public job feed.
func (c *Client) JobFeed(ctx context.Context, page int) (*JobPage, *Error) {
	var out JobPage
	path := fmt.Sprintf("/jobs/?page=%d", page)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// JobPostings fetches one page of the employer's own postings.
func (c *Client) JobPostings(ctx context.Context, page int) (*JobPage, *Error) {
	var out JobPage
	path := fmt.Sprintf("/job-postings/?page=%d", page)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateJobPosting creates a posting.
func (c *Client) CreateJobPosting(ctx context.Context, p models.JobPosting) *Error {
	return c.do(ctx, http.MethodPost, "/job-postings/", p, nil)
}

// UpdateJobPosting replaces a posting.
func (c *Client) UpdateJobPosting(ctx context.Context, p models.JobPosting) *Error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/job-postings/%d", p.ID), p, nil)
}

// DeleteJobPosting removes a posting.
func (c *Client) DeleteJobPosting(ctx context.Context, id int) *Error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/job-postings/%d", id), nil, nil)
}
