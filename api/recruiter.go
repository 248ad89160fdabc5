package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/nonsonwune/gradlink/models"
)

// CompanyProfile fetches the recruiter's company profile.
func (c *Client) CompanyProfile(ctx context.Context) (*models.CompanyProfile, *Error) {
	var out models.CompanyProfile
	if err := c.do(ctx, http.MethodGet, "/recruiter/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCompanyProfile replaces the company profile.
func (c *Client) UpdateCompanyProfile(ctx context.Context, p models.CompanyProfile) *Error {
	return c.do(ctx, http.MethodPut, "/recruiter/profile", p, nil)
}

// Documents lists the company's uploaded documents.
func (c *Client) Documents(ctx context.Context) ([]models.Document, *Error) {
	var out []models.Document
	if err := c.do(ctx, http.MethodGet, "/recruiter/documents", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadDocument sends one company document as multipart form data. The
// server assigns it pending status.
func (c *Client) UploadDocument(ctx context.Context, docType, filename string, file io.Reader) *Error {
	fields := map[string]string{"doc_type": docType}
	return c.upload(ctx, "/recruiter/documents", fields, "file", filename, file, nil)
}

// DownloadDocument streams a document blob into w.
func (c *Client) DownloadDocument(ctx context.Context, id int, w io.Writer) *Error {
	return c.download(ctx, fmt.Sprintf("/recruiter/documents/%d/download", id), w)
}

// DeleteDocument removes one document.
func (c *Client) DeleteDocument(ctx context.Context, id int) *Error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/recruiter/documents/%d", id), nil, nil)
}

// Candidates lists the recruiter's tracking records.
func (c *Client) Candidates(ctx context.Context) ([]models.TrackingRecord, *Error) {
	var out []models.TrackingRecord
	if err := c.do(ctx, http.MethodGet, "/recruiter/candidates", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TrackCandidate creates a tracking record for a job seeker, starting at
// shortlisted.
func (c *Client) TrackCandidate(ctx context.Context, jobSeekerID int, notes string) *Error {
	body := map[string]interface{}{
		"job_seeker_id": jobSeekerID,
		"status":        models.Shortlisted,
		"notes":         notes,
	}
	return c.do(ctx, http.MethodPost, "/recruiter/candidates", body, nil)
}

// UpdateCandidateStatus moves a tracking record to a new pipeline stage.
func (c *Client) UpdateCandidateStatus(ctx context.Context, id int, status models.TrackingStatus, notes string) *Error {
	body := map[string]interface{}{"status": status, "notes": notes}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/recruiter/candidates/%d/status", id), body, nil)
}

// RecruiterStats fetches the pipeline counts for the recruiter dashboard.
func (c *Client) RecruiterStats(ctx context.Context) (*models.PipelineStats, *Error) {
	var out models.PipelineStats
	if err := c.do(ctx, http.MethodGet, "/recruiter/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
