package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/nonsonwune/gradlink/models"
)

// GraduateProfile fetches the job seeker's own profile.
func (c *Client) GraduateProfile(ctx context.Context) (*models.GraduateProfile, *Error) {
	var out models.GraduateProfile
	if err := c.do(ctx, http.MethodGet, "/graduate/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateGraduateProfile replaces the profile's free-form attributes.
func (c *Client) UpdateGraduateProfile(ctx context.Context, p models.GraduateProfile) *Error {
	return c.do(ctx, http.MethodPut, "/graduate/profile", p, nil)
}

// Skills lists the profile's skill rows.
func (c *Client) Skills(ctx context.Context) ([]models.Skill, *Error) {
	var out []models.Skill
	if err := c.do(ctx, http.MethodGet, "/graduate/skills", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddSkill creates one skill row.
func (c *Client) AddSkill(ctx context.Context, s models.Skill) *Error {
	return c.do(ctx, http.MethodPost, "/graduate/skills", s, nil)
}

// DeleteSkill removes one skill row.
func (c *Client) DeleteSkill(ctx context.Context, id int) *Error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/graduate/skills/%d", id), nil, nil)
}

// Educations lists the profile's education rows.
func (c *Client) Educations(ctx context.Context) ([]models.Education, *Error) {
	var out []models.Education
	if err := c.do(ctx, http.MethodGet, "/graduate/educations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddEducation creates one education row.
func (c *Client) AddEducation(ctx context.Context, e models.Education) *Error {
	return c.do(ctx, http.MethodPost, "/graduate/educations", e, nil)
}

// DeleteEducation removes one education row.
func (c *Client) DeleteEducation(ctx context.Context, id int) *Error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/graduate/educations/%d", id), nil, nil)
}

// Certifications lists the profile's certification rows.
func (c *Client) Certifications(ctx context.Context) ([]models.Certification, *Error) {
	var out []models.Certification
	if err := c.do(ctx, http.MethodGet, "/graduate/certifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddCertification creates one certification row, attaching the certificate
// file as multipart form data.
func (c *Client) AddCertification(ctx context.Context, cert models.Certification, filename string, file io.Reader) *Error {
	fields := map[string]string{
		"issuer":       cert.Issuer,
		"awarded_date": cert.AwardedDate,
		"description":  cert.Description,
	}
	return c.upload(ctx, "/graduate/certifications", fields, "file", filename, file, nil)
}

// DeleteCertification removes one certification row.
func (c *Client) DeleteCertification(ctx context.Context, id int) *Error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/graduate/certifications/%d", id), nil, nil)
}
