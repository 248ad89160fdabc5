package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nonsonwune/gradlink/models"
)

// UserPage is one page of platform accounts.
type UserPage struct {
	Count   int           `json:"count"`
	Results []models.User `json:"results"`
}

// Users fetches one page of platform accounts.
func (c *Client) Users(ctx context.Context, page int) (*UserPage, *Error) {
	var out UserPage
	path := fmt.Sprintf("/manage/admin/users?page=%d", page)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetUserActive activates or suspends an account.
func (c *Client) SetUserActive(ctx context.Context, id int, active bool) *Error {
	body := map[string]bool{"is_active": active}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/manage/admin/users/%d", id), body, nil)
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, id int) *Error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/manage/admin/users/%d", id), nil, nil)
}

// PendingDocuments lists company documents awaiting review.
func (c *Client) PendingDocuments(ctx context.Context) ([]models.Document, *Error) {
	var out []models.Document
	if err := c.do(ctx, http.MethodGet, "/manage/admin/documents", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReviewDocument approves or rejects a document.
func (c *Client) ReviewDocument(ctx context.Context, id int, status models.DocumentStatus) *Error {
	body := map[string]models.DocumentStatus{"status": status}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/manage/admin/documents/%d", id), body, nil)
}

// PlatformStats fetches the server-computed aggregates for the admin
// dashboard.
func (c *Client) PlatformStats(ctx context.Context) (*models.PlatformStats, *Error) {
	var out models.PlatformStats
	if err := c.do(ctx, http.MethodGet, "/manage/admin/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
