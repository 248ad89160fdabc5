package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nonsonwune/gradlink/models"
)

// LoginResponse is the payload of a successful login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// RegisterRequest is the signup form payload.
type RegisterRequest struct {
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Role      models.Role `json:"role"`
}

// Login exchanges credentials for a session token. A 401 here means bad
// credentials, not an expired session, so the message is rewritten.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, *Error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		if err.Kind == KindUnauthorized {
			err.Message = "Invalid email or password."
		}
		return nil, err
	}
	return &out, nil
}

// Logout tells the backend to invalidate the session token.
func (c *Client) Logout(ctx context.Context) *Error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*models.User, *Error) {
	var out models.User
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestPasswordReset asks the backend to email a reset link.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) *Error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/auth/request-reset-password/", body, nil)
}

// ConfirmPasswordReset completes a reset with the uid and token from the
// emailed link.
func (c *Client) ConfirmPasswordReset(ctx context.Context, uid, token, newPassword string) *Error {
	path := fmt.Sprintf("/auth/password-reset-confirm/%s/%s/", uid, token)
	body := map[string]string{"password": newPassword}
	return c.do(ctx, http.MethodPost, path, body, nil)
}
