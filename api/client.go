package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nonsonwune/gradlink/config"
)

// Client is the single place requests leave the program. It carries the base
// URL, the bearer token once a session exists, and a per-request timeout so
// a hung backend can never leave a screen loading forever.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	token   string
}

// New builds a client from the loaded configuration.
func New(cfg config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		http:    &http.Client{},
	}
}

// SetToken attaches the session token to subsequent requests. An empty
// token clears it.
func (c *Client) SetToken(token string) {
	c.token = token
}

// do issues one JSON request. body may be nil; out may be nil when the
// caller does not need the response payload.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) *Error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindNetwork, Message: msgNetwork}
		}
		reader = bytes.NewReader(encoded)
	}

	req, apiErr := c.newRequest(ctx, method, path, reader)
	if apiErr != nil {
		return apiErr
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// upload issues one multipart request with the given form fields and a
// single file part.
func (c *Client) upload(ctx context.Context, path string, fields map[string]string, fileField, filename string, file io.Reader, out interface{}) *Error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return netError()
		}
	}
	part, err := mw.CreateFormFile(fileField, filename)
	if err != nil {
		return netError()
	}
	if _, err := io.Copy(part, file); err != nil {
		return netError()
	}
	if err := mw.Close(); err != nil {
		return netError()
	}

	req, apiErr := c.newRequest(ctx, http.MethodPost, path, &buf)
	if apiErr != nil {
		return apiErr
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.send(req, out)
}

// download streams a blob response into w.
func (c *Client) download(ctx context.Context, path string, w io.Writer) *Error {
	req, apiErr := c.newRequest(ctx, http.MethodGet, path, nil)
	if apiErr != nil {
		return apiErr
	}

	ctx, cancel := context.WithTimeout(req.Context(), c.timeout)
	defer cancel()

	resp, err := c.http.Do(req.WithContext(ctx))
	if err != nil {
		return netError()
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return decodeError(resp.StatusCode, body)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return netError()
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, *Error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, netError()
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out interface{}) *Error {
	ctx, cancel := context.WithTimeout(req.Context(), c.timeout)
	defer cancel()

	resp, err := c.http.Do(req.WithContext(ctx))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &Error{Kind: KindNetwork, Message: "The request timed out. Please try again later."}
		}
		return netError()
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return netError()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, body)
	}

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return &Error{
				Kind:    KindServer,
				Status:  resp.StatusCode,
				Message: msgServer,
			}
		}
	}
	return nil
}
