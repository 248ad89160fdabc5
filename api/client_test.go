package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nonsonwune/gradlink/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(config.Config{BaseURL: server.URL, Timeout: 2 * time.Second})
}

func TestErrorKindMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		kind    Kind
		message string
	}{
		{"validation", 400, `{}`, KindValidation, "Please correct the highlighted fields."},
		{"unauthorized", 401, `{}`, KindUnauthorized, "Session expired. Please log in again."},
		{"forbidden", 403, `{}`, KindForbidden, "You are not authorized to perform this action."},
		{"not found", 404, `{}`, KindNotFound, "Not found."},
		{"server", 500, `{}`, KindServer, "Something went wrong. Please try again later."},
		{"detail passthrough", 403, `{"detail":"Account suspended."}`, KindForbidden, "Account suspended."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			err := client.do(context.Background(), http.MethodGet, "/anything", nil, nil)
			require.NotNil(t, err)
			assert.Equal(t, tt.kind, err.Kind)
			assert.Equal(t, tt.message, err.Message)
		})
	}
}

func TestFieldErrorsDecoded(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"email":["Enter a valid email address."],"password":"This field is required."}`))
	}))

	err := client.do(context.Background(), http.MethodPost, "/auth/register", map[string]string{}, nil)
	require.NotNil(t, err)
	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, "Enter a valid email address.", err.Fields["email"])
	assert.Equal(t, "This field is required.", err.Fields["password"])
}

func TestNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := New(config.Config{BaseURL: url, Timeout: time.Second})
	err := client.do(context.Background(), http.MethodGet, "/jobs/", nil, nil)
	require.NotNil(t, err)
	assert.Equal(t, KindNetwork, err.Kind)
	assert.Equal(t, "Could not reach the server. Please try again later.", err.Message)
}

func TestTimeoutNeverHangs(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	client.timeout = 50 * time.Millisecond

	start := time.Now()
	err := client.do(context.Background(), http.MethodGet, "/jobs/", nil, nil)
	require.NotNil(t, err)
	assert.Equal(t, KindNetwork, err.Kind)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	client.SetToken("abc123")

	err := client.do(context.Background(), http.MethodGet, "/graduate/profile", nil, nil)
	require.Nil(t, err)
	assert.Equal(t, "Bearer abc123", got.Get("Authorization"))
	assert.NotEmpty(t, got.Get("X-Request-ID"))
	assert.Equal(t, "application/json", got.Get("Accept"))
}

func TestTokenCleared(t *testing.T) {
	var auth string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))

	client.SetToken("abc123")
	client.SetToken("")
	require.Nil(t, client.do(context.Background(), http.MethodGet, "/jobs/", nil, nil))
	assert.Empty(t, auth)
}
