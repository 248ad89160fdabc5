package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/nonsonwune/gradlink/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadDocumentMultipart(t *testing.T) {
	var docType, filename, content string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		docType = r.FormValue("doc_type")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		filename = header.Filename

		var buf bytes.Buffer
		buf.ReadFrom(file)
		content = buf.String()

		w.WriteHeader(http.StatusCreated)
	}))

	err := client.UploadDocument(context.Background(), "registration", "cert.pdf", strings.NewReader("pdf-bytes"))
	require.Nil(t, err)
	assert.Equal(t, "registration", docType)
	assert.Equal(t, "cert.pdf", filename)
	assert.Equal(t, "pdf-bytes", content)
}

func TestDownloadDocumentStreamsBlob(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/recruiter/documents/9/download", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("blob-bytes"))
	}))

	var buf bytes.Buffer
	err := client.DownloadDocument(context.Background(), 9, &buf)
	require.Nil(t, err)
	assert.Equal(t, "blob-bytes", buf.String())
}

func TestUpdateCandidateStatus(t *testing.T) {
	var method, path string
	var body map[string]interface{}
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{}`))
	}))

	err := client.UpdateCandidateStatus(context.Background(), 4, models.Interviewed, "strong phone screen")
	require.Nil(t, err)
	assert.Equal(t, http.MethodPatch, method)
	assert.Equal(t, "/recruiter/candidates/4/status", path)
	assert.Equal(t, "interviewed", body["status"])
	assert.Equal(t, "strong phone screen", body["notes"])
}
