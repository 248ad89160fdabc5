package screens

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/nonsonwune/gradlink/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewDocumentsApproveRefetches(t *testing.T) {
	fetches := 0
	var patched models.DocumentStatus

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			fetches++
			if fetches == 1 {
				json.NewEncoder(w).Encode([]models.Document{
					{ID: 5, DocType: "registration", Status: models.DocumentPending},
				})
				return
			}
			w.Write([]byte(`[]`))
		case http.MethodPatch:
			require.Equal(t, "/manage/admin/documents/5", r.URL.Path)
			var body map[string]models.DocumentStatus
			json.NewDecoder(r.Body).Decode(&body)
			patched = body["status"]
			w.Write([]byte(`{}`))
		}
	})

	env, out := testEnv(t, handler, "a\n5\n")
	ReviewDocuments(env)

	assert.Equal(t, models.DocumentApproved, patched)
	assert.Equal(t, 2, fetches, "queue re-fetched after the decision")
	assert.Contains(t, out.String(), "Document approved.")
	assert.Contains(t, out.String(), "No documents pending review.")
}

func TestUploadDocumentFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reg.pdf")
	require.NoError(t, os.WriteFile(path, []byte("pdf-bytes"), 0o644))

	var uploaded string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			uploaded = r.FormValue("doc_type")
			w.WriteHeader(http.StatusCreated)
			return
		}
		w.Write([]byte(`[]`))
	})

	env, out := testEnv(t, handler, "u\nregistration\n"+path+"\nq\n")
	ManageDocuments(env)

	assert.Equal(t, "registration", uploaded)
	assert.Contains(t, out.String(), "Document uploaded. It is now pending review.")
}
