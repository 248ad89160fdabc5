package screens

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nonsonwune/gradlink/models"
	"github.com/nonsonwune/gradlink/ui"
)

// ManageDocuments is the employer's document screen: list, upload, download
// and delete. Uploads enter review as pending.
func ManageDocuments(env *Env) {
	for {
		ui.Title(env.Out, "\n=== Company Documents ===")

		docs, err := env.Client.Documents(env.ctx())
		if err != nil {
			showError(env.Out, err)
			return
		}

		if len(docs) == 0 {
			ui.Warn(env.Out, "No documents uploaded yet.")
		} else {
			renderDocuments(env, docs)
		}

		fmt.Fprintln(env.Out, "u. Upload  g. Download  d. Delete  q. Back")
		switch env.Prompt.ReadChoice() {
		case "u":
			uploadDocument(env)
		case "g":
			downloadDocument(env)
		case "d":
			id := env.Prompt.ReadInt("Document ID")
			if !env.Prompt.Confirm("Delete this document?") {
				continue
			}
			if err := env.Client.DeleteDocument(env.ctx(), id); err != nil {
				showError(env.Out, err)
				continue
			}
			ui.Success(env.Out, "Document deleted.")
		case "q":
			return
		default:
			ui.Warn(env.Out, "Invalid choice. Please try again.")
		}
	}
}

func renderDocuments(env *Env, docs []models.Document) {
	rows := make([][]string, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, []string{
			strconv.Itoa(d.ID),
			d.DocType,
			filepath.Base(d.UploadPath),
			string(d.Status),
		})
	}
	ui.RenderTable(env.Out, []string{"ID", "Type", "File", "Status"}, rows)
}

func uploadDocument(env *Env) {
	docType := env.Prompt.ReadString("Document type (e.g. registration, tax-clearance)")
	if docType == "" {
		ui.Errorf(env.Out, "  doc_type: This field is required.")
		return
	}

	path := env.Prompt.ReadString("File path")
	file, err := os.Open(path)
	if err != nil {
		ui.Errorf(env.Out, "Could not open file: %v", err)
		return
	}
	defer file.Close()

	if apiErr := env.Client.UploadDocument(env.ctx(), docType, filepath.Base(path), file); apiErr != nil {
		showError(env.Out, apiErr)
		return
	}
	ui.Success(env.Out, "Document uploaded. It is now pending review.")
}

func downloadDocument(env *Env) {
	id := env.Prompt.ReadInt("Document ID")
	dest := env.Prompt.ReadString("Save to")
	out, err := os.Create(dest)
	if err != nil {
		ui.Errorf(env.Out, "Could not create file: %v", err)
		return
	}
	defer out.Close()

	if apiErr := env.Client.DownloadDocument(env.ctx(), id, out); apiErr != nil {
		showError(env.Out, apiErr)
		return
	}
	ui.Success(env.Out, "Saved to %s.", dest)
}

// ReviewDocuments is the admin review queue: approve or reject pending
// company documents, re-fetching the queue after every decision.
func ReviewDocuments(env *Env) {
	for {
		ui.Title(env.Out, "\n=== Documents Pending Review ===")

		docs, err := env.Client.PendingDocuments(env.ctx())
		if err != nil {
			showError(env.Out, err)
			return
		}

		if len(docs) == 0 {
			ui.Warn(env.Out, "No documents pending review.")
			return
		}
		renderDocuments(env, docs)

		fmt.Fprintln(env.Out, "a. Approve  r. Reject  q. Back")
		switch env.Prompt.ReadChoice() {
		case "a":
			reviewDocument(env, models.DocumentApproved)
		case "r":
			reviewDocument(env, models.DocumentRejected)
		case "q":
			return
		default:
			ui.Warn(env.Out, "Invalid choice. Please try again.")
		}
	}
}

func reviewDocument(env *Env, status models.DocumentStatus) {
	id := env.Prompt.ReadInt("Document ID")
	if err := env.Client.ReviewDocument(env.ctx(), id, status); err != nil {
		showError(env.Out, err)
		return
	}
	ui.Success(env.Out, "Document %s.", status)
}
