package models

// DocumentStatus is the review status the platform assigns to an uploaded
// document. Transitions happen server-side only.
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
)

// Document represents a company document awaiting or past review.
type Document struct {
	ID         int            `json:"id"`
	DocType    string         `json:"doc_type"`
	UploadPath string         `json:"upload_path"`
	Status     DocumentStatus `json:"status"`
	OwnerEmail string         `json:"owner_email,omitempty"`
}
