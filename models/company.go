package models

// CompanyProfile represents the employer side profile.
type CompanyProfile struct {
	ID           int    `json:"id,omitempty"`
	CompanyName  string `json:"companyName"`
	Industry     string `json:"industry"`
	ContactInfo  string `json:"contactInfo"`
	CompanyEmail string `json:"companyEmail"`
	Description  string `json:"description"`
}
