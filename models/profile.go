package models

// GraduateProfile holds the free-form attributes of a job seeker profile.
// Skills, education and certifications live in their own collections.
type GraduateProfile struct {
	ID       int      `json:"id,omitempty"`
	Location string   `json:"location"`
	Bio      string   `json:"bio"`
	Links    []string `json:"links"`
}

// Completeness returns how many of the profile's sections carry data, as a
// ratio in [0,1]. Display-only; the server owns the real profile state.
func (p GraduateProfile) Completeness() float64 {
	filled := 0
	if p.Location != "" {
		filled++
	}
	if p.Bio != "" {
		filled++
	}
	if len(p.Links) > 0 {
		filled++
	}
	return float64(filled) / 3.0
}

// Education represents one education row on a job seeker profile.
type Education struct {
	ID           int    `json:"id,omitempty"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartYear    int    `json:"start_year"`
	EndYear      int    `json:"end_year,omitempty"`
	IsCurrent    bool   `json:"is_current"`
}

// Certification represents one certification row, optionally backed by an
// uploaded file on the server.
type Certification struct {
	ID          int    `json:"id,omitempty"`
	Issuer      string `json:"issuer"`
	AwardedDate string `json:"awarded_date"`
	Description string `json:"description"`
	UploadPath  string `json:"upload_path,omitempty"`
}
