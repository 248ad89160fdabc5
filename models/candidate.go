package models

// Candidate is one row in a skill-based job seeker search result.
type Candidate struct {
	ID        int     `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Location  string  `json:"location"`
	Skills    []Skill `json:"skills"`
}

// FullName joins the name parts for display.
func (c Candidate) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
