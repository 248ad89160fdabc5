package models

import "fmt"

// JobPosting represents one posting in the feed or on the employer's board.
type JobPosting struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Requirements     string   `json:"requirements"`
	Responsibilities string   `json:"responsibilities"`
	Location         string   `json:"location"`
	JobType          string   `json:"job_type"`
	ExperienceLevel  string   `json:"experience_level"`
	SalaryMin        int      `json:"salary_min"`
	SalaryMax        int      `json:"salary_max"`
	RequiredSkills   []string `json:"required_skills"`
}

// SalaryRange formats the salary bounds for display.
func (j JobPosting) SalaryRange() string {
	if j.SalaryMin == 0 && j.SalaryMax == 0 {
		return "Not specified"
	}
	return fmt.Sprintf("%d - %d", j.SalaryMin, j.SalaryMax)
}
