package screens

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nonsonwune/gradlink/models"
	"github.com/nonsonwune/gradlink/ui"
)

type postingForm struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	Location    string `validate:"required"`
	JobType     string `validate:"required,oneof=full-time part-time contract internship"`
}

// ManageJobPostings is the employer's board: list, create, edit and delete
// postings. Every successful mutation re-fetches the list.
func ManageJobPostings(env *Env) {
	page := 1
	for {
		ui.Title(env.Out, "\n=== Your Job Postings (page %d) ===", page)

		postings, err := env.Client.JobPostings(env.ctx(), page)
		if err != nil {
			showError(env.Out, err)
			return
		}

		if len(postings.Results) == 0 {
			ui.Warn(env.Out, "No job postings yet.")
		} else {
			rows := make([][]string, 0, len(postings.Results))
			for _, job := range postings.Results {
				rows = append(rows, []string{
					strconv.Itoa(job.ID),
					job.Title,
					job.Location,
					job.JobType,
					job.SalaryRange(),
				})
			}
			ui.RenderTable(env.Out, []string{"ID", "Title", "Location", "Type", "Salary"}, rows)
		}

		fmt.Fprintln(env.Out, "c. Create  e. Edit  d. Delete  n. Next page  p. Previous page  q. Back")
		switch env.Prompt.ReadChoice() {
		case "c":
			createPosting(env)
		case "e":
			editPosting(env, postings.Results)
		case "d":
			deletePosting(env)
		case "n":
			page++
		case "p":
			if page > 1 {
				page--
			}
		case "q":
			return
		default:
			ui.Warn(env.Out, "Invalid choice. Please try again.")
		}
	}
}

func createPosting(env *Env) {
	form := postingForm{
		Title:       env.Prompt.ReadString("Title"),
		Description: env.Prompt.ReadString("Description"),
		Location:    env.Prompt.ReadString("Location"),
		JobType:     env.Prompt.ReadString("Job type (full-time/part-time/contract/internship)"),
	}
	if fields := ui.Validate(form); fields != nil {
		ui.ShowFieldErrors(env.Out, fields)
		return
	}

	posting := models.JobPosting{
		Title:            form.Title,
		Description:      form.Description,
		Location:         form.Location,
		JobType:          form.JobType,
		Requirements:     env.Prompt.ReadString("Requirements"),
		Responsibilities: env.Prompt.ReadString("Responsibilities"),
		ExperienceLevel:  env.Prompt.ReadString("Experience level"),
		SalaryMin:        env.Prompt.ReadInt("Salary minimum"),
		SalaryMax:        env.Prompt.ReadInt("Salary maximum"),
		RequiredSkills:   env.Prompt.ReadList("Required skills"),
	}

	if err := env.Client.CreateJobPosting(env.ctx(), posting); err != nil {
		showError(env.Out, err)
		return
	}
	ui.Success(env.Out, "Job posting created.")
}

func editPosting(env *Env, postings []models.JobPosting) {
	id := env.Prompt.ReadInt("Posting ID")
	var current *models.JobPosting
	for i := range postings {
		if postings[i].ID == id {
			current = &postings[i]
			break
		}
	}
	if current == nil {
		ui.Warn(env.Out, "No posting with ID %d on this page.", id)
		return
	}

	// Blank input keeps the current value.
	updated := *current
	if v := env.Prompt.ReadString("Title [" + current.Title + "]"); v != "" {
		updated.Title = v
	}
	if v := env.Prompt.ReadString("Location [" + current.Location + "]"); v != "" {
		updated.Location = v
	}
	if v := env.Prompt.ReadString("Description [unchanged]"); v != "" {
		updated.Description = v
	}
	if v := env.Prompt.ReadString("Experience level [" + current.ExperienceLevel + "]"); v != "" {
		updated.ExperienceLevel = v
	}
	if v := env.Prompt.ReadString("Required skills [" + strings.Join(current.RequiredSkills, ", ") + "]"); v != "" {
		updated.RequiredSkills = splitSkills(v)
	}

	if err := env.Client.UpdateJobPosting(env.ctx(), updated); err != nil {
		showError(env.Out, err)
		return
	}
	ui.Success(env.Out, "Job posting updated.")
}

func deletePosting(env *Env) {
	id := env.Prompt.ReadInt("Posting ID")
	if !env.Prompt.Confirm("Delete this posting?") {
		return
	}
	if err := env.Client.DeleteJobPosting(env.ctx(), id); err != nil {
		showError(env.Out, err)
		return
	}
	ui.Success(env.Out, "Job posting deleted.")
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
