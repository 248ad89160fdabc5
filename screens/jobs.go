package screens

import (
	"fmt"
	"strconv"

	"github.com/nonsonwune/gradlink/models"
	"github.com/nonsonwune/gradlink/ui"
)

// BrowseJobs pages through the public job feed. Every page change is a full
// re-fetch; a failed fetch surfaces an error and leaves the screen.
func BrowseJobs(env *Env) {
	page := 1
	for {
		ui.Title(env.Out, "\n=== Job Feed (page %d) ===", page)

		feed, err := env.Client.JobFeed(env.ctx(), page)
		if err != nil {
			showError(env.Out, err)
			return
		}
		if len(feed.Results) == 0 {
			ui.Warn(env.Out, "No job postings to show.")
			if page == 1 {
				return
			}
			page--
			continue
		}

		rows := make([][]string, 0, len(feed.Results))
		for _, job := range feed.Results {
			rows = append(rows, []string{
				strconv.Itoa(job.ID),
				job.Title,
				job.Location,
				job.JobType,
				job.ExperienceLevel,
				job.SalaryRange(),
			})
		}
		ui.RenderTable(env.Out, []string{"ID", "Title", "Location", "Type", "Experience", "Salary"}, rows)
		fmt.Fprintf(env.Out, "%d postings total\n", feed.Count)

		fmt.Fprintln(env.Out, "v. View posting  n. Next page  p. Previous page  q. Back")
		switch env.Prompt.ReadChoice() {
		case "v":
			id := env.Prompt.ReadInt("Posting ID")
			showJobDetail(env, feed.Results, id)
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

func showJobDetail(env *Env, jobs []models.JobPosting, id int) {
	for _, job := range jobs {
		if job.ID != id {
			continue
		}
		ui.Title(env.Out, "\n%s — %s", job.Title, job.Location)
		fmt.Fprintf(env.Out, "Type: %s | Experience: %s | Salary: %s\n", job.JobType, job.ExperienceLevel, job.SalaryRange())
		fmt.Fprintf(env.Out, "\n%s\n", job.Description)
		if job.Requirements != "" {
			fmt.Fprintf(env.Out, "\nRequirements:\n%s\n", job.Requirements)
		}
		if job.Responsibilities != "" {
			fmt.Fprintf(env.Out, "\nResponsibilities:\n%s\n", job.Responsibilities)
		}
		if len(job.RequiredSkills) > 0 {
			fmt.Fprint(env.Out, "\nSkills: ")
			for i, skill := range job.RequiredSkills {
				if i > 0 {
					fmt.Fprint(env.Out, ", ")
				}
				fmt.Fprint(env.Out, skill)
			}
			fmt.Fprintln(env.Out)
		}
		return
	}
	ui.Warn(env.Out, "No posting with ID %d on this page.", id)
}
