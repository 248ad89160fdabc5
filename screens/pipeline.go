package screens

import (
	"fmt"
	"strconv"

	"github.com/nonsonwune/gradlink/models"
	"github.com/nonsonwune/gradlink/ui"
)

// ManagePipeline lists the recruiter's tracking records and moves candidates
// between pipeline stages. Status changes go through an explicit PATCH and
// the list is re-fetched afterwards, never patched locally.
func ManagePipeline(env *Env) {
	for {
		ui.Title(env.Out, "\n=== Recruitment Pipeline ===")

		records, err := env.Client.Candidates(env.ctx())
		if err != nil {
			showError(env.Out, err)
			return
		}

		if len(records) == 0 {
			ui.Warn(env.Out, "No candidates in your pipeline yet.")
			return
		}

		rows := make([][]string, 0, len(records))
		for _, r := range records {
			rows = append(rows, []string{
				strconv.Itoa(r.ID),
				r.CandidateName,
				string(r.Status),
				r.Notes,
			})
		}
		ui.RenderTable(env.Out, []string{"ID", "Candidate", "Status", "Notes"}, rows)

		fmt.Fprintln(env.Out, "u. Update status  q. Back")
		switch env.Prompt.ReadChoice() {
		case "u":
			updateStatus(env, records)
		case "q":
			return
		default:
			ui.Warn(env.Out, "Invalid choice. Please try again.")
		}
	}
}

func updateStatus(env *Env, records []models.TrackingRecord) {
	id := env.Prompt.ReadInt("Record ID")
	var current *models.TrackingRecord
	for i := range records {
		if records[i].ID == id {
			current = &records[i]
			break
		}
	}
	if current == nil {
		ui.Warn(env.Out, "No record with ID %d.", id)
		return
	}

	fmt.Fprintf(env.Out, "Current status: %s\n", current.Status)
	for i, status := range models.TrackingStatuses {
		fmt.Fprintf(env.Out, "%d. %s\n", i+1, status)
	}
	choice := env.Prompt.ReadInt("New status")
	if choice < 1 || choice > len(models.TrackingStatuses) {
		ui.Warn(env.Out, "Invalid choice. Please try again.")
		return
	}
	status := models.TrackingStatuses[choice-1]

	notes := current.Notes
	if v := env.Prompt.ReadString("Notes [unchanged]"); v != "" {
		notes = v
	}

	if err := env.Client.UpdateCandidateStatus(env.ctx(), id, status, notes); err != nil {
		showError(env.Out, err)
		return
	}
	ui.Success(env.Out, "Candidate moved to %s.", status)
}
