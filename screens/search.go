package screens

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nonsonwune/gradlink/api"
	"github.com/nonsonwune/gradlink/export"
	"github.com/nonsonwune/gradlink/models"
	"github.com/nonsonwune/gradlink/ui"
)

// SearchCandidates runs a skill-based job seeker search for recruiters. An
// empty result is an empty state, not an error. Matches can be shortlisted
// into the pipeline or exported to CSV.
func SearchCandidates(env *Env) {
	ui.Title(env.Out, "\n=== Candidate Search ===")

	skills := env.Prompt.ReadList("Skills")
	if len(skills) == 0 {
		ui.Errorf(env.Out, "  skills: This field is required.")
		return
	}

	query := api.CandidateQuery{Skills: skills}
	if raw := env.Prompt.ReadString("Minimum proficiency (blank for any)"); raw != "" {
		query.Proficiency = models.Proficiency(raw)
	}

	candidates, err := env.Client.SearchJobSeekers(env.ctx(), query)
	if err != nil {
		showError(env.Out, err)
		return
	}
	if len(candidates) == 0 {
		ui.Warn(env.Out, "No candidates found with these skill criteria")
		return
	}

	rows := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		names := make([]string, 0, len(c.Skills))
		for _, s := range c.Skills {
			names = append(names, s.Name)
		}
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.FullName(),
			c.Location,
			strings.Join(names, ", "),
		})
	}
	ui.RenderTable(env.Out, []string{"ID", "Name", "Location", "Skills"}, rows)
	fmt.Fprintf(env.Out, "%d candidates found\n", len(candidates))

	for {
		fmt.Fprintln(env.Out, "t. Shortlist candidate  x. Export to CSV  q. Back")
		switch env.Prompt.ReadChoice() {
		case "t":
			id := env.Prompt.ReadInt("Candidate ID")
			notes := env.Prompt.ReadString("Notes")
			if err := env.Client.TrackCandidate(env.ctx(), id, notes); err != nil {
				showError(env.Out, err)
				continue
			}
			ui.Success(env.Out, "Candidate shortlisted.")
		case "x":
			exportCandidates(env, candidates)
		case "q":
			return
		default:
			ui.Warn(env.Out, "Invalid choice. Please try again.")
		}
	}
}

func exportCandidates(env *Env, candidates []models.Candidate) {
	dest := env.Prompt.ReadString("Save CSV to")
	file, err := os.Create(dest)
	if err != nil {
		ui.Errorf(env.Out, "Could not create file: %v", err)
		return
	}
	defer file.Close()

	if err := export.CandidatesCSV(file, candidates); err != nil {
		ui.Errorf(env.Out, "Error writing CSV: %v", err)
		return
	}
	ui.Success(env.Out, "Exported %d candidates to %s.", len(candidates), dest)
}
