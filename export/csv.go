package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/nonsonwune/gradlink/models"
)

// CandidatesCSV writes search results as CSV with one row per candidate.
// Skills are joined into a single column as "name (proficiency)".
func CandidatesCSV(w io.Writer, candidates []models.Candidate) error {
	writer := csv.NewWriter(w)

	header := []string{"id", "name", "email", "location", "skills"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, c := range candidates {
		skills := make([]string, 0, len(c.Skills))
		for _, s := range c.Skills {
			skills = append(skills, s.Name+" ("+string(s.Proficiency)+")")
		}
		row := []string{
			strconv.Itoa(c.ID),
			c.FullName(),
			c.Email,
			c.Location,
			strings.Join(skills, "; "),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
