package models

import "encoding/json"

// Proficiency is the corrected, client-side spelling of a skill level.
type Proficiency string

const (
	Beginner     Proficiency = "beginner"
	Intermediate Proficiency = "intermediate"
	MidLevel     Proficiency = "midlevel"
	Professional Proficiency = "professional"
)

// Proficiencies lists the levels in ascending order, for menus.
var Proficiencies = []Proficiency{Beginner, Intermediate, MidLevel, Professional}

// The backend spells the beginner level "begginner" and the field
// "proffeciency_level". Those spellings are part of the server contract and
// must survive on the wire, so the mapping lives here and nowhere else.
const wireBeginner = "begginner"

// Skill represents one skill row on a job seeker profile.
type Skill struct {
	ID          int
	Name        string
	Proficiency Proficiency
}

type wireSkill struct {
	ID                int    `json:"id,omitempty"`
	Name              string `json:"name"`
	ProffeciencyLevel string `json:"proffeciency_level"`
}

// ProficiencyToWire converts the corrected spelling to the backend's.
func ProficiencyToWire(p Proficiency) string {
	if p == Beginner {
		return wireBeginner
	}
	return string(p)
}

// ProficiencyFromWire converts the backend's spelling to the corrected one.
func ProficiencyFromWire(s string) Proficiency {
	if s == wireBeginner {
		return Beginner
	}
	return Proficiency(s)
}

func (s Skill) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireSkill{
		ID:                s.ID,
		Name:              s.Name,
		ProffeciencyLevel: ProficiencyToWire(s.Proficiency),
	})
}

func (s *Skill) UnmarshalJSON(data []byte) error {
	var w wireSkill
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.ID = w.ID
	s.Name = w.Name
	s.Proficiency = ProficiencyFromWire(w.ProffeciencyLevel)
	return nil
}
