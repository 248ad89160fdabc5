package screens

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nonsonwune/gradlink/models"
	"github.com/nonsonwune/gradlink/ui"
)

type skillForm struct {
	Name        string `validate:"required"`
	Proficiency string `validate:"required,oneof=beginner intermediate midlevel professional"`
}

type educationForm struct {
	Institution string `validate:"required"`
	Degree      string `validate:"required"`
	StartYear   int    `validate:"required"`
}

type certificationForm struct {
	Issuer      string `validate:"required"`
	AwardedDate string `validate:"required"`
}

// EditGraduateProfile shows the current profile and updates its free-form
// attributes. Blank input keeps the current value.
func EditGraduateProfile(env *Env) {
	ui.Title(env.Out, "\n=== Your Profile ===")

	profile, err := env.Client.GraduateProfile(env.ctx())
	if err != nil {
		showError(env.Out, err)
		return
	}

	fmt.Fprintf(env.Out, "Location: %s\nBio: %s\nLinks: %s\n",
		profile.Location, profile.Bio, strings.Join(profile.Links, ", "))
	fmt.Fprintf(env.Out, "Profile completeness: %.0f%%\n", profile.Completeness()*100)

	if !env.Prompt.Confirm("Edit profile?") {
		return
	}

	updated := *profile
	if v := env.Prompt.ReadString("Location [" + profile.Location + "]"); v != "" {
		updated.Location = v
	}
	if v := env.Prompt.ReadString("Bio [unchanged]"); v != "" {
		updated.Bio = v
	}
	if links := env.Prompt.ReadList("Links"); len(links) > 0 {
		updated.Links = links
	}

	if err := env.Client.UpdateGraduateProfile(env.ctx(), updated); err != nil {
		showError(env.Out, err)
		return
	}
	ui.Success(env.Out, "Profile updated.")
}

// ManageSkills lists, adds and removes skill rows. The list is re-fetched
// after every mutation.
func ManageSkills(env *Env) {
	for {
		ui.Title(env.Out, "\n=== Your Skills ===")

		skills, err := env.Client.Skills(env.ctx())
		if err != nil {
			showError(env.Out, err)
			return
		}

		if len(skills) == 0 {
			ui.Warn(env.Out, "No skills on your profile yet.")
		} else {
			rows := make([][]string, 0, len(skills))
			for _, s := range skills {
				rows = append(rows, []string{strconv.Itoa(s.ID), s.Name, string(s.Proficiency)})
			}
			ui.RenderTable(env.Out, []string{"ID", "Skill", "Proficiency"}, rows)
		}

		fmt.Fprintln(env.Out, "a. Add skill  d. Delete skill  q. Back")
		switch env.Prompt.ReadChoice() {
		case "a":
			addSkill(env)
		case "d":
			id := env.Prompt.ReadInt("Skill ID")
			if err := env.Client.DeleteSkill(env.ctx(), id); err != nil {
				showError(env.Out, err)
				continue
			}
			ui.Success(env.Out, "Skill removed.")
		case "q":
			return
		default:
			ui.Warn(env.Out, "Invalid choice. Please try again.")
		}
	}
}

func addSkill(env *Env) {
	form := skillForm{
		Name:        env.Prompt.ReadString("Skill name"),
		Proficiency: env.Prompt.ReadString("Proficiency (beginner/intermediate/midlevel/professional)"),
	}
	if fields := ui.Validate(form); fields != nil {
		ui.ShowFieldErrors(env.Out, fields)
		return
	}

	skill := models.Skill{
		Name:        form.Name,
		Proficiency: models.Proficiency(form.Proficiency),
	}
	if err := env.Client.AddSkill(env.ctx(), skill); err != nil {
		showError(env.Out, err)
		return
	}
	ui.Success(env.Out, "Skill added.")
}

// ManageEducation lists, adds and removes education rows.
func ManageEducation(env *Env) {
	for {
		ui.Title(env.Out, "\n=== Your Education ===")

		educations, err := env.Client.Educations(env.ctx())
		if err != nil {
			showError(env.Out, err)
			return
		}

		if len(educations) == 0 {
			ui.Warn(env.Out, "No education entries on your profile yet.")
		} else {
			rows := make([][]string, 0, len(educations))
			for _, e := range educations {
				end := strconv.Itoa(e.EndYear)
				if e.IsCurrent {
					end = "present"
				}
				rows = append(rows, []string{
					strconv.Itoa(e.ID),
					e.Institution,
					e.Degree,
					e.FieldOfStudy,
					fmt.Sprintf("%d - %s", e.StartYear, end),
				})
			}
			ui.RenderTable(env.Out, []string{"ID", "Institution", "Degree", "Field", "Years"}, rows)
		}

		fmt.Fprintln(env.Out, "a. Add entry  d. Delete entry  q. Back")
		switch env.Prompt.ReadChoice() {
		case "a":
			addEducation(env)
		case "d":
			id := env.Prompt.ReadInt("Entry ID")
			if err := env.Client.DeleteEducation(env.ctx(), id); err != nil {
				showError(env.Out, err)
				continue
			}
			ui.Success(env.Out, "Education entry removed.")
		case "q":
			return
		default:
			ui.Warn(env.Out, "Invalid choice. Please try again.")
		}
	}
}

func addEducation(env *Env) {
	form := educationForm{
		Institution: env.Prompt.ReadString("Institution"),
		Degree:      env.Prompt.ReadString("Degree"),
		StartYear:   env.Prompt.ReadInt("Start year"),
	}
	if fields := ui.Validate(form); fields != nil {
		ui.ShowFieldErrors(env.Out, fields)
		return
	}

	entry := models.Education{
		Institution:  form.Institution,
		Degree:       form.Degree,
		StartYear:    form.StartYear,
		FieldOfStudy: env.Prompt.ReadString("Field of study"),
		IsCurrent:    env.Prompt.Confirm("Currently studying here?"),
	}
	if !entry.IsCurrent {
		entry.EndYear = env.Prompt.ReadInt("End year")
	}

	if err := env.Client.AddEducation(env.ctx(), entry); err != nil {
		showError(env.Out, err)
		return
	}
	ui.Success(env.Out, "Education entry added.")
}

// ManageCertifications lists, adds and removes certification rows. Adding
// one uploads the certificate file as multipart form data.
func ManageCertifications(env *Env) {
	for {
		ui.Title(env.Out, "\n=== Your Certifications ===")

		certs, err := env.Client.Certifications(env.ctx())
		if err != nil {
			showError(env.Out, err)
			return
		}

		if len(certs) == 0 {
			ui.Warn(env.Out, "No certifications on your profile yet.")
		} else {
			rows := make([][]string, 0, len(certs))
			for _, c := range certs {
				rows = append(rows, []string{strconv.Itoa(c.ID), c.Issuer, c.AwardedDate, c.Description})
			}
			ui.RenderTable(env.Out, []string{"ID", "Issuer", "Awarded", "Description"}, rows)
		}

		fmt.Fprintln(env.Out, "a. Add certification  d. Delete certification  q. Back")
		switch env.Prompt.ReadChoice() {
		case "a":
			addCertification(env)
		case "d":
			id := env.Prompt.ReadInt("Certification ID")
			if err := env.Client.DeleteCertification(env.ctx(), id); err != nil {
				showError(env.Out, err)
				continue
			}
			ui.Success(env.Out, "Certification removed.")
		case "q":
			return
		default:
			ui.Warn(env.Out, "Invalid choice. Please try again.")
		}
	}
}

func addCertification(env *Env) {
	form := certificationForm{
		Issuer:      env.Prompt.ReadString("Issuer"),
		AwardedDate: env.Prompt.ReadString("Awarded date (YYYY-MM-DD)"),
	}
	if fields := ui.Validate(form); fields != nil {
		ui.ShowFieldErrors(env.Out, fields)
		return
	}

	cert := models.Certification{
		Issuer:      form.Issuer,
		AwardedDate: form.AwardedDate,
		Description: env.Prompt.ReadString("Description"),
	}

	path := env.Prompt.ReadString("Certificate file path")
	file, err := os.Open(path)
	if err != nil {
		ui.Errorf(env.Out, "Could not open file: %v", err)
		return
	}
	defer file.Close()

	if apiErr := env.Client.AddCertification(env.ctx(), cert, filepath.Base(path), file); apiErr != nil {
		showError(env.Out, apiErr)
		return
	}
	ui.Success(env.Out, "Certification added.")
}
