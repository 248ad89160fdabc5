package screens

import (
	"fmt"

	"github.com/nonsonwune/gradlink/ui"
)

type companyForm struct {
	CompanyName  string `validate:"required"`
	CompanyEmail string `validate:"required,email"`
}

// EditCompanyProfile shows and updates the employer's company profile.
// Blank input keeps the current value.
func EditCompanyProfile(env *Env) {
	ui.Title(env.Out, "\n=== Company Profile ===")

	profile, err := env.Client.CompanyProfile(env.ctx())
	if err != nil {
		showError(env.Out, err)
		return
	}

	fmt.Fprintf(env.Out, "Company: %s\nIndustry: %s\nContact: %s\nEmail: %s\nDescription: %s\n",
		profile.CompanyName, profile.Industry, profile.ContactInfo, profile.CompanyEmail, profile.Description)

	if !env.Prompt.Confirm("Edit company profile?") {
		return
	}

	updated := *profile
	if v := env.Prompt.ReadString("Company name [" + profile.CompanyName + "]"); v != "" {
		updated.CompanyName = v
	}
	if v := env.Prompt.ReadString("Industry [" + profile.Industry + "]"); v != "" {
		updated.Industry = v
	}
	if v := env.Prompt.ReadString("Contact info [" + profile.ContactInfo + "]"); v != "" {
		updated.ContactInfo = v
	}
	if v := env.Prompt.ReadString("Company email [" + profile.CompanyEmail + "]"); v != "" {
		updated.CompanyEmail = v
	}
	if v := env.Prompt.ReadString("Description [unchanged]"); v != "" {
		updated.Description = v
	}

	form := companyForm{CompanyName: updated.CompanyName, CompanyEmail: updated.CompanyEmail}
	if fields := ui.Validate(form); fields != nil {
		ui.ShowFieldErrors(env.Out, fields)
		return
	}

	if err := env.Client.UpdateCompanyProfile(env.ctx(), updated); err != nil {
		showError(env.Out, err)
		return
	}
	ui.Success(env.Out, "Company profile updated.")
}
