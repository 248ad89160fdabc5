package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/nonsonwune/gradlink/api"
	"github.com/nonsonwune/gradlink/config"
	"github.com/nonsonwune/gradlink/models"
	"github.com/nonsonwune/gradlink/screens"
	"github.com/nonsonwune/gradlink/session"
	"github.com/nonsonwune/gradlink/ui"
)

func main() {
	cfg := config.Load()

	env := &screens.Env{
		Client:  api.New(cfg),
		Session: session.NewStore(),
		Prompt:  ui.NewPrompter(os.Stdin, os.Stdout),
		Out:     os.Stdout,
	}

	color.Cyan("=== GradLink ===")

	for {
		if env.Session.Authenticated() && env.Session.Expired() {
			ui.Warn(env.Out, "Your session has expired. Please log in again.")
			env.Client.SetToken("")
			env.Session.Logout()
		}

		if !env.Session.Authenticated() {
			if done := anonymousMenu(env); done {
				color.Green("Thank you for using GradLink!")
				return
			}
			continue
		}

		switch env.Session.User().Role {
		case models.RoleJobSeeker:
			jobSeekerMenu(env)
		case models.RoleEmployer:
			employerMenu(env)
		case models.RoleAdmin, models.RoleSuperAdmin:
			adminMenu(env)
		default:
			ui.Errorf(env.Out, "Unknown role %q, logging out.", env.Session.User().Role)
			env.Client.SetToken("")
			env.Session.Logout()
		}
	}
}

// anonymousMenu runs one pass of the unauthenticated menu. Returns true on
// exit.
func anonymousMenu(env *screens.Env) bool {
	color.Cyan("\n=== Welcome ===")
	fmt.Println("1. Log in")
	fmt.Println("2. Create account")
	fmt.Println("3. Reset password")
	fmt.Println("4. Browse jobs")
	fmt.Println("5. Exit")

	switch env.Prompt.ReadChoice() {
	case "1":
		screens.LoginScreen(env)
	case "2":
		screens.RegisterScreen(env)
	case "3":
		screens.PasswordResetScreen(env)
	case "4":
		screens.BrowseJobs(env)
	case "5":
		return true
	default:
		color.Red("Invalid choice. Please try again.")
	}
	return false
}

func jobSeekerMenu(env *screens.Env) {
	color.Cyan("\n=== Job Seeker Menu ===")
	fmt.Println("1. Dashboard")
	fmt.Println("2. Browse jobs")
	fmt.Println("3. Edit profile")
	fmt.Println("4. Manage skills")
	fmt.Println("5. Manage education")
	fmt.Println("6. Manage certifications")
	fmt.Println("7. Log out")

	switch env.Prompt.ReadChoice() {
	case "1":
		screens.GraduateDashboard(env)
	case "2":
		screens.BrowseJobs(env)
	case "3":
		screens.EditGraduateProfile(env)
	case "4":
		screens.ManageSkills(env)
	case "5":
		screens.ManageEducation(env)
	case "6":
		screens.ManageCertifications(env)
	case "7":
		screens.LogoutScreen(env)
	default:
		color.Red("Invalid choice. Please try again.")
	}
}

func employerMenu(env *screens.Env) {
	color.Cyan("\n=== Employer Menu ===")
	fmt.Println("1. Dashboard")
	fmt.Println("2. Company profile")
	fmt.Println("3. Company documents")
	fmt.Println("4. Job postings")
	fmt.Println("5. Search candidates")
	fmt.Println("6. Recruitment pipeline")
	fmt.Println("7. Log out")

	switch env.Prompt.ReadChoice() {
	case "1":
		screens.RecruiterDashboard(env)
	case "2":
		screens.EditCompanyProfile(env)
	case "3":
		screens.ManageDocuments(env)
	case "4":
		screens.ManageJobPostings(env)
	case "5":
		screens.SearchCandidates(env)
	case "6":
		screens.ManagePipeline(env)
	case "7":
		screens.LogoutScreen(env)
	default:
		color.Red("Invalid choice. Please try again.")
	}
}

func adminMenu(env *screens.Env) {
	color.Cyan("\n=== Admin Menu ===")
	fmt.Println("1. Dashboard")
	fmt.Println("2. Manage users")
	fmt.Println("3. Review documents")
	fmt.Println("4. Browse jobs")
	fmt.Println("5. Log out")

	switch env.Prompt.ReadChoice() {
	case "1":
		screens.AdminDashboard(env)
	case "2":
		screens.ManageUsers(env)
	case "3":
		screens.ReviewDocuments(env)
	case "4":
		screens.BrowseJobs(env)
	case "5":
		screens.LogoutScreen(env)
	default:
		color.Red("Invalid choice. Please try again.")
	}
}
