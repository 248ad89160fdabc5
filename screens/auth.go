package screens

import (
	"github.com/nonsonwune/gradlink/api"
	"github.com/nonsonwune/gradlink/models"
	"github.com/nonsonwune/gradlink/ui"
)

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type registerForm struct {
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=8"`
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
}

// LoginScreen collects credentials and attempts a login. Returns whether a
// session was established; on failure the session drops back to anonymous
// and no navigation happens.
func LoginScreen(env *Env) bool {
	ui.Title(env.Out, "\n=== Log In ===")

	form := loginForm{
		Email:    env.Prompt.ReadString("Email"),
		Password: env.Prompt.ReadString("Password"),
	}
	if fields := ui.Validate(form); fields != nil {
		ui.ShowFieldErrors(env.Out, fields)
		return false
	}

	env.Session.Begin()
	resp, err := env.Client.Login(env.ctx(), form.Email, form.Password)
	if err != nil {
		env.Session.Fail()
		showError(env.Out, err)
		return false
	}

	env.Client.SetToken(resp.Token)
	env.Session.Complete(resp.User, resp.Token)
	ui.Success(env.Out, "Welcome back, %s!", resp.User.FullName())
	return true
}

// RegisterScreen signs up a new job seeker or employer account.
func RegisterScreen(env *Env) {
	ui.Title(env.Out, "\n=== Create Account ===")

	form := registerForm{
		Email:     env.Prompt.ReadString("Email"),
		Password:  env.Prompt.ReadString("Password"),
		FirstName: env.Prompt.ReadString("First name"),
		LastName:  env.Prompt.ReadString("Last name"),
	}
	if fields := ui.Validate(form); fields != nil {
		ui.ShowFieldErrors(env.Out, fields)
		return
	}

	role := models.RoleJobSeeker
	if env.Prompt.Confirm("Register as an employer?") {
		role = models.RoleEmployer
	}

	_, err := env.Client.Register(env.ctx(), api.RegisterRequest{
		Email:     form.Email,
		Password:  form.Password,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Role:      role,
	})
	if err != nil {
		showError(env.Out, err)
		return
	}
	ui.Success(env.Out, "Account created. You can now log in.")
}

// PasswordResetScreen requests a reset email or confirms a reset with the
// uid and token from the link.
func PasswordResetScreen(env *Env) {
	ui.Title(env.Out, "\n=== Password Reset ===")

	if env.Prompt.Confirm("Do you already have a reset token?") {
		uid := env.Prompt.ReadString("UID from the reset link")
		token := env.Prompt.ReadString("Token from the reset link")
		password := env.Prompt.ReadString("New password")
		if password == "" {
			ui.Errorf(env.Out, "  password: This field is required.")
			return
		}
		if err := env.Client.ConfirmPasswordReset(env.ctx(), uid, token, password); err != nil {
			showError(env.Out, err)
			return
		}
		ui.Success(env.Out, "Password updated. You can now log in.")
		return
	}

	email := env.Prompt.ReadString("Email")
	if email == "" {
		ui.Errorf(env.Out, "  email: This field is required.")
		return
	}
	if err := env.Client.RequestPasswordReset(env.ctx(), email); err != nil {
		showError(env.Out, err)
		return
	}
	ui.Success(env.Out, "Password reset email sent.")
}

// LogoutScreen ends the session. The local session clears even when the
// backend call fails.
func LogoutScreen(env *Env) {
	if !env.Prompt.Confirm("Log out?") {
		return
	}
	if err := env.Client.Logout(env.ctx()); err != nil {
		ui.Warn(env.Out, "Could not notify the server, logging out locally.")
	}
	env.Client.SetToken("")
	env.Session.Logout()
	ui.Success(env.Out, "Logged out.")
}
