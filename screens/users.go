package screens

import (
	"fmt"
	"strconv"

	"github.com/nonsonwune/gradlink/ui"
)

// ManageUsers is the admin account screen: list, activate/suspend and
// delete accounts, with page-number pagination.
func ManageUsers(env *Env) {
	page := 1
	for {
		ui.Title(env.Out, "\n=== Platform Users (page %d) ===", page)

		users, err := env.Client.Users(env.ctx(), page)
		if err != nil {
			showError(env.Out, err)
			return
		}

		if len(users.Results) == 0 {
			ui.Warn(env.Out, "No users on this page.")
		} else {
			rows := make([][]string, 0, len(users.Results))
			for _, u := range users.Results {
				active := "suspended"
				if u.IsActive {
					active = "active"
				}
				rows = append(rows, []string{
					strconv.Itoa(u.ID),
					u.FullName(),
					u.Email,
					string(u.Role),
					active,
				})
			}
			ui.RenderTable(env.Out, []string{"ID", "Name", "Email", "Role", "Status"}, rows)
			fmt.Fprintf(env.Out, "%d users total\n", users.Count)
		}

		fmt.Fprintln(env.Out, "t. Toggle active  d. Delete user  n. Next page  p. Previous page  q. Back")
		switch env.Prompt.ReadChoice() {
		case "t":
			toggleUserActive(env)
		case "d":
			id := env.Prompt.ReadInt("User ID")
			if !env.Prompt.Confirm("Delete this user?") {
				continue
			}
			if err := env.Client.DeleteUser(env.ctx(), id); err != nil {
				showError(env.Out, err)
				continue
			}
			ui.Success(env.Out, "User deleted.")
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

func toggleUserActive(env *Env) {
	id := env.Prompt.ReadInt("User ID")
	activate := env.Prompt.Confirm("Activate? (n suspends)")
	if err := env.Client.SetUserActive(env.ctx(), id, activate); err != nil {
		showError(env.Out, err)
		return
	}
	if activate {
		ui.Success(env.Out, "User activated.")
	} else {
		ui.Success(env.Out, "User suspended.")
	}
}
