package screens

import (
	"context"
	"io"

	"github.com/nonsonwune/gradlink/api"
	"github.com/nonsonwune/gradlink/session"
	"github.com/nonsonwune/gradlink/ui"
)

// Env bundles what every screen needs: the API client, the session store,
// and the input/output streams. Tests swap in scripted input and a buffer.
type Env struct {
	Client  *api.Client
	Session *session.Store
	Prompt  *ui.Prompter
	Out     io.Writer
}

func (e *Env) ctx() context.Context {
	return context.Background()
}

// showError surfaces an API failure the way a form or toast would: field
// errors inline when present, a single message otherwise. Errors stay local
// to the screen that triggered them.
func showError(out io.Writer, err *api.Error) {
	ui.Errorf(out, "%s", err.Message)
	if len(err.Fields) > 0 {
		ui.ShowFieldErrors(out, err.Fields)
	}
}
