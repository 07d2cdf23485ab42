package forms

import (
	"context"
	"log/slog"

	"ngoconnect-web/backend"
)

// State of a form submission: editing → submitting → succeeded | failed.
// A failed submission goes back to editing with the server message.
type State string

const (
	Editing    State = "editing"
	Submitting State = "submitting"
	Succeeded  State = "succeeded"
	Failed     State = "failed"
)

// Outcome is the terminal state of one submission attempt.
type Outcome struct {
	State   State
	Errors  FieldErrors
	Message string
	Err     error
}

func (o Outcome) OK() bool { return o.State == Succeeded }

// SendFunc performs the single network request of a submission and returns
// the server's confirmation message.
type SendFunc func(ctx context.Context) (string, error)

// Submit validates form and, only when it is valid, calls send exactly once.
// There are no retries; the user resubmits explicitly.
func Submit(ctx context.Context, form any, send SendFunc) Outcome {
	if errs := Validate(form); len(errs) > 0 {
		return Outcome{State: Editing, Errors: errs}
	}
	return run(ctx, send)
}

// SubmitErrors is Submit for a form already bound by Bind.
func SubmitErrors(ctx context.Context, errs FieldErrors, send SendFunc) Outcome {
	if len(errs) > 0 {
		return Outcome{State: Editing, Errors: errs}
	}
	return run(ctx, send)
}

func run(ctx context.Context, send SendFunc) Outcome {
	msg, err := send(ctx)
	if err != nil {
		slog.WarnContext(ctx, "form submission failed", "error", err)
		return Outcome{State: Failed, Message: backend.Message(err), Err: err}
	}
	return Outcome{State: Succeeded, Message: msg}
}
