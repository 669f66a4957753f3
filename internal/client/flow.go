package client

import (
	"context"

	"github.com/myokyal/loopify/internal/wizard"
)

// Notifier receives the transient user-visible notifications the flow
// produces. Implementations render toasts, CLI output, and the like.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// SubmitFromReview submits the wizard's snapshot and completes the flow:
// on success the label is saved into downloadDir and the wizard moves to
// Confirmed; on failure the wizard stays on Review so the user can retry
// manually. Returns the saved label path on success.
func SubmitFromReview(ctx context.Context, w *wizard.Wizard, s Submitter, downloadDir string, n Notifier) (string, error) {
	if w.Step() != wizard.StepReview {
		n.Error("Nothing to submit yet.")
		return "", &SubmitError{Message: "wizard is not on the review step"}
	}

	lbl, err := s.Submit(ctx, w.Snapshot())
	if err != nil {
		n.Error("Error processing return. Please try again.")
		return "", err
	}

	path, err := lbl.Save(downloadDir)
	if err != nil {
		n.Error("Error processing return. Please try again.")
		return "", err
	}

	if err := w.Confirm(); err != nil {
		return "", err
	}
	n.Success("Success! Your label has been downloaded.")
	return path, nil
}
