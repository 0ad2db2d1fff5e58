// Package intake implements the Flowternity Turf sign-up workflow: hold the
// form fields, validate them, and deliver them to the configured webhook.
package intake

import (
	"context"
	"errors"
	"log/slog"

	"flowternity/pkg/notify"
	"flowternity/pkg/webhook"
)

// Sender delivers a submission to the remote endpoint.
type Sender interface {
	Send(ctx context.Context, sub webhook.Submission) error
}

// Progress is toggled while a submission is in flight, e.g. a spinner or a
// disabled submit button.
type Progress interface {
	Start()
	Stop()
}

type noProgress struct{}

func (noProgress) Start() {}
func (noProgress) Stop()  {}

// Outcome is the result of one Submit call.
type Outcome int

const (
	// OutcomeInvalid means validation failed locally; no network call was made.
	OutcomeInvalid Outcome = iota
	// OutcomeDelivered means the endpoint accepted the submission.
	OutcomeDelivered
	// OutcomeFailed means the attempt reached the network layer and failed,
	// either with a non-2xx response or a transport error.
	OutcomeFailed
)

const (
	titleMissingFields = "Missing Information"
	msgMissingFields   = "Please fill in all required fields."
	titleInvalidEmail  = "Invalid Email"
	msgInvalidEmail    = "Please enter a valid email address."
	titleInvalidAge    = "Invalid Age"
	msgInvalidAge      = "Please enter a valid age."
	titleSuccess       = "Success!"
	msgSuccess         = "Your information has been submitted successfully."
	titleSubmitError   = "Submission Error"
	msgSubmitError     = "There was an error submitting your information. Please try again."
)

// Workflow owns the form state and runs the submission cycle.
type Workflow struct {
	State State

	submitting bool
	sender     Sender
	notifier   notify.Notifier
	progress   Progress
	logger     *slog.Logger
}

func NewWorkflow(sender Sender, notifier notify.Notifier, logger *slog.Logger) *Workflow {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workflow{
		sender:   sender,
		notifier: notifier,
		progress: noProgress{},
		logger:   logger,
	}
}

// SetProgress installs an in-flight indicator. It starts when the submission
// leaves validation and stops when the network attempt concludes.
func (w *Workflow) SetProgress(p Progress) {
	if p == nil {
		p = noProgress{}
	}
	w.progress = p
}

// Submitting reports whether a submission is currently in flight. Callers
// should keep the submit trigger disabled while it returns true.
func (w *Workflow) Submitting() bool {
	return w.submitting
}

// Submission builds the wire payload from the current field values, raw and
// untrimmed.
func (w *Workflow) Submission() webhook.Submission {
	return webhook.Submission{
		Name:  w.State.Name,
		Age:   w.State.Age,
		City:  w.State.City,
		Phone: w.State.Phone,
		Email: w.State.Email,
	}
}

// Submit runs one full cycle: validate, deliver, report, reset. Validation
// failures are reported without any network call. Delivery failures collapse
// into one generic user-visible message; the distinguishing detail is only
// logged. The in-flight flag is cleared on every exit path.
func (w *Workflow) Submit(ctx context.Context) Outcome {
	if err := Validate(w.State); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			title, message := notificationFor(verr.Kind)
			w.notifier.Notify(title, message, notify.SeverityWarning)
		}
		w.logger.Debug("submission rejected locally", "error", err)
		return OutcomeInvalid
	}

	w.submitting = true
	defer func() { w.submitting = false }()

	w.progress.Start()
	err := w.sender.Send(ctx, w.Submission())
	w.progress.Stop()

	if err != nil {
		var serr *webhook.StatusError
		if errors.As(err, &serr) {
			w.logger.Error("endpoint rejected submission", "status", serr.Code, "body", serr.Body)
		} else {
			w.logger.Error("submission failed", "error", err)
		}
		w.notifier.Notify(titleSubmitError, msgSubmitError, notify.SeverityWarning)
		return OutcomeFailed
	}

	w.notifier.Notify(titleSuccess, msgSuccess, notify.SeveritySuccess)
	w.State.Reset()
	return OutcomeDelivered
}

func notificationFor(kind Kind) (title, message string) {
	switch kind {
	case InvalidEmail:
		return titleInvalidEmail, msgInvalidEmail
	case InvalidAge:
		return titleInvalidAge, msgInvalidAge
	default:
		return titleMissingFields, msgMissingFields
	}
}
