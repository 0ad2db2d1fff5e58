package intake

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowternity/pkg/notify"
	"flowternity/pkg/webhook"
)

type countingSender struct {
	calls int
	err   error
}

func (s *countingSender) Send(_ context.Context, _ webhook.Submission) error {
	s.calls++
	return s.err
}

type progressRecorder struct {
	workflow        *Workflow
	starts, stops   int
	inFlightAtStart bool
}

func (p *progressRecorder) Start() {
	p.starts++
	p.inFlightAtStart = p.workflow.Submitting()
}

func (p *progressRecorder) Stop() { p.stops++ }

func TestSubmitDeliversAndResets(t *testing.T) {
	var gotBody string
	var gotContentType string
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotContentType = r.Header.Get("Content-Type")
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	recorder := notify.NewRecorder()
	workflow := NewWorkflow(webhook.NewClient(server.URL), recorder, nil)
	workflow.State = validState()

	progress := &progressRecorder{workflow: workflow}
	workflow.SetProgress(progress)

	outcome := workflow.Submit(context.Background())

	assert.Equal(t, OutcomeDelivered, outcome)
	assert.Equal(t, 1, requests)
	assert.Contains(t, gotContentType, "application/json")
	assert.JSONEq(t,
		`{"name":"Jane Doe","age":"30","city":"Springfield","phone":"555-1234","email":"jane@example.com"}`,
		gotBody)

	assert.Equal(t, State{}, workflow.State)
	assert.False(t, workflow.Submitting())

	require.NotNil(t, recorder.Last())
	assert.Equal(t, "Success!", recorder.Last().Title)
	assert.Equal(t, "Your information has been submitted successfully.", recorder.Last().Message)
	assert.Equal(t, notify.SeveritySuccess, recorder.Last().Severity)

	assert.Equal(t, 1, progress.starts)
	assert.Equal(t, 1, progress.stops)
	assert.True(t, progress.inFlightAtStart)
}

func TestSubmitServerFailureKeepsFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("server error"))
	}))
	defer server.Close()

	recorder := notify.NewRecorder()
	workflow := NewWorkflow(webhook.NewClient(server.URL), recorder, nil)
	workflow.State = validState()

	outcome := workflow.Submit(context.Background())

	assert.Equal(t, OutcomeFailed, outcome)
	assert.Equal(t, validState(), workflow.State)
	assert.False(t, workflow.Submitting())

	require.NotNil(t, recorder.Last())
	assert.Equal(t, "Submission Error", recorder.Last().Title)
	assert.Equal(t, "There was an error submitting your information. Please try again.", recorder.Last().Message)
	assert.Equal(t, notify.SeverityWarning, recorder.Last().Severity)
}

func TestSubmitTransportFailureKeepsFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	recorder := notify.NewRecorder()
	workflow := NewWorkflow(webhook.NewClient(server.URL), recorder, nil)
	workflow.State = validState()

	outcome := workflow.Submit(context.Background())

	assert.Equal(t, OutcomeFailed, outcome)
	assert.Equal(t, validState(), workflow.State)
	assert.False(t, workflow.Submitting())

	// Same generic message as a server-reported failure.
	require.NotNil(t, recorder.Last())
	assert.Equal(t, "Submission Error", recorder.Last().Title)
}

func TestSubmitValidationFailureSkipsNetwork(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*State)
		wantTitle string
		wantMsg   string
	}{
		{
			name:      "missing field",
			mutate:    func(s *State) { s.City = "  " },
			wantTitle: "Missing Information",
			wantMsg:   "Please fill in all required fields.",
		},
		{
			name:      "invalid email",
			mutate:    func(s *State) { s.Email = "jane.example.com" },
			wantTitle: "Invalid Email",
			wantMsg:   "Please enter a valid email address.",
		},
		{
			name:      "invalid age",
			mutate:    func(s *State) { s.Age = "151" },
			wantTitle: "Invalid Age",
			wantMsg:   "Please enter a valid age.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &countingSender{}
			recorder := notify.NewRecorder()
			workflow := NewWorkflow(sender, recorder, nil)
			workflow.State = validState()
			tt.mutate(&workflow.State)

			outcome := workflow.Submit(context.Background())

			assert.Equal(t, OutcomeInvalid, outcome)
			assert.Equal(t, 0, sender.calls)
			assert.False(t, workflow.Submitting())

			require.NotNil(t, recorder.Last())
			assert.Equal(t, tt.wantTitle, recorder.Last().Title)
			assert.Equal(t, tt.wantMsg, recorder.Last().Message)
			assert.Equal(t, notify.SeverityWarning, recorder.Last().Severity)
		})
	}
}

func TestSubmitFlagClearedOnSenderError(t *testing.T) {
	sender := &countingSender{err: context.DeadlineExceeded}
	recorder := notify.NewRecorder()
	workflow := NewWorkflow(sender, recorder, nil)
	workflow.State = validState()

	outcome := workflow.Submit(context.Background())

	assert.Equal(t, OutcomeFailed, outcome)
	assert.False(t, workflow.Submitting())
}
