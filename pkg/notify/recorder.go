package notify

// Notification is a single recorded Notify call.
type Notification struct {
	Title    string
	Message  string
	Severity Severity
}

// Recorder captures notifications instead of printing them.
type Recorder struct {
	Notifications []Notification
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(title, message string, severity Severity) {
	r.Notifications = append(r.Notifications, Notification{
		Title:    title,
		Message:  message,
		Severity: severity,
	})
}

// Last returns the most recent notification, or nil if none were recorded.
func (r *Recorder) Last() *Notification {
	if len(r.Notifications) == 0 {
		return nil
	}
	return &r.Notifications[len(r.Notifications)-1]
}
