package spinner

import (
	"fmt"
	"strings"
	"time"
)

// Spinner animates an in-flight label on the current terminal line. It is the
// CLI's "Submitting..." state while a submission is running.
type Spinner struct {
	label   string
	stop    chan struct{}
	stopped chan struct{}
}

func NewSpinner(label string) *Spinner {
	return &Spinner{
		label:   label,
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

func (s *Spinner) Start() {
	go func() {
		spinChars := []string{"|", "/", "-", "\\"}
		i := 0
		for {
			select {
			case <-s.stop:
				close(s.stopped)
				return
			default:
				fmt.Printf("\r%s %s...", spinChars[i], s.label)
				i = (i + 1) % len(spinChars)
				time.Sleep(100 * time.Millisecond)
			}
		}
	}()
}

func (s *Spinner) Stop() {
	close(s.stop)
	<-s.stopped
	fmt.Printf("\r%s\r", strings.Repeat(" ", len(s.label)+5))
}
