// Package webhook delivers sign-up submissions to the configured endpoint.
package webhook

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sheenazien8/vortex"
)

// Submission is the wire payload. Values are sent exactly as the user typed
// them; age stays a raw string.
type Submission struct {
	Name  string `json:"name"`
	Age   string `json:"age"`
	City  string `json:"city"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// StatusError is a non-2xx response from the endpoint. The body is kept as
// plain text for diagnostics only.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook returned status %d: %s", e.Code, e.Body)
}

type Client struct {
	url string
}

func NewClient(url string) *Client {
	return &Client{url: url}
}

// URL returns the configured endpoint.
func (c *Client) URL() string {
	return c.url
}

// Send POSTs the submission as JSON. A response outside the 2xx range is
// returned as a StatusError carrying the status code and body text.
func (c *Client) Send(_ context.Context, sub Submission) error {
	apiClient := vortex.New(vortex.Opt{
		BaseURL: c.url,
	})

	var statusErr *StatusError

	_, err := apiClient.
		SetHeaders(map[string]string{
			"Content-Type": "application/json",
		}).
		Stream(func(resp *http.Response) error {
			if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
				body, readErr := io.ReadAll(resp.Body)
				if readErr != nil {
					body = nil
				}
				statusErr = &StatusError{Code: resp.StatusCode, Body: string(body)}
				return nil
			}

			// Drain so the connection can be reused.
			_, _ = io.Copy(io.Discard, resp.Body)

			return nil
		}).
		Post("/", sub)
	if err != nil {
		return fmt.Errorf("failed to send submission: %v", err)
	}
	if statusErr != nil {
		return statusErr
	}

	return nil
}
