package webhook

import (
	"fmt"
	"net/http"
)

// Payload is the body sent to the order automation webhook.
type Payload struct {
	Sheet string `json:"sheet"`
}

// Result is the webhook's reply. Either field may be absent.
type Result struct {
	Status  *string
	Message *string
}

// MissingFields names the fields the webhook left out, in display order.
func (r Result) MissingFields() []string {
	var missing []string
	if r.Status == nil {
		missing = append(missing, "status")
	}
	if r.Message == nil {
		missing = append(missing, "message")
	}
	return missing
}

// Response is the outcome of one POST. Non-2xx statuses are carried here,
// never returned as errors.
type Response struct {
	Status     string
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type DecodeError struct {
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unreadable webhook response (HTTP %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
