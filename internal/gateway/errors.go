package gateway

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FetchError reports a failed call to the consultation backend: a transport
// error, a non-2xx status or a response body that could not be decoded.
type FetchError struct {
	Op         string
	StatusCode int
	// Detail is the server supplied error text, when the body carried one.
	Detail string
	Err    error
}

func (e *FetchError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *FetchError) Unwrap() error { return e.Err }

// Message returns the server detail, or fallback when there is none.
func (e *FetchError) Message(fallback string) string {
	if e != nil && strings.TrimSpace(e.Detail) != "" {
		return e.Detail
	}
	return fallback
}

// errorDetail pulls the "detail" text out of an error body. The backend sends
// either a string or an object with an "error" field; request validation
// failures carry a list, which is not surfaced.
func errorDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err == nil {
		return strings.TrimSpace(detail)
	}

	var obj struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(payload.Detail, &obj); err == nil {
		return strings.TrimSpace(obj.Error)
	}
	return ""
}
