package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"medconsult/internal/models"
)

var errMissingID = errors.New("consultation id is required")

func consultationPath(prefix, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", errMissingID
	}
	return prefix + url.PathEscape(id), nil
}

// Status fetches the consultation record.
func (c *Client) Status(ctx context.Context, id string) (*models.Consultation, error) {
	const op = "consultation status"
	path, err := consultationPath("/api/consultation/status/", id)
	if err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}
	var out models.Consultation
	if err := c.getJSON(ctx, op, path, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		out.ID = strings.TrimSpace(id)
	}
	return &out, nil
}

// Summary fetches the end-of-consultation summary.
func (c *Client) Summary(ctx context.Context, id string) (models.Summary, error) {
	const op = "consultation summary"
	path, err := consultationPath("/api/consultation/summary/", id)
	if err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}
	var out models.Summary
	if err := c.getJSON(ctx, op, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DiagnosticSummary fetches the diagnosis shown on the summary page.
func (c *Client) DiagnosticSummary(ctx context.Context, id string) (models.Summary, error) {
	const op = "diagnostic summary"
	path, err := consultationPath("/api/diagnostic/summary/", id)
	if err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}
	var out models.Summary
	if err := c.getJSON(ctx, op, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Start creates a consultation for the given patient.
func (c *Client) Start(ctx context.Context, details models.UserDetails) (*models.StartResult, error) {
	const op = "start consultation"
	var out models.StartResult
	if err := c.postJSON(ctx, op, "/api/consultation/start", details, &out); err != nil {
		return nil, err
	}
	if out.ConsultationID == "" {
		return nil, &FetchError{Op: op, Err: errors.New("response has no consultationId")}
	}
	return &out, nil
}

// Report downloads the consultation report document in lang. An empty lang
// requests English.
func (c *Client) Report(ctx context.Context, id, lang string) ([]byte, string, error) {
	const op = "report"
	path, err := consultationPath("/api/report/", id)
	if err != nil {
		return nil, "", &FetchError{Op: op, Err: err}
	}
	if strings.TrimSpace(lang) == "" {
		lang = "en"
	}
	body, header, err := c.do(ctx, request{
		op:     op,
		method: http.MethodGet,
		path:   path,
		query:  url.Values{"language": {lang}},
		accept: "application/pdf, application/octet-stream",
	})
	if err != nil {
		return nil, "", err
	}
	return body, header.Get("Content-Type"), nil
}

// SubmitFeedback posts the rating form.
func (c *Client) SubmitFeedback(ctx context.Context, feedback models.Feedback) (*models.FeedbackAck, error) {
	var out models.FeedbackAck
	if err := c.postJSON(ctx, "submit feedback", "/api/feedback/submit", feedback, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
