package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"medconsult/internal/events"
	"medconsult/internal/models"
)

const (
	msgSummaryFailed  = "Failed to load diagnostic summary"
	msgReportFailed   = "Failed to download report"
	msgFeedbackFailed = "Failed to submit feedback"
)

type ReportGateway interface {
	DiagnosticSummary(ctx context.Context, id string) (models.Summary, error)
	Report(ctx context.Context, id, lang string) ([]byte, string, error)
	SubmitFeedback(ctx context.Context, feedback models.Feedback) (*models.FeedbackAck, error)
}

// SaveDialog asks the user where to write a file and returns the chosen path,
// or "" when the dialog was cancelled.
type SaveDialog func(ctx context.Context, defaultName string) (string, error)

func runtimeSaveDialog(ctx context.Context, defaultName string) (string, error) {
	return runtime.SaveFileDialog(ctx, runtime.SaveDialogOptions{
		Title:           "Save consultation report",
		DefaultFilename: defaultName,
		Filters: []runtime.FileFilter{
			{DisplayName: "PDF documents (*.pdf)", Pattern: "*.pdf"},
		},
	})
}

type ReportService struct {
	gateway  ReportGateway
	settings SettingsService
	dialog   SaveDialog
	context  context.Context
}

// NewReportService builds the service. A nil dialog uses the native save
// dialog, which needs the Wails context passed to Startup.
func NewReportService(gw ReportGateway, settings SettingsService, dialog SaveDialog) *ReportService {
	if dialog == nil {
		dialog = runtimeSaveDialog
	}
	return &ReportService{gateway: gw, settings: settings, dialog: dialog}
}

func (s *ReportService) Startup(ctx context.Context) {
	s.context = ctx
}

func (s *ReportService) DiagnosticSummary(id string) (models.Summary, error) {
	summary, err := s.gateway.DiagnosticSummary(events.WithSession(s.ctx(), id), id)
	if err != nil {
		return nil, errors.New(userMessage(err, msgSummaryFailed))
	}
	return summary, nil
}

// Report downloads the report document in the preferred language.
func (s *ReportService) Report(id string) ([]byte, error) {
	lang := s.settings.Get().PreferredLanguage
	data, _, err := s.gateway.Report(events.WithSession(s.ctx(), id), id, lang)
	if err != nil {
		return nil, errors.New(userMessage(err, msgReportFailed))
	}
	return data, nil
}

// SaveReport downloads the report and writes it to path. An empty path asks
// the user for one; the returned path is empty when they cancel.
func (s *ReportService) SaveReport(id, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		chosen, err := s.dialog(s.ctx(), reportFileName(id))
		if err != nil {
			return "", fmt.Errorf("choose report location: %w", err)
		}
		if chosen == "" {
			return "", nil
		}
		path = chosen
	}

	data, err := s.Report(id)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	ctx := events.WithSession(s.ctx(), id)
	events.Emit(ctx, events.Notification, events.NewSuccess("Report saved to "+path))
	return path, nil
}

func (s *ReportService) SubmitFeedback(feedback models.Feedback) (*models.FeedbackAck, error) {
	if strings.TrimSpace(feedback.ConsultationID) == "" {
		return nil, errors.New("consultation id is required")
	}
	if feedback.Rating < 1 || feedback.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}
	ack, err := s.gateway.SubmitFeedback(events.WithSession(s.ctx(), feedback.ConsultationID), feedback)
	if err != nil {
		return nil, errors.New(userMessage(err, msgFeedbackFailed))
	}
	return ack, nil
}

func reportFileName(id string) string {
	return "consultation-report-" + id + ".pdf"
}

func (s *ReportService) ctx() context.Context {
	if s.context == nil {
		return context.Background()
	}
	return s.context
}
