package mocks

import (
	"context"
	"errors"

	"medconsult/internal/gateway"
	"medconsult/internal/models"
)

var errNotConfigured = errors.New("mock: not configured")

// GatewayMock stands in for the backend client in service tests.
type GatewayMock struct {
	StatusFunc            func(ctx context.Context, id string) (*models.Consultation, error)
	SummaryFunc           func(ctx context.Context, id string) (models.Summary, error)
	StartFunc             func(ctx context.Context, details models.UserDetails) (*models.StartResult, error)
	DiagnosticSummaryFunc func(ctx context.Context, id string) (models.Summary, error)
	ReportFunc            func(ctx context.Context, id, lang string) ([]byte, string, error)
	SubmitFeedbackFunc    func(ctx context.Context, feedback models.Feedback) (*models.FeedbackAck, error)
	SpeechToTextFunc      func(ctx context.Context, audio gateway.Audio, opts gateway.STTOptions) (*models.SpeechToTextResult, error)
	TextToSpeechFunc      func(ctx context.Context, text string, opts gateway.TTSOptions) (*models.TextToSpeechResult, error)
	TranslateSpeechFunc   func(ctx context.Context, audio gateway.Audio, opts gateway.TranslateOptions) (*models.TranslateSpeechResult, error)
}

func (m *GatewayMock) Status(ctx context.Context, id string) (*models.Consultation, error) {
	if m.StatusFunc != nil {
		return m.StatusFunc(ctx, id)
	}
	return &models.Consultation{ID: id}, nil
}

func (m *GatewayMock) Summary(ctx context.Context, id string) (models.Summary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, id)
	}
	return models.Summary{}, nil
}

func (m *GatewayMock) Start(ctx context.Context, details models.UserDetails) (*models.StartResult, error) {
	if m.StartFunc != nil {
		return m.StartFunc(ctx, details)
	}
	return nil, errNotConfigured
}

func (m *GatewayMock) DiagnosticSummary(ctx context.Context, id string) (models.Summary, error) {
	if m.DiagnosticSummaryFunc != nil {
		return m.DiagnosticSummaryFunc(ctx, id)
	}
	return models.Summary{}, nil
}

func (m *GatewayMock) Report(ctx context.Context, id, lang string) ([]byte, string, error) {
	if m.ReportFunc != nil {
		return m.ReportFunc(ctx, id, lang)
	}
	return nil, "", errNotConfigured
}

func (m *GatewayMock) SubmitFeedback(ctx context.Context, feedback models.Feedback) (*models.FeedbackAck, error) {
	if m.SubmitFeedbackFunc != nil {
		return m.SubmitFeedbackFunc(ctx, feedback)
	}
	return &models.FeedbackAck{ConsultationID: feedback.ConsultationID, Rating: feedback.Rating}, nil
}

func (m *GatewayMock) SpeechToText(ctx context.Context, audio gateway.Audio, opts gateway.STTOptions) (*models.SpeechToTextResult, error) {
	if m.SpeechToTextFunc != nil {
		return m.SpeechToTextFunc(ctx, audio, opts)
	}
	return nil, errNotConfigured
}

func (m *GatewayMock) TextToSpeech(ctx context.Context, text string, opts gateway.TTSOptions) (*models.TextToSpeechResult, error) {
	if m.TextToSpeechFunc != nil {
		return m.TextToSpeechFunc(ctx, text, opts)
	}
	return nil, errNotConfigured
}

func (m *GatewayMock) TranslateSpeech(ctx context.Context, audio gateway.Audio, opts gateway.TranslateOptions) (*models.TranslateSpeechResult, error) {
	if m.TranslateSpeechFunc != nil {
		return m.TranslateSpeechFunc(ctx, audio, opts)
	}
	return nil, errNotConfigured
}
