package services

import (
	"context"
	"errors"
	"sync"

	"medconsult/internal/events"
	"medconsult/internal/gateway"
	"medconsult/internal/models"
)

const (
	msgLoadFailed  = "Failed to load consultation. Please try again."
	msgEndFailed   = "Failed to end consultation. Please try again."
	msgStartFailed = "Failed to start consultation"
)

// SummaryRoute is the page the frontend navigates to once a consultation ends.
const SummaryRoute = "/consultation/summary/"

// ConsultationGateway is the part of the backend client the consultation
// page uses.
type ConsultationGateway interface {
	Status(ctx context.Context, id string) (*models.Consultation, error)
	Summary(ctx context.Context, id string) (models.Summary, error)
	Start(ctx context.Context, details models.UserDetails) (*models.StartResult, error)
}

type ConsultationService interface {
	Startup(ctx context.Context)
	Load(id string) (*models.Consultation, error)
	End(id string) (models.Summary, error)
	Start(details models.UserDetails) (*models.StartResult, error)
	AddChatMessage(msg models.ChatMessage) models.ConsultationState
	SetDiagnosis(diagnosis models.Summary) models.ConsultationState
	Clear() models.ConsultationState
	State() models.ConsultationState
}

type consultationService struct {
	gateway  ConsultationGateway
	settings SettingsService
	context  context.Context

	mu    sync.Mutex
	state models.ConsultationState
	// loads counts Load calls; only the latest one may write its result.
	loads uint64
}

func NewConsultationService(gw ConsultationGateway, settings SettingsService) ConsultationService {
	return &consultationService{
		gateway:  gw,
		settings: settings,
		state:    initialConsultationState(),
	}
}

func initialConsultationState() models.ConsultationState {
	return models.ConsultationState{ChatHistory: []models.ChatMessage{}}
}

func (s *consultationService) Startup(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.context = ctx
}

// Load fetches the consultation and folds its language preferences into the
// session settings. On failure the stored consultation is cleared and Error
// holds the message to show.
func (s *consultationService) Load(id string) (*models.Consultation, error) {
	s.mu.Lock()
	s.loads++
	seq := s.loads
	s.state.Loading = true
	s.state.Error = ""
	s.mu.Unlock()
	s.publish()

	ctx := events.WithSession(s.ctx(), id)
	consultation, err := s.gateway.Status(ctx, id)

	s.mu.Lock()
	if seq != s.loads {
		s.mu.Unlock()
		return consultation, err
	}
	s.state.Loading = false
	if err != nil {
		s.state.Consultation = nil
		s.state.Error = userMessage(err, msgLoadFailed)
		s.mu.Unlock()
		s.publish()
		return nil, err
	}
	s.state.Consultation = consultation
	s.state.ConsultationID = consultation.ID
	details := consultation.UserDetails
	s.state.UserDetails = &details
	s.mu.Unlock()

	if consultation.LanguagePreferences != nil && s.settings != nil {
		s.settings.ApplyRemote(consultation.LanguagePreferences)
	}
	s.publish()
	return consultation, nil
}

// End fetches the closing summary and sends the frontend to the summary page.
func (s *consultationService) End(id string) (models.Summary, error) {
	ctx := events.WithSession(s.ctx(), id)
	summary, err := s.gateway.Summary(ctx, id)
	if err != nil {
		s.mu.Lock()
		s.state.Error = msgEndFailed
		s.mu.Unlock()
		s.publish()
		return nil, err
	}

	s.mu.Lock()
	s.state.Error = ""
	s.mu.Unlock()
	s.publish()

	events.Emit(ctx, events.Navigate, events.NewInfo(SummaryRoute+id).WithPayload(SummaryRoute+id))
	return summary, nil
}

func (s *consultationService) Start(details models.UserDetails) (*models.StartResult, error) {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Error = ""
	s.mu.Unlock()
	s.publish()

	result, err := s.gateway.Start(s.ctx(), details)

	s.mu.Lock()
	s.state.Loading = false
	if err != nil {
		s.state.Error = userMessage(err, msgStartFailed)
		s.mu.Unlock()
		s.publish()
		return nil, err
	}
	s.state.ConsultationID = result.ConsultationID
	stored := details
	if result.UserDetails.FirstName != "" || result.UserDetails.LastName != "" {
		stored = result.UserDetails
	}
	s.state.UserDetails = &stored
	s.mu.Unlock()
	s.publish()
	return result, nil
}

func (s *consultationService) AddChatMessage(msg models.ChatMessage) models.ConsultationState {
	s.mu.Lock()
	s.state.ChatHistory = append(s.state.ChatHistory, msg)
	s.mu.Unlock()
	return s.publish()
}

func (s *consultationService) SetDiagnosis(diagnosis models.Summary) models.ConsultationState {
	s.mu.Lock()
	s.state.Diagnosis = diagnosis
	s.mu.Unlock()
	return s.publish()
}

// Clear resets the page state and abandons any Load still in flight.
func (s *consultationService) Clear() models.ConsultationState {
	s.mu.Lock()
	s.loads++
	s.state = initialConsultationState()
	s.mu.Unlock()
	return s.publish()
}

func (s *consultationService) State() models.ConsultationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *consultationService) snapshot() models.ConsultationState {
	out := s.state
	out.ChatHistory = append([]models.ChatMessage{}, s.state.ChatHistory...)
	if s.state.Consultation != nil {
		c := *s.state.Consultation
		out.Consultation = &c
	}
	if s.state.UserDetails != nil {
		d := *s.state.UserDetails
		out.UserDetails = &d
	}
	return out
}

func (s *consultationService) publish() models.ConsultationState {
	s.mu.Lock()
	state := s.snapshot()
	ctx := events.WithSession(s.ctx(), state.ConsultationID)
	s.mu.Unlock()

	events.Emit(ctx, events.ConsultationState, events.NewInfo("consultation state").WithPayload(state))
	return state
}

func (s *consultationService) ctx() context.Context {
	if s.context == nil {
		return context.Background()
	}
	return s.context
}

// userMessage is the text shown for a failed backend call: the server detail
// when there is one, otherwise fallback.
func userMessage(err error, fallback string) string {
	var fe *gateway.FetchError
	if errors.As(err, &fe) {
		return fe.Message(fallback)
	}
	return fallback
}
