package unit_tests

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medconsult/internal/events"
	"medconsult/internal/gateway"
	"medconsult/internal/models"
	"medconsult/internal/repositories"
	"medconsult/internal/services"
	"medconsult/internal/tests/mocks"
)

func newConsultationService(t *testing.T, gw *mocks.GatewayMock) (services.ConsultationService, services.SettingsService) {
	t.Helper()
	settingsSvc := startedSettings(t, repositories.NewMemoryPreferenceRepository())
	svc := services.NewConsultationService(gw, settingsSvc)
	svc.Startup(context.Background())
	return svc, settingsSvc
}

func TestConsultationService_InitialState(t *testing.T) {
	svc, _ := newConsultationService(t, &mocks.GatewayMock{})
	state := svc.State()

	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)
	assert.Nil(t, state.Consultation)
	assert.NotNil(t, state.ChatHistory)
	assert.Empty(t, state.ChatHistory)
}

func TestConsultationService_Load_Success(t *testing.T) {
	rec := recordEvents(t)
	var loadingDuringFetch bool
	var svc services.ConsultationService
	gw := &mocks.GatewayMock{
		StatusFunc: func(ctx context.Context, id string) (*models.Consultation, error) {
			loadingDuringFetch = svc.State().Loading
			assert.Equal(t, "c-1", events.SessionFromContext(ctx))
			return &models.Consultation{
				ID:          id,
				UserDetails: models.UserDetails{FirstName: "Asha", LastName: "Rao"},
			}, nil
		},
	}
	svc, _ = newConsultationService(t, gw)

	got, err := svc.Load("c-1")
	require.NoError(t, err)
	assert.Equal(t, "c-1", got.ID)
	assert.True(t, loadingDuringFetch)

	state := svc.State()
	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)
	require.NotNil(t, state.Consultation)
	assert.Equal(t, "c-1", state.ConsultationID)
	require.NotNil(t, state.UserDetails)
	assert.Equal(t, "Asha", state.UserDetails.FirstName)

	published := rec.Named(events.ConsultationState)
	require.GreaterOrEqual(t, len(published), 2)
	assert.True(t, published[0].Payload.(models.ConsultationState).Loading)
	assert.False(t, published[len(published)-1].Payload.(models.ConsultationState).Loading)
}

func TestConsultationService_Load_OverlaysRemoteLanguagePreferences(t *testing.T) {
	gw := &mocks.GatewayMock{
		StatusFunc: func(ctx context.Context, id string) (*models.Consultation, error) {
			return &models.Consultation{
				ID:                  id,
				LanguagePreferences: &models.LanguagePreferences{Preferred: ptr("ta"), Interface: ptr("ur")},
			}, nil
		},
	}
	svc, settingsSvc := newConsultationService(t, gw)
	_, err := settingsSvc.SetPreferredLanguage("hi")
	require.NoError(t, err)

	_, err = svc.Load("c-2")
	require.NoError(t, err)

	current := settingsSvc.Get()
	assert.Equal(t, "ta", current.PreferredLanguage)
	assert.Equal(t, "ur", current.InterfaceLanguage)
}

func TestConsultationService_Load_FailureWithDetail(t *testing.T) {
	gw := &mocks.GatewayMock{
		StatusFunc: func(ctx context.Context, id string) (*models.Consultation, error) {
			return nil, &gateway.FetchError{Op: "consultation status", StatusCode: http.StatusNotFound, Detail: "Consultation not found"}
		},
	}
	svc, _ := newConsultationService(t, gw)

	_, err := svc.Load("missing")
	var fe *gateway.FetchError
	require.ErrorAs(t, err, &fe)

	state := svc.State()
	assert.False(t, state.Loading)
	assert.Nil(t, state.Consultation)
	assert.Equal(t, "Consultation not found", state.Error)
}

func TestConsultationService_Load_FailureWithoutDetailUsesFallback(t *testing.T) {
	calls := 0
	gw := &mocks.GatewayMock{
		StatusFunc: func(ctx context.Context, id string) (*models.Consultation, error) {
			calls++
			if calls == 1 {
				return &models.Consultation{ID: id}, nil
			}
			return nil, errors.New("connection refused")
		},
	}
	svc, _ := newConsultationService(t, gw)

	_, err := svc.Load("c-3")
	require.NoError(t, err)
	require.NotNil(t, svc.State().Consultation)

	_, err = svc.Load("c-3")
	require.Error(t, err)

	state := svc.State()
	assert.False(t, state.Loading)
	assert.Nil(t, state.Consultation)
	assert.Equal(t, "Failed to load consultation. Please try again.", state.Error)
}

func TestConsultationService_Load_ClearsPreviousError(t *testing.T) {
	fail := true
	gw := &mocks.GatewayMock{
		StatusFunc: func(ctx context.Context, id string) (*models.Consultation, error) {
			if fail {
				return nil, errors.New("boom")
			}
			return &models.Consultation{ID: id}, nil
		},
	}
	svc, _ := newConsultationService(t, gw)

	_, _ = svc.Load("c-4")
	require.NotEmpty(t, svc.State().Error)

	fail = false
	_, err := svc.Load("c-4")
	require.NoError(t, err)
	assert.Empty(t, svc.State().Error)
}

func TestConsultationService_End_NavigatesToSummary(t *testing.T) {
	rec := recordEvents(t)
	gw := &mocks.GatewayMock{
		SummaryFunc: func(ctx context.Context, id string) (models.Summary, error) {
			return models.Summary{"diagnosis": "flu"}, nil
		},
	}
	svc, _ := newConsultationService(t, gw)

	summary, err := svc.End("c-5")
	require.NoError(t, err)
	assert.Equal(t, "flu", summary["diagnosis"])

	nav := rec.Named(events.Navigate)
	require.Len(t, nav, 1)
	assert.Equal(t, "/consultation/summary/c-5", nav[0].Payload)
	assert.Equal(t, "c-5", nav[0].SessionKey)
}

func TestConsultationService_End_FailureSetsFixedMessage(t *testing.T) {
	rec := recordEvents(t)
	gw := &mocks.GatewayMock{
		StatusFunc: func(ctx context.Context, id string) (*models.Consultation, error) {
			return &models.Consultation{ID: id}, nil
		},
		SummaryFunc: func(ctx context.Context, id string) (models.Summary, error) {
			return nil, &gateway.FetchError{Op: "consultation summary", StatusCode: 500, Detail: "summary generation failed"}
		},
	}
	svc, _ := newConsultationService(t, gw)
	_, err := svc.Load("c-6")
	require.NoError(t, err)

	_, err = svc.End("c-6")
	require.Error(t, err)

	state := svc.State()
	assert.Equal(t, "Failed to end consultation. Please try again.", state.Error)
	assert.NotNil(t, state.Consultation)
	assert.Empty(t, rec.Named(events.Navigate))
}

func TestConsultationService_Start(t *testing.T) {
	gw := &mocks.GatewayMock{
		StartFunc: func(ctx context.Context, details models.UserDetails) (*models.StartResult, error) {
			return &models.StartResult{ConsultationID: "new-1"}, nil
		},
	}
	svc, _ := newConsultationService(t, gw)

	res, err := svc.Start(models.UserDetails{FirstName: "Ravi", Age: 40})
	require.NoError(t, err)
	assert.Equal(t, "new-1", res.ConsultationID)

	state := svc.State()
	assert.Equal(t, "new-1", state.ConsultationID)
	require.NotNil(t, state.UserDetails)
	assert.Equal(t, "Ravi", state.UserDetails.FirstName)
	assert.False(t, state.Loading)
}

func TestConsultationService_Start_FailureMessages(t *testing.T) {
	gw := &mocks.GatewayMock{
		StartFunc: func(ctx context.Context, details models.UserDetails) (*models.StartResult, error) {
			return nil, errors.New("dial tcp: refused")
		},
	}
	svc, _ := newConsultationService(t, gw)
	_, err := svc.Start(models.UserDetails{})
	require.Error(t, err)
	assert.Equal(t, "Failed to start consultation", svc.State().Error)

	gw.StartFunc = func(ctx context.Context, details models.UserDetails) (*models.StartResult, error) {
		return nil, &gateway.FetchError{StatusCode: 422, Detail: "Age is required"}
	}
	_, err = svc.Start(models.UserDetails{})
	require.Error(t, err)
	assert.Equal(t, "Age is required", svc.State().Error)
}

func TestConsultationService_ChatDiagnosisAndClear(t *testing.T) {
	svc, _ := newConsultationService(t, &mocks.GatewayMock{})

	svc.AddChatMessage(models.ChatMessage{Role: "user", Content: "I have a headache"})
	state := svc.AddChatMessage(models.ChatMessage{Role: "assistant", Content: "Since when?"})
	require.Len(t, state.ChatHistory, 2)
	assert.Equal(t, "Since when?", state.ChatHistory[1].Content)

	state = svc.SetDiagnosis(models.Summary{"condition": "tension headache"})
	assert.Equal(t, "tension headache", state.Diagnosis["condition"])

	// Snapshots are copies.
	state.ChatHistory[0].Content = "changed"
	assert.Equal(t, "I have a headache", svc.State().ChatHistory[0].Content)

	state = svc.Clear()
	assert.Empty(t, state.ChatHistory)
	assert.Nil(t, state.Diagnosis)
	assert.Empty(t, state.ConsultationID)
}

func TestConsultationService_ClearDiscardsLoadInFlight(t *testing.T) {
	var svc services.ConsultationService
	gw := &mocks.GatewayMock{
		StatusFunc: func(ctx context.Context, id string) (*models.Consultation, error) {
			svc.Clear()
			return &models.Consultation{ID: id}, nil
		},
	}
	svc, _ = newConsultationService(t, gw)

	_, err := svc.Load("c-7")
	require.NoError(t, err)

	state := svc.State()
	assert.Nil(t, state.Consultation)
	assert.False(t, state.Loading)
}

func TestConsultationService_End_SuccessClearsPreviousError(t *testing.T) {
	gw := &mocks.GatewayMock{
		StatusFunc: func(ctx context.Context, id string) (*models.Consultation, error) {
			return nil, errors.New("boom")
		},
		SummaryFunc: func(ctx context.Context, id string) (models.Summary, error) {
			return models.Summary{"diagnosis": "flu"}, nil
		},
	}
	svc, _ := newConsultationService(t, gw)

	_, _ = svc.Load("c-9")
	require.NotEmpty(t, svc.State().Error)

	_, err := svc.End("c-9")
	require.NoError(t, err)
	assert.Empty(t, svc.State().Error)
}
