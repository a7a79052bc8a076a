package unit_tests

import (
	"context"
	"errors"
	"sync"
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

func newChannelService(t *testing.T, dialer *mocks.ChannelDialerMock) (*services.EventChannelService, services.SettingsService) {
	t.Helper()
	settingsSvc := startedSettings(t, repositories.NewMemoryPreferenceRepository())
	svc := services.NewEventChannelService(dialer, settingsSvc)
	svc.Startup(context.Background())
	return svc, settingsSvc
}

func TestEventChannelService_OpenUsesSettings(t *testing.T) {
	rec := recordEvents(t)
	dialer := &mocks.ChannelDialerMock{}
	svc, settingsSvc := newChannelService(t, dialer)
	_, err := settingsSvc.SetPreferredLanguage("te")
	require.NoError(t, err)
	_, err = settingsSvc.SetAutoDetectLanguage(false)
	require.NoError(t, err)
	_, err = settingsSvc.SetVoiceGender(models.VoiceMale)
	require.NoError(t, err)

	require.NoError(t, svc.Open("c-1"))
	assert.True(t, svc.IsOpen())
	assert.Equal(t, "c-1", svc.ConsultationID())

	init := gateway.NewInitMessage(dialer.Last().Opts)
	assert.Equal(t, "te", init.Preferences.Language)
	assert.False(t, init.Preferences.AutoDetect)
	assert.Equal(t, gateway.VoicePreferences{Enabled: true, Gender: models.VoiceMale}, init.Preferences.VoicePreferences)

	opened := rec.Named(events.ChannelOpen)
	require.Len(t, opened, 1)
	assert.Equal(t, "c-1", opened[0].SessionKey)
}

func TestEventChannelService_ForwardsMessagesAndClose(t *testing.T) {
	rec := recordEvents(t)
	dialer := &mocks.ChannelDialerMock{}
	svc, _ := newChannelService(t, dialer)
	require.NoError(t, svc.Open("c-2"))
	conn := dialer.Last()

	conn.Deliver([]byte(`{"type":"message","content":"How long?"}`))
	conn.Deliver([]byte("plain text"))

	msgs := rec.Named(events.ChannelMessage)
	require.Len(t, msgs, 2)
	assert.Equal(t, map[string]any{"type": "message", "content": "How long?"}, msgs[0].Payload)
	assert.Equal(t, "plain text", msgs[1].Payload)

	conn.Drop(1011, "server error")
	assert.False(t, svc.IsOpen())

	closed := rec.Named(events.ChannelClose)
	require.Len(t, closed, 1)
	assert.Equal(t, services.ChannelClosed{Code: 1011, Reason: "server error"}, closed[0].Payload)
}

func TestEventChannelService_Send(t *testing.T) {
	dialer := &mocks.ChannelDialerMock{}
	svc, _ := newChannelService(t, dialer)

	assert.ErrorIs(t, svc.Send(map[string]any{"type": "message"}), services.ErrChannelClosed)

	require.NoError(t, svc.Open("c-3"))
	require.NoError(t, svc.Send(map[string]any{"type": "message", "content": "fever"}))
	assert.Len(t, dialer.Last().Sent, 1)

	dialer.Last().Drop(1000, "")
	assert.ErrorIs(t, svc.Send(map[string]any{"type": "message"}), services.ErrChannelClosed)
}

func TestEventChannelService_ReopenClosesPrevious(t *testing.T) {
	dialer := &mocks.ChannelDialerMock{}
	svc, _ := newChannelService(t, dialer)

	require.NoError(t, svc.Open("c-4"))
	first := dialer.Last()
	require.NoError(t, svc.Open("c-5"))

	assert.True(t, first.IsClosed())
	assert.False(t, dialer.Last().IsClosed())
	assert.True(t, svc.IsOpen())
	assert.Equal(t, "c-5", svc.ConsultationID())

	svc.Close()
	assert.False(t, svc.IsOpen())
	assert.True(t, dialer.Last().IsClosed())
}

func TestEventChannelService_DialFailure(t *testing.T) {
	rec := recordEvents(t)
	dialer := &mocks.ChannelDialerMock{
		DialFunc: func(ctx context.Context, id string, opts gateway.ChannelOptions) (*mocks.ChannelConnMock, error) {
			return nil, errors.New("refused")
		},
	}
	svc, _ := newChannelService(t, dialer)

	assert.Error(t, svc.Open("c-6"))
	assert.False(t, svc.IsOpen())
	require.Len(t, rec.Named(events.ChannelError), 1)
}

func TestEventChannelService_ConcurrentOpenLeavesOneChannel(t *testing.T) {
	dialing := make(chan string, 2)
	release := make(chan struct{})
	dialer := &mocks.ChannelDialerMock{
		DialFunc: func(ctx context.Context, id string, opts gateway.ChannelOptions) (*mocks.ChannelConnMock, error) {
			dialing <- id
			<-release
			return mocks.NewChannelConnMock(opts), nil
		},
	}
	svc, _ := newChannelService(t, dialer)

	var wg sync.WaitGroup
	for _, id := range []string{"c-7", "c-8"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			assert.NoError(t, svc.Open(id))
		}(id)
	}
	<-dialing
	close(release)
	wg.Wait()

	require.Len(t, dialer.Conns, 2)
	assert.True(t, svc.IsOpen())
	svc.Close()

	assert.False(t, svc.IsOpen())
	for i, conn := range dialer.Conns {
		assert.True(t, conn.IsClosed(), "channel %d left open", i)
	}
}
