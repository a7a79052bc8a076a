package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"medconsult/internal/events"
	"medconsult/internal/gateway"
)

// ErrChannelClosed is returned when sending without an open channel.
var ErrChannelClosed = errors.New("no open consultation channel")

// ChannelConn is a live consultation channel.
type ChannelConn = gateway.Conn

type ChannelDialer interface {
	Dial(ctx context.Context, id string, opts gateway.ChannelOptions) (ChannelConn, error)
}

// GatewayDialer opens channels through the backend client.
type GatewayDialer struct {
	Client *gateway.Client
}

func (d GatewayDialer) Dial(ctx context.Context, id string, opts gateway.ChannelOptions) (ChannelConn, error) {
	ch, err := d.Client.Connect(ctx, id, opts)
	if err != nil {
		return nil, err
	}
	return ch, nil
}

// ChannelClosed is the payload of a channel:close event.
type ChannelClosed struct {
	Code   int    `json:"code"`
	Reason string `json:"reason,omitempty"`
}

// EventChannelService keeps at most one consultation channel open and
// forwards its traffic to the frontend as channel:* events.
type EventChannelService struct {
	dialer   ChannelDialer
	settings SettingsService
	context  context.Context

	// openMu serializes Open so a channel dialed by one call is always closed
	// by the next.
	openMu sync.Mutex

	mu     sync.Mutex
	conn   ChannelConn
	id     string
	cancel context.CancelFunc
}

func NewEventChannelService(dialer ChannelDialer, settings SettingsService) *EventChannelService {
	return &EventChannelService{dialer: dialer, settings: settings}
}

func (e *EventChannelService) Startup(ctx context.Context) {
	e.context = ctx
}

// Open connects to the channel of consultation id. An already open channel is
// closed first. Concurrent calls run one after another.
func (e *EventChannelService) Open(id string) error {
	e.openMu.Lock()
	defer e.openMu.Unlock()

	e.Close()

	current := e.settings.Get()
	autoDetect := current.AutoDetectLanguage
	ctx, cancel := context.WithCancel(events.WithSession(e.ctx(), id))

	var conn ChannelConn
	opts := gateway.ChannelOptions{
		Language:   current.PreferredLanguage,
		AutoDetect: &autoDetect,
		VoicePreferences: &gateway.VoicePreferences{
			Enabled: current.Voice.Enabled,
			Gender:  current.Voice.Gender,
		},
		OnOpen: func() {
			events.Emit(ctx, events.ChannelOpen, events.NewInfo("Connected"))
		},
		OnMessage: func(data []byte) {
			events.Emit(ctx, events.ChannelMessage, events.NewInfo("message").WithPayload(decodeFrame(data)))
		},
		OnError: func(err error) {
			log.Printf("channel %s: %v", id, err)
			events.Emit(ctx, events.ChannelError, events.NewError(err.Error()))
		},
		OnClose: func(code int, reason string) {
			e.forget(&conn)
			cancel()
			events.Emit(ctx, events.ChannelClose, events.NewInfo("Disconnected").WithPayload(ChannelClosed{Code: code, Reason: reason}))
		},
	}

	c, err := e.dialer.Dial(ctx, id, opts)
	if err != nil {
		cancel()
		events.Emit(ctx, events.ChannelError, events.NewError(userMessage(err, "Failed to connect to consultation")))
		return err
	}

	e.mu.Lock()
	conn = c
	e.conn, e.id, e.cancel = c, id, cancel
	e.mu.Unlock()

	// The connection may have ended before it was recorded.
	select {
	case <-c.Done():
		e.forget(&conn)
	default:
	}
	return nil
}

// Send writes message as a JSON frame on the open channel.
func (e *EventChannelService) Send(message map[string]any) error {
	e.mu.Lock()
	conn := e.conn
	e.mu.Unlock()
	if conn == nil {
		return ErrChannelClosed
	}
	if err := conn.Send(message); err != nil {
		if errors.Is(err, gateway.ErrChannelClosed) {
			return ErrChannelClosed
		}
		return err
	}
	return nil
}

func (e *EventChannelService) Close() {
	e.mu.Lock()
	conn, cancel := e.conn, e.cancel
	e.conn, e.id, e.cancel = nil, "", nil
	e.mu.Unlock()

	if conn == nil {
		return
	}
	if err := conn.Close(); err != nil {
		log.Printf("channel: close: %v", err)
	}
	if cancel != nil {
		cancel()
	}
}

func (e *EventChannelService) IsOpen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.conn != nil
}

// ConsultationID returns the id of the open channel, or "".
func (e *EventChannelService) ConsultationID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.id
}

// forget drops the recorded channel if it is still *conn. conn is read under
// the lock because Open assigns it after dialing.
func (e *EventChannelService) forget(conn *ChannelConn) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if *conn != nil && e.conn == *conn {
		e.conn, e.id, e.cancel = nil, "", nil
	}
}

func (e *EventChannelService) ctx() context.Context {
	if e.context == nil {
		return context.Background()
	}
	return e.context
}

// decodeFrame passes JSON frames through as values and anything else as text.
func decodeFrame(data []byte) any {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return string(data)
	}
	return v
}
