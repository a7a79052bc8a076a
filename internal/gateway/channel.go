package gateway

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"medconsult/internal/models"
)

// ErrChannelClosed is returned by Send after the channel has ended.
var ErrChannelClosed = errors.New("channel closed")

const closeGracePeriod = 2 * time.Second

// VoicePreferences is the voice part of the channel init frame.
type VoicePreferences struct {
	Enabled bool               `json:"enabled"`
	Gender  models.VoiceGender `json:"gender"`
}

// ChannelOptions configures the init frame and the event handlers. Handlers
// run on the channel's read goroutine.
type ChannelOptions struct {
	Language string
	// AutoDetect defaults to true when nil.
	AutoDetect *bool
	// VoicePreferences defaults to enabled with a female voice when nil.
	VoicePreferences *VoicePreferences

	OnOpen    func()
	OnMessage func(data []byte)
	OnError   func(err error)
	OnClose   func(code int, reason string)
}

// InitMessage is the first frame sent on every channel.
type InitMessage struct {
	Type        string          `json:"type"`
	Preferences InitPreferences `json:"preferences"`
}

type InitPreferences struct {
	Language         string           `json:"language"`
	AutoDetect       bool             `json:"autoDetect"`
	VoicePreferences VoicePreferences `json:"voicePreferences"`
}

// NewInitMessage builds the init frame, filling defaults for unset options.
func NewInitMessage(opts ChannelOptions) InitMessage {
	autoDetect := true
	if opts.AutoDetect != nil {
		autoDetect = *opts.AutoDetect
	}
	voice := VoicePreferences{Enabled: true, Gender: models.VoiceFemale}
	if opts.VoicePreferences != nil {
		voice = *opts.VoicePreferences
	}
	return InitMessage{
		Type: "init",
		Preferences: InitPreferences{
			Language:         orDefault(opts.Language, "en"),
			AutoDetect:       autoDetect,
			VoicePreferences: voice,
		},
	}
}

// Conn is what callers need from a live channel.
type Conn interface {
	Send(v any) error
	Close() error
	Done() <-chan struct{}
}

var _ Conn = (*Channel)(nil)

// Channel is one live websocket connection for a consultation. It does not
// reconnect; once Done is closed the caller has to Connect again.
type Channel struct {
	conn    *websocket.Conn
	opts    ChannelOptions
	writeMu sync.Mutex
	closing atomic.Bool
	once    sync.Once
	done    chan struct{}
}

// Connect opens the event channel for consultation id and sends the init frame.
func (c *Client) Connect(ctx context.Context, id string, opts ChannelOptions) (*Channel, error) {
	const op = "open channel"
	path, err := consultationPath("/ws/", id)
	if err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}

	header := http.Header{}
	if key := c.apiKey(); key != "" {
		header.Set("Authorization", "Bearer "+key)
	}

	conn, resp, err := c.dialer.DialContext(ctx, c.wsURL+path, header)
	if err != nil {
		fe := &FetchError{Op: op, Err: err}
		if resp != nil {
			fe.StatusCode = resp.StatusCode
			resp.Body.Close()
		}
		return nil, fe
	}

	ch := &Channel{conn: conn, opts: opts, done: make(chan struct{})}
	if err := ch.Send(NewInitMessage(opts)); err != nil {
		conn.Close()
		return nil, &FetchError{Op: op, Err: err}
	}
	if opts.OnOpen != nil {
		opts.OnOpen()
	}

	go ch.readLoop()
	return ch, nil
}

// Send writes v as a JSON text frame.
func (ch *Channel) Send(v any) error {
	select {
	case <-ch.done:
		return ErrChannelClosed
	default:
	}
	ch.writeMu.Lock()
	defer ch.writeMu.Unlock()
	return ch.conn.WriteJSON(v)
}

// Close sends a close frame and waits briefly for the server to acknowledge.
// Closing a channel that has already ended is a no-op.
func (ch *Channel) Close() error {
	var err error
	ch.once.Do(func() {
		ch.closing.Store(true)
		select {
		case <-ch.done:
			return
		default:
		}
		ch.writeMu.Lock()
		err = ch.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(closeGracePeriod),
		)
		ch.writeMu.Unlock()

		select {
		case <-ch.done:
		case <-time.After(closeGracePeriod):
			ch.conn.Close()
		}
	})
	if errors.Is(err, websocket.ErrCloseSent) {
		return nil
	}
	return err
}

// Done is closed once the connection has ended and OnClose has run.
func (ch *Channel) Done() <-chan struct{} {
	return ch.done
}

func (ch *Channel) readLoop() {
	code, reason := websocket.CloseAbnormalClosure, ""
	defer func() {
		ch.conn.Close()
		if ch.opts.OnClose != nil {
			ch.opts.OnClose(code, reason)
		}
		close(ch.done)
	}()

	for {
		messageType, data, err := ch.conn.ReadMessage()
		if err != nil {
			var closeErr *websocket.CloseError
			switch {
			case errors.As(err, &closeErr) && closeErr.Code != websocket.CloseAbnormalClosure:
				code, reason = closeErr.Code, closeErr.Text
			case ch.closing.Load():
				code = websocket.CloseNormalClosure
			default:
				if ch.opts.OnError != nil {
					ch.opts.OnError(err)
				}
			}
			return
		}
		if messageType != websocket.TextMessage && messageType != websocket.BinaryMessage {
			continue
		}
		if ch.opts.OnMessage != nil {
			ch.opts.OnMessage(data)
		}
	}
}
