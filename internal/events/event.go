package events

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

// Names of the events the frontend subscribes to.
const (
	SettingsChanged    = "settings:changed"
	ConsultationState  = "consultation:state"
	Navigate           = "navigate"
	ChannelOpen        = "channel:open"
	ChannelMessage     = "channel:message"
	ChannelError       = "channel:error"
	ChannelClose       = "channel:close"
	TranslationMissing = "i18n:missing"
	Notification       = "notification"
)

// Event is a backend event payload delivered to the frontend.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
	SessionKey string    `json:"sessionKey,omitempty"`
	Payload    any       `json:"payload,omitempty"`
}

type contextKey string

const sessionContextKey contextKey = "medconsult/events/session"

// WithSession returns a derived context annotated with the given consultation
// id so emitted events are scoped to it.
func WithSession(ctx context.Context, sessionKey string) context.Context {
	if strings.TrimSpace(sessionKey) == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionContextKey, sessionKey)
}

// SessionFromContext extracts the session key associated with ctx.
func SessionFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(sessionContextKey).(string); ok {
		return v
	}
	return ""
}

func CreateEvent(eventType EventType, message string) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithPayload returns a copy of e carrying payload.
func (e Event) WithPayload(payload any) Event {
	e.Payload = payload
	return e
}

// NewInfo creates an info Event.
func NewInfo(message string) Event {
	return CreateEvent(EventInfo, message)
}

// NewWarn creates a warn Event.
func NewWarn(message string) Event {
	return CreateEvent(EventWarn, message)
}

// NewError creates an error Event.
func NewError(message string) Event {
	return CreateEvent(EventError, message)
}

// NewSuccess creates a success Event.
func NewSuccess(message string) Event {
	return CreateEvent(EventSuccess, message)
}
