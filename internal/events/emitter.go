package events

import (
	"context"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// EmitFunc delivers a named event.
type EmitFunc func(ctx context.Context, name string, evt Event)

var (
	emitMu sync.RWMutex
	emit   EmitFunc = func(context.Context, string, Event) {}
)

// Emit sends evt to the frontend. It is a no-op until an emitter is
// installed, so services can be exercised outside a Wails runtime.
func Emit(ctx context.Context, name string, evt Event) {
	if evt.SessionKey == "" {
		evt.SessionKey = SessionFromContext(ctx)
	}
	emitMu.RLock()
	f := emit
	emitMu.RUnlock()
	f(ctx, name, evt)
}

// EnableRuntimeEmitter routes events through the Wails runtime. ctx passed to
// Emit must then be the context handed to OnStartup (or derived from it).
func EnableRuntimeEmitter() {
	SetCustomEmitter(func(ctx context.Context, name string, evt Event) {
		runtime.EventsEmit(ctx, name, evt)
		logRuntimeEvent(ctx, name, evt)
	})
}

func SetCustomEmitter(f EmitFunc) {
	if f == nil {
		f = func(context.Context, string, Event) {}
	}
	emitMu.Lock()
	emit = f
	emitMu.Unlock()
}
