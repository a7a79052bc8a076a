package mocks

import (
	"context"
	"sync"

	"medconsult/internal/gateway"
)

// ChannelConnMock records sent frames. Close runs the OnClose handler it was
// dialed with, like a real channel.
type ChannelConnMock struct {
	Opts    gateway.ChannelOptions
	SendErr error

	mu     sync.Mutex
	Sent   []any
	closed bool
	done   chan struct{}
}

func NewChannelConnMock(opts gateway.ChannelOptions) *ChannelConnMock {
	return &ChannelConnMock{Opts: opts, done: make(chan struct{})}
}

func (c *ChannelConnMock) Send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return gateway.ErrChannelClosed
	}
	if c.SendErr != nil {
		return c.SendErr
	}
	c.Sent = append(c.Sent, v)
	return nil
}

func (c *ChannelConnMock) Close() error {
	c.Drop(1000, "")
	return nil
}

// Drop ends the connection as if the server had closed it.
func (c *ChannelConnMock) Drop(code int, reason string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	if c.Opts.OnClose != nil {
		c.Opts.OnClose(code, reason)
	}
	close(c.done)
}

// Deliver hands data to the OnMessage handler.
func (c *ChannelConnMock) Deliver(data []byte) {
	if c.Opts.OnMessage != nil {
		c.Opts.OnMessage(data)
	}
}

func (c *ChannelConnMock) Done() <-chan struct{} {
	return c.done
}

func (c *ChannelConnMock) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// ChannelDialerMock returns a ChannelConnMock per Dial unless DialFunc is set.
type ChannelDialerMock struct {
	DialFunc func(ctx context.Context, id string, opts gateway.ChannelOptions) (*ChannelConnMock, error)

	mu    sync.Mutex
	Conns []*ChannelConnMock
	IDs   []string
}

func (d *ChannelDialerMock) Dial(ctx context.Context, id string, opts gateway.ChannelOptions) (gateway.Conn, error) {
	var (
		c   *ChannelConnMock
		err error
	)
	if d.DialFunc != nil {
		c, err = d.DialFunc(ctx, id, opts)
		if err != nil {
			return nil, err
		}
	} else {
		c = NewChannelConnMock(opts)
	}
	d.mu.Lock()
	d.Conns = append(d.Conns, c)
	d.IDs = append(d.IDs, id)
	d.mu.Unlock()
	if opts.OnOpen != nil {
		opts.OnOpen()
	}
	return c, nil
}

// Last returns the most recent connection.
func (d *ChannelDialerMock) Last() *ChannelConnMock {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.Conns) == 0 {
		return nil
	}
	return d.Conns[len(d.Conns)-1]
}
