// Package ircbot implements the IRC-facing halves of the dispatcher: the
// listener that turns inbound IRC traffic into events (C3), and the
// dispatcher that owns the event channel's receive end and the outbound
// send handle (C4).
package ircbot

import (
	"context"

	"github.com/arekfu/carlo/events"
	"github.com/arekfu/carlo/go/skerr"
	"github.com/arekfu/carlo/go/sklog"
	ircevent "github.com/thoj/go-ircevent"
)

// Listener converts the IRC library's callback-driven incoming-message
// stream into events on the dispatcher channel.
type Listener struct {
	conn *ircevent.Connection
}

// NewListener wraps an already-connected IRC connection.
func NewListener(conn *ircevent.Connection) *Listener {
	return &Listener{conn: conn}
}

// Listen blocks, forwarding every inbound PRIVMSG as an IncomingIRCMessage
// event, until ctx is canceled or the connection's event loop ends on its
// own. Messages are forwarded in arrival order with no filtering.
func (l *Listener) Listen(ctx context.Context, emit chan<- events.Event) error {
	l.conn.AddCallback("PRIVMSG", func(e *ircevent.Event) {
		sklog.Debugf("ircbot: incoming message: %s", e.Raw)
		emit <- events.IncomingIRCMessage{Raw: e}
	})

	done := make(chan struct{})
	go func() {
		l.conn.Loop()
		close(done)
	}()

	select {
	case <-ctx.Done():
		l.conn.Quit()
		<-done
		return ctx.Err()
	case <-done:
		return skerr.Fmt("ircbot: IRC connection loop ended")
	}
}
