package ircbot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arekfu/carlo/events"
	"github.com/arekfu/carlo/go/sklog"
	"github.com/arekfu/carlo/go/util"
	ircevent "github.com/thoj/go-ircevent"
)

// Sender is the outbound half of the shared IRC handle. *ircevent.Connection
// satisfies it directly.
type Sender interface {
	Privmsg(target, message string)
}

// outbound is one PRIVMSG a command handler wants sent; its target is
// decided by the command, not necessarily the channel the triggering
// message arrived on (see the "say" command).
type outbound struct {
	target string
	body   string
}

// Dispatcher owns the IRC send handle, the process start time, and the
// event channel's receive end (C4). It is the only entity that calls
// Sender.Privmsg, so there is no intra-process race on the send side.
type Dispatcher struct {
	sender    Sender
	nickname  string
	owners    util.StringSet
	startTime time.Time
}

// NewDispatcher constructs a Dispatcher. nickname is used to recognize
// addressed channel messages; owners is the set of nicks authorized for the
// "say" command.
func NewDispatcher(sender Sender, nickname string, owners []string) *Dispatcher {
	return &Dispatcher{
		sender:    sender,
		nickname:  nickname,
		owners:    util.NewStringSet(owners),
		startTime: time.Now(),
	}
}

// Run consumes events until ch is closed or ctx is canceled, dispatching
// each one serially. Processing one event never blocks on another; there is
// no handler reentrancy.
func (d *Dispatcher) Run(ctx context.Context, ch <-chan events.Event) {
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			d.handle(ev)
		case <-ctx.Done():
			return
		}
	}
}

func (d *Dispatcher) handle(ev events.Event) {
	switch e := ev.(type) {
	case events.IncomingIRCMessage:
		d.handleIncoming(e.Raw)
	case events.UpdatedJob:
		d.handleUpdatedJob(e)
	default:
		sklog.Warningf("ircbot: dispatcher received event of unknown type %T", ev)
	}
}

// isChannel reports whether target names an IRC channel rather than a user.
func isChannel(target string) bool {
	return len(target) > 0 && (target[0] == '#' || target[0] == '&')
}

// addressed reports whether a PRIVMSG with the given target and body is
// addressed to the bot, and if so, the command text with any nickname
// prefix stripped.
func (d *Dispatcher) addressed(target, body string) (ok bool, cmdBody string) {
	trimmed := strings.TrimLeft(body, " \t")
	if !isChannel(target) {
		return true, trimmed
	}
	if strings.HasPrefix(trimmed, d.nickname) {
		rest := strings.TrimPrefix(trimmed, d.nickname)
		rest = strings.TrimLeft(rest, " \t:,")
		return true, rest
	}
	return false, ""
}

func (d *Dispatcher) handleIncoming(raw *ircevent.Event) {
	if raw == nil || raw.Code != "PRIVMSG" {
		return
	}
	if len(raw.Arguments) == 0 {
		return
	}
	target := raw.Arguments[0]
	body := raw.Message()

	ok, cmdBody := d.addressed(target, body)
	if !ok {
		sklog.Debugf("ircbot: ignoring unaddressed message on %s", target)
		return
	}

	sourceNick := raw.Nick
	replyTo := target
	if !isChannel(target) {
		replyTo = sourceNick
	}

	for _, m := range d.dispatch(cmdBody, sourceNick, replyTo) {
		d.sender.Privmsg(m.target, m.body)
	}
}

// dispatch is the command surface: uptime (public) and say (owner-only).
// Unrecognized commands are dropped and logged at debug level.
func (d *Dispatcher) dispatch(cmdBody, sourceNick, replyTo string) []outbound {
	switch {
	case strings.Contains(cmdBody, "uptime"):
		seconds := int(time.Since(d.startTime).Seconds())
		return []outbound{{target: replyTo, body: fmt.Sprintf("uptime = %d seconds", seconds)}}

	case strings.HasPrefix(cmdBody, "say "):
		rest := strings.TrimPrefix(cmdBody, "say ")
		parts := strings.SplitN(rest, " ", 2)
		if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
			sklog.Debugf("ircbot: dropping incomplete say command from %s", sourceNick)
			return nil
		}
		if !d.owners[sourceNick] {
			sklog.Debugf("ircbot: dropping say command from non-owner %s", sourceNick)
			return nil
		}
		return []outbound{{target: parts[0], body: parts[1]}}

	default:
		sklog.Debugf("ircbot: unrecognized command %q from %s", cmdBody, sourceNick)
		return nil
	}
}

func (d *Dispatcher) handleUpdatedJob(e events.UpdatedJob) {
	body := fmt.Sprintf("New build for job '%s' on '%s'! Result: %s", e.Name, e.ServerID, e.Result)
	for _, dest := range e.Notify {
		d.sender.Privmsg(dest, body)
	}
}
