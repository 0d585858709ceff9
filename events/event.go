// Package events defines the tagged union of values that flow through the
// dispatcher's merged event channel. IRCListener and CIPoller are the only
// producers; Dispatcher is the only consumer.
package events

import ircevent "github.com/thoj/go-ircevent"

// Event is implemented by every value that can be sent on the dispatcher's
// event channel.
type Event interface {
	isEvent()
}

// IncomingIRCMessage wraps one raw message received from the IRC connection.
type IncomingIRCMessage struct {
	Raw *ircevent.Event
}

func (IncomingIRCMessage) isEvent() {}

// UpdatedJob reports that a CI job advanced to a new completed build. Notify
// holds the ordered set of IRC destinations that should be told about it.
type UpdatedJob struct {
	ServerID string
	Name     string
	Result   string
	Number   uint32
	Duration uint32 // milliseconds
	URL      string
	Notify   []string
}

func (UpdatedJob) isEvent() {}
