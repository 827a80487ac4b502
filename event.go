package flume

// Event is a sealed interface representing a streaming event.
// Events are purely semantic. Transport/protocol errors come from
// Next()'s error return, not from events.
// The unexported marker method prevents external implementations.
type Event interface {
	event()
}

// EventTextDelta represents an incremental text fragment. One event is
// emitted per decoded record, so Delta may be empty when the record
// carried no content.
type EventTextDelta struct {
	Delta string
}

func (EventTextDelta) event() {}

// Interface compliance check.
var _ Event = EventTextDelta{}
