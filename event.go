package ical

// An Event is a VEVENT component.
//
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.1
type Event struct {
	*Component
}

// NewEvent creates an empty event.
func NewEvent() *Event {
	return &Event{NewComponent(CompEvent)}
}

// NewEventWithUID creates an event with the given UID.
func NewEventWithUID(uid string) *Event {
	e := NewEvent()
	e.SetUID(uid)
	return e
}

// EventStatus is the STATUS of an event.
type EventStatus string

// Event statuses.
const (
	EventTentative EventStatus = "TENTATIVE"
	EventConfirmed EventStatus = "CONFIRMED"
	EventCancelled EventStatus = "CANCELLED"
)

// SetStatus sets the STATUS.
func (e *Event) SetStatus(status EventStatus) *Event {
	e.AddProperty("STATUS", string(status))
	return e
}

// Status returns the STATUS. Unknown values are reported as absent.
func (e *Event) Status() (EventStatus, bool) {
	v, _ := e.PropertyValue("STATUS")
	switch status := EventStatus(v); status {
	case EventTentative, EventConfirmed, EventCancelled:
		return status, true
	}
	return "", false
}

// RemoveStatus removes the STATUS.
func (e *Event) RemoveStatus() *Event {
	e.RemoveProperty("STATUS")
	return e
}
