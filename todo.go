package ical

import (
	"strconv"
	"time"
)

// A Todo is a VTODO component.
//
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.2
type Todo struct {
	*Component
}

// NewTodo creates an empty to-do.
func NewTodo() *Todo {
	return &Todo{NewComponent(CompTodo)}
}

// NewTodoWithUID creates a to-do with the given UID.
func NewTodoWithUID(uid string) *Todo {
	t := NewTodo()
	t.SetUID(uid)
	return t
}

// TodoStatus is the STATUS of a to-do.
type TodoStatus string

// To-do statuses.
const (
	TodoNeedsAction TodoStatus = "NEEDS-ACTION"
	TodoCompleted   TodoStatus = "COMPLETED"
	TodoInProcess   TodoStatus = "IN-PROCESS"
	TodoCancelled   TodoStatus = "CANCELLED"
)

// SetPercentComplete sets the PERCENT-COMPLETE, 0 to 100.
func (t *Todo) SetPercentComplete(percent int) *Todo {
	t.AddProperty("PERCENT-COMPLETE", strconv.Itoa(percent))
	return t
}

// PercentComplete returns the PERCENT-COMPLETE.
func (t *Todo) PercentComplete() (int, bool) {
	return t.intProperty("PERCENT-COMPLETE")
}

// RemovePercentComplete removes the PERCENT-COMPLETE.
func (t *Todo) RemovePercentComplete() *Todo {
	t.RemoveProperty("PERCENT-COMPLETE")
	return t
}

// SetDue sets the DUE.
func (t *Todo) SetDue(v DatePerhapsTime) *Todo {
	t.SetProperty(v.Property("DUE"))
	return t
}

// Due returns the DUE.
func (t *Todo) Due() (DatePerhapsTime, bool) {
	return t.dateProperty("DUE")
}

// RemoveDue removes the DUE.
func (t *Todo) RemoveDue() *Todo {
	t.RemoveProperty("DUE")
	return t
}

// SetCompleted sets the COMPLETED timestamp. It is always written in UTC.
func (t *Todo) SetCompleted(at time.Time) *Todo {
	t.AddProperty("COMPLETED", UTCDateTime(at).String())
	return t
}

// Completed returns the COMPLETED timestamp.
func (t *Todo) Completed() (time.Time, bool) {
	return t.utcProperty("COMPLETED")
}

// RemoveCompleted removes the COMPLETED timestamp.
func (t *Todo) RemoveCompleted() *Todo {
	t.RemoveProperty("COMPLETED")
	return t
}

// SetStatus sets the STATUS.
func (t *Todo) SetStatus(status TodoStatus) *Todo {
	t.AddProperty("STATUS", string(status))
	return t
}

// Status returns the STATUS. Unknown values are reported as absent.
func (t *Todo) Status() (TodoStatus, bool) {
	v, _ := t.PropertyValue("STATUS")
	switch status := TodoStatus(v); status {
	case TodoNeedsAction, TodoCompleted, TodoInProcess, TodoCancelled:
		return status, true
	}
	return "", false
}

// RemoveStatus removes the STATUS.
func (t *Todo) RemoveStatus() *Todo {
	t.RemoveProperty("STATUS")
	return t
}

// MarkUncompleted removes COMPLETED and PERCENT-COMPLETE, and STATUS when
// it is COMPLETED. Every other property, the UID included, is kept.
func (t *Todo) MarkUncompleted() *Todo {
	t.RemoveCompleted()
	t.RemovePercentComplete()
	if status, ok := t.Status(); ok && status == TodoCompleted {
		t.RemoveStatus()
	}
	return t
}
