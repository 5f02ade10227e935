package ical

import (
	"strconv"
)

// An Alarm is a VALARM component, nested in an event or a to-do.
//
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.6
type Alarm struct {
	*Component
}

// Action is the ACTION of an alarm. Values other than the three RFC 5545
// actions are kept as they are.
type Action string

// Alarm actions.
const (
	ActionAudio   Action = "AUDIO"
	ActionDisplay Action = "DISPLAY"
	ActionEmail   Action = "EMAIL"
)

// Related is the RELATED parameter of a relative trigger.
type Related string

// Trigger anchors.
const (
	RelatedStart Related = "START"
	RelatedEnd   Related = "END"
)

const paramRelated = "RELATED"

// A Trigger is the TRIGGER of an alarm: either a duration relative to the
// start or the end of the parent component, or an absolute date-time.
//
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.6.3
type Trigger struct {
	duration Duration
	related  Related
	at       CalendarDateTime
	absolute bool
}

// TriggerBefore is a trigger d before the start of the parent component.
func TriggerBefore(d Duration) Trigger {
	d.Negative = true
	return Trigger{duration: d}
}

// RelativeTrigger is a trigger at offset d from the anchor. An empty
// related leaves the RELATED parameter out, which means START.
func RelativeTrigger(d Duration, related Related) Trigger {
	return Trigger{duration: d, related: related}
}

// AbsoluteTrigger is a trigger at a fixed date-time.
func AbsoluteTrigger(at CalendarDateTime) Trigger {
	return Trigger{at: at, absolute: true}
}

// TriggerOf reads a TRIGGER property. Values that are neither a duration
// nor a date-time are reported as absent.
func TriggerOf(p Property) (Trigger, bool) {
	if vt, ok := p.ValueType(); ok && vt == ValueDateTime {
		at, ok := ParseCalendarDateTime(p.Value())
		if !ok {
			return Trigger{}, false
		}
		return AbsoluteTrigger(at), true
	}

	d, err := ParseDuration(p.Value())
	if err != nil {
		return Trigger{}, false
	}
	related, _ := p.ParamValue(paramRelated)
	switch Related(related) {
	case "", RelatedStart, RelatedEnd:
	default:
		return Trigger{}, false
	}
	return RelativeTrigger(d, Related(related)), true
}

// IsAbsolute reports whether t is a fixed date-time.
func (t Trigger) IsAbsolute() bool { return t.absolute }

// Duration returns the offset of a relative trigger.
func (t Trigger) Duration() (Duration, bool) { return t.duration, !t.absolute }

// Related returns the anchor of a relative trigger, if one was set.
func (t Trigger) Related() (Related, bool) {
	return t.related, !t.absolute && t.related != ""
}

// DateTime returns the date-time of an absolute trigger.
func (t Trigger) DateTime() (CalendarDateTime, bool) { return t.at, t.absolute }

// Property returns t as a TRIGGER property.
func (t Trigger) Property() Property {
	if t.absolute {
		return BuildProperty("TRIGGER", t.at.String()).Type(ValueDateTime).Build()
	}
	b := BuildProperty("TRIGGER", t.duration.String())
	if t.related != "" {
		b.Param(paramRelated, string(t.related))
	}
	return b.Build()
}

func newAlarm(action Action, trigger Trigger) *Alarm {
	a := &Alarm{NewComponent(CompAlarm)}
	a.SetAction(action)
	a.SetTrigger(trigger)
	return a
}

// NewAudioAlarm creates an alarm playing a sound.
func NewAudioAlarm(trigger Trigger) *Alarm {
	return newAlarm(ActionAudio, trigger)
}

// NewDisplayAlarm creates an alarm showing description.
func NewDisplayAlarm(description string, trigger Trigger) *Alarm {
	a := newAlarm(ActionDisplay, trigger)
	a.SetDescription(description)
	return a
}

// NewEmailAlarm creates an alarm sending an email with the given summary
// as subject and description as body.
func NewEmailAlarm(description string, trigger Trigger, summary string) *Alarm {
	a := newAlarm(ActionEmail, trigger)
	a.SetDescription(description)
	a.SetSummary(summary)
	return a
}

// SetAction sets the ACTION.
func (a *Alarm) SetAction(action Action) *Alarm {
	a.AddProperty("ACTION", string(action))
	return a
}

// Action returns the ACTION.
func (a *Alarm) Action() (Action, bool) {
	v, ok := a.PropertyValue("ACTION")
	return Action(v), ok
}

// SetTrigger sets the TRIGGER.
func (a *Alarm) SetTrigger(trigger Trigger) *Alarm {
	a.SetProperty(trigger.Property())
	return a
}

// Trigger returns the TRIGGER.
func (a *Alarm) Trigger() (Trigger, bool) {
	p, ok := a.Property("TRIGGER")
	if !ok {
		return Trigger{}, false
	}
	return TriggerOf(p)
}

// SetDurationAndRepeat makes the alarm repeat count more times, d apart.
// Both DURATION and REPEAT must be present for either to apply.
func (a *Alarm) SetDurationAndRepeat(d Duration, count int) *Alarm {
	a.SetDuration(d)
	a.AddProperty("REPEAT", strconv.Itoa(count))
	return a
}

// Repeat returns the REPEAT count. An alarm without REPEAT fires once and
// reports 0.
func (a *Alarm) Repeat() int {
	n, _ := a.intProperty("REPEAT")
	return n
}
