package ical

// Components and properties of RFC 9073, Event Publishing Extensions to
// iCalendar.
//
// https://www.rfc-editor.org/rfc/rfc9073.html

const propStructuredData = "STRUCTURED-DATA"

// AddStructuredData appends a STRUCTURED-DATA property. The property may
// repeat; earlier occurrences are kept.
//
//	loc.AddStructuredData("https://example.com/map", ical.NewParameter("VALUE", "URI"))
func (c *Component) AddStructuredData(value string, params ...Parameter) *Component {
	return c.AppendProperty(BuildProperty(propStructuredData, value).Params(params...).Build())
}

// StructuredData returns the value of the first STRUCTURED-DATA property.
func (c *Component) StructuredData() (string, bool) {
	return c.PropertyValue(propStructuredData)
}

// AllStructuredData returns every STRUCTURED-DATA property in the order
// they were added.
func (c *Component) AllStructuredData() []Property {
	return c.PropertiesOf(propStructuredData)
}

// AddParticipant nests a copy of p.
func (c *Component) AddParticipant(p *Participant) *Component { return c.AddChild(p) }

// AddLocation nests a copy of l.
func (c *Component) AddLocation(l *Location) *Component { return c.AddChild(l) }

// AddResource nests a copy of r.
func (c *Component) AddResource(r *Resource) *Component { return c.AddChild(r) }

// Participants returns the nested PARTICIPANT components. They share
// storage with c.
func (c *Component) Participants() []*Participant {
	var out []*Participant
	for _, child := range c.ChildrenNamed(CompParticipant) {
		out = append(out, &Participant{child})
	}
	return out
}

// Locations returns the nested VLOCATION components. They share storage
// with c.
func (c *Component) Locations() []*Location {
	var out []*Location
	for _, child := range c.ChildrenNamed(CompLocation) {
		out = append(out, &Location{child})
	}
	return out
}

// Resources returns the nested VRESOURCE components. They share storage
// with c.
func (c *Component) Resources() []*Resource {
	var out []*Resource
	for _, child := range c.ChildrenNamed(CompResource) {
		out = append(out, &Resource{child})
	}
	return out
}

// A Participant is a PARTICIPANT component.
type Participant struct {
	*Component
}

// NewParticipant creates an empty participant.
func NewParticipant() *Participant {
	return &Participant{NewComponent(CompParticipant)}
}

// SetParticipantType sets the PARTICIPANT-TYPE, such as ACTIVE or SPONSOR.
func (p *Participant) SetParticipantType(typ string) *Participant {
	p.AddProperty("PARTICIPANT-TYPE", typ)
	return p
}

// ParticipantType returns the PARTICIPANT-TYPE.
func (p *Participant) ParticipantType() (string, bool) {
	return p.PropertyValue("PARTICIPANT-TYPE")
}

// SetCalendarAddress sets the CALENDAR-ADDRESS, usually a mailto: URI.
func (p *Participant) SetCalendarAddress(address string) *Participant {
	p.AddProperty("CALENDAR-ADDRESS", address)
	return p
}

// CalendarAddress returns the CALENDAR-ADDRESS.
func (p *Participant) CalendarAddress() (string, bool) {
	return p.PropertyValue("CALENDAR-ADDRESS")
}

// A Location is a VLOCATION component.
type Location struct {
	*Component
}

// NewLocation creates an empty location.
func NewLocation() *Location {
	return &Location{NewComponent(CompLocation)}
}

// SetLocationType sets the LOCATION-TYPE, such as "parking" or "venue".
func (l *Location) SetLocationType(typ string) *Location {
	l.AddProperty("LOCATION-TYPE", typ)
	return l
}

// LocationType returns the LOCATION-TYPE.
func (l *Location) LocationType() (string, bool) {
	return l.PropertyValue("LOCATION-TYPE")
}

// SetName sets the NAME.
func (l *Location) SetName(name string) *Location {
	l.AddProperty("NAME", name)
	return l
}

// LocationName returns the NAME.
func (l *Location) LocationName() (string, bool) {
	return l.PropertyValue("NAME")
}

// A Resource is a VRESOURCE component.
type Resource struct {
	*Component
}

// NewResource creates an empty resource.
func NewResource() *Resource {
	return &Resource{NewComponent(CompResource)}
}

// SetResourceType sets the RESOURCE-TYPE, such as "projector".
func (r *Resource) SetResourceType(typ string) *Resource {
	r.AddProperty("RESOURCE-TYPE", typ)
	return r
}

// ResourceType returns the RESOURCE-TYPE.
func (r *Resource) ResourceType() (string, bool) {
	return r.PropertyValue("RESOURCE-TYPE")
}

// SetName sets the NAME.
func (r *Resource) SetName(name string) *Resource {
	r.AddProperty("NAME", name)
	return r
}

// ResourceName returns the NAME.
func (r *Resource) ResourceName() (string, bool) {
	return r.PropertyValue("NAME")
}
