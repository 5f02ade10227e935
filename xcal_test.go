package ical

import (
	"bytes"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatXML(t *testing.T) {
	cal := parseFixture(t, "fixtures/recurrence.ics")
	cal.Events()[0].SetProperty(BuildProperty("ATTENDEE", "mailto:a@b.c").Param("CN", "Jane").Build())
	cal.Events()[0].AddProperty("GEO", "37.386013;-122.082932")
	cal.Events()[0].AddProperty("X-CUSTOM", "raw")

	var buf bytes.Buffer
	require.NoError(t, FormatXML(&buf, cal))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "icalendar", root.Tag)
	assert.Equal(t, xcalNamespace, root.SelectAttrValue("xmlns", ""))

	prodID := doc.FindElement("/icalendar/vcalendar/properties/prodid/text")
	require.NotNil(t, prodID)
	assert.Equal(t, "bsprodidfortestabc123", prodID.Text())

	events := doc.FindElements("/icalendar/vcalendar/components/vevent")
	require.Len(t, events, 2)

	allDay := events[0]
	assert.Equal(t, "2025-01-01", allDay.FindElement("properties/dtstart/date").Text())
	rdates := allDay.FindElements("properties/rdate/date")
	require.Len(t, rdates, 2)
	assert.Equal(t, "2024-12-31", rdates[0].Text())
	assert.Equal(t, "DAILY", allDay.FindElement("properties/rrule/recur/freq").Text())
	assert.Equal(t, "4", allDay.FindElement("properties/rrule/recur/count").Text())
	assert.Equal(t, "Jane", allDay.FindElement("properties/attendee/parameters/cn/text").Text())
	assert.Equal(t, "mailto:a@b.c", allDay.FindElement("properties/attendee/cal-address").Text())
	assert.Equal(t, "-122.082932", allDay.FindElement("properties/geo/geo/longitude").Text())
	assert.Equal(t, "raw", allDay.FindElement("properties/x-custom/unknown").Text())
	assert.Nil(t, allDay.FindElement("properties/dtstart/parameters"))

	timed := events[1]
	assert.Equal(t, "2025-01-01T09:00:00Z", timed.FindElement("properties/dtstart/date-time").Text())
	assert.Len(t, timed.FindElements("properties/exdate/date-time"), 2)
}

func TestFormatXMLValues(t *testing.T) {
	comp := NewComponent(CompTimezone)
	comp.AddProperty("TZOFFSETFROM", "+0100")
	comp.AddProperty("TZOFFSETTO", "-053015")
	comp.AddProperty("FREEBUSY", "20250101T090000Z/PT1H")

	cal := NewCalendar()
	cal.Push(comp)

	var buf bytes.Buffer
	require.NoError(t, FormatXML(&buf, cal))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

	tz := doc.FindElement("//vtimezone/properties")
	require.NotNil(t, tz)
	assert.Equal(t, "+01:00", tz.FindElement("tzoffsetfrom/utc-offset").Text())
	assert.Equal(t, "-05:30:15", tz.FindElement("tzoffsetto/utc-offset").Text())
	assert.Equal(t, "2025-01-01T09:00:00Z", tz.FindElement("freebusy/period/start").Text())
	assert.Equal(t, "PT1H", tz.FindElement("freebusy/period/duration").Text())
}
