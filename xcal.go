package ical

import (
	"io"
	"strings"
	"time"

	"github.com/beevik/etree"
)

// xCal is the XML representation of iCalendar.
//
// https://datatracker.ietf.org/doc/html/rfc6321

const xcalNamespace = "urn:ietf:params:xml:ns:icalendar-2.0"

// xcalParamTypes lists the parameters whose values are not TEXT.
var xcalParamTypes = map[string]ValueType{
	"ALTREP":         ValueURI,
	"DELEGATED-FROM": ValueCalAddress,
	"DELEGATED-TO":   ValueCalAddress,
	"DIR":            ValueURI,
	"MEMBER":         ValueCalAddress,
	"SENT-BY":        ValueCalAddress,
}

// FormatXML writes the calendar as an xCal document.
func FormatXML(w io.Writer, cal *Calendar) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	root := doc.CreateElement("icalendar")
	root.CreateAttr("xmlns", xcalNamespace)
	root.AddChild(xcalComponent(cal.Component))

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func xcalComponent(comp *Component) *etree.Element {
	el := etree.NewElement(strings.ToLower(comp.Name))

	if comp.Properties.Len() > 0 {
		props := el.CreateElement("properties")
		for _, p := range comp.Properties.List() {
			props.AddChild(xcalProperty(p))
		}
	}

	if len(comp.Children) > 0 {
		children := el.CreateElement("components")
		for _, child := range comp.Children {
			children.AddChild(xcalComponent(child))
		}
	}
	return el
}

func xcalProperty(p Property) *etree.Element {
	el := etree.NewElement(strings.ToLower(p.Key()))

	var params []Parameter
	for _, param := range p.params {
		if !strings.EqualFold(param.Key, paramValue) {
			params = append(params, param)
		}
	}
	if len(params) > 0 {
		pel := el.CreateElement("parameters")
		for _, param := range params {
			vt, ok := xcalParamTypes[strings.ToUpper(param.Key)]
			if !ok {
				vt = ValueText
			}
			pel.CreateElement(strings.ToLower(param.Key)).
				CreateElement(xcalTypeName(vt, true)).
				SetText(unquote(param.Value))
		}
	}

	vt, typed := p.ValueType()
	if strings.EqualFold(p.Key(), "GEO") && !hasExplicitType(p) {
		if lat, lon, ok := strings.Cut(p.Value(), ";"); ok {
			geo := el.CreateElement("geo")
			geo.CreateElement("latitude").SetText(lat)
			geo.CreateElement("longitude").SetText(lon)
			return el
		}
	}

	switch {
	case typed && vt == ValueRecur:
		el.AddChild(xcalRecur(p.Value()))
	case typed && (vt == ValueDate || vt == ValueDateTime || vt == ValuePeriod):
		for _, v := range strings.Split(p.Value(), ",") {
			el.AddChild(xcalTemporal(vt, v))
		}
	default:
		el.CreateElement(xcalTypeName(vt, typed)).SetText(xcalText(vt, typed, p.Value()))
	}
	return el
}

func hasExplicitType(p Property) bool {
	for _, param := range p.params {
		if strings.EqualFold(param.Key, paramValue) {
			return true
		}
	}
	return false
}

func xcalTypeName(vt ValueType, typed bool) string {
	if !typed {
		return "unknown"
	}
	return strings.ToLower(vt.String())
}

func xcalText(vt ValueType, typed bool, v string) string {
	if typed && vt == ValueUTCOffset && len(v) >= 5 {
		// +HHMM[SS] becomes +HH:MM[:SS]
		s := v[:3] + ":" + v[3:5]
		if len(v) == 7 {
			s += ":" + v[5:]
		}
		return s
	}
	return v
}

func xcalTemporal(vt ValueType, v string) *etree.Element {
	if vt == ValuePeriod {
		el := etree.NewElement("period")
		start, rest, _ := strings.Cut(v, "/")
		el.CreateElement("start").SetText(xcalDateTime(start))
		if strings.HasPrefix(rest, "P") || strings.HasPrefix(rest, "-P") || strings.HasPrefix(rest, "+P") {
			el.CreateElement("duration").SetText(rest)
		} else {
			el.CreateElement("end").SetText(xcalDateTime(rest))
		}
		return el
	}

	if d, ok := ParseDate(v); ok && vt == ValueDate {
		el := etree.NewElement("date")
		el.SetText(d.In(time.UTC).Format("2006-01-02"))
		return el
	}
	el := etree.NewElement("date-time")
	el.SetText(xcalDateTime(v))
	return el
}

// xcalDateTime reformats YYYYMMDDTHHMMSS[Z] as YYYY-MM-DDTHH:MM:SS[Z].
// Values that do not parse are kept as they are.
func xcalDateTime(v string) string {
	dt, ok := ParseCalendarDateTime(v)
	if !ok {
		return v
	}
	if dt.IsUTC() {
		return dt.Time().Format("2006-01-02T15:04:05Z")
	}
	return dt.Time().Format("2006-01-02T15:04:05")
}

// xcalRecur splits a recurrence rule into its parts.
func xcalRecur(rule string) *etree.Element {
	el := etree.NewElement("recur")
	for _, part := range strings.Split(rule, ";") {
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		name = strings.ToLower(name)
		if name == "until" {
			if d, ok := ParseDate(value); ok {
				value = d.In(time.UTC).Format("2006-01-02")
			} else {
				value = xcalDateTime(value)
			}
			el.CreateElement(name).SetText(value)
			continue
		}
		for _, v := range strings.Split(value, ",") {
			el.CreateElement(name).SetText(v)
		}
	}
	return el
}
