package ical

// A Venue is a VVENUE component (draft-norris-ical-venue).
//
// Deprecated: RFC 9073 replaces VVENUE with VLOCATION. Use Location.
type Venue struct {
	*Component
}

// NewVenue creates an empty venue.
//
// Deprecated: use NewLocation.
func NewVenue() *Venue {
	return &Venue{NewComponent(CompVenue)}
}

// SetStreetAddress sets the STREET-ADDRESS. Lines of a multi-line address
// are separated by "\n".
func (v *Venue) SetStreetAddress(address string) *Venue { return v.set("STREET-ADDRESS", address) }

// StreetAddress returns the STREET-ADDRESS.
func (v *Venue) StreetAddress() (string, bool) { return v.PropertyValue("STREET-ADDRESS") }

// SetExtendedAddress sets the EXTENDED-ADDRESS, such as an apartment or
// suite number.
func (v *Venue) SetExtendedAddress(address string) *Venue { return v.set("EXTENDED-ADDRESS", address) }

// ExtendedAddress returns the EXTENDED-ADDRESS.
func (v *Venue) ExtendedAddress() (string, bool) { return v.PropertyValue("EXTENDED-ADDRESS") }

// SetLocality sets the LOCALITY, usually the city.
func (v *Venue) SetLocality(locality string) *Venue { return v.set("LOCALITY", locality) }

// Locality returns the LOCALITY.
func (v *Venue) Locality() (string, bool) { return v.PropertyValue("LOCALITY") }

// SetRegion sets the REGION, such as a state or province.
func (v *Venue) SetRegion(region string) *Venue { return v.set("REGION", region) }

// Region returns the REGION.
func (v *Venue) Region() (string, bool) { return v.PropertyValue("REGION") }

// SetCountry sets the COUNTRY.
func (v *Venue) SetCountry(country string) *Venue { return v.set("COUNTRY", country) }

// Country returns the COUNTRY.
func (v *Venue) Country() (string, bool) { return v.PropertyValue("COUNTRY") }

// SetPostalCode sets the POSTAL-CODE.
func (v *Venue) SetPostalCode(code string) *Venue { return v.set("POSTAL-CODE", code) }

// PostalCode returns the POSTAL-CODE.
func (v *Venue) PostalCode() (string, bool) { return v.PropertyValue("POSTAL-CODE") }

func (v *Venue) set(key, value string) *Venue {
	v.AddProperty(key, value)
	return v
}
