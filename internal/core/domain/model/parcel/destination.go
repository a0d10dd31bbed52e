package parcel

// Fallback region used when the caller omits the administrative fields.
const (
	DefaultWilaya  = "Alger"
	DefaultCommune = "Alger Centre"
)

// Destination is the value object holding the Algerian administrative region
// a parcel ships to. Both fields are optional at creation and fall back to
// the default region, so construction never fails.
type Destination struct {
	wilaya  string
	commune string
}

// NewDestination creates a Destination, substituting the fallback region for
// any omitted field.
func NewDestination(wilaya, commune string) Destination {
	if wilaya == "" {
		wilaya = DefaultWilaya
	}
	if commune == "" {
		commune = DefaultCommune
	}
	return Destination{wilaya: wilaya, commune: commune}
}

// Wilaya returns the administrative region.
func (d Destination) Wilaya() string {
	return d.wilaya
}

// Commune returns the administrative sub-region.
func (d Destination) Commune() string {
	return d.commune
}
