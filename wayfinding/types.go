package wayfinding

// Category is the classification of a room pair.
type Category string

const (
	SameFloor     Category = "SAME_FLOOR"
	SameBuilding  Category = "SAME_BUILDING"
	CrossBuilding Category = "CROSS_BUILDING"
)

// Kind tags a Leg.
type Kind string

const (
	KindIndoor  Kind = "indoor"
	KindOutdoor Kind = "outdoor"
)

// Leg is either an indoor map view (URL) or the opaque outdoor segment.
type Leg struct {
	Kind     Kind   `json:"kind"`
	URL      string `json:"url,omitempty"`
	NotFound bool   `json:"notFound,omitempty"`
}

func Indoor(url string) Leg { return Leg{Kind: KindIndoor, URL: url} }

func Outdoor() Leg { return Leg{Kind: KindOutdoor} }

// Unresolved is an indoor leg whose floor lookup failed.
func Unresolved() Leg { return Leg{Kind: KindIndoor, NotFound: true} }

func (l Leg) IsIndoor() bool { return l.Kind == KindIndoor }

func (l Leg) IsOutdoor() bool { return l.Kind == KindOutdoor }

// Usable reports whether a renderer can act on the leg.
func (l Leg) Usable() bool {
	switch l.Kind {
	case KindOutdoor:
		return true
	case KindIndoor:
		return !l.NotFound && l.URL != ""
	}
	return false
}

// Trip is one wayfinding request.
type Trip struct {
	StartRoomID      string `json:"startRoomId"`
	EndRoomID        string `json:"endRoomId"`
	WheelchairAccess bool   `json:"wheelchairAccess"`
}

func (t Trip) key() string {
	w := "0"
	if t.WheelchairAccess {
		w = "1"
	}
	return t.StartRoomID + "|" + t.EndRoomID + "|" + w
}
