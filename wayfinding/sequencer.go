package wayfinding

import (
	"net/url"
	"strings"

	"github.com/theoremus-urban-solutions/campus-wayfinder/catalog"
)

// Route is a classified trip and its legs.
type Route struct {
	Trip     Trip     `json:"trip"`
	Category Category `json:"category,omitempty"`
	Legs     []Leg    `json:"legs"`
}

// Plan builds the route for t. Category is empty when an input is missing.
func (p *Planner) Plan(t Trip) Route {
	r := Route{Trip: t, Legs: p.BuildLegs(t.StartRoomID, t.EndRoomID, t.WheelchairAccess)}
	if t.StartRoomID != "" && t.EndRoomID != "" {
		r.Category = p.Classify(t.StartRoomID, t.EndRoomID)
	}
	return r
}

// BuildLegs returns the ordered legs from startRoom to endRoom.
// A missing room id yields an empty, non-nil sequence.
func (p *Planner) BuildLegs(startRoom, endRoom string, wheelchair bool) []Leg {
	if startRoom == "" || endRoom == "" {
		return []Leg{}
	}
	switch p.Classify(startRoom, endRoom) {
	case SameFloor:
		return []Leg{p.roomLeg(startRoom, endRoom, startRoom)}
	case SameBuilding:
		return []Leg{
			p.roomLeg(startRoom, p.entrance(startRoom, wheelchair, false), startRoom),
			p.roomLeg(endRoom, endRoom, p.entrance(endRoom, wheelchair, false)),
		}
	default:
		return p.crossBuilding(startRoom, endRoom, wheelchair)
	}
}

func (p *Planner) crossBuilding(startRoom, endRoom string, wheelchair bool) []Leg {
	legs := make([]Leg, 0, 5)
	legs = append(legs, p.roomLeg(startRoom, p.entrance(startRoom, wheelchair, false), startRoom))
	if leg, ok := p.groundFloorLeg(startRoom, wheelchair); ok {
		legs = append(legs, leg)
	}
	legs = append(legs, Outdoor())
	if leg, ok := p.groundFloorLeg(endRoom, wheelchair); ok {
		legs = append(legs, leg)
	}
	// arriving from outside
	legs = append(legs, p.roomLeg(endRoom, endRoom, p.entrance(endRoom, wheelchair, true)))
	return legs
}

// groundFloorLeg crosses the building's entrance floor from exit to entrance.
// Skipped when the room is already on that floor or it cannot be resolved.
func (p *Planner) groundFloorLeg(roomID string, wheelchair bool) (Leg, bool) {
	floorID, ok := p.idx.FloorIDOf(roomID)
	if !ok || p.idx.IsBuildingEntranceFloor(floorID) {
		return Leg{}, false
	}
	ground, ok := p.idx.EntranceFloorOf(floorID)
	if !ok {
		return Leg{}, false
	}
	return floorLeg(ground, ground.EntranceFor(wheelchair, false), ground.ExitPoint()), true
}

func (p *Planner) roomLeg(roomID, location, departure string) Leg {
	base, ok := p.idx.MapURLOf(roomID)
	if !ok {
		return Unresolved()
	}
	floorID, ok := p.idx.FloorIDOf(roomID)
	if !ok {
		return Unresolved()
	}
	return Indoor(mapURL(base, floorID, location, departure))
}

func (p *Planner) entrance(roomID string, accessible, outdoor bool) string {
	e, _ := p.idx.EntranceOf(roomID, accessible, outdoor)
	return e
}

func floorLeg(f catalog.Floor, location, departure string) Leg {
	return Indoor(mapURL(f.IndoorMapURLBase, f.FloorID, location, departure))
}

// mapURL appends floor, location and departure in that order. The base
// already ends its own query string.
func mapURL(base, floorID, location, departure string) string {
	var b strings.Builder
	b.Grow(len(base) + len(floorID) + len(location) + len(departure) + 32)
	b.WriteString(base)
	b.WriteString("&floor=")
	b.WriteString(url.QueryEscape(floorID))
	b.WriteString("&location=")
	b.WriteString(url.QueryEscape(location))
	b.WriteString("&departure=")
	b.WriteString(url.QueryEscape(departure))
	return b.String()
}
