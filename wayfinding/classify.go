package wayfinding

import "github.com/theoremus-urban-solutions/campus-wayfinder/catalog"

// Index is the subset of catalog.RoomIndex the planner reads.
type Index interface {
	FloorIDOf(roomID string) (string, bool)
	FloorOf(roomID string) (catalog.Floor, bool)
	SameFloor(roomA, roomB string) bool
	SameBuilding(roomA, roomB string) bool
	MapURLOf(roomID string) (string, bool)
	EntranceOf(roomID string, accessible, outdoor bool) (string, bool)
	IsBuildingEntranceFloor(floorID string) bool
	EntranceFloorOf(floorID string) (catalog.Floor, bool)
}

// Planner classifies room pairs and builds leg sequences.
type Planner struct {
	idx Index
}

func NewPlanner(idx Index) *Planner {
	return &Planner{idx: idx}
}

// Classify never fails; unknown rooms fall through to CrossBuilding.
// Same floor is checked first since it implies same building.
func (p *Planner) Classify(roomA, roomB string) Category {
	if p.idx.SameFloor(roomA, roomB) {
		return SameFloor
	}
	if p.idx.SameBuilding(roomA, roomB) {
		return SameBuilding
	}
	return CrossBuilding
}
