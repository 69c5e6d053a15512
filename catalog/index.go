package catalog

// RoomIndex stores derived lookups over a catalog for fast queries
type RoomIndex struct {
	catalog       *Catalog
	roomFloor     map[string]string              // roomId -> floorId
	roomBuilding  map[string]string              // roomId -> building id
	floors        map[string]Floor               // floorId -> floor
	floorBuilding map[string]string              // floorId -> building id
	buildingRooms map[string]map[string]struct{} // building id -> aggregated room ids
	entranceFloor map[string]string              // building id -> floorId of startFloor
}

// NewRoomIndex builds the index once. The catalog must not change afterwards.
func NewRoomIndex(cat *Catalog) *RoomIndex {
	idx := &RoomIndex{
		catalog:       cat,
		roomFloor:     map[string]string{},
		roomBuilding:  map[string]string{},
		floors:        map[string]Floor{},
		floorBuilding: map[string]string{},
		buildingRooms: map[string]map[string]struct{}{},
		entranceFloor: map[string]string{},
	}
	for _, b := range cat.Buildings {
		rooms := map[string]struct{}{}
		for _, f := range b.Floors {
			idx.floors[f.FloorID] = f
			idx.floorBuilding[f.FloorID] = b.ID
			if b.StartFloor != "" && f.Name == b.StartFloor {
				idx.entranceFloor[b.ID] = f.FloorID
			}
			for _, roomID := range f.Rooms {
				idx.roomFloor[roomID] = f.FloorID
				idx.roomBuilding[roomID] = b.ID
				rooms[roomID] = struct{}{}
			}
		}
		idx.buildingRooms[b.ID] = rooms
	}
	return idx
}

// Catalog returns the catalog the index was built from.
func (x *RoomIndex) Catalog() *Catalog { return x.catalog }

func (x *RoomIndex) FloorIDOf(roomID string) (string, bool) {
	id, ok := x.roomFloor[roomID]
	return id, ok
}

func (x *RoomIndex) BuildingOf(roomID string) (string, bool) {
	id, ok := x.roomBuilding[roomID]
	return id, ok
}

// FloorOf returns the floor record containing the room.
func (x *RoomIndex) FloorOf(roomID string) (Floor, bool) {
	floorID, ok := x.roomFloor[roomID]
	if !ok {
		return Floor{}, false
	}
	return x.Floor(floorID)
}

func (x *RoomIndex) Floor(floorID string) (Floor, bool) {
	f, ok := x.floors[floorID]
	return f, ok
}

func (x *RoomIndex) SameFloor(roomA, roomB string) bool {
	a, ok := x.roomFloor[roomA]
	if !ok {
		return false
	}
	b, ok := x.roomFloor[roomB]
	return ok && a == b
}

// SameBuilding scans the aggregated room set of roomA's building for roomB.
func (x *RoomIndex) SameBuilding(roomA, roomB string) bool {
	b, ok := x.roomBuilding[roomA]
	if !ok {
		return false
	}
	_, ok = x.buildingRooms[b][roomB]
	return ok
}

// MapURLOf returns the indoor map URL base of the room's floor.
func (x *RoomIndex) MapURLOf(roomID string) (string, bool) {
	f, ok := x.FloorOf(roomID)
	if !ok {
		return "", false
	}
	return f.IndoorMapURLBase, true
}

// EntranceOf applies Floor.EntranceFor to the room's floor.
func (x *RoomIndex) EntranceOf(roomID string, accessible, outdoor bool) (string, bool) {
	f, ok := x.FloorOf(roomID)
	if !ok {
		return "", false
	}
	return f.EntranceFor(accessible, outdoor), true
}

func (x *RoomIndex) IsBuildingEntranceFloor(floorID string) bool {
	b, ok := x.floorBuilding[floorID]
	if !ok {
		return false
	}
	return x.entranceFloor[b] == floorID
}

// EntranceFloorOf returns the ground floor of the building owning floorID.
func (x *RoomIndex) EntranceFloorOf(floorID string) (Floor, bool) {
	b, ok := x.floorBuilding[floorID]
	if !ok {
		return Floor{}, false
	}
	ground, ok := x.entranceFloor[b]
	if !ok {
		return Floor{}, false
	}
	return x.Floor(ground)
}

func (x *RoomIndex) HasRoom(roomID string) bool {
	_, ok := x.roomFloor[roomID]
	return ok
}

// RoomCount is the number of indexed rooms.
func (x *RoomIndex) RoomCount() int { return len(x.roomFloor) }
