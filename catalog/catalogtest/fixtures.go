// Package catalogtest provides small hand-built catalogs for tests.
package catalogtest

import (
	"testing"

	"github.com/theoremus-urban-solutions/campus-wayfinder/catalog"
)

const (
	BaseA = "https://maps.test/alpha?embed=1"
	BaseB = "https://maps.test/beta?embed=1"
	BaseC = "https://maps.test/gamma?embed=1"
)

// Fixture returns three buildings:
//
//	A (startFloor G): G ground with exit, 2 with disabled entrance,
//	  3 with outdoor but no disabled entrance
//	B (startFloor 1): 1 ground with exit and no outdoor entrance, 4 with all entrances
//	C (no startFloor): 1 plain, 2 with disabled entrance only
func Fixture() *catalog.Catalog {
	return &catalog.Catalog{
		Name: "Fixture Campus",
		Buildings: []catalog.Building{
			{
				ID: "A", Name: "Alpha", StartFloor: "G",
				Floors: []catalog.Floor{
					{
						ID: "AG", Name: "G", FloorID: "f_ag", IndoorMapURLBase: BaseA,
						Entrance: "a_g_in", DisabledEntrance: "a_g_dis", OutdoorEntrance: "a_g_out", Exit: "a_g_exit",
						Rooms: map[string]string{"A001": "r_a001"},
					},
					{
						ID: "A2", Name: "2", FloorID: "f_a2", IndoorMapURLBase: BaseA,
						Entrance: "a_2_in", DisabledEntrance: "a_2_dis",
						Rooms: map[string]string{"A201": "r_a201", "A202": "r_a202"},
					},
					{
						ID: "A3", Name: "3", FloorID: "f_a3", IndoorMapURLBase: BaseA,
						Entrance: "a_3_in", OutdoorEntrance: "a_3_out",
						Rooms: map[string]string{"A301": "r_a301"},
					},
				},
			},
			{
				ID: "B", Name: "Beta", StartFloor: "1",
				Floors: []catalog.Floor{
					{
						ID: "B1", Name: "1", FloorID: "f_b1", IndoorMapURLBase: BaseB,
						Entrance: "b_1_in", DisabledEntrance: "b_1_dis", Exit: "b_1_exit",
						Rooms: map[string]string{"B101": "r_b101"},
					},
					{
						ID: "B4", Name: "4", FloorID: "f_b4", IndoorMapURLBase: BaseB,
						Entrance: "b_4_in", DisabledEntrance: "b_4_dis", OutdoorEntrance: "b_4_out",
						Rooms: map[string]string{"B401": "r_b401"},
					},
				},
			},
			{
				ID: "C", Name: "Gamma",
				Floors: []catalog.Floor{
					{
						ID: "C1", Name: "1", FloorID: "f_c1", IndoorMapURLBase: BaseC,
						Entrance: "c_1_in",
						Rooms:    map[string]string{"C101": "r_c101"},
					},
					{
						ID: "C2", Name: "2", FloorID: "f_c2", IndoorMapURLBase: BaseC,
						Entrance: "c_2_in", DisabledEntrance: "c_2_dis",
						Rooms: map[string]string{"C201": "r_c201"},
					},
				},
			},
		},
	}
}

// Index builds a room index over Fixture.
func Index() *catalog.RoomIndex {
	return catalog.NewRoomIndex(Fixture())
}

// LoadDefault loads the embedded campus or fails the test.
func LoadDefault(t testing.TB) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("Failed to load default catalog: %v", err)
	}
	return cat
}
