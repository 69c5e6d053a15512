package catalog_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/campus-wayfinder/catalog"
	"github.com/theoremus-urban-solutions/campus-wayfinder/catalog/catalogtest"
)

const minimalCatalog = `
name: Mini
buildings:
  - id: X
    name: Xylo
    startFloor: "1"
    floors:
      - id: X1
        name: "1"
        floorId: f_x1
        indoorMapUrlBase: https://maps.test/x?embed=1
        entrance: x_in
        exit: x_exit
        rooms:
          X100: r_x100
          X101: r_x101
`

func TestParse_Minimal(t *testing.T) {
	cat, err := catalog.Parse([]byte(minimalCatalog))
	require.NoError(t, err)
	require.Len(t, cat.Buildings, 1)

	b := cat.Buildings[0]
	assert.Equal(t, "Xylo", b.Name)
	assert.Equal(t, "1", b.StartFloor)
	require.Len(t, b.Floors, 1)
	assert.Equal(t, "f_x1", b.Floors[0].FloorID)
	assert.Equal(t, "x_exit", b.Floors[0].Exit)
	assert.Equal(t, "r_x101", b.Floors[0].Rooms["X101"])
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantSub string
	}{
		{
			name:    "empty document",
			yaml:    "",
			wantSub: "empty",
		},
		{
			name:    "invalid yaml",
			yaml:    "buildings: [[[",
			wantSub: "decode",
		},
		{
			name:    "unknown field",
			yaml:    strings.Replace(minimalCatalog, "exit: x_exit", "exitt: x_exit", 1),
			wantSub: "decode",
		},
		{
			name:    "map base without query prefix",
			yaml:    strings.Replace(minimalCatalog, "https://maps.test/x?embed=1", "https://maps.test/x", 1),
			wantSub: "mapbase",
		},
		{
			name:    "missing entrance",
			yaml:    strings.Replace(minimalCatalog, "entrance: x_in", "", 1),
			wantSub: "Entrance",
		},
		{
			name:    "no buildings",
			yaml:    "name: Empty\nbuildings: []\n",
			wantSub: "Buildings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantSub)
		})
	}
}

func TestValidate_DuplicateRoom(t *testing.T) {
	cat := catalogtest.Fixture()
	cat.Buildings[1].Floors[0].Rooms["B999"] = "r_a201"

	err := catalog.Validate(cat)
	var dup *catalog.DuplicateError
	require.True(t, errors.As(err, &dup), "expected DuplicateError, got %v", err)
	assert.Equal(t, "room", dup.Kind)
	assert.Equal(t, "r_a201", dup.ID)
	assert.Equal(t, "A/A2", dup.First)
	assert.Equal(t, "B/B1", dup.Second)
}

func TestValidate_DuplicateFloorID(t *testing.T) {
	cat := catalogtest.Fixture()
	cat.Buildings[2].Floors[1].FloorID = "f_c1"

	err := catalog.Validate(cat)
	var dup *catalog.DuplicateError
	require.True(t, errors.As(err, &dup), "expected DuplicateError, got %v", err)
	assert.Equal(t, "floor", dup.Kind)
	assert.Equal(t, "f_c1", dup.ID)
}

func TestValidate_SharedValidatorConcurrent(t *testing.T) {
	good := catalogtest.Fixture()
	bad := catalogtest.Fixture()
	bad.Buildings[0].Floors[0].IndoorMapURLBase = "https://maps.test/no-query"

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, catalog.Validate(good))
			err := catalog.Validate(bad)
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), "mapbase")
			}
		}()
	}
	wg.Wait()
}

func TestDefault_LoadsCampus(t *testing.T) {
	cat := catalogtest.LoadDefault(t)

	assert.NotEmpty(t, cat.Name)
	assert.Empty(t, cat.MissingEntranceFloors(), "every default building has an entrance floor")
	for _, id := range []string{"H", "SP", "MB"} {
		_, ok := cat.BuildingByID(id)
		assert.True(t, ok, "building %s should exist", id)
	}
}

func TestMissingEntranceFloors(t *testing.T) {
	cat := catalogtest.Fixture()
	assert.Equal(t, []string{"C"}, cat.MissingEntranceFloors())

	cat.Buildings[0].StartFloor = "9"
	assert.Equal(t, []string{"A", "C"}, cat.MissingEntranceFloors())
}

func TestParseReader(t *testing.T) {
	cat, err := catalog.ParseReader(strings.NewReader(minimalCatalog))
	require.NoError(t, err)
	assert.Equal(t, "Mini", cat.Name)
}
