package catalog

// Floor is one level of a building as seen by the indoor map provider.
type Floor struct {
	ID               string `yaml:"id" json:"id" validate:"required"`
	Name             string `yaml:"name" json:"name" validate:"required"`
	FloorID          string `yaml:"floorId" json:"floorId" validate:"required"`
	IndoorMapURLBase string `yaml:"indoorMapUrlBase" json:"indoorMapUrlBase" validate:"required,mapbase"`
	Entrance         string `yaml:"entrance" json:"entrance" validate:"required"`
	DisabledEntrance string `yaml:"disabledEntrance,omitempty" json:"disabledEntrance,omitempty"`
	OutdoorEntrance  string `yaml:"outdoorEntrance,omitempty" json:"outdoorEntrance,omitempty"`
	// Exit is only set on a building's ground floor.
	Exit  string            `yaml:"exit,omitempty" json:"exit,omitempty"`
	Rooms map[string]string `yaml:"rooms" json:"rooms" validate:"dive,keys,required,endkeys,required"` // label -> roomId
}

// EntranceFor picks the entrance token for the given flags.
//
// The outdoor override is gated on DisabledEntrance being present, not on
// OutdoorEntrance; both flags may apply and outdoor wins.
func (f Floor) EntranceFor(accessible, outdoor bool) string {
	e := f.Entrance
	if accessible && f.DisabledEntrance != "" {
		e = f.DisabledEntrance
	}
	if outdoor && f.DisabledEntrance != "" {
		e = f.outdoorEntrance()
	}
	return e
}

// ExitPoint returns the exit token, falling back to the outdoor entrance.
func (f Floor) ExitPoint() string {
	if f.Exit != "" {
		return f.Exit
	}
	return f.outdoorEntrance()
}

func (f Floor) outdoorEntrance() string {
	if f.OutdoorEntrance != "" {
		return f.OutdoorEntrance
	}
	return f.Entrance
}

// Building is an ordered list of floors; StartFloor names the ground floor.
type Building struct {
	ID         string  `yaml:"id" json:"id" validate:"required"`
	Name       string  `yaml:"name" json:"name" validate:"required"`
	StartFloor string  `yaml:"startFloor" json:"startFloor"`
	Floors     []Floor `yaml:"floors" json:"floors" validate:"required,min=1,dive"`
}

// Catalog is the root of the campus data. Treat it as read-only once built.
type Catalog struct {
	Name      string     `yaml:"name" json:"name"`
	Buildings []Building `yaml:"buildings" json:"buildings" validate:"required,min=1,dive"`

	// Source records where the catalog was read from. It is set by the
	// caller, not the YAML, and travels with snapshots.
	Source string `yaml:"-" json:"-"`
}

// BuildingByID returns the building with the given id.
func (c *Catalog) BuildingByID(id string) (Building, bool) {
	for _, b := range c.Buildings {
		if b.ID == id {
			return b, true
		}
	}
	return Building{}, false
}
