package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed data/campus.yml
var defaultCampus []byte

var validate = newValidator()

// DuplicateError reports an id that appears on two floors.
type DuplicateError struct {
	Kind   string // "room" or "floor"
	ID     string
	First  string
	Second string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s id %q on %s and %s", e.Kind, e.ID, e.First, e.Second)
}

// Default decodes the campus catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCampus)
}

// ParseReader decodes and validates a catalog from r.
func ParseReader(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cat); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("catalog is empty")
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := Validate(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks struct rules plus catalog-wide uniqueness of room and floor ids.
func Validate(cat *Catalog) error {
	if err := validate.Struct(cat); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	rooms := map[string]string{}  // roomId -> floor location
	floors := map[string]string{} // floorId -> building id
	for _, b := range cat.Buildings {
		for _, f := range b.Floors {
			where := b.ID + "/" + f.ID
			if prev, ok := floors[f.FloorID]; ok {
				return &DuplicateError{Kind: "floor", ID: f.FloorID, First: prev, Second: where}
			}
			floors[f.FloorID] = where
			for _, roomID := range f.Rooms {
				if prev, ok := rooms[roomID]; ok {
					return &DuplicateError{Kind: "room", ID: roomID, First: prev, Second: where}
				}
				rooms[roomID] = where
			}
		}
	}
	return nil
}

// MissingEntranceFloors lists buildings whose startFloor names none of their floors.
func (c *Catalog) MissingEntranceFloors() []string {
	var out []string
	for _, b := range c.Buildings {
		found := false
		for _, f := range b.Floors {
			if b.StartFloor != "" && f.Name == b.StartFloor {
				found = true
				break
			}
		}
		if !found {
			out = append(out, b.ID)
		}
	}
	return out
}

func newValidator() *validator.Validate {
	v := validator.New()
	// indoor map bases carry their own query prefix so "&k=v" can be appended
	err := v.RegisterValidation("mapbase", func(fl validator.FieldLevel) bool {
		return strings.Contains(fl.Field().String(), "?")
	})
	if err != nil {
		panic(fmt.Sprintf("catalog: register mapbase validation: %v", err))
	}
	return v
}
