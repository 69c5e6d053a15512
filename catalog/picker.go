package catalog

import "sort"

// Option is one entry of the room picker shown by the UI.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// PickerOptions flattens the catalog into picker entries ordered by building,
// floor and room label. Values are room ids and unique because Parse enforces it.
func PickerOptions(cat *Catalog) []Option {
	var out []Option
	for _, b := range cat.Buildings {
		for _, f := range b.Floors {
			labels := make([]string, 0, len(f.Rooms))
			for label := range f.Rooms {
				labels = append(labels, label)
			}
			sort.Strings(labels)
			for _, label := range labels {
				out = append(out, Option{Label: b.Name + " " + label, Value: f.Rooms[label]})
			}
		}
	}
	return out
}

// BuildingSummary is a short description of a building.
type BuildingSummary struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	StartFloor string   `json:"startFloor,omitempty"`
	Floors     []string `json:"floors"`
	Rooms      int      `json:"rooms"`
}

func Summaries(cat *Catalog) []BuildingSummary {
	out := make([]BuildingSummary, 0, len(cat.Buildings))
	for _, b := range cat.Buildings {
		s := BuildingSummary{ID: b.ID, Name: b.Name, StartFloor: b.StartFloor, Floors: []string{}}
		for _, f := range b.Floors {
			s.Floors = append(s.Floors, f.Name)
			s.Rooms += len(f.Rooms)
		}
		out = append(out, s)
	}
	return out
}
