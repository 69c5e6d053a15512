// Package wayfinding turns a (start room, end room, wheelchair) request into
// an ordered sequence of navigable legs.
//
// A Planner classifies the room pair against a catalog.RoomIndex and builds:
//   - SameFloor: one indoor leg
//   - SameBuilding: two indoor legs through the floors' entrances
//   - CrossBuilding: three to five legs with exactly one outdoor leg
//
// Indoor legs carry a finished map URL. Legs whose room could not be resolved
// are kept with NotFound set and an empty URL; renderers must treat them as
// unusable. Planner is pure and safe for concurrent use. LegCache memoizes
// results for repeated requests.
package wayfinding
