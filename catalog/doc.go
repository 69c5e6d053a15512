/*
Package catalog provides the static campus building catalog and the room index
built on top of it.

The catalog is data-source agnostic: it is decoded from YAML bytes or an
io.Reader and is never mutated after load. It does NOT handle HTTP downloads;
the CLI fetcher does that and passes bytes in.

# Basic Usage

Load the embedded default campus:

	cat, err := catalog.Default()
	if err != nil {
	    log.Fatal(err)
	}
	idx := catalog.NewRoomIndex(cat)

	floorID, ok := idx.FloorIDOf("s_7e282b843c0f8a66")
	url, ok := idx.MapURLOf("s_7e282b843c0f8a66")

Load from your own source:

	data, _ := os.ReadFile("campus.yml")
	cat, err := catalog.Parse(data)

# Data Structure

	Building (id, name, startFloor)
	  └── Floor (id, name, floorId, indoorMapUrlBase, entrances, exit)
	        └── rooms: label -> roomId

The index provides constant time lookups for:

- Rooms (roomId → floorId, buildingId, indoor map URL base)
- Floors (floorId → floor record, owning building)
- Buildings (buildingId → entrance floor, aggregated room ids)

Every lookup returns (value, ok). A missing room is not an error.

# Indoor map URLs

Each floor's indoorMapUrlBase must already carry its own query prefix ("?"),
so that "&floor=...&location=...&departure=..." can always be appended.
Parse rejects catalogs that break this rule.

# Snapshots

Parsed catalogs can be cached with SaveSnapshot/LoadSnapshot (gob) to skip
YAML decoding and validation on startup. A snapshot keeps Catalog.Source so
callers can tell whether it was taken from the source they expect.
*/
package catalog
