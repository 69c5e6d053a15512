package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/campus-wayfinder/wayfinding"
)

const maxBodyBytes = 16 << 10

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// tripRequest leaves wheelchairAccess nil when the client omits it.
type tripRequest struct {
	StartRoomID      string `json:"startRoomId" validate:"omitempty,max=64,printascii"`
	EndRoomID        string `json:"endRoomId" validate:"omitempty,max=64,printascii"`
	WheelchairAccess *bool  `json:"wheelchairAccess"`
}

var validate = validator.New()

func decodeTripRequest(r *http.Request, wheelchairDefault bool) (wayfinding.Trip, error) {
	var req tripRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return wayfinding.Trip{}, &QueryError{Msg: "Request body must be a trip object: " + err.Error()}
	}
	return toTrip(req, wheelchairDefault)
}

// parseTripQuery reads from, to and wheelchair query parameters (case-insensitive keys).
func parseTripQuery(r *http.Request, wheelchairDefault bool) (wayfinding.Trip, error) {
	params := map[string]string{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[strings.ToLower(k)] = strings.TrimSpace(v[0])
		}
	}
	req := tripRequest{StartRoomID: params["from"], EndRoomID: params["to"]}
	if w, ok := params["wheelchair"]; ok && w != "" {
		b, err := strconv.ParseBool(w)
		if err != nil {
			return wayfinding.Trip{}, &QueryError{Msg: "wheelchair must be true or false."}
		}
		req.WheelchairAccess = &b
	}
	return toTrip(req, wheelchairDefault)
}

func toTrip(req tripRequest, wheelchairDefault bool) (wayfinding.Trip, error) {
	if err := validate.Struct(req); err != nil {
		return wayfinding.Trip{}, &QueryError{Msg: "Room ids must be printable and at most 64 characters."}
	}
	t := wayfinding.Trip{
		StartRoomID:      strings.TrimSpace(req.StartRoomID),
		EndRoomID:        strings.TrimSpace(req.EndRoomID),
		WheelchairAccess: wheelchairDefault,
	}
	if req.WheelchairAccess != nil {
		t.WheelchairAccess = *req.WheelchairAccess
	}
	return t, nil
}

func parseFormat(r *http.Request) (string, error) {
	f := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	switch f {
	case "", "json":
		return "json", nil
	case "xml":
		return "xml", nil
	}
	return "", &QueryError{Msg: "Unsupported format: " + f}
}

func parseTripID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, &QueryError{Msg: "Malformed trip id: " + s}
	}
	return id, nil
}
