package formatter

import (
	"github.com/theoremus-urban-solutions/campus-wayfinder/stepper"
	"github.com/theoremus-urban-solutions/campus-wayfinder/utils"
	"github.com/theoremus-urban-solutions/campus-wayfinder/wayfinding"
)

// RouteResponse is what the mobile UI renders for one trip.
type RouteResponse struct {
	ResponseTimestamp string              `json:"responseTimestamp"`
	ProducerRef       string              `json:"producerRef,omitempty"`
	TripID            string              `json:"tripId,omitempty"`
	ValidUntil        string              `json:"validUntil,omitempty"`
	Category          wayfinding.Category `json:"category,omitempty"`
	Trip              wayfinding.Trip     `json:"trip"`
	Legs              []wayfinding.Leg    `json:"legs"`
	Stepper           stepper.State       `json:"stepper"`
}

// ErrorResponse carries a single error description.
type ErrorResponse struct {
	ResponseTimestamp string `json:"responseTimestamp"`
	Call              string `json:"call"`
	Description       string `json:"description"`
}

// WrapRoute combines a planned route with the current stepper view.
func WrapRoute(tripID string, route wayfinding.Route, st stepper.State, producerRef string) *RouteResponse {
	if producerRef == "" {
		producerRef = "UNKNOWN"
	}
	legs := route.Legs
	if legs == nil {
		legs = []wayfinding.Leg{}
	}
	return &RouteResponse{
		ResponseTimestamp: utils.Iso8601Now(),
		ProducerRef:       producerRef,
		TripID:            tripID,
		Category:          route.Category,
		Trip:              route.Trip,
		Legs:              legs,
		Stepper:           st,
	}
}

// WrapError builds an error payload for the named call.
func WrapError(call, msg string) *ErrorResponse {
	return &ErrorResponse{
		ResponseTimestamp: utils.Iso8601Now(),
		Call:              call,
		Description:       msg,
	}
}
