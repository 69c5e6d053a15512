package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/campus-wayfinder/catalog"
	"github.com/theoremus-urban-solutions/campus-wayfinder/formatter"
	"github.com/theoremus-urban-solutions/campus-wayfinder/stepper"
	"github.com/theoremus-urban-solutions/campus-wayfinder/utils"
)

type healthResponse struct {
	Status    string `json:"status"`
	Catalog   string `json:"catalog"`
	Buildings int    `json:"buildings"`
	Rooms     int    `json:"rooms"`
	Trips     int    `json:"active_trips"`
	StartedAt string `json:"started_at"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	cat := s.index.Catalog()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Catalog:   cat.Name,
		Buildings: len(cat.Buildings),
		Rooms:     s.index.RoomCount(),
		Trips:     s.sessions.Len(),
		StartedAt: utils.Iso8601(s.started),
	})
}

func (s *Server) handleRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.PickerOptions(s.index.Catalog()))
}

func (s *Server) handleBuildings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Summaries(s.index.Catalog()))
}

// handleRoute plans without creating a session; the stepper view is at leg 0.
func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	format, err := parseFormat(r)
	if err != nil {
		s.writeError(w, "route", "json", http.StatusBadRequest, err)
		return
	}
	trip, err := parseTripQuery(r, s.cfg.Navigation.WheelchairDefault)
	if err != nil {
		s.writeError(w, "route", format, http.StatusBadRequest, err)
		return
	}
	route := s.legs.Plan(trip)
	res := formatter.WrapRoute("", route, stepper.New(route.Legs).State(), s.index.Catalog().Name)
	s.writeRoute(w, http.StatusOK, res, format)
}

func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	format, err := parseFormat(r)
	if err != nil {
		s.writeError(w, "createTrip", "json", http.StatusBadRequest, err)
		return
	}
	trip, err := decodeTripRequest(r, s.cfg.Navigation.WheelchairDefault)
	if err != nil {
		s.writeError(w, "createTrip", format, http.StatusBadRequest, err)
		return
	}
	route := s.legs.Plan(trip)
	v, err := s.sessions.Create(route)
	if err != nil {
		s.writeError(w, "createTrip", format, http.StatusServiceUnavailable, err)
		return
	}
	if len(route.Legs) > 0 && (!s.index.HasRoom(trip.StartRoomID) || !s.index.HasRoom(trip.EndRoomID)) {
		s.logger.Warn("trip references unknown room",
			zap.String("start", trip.StartRoomID),
			zap.String("end", trip.EndRoomID))
	}
	s.logger.Info("trip created",
		zap.String("trip_id", v.ID.String()),
		zap.String("category", string(route.Category)),
		zap.Int("legs", len(route.Legs)),
		zap.Bool("wheelchair", trip.WheelchairAccess))
	s.writeRoute(w, http.StatusCreated, s.wrapSession(v), format)
}

func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, "getTrip", func(tripID uuid.UUID, format string) {
		v, ok := s.sessions.Get(tripID)
		if !ok {
			s.writeError(w, "getTrip", format, http.StatusNotFound, errTripNotFound)
			return
		}
		s.writeRoute(w, http.StatusOK, s.wrapSession(v), format)
	})
}

func (s *Server) handleStep(dir Direction) http.HandlerFunc {
	call := string(dir)
	return func(w http.ResponseWriter, r *http.Request) {
		s.withSession(w, r, call, func(tripID uuid.UUID, format string) {
			v, ok := s.sessions.Step(tripID, dir)
			if !ok {
				s.writeError(w, call, format, http.StatusNotFound, errTripNotFound)
				return
			}
			s.logger.Debug("stepper moved",
				zap.String("trip_id", tripID.String()),
				zap.String("direction", call),
				zap.Int("index", v.State.Index))
			s.writeRoute(w, http.StatusOK, s.wrapSession(v), format)
		})
	}
}

func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, "deleteTrip", func(tripID uuid.UUID, format string) {
		if !s.sessions.Delete(tripID) {
			s.writeError(w, "deleteTrip", format, http.StatusNotFound, errTripNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

var errTripNotFound = &QueryError{Msg: "No such trip."}

// withSession validates format and trip id before calling fn.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, call string, fn func(tripID uuid.UUID, format string)) {
	format, err := parseFormat(r)
	if err != nil {
		s.writeError(w, call, "json", http.StatusBadRequest, err)
		return
	}
	tripID, err := parseTripID(chi.URLParam(r, "tripID"))
	if err != nil {
		s.writeError(w, call, format, http.StatusBadRequest, err)
		return
	}
	fn(tripID, format)
}

func (s *Server) wrapSession(v SessionView) *formatter.RouteResponse {
	res := formatter.WrapRoute(v.ID.String(), v.Route, v.State, s.index.Catalog().Name)
	res.ValidUntil = utils.ValidUntilFrom(v.Touched, s.cfg.Server.SessionTTL)
	return res
}

func (s *Server) writeRoute(w http.ResponseWriter, status int, res *formatter.RouteResponse, format string) {
	setContentType(w, format)
	w.WriteHeader(status)
	_, _ = w.Write(formatter.NewResponseBuilder().Build(res, format))
}

func (s *Server) writeError(w http.ResponseWriter, call, format string, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("call", call), zap.Error(err))
	}
	rb := formatter.NewResponseBuilder()
	res := formatter.WrapError(call, err.Error())
	setContentType(w, format)
	w.WriteHeader(status)
	if format == "xml" {
		_, _ = w.Write(rb.BuildErrorXML(res))
		return
	}
	_, _ = w.Write(rb.BuildErrorJSON(res))
}

func setContentType(w http.ResponseWriter, format string) {
	if format == "xml" {
		w.Header().Set("Content-Type", "application/xml")
		return
	}
	w.Header().Set("Content-Type", "application/json")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
