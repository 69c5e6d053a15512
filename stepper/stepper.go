// Package stepper walks a user forward and backward through a leg sequence.
package stepper

import "github.com/theoremus-urban-solutions/campus-wayfinder/wayfinding"

// Idle is the index when nothing is selected.
const Idle = -1

// Stepper holds the current leg index. It is not safe for concurrent use.
type Stepper struct {
	legs  []wayfinding.Leg
	index int
}

// New returns a stepper already reset to legs.
func New(legs []wayfinding.Leg) *Stepper {
	s := &Stepper{index: Idle}
	s.Reset(legs)
	return s
}

// Reset replaces the sequence: AtLeg(0) when non-empty, Idle otherwise.
func (s *Stepper) Reset(legs []wayfinding.Leg) {
	s.legs = make([]wayfinding.Leg, len(legs))
	copy(s.legs, legs)
	if len(s.legs) == 0 {
		s.index = Idle
		return
	}
	s.index = 0
}

// Next advances one leg. At the last leg it steps back one instead.
func (s *Stepper) Next() {
	if s.index == Idle {
		return
	}
	switch {
	case s.index+1 < len(s.legs):
		s.index++
	case s.index > 0:
		s.index--
	}
}

// Previous moves back one leg; ignored at the first leg or when idle.
func (s *Stepper) Previous() {
	if s.index <= 0 {
		return
	}
	s.index--
}

func (s *Stepper) Index() int { return s.index }

func (s *Stepper) Len() int { return len(s.legs) }

func (s *Stepper) IsIdle() bool { return s.index == Idle }

// Current returns the selected leg.
func (s *Stepper) Current() (wayfinding.Leg, bool) {
	if s.index == Idle {
		return wayfinding.Leg{}, false
	}
	return s.legs[s.index], true
}

func (s *Stepper) ShowNext() bool {
	return s.index != Idle && s.index+1 < len(s.legs) && len(s.legs) > 1
}

// ShowPrevious is true on any leg but the first, including the last.
func (s *Stepper) ShowPrevious() bool {
	return s.index != Idle && s.index != 0
}

// State is a read-only view of the stepper for renderers.
type State struct {
	Index        int             `json:"index"`
	Total        int             `json:"total"`
	Idle         bool            `json:"idle"`
	Current      *wayfinding.Leg `json:"current,omitempty"`
	ShowNext     bool            `json:"showNext"`
	ShowPrevious bool            `json:"showPrevious"`
}

func (s *Stepper) State() State {
	st := State{
		Index:        s.index,
		Total:        len(s.legs),
		Idle:         s.IsIdle(),
		ShowNext:     s.ShowNext(),
		ShowPrevious: s.ShowPrevious(),
	}
	if leg, ok := s.Current(); ok {
		st.Current = &leg
	}
	return st
}
