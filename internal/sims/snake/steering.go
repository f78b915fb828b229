package snake

// Steering arbitrates heading changes between ticks.
//
// At most one request is accepted per tick: the first accepted change locks
// further requests until Unlock is called at the end of the tick. Reversing
// straight into the body is refused, but a headless actor may turn around.
type Steering struct {
	heading Heading
	locked  bool
}

// NewSteering returns a Steering pointing at h.
func NewSteering(h Heading) Steering {
	if !h.Valid() {
		h = DefaultHeading
	}
	return Steering{heading: h}
}

// Heading returns the committed heading.
func (s Steering) Heading() Heading { return s.heading }

// Locked reports whether a change was already accepted this tick.
func (s Steering) Locked() bool { return s.locked }

// Request asks for a turn to h given the current body length. It reports
// whether the heading changed.
func (s *Steering) Request(h Heading, bodyLen int) bool {
	if s.locked || !h.Valid() {
		return false
	}
	if h == s.heading {
		return false
	}
	if h == s.heading.Opposite() && bodyLen > 0 {
		return false
	}
	s.heading = h
	s.locked = true
	return true
}

// Unlock clears the per-tick lockout.
func (s *Steering) Unlock() { s.locked = false }

// Reset points the steering at h and clears the lockout.
func (s *Steering) Reset(h Heading) {
	*s = NewSteering(h)
}
