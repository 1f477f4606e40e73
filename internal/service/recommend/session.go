// Package recommend holds the recommendation session state and the two pure
// result generators: the free-travel itinerary synthesizer and the package
// matcher.
package recommend

import (
	gocache "github.com/patrickmn/go-cache"

	"github.com/traction-team/korail-mate/backend/internal/model/recommend"
)

// Session is one recommendation flow's state. Exactly one of Itinerary and
// MatchedPackages is meaningful, selected by Input.TravelType.
type Session struct {
	Input           *recommend.Input         `json:"input"`
	Itinerary       []recommend.ItineraryDay `json:"itinerary"`
	MatchedPackages []recommend.PackageItem  `json:"matchedPackages"`
}

// Sessions keeps recommendation sessions in memory only. A restart loses
// them; screens that find no input must send the user back to the input step.
type Sessions struct {
	c *gocache.Cache
}

// NewSessions builds an empty session holder. Entries never expire on their
// own; Reset is the only cleanup path.
func NewSessions() *Sessions {
	return &Sessions{c: gocache.New(gocache.NoExpiration, 0)}
}

// Get returns the session for id, ok=false when none exists.
func (s *Sessions) Get(id string) (Session, bool) {
	v, ok := s.c.Get(id)
	if !ok {
		return Session{}, false
	}
	return v.(Session), true
}

// SetInput stores a freshly submitted query and clears stale results.
func (s *Sessions) SetInput(id string, in recommend.Input) {
	s.c.Set(id, Session{Input: &in}, gocache.NoExpiration)
}

// SetItinerary attaches the synthesized plan to the session.
func (s *Sessions) SetItinerary(id string, days []recommend.ItineraryDay) {
	sess, _ := s.Get(id)
	sess.Itinerary = days
	s.c.Set(id, sess, gocache.NoExpiration)
}

// SetMatchedPackages attaches the matched offers to the session.
func (s *Sessions) SetMatchedPackages(id string, items []recommend.PackageItem) {
	sess, _ := s.Get(id)
	sess.MatchedPackages = items
	s.c.Set(id, sess, gocache.NoExpiration)
}

// Reset clears the whole session on flow exit.
func (s *Sessions) Reset(id string) {
	s.c.Delete(id)
}
