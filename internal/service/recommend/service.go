package recommend

import (
	"errors"

	"github.com/traction-team/korail-mate/backend/internal/model/recommend"
)

// ErrNoInput signals that a result screen was reached without a submitted
// query. It is a redirect signal, not a failure: the caller sends the user
// back to the input step.
var ErrNoInput = errors.New("recommend input not set")

// ErrInvalidInput rejects a query the input screen would not have let through.
var ErrInvalidInput = errors.New("recommend input incomplete")

// Service drives a recommendation session end to end over the in-memory
// session holder and the static package catalog.
type Service struct {
	sessions *Sessions
	catalog  []recommend.PackageItem
}

// NewService binds the session holder to the offer catalog.
func NewService(sessions *Sessions, catalog []recommend.PackageItem) *Service {
	return &Service{sessions: sessions, catalog: catalog}
}

// Submit validates and stores a new query, clearing any previous results.
func (s *Service) Submit(sessionID string, in recommend.Input) error {
	if !in.Valid() {
		return ErrInvalidInput
	}
	s.sessions.SetInput(sessionID, in)
	return nil
}

// Generate computes the session's result from its stored input: a
// synthesized itinerary for FREE, matched packages for PACKAGE. Safe to call
// repeatedly; the computation is pure and cheap.
func (s *Service) Generate(sessionID string) (Session, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok || sess.Input == nil {
		return Session{}, ErrNoInput
	}

	in := *sess.Input
	if in.TravelType == recommend.TravelFree {
		s.sessions.SetItinerary(sessionID, Synthesize(in.Period, in.Region1, in.Purposes))
	} else {
		s.sessions.SetMatchedPackages(sessionID, Match(in, s.catalog))
	}

	sess, _ = s.sessions.Get(sessionID)
	return sess, nil
}

// Packages returns the session's matched set refined for display.
func (s *Service) Packages(sessionID, purpose string, key SortKey) ([]recommend.PackageItem, []string, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok || sess.Input == nil {
		return nil, nil, ErrNoInput
	}
	return Refine(sess.MatchedPackages, purpose, key), PurposeOptions(sess.MatchedPackages), nil
}

// Itinerary returns the session's synthesized plan.
func (s *Service) Itinerary(sessionID string) ([]recommend.ItineraryDay, *recommend.Input, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok || sess.Input == nil {
		return nil, nil, ErrNoInput
	}
	return sess.Itinerary, sess.Input, nil
}

// Reset clears the session on flow exit.
func (s *Service) Reset(sessionID string) {
	s.sessions.Reset(sessionID)
}
