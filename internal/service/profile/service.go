// Package profile persists the single travel profile record.
package profile

import (
	"github.com/traction-team/korail-mate/backend/internal/model/profile"
	"github.com/traction-team/korail-mate/backend/internal/storage"
)

// Service is the typed repository over the KV store. It performs no
// validation and computes nothing: callers derive AvatarSeed before Save.
type Service struct {
	kv storage.KV
}

// NewService binds the repository to a KV store.
func NewService(kv storage.KV) *Service {
	return &Service{kv: kv}
}

// Load returns the stored profile, or ok=false when none (or a corrupted
// record, which is indistinguishable by contract) exists.
func (s *Service) Load() (profile.Profile, bool) {
	var p profile.Profile
	if !s.kv.GetJSON(storage.KeyTravelProfile, &p) {
		return profile.Profile{}, false
	}
	return p, true
}

// Save overwrites the profile wholesale. Empty fields are legal.
func (s *Service) Save(p profile.Profile) error {
	return s.kv.SetJSON(storage.KeyTravelProfile, p)
}

// Clear removes the stored profile.
func (s *Service) Clear() error {
	return s.kv.Delete(storage.KeyTravelProfile)
}

// Exists reports whether a profile record is present, the predicate the
// gating policy keys on.
func (s *Service) Exists() bool {
	_, ok := s.Load()
	return ok
}
