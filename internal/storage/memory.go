package storage

import (
	"encoding/json"
	"sync"
)

// Memory is the in-process KV used by tests and as a fallback when no durable
// path is configured. Same semantics as SQLite minus durability.
type Memory struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

// GetBool implements KV.
func (s *Memory) GetBool(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m[key] == "true"
}

// SetBool implements KV.
func (s *Memory) SetBool(key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value {
		s.m[key] = "true"
	} else {
		s.m[key] = "false"
	}
	return nil
}

// GetJSON implements KV.
func (s *Memory) GetJSON(key string, out any) bool {
	s.mu.RLock()
	raw, ok := s.m[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}

// SetJSON implements KV.
func (s *Memory) SetJSON(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.m[key] = string(raw)
	s.mu.Unlock()
	return nil
}

// Delete implements KV.
func (s *Memory) Delete(key string) error {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
	return nil
}

var _ KV = (*Memory)(nil)

// Null is the degraded store used when no backing store is available, the
// counterpart of the prototype rendering without a window: reads return the
// empty defaults and writes are accepted no-ops.
type Null struct{}

// GetBool implements KV.
func (Null) GetBool(string) bool { return false }

// SetBool implements KV.
func (Null) SetBool(string, bool) error { return nil }

// GetJSON implements KV.
func (Null) GetJSON(string, any) bool { return false }

// SetJSON implements KV.
func (Null) SetJSON(string, any) error { return nil }

// Delete implements KV.
func (Null) Delete(string) error { return nil }

var _ KV = Null{}
