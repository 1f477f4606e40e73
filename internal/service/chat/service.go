// Package chat keeps per-room transcripts in the KV store and simulates the
// other side of the conversation with a delayed canned reply.
package chat

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/traction-team/korail-mate/backend/internal/model/chat"
	"github.com/traction-team/korail-mate/backend/internal/storage"
)

// ErrEmptyMessage rejects blank sends, matching the send button's guard.
var ErrEmptyMessage = errors.New("message text is empty")

// DeliverFunc receives the simulated reply once its timer fires. The reply
// is already appended to the transcript when it is called.
type DeliverFunc func(chat.Message)

// Service owns transcripts and the per-room reply timers. At most one reply
// is pending per room: a new send replaces it, leaving a room cancels it.
type Service struct {
	kv       storage.KV
	replier  *Replier
	minDelay time.Duration
	maxDelay time.Duration

	mu      sync.Mutex
	pending map[string]*pendingReply
	rand    *rand.Rand
}

// pendingReply identifies one scheduled reply so that a timer which already
// started firing cannot cancel a newer send's bookkeeping.
type pendingReply struct {
	timer *time.Timer
}

// NewService builds the chat service. Delay bounds outside (0, ∞) or in the
// wrong order fall back to the prototype's 800–1600ms window.
func NewService(kv storage.KV, replier *Replier, minDelay, maxDelay time.Duration) *Service {
	if minDelay <= 0 || maxDelay <= minDelay {
		minDelay = 800 * time.Millisecond
		maxDelay = 1600 * time.Millisecond
	}
	return &Service{
		kv:       kv,
		replier:  replier,
		minDelay: minDelay,
		maxDelay: maxDelay,
		pending:  make(map[string]*pendingReply),
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Transcript loads a room's message log. A room never opened is an empty
// list, never an error.
func (s *Service) Transcript(roomID string) []chat.Message {
	var msgs []chat.Message
	if !s.kv.GetJSON(storage.ChatKey(roomID), &msgs) {
		return []chat.Message{}
	}
	if msgs == nil {
		msgs = []chat.Message{}
	}
	return msgs
}

// SaveTranscript rewrites the full transcript for a room. The storage layer
// has no incremental append.
func (s *Service) SaveTranscript(roomID string, msgs []chat.Message) error {
	return s.kv.SetJSON(storage.ChatKey(roomID), msgs)
}

// Open returns the transcript, lazily seeding a never-opened room with the
// example exchange the prototype shows.
func (s *Service) Open(roomID string) ([]chat.Message, error) {
	existing := s.Transcript(roomID)
	if len(existing) > 0 {
		return existing, nil
	}

	now := time.Now()
	seed := []chat.Message{
		{
			ID:     uuid.NewString(),
			RoomID: roomID,
			From:   chat.FromOther,
			Text:   "안녕하세요!",
			TS:     now.Add(-time.Hour).UnixMilli(),
		},
		{
			ID:     uuid.NewString(),
			RoomID: roomID,
			From:   chat.FromMe,
			Text:   "네 안녕하세요 :)",
			TS:     now.Add(-50 * time.Minute).UnixMilli(),
		},
	}
	if err := s.SaveTranscript(roomID, seed); err != nil {
		return nil, err
	}
	return seed, nil
}

// Send appends the user's message and schedules the simulated reply. deliver
// may be nil; the reply still lands in the transcript when the timer fires.
func (s *Service) Send(roomID, text string, deliver DeliverFunc) (chat.Message, error) {
	if text == "" {
		return chat.Message{}, ErrEmptyMessage
	}

	msg := chat.Message{
		ID:     uuid.NewString(),
		RoomID: roomID,
		From:   chat.FromMe,
		Text:   text,
		TS:     time.Now().UnixMilli(),
	}
	if err := s.SaveTranscript(roomID, append(s.Transcript(roomID), msg)); err != nil {
		return chat.Message{}, err
	}

	s.scheduleReply(roomID, text, deliver)
	return msg, nil
}

// CancelReply drops a pending reply timer for the room, reporting whether
// one was pending. Called on room teardown.
func (s *Service) CancelReply(roomID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[roomID]
	if !ok {
		return false
	}
	p.timer.Stop()
	delete(s.pending, roomID)
	return true
}

// Close cancels every pending reply.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for roomID, p := range s.pending {
		p.timer.Stop()
		delete(s.pending, roomID)
	}
}

func (s *Service) scheduleReply(roomID, userText string, deliver DeliverFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A still-pending reply is replaced, not queued.
	if prev, ok := s.pending[roomID]; ok {
		prev.timer.Stop()
	}

	delay := s.minDelay + time.Duration(s.rand.Int63n(int64(s.maxDelay-s.minDelay)))
	token := &pendingReply{}
	token.timer = time.AfterFunc(delay, func() {
		s.fireReply(roomID, userText, deliver, token)
	})
	s.pending[roomID] = token
}

func (s *Service) fireReply(roomID, userText string, deliver DeliverFunc, token *pendingReply) {
	s.mu.Lock()
	if s.pending[roomID] != token {
		// Cancelled or replaced between firing and acquiring the lock.
		s.mu.Unlock()
		return
	}
	delete(s.pending, roomID)
	s.mu.Unlock()

	reply := chat.Message{
		ID:     uuid.NewString(),
		RoomID: roomID,
		From:   chat.FromOther,
		Text:   s.replier.Reply(userText),
		TS:     time.Now().UnixMilli(),
	}
	if err := s.SaveTranscript(roomID, append(s.Transcript(roomID), reply)); err != nil {
		return
	}
	if deliver != nil {
		deliver(reply)
	}
}
