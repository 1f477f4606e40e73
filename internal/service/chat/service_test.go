package chat_test

import (
	"testing"
	"time"

	chatmodel "github.com/traction-team/korail-mate/backend/internal/model/chat"
	"github.com/traction-team/korail-mate/backend/internal/service/chat"
	"github.com/traction-team/korail-mate/backend/internal/storage"
)

func newService() *chat.Service {
	return chat.NewService(storage.NewMemory(), chat.NewReplier(1), 5*time.Millisecond, 10*time.Millisecond)
}

func TestTranscriptUnseededRoomIsEmpty(t *testing.T) {
	svc := newService()
	if msgs := svc.Transcript("room-9"); len(msgs) != 0 {
		t.Fatalf("expected empty transcript, got %d messages", len(msgs))
	}
}

func TestOpenSeedsOnce(t *testing.T) {
	svc := newService()

	first, err := svc.Open("room-1")
	if err != nil {
		t.Fatalf("Open err: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 seeded messages, got %d", len(first))
	}
	if first[0].From != chatmodel.FromOther || first[1].From != chatmodel.FromMe {
		t.Fatalf("unexpected seed senders: %s, %s", first[0].From, first[1].From)
	}

	again, err := svc.Open("room-1")
	if err != nil {
		t.Fatalf("Open err: %v", err)
	}
	if len(again) != 2 {
		t.Fatalf("seeding must happen once, got %d messages", len(again))
	}
	if again[0].ID != first[0].ID {
		t.Fatal("second open must return the stored seed, not a new one")
	}
}

func TestSendAppendsAndReplies(t *testing.T) {
	svc := newService()
	defer svc.Close()

	delivered := make(chan chatmodel.Message, 1)
	msg, err := svc.Send("room-1", "안녕하세요", func(m chatmodel.Message) { delivered <- m })
	if err != nil {
		t.Fatalf("Send err: %v", err)
	}
	if msg.From != chatmodel.FromMe || msg.ID == "" {
		t.Fatalf("unexpected sent message: %+v", msg)
	}

	select {
	case reply := <-delivered:
		if reply.From != chatmodel.FromOther {
			t.Fatalf("reply sender = %s", reply.From)
		}
	case <-time.After(time.Second):
		t.Fatal("reply never delivered")
	}

	msgs := svc.Transcript("room-1")
	if len(msgs) != 2 {
		t.Fatalf("expected user message + reply, got %d", len(msgs))
	}
	if msgs[1].From != chatmodel.FromOther {
		t.Fatal("reply must be appended after the user message")
	}
}

func TestSendEmptyRejected(t *testing.T) {
	svc := newService()
	if _, err := svc.Send("room-1", "", nil); err != chat.ErrEmptyMessage {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestCancelReply(t *testing.T) {
	svc := chat.NewService(storage.NewMemory(), chat.NewReplier(1), 50*time.Millisecond, 100*time.Millisecond)
	defer svc.Close()

	delivered := make(chan chatmodel.Message, 1)
	if _, err := svc.Send("room-1", "hello", func(m chatmodel.Message) { delivered <- m }); err != nil {
		t.Fatalf("Send err: %v", err)
	}
	if !svc.CancelReply("room-1") {
		t.Fatal("expected a pending reply to cancel")
	}
	if svc.CancelReply("room-1") {
		t.Fatal("second cancel must find nothing pending")
	}

	select {
	case <-delivered:
		t.Fatal("cancelled reply must not be delivered")
	case <-time.After(200 * time.Millisecond):
	}

	if msgs := svc.Transcript("room-1"); len(msgs) != 1 {
		t.Fatalf("cancelled reply must not be stored, transcript has %d", len(msgs))
	}
}

func TestNewSendReplacesPendingReply(t *testing.T) {
	svc := chat.NewService(storage.NewMemory(), chat.NewReplier(1), 30*time.Millisecond, 60*time.Millisecond)
	defer svc.Close()

	delivered := make(chan chatmodel.Message, 4)
	deliver := func(m chatmodel.Message) { delivered <- m }

	if _, err := svc.Send("room-1", "first", deliver); err != nil {
		t.Fatalf("Send err: %v", err)
	}
	if _, err := svc.Send("room-1", "second", deliver); err != nil {
		t.Fatalf("Send err: %v", err)
	}

	// Only the reply for the second send may arrive.
	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("replacement reply never delivered")
	}
	select {
	case m := <-delivered:
		t.Fatalf("unexpected extra reply: %+v", m)
	case <-time.After(150 * time.Millisecond):
	}

	msgs := svc.Transcript("room-1")
	if len(msgs) != 3 {
		t.Fatalf("expected 2 sends + 1 reply, got %d messages", len(msgs))
	}
}
