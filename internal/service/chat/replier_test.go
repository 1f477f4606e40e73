package chat

import "testing"

func TestReplyPatternPriority(t *testing.T) {
	r := NewReplier(1)

	cases := []struct {
		in   string
		want string
	}{
		{"안녕하세요! 글 봤어요", patterns[0].reply},
		// Greeting outranks availability even when both match.
		{"안녕하세요 동행 가능할까요?", patterns[0].reply},
		{"이번 주말 동행 가능하세요?", patterns[1].reply},
		// Availability outranks time.
		{"토요일 출발 가능해요?", patterns[1].reply},
		{"몇 시에 볼까요?", patterns[2].reply},
		{"어디서 만날까요?", patterns[3].reply},
		{"답장 감사합니다", patterns[4].reply},
	}
	for _, c := range cases {
		if got := r.Reply(c.in); got != c.want {
			t.Fatalf("Reply(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestReplyFallbackPool(t *testing.T) {
	r := NewReplier(42)

	pool := make(map[string]bool)
	for _, g := range GenericReplies() {
		pool[g] = true
	}

	for i := 0; i < 20; i++ {
		got := r.Reply("ㅋㅋㅋㅋ")
		if !pool[got] {
			t.Fatalf("fallback reply %q not in the generic pool", got)
		}
	}
}

func TestReplyDeterministicPerSeed(t *testing.T) {
	a := NewReplier(7)
	b := NewReplier(7)
	for i := 0; i < 10; i++ {
		if ra, rb := a.Reply("zzz"), b.Reply("zzz"); ra != rb {
			t.Fatalf("seeded repliers diverged: %q vs %q", ra, rb)
		}
	}
}
