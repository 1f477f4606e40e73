package chat

import (
	"math/rand"
	"strings"
	"sync"
)

// pattern is one canned-reply rule. Patterns are checked in declaration
// order; the first keyword hit wins.
type pattern struct {
	keywords []string
	reply    string
}

// Pattern priority: greeting, availability, time, location, gratitude.
var patterns = []pattern{
	{
		keywords: []string{"안녕", "하이", "반가", "처음"},
		reply:    "안녕하세요! 글 보고 연락 주셨나요? 반가워요 :)",
	},
	{
		keywords: []string{"가능", "괜찮", "같이", "동행", "될까요"},
		reply:    "좋아요! 일정은 유동적으로 맞출 수 있어요. 같이 가요!",
	},
	{
		keywords: []string{"몇 시", "몇시", "시간", "언제", "출발"},
		reply:    "저는 오전 출발이 편한데, 몇 시가 좋으세요?",
	},
	{
		keywords: []string{"어디", "장소", "역", "만나"},
		reply:    "역 앞에서 만나는 게 제일 편할 것 같아요!",
	},
	{
		keywords: []string{"감사", "고마", "땡큐"},
		reply:    "별말씀을요! 즐거운 여행 만들어봐요 :)",
	},
}

// genericReplies is the fallback pool when no pattern matches.
var genericReplies = []string{
	"네네, 좋아요!",
	"오 그렇군요! 자세히 알려주세요.",
	"확인했어요 :)",
	"조금 이따 다시 답장드릴게요!",
	"저도 그 생각 했어요!",
}

// Replier maps free-text input to a canned reply. The random source behind
// the fallback pool is injectable so tests stay deterministic.
type Replier struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewReplier builds a replier over the given seed.
func NewReplier(seed int64) *Replier {
	return &Replier{rand: rand.New(rand.NewSource(seed))}
}

// Reply returns the canned response for text: first matching pattern in
// priority order, else a uniform pick from the generic pool.
func (r *Replier) Reply(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	for _, p := range patterns {
		for _, kw := range p.keywords {
			if strings.Contains(normalized, kw) {
				return p.reply
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return genericReplies[r.rand.Intn(len(genericReplies))]
}

// GenericReplies exposes the fallback pool for tests and screens that want
// to special-case it.
func GenericReplies() []string {
	return append([]string(nil), genericReplies...)
}
