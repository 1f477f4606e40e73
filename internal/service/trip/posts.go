package trip

import (
	"math/rand"
	"strconv"

	"github.com/traction-team/korail-mate/backend/internal/model/trip"
)

// PostSource supplies the board's posts. Behind an interface so tests can
// pin a fixture.
type PostSource interface {
	Posts() []trip.Post
}

var postTitles = []string{
	"맛집 같이 가실 분 구해요",
	"혼자 가기 아쉬운 여행",
	"힐링 여행 메이트 구합니다",
	"사진 찍으러 같이 가요",
	"자유롭게 여행하실 분",
	"현지 투어 함께하실 분",
	"핫플 위주로 같이 돌아요",
	"가볍게 1박2일 다녀요",
}

var postDescs = []string{
	"혼자 가기 어려운 체험이나 맛집 같이 가실 분 구합니다! 제가 현지 맛집 정보를 많이 알고 있어요.",
	"일정은 유동적으로 조정 가능하고, 편하게 같이 다녀요!",
	"여유롭게 구경하고 카페도 들르는 스타일이에요. 부담 없이 연락 주세요.",
	"사진 찍는 거 좋아하시는 분 환영합니다. 인생샷 코스 짜볼게요.",
	"맛집 위주로 다니고, 이동은 최소로 하고 싶어요. 느긋하게 즐겨요.",
	"유명 관광지 + 로컬 코스 섞어서 가려구요. 같이 계획해요!",
}

var postNicknames = []string{
	"트랙션 팀원",
	"여행러버",
	"코레일덕후",
	"혼행러",
	"맛집헌터",
	"사진장인",
	"힐링매니아",
	"핫플수집가",
}

var postAgeGroups = []string{"20대", "30대", "40대", "50대"}
var postGenders = []string{"여자", "남자"}

var postDateSets = []struct {
	start, end, daysText string
}{
	{"25.12.14", "25.12.15", "(2일)"},
	{"25.12.20", "25.12.22", "(3일)"},
	{"26.01.03", "26.01.03", "(당일)"},
	{"26.01.10", "26.01.13", "(4일)"},
	{"26.02.01", "26.02.02", "(2일)"},
}

const mockPostCount = 6

// MockPosts is the seeded random board, generated once at construction so
// the list is stable for the process lifetime.
type MockPosts struct {
	posts []trip.Post
}

// NewMockPosts generates the board from a seed. The same seed always yields
// the same posts; the first post is pinned to the team account.
func NewMockPosts(seed int64) *MockPosts {
	r := rand.New(rand.NewSource(seed))
	pick := func(items []string) string { return items[r.Intn(len(items))] }

	posts := make([]trip.Post, 0, mockPostCount)
	for i := 0; i < mockPostCount; i++ {
		date := postDateSets[r.Intn(len(postDateSets))]
		nickname := pick(postNicknames)
		if i == 0 {
			nickname = "트랙션 팀원"
		}
		posts = append(posts, trip.Post{
			ID:       strconv.Itoa(i + 1),
			Title:    pick(postTitles),
			Desc:     pick(postDescs),
			Nickname: nickname,
			AgeGroup: pick(postAgeGroups),
			Gender:   pick(postGenders),
			Start:    date.start,
			End:      date.end,
			DaysText: date.daysText,
		})
	}
	return &MockPosts{posts: posts}
}

// Posts implements PostSource.
func (m *MockPosts) Posts() []trip.Post {
	return append([]trip.Post(nil), m.posts...)
}

var _ PostSource = (*MockPosts)(nil)
