package profile

import "strings"

// Gender is the profile gender selection. Empty means not chosen yet.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// WakeUp captures the traveller's preferred rhythm.
type WakeUp string

const (
	WakeMorning WakeUp = "morning"
	WakeNight   WakeUp = "night"
	WakeFlex    WakeUp = "flex"
)

// Profile is the single travel profile a user fills in before joining the
// mate flows. Every save overwrites the whole record; empty fields are legal.
type Profile struct {
	Name       string   `json:"name"`
	Nickname   string   `json:"nickname"`
	Gender     Gender   `json:"gender"`
	Birth      string   `json:"birth"` // YYYY-MM-DD
	Region     string   `json:"region"`
	Intro      string   `json:"intro"` // 150자 제한은 입력 화면에서 강제
	MBTI       string   `json:"mbti"`
	WakeUp     WakeUp   `json:"wakeUp"`
	Food       []string `json:"food"`
	Etc        []string `json:"etc"`
	AvatarSeed string   `json:"avatarSeed"`
}

// DefaultAvatarSeed is used when neither nickname nor name yields a character.
const DefaultAvatarSeed = "K"

// AvatarSeed derives the single-character avatar seed from the nickname,
// falling back to the name, then to the fixed default, upper-cased.
func AvatarSeed(nickname, name string) string {
	for _, s := range []string{nickname, name} {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			continue
		}
		runes := []rune(trimmed)
		return strings.ToUpper(string(runes[0]))
	}
	return DefaultAvatarSeed
}
