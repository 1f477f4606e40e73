package chat

// Room is a chat room entry shown on the room list screen.
type Room struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastText string `json:"lastText"`
	LastAgo  string `json:"lastAgo"`
}

// SeedRooms provides the fixed mock room list from the prototype.
func SeedRooms() []Room {
	placeholder := "채팅 내용 입니다. 채팅 내용 입니다. 채팅 내용 입니다…"
	return []Room{
		{ID: "room-traction", Name: "트랙션 팀원", LastText: placeholder, LastAgo: "1 day ago"},
		{ID: "room-1", Name: "닉네임", LastText: placeholder, LastAgo: "1 day ago"},
		{ID: "room-2", Name: "닉네임", LastText: placeholder, LastAgo: "1 day ago"},
		{ID: "room-3", Name: "닉네임", LastText: placeholder, LastAgo: "1 day ago"},
	}
}
