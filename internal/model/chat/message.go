package chat

// Sender identifies which side of a room produced a message.
type Sender string

const (
	FromMe    Sender = "me"
	FromOther Sender = "other"
)

// Message is a single transcript entry. Transcript order is insertion order;
// TS is informational only.
type Message struct {
	ID     string `json:"id"`
	RoomID string `json:"roomId"`
	From   Sender `json:"from"`
	Text   string `json:"text"`
	TS     int64  `json:"ts"` // epoch millis
}
