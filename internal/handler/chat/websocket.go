package chat

import (
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	chatmodel "github.com/traction-team/korail-mate/backend/internal/model/chat"
	chatservice "github.com/traction-team/korail-mate/backend/internal/service/chat"
)

// WebSocketHandler 채팅방 실시간 연결. 사용자의 전송을 수신하고 지연된
// 자동 답장을 같은 연결로 밀어준다. 연결이 끊기면 대기 중인 답장 타이머는
// 취소된다 — 방을 떠난 뒤 고아 답장이 생기지 않도록.
type WebSocketHandler struct {
	svc      *chatservice.Service
	upgrader websocket.Upgrader
}

// NewWebSocketHandler 웹소켓 처리기 생성
func NewWebSocketHandler(svc *chatservice.Service) *WebSocketHandler {
	return &WebSocketHandler{
		svc: svc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes 웹소켓 라우트 등록
func (h *WebSocketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/chat/rooms/{roomID}/ws", h.handleRoom)
}

type inboundFrame struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type outboundFrame struct {
	Type    string            `json:"type"`
	Message *chatmodel.Message `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
}

func (h *WebSocketHandler) handleRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[chat-ws] upgrade failed for room=%s: %v", roomID, err)
		return
	}
	defer conn.Close()
	log.Printf("[chat-ws] connected room=%s", roomID)

	// gorilla 웹소켓은 동시 writer를 허용하지 않으므로 답장 타이머의
	// 콜백과 read 루프 응답 간에 직렬화가 필요하다.
	var writeMu sync.Mutex
	writeFrame := func(frame outboundFrame) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(frame); err != nil {
			log.Printf("[chat-ws] write failed room=%s: %v", roomID, err)
		}
	}

	// 접속 시 현재 대화록(필요하면 시드 포함)을 내려준다.
	msgs, err := h.svc.Open(roomID)
	if err == nil {
		for i := range msgs {
			writeFrame(outboundFrame{Type: "history", Message: &msgs[i]})
		}
	}

	deliver := func(m chatmodel.Message) {
		writeFrame(outboundFrame{Type: "reply", Message: &m})
	}

	for {
		var frame inboundFrame
		if err := conn.ReadJSON(&frame); err != nil {
			break
		}
		if frame.Type != "send" {
			writeFrame(outboundFrame{Type: "error", Error: "unknown frame type"})
			continue
		}

		msg, err := h.svc.Send(roomID, frame.Text, deliver)
		if err != nil {
			writeFrame(outboundFrame{Type: "error", Error: err.Error()})
			continue
		}
		writeFrame(outboundFrame{Type: "sent", Message: &msg})
	}

	// 연결 종료 = 방 이탈. 대기 중 답장은 버린다.
	if h.svc.CancelReply(roomID) {
		log.Printf("[chat-ws] cancelled pending reply room=%s", roomID)
	}
	log.Printf("[chat-ws] disconnected room=%s", roomID)
}
