package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	chatmodel "github.com/traction-team/korail-mate/backend/internal/model/chat"
	chatservice "github.com/traction-team/korail-mate/backend/internal/service/chat"
	"github.com/traction-team/korail-mate/backend/pkg/utils"
)

// Handler 채팅 화면의 HTTP 처리기
type Handler struct {
	svc *chatservice.Service
}

// New 채팅 처리기 생성
func New(svc *chatservice.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes 채팅 관련 라우트 등록
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/chat/rooms", h.handleListRooms)
	r.Get("/chat/rooms/{roomID}/messages", h.handleOpenRoom)
	r.Post("/chat/rooms/{roomID}/messages", h.handleSend)
}

func (h *Handler) handleListRooms(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, chatmodel.SeedRooms())
}

// handleOpenRoom 방 열람. 처음 여는 방은 예시 대화로 시드된다.
func (h *Handler) handleOpenRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")
	msgs, err := h.svc.Open(roomID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to open room")
		return
	}
	utils.RespondJSON(w, http.StatusOK, msgs)
}

// handleSend REST 전송 경로. 답장은 타이머가 만료되면 대화록에만 기록되고,
// 실시간 전달이 필요하면 웹소켓 경로를 쓴다.
func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.svc.Send(roomID, payload.Text, nil)
	if err != nil {
		if errors.Is(err, chatservice.ErrEmptyMessage) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to send message")
		return
	}
	utils.RespondJSON(w, http.StatusAccepted, msg)
}
