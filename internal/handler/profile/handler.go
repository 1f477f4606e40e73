package profile

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	profilemodel "github.com/traction-team/korail-mate/backend/internal/model/profile"
	profileservice "github.com/traction-team/korail-mate/backend/internal/service/profile"
	"github.com/traction-team/korail-mate/backend/pkg/utils"
)

// Handler 여행 프로필 화면의 HTTP 처리기
type Handler struct {
	svc *profileservice.Service
}

// New 프로필 처리기 생성
func New(svc *profileservice.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes 프로필 관련 라우트 등록
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/profile", h.handleGet)
	r.Put("/profile", h.handleSave)
	r.Delete("/profile", h.handleClear)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	p, ok := h.svc.Load()
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "profile not created")
		return
	}
	utils.RespondJSON(w, http.StatusOK, p)
}

// handleSave 프로필 전체 덮어쓰기 저장. avatarSeed는 저장 전에 화면 계층에서
// 파생하는 계약이므로 여기서 채운다.
func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var p profilemodel.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p.AvatarSeed = profilemodel.AvatarSeed(p.Nickname, p.Name)
	if err := h.svc.Save(p); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}
	utils.RespondJSON(w, http.StatusOK, p)
}

func (h *Handler) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Clear(); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to clear profile")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
