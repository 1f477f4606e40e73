package recommend

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	recommendmodel "github.com/traction-team/korail-mate/backend/internal/model/recommend"
	recommendservice "github.com/traction-team/korail-mate/backend/internal/service/recommend"
	"github.com/traction-team/korail-mate/backend/pkg/utils"
)

// DefaultSession 단일 사용자 프로토타입의 기본 세션 식별자
const DefaultSession = "default"

// Handler 여행 추천 흐름의 HTTP 처리기. 세션은 X-Session-ID 헤더로 구분하고,
// 없으면 기본 세션을 쓴다.
type Handler struct {
	svc *recommendservice.Service
}

// New 추천 처리기 생성
func New(svc *recommendservice.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes 추천 관련 라우트 등록
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/recommend/input", h.handleSubmit)
	r.Get("/recommend/result", h.handleResult)
	r.Get("/recommend/packages", h.handlePackages)
	r.Get("/recommend/itinerary.ics", h.handleICal)
	r.Post("/recommend/reset", h.handleReset)
}

func sessionID(r *http.Request) string {
	if id := r.Header.Get("X-Session-ID"); id != "" {
		return id
	}
	return DefaultSession
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var in recommendmodel.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.Submit(sessionID(r), in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"status": "accepted"})
}

// handleResult 로딩 화면이 끝날 때 호출된다. 입력이 없으면 입력 단계로
// 돌려보내는 신호를 준다 — 오류가 아니라 fail-soft 리다이렉트.
func (h *Handler) handleResult(w http.ResponseWriter, r *http.Request) {
	sess, err := h.svc.Generate(sessionID(r))
	if err != nil {
		if errors.Is(err, recommendservice.ErrNoInput) {
			utils.RespondRedirect(w, "input")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to generate result")
		return
	}
	utils.RespondJSON(w, http.StatusOK, sess)
}

// handlePackages 결과 화면의 표시 계층 보정: 목적 필터와 가격 정렬.
func (h *Handler) handlePackages(w http.ResponseWriter, r *http.Request) {
	purpose := r.URL.Query().Get("purpose")
	key := recommendservice.SortKey(r.URL.Query().Get("sort"))
	if key == "" {
		key = recommendservice.SortRelevance
	}

	items, options, err := h.svc.Packages(sessionID(r), purpose, key)
	if err != nil {
		utils.RespondRedirect(w, "input")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"items":          items,
		"purposeOptions": options,
	})
}

func (h *Handler) handleICal(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	days, in, err := h.svc.Itinerary(id)
	if err != nil {
		utils.RespondRedirect(w, "input")
		return
	}
	if len(days) == 0 {
		utils.RespondRedirect(w, "loading")
		return
	}

	start := time.Now()
	if in.StartDate != "" {
		if parsed, perr := time.ParseInLocation("2006-01-02", in.StartDate, time.Local); perr == nil {
			start = parsed
		}
	}

	out, err := recommendservice.ICal(days, in.Region1, start)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to render calendar")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.ics"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(out))
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	h.svc.Reset(sessionID(r))
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
