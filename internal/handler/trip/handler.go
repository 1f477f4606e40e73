package trip

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	tripmodel "github.com/traction-team/korail-mate/backend/internal/model/trip"
	tripservice "github.com/traction-team/korail-mate/backend/internal/service/trip"
	"github.com/traction-team/korail-mate/backend/pkg/utils"
)

// Handler ko-trip 게시판과 모집글 작성 위저드의 HTTP 처리기
type Handler struct {
	posts  tripservice.PostSource
	wizard *tripservice.Wizard
}

// New ko-trip 처리기 생성
func New(posts tripservice.PostSource, wizard *tripservice.Wizard) *Handler {
	return &Handler{posts: posts, wizard: wizard}
}

// RegisterRoutes ko-trip 라우트 등록
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/trips/posts", h.handleListPosts)
	r.Get("/trips/wizard", h.handleStage)
	r.Post("/trips/wizard/step1", h.handleStep1)
	r.Post("/trips/wizard/step2", h.handleStep2)
	r.Get("/trips/wizard/summary", h.handleSummary)
	r.Post("/trips/wizard/complete", h.handleComplete)
	r.Post("/trips/wizard/abandon", h.handleAbandon)
}

func (h *Handler) handleListPosts(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.posts.Posts())
}

func (h *Handler) handleStage(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"stage":       h.wizard.Stage(),
		"createdOnce": h.wizard.CreatedOnce(),
	})
}

func (h *Handler) handleStep1(w http.ResponseWriter, r *http.Request) {
	var d tripmodel.Step1
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.wizard.SubmitStep1(d); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"stage": string(tripmodel.StageStep2)})
}

func (h *Handler) handleStep2(w http.ResponseWriter, r *http.Request) {
	var d tripmodel.Step2
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.wizard.SubmitStep2(d); err != nil {
		if errors.Is(err, tripservice.ErrStep1Missing) {
			// 단계를 건너뛴 경우 — 앞 단계로 돌려보낸다.
			utils.RespondRedirect(w, string(tripmodel.StageStep1))
			return
		}
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"stage": string(tripmodel.StageGenerate)})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.wizard.Summary()
	if err != nil {
		switch {
		case errors.Is(err, tripservice.ErrStep1Missing):
			utils.RespondRedirect(w, string(tripmodel.StageStep1))
		case errors.Is(err, tripservice.ErrStep2Missing):
			utils.RespondRedirect(w, string(tripmodel.StageStep2))
		default:
			utils.RespondError(w, http.StatusInternalServerError, "failed to build summary")
		}
		return
	}
	utils.RespondJSON(w, http.StatusOK, sum)
}

func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	if err := h.wizard.Complete(); err != nil {
		if errors.Is(err, tripservice.ErrStep1Missing) || errors.Is(err, tripservice.ErrStep2Missing) {
			utils.RespondRedirect(w, string(h.wizard.Stage()))
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to complete")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "created"})
}

func (h *Handler) handleAbandon(w http.ResponseWriter, r *http.Request) {
	if err := h.wizard.Abandon(); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to abandon")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "abandoned"})
}
