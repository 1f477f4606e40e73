package gate

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	gateservice "github.com/traction-team/korail-mate/backend/internal/service/gate"
	"github.com/traction-team/korail-mate/backend/internal/storage"
	"github.com/traction-team/korail-mate/backend/pkg/utils"
)

// flagKeys maps the mockable completion flags to their storage keys. The
// profile flag is not here: it is derived from the profile record itself.
var flagKeys = map[string]string{
	"purchase-history":  storage.KeyPurchaseHistory,
	"identity-verified": storage.KeyCertified,
	"mate-info-done":    storage.KeyMateInfoDone,
	"trip-created-once": storage.KeyTripCreatedOnce,
}

// Handler 게이트 판정과 mock 완료 플래그 토글 API
type Handler struct {
	policy *gateservice.Policy
	kv     storage.KV
}

// New 게이트 처리기 생성
func New(policy *gateservice.Policy, kv storage.KV) *Handler {
	return &Handler{policy: policy, kv: kv}
}

// RegisterRoutes 게이트/플래그 라우트 등록
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/gate/{action}", h.handleCheck)
	r.Get("/flags", h.handleListFlags)
	r.Put("/flags/{name}", h.handleSetFlag)
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	action := gateservice.Action(chi.URLParam(r, "action"))
	utils.RespondJSON(w, http.StatusOK, h.policy.Check(action))
}

func (h *Handler) handleListFlags(w http.ResponseWriter, r *http.Request) {
	out := make(map[string]bool, len(flagKeys))
	for name, key := range flagKeys {
		out[name] = h.kv.GetBool(key)
	}
	utils.RespondJSON(w, http.StatusOK, out)
}

// handleSetFlag 본인인증/구매이력 화면의 (mock) 완료 처리 버튼에 해당
func (h *Handler) handleSetFlag(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	key, ok := flagKeys[name]
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "unknown flag")
		return
	}

	var payload struct {
		Value bool `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.kv.SetBool(key, payload.Value); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to set flag")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]bool{name: payload.Value})
}
