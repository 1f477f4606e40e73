// Package gate decides whether a navigation action may proceed given the
// persisted completion flags. It only answers; callers handle the redirect.
package gate

import (
	"github.com/traction-team/korail-mate/backend/internal/model/profile"
	"github.com/traction-team/korail-mate/backend/internal/storage"
)

// Action names a gated navigation the screens ask about.
type Action string

const (
	ActionOpenFilter  Action = "open-filter"
	ActionStartCreate Action = "start-create"
)

// Requirement is one completion precondition.
type Requirement string

const (
	RequireProfile   Requirement = "profile-created"
	RequirePurchase  Requirement = "purchase-history"
	RequireCertified Requirement = "identity-verified"
)

// Decision is the policy's answer. Missing lists unmet requirements in
// check order; the caller prompts for the first one.
type Decision struct {
	Allowed bool          `json:"allowed"`
	Missing []Requirement `json:"missing,omitempty"`
}

// Policy checks requirement sets against the flag store. The mate-flow
// actions require only a created profile; the earlier three-flag variant
// (purchase + verification + profile) was superseded and is not registered,
// though the requirement kinds remain evaluable.
type Policy struct {
	kv      storage.KV
	actions map[Action][]Requirement
}

// NewPolicy builds the policy with the canonical action table.
func NewPolicy(kv storage.KV) *Policy {
	return &Policy{
		kv: kv,
		actions: map[Action][]Requirement{
			ActionOpenFilter:  {RequireProfile},
			ActionStartCreate: {RequireProfile},
		},
	}
}

// Requirements returns the registered requirement set for an action.
func (p *Policy) Requirements(action Action) []Requirement {
	return append([]Requirement(nil), p.actions[action]...)
}

// Check evaluates an action against the current flags. Actions with no
// registered requirements are allowed.
func (p *Policy) Check(action Action) Decision {
	return p.CheckAll(p.actions[action])
}

// CheckAll evaluates an explicit requirement set, for call sites that need a
// combination the action table does not carry.
func (p *Policy) CheckAll(required []Requirement) Decision {
	var missing []Requirement
	for _, req := range required {
		if !p.satisfied(req) {
			missing = append(missing, req)
		}
	}
	return Decision{Allowed: len(missing) == 0, Missing: missing}
}

func (p *Policy) satisfied(req Requirement) bool {
	switch req {
	case RequireProfile:
		var prof profile.Profile
		return p.kv.GetJSON(storage.KeyTravelProfile, &prof)
	case RequirePurchase:
		return p.kv.GetBool(storage.KeyPurchaseHistory)
	case RequireCertified:
		return p.kv.GetBool(storage.KeyCertified)
	default:
		return false
	}
}
