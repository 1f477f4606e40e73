// Package storage provides the namespaced key-value store the companion
// features persist into, mirroring the prototype's localStorage contract:
// absence of a key reads as false/absent, malformed values read as absent,
// writes overwrite wholesale and the last writer wins.
package storage

// KV is the persisted key-value contract. Implementations must never surface
// a "corrupted" state distinct from "never initialized".
type KV interface {
	// GetBool returns true only when the stored value is the literal "true".
	GetBool(key string) bool
	SetBool(key string, value bool) error

	// GetJSON unmarshals the stored value into out and reports whether a
	// well-formed value was present. Missing or malformed values report
	// false and leave out untouched.
	GetJSON(key string, out any) bool
	SetJSON(key string, value any) error

	Delete(key string) error
}

// Stable key names. These are carried over verbatim from the prototype so a
// data migration off the browser store stays mechanical.
const (
	KeyTravelProfile   = "korail.travelProfile.v1"
	KeyPurchaseHistory = "korail.purchaseHistory.v1"
	KeyCertified       = "korail.certified.v1"
	KeyMateInfoDone    = "korail.koMateInfoDone.v1"
	KeyTripCreatedOnce = "korail.koTripCreatedOnce.v1"
	KeyTripStep1       = "korail.koTripStep1.v1"
	KeyTripStep2       = "korail.koTripStep2.v1"
)

// ChatKey returns the per-room transcript key.
func ChatKey(roomID string) string {
	return "korail.chat." + roomID + ".v1"
}
