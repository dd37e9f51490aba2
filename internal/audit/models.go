package audit

import "time"

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time
	AccountID string
	Entity    string
	EntityID  string
	Action    string
	Detail    string
}

// Entity kinds recorded in events.
const (
	EntityAccount   = "account"
	EntityOwner     = "owner"
	EntityBuilding  = "building"
	EntityTenant    = "tenant"
	EntityAgreement = "agreement"
)

// Actions recorded in events.
const (
	ActionCreated     = "created"
	ActionUpdated     = "updated"
	ActionDeleted     = "deleted"
	ActionLogin       = "login"
	ActionLogout      = "logout"
	ActionGenerated   = "generated"
	ActionDeactivated = "deactivated"
)
