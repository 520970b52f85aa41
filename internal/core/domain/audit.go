package domain

import "time"

// AuditEntry records one administrative or authentication action for the
// admin audit trail.
type AuditEntry struct {
	ID         string         `json:"id"`
	ActorID    string         `json:"actor_id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	OldValues  map[string]any `json:"old_values,omitempty"`
	NewValues  map[string]any `json:"new_values,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Audit action names. Kept as plain strings in storage; the constants exist
// so services and tests agree on spelling.
const (
	AuditActionRegister   = "register"
	AuditActionLogin      = "login"
	AuditActionLogout     = "logout"
	AuditActionDeactivate = "deactivate"
	AuditActionActivate   = "activate"
	AuditActionDelete     = "delete"
)
