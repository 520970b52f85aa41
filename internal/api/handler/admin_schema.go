package handler

import "time"

type userListResponse struct {
	Users []accountResponse `json:"users"`
	Count int               `json:"count"`
}

type auditEntryResponse struct {
	ID         string         `json:"id"`
	ActorID    string         `json:"actor_id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	OldValues  map[string]any `json:"old_values,omitempty"`
	NewValues  map[string]any `json:"new_values,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

type auditListResponse struct {
	Logs    []auditEntryResponse `json:"logs"`
	Total   int64                `json:"total"`
	Page    int                  `json:"page"`
	PerPage int                  `json:"per_page"`
}

type mutationResponse struct {
	Message string          `json:"message"`
	User    accountResponse `json:"user"`
}
