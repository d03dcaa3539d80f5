package domain

import "time"

// EntityType identifies which kind of record an activity entry refers to.
type EntityType string

const (
	EntityNote   EntityType = "note"
	EntityClient EntityType = "client"
	EntityUser   EntityType = "user"
)

// Action is the mutation recorded by an activity entry.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// FieldChange captures a single field's before/after values.
type FieldChange struct {
	From any `json:"from" bson:"from"`
	To   any `json:"to" bson:"to"`
}

// ActivityLog is one append-only audit entry. The log holds only a
// back-reference (EntityType + EntityID); it never owns the referenced
// entity. Entries are never mutated or deleted.
type ActivityLog struct {
	ID          string                 `json:"id"`
	EntityType  EntityType             `json:"entity_type"`
	EntityID    string                 `json:"entity_id"`
	Action      Action                 `json:"action"`
	Changes     map[string]FieldChange `json:"changes,omitempty"`
	PerformedBy string                 `json:"performed_by"`
	Timestamp   time.Time              `json:"timestamp"`
	Metadata    map[string]any         `json:"metadata,omitempty"`
}
