package models

import "time"

// FeedbackRequest carries the reporter's satisfaction answers for a
// resolved complaint.
type FeedbackRequest struct {
	SatisfiedWithWork  *bool `json:"satisfiedWithWork"`
	SatisfiedWithSpeed *bool `json:"satisfiedWithSpeed"`
}

// EmployeeRequest identifies the municipal employee assigned to work
// on a complaint.
type EmployeeRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// ResolveRequest carries proof that the work was completed.
type ResolveRequest struct {
	ResolvedImageURL string `json:"resolvedImageUrl"`
}

// StatusRequest is the free-form status override payload.
type StatusRequest struct {
	Status string `json:"status"`
}

// ComplaintEvent is published to Redis on every lifecycle change and
// streamed to admin dashboards over the websocket feed.
type ComplaintEvent struct {
	ComplaintID string    `json:"complaint_id"`
	Type        string    `json:"type"` // "created", "upvoted", "assigned", "resolved", "status", "feedback"
	Status      Status    `json:"status"`
	Category    string    `json:"category"`
	OccurredAt  time.Time `json:"occurred_at"`
}
