package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq" // Необхідний для pq.StringArray
	"gorm.io/gorm"
)

// Complaint представляє скаргу громадянина в системі.
// Містить дані репортера, геолокацію, категорію та стан обробки.
type Complaint struct {
	ID        string `gorm:"primaryKey" json:"id"` // UUID, генерується при створенні
	UserName  string `json:"userName"`
	UserPhone string `json:"userPhone"`

	// Category is matched case-insensitively against the urgency tiers
	// during scoring; stored exactly as the citizen typed it.
	Category    string `json:"category"`
	Description string `gorm:"type:text" json:"description"`
	Address     string `json:"address"`

	// Latitude/Longitude can be absent when the citizen filed without
	// location access.
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	ImageURL         string `gorm:"type:text" json:"imageUrl"`
	ResolvedImageURL string `gorm:"type:text" json:"resolvedImageUrl"`

	Status Status `gorm:"type:text" json:"status"`
	// StatusHistory records every accepted transition as "from->to".
	StatusHistory pq.StringArray `gorm:"type:text[]" json:"statusHistory"`

	// Upvotes starts at 1 (the reporter counts) and only ever grows.
	Upvotes int `json:"upvotes"`

	CreatedAt  time.Time  `json:"createdAt"`
	ResolvedAt *time.Time `json:"resolvedAt"`

	AssignedEmployeeName    string `json:"assignedEmployeeName"`
	AssignedEmployeeContact string `json:"assignedEmployeeContact"`

	// Feedback from the reporter after resolution; nil until submitted.
	SatisfiedWithWork  *bool `json:"satisfiedWithWork"`
	SatisfiedWithSpeed *bool `json:"satisfiedWithSpeed"`

	// Version is the optimistic-concurrency counter; every partial
	// update matches on it and bumps it by one.
	Version int `json:"version"`
}

// BeforeCreate — це хук GORM, який викликається перед створенням запису.
// Генерує UUID, якщо ID ще не встановлено, та виставляє стартову
// кількість голосів.
func (c *Complaint) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Upvotes == 0 {
		c.Upvotes = 1
	}
	return
}

// ScoredComplaint is a read-only listing view: a copy of the complaint
// plus the two computed scores. Never persisted; recomputed per request.
type ScoredComplaint struct {
	Complaint
	CitizenScore float64 `json:"citizenScore"`
	AdminScore   float64 `json:"adminScore"`
}
