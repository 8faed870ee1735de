package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegistrationStatusConfirmed is the only status registrations are created with.
const RegistrationStatusConfirmed = "confirmed"

// EventRegistration records a user's intent to attend an event. Event title
// and date plus the user's email and name are copied at registration time so
// admin lists stay readable even if the source records change. The unique
// (event_id, user_id) index enforces at-most-once registration; deletes are
// permanent so a removed attendee can register again.
type EventRegistration struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	EventID      uuid.UUID `json:"event_id" gorm:"type:char(36);not null;uniqueIndex:idx_event_attendee"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:idx_event_attendee"`
	EventTitle   string    `json:"event_title" gorm:"size:255;not null"`
	EventDate    string    `json:"event_date" gorm:"size:20"`
	UserEmail    string    `json:"user_email" gorm:"size:255"`
	UserName     string    `json:"user_name" gorm:"size:255"`
	Status       string    `json:"status" gorm:"size:20;default:'confirmed'"`
	RegisteredAt time.Time `json:"registered_at" gorm:"autoCreateTime"`
}

// BeforeCreate sets UUID before creating the record.
func (r *EventRegistration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
