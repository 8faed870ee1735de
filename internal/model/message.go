package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageStatusUnread is the status contact messages are created with.
const MessageStatusUnread = "unread"

// Message is a contact-form submission, readable and deletable by admins.
type Message struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string         `json:"name" gorm:"size:255;not null"`
	Email     string         `json:"email" gorm:"size:255;not null"`
	Subject   string         `json:"subject,omitempty" gorm:"size:255"`
	Body      string         `json:"body" gorm:"type:text;not null"`
	Status    string         `json:"status" gorm:"size:20;default:'unread'"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
