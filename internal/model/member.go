package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Member is the membership roster record created alongside a User at signup.
// Admins approve pending members from the back office.
type Member struct {
	ID            uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	UserID        uuid.UUID      `json:"user_id" gorm:"type:char(36);not null;index"`
	FullName      string         `json:"full_name" gorm:"size:255;not null"`
	StudentNumber string         `json:"student_number,omitempty" gorm:"size:50"`
	YearLevel     string         `json:"year_level,omitempty" gorm:"size:50"`
	Email         string         `json:"email" gorm:"size:255;not null"`
	Status        string         `json:"status" gorm:"size:20;default:'pending';index"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
