package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Membership statuses, shared by User and Member.
const (
	StatusPending = "pending"
	StatusActive  = "active"
)

// User represents an authenticated portal user. New signups start as pending
// members; promotion to admin is a manual field edit.
type User struct {
	ID            uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Email         string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash  string         `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FullName      string         `json:"full_name" gorm:"size:255;not null"`
	StudentNumber string         `json:"student_number,omitempty" gorm:"size:50"`
	YearLevel     string         `json:"year_level,omitempty" gorm:"size:50"`
	Role          string         `json:"role" gorm:"size:20;default:'member';index"`
	Status        string         `json:"status" gorm:"size:20;default:'pending';index"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
