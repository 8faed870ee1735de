package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Poll types. The admin form offers multiple choice but voting is
// single-select either way; the field is stored for forward compatibility.
const (
	PollTypeSingle   = "single"
	PollTypeMultiple = "multiple"
)

// Poll is a question with an ordered set of options and running tallies.
// TotalVotes must equal the sum of option votes; the vote transaction
// maintains both under a row lock.
type Poll struct {
	ID         uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Question   string         `json:"question" gorm:"size:500;not null"`
	PollType   string         `json:"poll_type" gorm:"size:20;default:'single'"`
	TotalVotes int            `json:"total_votes" gorm:"not null;default:0"`
	Active     bool           `json:"active" gorm:"default:true;index"`
	EndDate    string         `json:"end_date,omitempty" gorm:"size:20"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Options []PollOption `json:"options" gorm:"foreignKey:PollID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Poll) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PollOption is one selectable answer, ordered by Idx within its poll.
type PollOption struct {
	ID     uuid.UUID `json:"-" gorm:"type:char(36);primaryKey"`
	PollID uuid.UUID `json:"-" gorm:"type:char(36);not null;uniqueIndex:idx_poll_option"`
	Idx    int       `json:"idx" gorm:"not null;uniqueIndex:idx_poll_option"`
	Text   string    `json:"text" gorm:"size:255;not null"`
	Votes  int       `json:"votes" gorm:"not null;default:0"`
}

// BeforeCreate sets UUID before creating the record.
func (o *PollOption) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// PollVote is the at-most-once marker for a user's vote on a poll. The
// unique (poll_id, user_id) index is what makes double voting impossible
// even when two submissions race.
type PollVote struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	PollID    uuid.UUID `json:"poll_id" gorm:"type:char(36);not null;uniqueIndex:idx_poll_voter"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:idx_poll_voter"`
	OptionIdx int       `json:"option_idx" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (v *PollVote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
