package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Participant statuses. The server owns these; clients may only request a
// transition between them.
const (
	StatusRegistered = "registered"
	StatusConfirmed  = "confirmed"
	StatusAttended   = "attended"
	StatusCancelled  = "cancelled"
)

// ValidStatus reports whether s is one of the participant statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusRegistered, StatusConfirmed, StatusAttended, StatusCancelled:
		return true
	}
	return false
}

type Registration struct {
	ID                  uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;not null" json:"id"`
	// Cancelled rows are kept for history, so (event_id, user_id) is not
	// unique: re-registering after a cancel inserts a fresh row. One live
	// registration per user is enforced by the status-aware lookup in the
	// register handler.
	EventID             uuid.UUID      `gorm:"column:event_id;type:uuid;not null;index:idx_event_user" json:"event_id"`
	UserID              uuid.UUID      `gorm:"column:user_id;type:uuid;not null;index:idx_event_user" json:"user_id"`
	Phone               string         `gorm:"column:phone;type:varchar(20);not null" json:"phone"`
	AlternateEmail      string         `gorm:"column:alternate_email;type:text;not null;default:''" json:"alternate_email"`
	TeamName            string         `gorm:"column:team_name;type:varchar(100);not null;default:''" json:"team_name"`
	TeamSize            int            `gorm:"column:team_size;type:int;not null;default:1" json:"team_size"`
	TeamMembers         datatypes.JSON `gorm:"column:team_members;type:jsonb" json:"team_members"`
	Institution         string         `gorm:"column:institution;type:varchar(255);not null;default:''" json:"institution"`
	ExperienceLevel     string         `gorm:"column:experience_level;type:varchar(50);not null;default:''" json:"experience_level"`
	Motivation          string         `gorm:"column:motivation;type:text;not null;default:''" json:"motivation"`
	SpecialRequirements string         `gorm:"column:special_requirements;type:text;not null;default:''" json:"special_requirements"`
	Status              string         `gorm:"column:status;type:varchar(20);not null;default:'registered'" json:"status"`
	RegisteredAt        time.Time      `gorm:"column:registered_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"registered_at"`
	UpdatedAt           time.Time      `gorm:"column:updated_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Registration) TableName() string {
	return "registrations"
}
