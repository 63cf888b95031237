package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Event statuses.
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

type Event struct {
	ID                   uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;not null" json:"id"`
	HostID               uuid.UUID      `gorm:"column:host_id;type:uuid;not null;index" json:"host_id"`
	Title                string         `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description          string         `gorm:"column:description;type:text;not null" json:"description"`
	Category             string         `gorm:"column:category;type:varchar(100);not null" json:"category"`
	Mode                 string         `gorm:"column:mode;type:varchar(20);not null" json:"mode"`
	StartTime            time.Time      `gorm:"column:start_time;type:timestamp with time zone;not null" json:"start_time"`
	EndTime              time.Time      `gorm:"column:end_time;type:timestamp with time zone;not null" json:"end_time"`
	RegistrationDeadline time.Time      `gorm:"column:registration_deadline;type:timestamp with time zone;not null" json:"registration_deadline"`
	Venue                string         `gorm:"column:venue;type:varchar(255)" json:"venue"`
	City                 string         `gorm:"column:city;type:varchar(100)" json:"city"`
	FeeAmount            float64        `gorm:"column:fee_amount;type:decimal(10,2);not null;default:0" json:"fee_amount"`
	IsFree               bool           `gorm:"column:is_free;not null;default:true" json:"is_free"`
	TeamSizeMin          int            `gorm:"column:team_size_min;type:int;not null;default:1" json:"team_size_min"`
	TeamSizeMax          int            `gorm:"column:team_size_max;type:int;not null;default:1" json:"team_size_max"`
	Requirements         datatypes.JSON `gorm:"column:requirements;type:jsonb" json:"requirements"`
	Tags                 datatypes.JSON `gorm:"column:tags;type:jsonb" json:"tags"`
	Skills               datatypes.JSON `gorm:"column:skills;type:jsonb" json:"skills"`
	Prizes               datatypes.JSON `gorm:"column:prizes;type:jsonb" json:"prizes"`
	FAQs                 datatypes.JSON `gorm:"column:faqs;type:jsonb" json:"faqs"`
	BannerURL            string         `gorm:"column:banner_url;type:text;not null;default:''" json:"banner_url"`
	BannerStoragePath    string         `gorm:"column:banner_storage_path;type:text;not null;default:''" json:"banner_storage_path"`
	Status               string         `gorm:"column:status;type:varchar(20);not null;default:'upcoming'" json:"status"`
	CreatedAt            time.Time      `gorm:"column:created_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"column:updated_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}
