package models

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;not null" json:"id"`
	UploaderID  uuid.UUID `gorm:"column:uploader_id;type:uuid;not null;index" json:"uploader_id"`
	Title       string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Subject     string    `gorm:"column:subject;type:varchar(100);not null" json:"subject"`
	Description string    `gorm:"column:description;type:text;not null;default:''" json:"description"`
	FileURL     string    `gorm:"column:file_url;type:text;not null" json:"file_url"`
	StoragePath string    `gorm:"column:storage_path;type:text;not null" json:"storage_path"`
	ContentType string    `gorm:"column:content_type;type:varchar(100);not null" json:"content_type"`
	FileSize    int64     `gorm:"column:file_size;type:bigint;not null;default:0" json:"file_size"`
	Downloads   int       `gorm:"column:downloads;type:int;not null;default:0" json:"downloads"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Note) TableName() string {
	return "notes"
}
