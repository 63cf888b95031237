package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	ID                      uuid.UUID `gorm:"column:id;type:uuid;primaryKey;not null" json:"id"`
	FirstName               string    `gorm:"column:first_name;type:text;not null" json:"first_name"`
	LastName                string    `gorm:"column:last_name;type:text;not null" json:"last_name"`
	Username                string    `gorm:"column:username;type:text;unique;not null" json:"username"`
	Email                   string    `gorm:"column:email;type:text;unique;not null" json:"email"`
	Password                string    `gorm:"column:password;type:text;not null" json:"-"`
	Phone                   string    `gorm:"column:phone;type:text;not null;default:''" json:"phone"`
	Institution             string    `gorm:"column:institution;type:text;not null;default:''" json:"institution"`
	Role                    string    `gorm:"column:role;type:text;not null;default:'student'" json:"role"`
	ProfilePhotoURL         string    `gorm:"column:profile_pic_url;type:text;not null;default:''" json:"profile_photo_url"`
	ProfilePhotoStoragePath string    `gorm:"column:profile_pic_storage_path;type:text;not null;default:''" json:"profile_photo_storage_path"`
	CreatedAt               time.Time `gorm:"column:created_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt               time.Time `gorm:"column:updated_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// FullName is the display name used in participant lists and exports.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
