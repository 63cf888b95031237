package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment order statuses.
const (
	PaymentCreated = "created"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// PaymentOrder tracks one checkout attempt against the payment gateway.
// Amount is in the currency's smallest unit (paise for INR), matching the
// gateway's order API.
type PaymentOrder struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;not null" json:"id"`
	OrderID        string    `gorm:"column:order_id;type:varchar(64);unique;not null" json:"order_id"`
	EventID        uuid.UUID `gorm:"column:event_id;type:uuid;not null;index" json:"event_id"`
	UserID         uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	RegistrationID uuid.UUID `gorm:"column:registration_id;type:uuid;not null" json:"registration_id"`
	Amount         int64     `gorm:"column:amount;type:bigint;not null" json:"amount"`
	Currency       string    `gorm:"column:currency;type:varchar(10);not null;default:'INR'" json:"currency"`
	Status         string    `gorm:"column:status;type:varchar(20);not null;default:'created'" json:"status"`
	PaymentID      string    `gorm:"column:payment_id;type:varchar(64);not null;default:''" json:"payment_id"`
	CreatedAt      time.Time `gorm:"column:created_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (PaymentOrder) TableName() string {
	return "payment_orders"
}
