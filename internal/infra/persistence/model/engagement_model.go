package model

import (
	"time"

	"github.com/google/uuid"
)

// NewsletterSubscriptionModel is the GORM-specific struct for the
// 'newsletter_subscriptions' table.
type NewsletterSubscriptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Email     string    `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NewsletterSubscriptionModel) TableName() string {
	return "newsletter_subscriptions"
}

// ContactMessageModel is the GORM-specific struct for the 'contact_messages' table.
type ContactMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"not null;index"`
	Subject   string    `gorm:"not null"`
	Message   string    `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactMessageModel) TableName() string {
	return "contact_messages"
}
