package domain

import (
	"time"

	"gorm.io/gorm"
)

// ContactMessage represents a contact form submission. Messages are immutable
// after creation; there is no update or delete endpoint.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null;index" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for ContactMessage
func (ContactMessage) TableName() string {
	return "contact_messages"
}

// BeforeCreate hook
func (c *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	return nil
}
