package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactSubmission is a visitor's callback request from the contact form.
type ContactSubmission struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Phone       string    `gorm:"size:50;not null" json:"phone"`
	Email       string    `gorm:"size:255;not null;default:''" json:"email"`
	Message     string    `gorm:"type:text;not null;default:''" json:"message"`
	ServiceType string    `gorm:"size:50;not null;default:''" json:"serviceType"`
	SpamReason  string    `gorm:"size:50;not null;default:''" json:"-"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
}

func (s *ContactSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
