package models

import "time"

// ContactMessage is a persisted message from the contact form. It is stored
// before any email is attempted so delivery failures never lose the message.
type ContactMessage struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Email   string `json:"email" gorm:"not null;size:255" validate:"required,email"`
	Message string `json:"message" gorm:"type:text;not null" validate:"required"`

	CreatedAt time.Time `json:"created_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
