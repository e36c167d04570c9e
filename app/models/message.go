package models

import "time"

// Message is a contact-form submission. Created by the public contact
// endpoint, read/deleted only from the back office.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"size:100;not null" json:"email"`
	Subject    string    `gorm:"size:255;not null" json:"subject"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	ReceivedAt time.Time `gorm:"index;column:received_at" json:"received_at"`
	Read       bool      `json:"read"`
}
