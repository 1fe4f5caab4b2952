package models

import "time"

type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"size:360;uniqueIndex;not null" json:"email"`
	Phone string `gorm:"size:20;not null" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
