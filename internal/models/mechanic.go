package models

import "time"

type Mechanic struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string  `gorm:"size:255;not null" json:"name"`
	Email        string  `gorm:"size:360;uniqueIndex;not null" json:"email"`
	Salary       float64 `gorm:"not null" json:"salary"`
	PasswordHash string  `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
