package models

import "time"

// Ticket exposes exactly id, date, customer_id and service_desc over the
// wire. Date is assigned by the server at creation and never accepted from
// the client.
type Ticket struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date time.Time `gorm:"type:date;not null" json:"date"`

	CustomerID uint     `gorm:"not null" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ServiceDesc string `gorm:"size:500" json:"service_desc"`
}
