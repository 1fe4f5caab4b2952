package models

// TicketMechanic is the assignment row linking a ticket to a mechanic. The
// composite primary key is the store-level guard against duplicate
// assignments, including racing requests.
type TicketMechanic struct {
	TicketID   uint `gorm:"primaryKey" json:"ticket_id"`
	MechanicID uint `gorm:"primaryKey" json:"mechanic_id"`

	Ticket   Ticket   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Mechanic Mechanic `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (TicketMechanic) TableName() string {
	return "ticket_mechanic"
}
