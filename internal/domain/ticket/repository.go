package ticket

import (
	"context"

	"github.com/wrenchworks/repair-shop-api/internal/models"
)

// Repository covers the lookups and the assignment mutations the ticket use
// cases need. Assignment membership is keyed strictly by the
// (ticket_id, mechanic_id) pair.
type Repository interface {
	GetTicket(
		ctx context.Context,
		ticketID uint,
	) (*models.Ticket, error)

	GetMechanic(
		ctx context.Context,
		mechanicID uint,
	) (*models.Mechanic, error)

	GetCustomer(
		ctx context.Context,
		customerID uint,
	) (*models.Customer, error)

	CreateTicket(
		ctx context.Context,
		t *models.Ticket,
	) error

	// AssignMechanic inserts the pair if absent. Inserting an already
	// present pair is a no-op, also under concurrent calls.
	AssignMechanic(
		ctx context.Context,
		ticketID uint,
		mechanicID uint,
	) error

	// UnassignMechanic deletes the pair if present and reports whether a
	// row was actually removed.
	UnassignMechanic(
		ctx context.Context,
		ticketID uint,
		mechanicID uint,
	) (bool, error)
}
