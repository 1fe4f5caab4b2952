package ticket

import (
	"context"

	domain "github.com/wrenchworks/repair-shop-api/internal/domain/ticket"
	"github.com/wrenchworks/repair-shop-api/internal/httperr"
	"github.com/wrenchworks/repair-shop-api/internal/models"
)

// AssignMechanic links a mechanic to a ticket. The operation is idempotent:
// assigning an already assigned mechanic leaves exactly one row behind.
type AssignMechanic struct {
	repo domain.Repository
}

func NewAssignMechanic(repo domain.Repository) *AssignMechanic {
	return &AssignMechanic{repo: repo}
}

func (uc *AssignMechanic) Execute(
	ctx context.Context,
	ticketID uint,
	mechanicID uint,
) (*models.Ticket, *models.Mechanic, error) {

	// Both rows must exist before any mutation.
	t, err := uc.repo.GetTicket(ctx, ticketID)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, nil, httperr.ErrBusiness("invalid_ticket_or_mechanic")
		}
		return nil, nil, err
	}

	m, err := uc.repo.GetMechanic(ctx, mechanicID)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, nil, httperr.ErrBusiness("invalid_ticket_or_mechanic")
		}
		return nil, nil, err
	}

	if err := uc.repo.AssignMechanic(ctx, ticketID, mechanicID); err != nil {
		// Ticket or mechanic deleted between the checks and the
		// insert.
		if httperr.IsForeignKeyViolation(err) {
			return nil, nil, httperr.ErrBusiness("invalid_ticket_or_mechanic")
		}
		return nil, nil, err
	}

	return t, m, nil
}
