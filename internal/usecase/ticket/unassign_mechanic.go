package ticket

import (
	"context"

	domain "github.com/wrenchworks/repair-shop-api/internal/domain/ticket"
	"github.com/wrenchworks/repair-shop-api/internal/httperr"
	"github.com/wrenchworks/repair-shop-api/internal/models"
)

// UnassignMechanic removes an existing ticket-mechanic link. Removing a pair
// that is not linked is a distinct failure from unknown ids: both rows exist,
// the operation just does not apply.
type UnassignMechanic struct {
	repo domain.Repository
}

func NewUnassignMechanic(repo domain.Repository) *UnassignMechanic {
	return &UnassignMechanic{repo: repo}
}

func (uc *UnassignMechanic) Execute(
	ctx context.Context,
	ticketID uint,
	mechanicID uint,
) (*models.Ticket, *models.Mechanic, error) {

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

	removed, err := uc.repo.UnassignMechanic(ctx, ticketID, mechanicID)
	if err != nil {
		return nil, nil, err
	}
	if !removed {
		return nil, nil, httperr.ErrBusiness("mechanic_not_assigned")
	}

	return t, m, nil
}
