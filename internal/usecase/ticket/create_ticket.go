package ticket

import (
	"context"
	"time"

	domain "github.com/wrenchworks/repair-shop-api/internal/domain/ticket"
	"github.com/wrenchworks/repair-shop-api/internal/httperr"
	"github.com/wrenchworks/repair-shop-api/internal/models"
)

type CreateTicketInput struct {
	CustomerID  uint
	ServiceDesc string
}

type CreateTicket struct {
	repo domain.Repository
}

func NewCreateTicket(repo domain.Repository) *CreateTicket {
	return &CreateTicket{repo: repo}
}

func (uc *CreateTicket) Execute(
	ctx context.Context,
	in CreateTicketInput,
) (*models.Ticket, error) {

	// The owning customer must exist before anything is written.
	if _, err := uc.repo.GetCustomer(ctx, in.CustomerID); err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrBusiness("customer_not_found")
		}
		return nil, err
	}

	now := time.Now()

	t := &models.Ticket{
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		CustomerID:  in.CustomerID,
		ServiceDesc: in.ServiceDesc,
	}

	if err := uc.repo.CreateTicket(ctx, t); err != nil {
		// Backstop for a customer deleted between the check and the
		// insert.
		if httperr.IsForeignKeyViolation(err) {
			return nil, httperr.ErrBusiness("customer_not_found")
		}
		return nil, err
	}

	return t, nil
}
