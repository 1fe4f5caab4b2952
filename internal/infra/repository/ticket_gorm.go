package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/wrenchworks/repair-shop-api/internal/domain/ticket"
	"github.com/wrenchworks/repair-shop-api/internal/models"
)

type TicketGormRepository struct {
	db *gorm.DB
}

func NewTicketGormRepository(db *gorm.DB) *TicketGormRepository {
	return &TicketGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *TicketGormRepository) GetTicket(
	ctx context.Context,
	ticketID uint,
) (*models.Ticket, error) {

	var t models.Ticket
	if err := r.db.WithContext(ctx).First(&t, ticketID).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TicketGormRepository) GetMechanic(
	ctx context.Context,
	mechanicID uint,
) (*models.Mechanic, error) {

	var m models.Mechanic
	if err := r.db.WithContext(ctx).First(&m, mechanicID).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *TicketGormRepository) GetCustomer(
	ctx context.Context,
	customerID uint,
) (*models.Customer, error) {

	var cu models.Customer
	if err := r.db.WithContext(ctx).First(&cu, customerID).Error; err != nil {
		return nil, err
	}
	return &cu, nil
}

// --------------------------------------------------
// Ticket
// --------------------------------------------------

func (r *TicketGormRepository) CreateTicket(
	ctx context.Context,
	t *models.Ticket,
) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// --------------------------------------------------
// Assignment
// --------------------------------------------------

func (r *TicketGormRepository) AssignMechanic(
	ctx context.Context,
	ticketID uint,
	mechanicID uint,
) error {

	row := models.TicketMechanic{
		TicketID:   ticketID,
		MechanicID: mechanicID,
	}

	// ON CONFLICT DO NOTHING on the composite key keeps the insert
	// idempotent even when two adds race.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
}

func (r *TicketGormRepository) UnassignMechanic(
	ctx context.Context,
	ticketID uint,
	mechanicID uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("ticket_id = ? AND mechanic_id = ?", ticketID, mechanicID).
		Delete(&models.TicketMechanic{})

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*TicketGormRepository)(nil)
