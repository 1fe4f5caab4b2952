package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wrenchworks/repair-shop-api/internal/dto"
	"github.com/wrenchworks/repair-shop-api/internal/httperr"
	"github.com/wrenchworks/repair-shop-api/internal/httpresp"
	"github.com/wrenchworks/repair-shop-api/internal/models"
	ucTicket "github.com/wrenchworks/repair-shop-api/internal/usecase/ticket"
	"github.com/wrenchworks/repair-shop-api/internal/validators"
)

type TicketHandler struct {
	db       *gorm.DB
	create   *ucTicket.CreateTicket
	assign   *ucTicket.AssignMechanic
	unassign *ucTicket.UnassignMechanic
}

func NewTicketHandler(
	db *gorm.DB,
	create *ucTicket.CreateTicket,
	assign *ucTicket.AssignMechanic,
	unassign *ucTicket.UnassignMechanic,
) *TicketHandler {
	return &TicketHandler{
		db:       db,
		create:   create,
		assign:   assign,
		unassign: unassign,
	}
}

// --------- Requests ---------

// Only customer_id and service_desc are client-writable; id and date are
// assigned by the server.
type CreateTicketRequest struct {
	CustomerID  uint   `json:"customer_id" binding:"required"`
	ServiceDesc string `json:"service_desc" binding:"max=500"`
}

type UpdateTicketRequest struct {
	CustomerID  *uint   `json:"customer_id,omitempty"`
	ServiceDesc *string `json:"service_desc,omitempty" binding:"omitempty,max=500"`
}

// --------- CRUD ---------

func (h *TicketHandler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.Report(err))
		return
	}

	t, err := h.create.Execute(c.Request.Context(), ucTicket.CreateTicketInput{
		CustomerID:  req.CustomerID,
		ServiceDesc: req.ServiceDesc,
	})
	if err != nil {
		if httperr.IsBusiness(err, "customer_not_found") {
			httperr.BadRequest(c, "customer_not_found", "No customer with this id exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_ticket", "Failed to create ticket.")
		return
	}

	httpresp.Created(c, t)
}

func (h *TicketHandler) List(c *gin.Context) {
	var tickets []models.Ticket
	if err := h.db.Order("id ASC").Find(&tickets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_tickets", "Failed to list tickets.")
		return
	}

	httpresp.List(c, tickets)
}

func (h *TicketHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var t models.Ticket
	if err := h.db.First(&t, id).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "ticket_not_found", "Ticket not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_ticket", "Failed to get ticket.")
		return
	}

	httpresp.OK(c, t)
}

func (h *TicketHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var t models.Ticket
	if err := h.db.First(&t, id).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "ticket_not_found", "Ticket not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_ticket", "Failed to get ticket.")
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.Report(err))
		return
	}

	if req.CustomerID != nil {
		var count int64
		if err := h.db.Model(&models.Customer{}).
			Where("id = ?", *req.CustomerID).
			Count(&count).Error; err != nil {
			httperr.Internal(c, "failed_to_update_ticket", "Failed to update ticket.")
			return
		}
		if count == 0 {
			httperr.BadRequest(c, "customer_not_found", "No customer with this id exists.")
			return
		}
		t.CustomerID = *req.CustomerID
	}
	if req.ServiceDesc != nil {
		t.ServiceDesc = *req.ServiceDesc
	}

	if err := h.db.Save(&t).Error; err != nil {
		httperr.Internal(c, "failed_to_update_ticket", "Failed to update ticket.")
		return
	}

	httpresp.OK(c, t)
}

func (h *TicketHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var t models.Ticket
	if err := h.db.First(&t, id).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "ticket_not_found", "Ticket not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_ticket", "Failed to get ticket.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("ticket_id = ?", t.ID).
			Delete(&models.TicketMechanic{}).Error; err != nil {
			return err
		}
		return tx.Delete(&t).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_delete_ticket", "Failed to delete ticket.")
		return
	}

	httpresp.Message(c, "Ticket deleted successfully")
}

// --------- Assignment ---------

func (h *TicketHandler) AddMechanic(c *gin.Context) {
	ticketID, mechanicID, ok := assignmentIDs(c)
	if !ok {
		return
	}

	t, m, err := h.assign.Execute(c.Request.Context(), ticketID, mechanicID)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_ticket_or_mechanic") {
			httperr.NotFound(c, "invalid_ticket_or_mechanic", "Invalid mechanic_id or ticket_id.")
			return
		}
		httperr.Internal(c, "failed_to_add_mechanic", "Failed to add mechanic to ticket.")
		return
	}

	httpresp.OK(c, dto.AssignmentResponse{
		Message:  "Successfully added mechanic to ticket",
		Ticket:   *t,
		Mechanic: *m,
	})
}

func (h *TicketHandler) RemoveMechanic(c *gin.Context) {
	ticketID, mechanicID, ok := assignmentIDs(c)
	if !ok {
		return
	}

	t, m, err := h.unassign.Execute(c.Request.Context(), ticketID, mechanicID)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_ticket_or_mechanic"):
			httperr.NotFound(c, "invalid_ticket_or_mechanic", "Invalid mechanic_id or ticket_id.")
		case httperr.IsBusiness(err, "mechanic_not_assigned"):
			httperr.BadRequest(c, "mechanic_not_assigned", "This mechanic is not assigned to this ticket.")
		default:
			httperr.Internal(c, "failed_to_remove_mechanic", "Failed to remove mechanic from ticket.")
		}
		return
	}

	httpresp.OK(c, dto.AssignmentResponse{
		Message:  "Successfully removed mechanic from ticket",
		Ticket:   *t,
		Mechanic: *m,
	})
}

func assignmentIDs(c *gin.Context) (uint, uint, bool) {
	ticketID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "invalid_ticket_or_mechanic", "Invalid mechanic_id or ticket_id.")
		return 0, 0, false
	}

	mechanicID, err := strconv.ParseUint(c.Param("mechanic_id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "invalid_ticket_or_mechanic", "Invalid mechanic_id or ticket_id.")
		return 0, 0, false
	}

	return uint(ticketID), uint(mechanicID), true
}
