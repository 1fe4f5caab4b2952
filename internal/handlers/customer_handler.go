package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wrenchworks/repair-shop-api/internal/httperr"
	"github.com/wrenchworks/repair-shop-api/internal/httpresp"
	"github.com/wrenchworks/repair-shop-api/internal/models"
	"github.com/wrenchworks/repair-shop-api/internal/validators"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

// --------- Requests ---------

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Email string `json:"email" binding:"required,email,max=360"`
	Phone string `json:"phone" binding:"required,max=20"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Email *string `json:"email,omitempty" binding:"omitempty,email,max=360"`
	Phone *string `json:"phone,omitempty" binding:"omitempty,max=20"`
}

// --------- Handlers ---------

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.Report(err))
		return
	}

	if !validators.IsPhoneValid(req.Phone) {
		httperr.Validation(c, validators.Field("phone", "must be a valid phone number"))
		return
	}

	// Pre-check by email so a duplicate surfaces as a conflict, not a
	// bare constraint error.
	var count int64
	if err := h.db.Model(&models.Customer{}).
		Where("email = ?", req.Email).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_create_customer", "Failed to create customer.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "email_already_registered", "Customer email already has an account.")
		return
	}

	customer := models.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "email_already_registered", "Customer email already has an account.")
			return
		}
		httperr.Internal(c, "failed_to_create_customer", "Failed to create customer.")
		return
	}

	httpresp.Created(c, customer)
}

func (h *CustomerHandler) List(c *gin.Context) {
	var customers []models.Customer
	if err := h.db.Order("id ASC").Find(&customers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_customers", "Failed to list customers.")
		return
	}

	httpresp.List(c, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var customer models.Customer
	if err := h.db.First(&customer, id).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "customer_not_found", "Customer not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Failed to get customer.")
		return
	}

	httpresp.OK(c, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var customer models.Customer
	if err := h.db.First(&customer, id).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "customer_not_found", "Customer not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Failed to get customer.")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.Report(err))
		return
	}

	if req.Phone != nil && !validators.IsPhoneValid(*req.Phone) {
		httperr.Validation(c, validators.Field("phone", "must be a valid phone number"))
		return
	}

	if req.Email != nil && *req.Email != customer.Email {
		var count int64
		if err := h.db.Model(&models.Customer{}).
			Where("email = ? AND id <> ?", *req.Email, customer.ID).
			Count(&count).Error; err != nil {
			httperr.Internal(c, "failed_to_update_customer", "Failed to update customer.")
			return
		}
		if count > 0 {
			httperr.Conflict(c, "email_already_registered", "Customer email already has an account.")
			return
		}
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}

	if err := h.db.Save(&customer).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "email_already_registered", "Customer email already has an account.")
			return
		}
		httperr.Internal(c, "failed_to_update_customer", "Failed to update customer.")
		return
	}

	httpresp.OK(c, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var customer models.Customer
	if err := h.db.First(&customer, id).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "customer_not_found", "Customer not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Failed to get customer.")
		return
	}

	// Deletion is restricted while the customer still owns tickets.
	var tickets int64
	if err := h.db.Model(&models.Ticket{}).
		Where("customer_id = ?", customer.ID).
		Count(&tickets).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_customer", "Failed to delete customer.")
		return
	}
	if tickets > 0 {
		httperr.Conflict(c, "customer_has_tickets", "Customer still has open tickets.")
		return
	}

	if err := h.db.Delete(&customer).Error; err != nil {
		if httperr.IsForeignKeyViolation(err) {
			httperr.Conflict(c, "customer_has_tickets", "Customer still has open tickets.")
			return
		}
		httperr.Internal(c, "failed_to_delete_customer", "Failed to delete customer.")
		return
	}

	httpresp.Message(c, fmt.Sprintf("Customer %d deleted successfully", customer.ID))
}
