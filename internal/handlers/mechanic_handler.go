package handlers

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wrenchworks/repair-shop-api/internal/httperr"
	"github.com/wrenchworks/repair-shop-api/internal/httpresp"
	"github.com/wrenchworks/repair-shop-api/internal/models"
	"github.com/wrenchworks/repair-shop-api/internal/validators"
)

type MechanicHandler struct {
	db *gorm.DB
}

func NewMechanicHandler(db *gorm.DB) *MechanicHandler {
	return &MechanicHandler{db: db}
}

// --------- Requests ---------

type CreateMechanicRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Email string `json:"email" binding:"required,email,max=360"`
	// Pointer so a present zero salary passes required.
	Salary   *float64 `json:"salary" binding:"required,gte=0"`
	Password string   `json:"password" binding:"required"`
}

type UpdateMechanicRequest struct {
	Name     *string  `json:"name,omitempty" binding:"omitempty,max=255"`
	Email    *string  `json:"email,omitempty" binding:"omitempty,email,max=360"`
	Salary   *float64 `json:"salary,omitempty" binding:"omitempty,gte=0"`
	Password *string  `json:"password,omitempty"`
}

// --------- Handlers ---------

func (h *MechanicHandler) Create(c *gin.Context) {
	var req CreateMechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.Report(err))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_create_mechanic", "Failed to create mechanic.")
		return
	}

	mechanic := models.Mechanic{
		Name:         req.Name,
		Email:        req.Email,
		Salary:       *req.Salary,
		PasswordHash: string(hash),
	}

	if err := h.db.Create(&mechanic).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "email_already_registered", "Mechanic email already has an account.")
			return
		}
		httperr.Internal(c, "failed_to_create_mechanic", "Failed to create mechanic.")
		return
	}

	httpresp.Created(c, mechanic)
}

func (h *MechanicHandler) List(c *gin.Context) {
	var mechanics []models.Mechanic
	if err := h.db.Order("id ASC").Find(&mechanics).Error; err != nil {
		httperr.Internal(c, "failed_to_list_mechanics", "Failed to list mechanics.")
		return
	}

	httpresp.List(c, mechanics)
}

func (h *MechanicHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var mechanic models.Mechanic
	if err := h.db.First(&mechanic, id).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "mechanic_not_found", "Mechanic not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_mechanic", "Failed to get mechanic.")
		return
	}

	httpresp.OK(c, mechanic)
}

func (h *MechanicHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var mechanic models.Mechanic
	if err := h.db.First(&mechanic, id).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "mechanic_not_found", "Mechanic not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_mechanic", "Failed to get mechanic.")
		return
	}

	var req UpdateMechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.Report(err))
		return
	}

	if req.Name != nil {
		mechanic.Name = *req.Name
	}
	if req.Email != nil {
		mechanic.Email = *req.Email
	}
	if req.Salary != nil {
		mechanic.Salary = *req.Salary
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_update_mechanic", "Failed to update mechanic.")
			return
		}
		mechanic.PasswordHash = string(hash)
	}

	if err := h.db.Save(&mechanic).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "email_already_registered", "Mechanic email already has an account.")
			return
		}
		httperr.Internal(c, "failed_to_update_mechanic", "Failed to update mechanic.")
		return
	}

	httpresp.OK(c, mechanic)
}

func (h *MechanicHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var mechanic models.Mechanic
	if err := h.db.First(&mechanic, id).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "mechanic_not_found", "Mechanic not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_mechanic", "Failed to get mechanic.")
		return
	}

	// Assignment rows go first so the FK constraints never block the
	// delete; both happen in one transaction.
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("mechanic_id = ?", mechanic.ID).
			Delete(&models.TicketMechanic{}).Error; err != nil {
			return err
		}
		return tx.Delete(&mechanic).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_delete_mechanic", "Failed to delete mechanic.")
		return
	}

	httpresp.Message(c, "Mechanic deleted successfully")
}
