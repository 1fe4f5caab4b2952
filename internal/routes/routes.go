package routes

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/wrenchworks/repair-shop-api/internal/handlers"
	infraRepo "github.com/wrenchworks/repair-shop-api/internal/infra/repository"
	ucTicket "github.com/wrenchworks/repair-shop-api/internal/usecase/ticket"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {

	registerFieldNames()

	// ------------------------------
	// INFRA
	// ------------------------------
	ticketRepo := infraRepo.NewTicketGormRepository(db)

	// ------------------------------
	// USE CASES
	// ------------------------------
	createTicketUC := ucTicket.NewCreateTicket(ticketRepo)
	assignMechanicUC := ucTicket.NewAssignMechanic(ticketRepo)
	unassignMechanicUC := ucTicket.NewUnassignMechanic(ticketRepo)

	// ------------------------------
	// HANDLERS
	// ------------------------------
	customerHandler := handlers.NewCustomerHandler(db)
	mechanicHandler := handlers.NewMechanicHandler(db)
	ticketHandler := handlers.NewTicketHandler(
		db,
		createTicketUC,
		assignMechanicUC,
		unassignMechanicUC,
	)

	// ------------------------------
	// ROUTES
	// ------------------------------
	customers := r.Group("/customers")
	{
		customers.POST("", customerHandler.Create)
		customers.GET("/", customerHandler.List)
		customers.GET("/:id", customerHandler.Get)
		customers.PUT("/:id", customerHandler.Update)
		customers.DELETE("/:id", customerHandler.Delete)
	}

	mechanics := r.Group("/mechanics")
	{
		mechanics.POST("/", mechanicHandler.Create)
		mechanics.GET("/", mechanicHandler.List)
		mechanics.GET("/:id", mechanicHandler.Get)
		mechanics.PUT("/:id", mechanicHandler.Update)
		mechanics.DELETE("/:id", mechanicHandler.Delete)
	}

	tickets := r.Group("/tickets")
	{
		tickets.POST("/", ticketHandler.Create)
		tickets.GET("/", ticketHandler.List)
		tickets.GET("/:id", ticketHandler.Get)
		tickets.PUT("/:id", ticketHandler.Update)
		tickets.DELETE("/:id", ticketHandler.Delete)

		tickets.PUT("/:id/add-mechanic/:mechanic_id", ticketHandler.AddMechanic)
		tickets.PUT("/:id/remove-mechanic/:mechanic_id", ticketHandler.RemoveMechanic)
	}
}

// registerFieldNames makes binding errors report json field names instead of
// Go struct field names.
func registerFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
