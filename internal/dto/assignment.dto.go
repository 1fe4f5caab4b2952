package dto

import "github.com/wrenchworks/repair-shop-api/internal/models"

// AssignmentResponse is the payload for add-mechanic / remove-mechanic:
// a message plus the refreshed representations of both entities.
type AssignmentResponse struct {
	Message  string          `json:"message"`
	Ticket   models.Ticket   `json:"ticket"`
	Mechanic models.Mechanic `json:"mechanic"`
}
