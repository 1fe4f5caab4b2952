package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/wrenchworks/repair-shop-api/internal/models"
)

func TestTicketCreate(t *testing.T) {
	r, db := setupRouter(t)
	customerID := createCustomer(t, r, "Jane Doe", "jane.doe@example.com", "555-9999")

	t.Run("date is server-assigned", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/tickets/", map[string]any{
			"customer_id":  customerID,
			"service_desc": "Oil change",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		body := decode(t, w)
		assert.NotZero(t, body["id"])
		assert.EqualValues(t, customerID, body["customer_id"])

		date, ok := body["date"].(string)
		require.True(t, ok)
		assert.Equal(t, time.Now().Format("2006-01-02"), date[:10])
	})

	t.Run("client-supplied date is ignored", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/tickets/", map[string]any{
			"customer_id":  customerID,
			"service_desc": "Time travel",
			"date":         "1999-01-01",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		date := decode(t, w)["date"].(string)
		assert.Equal(t, time.Now().Format("2006-01-02"), date[:10])
	})

	t.Run("unknown customer_id is a referential error, no row", func(t *testing.T) {
		before := ticketRows(t, db)

		w := do(t, r, http.MethodPost, "/tickets/", map[string]any{
			"customer_id":  9999,
			"service_desc": "Ghost job",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "customer_not_found", decode(t, w)["error_code"])
		assert.Equal(t, before, ticketRows(t, db))
	})

	t.Run("missing customer_id fails validation", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/tickets/", map[string]any{
			"service_desc": "Orphan job",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "validation_error", decode(t, w)["error_code"])
	})
}

func ticketRows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Ticket{}).Count(&count).Error)
	return count
}

func TestTicketGetUpdateDelete(t *testing.T) {
	r, _ := setupRouter(t)
	customerID := createCustomer(t, r, "Jane Doe", "jane.doe@example.com", "555-9999")
	ticketID := createTicket(t, r, customerID, "Oil change")

	t.Run("get returns the restricted field set", func(t *testing.T) {
		w := do(t, r, http.MethodGet, fmt.Sprintf("/tickets/%d", ticketID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		assert.EqualValues(t, ticketID, body["id"])
		assert.Contains(t, body, "date")
		assert.Contains(t, body, "customer_id")
		assert.Contains(t, body, "service_desc")
		assert.NotContains(t, body, "mechanics")
		assert.NotContains(t, body, "customer")
	})

	t.Run("update changes service_desc but never the date", func(t *testing.T) {
		before := do(t, r, http.MethodGet, fmt.Sprintf("/tickets/%d", ticketID), nil)
		originalDate := decode(t, before)["date"]

		w := do(t, r, http.MethodPut, fmt.Sprintf("/tickets/%d", ticketID), map[string]any{
			"service_desc": "Oil change and filters",
			"date":         "1999-01-01",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := decode(t, w)
		assert.Equal(t, "Oil change and filters", body["service_desc"])
		assert.Equal(t, originalDate, body["date"])
	})

	t.Run("update to an unknown customer is rejected", func(t *testing.T) {
		w := do(t, r, http.MethodPut, fmt.Sprintf("/tickets/%d", ticketID), map[string]any{
			"customer_id": 9999,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "customer_not_found", decode(t, w)["error_code"])
	})

	t.Run("update on unknown ticket is 404", func(t *testing.T) {
		w := do(t, r, http.MethodPut, "/tickets/9999", map[string]any{
			"service_desc": "Ghost",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete then get is 404", func(t *testing.T) {
		w := do(t, r, http.MethodDelete, fmt.Sprintf("/tickets/%d", ticketID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = do(t, r, http.MethodGet, fmt.Sprintf("/tickets/%d", ticketID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTicketAssignmentFlow(t *testing.T) {
	r, db := setupRouter(t)

	customerID := createCustomer(t, r, "Jane Doe", "jane.doe@example.com", "555-9999")
	ticketID := createTicket(t, r, customerID, "Oil change")
	mechanicID := createMechanic(t, r, "Max Wrench", "max@example.com", 52000)

	assignments := func() int64 {
		var count int64
		require.NoError(t, db.Model(&models.TicketMechanic{}).Count(&count).Error)
		return count
	}

	t.Run("add-mechanic links the pair", func(t *testing.T) {
		w := do(t, r, http.MethodPut, fmt.Sprintf("/tickets/%d/add-mechanic/%d", ticketID, mechanicID), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := decode(t, w)
		assert.Equal(t, "Successfully added mechanic to ticket", body["message"])
		assert.EqualValues(t, ticketID, body["ticket"].(map[string]any)["id"])
		assert.EqualValues(t, mechanicID, body["mechanic"].(map[string]any)["id"])
		assert.EqualValues(t, 1, assignments())
	})

	t.Run("second add is idempotent", func(t *testing.T) {
		w := do(t, r, http.MethodPut, fmt.Sprintf("/tickets/%d/add-mechanic/%d", ticketID, mechanicID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 1, assignments())
	})

	t.Run("remove-mechanic unlinks the pair", func(t *testing.T) {
		w := do(t, r, http.MethodPut, fmt.Sprintf("/tickets/%d/remove-mechanic/%d", ticketID, mechanicID), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := decode(t, w)
		assert.Equal(t, "Successfully removed mechanic from ticket", body["message"])
		assert.EqualValues(t, 0, assignments())
	})

	t.Run("second remove is a domain-state error, not 404", func(t *testing.T) {
		w := do(t, r, http.MethodPut, fmt.Sprintf("/tickets/%d/remove-mechanic/%d", ticketID, mechanicID), nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "mechanic_not_assigned", decode(t, w)["error_code"])
	})

	t.Run("unknown ids are 404 on both operations", func(t *testing.T) {
		w := do(t, r, http.MethodPut, fmt.Sprintf("/tickets/9999/add-mechanic/%d", mechanicID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = do(t, r, http.MethodPut, fmt.Sprintf("/tickets/%d/add-mechanic/9999", ticketID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = do(t, r, http.MethodPut, fmt.Sprintf("/tickets/9999/remove-mechanic/%d", mechanicID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "invalid_ticket_or_mechanic", decode(t, w)["error_code"])
	})

	t.Run("add fails before mutation when a lookup fails", func(t *testing.T) {
		before := assignments()
		w := do(t, r, http.MethodPut, fmt.Sprintf("/tickets/9999/add-mechanic/%d", mechanicID), nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, before, assignments())
	})
}
