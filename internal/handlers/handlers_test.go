package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/wrenchworks/repair-shop-api/internal/db"
	"github.com/wrenchworks/repair-shop-api/internal/routes"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	r := gin.New()
	routes.RegisterRoutes(r, db)

	return r, db
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createCustomer(t *testing.T, r *gin.Engine, name, email, phone string) uint {
	w := do(t, r, http.MethodPost, "/customers", gin.H{
		"name":  name,
		"email": email,
		"phone": phone,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decode(t, w)["id"].(float64))
}

func createMechanic(t *testing.T, r *gin.Engine, name, email string, salary float64) uint {
	w := do(t, r, http.MethodPost, "/mechanics/", gin.H{
		"name":     name,
		"email":    email,
		"salary":   salary,
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decode(t, w)["id"].(float64))
}

func createTicket(t *testing.T, r *gin.Engine, customerID uint, desc string) uint {
	w := do(t, r, http.MethodPost, "/tickets/", gin.H{
		"customer_id":  customerID,
		"service_desc": desc,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decode(t, w)["id"].(float64))
}
