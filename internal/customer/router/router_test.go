package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"docshelf/internal/customer/model"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&model.Customer{})
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, db, zap.NewNop().Sugar())
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCustomerInvoiceFlow(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(r, http.MethodPost, "/customers", gin.H{
		"firstName": "Jane",
		"lastName":  "Doe",
		"userName":  "jdoe",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.NotNil(t, created.Invoices)

	// Invoice routes address the customer by username, not by id.
	w = doJSON(r, http.MethodPost, "/customers/jdoe/invoices", gin.H{
		"subtotal":    100.0,
		"tax":         8.5,
		"dateCreated": "2024-01-01",
		"lineItems": []gin.H{
			{"name": "widget", "price": 50.0, "quantity": 2.0},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/customers/jdoe/invoices", gin.H{
		"subtotal":    40.0,
		"tax":         3.2,
		"dateCreated": "2024-02-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/customers/jdoe/invoices", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var invoices []model.Invoice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &invoices))
	require.Len(t, invoices, 2)
	assert.Equal(t, "2024-01-01", invoices[0].DateCreated)
	assert.Equal(t, "2024-02-01", invoices[1].DateCreated)
	assert.NotNil(t, invoices[1].LineItems)

	// Unknown usernames fall out as 404 on both invoice routes.
	w = doJSON(r, http.MethodGet, "/customers/ghost/invoices", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPost, "/customers/ghost/invoices", gin.H{"subtotal": 1.0})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerCRUD(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(r, http.MethodPost, "/customers", gin.H{
		"firstName": "Jane", "lastName": "Doe", "userName": "jdoe",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodPut, "/customers/"+created.ID, gin.H{"firstName": "Janet"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Janet")

	w = doJSON(r, http.MethodGet, "/customers/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Janet")

	w = doJSON(r, http.MethodDelete, "/customers/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jdoe")

	w = doJSON(r, http.MethodGet, "/customers/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodDelete, "/customers/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
