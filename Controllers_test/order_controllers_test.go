package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/thepromise/ordering-platform/controllers"
	"github.com/thepromise/ordering-platform/models"
	"github.com/thepromise/ordering-platform/store"
)

func setupOrderRouter(s *store.OrderStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	orderCtrl := controllers.NewOrderController(s)
	router.GET("/api/orders", orderCtrl.GetAllOrders)
	router.POST("/api/orders", orderCtrl.CreateOrder)
	router.PATCH("/api/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req, err := http.NewRequest(method, url, bytes.NewBuffer(body))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAndListOrders(t *testing.T) {
	s := store.NewOrderStore()
	router := setupOrderRouter(s)

	payload := map[string]interface{}{
		"branchId":     "lagos",
		"mode":         "takeaway",
		"customerName": "Ada",
		"items": []map[string]interface{}{
			{"id": "jollof", "name": "Jollof Rice", "price": 3500, "qty": 2},
		},
	}
	w := postJSON(t, router, "POST", "/api/orders", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 7000.0, created.Total)
	assert.Equal(t, "₦7,000.00", created.TotalFormatted)
	assert.Equal(t, "Received", created.Status)
	assert.Equal(t, "Ada", created.CustomerName)
	assert.True(t, strings.HasPrefix(created.OrderNumber, "PROM-"))
	assert.True(t, strings.HasSuffix(created.OrderNumber, "-LAGOS-"+created.ID))

	req, _ := http.NewRequest("GET", "/api/orders?branchId=lagos", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var listed []models.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	// An unknown branch filter is not an error, just empty.
	req, _ = http.NewRequest("GET", "/api/orders?branchId=nowhere", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Empty(t, listed)
}

func TestCreateOrderRejectsBadPayload(t *testing.T) {
	s := store.NewOrderStore()
	router := setupOrderRouter(s)

	cases := []map[string]interface{}{
		{"items": []map[string]interface{}{{"id": "jollof", "price": 3500, "qty": 1}}},
		{"branchId": "lagos"},
		{"branchId": "lagos", "items": []map[string]interface{}{}},
		{"branchId": "lagos", "items": []map[string]interface{}{
			{"id": "jollof", "price": 3500, "qty": 0},
		}},
	}
	for i, payload := range cases {
		w := postJSON(t, router, "POST", "/api/orders", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, "case %d", i)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "invalid order payload", resp["error"])
	}
	assert.Empty(t, s.List(""))
}

func TestUpdateOrderStatus(t *testing.T) {
	created := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	now := created
	s := store.NewOrderStoreWithClock(func() time.Time { return now })
	router := setupOrderRouter(s)

	order, err := s.Create(store.CreateOrderInput{
		BranchID: "lagos",
		Items:    []models.OrderItem{{ID: "jollof", Name: "Jollof Rice", Price: 3500, Quantity: 1}},
	})
	assert.NoError(t, err)

	w := postJSON(t, router, "PATCH", "/api/orders/"+order.ID+"/status",
		map[string]string{"status": "Ready"})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Ready", updated.Status)
	assert.Equal(t, 2, updated.StepIndex)

	// The override sticks for subsequent reads, elapsed time ignored.
	now = created.Add(time.Hour)
	assert.Equal(t, "Ready", s.List("")[0].Status)
}

func TestUpdateOrderStatusInvalidLabel(t *testing.T) {
	s := store.NewOrderStore()
	router := setupOrderRouter(s)

	order, _ := s.Create(store.CreateOrderInput{
		BranchID: "lagos",
		Items:    []models.OrderItem{{ID: "jollof", Name: "Jollof Rice", Price: 3500, Quantity: 1}},
	})

	w := postJSON(t, router, "PATCH", "/api/orders/"+order.ID+"/status",
		map[string]string{"status": "Cancelled"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid status", resp["error"])
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	s := store.NewOrderStore()
	router := setupOrderRouter(s)

	w := postJSON(t, router, "PATCH", "/api/orders/ZZZZZZ/status",
		map[string]string{"status": "Ready"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "order not found", resp["error"])
}
