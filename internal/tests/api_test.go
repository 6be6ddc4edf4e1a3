// internal/tests/api_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/orderdesk/backend/internal/config"
	"github.com/orderdesk/backend/internal/router"
	"github.com/orderdesk/backend/internal/store"
)

type APITestSuite struct {
	suite.Suite
	store  *store.MemoryStore
	router *gin.Engine
}

func (suite *APITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *APITestSuite) SetupTest() {
	suite.store = store.NewMemoryStore()
	suite.router = router.Initialize(suite.store, &config.Config{Environment: "test"})
}

func (suite *APITestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func (suite *APITestSuite) createClient(email string) {
	w := suite.request("POST", "/v1/clients", map[string]interface{}{
		"name":    "Ivan Ivanov",
		"email":   email,
		"phone":   "+79123456789",
		"address": "Moscow",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (suite *APITestSuite) createProduct(name string, price float64) {
	w := suite.request("POST", "/v1/products", map[string]interface{}{
		"name":     name,
		"price":    price,
		"category": "Electronics",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (suite *APITestSuite) createOrder(clientID, productID uint, quantity int) {
	w := suite.request("POST", "/v1/orders", map[string]interface{}{
		"client_id": clientID,
		"items": []map[string]interface{}{
			{"product_id": productID, "quantity": quantity},
		},
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (suite *APITestSuite) TestCreateClient() {
	suite.createClient("ivan@example.com")

	w := suite.request("GET", "/v1/clients", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	clients := response["data"].(map[string]interface{})["clients"].([]interface{})
	assert.Len(suite.T(), clients, 1)
}

func (suite *APITestSuite) TestCreateClientValidationError() {
	w := suite.request("POST", "/v1/clients", map[string]interface{}{
		"name":    "Ivan",
		"email":   "not-an-email",
		"phone":   "+79123456789",
		"address": "Moscow",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	response := suite.decode(w)
	errObj := response["error"].(map[string]interface{})
	assert.Equal(suite.T(), "VALIDATION_ERROR", errObj["code"])
}

func (suite *APITestSuite) TestDuplicateClientEmailConflicts() {
	suite.createClient("ivan@example.com")

	w := suite.request("POST", "/v1/clients", map[string]interface{}{
		"name":    "Another Ivan",
		"email":   "ivan@example.com",
		"phone":   "+79123456789",
		"address": "Kazan",
	})
	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *APITestSuite) TestCreateOrderCapturesPrice() {
	suite.createClient("ivan@example.com")
	suite.createProduct("Phone", 10000)
	suite.createOrder(1, 1, 2)

	w := suite.request("GET", "/v1/orders", nil)
	response := suite.decode(w)
	orders := response["data"].(map[string]interface{})["orders"].([]interface{})
	suite.Require().Len(orders, 1)

	items := orders[0].(map[string]interface{})["items"].([]interface{})
	item := items[0].(map[string]interface{})
	assert.EqualValues(suite.T(), 10000, item["price"])
	assert.EqualValues(suite.T(), 2, item["quantity"])
}

func (suite *APITestSuite) TestCreateOrderUnknownProduct() {
	suite.createClient("ivan@example.com")

	w := suite.request("POST", "/v1/orders", map[string]interface{}{
		"client_id": 1,
		"items":     []map[string]interface{}{{"product_id": 99, "quantity": 1}},
	})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestListOrdersSortedAndFiltered() {
	suite.createClient("ivan@example.com")
	suite.createClient("petr@example.com")
	suite.createProduct("Phone", 10000)
	suite.createProduct("Book", 500)

	suite.createOrder(1, 1, 1) // 10000
	suite.createOrder(1, 2, 2) // 1000
	suite.createOrder(2, 2, 1) // 500

	w := suite.request("GET", "/v1/orders?sort=amount&order=desc", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	response := suite.decode(w)
	orders := response["data"].(map[string]interface{})["orders"].([]interface{})
	suite.Require().Len(orders, 3)
	first := orders[0].(map[string]interface{})
	assert.EqualValues(suite.T(), 1, first["id"])

	w = suite.request("GET", "/v1/orders?client_id=1&min_amount=2000", nil)
	response = suite.decode(w)
	orders = response["data"].(map[string]interface{})["orders"].([]interface{})
	assert.Len(suite.T(), orders, 1)

	w = suite.request("GET", "/v1/orders?sort=price", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestAnalyticsEndpoints() {
	suite.createClient("ivan@example.com")
	suite.createClient("petr@example.com")
	suite.createProduct("Phone", 10000)

	suite.createOrder(1, 1, 1)
	suite.createOrder(1, 1, 1)
	suite.createOrder(2, 1, 1)

	w := suite.request("GET", "/v1/analytics/top-clients?limit=1", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	response := suite.decode(w)
	topClients := response["data"].(map[string]interface{})["top_clients"].([]interface{})
	suite.Require().Len(topClients, 1)
	top := topClients[0].(map[string]interface{})
	assert.EqualValues(suite.T(), 2, top["order_count"])

	w = suite.request("GET", "/v1/analytics/statistics", nil)
	response = suite.decode(w)
	stats := response["data"].(map[string]interface{})["statistics"].(map[string]interface{})
	assert.EqualValues(suite.T(), 3, stats["total_orders"])
	assert.EqualValues(suite.T(), 30000, stats["total_revenue"])

	w = suite.request("GET", "/v1/analytics/network", nil)
	response = suite.decode(w)
	network := response["data"].(map[string]interface{})["network"].(map[string]interface{})
	assert.Len(suite.T(), network["nodes"].([]interface{}), 2)
	assert.Len(suite.T(), network["edges"].([]interface{}), 1)

	w = suite.request("GET", "/v1/analytics/sales-over-time?period=decade", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestExportImportRoundTrip() {
	suite.createClient("ivan@example.com")
	suite.createProduct("Phone", 10000)
	suite.createOrder(1, 1, 2)

	w := suite.request("GET", "/v1/export/json", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	exported := w.Body.Bytes()

	var doc map[string]interface{}
	suite.Require().NoError(json.Unmarshal(exported, &doc))
	req, err := http.NewRequest("POST", "/v1/import/json", bytes.NewBuffer(exported))
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.request("GET", "/v1/analytics/statistics", nil)
	response := suite.decode(w)
	stats := response["data"].(map[string]interface{})["statistics"].(map[string]interface{})
	assert.EqualValues(suite.T(), 1, stats["total_orders"])
	assert.EqualValues(suite.T(), 20000, stats["total_revenue"])
}

func (suite *APITestSuite) TestExportCSV() {
	suite.createClient("ivan@example.com")

	w := suite.request("GET", "/v1/export/csv?entity=clients", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(suite.T(), w.Body.String(), "ivan@example.com")

	w = suite.request("GET", "/v1/export/csv?entity=invoices", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
