// internal/interchange/interchange_test.go
package interchange

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdesk/backend/internal/analyzer"
	"github.com/orderdesk/backend/internal/models"
	"github.com/orderdesk/backend/internal/store"
)

func seededStore(t *testing.T) store.Store {
	t.Helper()
	s := store.NewMemoryStore()

	clients := []*models.Client{
		models.NewClient("Ivan Ivanov", "ivan@example.com", "+79123456789", "Moscow"),
		models.NewClient("Petr Petrov", "petr@example.com", "+79234567890", "Saint Petersburg"),
	}
	for _, c := range clients {
		_, err := s.AddClient(c)
		require.NoError(t, err)
	}

	products := []*models.Product{
		{Name: "Phone", Price: 10000, Category: "Electronics"},
		{Name: "Book", Price: 500, Category: "Books", Description: "Paperback"},
	}
	for _, p := range products {
		_, err := s.AddProduct(p)
		require.NoError(t, err)
	}

	order := models.NewOrder(1, models.OrderStatusFulfilled)
	order.OrderDate = time.Date(2023, 3, 15, 10, 0, 0, 0, time.UTC)
	order.AddItem(1, 2, 10000)
	order.AddItem(2, 1, 500)
	_, err := s.AddOrder(order)
	require.NoError(t, err)

	second := models.NewOrder(2, models.OrderStatusNew)
	second.AddItem(2, 3, 500)
	_, err = s.AddOrder(second)
	require.NoError(t, err)

	return s
}

func TestJSONRoundTrip(t *testing.T) {
	source := seededStore(t)

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(source, &buf))

	target := store.NewMemoryStore()
	require.NoError(t, ImportJSON(target, &buf))

	sourceDoc, err := Export(source)
	require.NoError(t, err)
	targetDoc, err := Export(target)
	require.NoError(t, err)

	assert.Len(t, targetDoc.Clients, len(sourceDoc.Clients))
	assert.Len(t, targetDoc.Products, len(sourceDoc.Products))
	assert.Len(t, targetDoc.Orders, len(sourceDoc.Orders))

	// Aggregate statistics survive the round trip even though ids may be
	// regenerated.
	sourceStats := analyzer.ComputeSalesStatistics(sourceDoc.Clients, sourceDoc.Products, sourceDoc.Orders)
	targetStats := analyzer.ComputeSalesStatistics(targetDoc.Clients, targetDoc.Products, targetDoc.Orders)
	assert.Equal(t, sourceStats, targetStats)
}

func TestImportReplacesExistingContents(t *testing.T) {
	target := seededStore(t)

	doc := &Document{
		Clients: []models.Client{
			{Name: "Sidor Sidorov", Email: "sidor@example.com", Phone: "+79345678901", Address: "Kazan", RegistrationDate: time.Now()},
		},
	}
	require.NoError(t, Import(target, doc))

	clients, err := target.GetClients()
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "sidor@example.com", clients[0].Email)

	orders, err := target.GetOrders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestImportRegeneratesIDs(t *testing.T) {
	doc := &Document{
		Clients: []models.Client{
			{ID: 42, Name: "Ivan", Email: "ivan@example.com", Phone: "+79123456789", Address: "Moscow", RegistrationDate: time.Now()},
		},
	}

	target := store.NewMemoryStore()
	require.NoError(t, Import(target, doc))

	clients, err := target.GetClients()
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, uint(1), clients[0].ID)
}

func TestExportCSVOrdersCarriesTotalAmount(t *testing.T) {
	s := seededStore(t)

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(s, KindOrders, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, []string{"id", "client_id", "order_date", "status", "total_amount"}, records[0])
	assert.Equal(t, "20500", records[1][4])
	assert.Equal(t, "1500", records[2][4])
}

func TestExportCSVClients(t *testing.T) {
	s := seededStore(t)

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(s, KindClients, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,name,email,phone,address,registration_date", lines[0])
	assert.Contains(t, lines[1], "ivan@example.com")
}

func TestExportCSVUnknownKind(t *testing.T) {
	s := seededStore(t)

	var buf bytes.Buffer
	err := ExportCSV(s, EntityKind("invoices"), &buf)
	assert.ErrorIs(t, err, ErrUnknownEntityKind)
}
