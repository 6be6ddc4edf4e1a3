// internal/models/models_test.go
package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClient() *Client {
	return &Client{
		Name:    "Ivan Ivanov",
		Email:   "ivan@example.com",
		Phone:   "+7 (912) 345-67-89",
		Address: "Moscow",
	}
}

func TestClientValidation(t *testing.T) {
	assert.NoError(t, validClient().Validate())

	c := validClient()
	c.Email = "not-an-email"
	assert.Error(t, c.Validate())

	c = validClient()
	c.Phone = "12345"
	assert.Error(t, c.Validate())

	c = validClient()
	c.Name = ""
	assert.Error(t, c.Validate())

	c = validClient()
	c.Address = ""
	assert.Error(t, c.Validate())
}

func TestClientPhoneFormats(t *testing.T) {
	accepted := []string{
		"+79123456789",
		"89123456789",
		"+7 (912) 345-67-89",
		"8-912-345-67-89",
	}
	for _, phone := range accepted {
		c := validClient()
		c.Phone = phone
		assert.NoError(t, c.Validate(), "phone %q should validate", phone)
	}

	rejected := []string{
		"+1 555 0100",
		"9123456789",
		"+7912345",
	}
	for _, phone := range rejected {
		c := validClient()
		c.Phone = phone
		assert.Error(t, c.Validate(), "phone %q should not validate", phone)
	}
}

func TestNewClientDefaultsRegistrationDate(t *testing.T) {
	c := NewClient("Ivan", "ivan@example.com", "+79123456789", "Moscow")
	assert.WithinDuration(t, time.Now(), c.RegistrationDate, time.Minute)
}

func TestProductValidation(t *testing.T) {
	p := &Product{Name: "Phone", Price: 10000, Category: "Electronics"}
	assert.NoError(t, p.Validate())

	p = &Product{Name: "", Price: 10000}
	assert.Error(t, p.Validate())

	p = &Product{Name: "Phone", Price: 0}
	assert.Error(t, p.Validate())

	p = &Product{Name: "Phone", Price: -1}
	assert.Error(t, p.Validate())
}

func TestOrderValidation(t *testing.T) {
	o := NewOrder(1, "")
	assert.Error(t, o.Validate(), "order without items is invalid")

	o.AddItem(1, 2, 100)
	assert.NoError(t, o.Validate())

	o = NewOrder(0, "")
	o.AddItem(1, 1, 100)
	assert.Error(t, o.Validate(), "order without client reference is invalid")
}

func TestOrderTotalAmount(t *testing.T) {
	o := NewOrder(1, "")
	assert.Zero(t, o.TotalAmount())

	o.AddItem(1, 2, 10000)
	assert.InDelta(t, 20000, o.TotalAmount(), 1e-9)

	// Adding an item grows the total by exactly its line total.
	before := o.TotalAmount()
	o.AddItem(3, 1, 500)
	assert.InDelta(t, before+500, o.TotalAmount(), 1e-9)
}

func TestOrderAddRemoveItem(t *testing.T) {
	o := NewOrder(1, "")
	o.AddItem(1, 2, 100)
	o.AddItem(2, 1, 50)
	o.AddItem(1, 3, 100)

	o.RemoveItem(1)
	require.Len(t, o.Items, 1)
	assert.Equal(t, uint(2), o.Items[0].ProductID)
}

func TestNewOrderDefaults(t *testing.T) {
	o := NewOrder(1, "")
	assert.Equal(t, OrderStatusNew, o.Status)
	assert.WithinDuration(t, time.Now(), o.OrderDate, time.Minute)

	o = NewOrder(1, OrderStatusProcessing)
	assert.Equal(t, OrderStatusProcessing, o.Status)
}

func TestOrderItemHiddenInJSON(t *testing.T) {
	o := NewOrder(7, OrderStatusNew)
	o.AddItem(2, 1, 50)

	data, err := json.Marshal(o)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	items := decoded["items"].([]interface{})
	item := items[0].(map[string]interface{})
	assert.NotContains(t, item, "id")
	assert.NotContains(t, item, "order_id")
	assert.EqualValues(t, 2, item["product_id"])
}
