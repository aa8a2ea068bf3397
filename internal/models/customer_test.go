package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/common"
)

func validCustomer() Customer {
	return Customer{
		ID:          1,
		Name:        "John Smith",
		Address:     "123 Main St, Anytown, USA 12345",
		Email:       "john@example.com",
		Phone:       "(555) 123-4567",
		Company:     "Tech Solutions Inc.",
		TotalOrders: 5,
		LastOrder:   "2024-09-20",
	}
}

func TestCustomer_Validate(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(*Customer)
		valid  bool
	}{
		{name: "valid record", mutate: func(c *Customer) {}, valid: true},
		{name: "missing name", mutate: func(c *Customer) { c.Name = " " }},
		{name: "bad email", mutate: func(c *Customer) { c.Email = "nope" }},
		{name: "email without domain dot", mutate: func(c *Customer) { c.Email = "a@b" }},
		{name: "short phone", mutate: func(c *Customer) { c.Phone = "12345" }},
		{name: "negative orders", mutate: func(c *Customer) { c.TotalOrders = -1 }},
		{name: "future last order", mutate: func(c *Customer) { c.LastOrder = "2030-01-01" }},
		{name: "garbage last order", mutate: func(c *Customer) { c.LastOrder = "soon" }},
		{name: "empty last order allowed", mutate: func(c *Customer) { c.LastOrder = "" }, valid: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := validCustomer()
			tc.mutate(&c)
			err := c.Validate(now)
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, common.ErrorValidation)
			}
		})
	}
}

func TestCustomer_UnmarshalJSON_LegacyOrdersField(t *testing.T) {
	raw := `{"name":"Sarah Johnson","orders":3,"lastOrder":"2024-09-18"}`

	var c Customer
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	assert.Equal(t, int64(0), c.ID)
	assert.Equal(t, 3, c.TotalOrders)
}

func TestCustomer_UnmarshalJSON_CanonicalWins(t *testing.T) {
	raw := `{"name":"X","totalOrders":7,"orders":3}`

	var c Customer
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	assert.Equal(t, 7, c.TotalOrders)
}

func TestCustomer_MarshalJSON_EmitsCanonicalShape(t *testing.T) {
	c := validCustomer()
	b, err := json.Marshal(&c)
	require.NoError(t, err)

	assert.Contains(t, string(b), `"totalOrders":5`)
	assert.NotContains(t, string(b), `"orders"`)
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5551234567", "(555) 123-4567"},
		{"555-123-4567", "(555) 123-4567"},
		{"(555) 123-4567", "(555) 123-4567"},
		{"12345", "12345"},
		{"+1 (555) 123-4567", "+1 (555) 123-4567"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatPhone(tc.in), tc.in)
	}
}

func TestCustomer_Normalize(t *testing.T) {
	c := Customer{Name: " John ", Email: " john@example.com ", Phone: "5551234567", Company: " Co "}
	c.Normalize()

	assert.Equal(t, "John", c.Name)
	assert.Equal(t, "john@example.com", c.Email)
	assert.Equal(t, "(555) 123-4567", c.Phone)
	assert.Equal(t, "Co", c.Company)
}
