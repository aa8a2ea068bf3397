// Package models defines the entity records Invoicor persists and the
// boundary validation applied on create/update. Stored and form data is
// never trusted to already conform.
package models

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/common"
)

// DateLayout is the wire format for all entity dates (YYYY-MM-DD).
const DateLayout = "2006-01-02"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Customer is one customer record. TotalOrders carries the legacy "orders"
// field name from the abandoned index-identity schema; UnmarshalJSON accepts
// both spellings, MarshalJSON always emits the canonical one.
type Customer struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	TotalOrders int    `json:"totalOrders"`
	LastOrder   string `json:"lastOrder"`
}

func (c *Customer) UnmarshalJSON(data []byte) error {
	type alias Customer
	aux := struct {
		*alias
		Orders *int `json:"orders"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Orders != nil && c.TotalOrders == 0 {
		c.TotalOrders = *aux.Orders
	}
	return nil
}

// Validate checks the fields the original form validated, plus required
// name. The phone must contain exactly ten digits; Normalize formats it.
func (c *Customer) Validate(now time.Time) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if !emailRe.MatchString(c.Email) {
		return fmt.Errorf("%w: invalid email address", common.ErrorValidation)
	}
	if len(digitsOnly(c.Phone)) != 10 {
		return fmt.Errorf("%w: phone must have 10 digits", common.ErrorValidation)
	}
	if c.TotalOrders < 0 {
		return fmt.Errorf("%w: orders cannot be negative", common.ErrorValidation)
	}
	if c.LastOrder != "" {
		d, err := time.Parse(DateLayout, c.LastOrder)
		if err != nil {
			return fmt.Errorf("%w: invalid last order date", common.ErrorValidation)
		}
		if d.After(now) {
			return fmt.Errorf("%w: last order date cannot be in the future", common.ErrorValidation)
		}
	}
	return nil
}

// Normalize trims text fields and formats the phone as (XXX) XXX-XXXX.
func (c *Customer) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Address = strings.TrimSpace(c.Address)
	c.Email = strings.TrimSpace(c.Email)
	c.Company = strings.TrimSpace(c.Company)
	c.Phone = FormatPhone(c.Phone)
}

// FormatPhone formats a ten-digit phone number as (XXX) XXX-XXXX. Anything
// else is returned unchanged.
func FormatPhone(phone string) string {
	d := digitsOnly(phone)
	if len(d) != 10 {
		return phone
	}
	return fmt.Sprintf("(%s) %s-%s", d[0:3], d[3:6], d[6:10])
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
