// Package model provides domain models and DTOs for the customer module.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LineItem is an embedded line item owned by an invoice.
type LineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

// Invoice is an embedded invoice owned by a customer. Invoices have no
// identity independent of their parent and are only created or destroyed
// as part of customer document mutation.
type Invoice struct {
	Subtotal    float64    `json:"subtotal"`
	Tax         float64    `json:"tax"`
	DateCreated string     `json:"dateCreated"`
	DateShipped string     `json:"dateShipped"`
	LineItems   []LineItem `json:"lineItems"`
}

// Customer represents a customer document with its embedded invoices.
type Customer struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)"        json:"id"`
	FirstName string    `gorm:"column:first_name;type:varchar(255);not null" json:"firstName"`
	LastName  string    `gorm:"column:last_name;type:varchar(255);not null"  json:"lastName"`
	UserName  string    `gorm:"column:user_name;type:varchar(255);not null;index:idx_customers_user_name" json:"userName"`
	Invoices  []Invoice `gorm:"column:invoices;type:jsonb;serializer:json"   json:"invoices"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (Customer) TableName() string {
	return "customers"
}

// BeforeCreate assigns a store-generated identifier and normalizes
// the invoice sequence.
func (cu *Customer) BeforeCreate(tx *gorm.DB) error {
	if cu.ID == "" {
		cu.ID = uuid.NewString()
	}
	if cu.Invoices == nil {
		cu.Invoices = []Invoice{}
	}
	return nil
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (cu *Customer) BeforeUpdate(tx *gorm.DB) error {
	cu.UpdatedAt = time.Now()
	return nil
}
