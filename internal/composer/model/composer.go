// Package model provides domain models and DTOs for the composer module.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Composer represents a composer document.
// Matches the composers table schema.
type Composer struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)"        json:"id"`
	FirstName string    `gorm:"column:first_name;type:varchar(255);not null" json:"firstName"`
	LastName  string    `gorm:"column:last_name;type:varchar(255);not null"  json:"lastName"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (Composer) TableName() string {
	return "composers"
}

// BeforeCreate assigns a store-generated identifier.
func (c *Composer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (c *Composer) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	return nil
}
