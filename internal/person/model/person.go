// Package model provides domain models and DTOs for the person module.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is an embedded role entry owned by a person.
// It has no identity independent of its parent document.
type Role struct {
	Text string `json:"text"`
}

// Dependent is an embedded dependent entry owned by a person.
type Dependent struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Person represents a person document with its embedded collections.
// Roles and dependents are stored inline as JSON and are only mutated
// through parent document updates.
type Person struct {
	ID         string      `gorm:"primaryKey;column:id;type:varchar(36)"        json:"id"`
	FirstName  string      `gorm:"column:first_name;type:varchar(255);not null" json:"firstName"`
	LastName   string      `gorm:"column:last_name;type:varchar(255);not null"  json:"lastName"`
	BirthDate  string      `gorm:"column:birth_date;type:varchar(255);not null" json:"birthDate"`
	Roles      []Role      `gorm:"column:roles;type:jsonb;serializer:json"      json:"roles"`
	Dependents []Dependent `gorm:"column:dependents;type:jsonb;serializer:json" json:"dependents"`
	CreatedAt  time.Time   `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt  time.Time   `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (Person) TableName() string {
	return "persons"
}

// BeforeCreate assigns a store-generated identifier and normalizes
// embedded collections to empty sequences.
func (p *Person) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Roles == nil {
		p.Roles = []Role{}
	}
	if p.Dependents == nil {
		p.Dependents = []Dependent{}
	}
	return nil
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (p *Person) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}
