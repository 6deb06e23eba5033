// Package model provides domain models and DTOs for the team module.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Player is an embedded player entry owned by a team. Players have no
// identity independent of their parent team.
type Player struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Salary    float64 `json:"salary"`
}

// Team represents a team document with its embedded player roster.
type Team struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)"     json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"    json:"name"`
	Mascot    string    `gorm:"column:mascot;type:varchar(255);not null"  json:"mascot"`
	Players   []Player  `gorm:"column:players;type:jsonb;serializer:json" json:"players"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeCreate assigns a store-generated identifier and normalizes
// the player sequence.
func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Players == nil {
		t.Players = []Player{}
	}
	return nil
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}
