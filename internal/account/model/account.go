// Package model provides domain models and DTOs for the account module.
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailList holds an account's email addresses. The original API accepted
// either a single string or an array of strings, so both forms are
// recognized on input; output is always an array.
type EmailList []string

// UnmarshalJSON accepts a bare string or an array of strings.
// Null means no addresses, not the empty address.
func (e *EmailList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*e = EmailList{}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*e = EmailList(many)
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*e = EmailList{single}
	return nil
}

// Account represents a registered user credential record. The password
// hash is never serialized into any response body.
type Account struct {
	ID             string    `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	UserName       string    `gorm:"column:user_name;type:varchar(255);not null;uniqueIndex:idx_accounts_user_name" json:"userName"`
	PasswordHash   string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	EmailAddresses EmailList `gorm:"column:email_addresses;type:jsonb;serializer:json" json:"emailAddress"`
	CreatedAt      time.Time `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (Account) TableName() string {
	return "accounts"
}

// BeforeCreate assigns a store-generated identifier.
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.EmailAddresses == nil {
		a.EmailAddresses = EmailList{}
	}
	return nil
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return nil
}
