package models

import (
	"time"
)

// Role values accepted for a user account.
const (
	RoleAdmin    = "Admin"
	RoleCustomer = "Customer"
)

// User represents a registered account that can authenticate against the API
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"` // never serialized
	Role         string    `gorm:"size:100;not null;default:'Customer'" json:"role"` // "Admin" or "Customer"
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
