// Package repositories holds one repository per aggregate root. Each is a
// thin pass-through to the relational store; business rules live in the
// services that compose them.
package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/declanhart/order-management-api/models"
)

// UserRepository provides access to user accounts.
type UserRepository interface {
	// GetByUsername returns the user with the given username, or nil when
	// no such user exists.
	GetByUsername(username string) (*models.User, error)
	Add(user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a GORM-backed UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Add(user *models.User) error {
	return r.db.Create(user).Error
}
