package repositories

import "ecolearn/internal/models"

// UserRepository defines the interface for credential and profile storage.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	Replace(user *models.User) error
}
