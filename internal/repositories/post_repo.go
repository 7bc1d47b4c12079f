package repositories

import "ecolearn/internal/models"

// PostRepository defines the interface for community post storage.
type PostRepository interface {
	GetAll() ([]models.Post, error)
	GetByID(id string) (*models.Post, error)
	Create(post *models.Post) error
	Replace(post *models.Post) error
	Delete(id string) error
}
