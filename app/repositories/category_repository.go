package repositories

import (
	"context"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/models"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/database"
)

// CategoryRepository handles category reads and admin creates.
type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

// All returns every category.
func (r *CategoryRepository) All(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := database.DB.WithContext(ctx).Find(&categories).Error
	return categories, wrap(ctx, "categories: all", err)
}

// Create persists a new category; a duplicate name returns ErrDuplicate.
func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	err := database.DB.WithContext(ctx).Create(c).Error
	return wrap(ctx, "categories: create", err)
}
