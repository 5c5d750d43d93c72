package repositories

import (
	"context"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/models"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/database"
)

// ProductRepository handles catalog reads and admin writes.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// All returns every product with its category preloaded.
func (r *ProductRepository) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := database.DB.WithContext(ctx).
		Preload("Category").
		Find(&products).Error
	return products, wrap(ctx, "products: all", err)
}

// ByCategoryName returns the products belonging to the named category.
func (r *ProductRepository) ByCategoryName(ctx context.Context, name string) ([]models.Product, error) {
	var products []models.Product
	err := database.DB.WithContext(ctx).
		Joins("JOIN categories ON categories.id = products.category_id AND categories.deleted_at IS NULL").
		Where("categories.name = ?", name).
		Preload("Category").
		Find(&products).Error
	return products, wrap(ctx, "products: by category", err)
}

// Search matches a case-insensitive substring against name and description.
func (r *ProductRepository) Search(ctx context.Context, query string) ([]models.Product, error) {
	var products []models.Product
	pattern := "%" + query + "%"
	err := database.DB.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern).
		Preload("Category").
		Find(&products).Error
	return products, wrap(ctx, "products: search", err)
}

// Featured returns the products flagged for the storefront home page.
func (r *ProductRepository) Featured(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := database.DB.WithContext(ctx).
		Where("featured = ?", true).
		Preload("Category").
		Find(&products).Error
	return products, wrap(ctx, "products: featured", err)
}

// ByID returns a single product or ErrNotFound.
func (r *ProductRepository) ByID(ctx context.Context, id uint) (models.Product, error) {
	var product models.Product
	err := database.DB.WithContext(ctx).
		Preload("Category").
		First(&product, id).Error
	return product, wrap(ctx, "products: by id", err)
}

// Create persists a new product row.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	err := database.DB.WithContext(ctx).Create(p).Error
	return wrap(ctx, "products: create", err)
}

// Update overwrites the mutable product fields for id.
func (r *ProductRepository) Update(ctx context.Context, id uint, p *models.Product) error {
	err := database.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"image_url":   p.ImageURL,
			"stock":       p.Stock,
			"category_id": p.CategoryID,
		}).Error
	return wrap(ctx, "products: update", err)
}

// Delete removes a product by id.
func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	err := database.DB.WithContext(ctx).Delete(&models.Product{}, id).Error
	return wrap(ctx, "products: delete", err)
}
