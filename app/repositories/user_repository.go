package repositories

import (
	"context"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/models"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/database"
)

// UserRepository handles storefront customer lookups and signup inserts.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// ByEmail looks up a user by email address.
func (r *UserRepository) ByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := database.DB.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	return user, wrap(ctx, "users: by email", err)
}

// Create inserts a new user; a registered email returns ErrDuplicate and
// leaves no row behind.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := database.DB.WithContext(ctx).Create(user).Error
	return wrap(ctx, "users: create", err)
}

// AdminRepository handles console operator lookups. Admins are provisioned
// out of band (seeder); there is no signup path.
type AdminRepository struct{}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{}
}

// ByUsername looks up an admin by username.
func (r *AdminRepository) ByUsername(ctx context.Context, username string) (models.Admin, error) {
	var admin models.Admin
	err := database.DB.WithContext(ctx).
		Where("username = ?", username).
		First(&admin).Error
	return admin, wrap(ctx, "admins: by username", err)
}

// Create inserts an admin row; used by the seeder.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	err := database.DB.WithContext(ctx).Create(admin).Error
	return wrap(ctx, "admins: create", err)
}
