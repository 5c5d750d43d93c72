package seeders

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/models"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/config"
)

func init() {
	Register("admin", SeedAdmin)
	Register("categories", SeedCategories)
}

// SeedAdmin creates the default console account if none exists. The
// password comes from ADMIN_PASSWORD and must be changed after first login.
func SeedAdmin(db *gorm.DB) error {
	username := config.Get("ADMIN_USERNAME", "admin")

	var existing models.Admin
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword(
		[]byte(config.Get("ADMIN_PASSWORD", "admin")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&models.Admin{Username: username, PasswordHash: string(hash)}).Error
}

// SeedCategories inserts the storefront's starting categories, skipping any
// that already exist.
func SeedCategories(db *gorm.DB) error {
	names := []string{"Electronics", "Clothing", "Home", "Accessories"}
	for _, name := range names {
		var existing models.Category
		err := db.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&models.Category{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
