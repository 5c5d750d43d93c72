package models

import "gorm.io/gorm"

// Product is a catalog item. ImageURL points at the storage disk or an
// external CDN; Featured products surface on the storefront home page.
type Product struct {
	gorm.Model
	Name        string  `gorm:"size:255;not null;index"       json:"name"`
	Description string  `gorm:"type:text"                     json:"description"`
	Price       float64 `gorm:"not null;default:0"            json:"price"`
	ImageURL    string  `gorm:"size:512"                      json:"image_url"`
	Stock       int     `gorm:"not null;default:0"            json:"stock"`
	CategoryID  uint    `gorm:"not null;index"                json:"category_id"`
	Featured    bool    `gorm:"not null;default:false;index"  json:"featured"`

	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// Category groups products for storefront browsing.
type Category struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;size:255;not null" json:"name"`
}
