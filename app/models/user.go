package models

import "gorm.io/gorm"

// User is a storefront customer. Users and admins are separate identity
// classes with separate credential tables; one never authenticates as the
// other.
type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null"             json:"-"` // bcrypt, never serialised
}

// Admin is a console operator.
type Admin struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;size:255;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null"             json:"-"`
}
