package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `gorm:"not null" json:"name"`
	Phone    string `gorm:"uniqueIndex;not null" json:"phone"`
	Status   string `gorm:"default:'active'" json:"status"`
}

// CreateUserInput is the payload accepted at registration time.
type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}
