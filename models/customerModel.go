package models

import "gorm.io/gorm"

// Customer is created lazily on a first order and looked up by email on
// repeat orders. Email is the sole identity key; name and phone are never
// updated once the row exists.
type Customer struct {
	gorm.Model
	Name  string `json:"name" gorm:"size:100;not null"`
	Email string `json:"email" gorm:"size:120;uniqueIndex;not null"`
	Phone string `json:"phone" gorm:"size:20"`
}
