package models

import "gorm.io/gorm"

type Pastry struct {
	gorm.Model
	Name        string  `json:"name" gorm:"size:100;not null" binding:"required"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price" gorm:"not null" binding:"required"`
	ImageURL    string  `json:"imageUrl" gorm:"size:200"`
	Category    string  `json:"category" gorm:"size:50"`
	Available   bool    `json:"available" gorm:"default:true"`
}
