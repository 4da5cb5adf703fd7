package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	PaymentStatusPending = "pending"
)

type Order struct {
	gorm.Model
	OrderNumber         string         `json:"orderNumber" gorm:"size:36;uniqueIndex"`
	CustomerID          uint           `json:"customerId"`
	Customer            Customer       `json:"customer" gorm:"foreignKey:CustomerID"`
	TotalAmount         float64        `json:"totalAmount" gorm:"not null"`
	DeliveryDate        datatypes.Date `json:"deliveryDate"`
	DeliveryAddress     string         `json:"deliveryAddress" gorm:"type:text;not null"`
	DeliveryCity        string         `json:"deliveryCity" gorm:"size:100;not null"`
	DeliveryPostalCode  string         `json:"deliveryPostalCode" gorm:"size:20"`
	Status              string         `json:"status" gorm:"size:20"`
	PaymentStatus       string         `json:"paymentStatus" gorm:"size:20"`
	SpecialInstructions string         `json:"specialInstructions" gorm:"type:text"`
	Items               []OrderItem    `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem carries the unit price as it was at order time; it is never
// recomputed from the catalog afterwards.
type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"orderId"`
	PastryID  uint    `json:"pastryId"`
	Pastry    Pastry  `json:"pastry" gorm:"foreignKey:PastryID"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	UnitPrice float64 `json:"unitPrice" gorm:"not null"`
}

// OrderForm is the delivery form posted from the checkout page.
type OrderForm struct {
	Name                string `form:"name" binding:"required"`
	Email               string `form:"email" binding:"required,email"`
	Phone               string `form:"phone"`
	DeliveryDate        string `form:"delivery_date" binding:"required"`
	Address             string `form:"address" binding:"required"`
	City                string `form:"city" binding:"required"`
	PostalCode          string `form:"postal_code"`
	SpecialInstructions string `form:"special_instructions"`
}
