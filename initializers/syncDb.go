package initializers

import (
	"log"

	"github.com/sweetdelights/pastry-shop/models"
)

func SyncDatabase() {
	err := DB.AutoMigrate(&models.Pastry{}, &models.Customer{}, &models.Order{}, &models.OrderItem{})
	if err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
	log.Println("Database synced successfully.")
}
