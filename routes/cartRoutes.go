package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sweetdelights/pastry-shop/controllers"
)

func CartRoutes(server *gin.Engine) {
	server.POST("/add_to_cart", controllers.AddToCart)
	server.GET("/cart", controllers.ShowCart)
	server.POST("/update_cart", controllers.UpdateCart)
	server.GET("/remove_from_cart/:id", controllers.RemoveFromCart)
}
