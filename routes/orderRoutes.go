package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sweetdelights/pastry-shop/controllers"
)

func OrderRoutes(server *gin.Engine) {
	server.GET("/checkout", controllers.ShowCheckout)
	server.POST("/place_order", controllers.PlaceOrder)
	server.GET("/order/:orderNumber", controllers.ShowOrderConfirmation)
}
