package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sweetdelights/pastry-shop/controllers"
)

func CatalogRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
	server.GET("/browse", controllers.BrowsePastries)
	server.GET("/pastry/:id", controllers.GetPastry)
}
