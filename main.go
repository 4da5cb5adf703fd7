package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sweetdelights/pastry-shop/initializers"
	"github.com/sweetdelights/pastry-shop/routes"
)

func init() {
	initializers.LoadEnv()
	initializers.LoadConfig()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
	initializers.SeedPastries()
	initializers.InitSessionStore()
}

func main() {
	server := gin.Default()

	// Cap request bodies at the configured limit.
	server.Use(func(ctx *gin.Context) {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, initializers.AppConfig.MaxContentLength)
		ctx.Next()
	})

	server.LoadHTMLGlob("templates/*.html")
	server.Static("/static/uploads", initializers.AppConfig.UploadFolder)

	routes.CatalogRoutes(server)
	routes.CartRoutes(server)
	routes.OrderRoutes(server)
	routes.APIRoutes(server)

	server.Run(":" + initializers.AppConfig.Port)
}
