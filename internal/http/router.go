package http

import (
	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-catalog/internal/config"
	"github.com/iyhunko/product-catalog/internal/http/controller"
	"github.com/iyhunko/product-catalog/internal/http/middleware"
)

func InitRouter(conf *config.Config, server *gin.Engine, ctr *controller.Controller, productCtr *controller.ProductController) *gin.Engine {
	// Apply recovery middleware globally to prevent panics from crashing the server
	server.Use(middleware.Recovery())

	server.GET("/ping", ctr.Ping)

	// Product endpoints, bearer-token guarded
	products := server.Group("/products", middleware.BearerAuth(conf.APIToken))
	{
		products.GET("", productCtr.ListProducts)
		products.GET("/search", productCtr.SearchProducts)
		products.GET("/count", productCtr.CountProducts)
		products.POST("", productCtr.CreateProduct)
		products.POST("/:id", productCtr.UpdateProduct)
		products.DELETE("/:id", productCtr.DeleteProduct)
	}

	return server
}
