package route

import (
	"github.com/aguamarina/pos-tienda/internal/adapter/api/controller"
	"github.com/aguamarina/pos-tienda/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupPOSRoutes configura as rotas do ponto de venda
func SetupPOSRoutes(router *gin.RouterGroup, posController *controller.POSController) {
	protected := router.Group("")
	protected.Use(auth.JWTAuthMiddleware())
	{
		protected.GET("/pos-products/:page", posController.ListProducts)

		posRouter := protected.Group("/pos")
		{
			posRouter.POST("/order", posController.CreateOrder)
			posRouter.GET("/receipt/:id", posController.Receipt)
		}
	}
}
