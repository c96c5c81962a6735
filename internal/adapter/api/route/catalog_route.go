package route

import (
	"github.com/aguamarina/pos-tienda/internal/adapter/api/controller"
	"github.com/aguamarina/pos-tienda/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes configura as rotas de categorias e tamanhos.
// Os caminhos preservam o contrato das telas de cadastro: listagem no
// plural, criação no singular.
func SetupCatalogRoutes(router *gin.RouterGroup, categoryController *controller.CategoryController, sizeController *controller.SizeController) {
	protected := router.Group("")
	protected.Use(auth.JWTAuthMiddleware())
	{
		protected.GET("/categories", categoryController.List)
		protected.POST("/category", categoryController.Create)

		protected.GET("/sizes", sizeController.List)
		protected.POST("/size", sizeController.Create)
	}
}
