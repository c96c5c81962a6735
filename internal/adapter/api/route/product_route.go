package route

import (
	"github.com/aguamarina/pos-tienda/internal/adapter/api/controller"
	"github.com/aguamarina/pos-tienda/internal/domain/user"
	"github.com/aguamarina/pos-tienda/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupProductRoutes configura as rotas de administração de produtos.
// Cadastro e edição exigem papel de administrador.
func SetupProductRoutes(router *gin.RouterGroup, productController *controller.ProductController) {
	protected := router.Group("")
	protected.Use(auth.JWTAuthMiddleware())
	{
		protected.GET("/new/products-admin/:page", productController.ListAdmin)

		admin := protected.Group("")
		admin.Use(auth.RoleAuthMiddleware(string(user.RoleAdmin)))
		{
			admin.POST("/admin-product", productController.Create)
			admin.PUT("/admin-edit-product", productController.Update)
		}
	}
}
