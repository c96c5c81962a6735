package route

import (
	"github.com/aguamarina/pos-tienda/internal/adapter/api/controller"
	"github.com/aguamarina/pos-tienda/internal/domain/user"
	"github.com/aguamarina/pos-tienda/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupUploadRoutes configura a rota de hospedagem de imagens
func SetupUploadRoutes(router *gin.RouterGroup, uploadController *controller.UploadController) {
	protected := router.Group("")
	protected.Use(auth.JWTAuthMiddleware(), auth.RoleAuthMiddleware(string(user.RoleAdmin)))
	{
		protected.POST("/upload", uploadController.Upload)
	}
}
