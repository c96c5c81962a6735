package controller

import (
	"errors"
	"net/http"

	"github.com/aguamarina/pos-tienda/internal/adapter/api/dto"
	"github.com/aguamarina/pos-tienda/internal/infrastructure/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadController gerencia o envio avulso de imagens
type UploadController struct {
	uploader storage.Uploader
}

// NewUploadController cria uma nova instância de UploadController
func NewUploadController(uploader storage.Uploader) *UploadController {
	return &UploadController{
		uploader: uploader,
	}
}

// Upload hospeda uma imagem enviada como data-URL
// @Summary Hospeda uma imagem
// @Description Otimiza a imagem (JPEG, largura máxima 1200px) e retorna a URL pública
// @Tags upload
// @Accept json
// @Produce json
// @Security Bearer
// @Param upload body dto.UploadRequest true "Imagem como data-URL base64"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /upload [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	var request dto.UploadRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	if c.uploader == nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(http.StatusServiceUnavailable, "Storage indisponível", ErrStorageUnavailable.Error()))
		return
	}

	data, err := storage.DecodeDataURL(request.Image)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Imagem inválida", err.Error()))
		return
	}

	optimized, err := storage.Optimize(data)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidDataURL) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Imagem inválida", err.Error()))
			return
		}
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Erro ao processar imagem", err.Error()))
		return
	}

	url, err := c.uploader.Upload(ctx, "uploads/"+uuid.New().String()+".jpg", optimized, "image/jpeg")
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao hospedar imagem", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.UploadResponse{Success: true, URL: url})
}
