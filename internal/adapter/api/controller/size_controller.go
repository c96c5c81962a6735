package controller

import (
	"errors"
	"net/http"

	"github.com/aguamarina/pos-tienda/internal/adapter/api/dto"
	"github.com/aguamarina/pos-tienda/internal/adapter/repository"
	"github.com/aguamarina/pos-tienda/internal/domain/size"
	"github.com/gin-gonic/gin"
)

// SizeController gerencia as requisições relacionadas a tamanhos
type SizeController struct {
	sizeRepository size.Repository
}

// NewSizeController cria uma nova instância de SizeController
func NewSizeController(sizeRepository size.Repository) *SizeController {
	return &SizeController{
		sizeRepository: sizeRepository,
	}
}

// List lista os tamanhos do catálogo
// @Summary Lista os tamanhos
// @Description Retorna todos os tamanhos na ordem em que foram cadastrados
// @Tags sizes
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.SizeListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sizes [get]
func (c *SizeController) List(ctx *gin.Context) {
	sizes, err := c.sizeRepository.List(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar tamanhos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSizeListResponse(sizes))
}

// Create cria um novo tamanho
// @Summary Cria um tamanho
// @Description Cria um novo tamanho e retorna a lista atualizada
// @Tags sizes
// @Accept json
// @Produce json
// @Security Bearer
// @Param size body dto.SizeRequest true "Dados do tamanho"
// @Success 201 {object} dto.SizeCreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /size [post]
func (c *SizeController) Create(ctx *gin.Context) {
	var request dto.SizeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	newSize, err := size.NewSize(request.Name)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.sizeRepository.Create(ctx, newSize); err != nil {
		if errors.Is(err, repository.ErrSizeDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Tamanho já existe", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar tamanho", err.Error()))
		return
	}

	sizes, err := c.sizeRepository.List(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar tamanhos", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.SizeCreatedResponse{Success: true, Size: sizes})
}
