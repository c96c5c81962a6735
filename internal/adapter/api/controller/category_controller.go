package controller

import (
	"errors"
	"net/http"

	"github.com/aguamarina/pos-tienda/internal/adapter/api/dto"
	"github.com/aguamarina/pos-tienda/internal/adapter/repository"
	"github.com/aguamarina/pos-tienda/internal/domain/category"
	"github.com/gin-gonic/gin"
)

// CategoryController gerencia as requisições relacionadas a categorias
type CategoryController struct {
	categoryRepository category.Repository
}

// NewCategoryController cria uma nova instância de CategoryController
func NewCategoryController(categoryRepository category.Repository) *CategoryController {
	return &CategoryController{
		categoryRepository: categoryRepository,
	}
}

// List lista as categorias do catálogo
// @Summary Lista as categorias
// @Description Retorna todas as categorias do catálogo em ordem alfabética
// @Tags categories
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.CategoryListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.categoryRepository.List(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar categorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(categories))
}

// Create cria uma nova categoria
// @Summary Cria uma categoria
// @Description Cria uma nova categoria e retorna a lista atualizada
// @Tags categories
// @Accept json
// @Produce json
// @Security Bearer
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 201 {object} dto.CategoryListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /category [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var request dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	newCategory, err := category.NewCategory(request.Name)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.categoryRepository.Create(ctx, newCategory); err != nil {
		if errors.Is(err, repository.ErrCategoryDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Categoria já existe", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar categoria", err.Error()))
		return
	}

	// A tela de cadastro espera a lista completa de volta
	categories, err := c.categoryRepository.List(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar categorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryListResponse(categories))
}
