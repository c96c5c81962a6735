package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/aguamarina/pos-tienda/internal/adapter/api/dto"
	"github.com/aguamarina/pos-tienda/internal/adapter/repository"
	"github.com/aguamarina/pos-tienda/internal/domain/product"
	"github.com/aguamarina/pos-tienda/internal/infrastructure/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrStorageUnavailable indica que o produto trouxe uma imagem inline
// mas não há storage configurado para hospedá-la.
var ErrStorageUnavailable = errors.New("storage de imagens não configurado")

// ProductController gerencia as requisições de administração de produtos
type ProductController struct {
	productRepository product.Repository
	uploader          storage.Uploader
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepository product.Repository, uploader storage.Uploader) *ProductController {
	return &ProductController{
		productRepository: productRepository,
		uploader:          uploader,
	}
}

// ListAdmin lista os produtos para a tela de administração
// @Summary Lista produtos (administração)
// @Description Retorna a página de produtos com filtros, busca e totais de paginação
// @Tags products
// @Produce json
// @Security Bearer
// @Param page path int true "Página (a partir de 1)"
// @Param filters query string false "Filtros codificados em JSON"
// @Param dataSearchProducts query string false "Busca por nome ou código de barras"
// @Success 200 {object} dto.AdminProductListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /new/products-admin/{page} [get]
func (c *ProductController) ListAdmin(ctx *gin.Context) {
	page, filter, search, err := parseListParams(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Parâmetros inválidos", err.Error()))
		return
	}

	products, totals, err := c.productRepository.ListAdmin(ctx, page, filter, search)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAdminProductListResponse(products, totals))
}

// Create cria um novo produto
// @Summary Cria um produto
// @Description Cadastra um produto com alocações de estoque por tamanho e variantes
// @Tags products
// @Accept json
// @Produce json
// @Security Bearer
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin-product [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var request dto.ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	if err := c.resolveImages(ctx, &request); err != nil {
		c.writeImageError(ctx, err)
		return
	}

	newProduct, err := product.NewProduct(
		request.Name,
		request.Category,
		request.Barcode,
		request.CostPrice,
		request.SalePrice,
		request.MainImage,
		request.Description,
		dto.ToDomainAllocations(request.SizeAllocations),
		dto.ToDomainVariants(request.Variants),
		request.IsActive,
	)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Dados inválidos", err.Error()))
		return
	}

	if err := c.productRepository.Create(ctx, newProduct); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Produto já existe", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ProductResponse{Success: true, Product: newProduct})
}

// Update edita um produto existente
// @Summary Edita um produto
// @Description Substitui os dados do produto, suas alocações e variantes
// @Tags products
// @Accept json
// @Produce json
// @Security Bearer
// @Param product body dto.ProductUpdateRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin-edit-product [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var request dto.ProductUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	existing, err := c.productRepository.FindByID(ctx, request.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
		return
	}

	if err := c.resolveImages(ctx, &request.ProductRequest); err != nil {
		c.writeImageError(ctx, err)
		return
	}

	err = existing.Update(
		request.Name,
		request.Category,
		request.Barcode,
		request.CostPrice,
		request.SalePrice,
		request.MainImage,
		request.Description,
		dto.ToDomainAllocations(request.SizeAllocations),
		dto.ToDomainVariants(request.Variants),
		request.IsActive,
	)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Dados inválidos", err.Error()))
		return
	}

	if err := c.productRepository.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Produto já existe", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ProductResponse{Success: true, Product: existing})
}

// resolveImages substitui imagens inline (data-URL) do produto e de
// suas variantes pela URL hospedada após otimização.
func (c *ProductController) resolveImages(ctx *gin.Context, request *dto.ProductRequest) error {
	resolved, err := c.resolveImage(ctx, request.MainImage)
	if err != nil {
		return err
	}
	request.MainImage = resolved

	for i := range request.Variants {
		resolved, err := c.resolveImage(ctx, request.Variants[i].MainImage)
		if err != nil {
			return err
		}
		request.Variants[i].MainImage = resolved
	}

	return nil
}

// resolveImage hospeda uma imagem inline e devolve sua URL; URLs já
// hospedadas passam intactas.
func (c *ProductController) resolveImage(ctx *gin.Context, raw string) (string, error) {
	if !strings.HasPrefix(raw, "data:image/") {
		return raw, nil
	}
	if c.uploader == nil {
		return "", ErrStorageUnavailable
	}

	data, err := storage.DecodeDataURL(raw)
	if err != nil {
		return "", err
	}

	optimized, err := storage.Optimize(data)
	if err != nil {
		return "", err
	}

	return c.uploader.Upload(ctx, "products/"+uuid.New().String()+".jpg", optimized, "image/jpeg")
}

// writeImageError mapeia erros do pipeline de imagens para HTTP
func (c *ProductController) writeImageError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrStorageUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(http.StatusServiceUnavailable, "Storage indisponível", err.Error()))
	case errors.Is(err, storage.ErrInvalidDataURL):
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Imagem inválida", err.Error()))
	default:
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao processar imagem", err.Error()))
	}
}

// parseListParams extrai página, filtros e termo de busca das rotas de
// listagem. Os filtros chegam como objeto JSON no parâmetro "filters";
// na ausência dele, os campos individuais da query são aceitos.
func parseListParams(ctx *gin.Context) (int, product.Filter, string, error) {
	page, err := strconv.Atoi(ctx.Param("page"))
	if err != nil || page < 1 {
		page = 1
	}

	var filter product.Filter
	if raw := ctx.Query("filters"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &filter); err != nil {
			return 0, product.Filter{}, "", err
		}
	} else if err := ctx.ShouldBindQuery(&filter); err != nil {
		return 0, product.Filter{}, "", err
	}

	return page, filter, ctx.Query("dataSearchProducts"), nil
}
