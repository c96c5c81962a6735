package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aguamarina/pos-tienda/internal/adapter/api/dto"
	"github.com/aguamarina/pos-tienda/internal/domain/cart"
	"github.com/aguamarina/pos-tienda/internal/domain/product"
	"github.com/aguamarina/pos-tienda/internal/domain/sale"
	"github.com/aguamarina/pos-tienda/internal/infrastructure/session"
	"github.com/aguamarina/pos-tienda/pkg/auth"
	"github.com/aguamarina/pos-tienda/pkg/logger"
	"github.com/gin-gonic/gin"
)

// receiptTTL é o tempo de vida do snapshot da venda no mailbox; a tela
// de recibo o consome logo após o fechamento.
const receiptTTL = 5 * time.Minute

// POSController gerencia as requisições do ponto de venda
type POSController struct {
	productRepository product.Repository
	saleRepository    sale.Repository
	mailbox           session.Mailbox
	log               logger.Logger
}

// NewPOSController cria uma nova instância de POSController
func NewPOSController(productRepository product.Repository, saleRepository sale.Repository, mailbox session.Mailbox, log logger.Logger) *POSController {
	return &POSController{
		productRepository: productRepository,
		saleRepository:    saleRepository,
		mailbox:           mailbox,
		log:               log,
	}
}

// ListProducts lista as unidades vendáveis para a tela do PDV
// @Summary Lista produtos (PDV)
// @Description Retorna a página de unidades vendáveis: produtos ativos e suas variantes achatados
// @Tags pos
// @Produce json
// @Security Bearer
// @Param page path int true "Página (a partir de 1)"
// @Param filters query string false "Filtros codificados em JSON"
// @Param dataSearchProducts query string false "Busca por nome ou código de barras"
// @Success 200 {object} dto.POSProductListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pos-products/{page} [get]
func (c *POSController) ListProducts(ctx *gin.Context) {
	page, filter, search, err := parseListParams(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Parâmetros inválidos", err.Error()))
		return
	}

	units, totals, err := c.productRepository.ListPOS(ctx, page, filter, search)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPOSProductListResponse(units, totals))
}

// CreateOrder fecha uma venda do PDV
// @Summary Fecha uma venda
// @Description Reconstrói o carrinho no servidor, recalcula os totais, revalida o estoque e persiste a venda em uma transação
// @Tags pos
// @Accept json
// @Produce json
// @Security Bearer
// @Param order body dto.OrderRequest true "Linhas do carrinho, desconto e adição"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.StockConflictResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pos/order [post]
func (c *POSController) CreateOrder(ctx *gin.Context) {
	var request dto.OrderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	// O carrinho é reconstruído do zero: cada linha passa pela mesma
	// validação e teto de quantidade do domínio, e os totais vêm sempre
	// das linhas, nunca do que o cliente calculou
	posCart := cart.New()
	for _, item := range request.Items {
		line, err := cart.RestoreLineItem(
			item.ID,
			item.Size,
			item.Name,
			item.MainImage,
			item.Quantity,
			item.UnitPrice,
			item.IsVariant,
			item.MaxQuantity,
		)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Linha inválida", err.Error()))
			return
		}
		posCart.AddItems(line)
	}

	posCart.SetDiscountText(request.TotalDiscount)
	posCart.SetAdditionText(request.TotalAddition)

	snapshot, err := posCart.Checkout()
	if err != nil {
		if errors.Is(err, cart.ErrEmptyCart) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Carrinho vazio", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao fechar venda", err.Error()))
		return
	}

	createdBy, _ := auth.CurrentUser(ctx)

	if err := c.saleRepository.Save(ctx, snapshot, createdBy); err != nil {
		_ = posCart.Fail()

		var stockErr *sale.InsufficientStockError
		if errors.As(err, &stockErr) {
			ctx.JSON(http.StatusConflict, dto.StockConflictResponse{
				Code:      http.StatusConflict,
				Message:   "Estoque insuficiente",
				Conflicts: stockErr.Conflicts,
			})
			return
		}

		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gravar venda", err.Error()))
		return
	}

	_ = posCart.Complete()

	// O snapshot fica disponível para uma única leitura da tela de
	// recibo. Falha aqui não desfaz a venda já gravada.
	if data, err := json.Marshal(snapshot); err == nil {
		if err := c.mailbox.Put(ctx, snapshot.ID, data, receiptTTL); err != nil {
			c.log.Warn("falha ao gravar snapshot do recibo", "sale_id", snapshot.ID, "error", err)
		}
	}

	ctx.JSON(http.StatusCreated, dto.OrderResponse{Success: true, Sale: snapshot})
}

// Receipt consome o snapshot de uma venda fechada
// @Summary Consome o recibo de uma venda
// @Description Retorna o snapshot da venda e o remove; uma segunda leitura encontra 404
// @Tags pos
// @Produce json
// @Security Bearer
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pos/receipt/{id} [get]
func (c *POSController) Receipt(ctx *gin.Context) {
	data, err := c.mailbox.Take(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Recibo não encontrado", "O recibo não existe ou já foi consumido"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar recibo", err.Error()))
		return
	}

	var snapshot cart.Sale
	if err := json.Unmarshal(data, &snapshot); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao decodificar recibo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.OrderResponse{Success: true, Sale: &snapshot})
}
