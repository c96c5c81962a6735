package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aguamarina/pos-tienda/internal/adapter/api/dto"
	"github.com/aguamarina/pos-tienda/internal/domain/cart"
	"github.com/aguamarina/pos-tienda/internal/domain/product"
	"github.com/aguamarina/pos-tienda/internal/domain/sale"
	"github.com/aguamarina/pos-tienda/internal/infrastructure/session"
	"github.com/aguamarina/pos-tienda/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductRepository struct {
	sellables []product.Sellable
	totals    product.Totals
}

func (s *stubProductRepository) Create(context.Context, *product.Product) error { return nil }
func (s *stubProductRepository) Update(context.Context, *product.Product) error { return nil }
func (s *stubProductRepository) FindByID(context.Context, string) (*product.Product, error) {
	return nil, nil
}
func (s *stubProductRepository) ListAdmin(context.Context, int, product.Filter, string) ([]*product.Product, product.Totals, error) {
	return nil, s.totals, nil
}
func (s *stubProductRepository) ListPOS(context.Context, int, product.Filter, string) ([]product.Sellable, product.Totals, error) {
	return s.sellables, s.totals, nil
}

type stubSaleRepository struct {
	saved     []*cart.Sale
	createdBy string
	err       error
}

func (s *stubSaleRepository) Save(_ context.Context, snapshot *cart.Sale, createdBy string) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, snapshot)
	s.createdBy = createdBy
	return nil
}

func newPOSTestRouter(saleRepo sale.Repository, mailbox session.Mailbox) *gin.Engine {
	gin.SetMode(gin.TestMode)

	controller := NewPOSController(&stubProductRepository{}, saleRepo, mailbox, logger.NewLogger())

	router := gin.New()
	router.GET("/pos-products/:page", controller.ListProducts)
	router.POST("/pos/order", controller.CreateOrder)
	router.GET("/pos/receipt/:id", controller.Receipt)
	return router
}

func postOrder(t *testing.T, router *gin.Engine, body dto.OrderRequest) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/pos/order", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCreateOrderPersistsAndExposesReceipt(t *testing.T) {
	saleRepo := &stubSaleRepository{}
	mailbox := session.NewMemoryMailbox()
	router := newPOSTestRouter(saleRepo, mailbox)

	recorder := postOrder(t, router, dto.OrderRequest{
		Items: []dto.OrderItemRequest{
			{ID: "prod-1.abc", Size: "M", Quantity: 2, Name: "Remera lisa", UnitPrice: 3000, MaxQuantity: 5},
			{ID: "prod-2.def", Size: "L", Quantity: 1, Name: "Pantalón cargo", UnitPrice: 8000, MaxQuantity: 3},
		},
		TotalDiscount: "1.000",
		TotalAddition: "500",
	})

	require.Equal(t, http.StatusCreated, recorder.Code)

	var response dto.OrderResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, response.Success)
	require.NotNil(t, response.Sale)

	// Totais recalculados no servidor: 2×3000 + 8000 + 500 − 1000
	assert.InDelta(t, 13500.0, response.Sale.Total, 0.001)
	require.Len(t, saleRepo.saved, 1)

	// O recibo pode ser consumido uma única vez
	req := httptest.NewRequest(http.MethodGet, "/pos/receipt/"+response.Sale.ID, nil)
	first := httptest.NewRecorder()
	router.ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/pos/receipt/"+response.Sale.ID, nil))
	assert.Equal(t, http.StatusNotFound, second.Code)
}

func TestCreateOrderClampsLineQuantities(t *testing.T) {
	saleRepo := &stubSaleRepository{}
	router := newPOSTestRouter(saleRepo, session.NewMemoryMailbox())

	recorder := postOrder(t, router, dto.OrderRequest{
		Items: []dto.OrderItemRequest{
			// Acima do estoque capturado: deve cair para 4
			{ID: "prod-1.abc", Size: "M", Quantity: 9, Name: "Remera lisa", UnitPrice: 100, MaxQuantity: 4},
		},
	})

	require.Equal(t, http.StatusCreated, recorder.Code)
	require.Len(t, saleRepo.saved, 1)
	require.Len(t, saleRepo.saved[0].Items, 1)
	assert.Equal(t, 4, saleRepo.saved[0].Items[0].Quantity)
	assert.InDelta(t, 400.0, saleRepo.saved[0].Total, 0.001)
}

func TestCreateOrderClampsEveryDuplicateLine(t *testing.T) {
	saleRepo := &stubSaleRepository{}
	router := newPOSTestRouter(saleRepo, session.NewMemoryMailbox())

	// linhas repetidas do mesmo ID+tamanho não se mesclam e cada uma
	// recebe o próprio teto de quantidade
	recorder := postOrder(t, router, dto.OrderRequest{
		Items: []dto.OrderItemRequest{
			{ID: "prod-1.abc", Size: "M", Quantity: 50, Name: "Remera lisa", UnitPrice: 100, MaxQuantity: 5},
			{ID: "prod-1.abc", Size: "M", Quantity: 50, Name: "Remera lisa", UnitPrice: 100, MaxQuantity: 5},
		},
	})

	require.Equal(t, http.StatusCreated, recorder.Code)
	require.Len(t, saleRepo.saved, 1)
	require.Len(t, saleRepo.saved[0].Items, 2)
	assert.Equal(t, 5, saleRepo.saved[0].Items[0].Quantity)
	assert.Equal(t, 5, saleRepo.saved[0].Items[1].Quantity)
	assert.InDelta(t, 1000.0, saleRepo.saved[0].Total, 0.001)
}

func TestCreateOrderRejectsNegativeUnitPrice(t *testing.T) {
	saleRepo := &stubSaleRepository{}
	router := newPOSTestRouter(saleRepo, session.NewMemoryMailbox())

	recorder := postOrder(t, router, dto.OrderRequest{
		Items: []dto.OrderItemRequest{
			{ID: "prod-1.abc", Size: "M", Quantity: 1, Name: "Remera lisa", UnitPrice: -5000, MaxQuantity: 5},
		},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Empty(t, saleRepo.saved)
}

func TestCreateOrderEmptyCartHasNoSideEffects(t *testing.T) {
	saleRepo := &stubSaleRepository{}
	router := newPOSTestRouter(saleRepo, session.NewMemoryMailbox())

	recorder := postOrder(t, router, dto.OrderRequest{})

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	assert.Empty(t, saleRepo.saved)
}

func TestCreateOrderInsufficientStockReturnsConflicts(t *testing.T) {
	saleRepo := &stubSaleRepository{
		err: &sale.InsufficientStockError{
			Conflicts: []sale.StockConflict{
				{LineID: "prod-1.abc", ProductRef: "prod-1", Size: "M", Requested: 3, Available: 1},
			},
		},
	}
	router := newPOSTestRouter(saleRepo, session.NewMemoryMailbox())

	recorder := postOrder(t, router, dto.OrderRequest{
		Items: []dto.OrderItemRequest{
			{ID: "prod-1.abc", Size: "M", Quantity: 3, Name: "Remera lisa", UnitPrice: 100, MaxQuantity: 5},
		},
	})

	require.Equal(t, http.StatusConflict, recorder.Code)

	var response dto.StockConflictResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.Conflicts, 1)
	assert.Equal(t, "prod-1", response.Conflicts[0].ProductRef)
	assert.Equal(t, 1, response.Conflicts[0].Available)
}

func TestListProductsReturnsFlattenedUnits(t *testing.T) {
	gin.SetMode(gin.TestMode)

	productRepo := &stubProductRepository{
		sellables: []product.Sellable{
			{ID: "prod-1", Name: "Remera lisa", SalePrice: 3000},
			{ID: "var-1", Name: "Remera lisa Roja", SalePrice: 3000, IsVariant: true},
		},
		totals: product.Totals{TotalProducts: 1, TotalVariants: 1, TotalCombined: 2, TotalPages: 1},
	}
	controller := NewPOSController(productRepo, &stubSaleRepository{}, session.NewMemoryMailbox(), logger.NewLogger())

	router := gin.New()
	router.GET("/pos-products/:page", controller.ListProducts)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/pos-products/1", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response dto.POSProductListResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, response.Success)
	require.Len(t, response.Products, 2)
	assert.True(t, response.Products[1].IsVariant)
	assert.Equal(t, 2, response.Totals.TotalCombined)
}
