package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aguamarina/pos-tienda/internal/domain/size"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSizeRepository struct {
	sizes []size.Size
}

func (s *stubSizeRepository) Create(_ context.Context, newSize *size.Size) error {
	s.sizes = append(s.sizes, *newSize)
	return nil
}

func (s *stubSizeRepository) List(context.Context) ([]size.Size, error) {
	return s.sizes, nil
}

func TestSizeCreateReturnsUpdatedList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &stubSizeRepository{}
	controller := NewSizeController(repo)

	router := gin.New()
	router.POST("/size", controller.Create)
	router.GET("/sizes", controller.List)

	for _, name := range []string{"S", "M", "L"} {
		payload, err := json.Marshal(map[string]string{"name": name})
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/size", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusCreated, recorder.Code)
	}

	// A criação devolve a lista completa sob a chave "size"
	var created struct {
		Success bool        `json:"success"`
		Size    []size.Size `json:"size"`
	}
	payload, _ := json.Marshal(map[string]string{"name": "XL"})
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/size", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.True(t, created.Success)
	require.Len(t, created.Size, 4)
	assert.Equal(t, "XL", created.Size[3].Name)

	// A listagem usa a chave "sizes" e preserva a ordem de cadastro
	listRecorder := httptest.NewRecorder()
	router.ServeHTTP(listRecorder, httptest.NewRequest(http.MethodGet, "/sizes", nil))
	require.Equal(t, http.StatusOK, listRecorder.Code)

	var listed struct {
		Success bool        `json:"success"`
		Sizes   []size.Size `json:"sizes"`
	}
	require.NoError(t, json.Unmarshal(listRecorder.Body.Bytes(), &listed))
	assert.Equal(t, []string{"S", "M", "L", "XL"}, []string{
		listed.Sizes[0].Name, listed.Sizes[1].Name, listed.Sizes[2].Name, listed.Sizes[3].Name,
	})
}

func TestSizeCreateRejectsEmptyName(t *testing.T) {
	gin.SetMode(gin.TestMode)

	controller := NewSizeController(&stubSizeRepository{})
	router := gin.New()
	router.POST("/size", controller.Create)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/size", bytes.NewReader([]byte(`{"name":""}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
