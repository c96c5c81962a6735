package dto

import (
	"github.com/aguamarina/pos-tienda/internal/domain/category"
	"github.com/aguamarina/pos-tienda/internal/domain/size"
)

// CategoryRequest representa os dados para criação de uma categoria
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryListResponse representa a lista de categorias do catálogo
type CategoryListResponse struct {
	Success    bool                `json:"success"`
	Categories []category.Category `json:"categories"`
}

// SizeRequest representa os dados para criação de um tamanho
type SizeRequest struct {
	Name string `json:"name" binding:"required"`
}

// SizeListResponse representa a lista de tamanhos do catálogo
type SizeListResponse struct {
	Success bool        `json:"success"`
	Sizes   []size.Size `json:"sizes"`
}

// SizeCreatedResponse devolve a lista atualizada após a criação de um
// tamanho. O campo é "size" no singular: é a chave que a tela de
// cadastro lê.
type SizeCreatedResponse struct {
	Success bool        `json:"success"`
	Size    []size.Size `json:"size"`
}

// ToCategoryListResponse converte categorias do domínio para resposta
func ToCategoryListResponse(categories []category.Category) CategoryListResponse {
	if categories == nil {
		categories = []category.Category{}
	}
	return CategoryListResponse{
		Success:    true,
		Categories: categories,
	}
}

// ToSizeListResponse converte tamanhos do domínio para resposta
func ToSizeListResponse(sizes []size.Size) SizeListResponse {
	if sizes == nil {
		sizes = []size.Size{}
	}
	return SizeListResponse{
		Success: true,
		Sizes:   sizes,
	}
}
