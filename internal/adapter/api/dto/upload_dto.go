package dto

// UploadRequest representa uma imagem enviada como data-URL base64
type UploadRequest struct {
	Image string `json:"image" binding:"required"`
}

// UploadResponse devolve a URL pública da imagem hospedada
type UploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}
