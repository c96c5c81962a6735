package storage

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // decodificação de PNGs enviados pelo formulário
	"strings"

	"golang.org/x/image/draw"
)

var ErrInvalidDataURL = errors.New("data-URL de imagem inválida")

// maxWidth é a largura máxima das imagens hospedadas; imagens maiores
// são reduzidas proporcionalmente antes do upload.
const maxWidth = 1200

// jpegQuality é a qualidade de recompressão JPEG
const jpegQuality = 80

// DecodeDataURL extrai os bytes de uma imagem enviada como data-URL
// base64 (formato "data:image/...;base64,....").
func DecodeDataURL(s string) ([]byte, error) {
	const marker = ";base64,"

	i := strings.Index(s, marker)
	if i < 0 || !strings.HasPrefix(s, "data:image/") {
		return nil, ErrInvalidDataURL
	}

	data, err := base64.StdEncoding.DecodeString(s[i+len(marker):])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	return data, nil
}

// Optimize recomprime a imagem para JPEG qualidade 80, reduzindo a
// largura para no máximo 1200px quando necessário. Substitui a
// otimização que o cliente fazia via sharp antes do upload.
func Optimize(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar imagem: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() > maxWidth {
		height := bounds.Dy() * maxWidth / bounds.Dx()
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("erro ao recomprimir imagem: %w", err)
	}
	return buf.Bytes(), nil
}
