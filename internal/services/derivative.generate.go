package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/joshuarp/image-derivative-api/internal/domain"
	"github.com/joshuarp/image-derivative-api/internal/effects"
)

type ImageStorage interface {
	Read(ctx context.Context, uri string) ([]byte, error)
	Write(ctx context.Context, uri string, data []byte) error
}

// DerivativeGenerateService reads a source, runs the style's effects on it
// and writes the encoded result. The output format follows the derivative
// URI's extension.
type DerivativeGenerateService struct {
	storage     ImageStorage
	jpegQuality int
}

func NewDerivativeGenerateService(storage ImageStorage, jpegQuality int) *DerivativeGenerateService {
	return &DerivativeGenerateService{
		storage:     storage,
		jpegQuality: jpegQuality,
	}
}

func (g *DerivativeGenerateService) Generate(ctx context.Context, style domain.ImageStyle, sourceURI, derivativeURI string) error {
	pipeline, err := effects.Compile(style)
	if err != nil {
		return fmt.Errorf("service: compile style %s: %w", style.ID, err)
	}

	data, err := g.storage.Read(ctx, sourceURI)
	if err != nil {
		return fmt.Errorf("service: read source: %w", err)
	}

	img, err := effects.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("service: decode source: %w", err)
	}

	out, err := pipeline.Apply(img)
	if err != nil {
		return fmt.Errorf("service: apply style %s: %w", style.ID, err)
	}

	var buf bytes.Buffer
	if err := effects.Encode(&buf, out, derivativeURI, g.jpegQuality); err != nil {
		return fmt.Errorf("service: encode derivative: %w", err)
	}

	if err := g.storage.Write(ctx, derivativeURI, buf.Bytes()); err != nil {
		return fmt.Errorf("service: write derivative: %w", err)
	}
	return nil
}
