package effects

import (
	"image"
	"strings"

	"github.com/disintegration/imaging"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/joshuarp/image-derivative-api/internal/domain"
)

// ConvertConfig changes the derivative encoding. The pixels are untouched; the
// new extension is carried by the derivative URI (domain.ImageStyle.AddExtension).
type ConvertConfig struct {
	Extension string `mapstructure:"extension"`
}

func (c *ConvertConfig) Validate() error {
	c.Extension = strings.ToLower(strings.TrimPrefix(c.Extension, "."))
	return validation.ValidateStruct(c,
		validation.Field(&c.Extension, validation.Required, validation.In(toAny(EncodableExtensions())...)),
	)
}

type convertEffect struct{ cfg ConvertConfig }

func (convertEffect) Kind() domain.EffectKind { return domain.EffectConvert }

func (convertEffect) Apply(img image.Image) (image.Image, error) { return img, nil }

func (convertEffect) TransformDimensions(d domain.Dimensions) domain.Dimensions { return d }

type desaturateEffect struct{}

func (desaturateEffect) Kind() domain.EffectKind { return domain.EffectDesaturate }

func (desaturateEffect) Apply(img image.Image) (image.Image, error) {
	return imaging.Grayscale(img), nil
}

func (desaturateEffect) TransformDimensions(d domain.Dimensions) domain.Dimensions { return d }

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
