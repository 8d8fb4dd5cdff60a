package effects

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/joshuarp/image-derivative-api/internal/domain"
)

type ResizeConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

func (c *ResizeConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Width, validation.Required, validation.Min(1)),
		validation.Field(&c.Height, validation.Required, validation.Min(1)),
	)
}

type resizeEffect struct{ cfg ResizeConfig }

func (resizeEffect) Kind() domain.EffectKind { return domain.EffectResize }

func (e resizeEffect) Apply(img image.Image) (image.Image, error) {
	return imaging.Resize(img, e.cfg.Width, e.cfg.Height, imaging.Lanczos), nil
}

func (e resizeEffect) TransformDimensions(domain.Dimensions) domain.Dimensions {
	return domain.Dimensions{Width: e.cfg.Width, Height: e.cfg.Height}
}

// ScaleConfig keeps the aspect ratio. One side may be zero and is then derived.
type ScaleConfig struct {
	Width   int  `mapstructure:"width"`
	Height  int  `mapstructure:"height"`
	Upscale bool `mapstructure:"upscale"`
}

func (c *ScaleConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Width, validation.Min(0), validation.When(c.Height == 0, validation.Required.Error("width or height is required"))),
		validation.Field(&c.Height, validation.Min(0)),
	)
}

type scaleEffect struct{ cfg ScaleConfig }

func (scaleEffect) Kind() domain.EffectKind { return domain.EffectScale }

func (e scaleEffect) Apply(img image.Image) (image.Image, error) {
	b := img.Bounds()
	d, changed := scaleDimensions(domain.Dimensions{Width: b.Dx(), Height: b.Dy()}, e.cfg.Width, e.cfg.Height, e.cfg.Upscale)
	if !changed {
		return img, nil
	}
	return imaging.Resize(img, d.Width, d.Height, imaging.Lanczos), nil
}

func (e scaleEffect) TransformDimensions(d domain.Dimensions) domain.Dimensions {
	scaled, _ := scaleDimensions(d, e.cfg.Width, e.cfg.Height, e.cfg.Upscale)
	return scaled
}

// scaleDimensions fits d into width x height keeping the aspect ratio. The side
// that would overflow its target is derived from the other one. Without upscale
// nothing grows: d is returned unchanged with false.
func scaleDimensions(d domain.Dimensions, width, height int, upscale bool) (domain.Dimensions, bool) {
	if !d.Known() {
		return d, false
	}

	aspect := float64(d.Height) / float64(d.Width)
	if (width > 0 && height == 0) || (width > 0 && height > 0 && aspect < float64(height)/float64(width)) {
		height = int(math.Round(float64(width) * aspect))
	} else {
		width = int(math.Round(float64(height) / aspect))
	}

	if !upscale && (width >= d.Width || height >= d.Height) {
		return d, false
	}
	return domain.Dimensions{Width: max(width, 1), Height: max(height, 1)}, true
}

type ScaleAndCropConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Anchor string `mapstructure:"anchor"`
}

func (c *ScaleAndCropConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Width, validation.Required, validation.Min(1)),
		validation.Field(&c.Height, validation.Required, validation.Min(1)),
		validation.Field(&c.Anchor, validation.Match(keywordAnchor)),
	)
}

type scaleAndCropEffect struct{ cfg ScaleAndCropConfig }

func (scaleAndCropEffect) Kind() domain.EffectKind { return domain.EffectScaleAndCrop }

func (e scaleAndCropEffect) Apply(img image.Image) (image.Image, error) {
	return imaging.Fill(img, e.cfg.Width, e.cfg.Height, fillAnchor(e.cfg.Anchor), imaging.Lanczos), nil
}

func (e scaleAndCropEffect) TransformDimensions(domain.Dimensions) domain.Dimensions {
	return domain.Dimensions{Width: e.cfg.Width, Height: e.cfg.Height}
}

func fillAnchor(anchor string) imaging.Anchor {
	switch anchor {
	case "left-top":
		return imaging.TopLeft
	case "center-top":
		return imaging.Top
	case "right-top":
		return imaging.TopRight
	case "left-center":
		return imaging.Left
	case "right-center":
		return imaging.Right
	case "left-bottom":
		return imaging.BottomLeft
	case "center-bottom":
		return imaging.Bottom
	case "right-bottom":
		return imaging.BottomRight
	default:
		return imaging.Center
	}
}
