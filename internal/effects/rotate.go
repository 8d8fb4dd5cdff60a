package effects

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand/v2"
	"regexp"
	"strconv"

	"github.com/disintegration/imaging"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/joshuarp/image-derivative-api/internal/domain"
	"github.com/joshuarp/image-derivative-api/internal/geometry"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// RotateConfig rotates clockwise by Degrees. Random picks a whole angle in
// [-Degrees, Degrees] per generation.
type RotateConfig struct {
	Degrees float64 `mapstructure:"degrees"`
	BgColor string  `mapstructure:"bgcolor"`
	Random  bool    `mapstructure:"random"`
}

func (c *RotateConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Degrees, validation.By(finite), validation.Min(-360.0), validation.Max(360.0)),
		validation.Field(&c.BgColor, validation.Match(hexColor)),
	)
}

func finite(value interface{}) error {
	if f, ok := value.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return validation.NewError("validation_finite", "must be a finite number")
	}
	return nil
}

type rotateEffect struct {
	cfg        RotateConfig
	background color.NRGBA
	angle      func() float64
}

func newRotate(c RotateConfig) (rotateEffect, error) {
	bg, err := parseHexColor(c.BgColor)
	if err != nil {
		return rotateEffect{}, fmt.Errorf("%w: rotate: %v", ErrInvalidConfig, err)
	}

	e := rotateEffect{cfg: c, background: bg}
	if c.Random {
		limit := int(math.Abs(c.Degrees))
		e.angle = func() float64 { return float64(rand.IntN(2*limit+1) - limit) }
	} else {
		e.angle = func() float64 { return c.Degrees }
	}
	return e, nil
}

func (rotateEffect) Kind() domain.EffectKind { return domain.EffectRotate }

// Apply sizes the canvas with geometry.Rectangle so derivative dimensions match
// TransformDimensions, then centres the rotated pixels on it.
func (e rotateEffect) Apply(img image.Image) (image.Image, error) {
	degrees := e.angle()
	b := img.Bounds()

	rect, err := geometry.NewRectangle(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	box := rect.Rotate(degrees)

	// imaging rotates counter-clockwise
	rotated := imaging.Rotate(img, math.Mod(360-degrees, 360), e.background)
	canvas := imaging.New(box.BoundingWidth(), box.BoundingHeight(), e.background)
	return imaging.PasteCenter(canvas, rotated), nil
}

func (e rotateEffect) TransformDimensions(d domain.Dimensions) domain.Dimensions {
	if e.cfg.Random {
		return domain.Dimensions{}
	}
	rect, err := geometry.NewRectangle(d.Width, d.Height)
	if err != nil {
		return domain.Dimensions{}
	}
	box := rect.Rotate(e.cfg.Degrees)
	return domain.Dimensions{Width: box.BoundingWidth(), Height: box.BoundingHeight()}
}

// parseHexColor accepts #RRGGBB or #RRGGBBAA; empty is fully transparent.
func parseHexColor(s string) (color.NRGBA, error) {
	if s == "" {
		return color.NRGBA{}, nil
	}
	if !hexColor.MatchString(s) {
		return color.NRGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, err
	}
	if len(s) == 7 {
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
