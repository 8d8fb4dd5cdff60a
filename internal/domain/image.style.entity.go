package domain

import (
	"path"
	"strings"
)

type EffectKind string

const (
	EffectRotate       EffectKind = "rotate"
	EffectCrop         EffectKind = "crop"
	EffectResize       EffectKind = "resize"
	EffectScale        EffectKind = "scale"
	EffectScaleAndCrop EffectKind = "scale_and_crop"
	EffectConvert      EffectKind = "convert"
	EffectDesaturate   EffectKind = "desaturate"
)

// Effect is one configured step of a style. Data holds the kind-specific settings
// exactly as stored; effects.Compile turns it into an executable operation.
type Effect struct {
	UUID   string         `json:"uuid" mapstructure:"uuid"`
	Kind   EffectKind     `json:"kind" mapstructure:"kind"`
	Weight int            `json:"weight" mapstructure:"weight"`
	Data   map[string]any `json:"data,omitempty" mapstructure:"data"`
}

// ImageStyle is a named, ordered list of effects. Effects are applied in slice order.
type ImageStyle struct {
	ID      string
	Label   string
	Effects []Effect
}

// Dimensions of an image in pixels. Zero means unknown.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (d Dimensions) Known() bool {
	return d.Width > 0 && d.Height > 0
}

// FallbackExtension is the derivative format of sources that can be read but
// not written, such as webp or files without an extension.
const FallbackExtension = "png"

var derivativeExtensions = []string{"jpg", "jpeg", "png", "gif", "bmp", "tif", "tiff"}

// DerivativeExtensions lists the formats a derivative can be written in.
func DerivativeExtensions() []string {
	return append([]string(nil), derivativeExtensions...)
}

func isDerivativeExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range derivativeExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// DerivativeExtension returns the file extension a derivative of a source with
// extension ext ends up with. Convert effects change it and the last one wins;
// an unwritable result becomes FallbackExtension.
func (s ImageStyle) DerivativeExtension(ext string) string {
	for _, e := range s.Effects {
		if e.Kind != EffectConvert {
			continue
		}
		if converted, ok := e.Data["extension"].(string); ok && converted != "" {
			ext = strings.ToLower(converted)
		}
	}
	if !isDerivativeExtension(ext) {
		return FallbackExtension
	}
	return ext
}

// AddExtension appends the derivative extension to p when the style changes
// the format, e.g. "a/image.png" becomes "a/image.png.jpg" and "a/image.webp"
// becomes "a/image.webp.png".
func (s ImageStyle) AddExtension(p string) string {
	original := strings.TrimPrefix(path.Ext(p), ".")
	if derivative := s.DerivativeExtension(original); derivative != original {
		return p + "." + derivative
	}
	return p
}
