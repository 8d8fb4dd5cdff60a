// Package effects turns configured style effects into image operations.
// The set of kinds is closed; anything else fails with ErrUnknownEffect.
package effects

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-viper/mapstructure/v2"

	"github.com/joshuarp/image-derivative-api/internal/domain"
)

var (
	ErrUnknownEffect = errors.New("effects: unknown effect")
	ErrInvalidConfig = errors.New("effects: invalid effect configuration")
)

// Effect is one executable step of a style.
type Effect interface {
	Kind() domain.EffectKind
	Apply(img image.Image) (image.Image, error)

	// TransformDimensions predicts the output size without touching pixels.
	// Unknown input or unpredictable output yields zero Dimensions.
	TransformDimensions(d domain.Dimensions) domain.Dimensions
}

type validatable interface {
	Validate() error
}

// Build compiles a single configured effect.
func Build(e domain.Effect) (Effect, error) {
	switch e.Kind {
	case domain.EffectRotate:
		var c RotateConfig
		if err := decode(e, &c); err != nil {
			return nil, err
		}
		return newRotate(c)
	case domain.EffectCrop:
		var c CropConfig
		if err := decode(e, &c); err != nil {
			return nil, err
		}
		return cropEffect{c}, nil
	case domain.EffectResize:
		var c ResizeConfig
		if err := decode(e, &c); err != nil {
			return nil, err
		}
		return resizeEffect{c}, nil
	case domain.EffectScale:
		var c ScaleConfig
		if err := decode(e, &c); err != nil {
			return nil, err
		}
		return scaleEffect{c}, nil
	case domain.EffectScaleAndCrop:
		var c ScaleAndCropConfig
		if err := decode(e, &c); err != nil {
			return nil, err
		}
		return scaleAndCropEffect{c}, nil
	case domain.EffectConvert:
		var c ConvertConfig
		if err := decode(e, &c); err != nil {
			return nil, err
		}
		return convertEffect{c}, nil
	case domain.EffectDesaturate:
		return desaturateEffect{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, e.Kind)
	}
}

func decode(e domain.Effect, out validatable) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("effects: build decoder: %w", err)
	}
	if err := dec.Decode(e.Data); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, e.Kind, err)
	}
	if err := out.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, e.Kind, err)
	}
	return nil
}

// Pipeline is a compiled style: its effects in configured order.
type Pipeline struct {
	effects []Effect
}

func Compile(style domain.ImageStyle) (*Pipeline, error) {
	p := &Pipeline{effects: make([]Effect, 0, len(style.Effects))}
	for i, e := range style.Effects {
		effect, err := Build(e)
		if err != nil {
			return nil, fmt.Errorf("effects: style %q effect #%d: %w", style.ID, i, err)
		}
		p.effects = append(p.effects, effect)
	}
	return p, nil
}

func (p *Pipeline) Len() int { return len(p.effects) }

func (p *Pipeline) Apply(img image.Image) (image.Image, error) {
	for _, e := range p.effects {
		out, err := e.Apply(img)
		if err != nil {
			return nil, fmt.Errorf("effects: %s: %w", e.Kind(), err)
		}
		img = out
	}
	return img, nil
}

func (p *Pipeline) TransformDimensions(d domain.Dimensions) domain.Dimensions {
	for _, e := range p.effects {
		if !d.Known() {
			return domain.Dimensions{}
		}
		d = e.TransformDimensions(d)
	}
	return d
}
