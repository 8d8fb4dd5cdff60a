package effects

import (
	"fmt"
	"image"
	"regexp"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/joshuarp/image-derivative-api/internal/domain"
)

// anchors are "<x>-<y>" with x in left|center|right and y in top|center|bottom.
// Crop also accepts pixel offsets such as "10-25".
var (
	keywordAnchor = regexp.MustCompile(`^(left|center|right)-(top|center|bottom)$`)
	offsetAnchor  = regexp.MustCompile(`^(left|center|right|\d+)-(top|center|bottom|\d+)$`)
)

type CropConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Anchor string `mapstructure:"anchor"`
}

func (c *CropConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Width, validation.Required, validation.Min(1)),
		validation.Field(&c.Height, validation.Required, validation.Min(1)),
		validation.Field(&c.Anchor, validation.Match(offsetAnchor)),
	)
}

type cropEffect struct{ cfg CropConfig }

func (cropEffect) Kind() domain.EffectKind { return domain.EffectCrop }

func (e cropEffect) Apply(img image.Image) (image.Image, error) {
	b := img.Bounds()
	x, y, err := anchorOffsets(e.cfg.Anchor, b.Dx(), b.Dy(), e.cfg.Width, e.cfg.Height)
	if err != nil {
		return nil, err
	}

	area := image.Rect(x, y, x+e.cfg.Width, y+e.cfg.Height).Add(b.Min)
	if area.Intersect(b).Empty() {
		return nil, fmt.Errorf("crop area %v outside image %v", area, b)
	}
	return imaging.Crop(img, area), nil
}

func (e cropEffect) TransformDimensions(domain.Dimensions) domain.Dimensions {
	return domain.Dimensions{Width: e.cfg.Width, Height: e.cfg.Height}
}

func anchorOffsets(anchor string, width, height, targetWidth, targetHeight int) (int, int, error) {
	if anchor == "" {
		anchor = "left-top"
	}
	xKey, yKey, ok := strings.Cut(anchor, "-")
	if !ok {
		return 0, 0, fmt.Errorf("bad anchor %q", anchor)
	}
	x, err := anchorOffset(xKey, width, targetWidth)
	if err != nil {
		return 0, 0, err
	}
	y, err := anchorOffset(yKey, height, targetHeight)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func anchorOffset(keyword string, current, target int) (int, error) {
	switch keyword {
	case "left", "top":
		return 0, nil
	case "right", "bottom":
		return current - target, nil
	case "center":
		return (current - target) / 2, nil
	default:
		v, err := strconv.Atoi(keyword)
		if err != nil {
			return 0, fmt.Errorf("bad anchor offset %q", keyword)
		}
		return v, nil
	}
}
