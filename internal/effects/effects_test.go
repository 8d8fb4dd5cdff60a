package effects

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/image-derivative-api/internal/domain"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	return imaging.New(w, h, c)
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	b := img.Bounds()
	return color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
}

type BuildSuite struct{ suite.Suite }

func (s *BuildSuite) TestBuild_TableDriven() {
	tests := []struct {
		name      string
		effect    domain.Effect
		assertion func(Effect, error)
	}{
		{
			name:   "unknown kind",
			effect: domain.Effect{Kind: "watermark"},
			assertion: func(e Effect, err error) {
				require.ErrorIs(s.T(), err, ErrUnknownEffect)
				assert.Nil(s.T(), e)
			},
		},
		{
			name:   "crop requires width",
			effect: domain.Effect{Kind: domain.EffectCrop, Data: map[string]any{"height": 10}},
			assertion: func(_ Effect, err error) {
				require.ErrorIs(s.T(), err, ErrInvalidConfig)
			},
		},
		{
			name:   "crop rejects bad anchor",
			effect: domain.Effect{Kind: domain.EffectCrop, Data: map[string]any{"width": 10, "height": 10, "anchor": "middle"}},
			assertion: func(_ Effect, err error) {
				require.ErrorIs(s.T(), err, ErrInvalidConfig)
			},
		},
		{
			name:   "convert rejects unwritable format",
			effect: domain.Effect{Kind: domain.EffectConvert, Data: map[string]any{"extension": "webp"}},
			assertion: func(_ Effect, err error) {
				require.ErrorIs(s.T(), err, ErrInvalidConfig)
			},
		},
		{
			name:   "rotate rejects NaN degrees",
			effect: domain.Effect{Kind: domain.EffectRotate, Data: map[string]any{"degrees": math.NaN()}},
			assertion: func(_ Effect, err error) {
				require.ErrorIs(s.T(), err, ErrInvalidConfig)
			},
		},
		{
			name:   "rotate rejects infinite degrees",
			effect: domain.Effect{Kind: domain.EffectRotate, Data: map[string]any{"degrees": math.Inf(-1)}},
			assertion: func(_ Effect, err error) {
				require.ErrorIs(s.T(), err, ErrInvalidConfig)
			},
		},
		{
			name:   "rotate rejects named colors",
			effect: domain.Effect{Kind: domain.EffectRotate, Data: map[string]any{"degrees": 10, "bgcolor": "red"}},
			assertion: func(_ Effect, err error) {
				require.ErrorIs(s.T(), err, ErrInvalidConfig)
			},
		},
		{
			name:   "scale needs a side",
			effect: domain.Effect{Kind: domain.EffectScale, Data: map[string]any{"upscale": true}},
			assertion: func(_ Effect, err error) {
				require.ErrorIs(s.T(), err, ErrInvalidConfig)
			},
		},
		{
			name:   "weakly typed values decode",
			effect: domain.Effect{Kind: domain.EffectResize, Data: map[string]any{"width": "120", "height": 80.0}},
			assertion: func(e Effect, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), domain.EffectResize, e.Kind())
				assert.Equal(s.T(), domain.Dimensions{Width: 120, Height: 80}, e.TransformDimensions(domain.Dimensions{Width: 1, Height: 1}))
			},
		},
		{
			name:   "convert normalizes extension",
			effect: domain.Effect{Kind: domain.EffectConvert, Data: map[string]any{"extension": ".JPG"}},
			assertion: func(e Effect, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), "jpg", e.(convertEffect).cfg.Extension)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			e, err := Build(tc.effect)
			tc.assertion(e, err)
		})
	}
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

func TestScaleDimensions(t *testing.T) {
	src := domain.Dimensions{Width: 640, Height: 480}

	tests := []struct {
		name          string
		width, height int
		upscale       bool
		want          domain.Dimensions
		changed       bool
	}{
		{name: "width only", width: 320, want: domain.Dimensions{Width: 320, Height: 240}, changed: true},
		{name: "height only", height: 240, want: domain.Dimensions{Width: 320, Height: 240}, changed: true},
		{name: "box limited by width", width: 100, height: 100, want: domain.Dimensions{Width: 100, Height: 75}, changed: true},
		{name: "box limited by height", width: 400, height: 150, want: domain.Dimensions{Width: 200, Height: 150}, changed: true},
		{name: "no upscale", width: 1280, want: src},
		{name: "upscale", width: 1280, upscale: true, want: domain.Dimensions{Width: 1280, Height: 960}, changed: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, changed := scaleDimensions(src, tc.width, tc.height, tc.upscale)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.changed, changed)
		})
	}
}

func TestCropUsesAnchor(t *testing.T) {
	img := solid(100, 60, color.White)
	img.Set(25, 20, color.NRGBA{R: 255, A: 255})
	img.Set(99, 59, color.NRGBA{B: 255, A: 255})

	e, err := Build(domain.Effect{Kind: domain.EffectCrop, Data: map[string]any{"width": 50, "height": 20, "anchor": "center-center"}})
	require.NoError(t, err)
	out, err := e.Apply(img)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 50, 20), out.Bounds())
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, nrgbaAt(out, 0, 0))

	e, err = Build(domain.Effect{Kind: domain.EffectCrop, Data: map[string]any{"width": 10, "height": 10, "anchor": "right-bottom"}})
	require.NoError(t, err)
	out, err = e.Apply(img)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, nrgbaAt(out, 9, 9))
}

func TestCropOutsideImageFails(t *testing.T) {
	e, err := Build(domain.Effect{Kind: domain.EffectCrop, Data: map[string]any{"width": 5, "height": 5, "anchor": "500-500"}})
	require.NoError(t, err)

	_, err = e.Apply(solid(10, 10, color.White))
	assert.Error(t, err)
}

func TestRotateCanvasMatchesRectangle(t *testing.T) {
	tests := []struct {
		degrees float64
		want    image.Rectangle
	}{
		{degrees: 90, want: image.Rect(0, 0, 50, 100)},
		{degrees: -180, want: image.Rect(0, 0, 100, 50)},
		{degrees: 45, want: image.Rect(0, 0, 108, 108)},
	}

	for _, tc := range tests {
		e, err := Build(domain.Effect{Kind: domain.EffectRotate, Data: map[string]any{"degrees": tc.degrees, "bgcolor": "#FFFFFF"}})
		require.NoError(t, err)

		out, err := e.Apply(solid(100, 50, color.Black))
		require.NoError(t, err)
		assert.Equal(t, tc.want, out.Bounds(), "degrees %v", tc.degrees)

		d := e.TransformDimensions(domain.Dimensions{Width: 100, Height: 50})
		assert.Equal(t, tc.want.Dx(), d.Width)
		assert.Equal(t, tc.want.Dy(), d.Height)
	}
}

func TestRotateIsClockwise(t *testing.T) {
	img := solid(4, 2, color.White)
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})

	e, err := Build(domain.Effect{Kind: domain.EffectRotate, Data: map[string]any{"degrees": 90}})
	require.NoError(t, err)
	out, err := e.Apply(img)
	require.NoError(t, err)

	// top-left ends up top-right after a clockwise quarter turn
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, nrgbaAt(out, 1, 0))
}

func TestRandomRotateHasUnknownDimensions(t *testing.T) {
	e, err := Build(domain.Effect{Kind: domain.EffectRotate, Data: map[string]any{"degrees": 30, "random": true}})
	require.NoError(t, err)
	assert.Equal(t, domain.Dimensions{}, e.TransformDimensions(domain.Dimensions{Width: 10, Height: 10}))
}

func TestDesaturate(t *testing.T) {
	e, err := Build(domain.Effect{Kind: domain.EffectDesaturate})
	require.NoError(t, err)

	out, err := e.Apply(solid(2, 2, color.NRGBA{R: 200, G: 10, B: 10, A: 255}))
	require.NoError(t, err)
	px := nrgbaAt(out, 0, 0)
	assert.Equal(t, px.R, px.G)
	assert.Equal(t, px.G, px.B)
}

func TestPipelineKeepsOrder(t *testing.T) {
	style := domain.ImageStyle{
		ID: "banner",
		Effects: []domain.Effect{
			{Kind: domain.EffectScale, Data: map[string]any{"width": 320}},
			{Kind: domain.EffectCrop, Data: map[string]any{"width": 300, "height": 100, "anchor": "center-center"}},
			{Kind: domain.EffectRotate, Data: map[string]any{"degrees": 90}},
		},
	}

	p, err := Compile(style)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Len())

	out, err := p.Apply(solid(640, 480, color.White))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 300), out.Bounds())
	assert.Equal(t, domain.Dimensions{Width: 100, Height: 300}, p.TransformDimensions(domain.Dimensions{Width: 640, Height: 480}))
	assert.Equal(t, domain.Dimensions{}, p.TransformDimensions(domain.Dimensions{}))
}

func TestCompileReportsBrokenEffect(t *testing.T) {
	_, err := Compile(domain.ImageStyle{ID: "broken", Effects: []domain.Effect{{Kind: domain.EffectDesaturate}, {Kind: "sepia"}}})
	require.ErrorIs(t, err, ErrUnknownEffect)
	assert.ErrorContains(t, err, `style "broken" effect #1`)
}

func TestEncodeFollowsDerivativeExtension(t *testing.T) {
	img := solid(8, 8, color.White)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img, "public://styles/x/public/a.png.jpg", 80))
	assert.Equal(t, []byte{0xFF, 0xD8}, buf.Bytes()[:2])

	decoded, err := Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), decoded.Bounds())

	err = Encode(&bytes.Buffer{}, img, "public://a.webp", 0)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestEveryDerivativeExtensionIsEncodable(t *testing.T) {
	img := solid(4, 4, color.White)
	style := domain.ImageStyle{ID: "thumb"}

	for _, source := range []string{"a.webp", "a", "a.JPG", "a.png", "a.tiff"} {
		t.Run(source, func(t *testing.T) {
			derivative := style.AddExtension(source)
			require.NoError(t, Encode(&bytes.Buffer{}, img, derivative, 0), derivative)
		})
	}
}
