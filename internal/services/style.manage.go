package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/joshuarp/image-derivative-api/internal/domain"
	"github.com/joshuarp/image-derivative-api/internal/domain/vo"
	"github.com/joshuarp/image-derivative-api/internal/effects"
	"github.com/joshuarp/image-derivative-api/internal/shared/itok"
	"github.com/joshuarp/image-derivative-api/internal/shared/metrics"
)

type StyleCatalog interface {
	ListStyles(ctx context.Context) ([]domain.ImageStyle, error)
	GetStyle(ctx context.Context, id string) (domain.ImageStyle, error)
	Invalidate(id string)
}

type TokenSigner interface {
	Token(ctx context.Context, styleID, uri string) (string, error)
}

type DerivativeFlusher interface {
	ValidScheme(name string) bool
	Schemes() []string
	Exists(ctx context.Context, uri string) (bool, error)
	Delete(ctx context.Context, uri string) error
	DeletePrefix(ctx context.Context, uri string) (int, error)
}

type StyleManageService struct {
	styles  StyleCatalog
	storage DerivativeFlusher
	signer  TokenSigner
	baseURL string
	logger  *slog.Logger
}

func NewStyleManageService(
	styles StyleCatalog,
	storage DerivativeFlusher,
	signer TokenSigner,
	baseURL string,
	logger *slog.Logger,
) *StyleManageService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StyleManageService{
		styles:  styles,
		storage: storage,
		signer:  signer,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

func (s *StyleManageService) List(ctx context.Context) ([]vo.StyleSummary, error) {
	styles, err := s.styles.ListStyles(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: list styles: %w", err)
	}

	out := make([]vo.StyleSummary, 0, len(styles))
	for _, style := range styles {
		out = append(out, summarize(style))
	}
	return out, nil
}

func (s *StyleManageService) Get(ctx context.Context, id string) (vo.StyleSummary, error) {
	style, err := s.styles.GetStyle(ctx, id)
	if err != nil {
		return vo.StyleSummary{}, err
	}
	return summarize(style), nil
}

// BuildURL returns the signed delivery URL of the derivative of sourceURI.
// When both source dimensions are given the derivative dimensions are
// predicted without touching the image.
func (s *StyleManageService) BuildURL(ctx context.Context, styleID, sourceURI string, source domain.Dimensions) (vo.StyleURL, error) {
	style, err := s.styles.GetStyle(ctx, styleID)
	if err != nil {
		return vo.StyleURL{}, err
	}

	scheme, target, ok := domain.SplitURI(sourceURI)
	if !ok || target == "" || !s.storage.ValidScheme(scheme) {
		return vo.StyleURL{}, vo.ErrInvalidSourceURI
	}
	sourceURI = domain.JoinURI(scheme, target)

	derivativeURI, err := domain.DerivativeURI(style, sourceURI)
	if err != nil {
		return vo.StyleURL{}, vo.ErrInvalidSourceURI
	}

	token, err := s.signer.Token(ctx, style.ID, style.AddExtension(sourceURI))
	if err != nil {
		return vo.StyleURL{}, fmt.Errorf("service: sign derivative url: %w", err)
	}

	derivativeScheme, derivativeTarget, _ := domain.SplitURI(derivativeURI)
	link := s.baseURL + "/" + derivativeScheme + "/" + escapePath(derivativeTarget) +
		"?" + url.Values{itok.QueryParam: {token}}.Encode()

	out := vo.StyleURL{URL: link, DerivativeURI: derivativeURI}
	if source.Known() {
		pipeline, err := effects.Compile(style)
		if err != nil {
			return vo.StyleURL{}, fmt.Errorf("service: compile style %s: %w", style.ID, err)
		}
		dims := pipeline.TransformDimensions(source)
		out.Width, out.Height = dims.Width, dims.Height
	}
	return out, nil
}

// FlushStyle removes every derivative of the style in every scheme.
func (s *StyleManageService) FlushStyle(ctx context.Context, styleID string) (vo.FlushResult, error) {
	style, err := s.styles.GetStyle(ctx, styleID)
	if err != nil {
		return vo.FlushResult{}, err
	}

	var (
		removed int
		errs    []error
	)
	for _, scheme := range s.storage.Schemes() {
		n, err := s.storage.DeletePrefix(ctx, domain.JoinURI(scheme, domain.StylesPath(style.ID, scheme)))
		removed += n
		if err != nil {
			errs = append(errs, err)
		}
	}
	s.styles.Invalidate(style.ID)
	metrics.RecordFlushed(removed)

	if err := errors.Join(errs...); err != nil {
		return vo.FlushResult{}, fmt.Errorf("service: flush style %s: %w", style.ID, err)
	}
	s.logger.Info("image style flushed", "style", style.ID, "removed", removed)
	return vo.FlushResult{StyleID: style.ID, Removed: removed}, nil
}

// FlushSource removes the derivatives of one source across all styles.
func (s *StyleManageService) FlushSource(ctx context.Context, sourceURI string) (vo.FlushResult, error) {
	scheme, target, ok := domain.SplitURI(sourceURI)
	if !ok || target == "" || !s.storage.ValidScheme(scheme) || domain.IsDerivativeTarget(target) {
		return vo.FlushResult{}, vo.ErrInvalidSourceURI
	}
	sourceURI = domain.JoinURI(scheme, target)

	styles, err := s.styles.ListStyles(ctx)
	if err != nil {
		return vo.FlushResult{}, fmt.Errorf("service: list styles: %w", err)
	}

	removed := 0
	for _, style := range styles {
		derivativeURI, err := domain.DerivativeURI(style, sourceURI)
		if err != nil {
			return vo.FlushResult{}, vo.ErrInvalidSourceURI
		}
		exists, err := s.storage.Exists(ctx, derivativeURI)
		if err != nil {
			return vo.FlushResult{}, fmt.Errorf("service: check derivative: %w", err)
		}
		if !exists {
			continue
		}
		if err := s.storage.Delete(ctx, derivativeURI); err != nil {
			return vo.FlushResult{}, fmt.Errorf("service: delete derivative: %w", err)
		}
		removed++
	}
	metrics.RecordFlushed(removed)

	return vo.FlushResult{Source: sourceURI, Removed: removed}, nil
}

func summarize(style domain.ImageStyle) vo.StyleSummary {
	list := style.Effects
	if list == nil {
		list = []domain.Effect{}
	}
	return vo.StyleSummary{ID: style.ID, Label: style.Label, Effects: list}
}

func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
