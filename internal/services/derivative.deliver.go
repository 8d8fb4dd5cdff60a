package services

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/joshuarp/image-derivative-api/internal/domain"
	"github.com/joshuarp/image-derivative-api/internal/domain/vo"
	"github.com/joshuarp/image-derivative-api/internal/shared/lock"
	"github.com/joshuarp/image-derivative-api/internal/shared/metrics"
	"github.com/joshuarp/image-derivative-api/internal/storage"
)

const (
	lockNamePrefix = "image_style_deliver:"
	defaultLockTTL = 30 * time.Second
)

type StyleReader interface {
	GetStyle(ctx context.Context, id string) (domain.ImageStyle, error)
}

type DerivativeStorage interface {
	ValidScheme(name string) bool
	IsPublic(name string) bool
	Exists(ctx context.Context, uri string) (bool, error)
	Open(ctx context.Context, uri string) (storage.Object, error)
}

type DerivativeLocker interface {
	Acquire(ctx context.Context, name string, ttl time.Duration) (lock.Lease, bool, error)
	Refresh(ctx context.Context, lease lock.Lease, ttl time.Duration) (bool, error)
	Release(ctx context.Context, lease lock.Lease) error
}

type TokenValidator interface {
	Valid(ctx context.Context, styleID, uri, token string) (bool, error)
}

type DerivativeGenerator interface {
	Generate(ctx context.Context, style domain.ImageStyle, sourceURI, derivativeURI string) error
}

// AccessHook decides whether a derivative of a private source may be served.
// A nil error with no headers counts as a denial.
type AccessHook interface {
	CheckAccess(ctx context.Context, sourceURI string) (map[string]string, error)
}

type DerivativeDeliverOptions struct {
	AllowInsecure bool
	LockTTL       time.Duration
	CacheMaxAge   time.Duration
}

type DerivativeDeliverService struct {
	styles    StyleReader
	storage   DerivativeStorage
	locker    DerivativeLocker
	tokens    TokenValidator
	generator DerivativeGenerator
	access    AccessHook
	logger    *slog.Logger
	opts      DerivativeDeliverOptions
}

func NewDerivativeDeliverService(
	styles StyleReader,
	storage DerivativeStorage,
	locker DerivativeLocker,
	tokens TokenValidator,
	generator DerivativeGenerator,
	access AccessHook,
	logger *slog.Logger,
	opts DerivativeDeliverOptions,
) *DerivativeDeliverService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DerivativeDeliverService{
		styles:    styles,
		storage:   storage,
		locker:    locker,
		tokens:    tokens,
		generator: generator,
		access:    access,
		logger:    logger,
		opts:      opts,
	}
}

// Deliver returns the derivative described by in, generating it first when it
// does not exist yet. At most one caller generates a given derivative at a time;
// the others get vo.ErrGenerationInProgress.
func (s *DerivativeDeliverService) Deliver(ctx context.Context, in vo.DeliveryRequest) (vo.DerivativeFile, error) {
	style, err := s.styles.GetStyle(ctx, in.StyleID)
	if err != nil {
		if errors.Is(err, vo.ErrStyleNotFound) {
			metrics.RecordRequest("", metrics.ResultNotFound)
			return vo.DerivativeFile{}, vo.ErrNotFound
		}
		return vo.DerivativeFile{}, fmt.Errorf("service: load style: %w", err)
	}

	target := strings.TrimLeft(in.Target, "/")
	if !s.storage.ValidScheme(in.Scheme) || target == "" {
		metrics.RecordRequest(style.ID, metrics.ResultNotFound)
		return vo.DerivativeFile{}, vo.ErrNotFound
	}
	imageURI := domain.JoinURI(in.Scheme, target)

	tokenChecked := !s.opts.AllowInsecure || domain.IsDerivativeTarget(target)
	if tokenChecked {
		valid, err := s.tokens.Valid(ctx, style.ID, style.AddExtension(imageURI), in.Token)
		if err != nil {
			return vo.DerivativeFile{}, fmt.Errorf("service: validate token: %w", err)
		}
		if !valid {
			metrics.RecordRequest(style.ID, metrics.ResultNotFound)
			return vo.DerivativeFile{}, vo.ErrNotFound
		}
	}

	public := s.storage.IsPublic(in.Scheme)
	var headers map[string]string
	if public {
		headers = map[string]string{
			"Cache-Control": "public, max-age=" + strconv.FormatInt(int64(s.opts.CacheMaxAge/time.Second), 10),
		}
	} else {
		headers, err = s.checkAccess(ctx, imageURI)
		if err != nil {
			if errors.Is(err, vo.ErrAccessDenied) {
				metrics.RecordRequest(style.ID, metrics.ResultDenied)
			}
			return vo.DerivativeFile{}, err
		}
	}

	// The derivative path follows the requested URI even when the source was
	// found under its pre-conversion name.
	req, err := domain.NewDerivativeRequest(style, imageURI, in.Token)
	if err != nil {
		metrics.RecordRequest(style.ID, metrics.ResultNotFound)
		return vo.DerivativeFile{}, vo.ErrNotFound
	}

	sourceURI, err := s.resolveSource(ctx, imageURI)
	if err != nil {
		if errors.Is(err, vo.ErrMissingSource) {
			metrics.RecordRequest(style.ID, metrics.ResultMissing)
			s.logger.Info("source image not found",
				"source", imageURI,
				"derivative", req.DerivativeURI,
				"style", style.ID,
			)
		}
		return vo.DerivativeFile{}, err
	}
	req.SourceURI = sourceURI

	result := metrics.ResultHit
	exists, err := s.storage.Exists(ctx, req.DerivativeURI)
	if err != nil {
		return vo.DerivativeFile{}, fmt.Errorf("service: check derivative: %w", err)
	}
	if !exists {
		if err := s.generateOnce(context.WithoutCancel(ctx), req); err != nil {
			return vo.DerivativeFile{}, err
		}
		result = metrics.ResultGenerated
	}

	obj, err := s.storage.Open(ctx, req.DerivativeURI)
	if err != nil {
		return vo.DerivativeFile{}, fmt.Errorf("service: open derivative: %w", err)
	}
	metrics.RecordRequest(style.ID, result)

	return vo.DerivativeFile{
		URI:         req.DerivativeURI,
		ContentType: obj.ContentType,
		Size:        obj.Size,
		Body:        obj.Body,
		Headers:     headers,
		Public:      public,
	}, nil
}

func (s *DerivativeDeliverService) checkAccess(ctx context.Context, uri string) (map[string]string, error) {
	if s.access == nil {
		return nil, vo.ErrAccessDenied
	}
	headers, err := s.access.CheckAccess(ctx, uri)
	if err != nil {
		if errors.Is(err, vo.ErrAccessDenied) {
			return nil, vo.ErrAccessDenied
		}
		return nil, fmt.Errorf("service: access hook: %w", err)
	}
	if len(headers) == 0 {
		return nil, vo.ErrAccessDenied
	}
	return headers, nil
}

// resolveSource finds the original for uri. A derivative of a converted style
// is requested as image.png.jpg; its source is image.png, or image when the
// original has no extension.
func (s *DerivativeDeliverService) resolveSource(ctx context.Context, uri string) (string, error) {
	candidates := []string{uri}
	if trimmed := strings.TrimSuffix(uri, path.Ext(uri)); trimmed != uri && !strings.HasSuffix(trimmed, "/") {
		candidates = append(candidates, trimmed)
	}

	for _, candidate := range candidates {
		exists, err := s.storage.Exists(ctx, candidate)
		switch {
		case errors.Is(err, storage.ErrInvalidTarget):
			return "", vo.ErrMissingSource
		case err != nil:
			return "", fmt.Errorf("service: resolve source: %w", err)
		case exists:
			return candidate, nil
		}
	}
	return "", vo.ErrMissingSource
}

// generateOnce runs the generator under the per-derivative lock. The lease is
// refreshed while the generator runs and released on every path once acquired.
func (s *DerivativeDeliverService) generateOnce(ctx context.Context, req domain.DerivativeRequest) error {
	name := LockName(req.Style.ID, req.SourceURI)

	lease, acquired, err := s.locker.Acquire(ctx, name, s.lockTTL())
	if err != nil {
		return fmt.Errorf("service: acquire lock: %w", err)
	}
	if !acquired {
		metrics.RecordLockContention(req.Style.ID)
		metrics.RecordRequest(req.Style.ID, metrics.ResultInProgress)
		s.logger.Debug("derivative generation in progress", "lock", name, "derivative", req.DerivativeURI)
		return vo.ErrGenerationInProgress
	}
	stopRefresh := s.keepLease(ctx, lease)
	defer func() {
		stopRefresh()
		if err := s.locker.Release(ctx, lease); err != nil {
			s.logger.Warn("failed to release derivative lock", "lock", name, "error", err)
		}
	}()

	// Another worker may have finished between the first check and the lock.
	exists, err := s.storage.Exists(ctx, req.DerivativeURI)
	if err != nil {
		return fmt.Errorf("service: check derivative: %w", err)
	}
	if exists {
		return nil
	}

	start := time.Now()
	if err := s.generator.Generate(ctx, req.Style, req.SourceURI, req.DerivativeURI); err != nil {
		metrics.RecordGeneration(req.Style.ID, "error", time.Since(start).Seconds())
		metrics.RecordRequest(req.Style.ID, metrics.ResultFailed)
		s.logger.Error("unable to generate the derived image",
			"source", req.SourceURI,
			"style", req.Style.ID,
			"derivative", req.DerivativeURI,
			"error", err,
		)
		return fmt.Errorf("%w: %v", vo.ErrGenerationFailed, err)
	}
	metrics.RecordGeneration(req.Style.ID, "ok", time.Since(start).Seconds())
	return nil
}

func (s *DerivativeDeliverService) lockTTL() time.Duration {
	if s.opts.LockTTL <= 0 {
		return defaultLockTTL
	}
	return s.opts.LockTTL
}

// keepLease refreshes lease every half TTL until the returned stop func is
// called. A lost lease is only logged; the generator writes atomically.
func (s *DerivativeDeliverService) keepLease(ctx context.Context, lease lock.Lease) func() {
	ttl := s.lockTTL()
	done := make(chan struct{})
	stopped := make(chan struct{})

	interval := ttl / 2
	if interval <= 0 {
		interval = ttl
	}

	go func() {
		defer close(stopped)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				held, err := s.locker.Refresh(ctx, lease, ttl)
				switch {
				case err != nil:
					s.logger.Warn("failed to refresh derivative lock", "lock", lease.Name, "error", err)
				case !held:
					s.logger.Warn("derivative lock lost during generation", "lock", lease.Name)
					return
				}
			}
		}
	}()

	return func() {
		close(done)
		<-stopped
	}
}

// LockName is the cross-process lock guarding generation of styleID from sourceURI.
func LockName(styleID, sourceURI string) string {
	sum := sha256.Sum256([]byte(sourceURI))
	return lockNamePrefix + styleID + ":" + base64.RawURLEncoding.EncodeToString(sum[:])
}
