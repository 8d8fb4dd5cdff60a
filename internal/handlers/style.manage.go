package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/image-derivative-api/internal/domain"
	"github.com/joshuarp/image-derivative-api/internal/domain/vo"
)

type StyleManageService interface {
	List(ctx context.Context) ([]vo.StyleSummary, error)
	Get(ctx context.Context, id string) (vo.StyleSummary, error)
	BuildURL(ctx context.Context, styleID, sourceURI string, source domain.Dimensions) (vo.StyleURL, error)
	FlushStyle(ctx context.Context, styleID string) (vo.FlushResult, error)
	FlushSource(ctx context.Context, sourceURI string) (vo.FlushResult, error)
}

type StyleManageHandler struct {
	service StyleManageService
	logger  *slog.Logger
}

type styleURLRequest struct {
	URI    string `json:"uri"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func NewStyleManageHandler(service StyleManageService, logger *slog.Logger) *StyleManageHandler {
	return &StyleManageHandler{service: service, logger: logger}
}

// Register mounts the style routes. flushGuard runs in front of the routes
// that delete derivatives.
func (h *StyleManageHandler) Register(router fiber.Router, flushGuard fiber.Handler) {
	router.Get("/styles", h.List)
	router.Get("/styles/:id", h.Get)
	router.Post("/styles/:id/url", h.BuildURL)
	router.Delete("/styles/:id/derivatives", flushGuard, h.FlushStyle)
	router.Delete("/derivatives", flushGuard, h.FlushSource)
}

func (h *StyleManageHandler) List(c fiber.Ctx) error {
	styles, err := h.service.List(c.Context())
	if err != nil {
		return h.fail(c, "failed to list image styles", err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": styles})
}

func (h *StyleManageHandler) Get(c fiber.Ctx) error {
	style, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "failed to get image style", err)
	}
	return c.Status(fiber.StatusOK).JSON(style)
}

func (h *StyleManageHandler) BuildURL(c fiber.Ctx) error {
	var requestBody styleURLRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if strings.TrimSpace(requestBody.URI) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "uri is required",
		})
	}
	if requestBody.Width < 0 || requestBody.Height < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "width and height must not be negative",
		})
	}

	result, err := h.service.BuildURL(c.Context(), c.Params("id"), strings.TrimSpace(requestBody.URI), domain.Dimensions{
		Width:  requestBody.Width,
		Height: requestBody.Height,
	})
	if err != nil {
		return h.fail(c, "failed to build derivative url", err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *StyleManageHandler) FlushStyle(c fiber.Ctx) error {
	result, err := h.service.FlushStyle(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "failed to flush image style", err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *StyleManageHandler) FlushSource(c fiber.Ctx) error {
	uri := strings.TrimSpace(c.Query("uri"))
	if uri == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "uri is required",
		})
	}

	result, err := h.service.FlushSource(c.Context(), uri)
	if err != nil {
		return h.fail(c, "failed to flush source derivatives", err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *StyleManageHandler) fail(c fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, vo.ErrStyleNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "image style not found"})
	case errors.Is(err, vo.ErrInvalidSourceURI):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid source uri"})
	default:
		h.logger.Error(message, "style_id", c.Params("id"), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
