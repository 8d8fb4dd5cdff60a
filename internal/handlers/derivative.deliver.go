package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/image-derivative-api/internal/domain/vo"
	"github.com/joshuarp/image-derivative-api/internal/middlewares"
	"github.com/joshuarp/image-derivative-api/internal/shared/itok"
	sharedjwt "github.com/joshuarp/image-derivative-api/internal/shared/jwt"
)

// RetryAfterSeconds is sent with 503 responses while another worker generates.
const RetryAfterSeconds = 3

type DerivativeDeliverService interface {
	Deliver(ctx context.Context, in vo.DeliveryRequest) (vo.DerivativeFile, error)
}

type DerivativeDeliverHandler struct {
	service DerivativeDeliverService
	logger  *slog.Logger
}

func NewDerivativeDeliverHandler(service DerivativeDeliverService, logger *slog.Logger) *DerivativeDeliverHandler {
	return &DerivativeDeliverHandler{service: service, logger: logger}
}

// Register mounts /{scheme}/styles/{style}/{scheme}/{target}. auth and
// rateLimit run before delivery; auth should only attach claims, never reject.
func (h *DerivativeDeliverHandler) Register(router fiber.Router, auth, rateLimit fiber.Handler) {
	router.Get("/:scheme/styles/:style/:source_scheme/*", auth, rateLimit, h.Handle)
}

func (h *DerivativeDeliverHandler) Handle(c fiber.Ctx) error {
	scheme := c.Params("source_scheme")
	if c.Params("scheme") != scheme {
		return c.Status(fiber.StatusNotFound).SendString("Not Found")
	}

	ctx := c.Context()
	if claims, ok := c.Locals("jwt_claims").(*sharedjwt.Claims); ok {
		ctx = sharedjwt.SetClaims(ctx, claims)
	}

	file, err := h.service.Deliver(ctx, vo.DeliveryRequest{
		Scheme:  scheme,
		StyleID: c.Params("style"),
		Target:  c.Params("*"),
		Token:   c.Query(itok.QueryParam),
	})
	if err != nil {
		switch {
		case errors.Is(err, vo.ErrNotFound):
			return c.Status(fiber.StatusNotFound).SendString("Not Found")
		case errors.Is(err, vo.ErrMissingSource):
			return c.Status(fiber.StatusNotFound).SendString("Error generating image, missing source file.")
		case errors.Is(err, vo.ErrAccessDenied):
			return c.Status(fiber.StatusForbidden).SendString("Access denied")
		case errors.Is(err, vo.ErrGenerationInProgress):
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(RetryAfterSeconds))
			return c.Status(fiber.StatusServiceUnavailable).SendString("Image generation in progress. Try again shortly.")
		case errors.Is(err, vo.ErrGenerationFailed):
			return c.Status(fiber.StatusInternalServerError).SendString("Error generating image.")
		default:
			h.logger.Error("failed to deliver derivative",
				"request_id", middlewares.ChainIDFromContext(c),
				"path", c.Path(),
				"error", err,
			)
			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		}
	}

	for key, value := range file.Headers {
		c.Set(key, value)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Status(fiber.StatusOK).SendStream(file.Body, int(file.Size))
}
