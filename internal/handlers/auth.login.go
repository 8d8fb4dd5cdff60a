package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/image-derivative-api/internal/domain/vo"
)

type AuthLoginService interface {
	Login(ctx context.Context, email, password string) (vo.AuthLogin, error)
}

// AuthLoginHandler issues admin tokens for the style API.
type AuthLoginHandler struct {
	service AuthLoginService
	logger  *slog.Logger
	now     func() time.Time
}

type authLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r authLoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required),
	)
}

type authLoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
	ExpiresAt   string `json:"expires_at,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
}

func NewAuthLoginHandler(service AuthLoginService, logger *slog.Logger) *AuthLoginHandler {
	return &AuthLoginHandler{service: service, logger: logger, now: time.Now}
}

func (h *AuthLoginHandler) Register(router fiber.Router) {
	router.Post("/auth/login", h.Handle)
}

func (h *AuthLoginHandler) Handle(c fiber.Ctx) error {
	var body authLoginRequest
	if err := c.Bind().JSON(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	body.Email = strings.TrimSpace(body.Email)

	if strings.TrimSpace(body.Password) == "" || body.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email and password are required",
		})
	}
	if err := body.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid email",
		})
	}

	login, err := h.service.Login(c.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, vo.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid email or password",
			})
		}

		h.logger.Error("admin login failed", "email", body.Email, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	h.logger.Info("admin logged in", "email", body.Email, "role", login.Role)

	resp := authLoginResponse{
		AccessToken: login.AccessToken,
		TokenType:   login.TokenType,
		Role:        login.Role,
	}
	if !login.ExpiresAt.IsZero() {
		resp.ExpiresAt = login.ExpiresAt.UTC().Format(time.RFC3339)
		resp.ExpiresIn = int64(login.ExpiresAt.Sub(h.now()).Round(time.Second) / time.Second)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}
