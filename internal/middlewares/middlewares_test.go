package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	jwtmocks "github.com/joshuarp/image-derivative-api/internal/mock/shared/jwt"
	sharedjwt "github.com/joshuarp/image-derivative-api/internal/shared/jwt"
	sharedratelimit "github.com/joshuarp/image-derivative-api/internal/shared/ratelimit"
)

func doRequest(app *fiber.App, method, path string, body []byte, headers map[string]string) (*http.Response, map[string]interface{}, []byte, error) {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if len(body) > 0 {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Test(req)
	if err != nil {
		return nil, nil, nil, err
	}
	defer resp.Body.Close()
	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, nil, err
	}

	parsed := map[string]interface{}{}
	_ = json.Unmarshal(rawBody, &parsed)

	return resp, parsed, rawBody, nil
}

type HTTPJWTMiddlewareSuite struct {
	suite.Suite

	tokenManager *jwtmocks.TokenManager
	app          *fiber.App
}

func (s *HTTPJWTMiddlewareSuite) SetupTest() {
	s.tokenManager = jwtmocks.NewTokenManager(s.T())
	s.app = fiber.New()
	s.app.Use(NewHTTPJWTMiddleware(s.tokenManager))
	s.app.Get("/secure", func(c fiber.Ctx) error {
		claims, _ := c.Locals("jwt_claims").(*sharedjwt.Claims)
		return c.JSON(fiber.Map{
			"user_id": c.Locals("user_id"),
			"subject": claims.Subject,
		})
	})
	s.app.Post("/auth/login", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
}

func (s *HTTPJWTMiddlewareSuite) TestNewHTTPJWTMiddleware_TableDriven() {
	verifyErr := errors.New("invalid")

	tests := []struct {
		name      string
		method    string
		path      string
		headers   map[string]string
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name:   "bypass auth login route",
			method: http.MethodPost,
			path:   "/auth/login",
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), true, payload["ok"])
			},
		},
		{
			name:    "missing authorization header",
			method:  http.MethodGet,
			path:    "/secure",
			headers: map[string]string{},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
				assert.Equal(s.T(), "missing or invalid authorization header", payload["error"])
			},
		},
		{
			name:   "missing bearer token",
			method: http.MethodGet,
			path:   "/secure",
			headers: map[string]string{
				fiber.HeaderAuthorization: "Bearer   ",
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
				assert.Equal(s.T(), "missing or invalid authorization header", payload["error"])
			},
		},
		{
			name:   "invalid token",
			method: http.MethodGet,
			path:   "/secure",
			headers: map[string]string{
				fiber.HeaderAuthorization: "Bearer token-123",
			},
			setupMock: func() {
				s.tokenManager.EXPECT().Verify(mock.Anything, "token-123").Return(nil, verifyErr)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
				assert.Equal(s.T(), "invalid token", payload["error"])
			},
		},
		{
			name:   "valid token",
			method: http.MethodGet,
			path:   "/secure",
			headers: map[string]string{
				fiber.HeaderAuthorization: "Bearer token-123",
			},
			setupMock: func() {
				s.tokenManager.EXPECT().Verify(mock.Anything, "token-123").Return(&sharedjwt.Claims{Subject: "user-1"}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), "user-1", payload["user_id"])
				assert.Equal(s.T(), "user-1", payload["subject"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _, err := doRequest(s.app, tc.method, tc.path, nil, tc.headers)
			require.NoError(s.T(), err)
			tc.assertion(resp, payload)
		})
	}
}

func TestHTTPJWTMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(HTTPJWTMiddlewareSuite))
}

type HTTPOptionalJWTMiddlewareSuite struct {
	suite.Suite

	tokenManager *jwtmocks.TokenManager
	app          *fiber.App
}

func (s *HTTPOptionalJWTMiddlewareSuite) SetupTest() {
	s.tokenManager = jwtmocks.NewTokenManager(s.T())
	s.app = fiber.New()
	s.app.Use(NewHTTPOptionalJWTMiddleware(s.tokenManager))
	s.app.Get("/private/styles/thumb/private/a.png", func(c fiber.Ctx) error {
		claims, ok := c.Locals("jwt_claims").(*sharedjwt.Claims)
		subject := ""
		if ok {
			subject = claims.Subject
		}
		return c.JSON(fiber.Map{"authenticated": ok, "subject": subject})
	})
}

func (s *HTTPOptionalJWTMiddlewareSuite) TestNewHTTPOptionalJWTMiddleware_TableDriven() {
	tests := []struct {
		name      string
		headers   map[string]string
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name:    "anonymous request passes",
			headers: map[string]string{},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), false, payload["authenticated"])
			},
		},
		{
			name:    "invalid token passes anonymously",
			headers: map[string]string{fiber.HeaderAuthorization: "Bearer bad"},
			setupMock: func() {
				s.tokenManager.EXPECT().Verify(mock.Anything, "bad").Return(nil, errors.New("invalid"))
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), false, payload["authenticated"])
			},
		},
		{
			name:    "valid token attaches claims",
			headers: map[string]string{fiber.HeaderAuthorization: "Bearer good"},
			setupMock: func() {
				s.tokenManager.EXPECT().Verify(mock.Anything, "good").Return(&sharedjwt.Claims{Subject: "admin-1"}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), true, payload["authenticated"])
				assert.Equal(s.T(), "admin-1", payload["subject"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _, err := doRequest(s.app, http.MethodGet, "/private/styles/thumb/private/a.png", nil, tc.headers)
			require.NoError(s.T(), err)
			tc.assertion(resp, payload)
		})
	}
}

func TestHTTPOptionalJWTMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(HTTPOptionalJWTMiddlewareSuite))
}

func TestHTTPRoleMiddleware_TableDriven(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		wantStatus int
		wantError  string
	}{
		{name: "unauthenticated", wantStatus: fiber.StatusUnauthorized, wantError: "missing or invalid authorization header"},
		{name: "editor cannot flush", role: "editor", wantStatus: fiber.StatusForbidden, wantError: "insufficient role"},
		{name: "admin can flush", role: "admin", wantStatus: fiber.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(func(c fiber.Ctx) error {
				if role := c.Get("X-Test-Role"); role != "" {
					c.Locals("jwt_claims", &sharedjwt.Claims{Subject: "admin-1", Role: role})
				}
				return c.Next()
			})
			app.Delete("/derivatives", NewHTTPRoleMiddleware("admin"), func(c fiber.Ctx) error {
				return c.JSON(fiber.Map{"ok": true})
			})

			headers := map[string]string{}
			if tc.role != "" {
				headers["X-Test-Role"] = tc.role
			}
			resp, payload, _, err := doRequest(app, http.MethodDelete, "/derivatives", nil, headers)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			if tc.wantError != "" {
				assert.Equal(t, tc.wantError, payload["error"])
			} else {
				assert.Equal(t, true, payload["ok"])
			}
		})
	}
}

type stubRateLimiter struct {
	result  sharedratelimit.Result
	err     error
	lastKey string
}

func (s *stubRateLimiter) Allow(_ context.Context, key string) (sharedratelimit.Result, error) {
	s.lastKey = key
	return s.result, s.err
}

func (s *stubRateLimiter) Reset(_ context.Context, _ string) error {
	return nil
}

func TestHTTPRateLimitMiddleware_TableDriven(t *testing.T) {
	tests := []struct {
		name          string
		limiter       *stubRateLimiter
		keyExtractor  func(c fiber.Ctx) string
		expectedCode  int
		expectedError string
		assertHeaders bool
		expectedKey   string
	}{
		{
			name:          "allows request and sets headers",
			limiter:       &stubRateLimiter{result: sharedratelimit.Result{Allowed: true, Limit: 20, Remaining: 19, ResetAt: time.Unix(200, 0)}},
			keyExtractor:  func(c fiber.Ctx) string { return "deliver:user:test-user" },
			expectedCode:  fiber.StatusOK,
			assertHeaders: true,
			expectedKey:   "deliver:user:test-user",
		},
		{
			name:          "rejects when limit exceeded",
			limiter:       &stubRateLimiter{result: sharedratelimit.Result{Allowed: false, Limit: 20, Remaining: 0, RetryAfter: 5 * time.Second, ResetAt: time.Unix(250, 0)}},
			keyExtractor:  func(c fiber.Ctx) string { return "deliver:user:test-user" },
			expectedCode:  fiber.StatusTooManyRequests,
			expectedError: "rate limit exceeded",
			expectedKey:   "deliver:user:test-user",
		},
		{
			name:          "returns internal error when limiter fails",
			limiter:       &stubRateLimiter{err: errors.New("boom")},
			keyExtractor:  func(c fiber.Ctx) string { return "deliver:user:test-user" },
			expectedCode:  fiber.StatusInternalServerError,
			expectedError: "internal server error",
			expectedKey:   "deliver:user:test-user",
		},
		{
			name:          "passes through when limiter is nil",
			limiter:       nil,
			keyExtractor:  func(c fiber.Ctx) string { return "deliver:user:test-user" },
			expectedCode:  fiber.StatusOK,
			expectedError: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(func(c fiber.Ctx) error {
				c.Locals("user_id", "test-user")
				return c.Next()
			})

			var limiter sharedratelimit.Limiter
			if tc.limiter != nil {
				limiter = tc.limiter
			}

			app.Use(NewHTTPRateLimitMiddleware(RateLimitConfig{
				Limiter:      limiter,
				KeyExtractor: tc.keyExtractor,
			}))

			app.Get("/limited", func(c fiber.Ctx) error {
				return c.JSON(fiber.Map{"ok": true})
			})

			resp, payload, _, err := doRequest(app, http.MethodGet, "/limited", nil, nil)
			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tc.expectedCode, resp.StatusCode)

			if tc.expectedError != "" {
				assert.Equal(t, tc.expectedError, payload["error"])
			}

			if tc.assertHeaders {
				assert.Equal(t, "20", resp.Header.Get("X-RateLimit-Limit"))
				assert.Equal(t, "19", resp.Header.Get("X-RateLimit-Remaining"))
			}

			if tc.limiter != nil {
				assert.Equal(t, tc.expectedKey, tc.limiter.lastKey)
			}
		})
	}
}

func TestKeyExtractors(t *testing.T) {
	app := fiber.New()
	app.Get("/anonymous", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"per_user": PerUserKeyExtractor("deliver")(c),
			"per_ip":   PerIPKeyExtractor("deliver")(c),
			"default":  defaultKeyExtractor(c),
		})
	})
	app.Get("/user", func(c fiber.Ctx) error {
		c.Locals("user_id", "admin-1")
		return c.JSON(fiber.Map{
			"per_user": PerUserKeyExtractor("deliver")(c),
			"default":  defaultKeyExtractor(c),
		})
	})

	_, payload, _, err := doRequest(app, http.MethodGet, "/anonymous", nil, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(payload["per_user"].(string), "deliver:ip:"))
	assert.Equal(t, payload["per_user"], payload["per_ip"])
	assert.True(t, strings.HasPrefix(payload["default"].(string), "ip:"))

	_, payload, _, err = doRequest(app, http.MethodGet, "/user", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "deliver:user:admin-1", payload["per_user"])
	assert.Equal(t, "user:admin-1", payload["default"])
}
