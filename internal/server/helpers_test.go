package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/techTenzen/VTalk/internal/models"
	"github.com/techTenzen/VTalk/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanizeParam(t *testing.T) {
	tests := []struct {
		param    string
		expected string
	}{
		{"id", "ID"},
		{"postId", "post ID"},
		{"userId", "user ID"},
		{"something", "something"},
	}
	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			assert.Equal(t, tt.expected, humanizeParam(tt.param))
		})
	}
}

func TestRespondServiceErrorStatusMapping(t *testing.T) {
	app := fiber.New()
	app.Get("/notfound", func(c *fiber.Ctx) error {
		return respondServiceError(c, models.NewNotFoundError("post", 1))
	})
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return respondServiceError(c, models.NewValidationError("bad input"))
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondServiceError(c, assert.AnError)
	})

	tests := []struct {
		path   string
		status int
	}{
		{"/notfound", http.StatusNotFound},
		{"/invalid", http.StatusBadRequest},
		{"/boom", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestInternalErrorsHideDetails(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondServiceError(c, errors.New("pq: connection refused on 10.0.0.7"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "connection refused")
	assert.NotContains(t, string(body), "details")

	var parsed struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.Equal(t, models.CodeInternal, parsed.Code)
	assert.Equal(t, "Internal server error", parsed.Error)
}

func TestOptionalUserID(t *testing.T) {
	s := &Server{sessions: session.NewService("helper-test-secret", 0)}
	token, err := s.sessions.Issue(7)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/whoami", func(c *fiber.Ctx) error {
		id, ok := s.optionalUserID(c)
		return c.JSON(fiber.Map{"id": id, "ok": ok})
	})

	tests := []struct {
		name   string
		header string
		wantOK bool
	}{
		{"no header", "", false},
		{"malformed", "nonsense", false},
		{"wrong scheme", "Basic " + token, false},
		{"valid bearer", "Bearer " + token, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)

			var body struct {
				ID uint `json:"id"`
				OK bool `json:"ok"`
			}
			decodeBody(t, resp, &body)
			assert.Equal(t, tt.wantOK, body.OK)
			if tt.wantOK {
				assert.Equal(t, uint(7), body.ID)
			}
		})
	}
}
