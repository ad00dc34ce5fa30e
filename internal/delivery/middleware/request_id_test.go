package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "promo/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "propagates client id", incoming: "req-from-client"},
		{name: "generates id when missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/promotions/by-placement", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			err := m.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLogger(c.Request().Context()).Info("resolving")

				return nil
			})(c)
			require.NoError(t, err)

			header := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, header)
			assert.Equal(t, header, ctxID)
			assert.Equal(t, header, deliverycontext.GetRequestID(c))
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, header)
			}
			assert.Contains(t, buf.String(), "request_id="+header)
		})
	}
}

func TestRequestIDMiddleware_Process_AddsPromotionAttrs(t *testing.T) {
	var buf bytes.Buffer
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

	e := echo.New()
	e.Use(m.Process)
	e.POST("/api/v1/promotions/:id/click", func(c echo.Context) error {
		deliverycontext.GetLogger(c.Request().Context()).Info("click")

		return c.NoContent(http.StatusOK)
	})
	e.GET("/api/v1/promotions/by-placement", func(c echo.Context) error {
		deliverycontext.GetLogger(c.Request().Context()).Info("resolve")

		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/promotions/0190b7c2-6a7e-7c1e-9d2b-5f0e4e9b1a11/click", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), "promotion_id=0190b7c2-6a7e-7c1e-9d2b-5f0e4e9b1a11")
	assert.Contains(t, buf.String(), "route=/api/v1/promotions/:id/click")

	buf.Reset()
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/promotions/by-placement?placement=home_hero&city=Riyadh", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), "placement=home_hero")
	assert.NotContains(t, buf.String(), "promotion_id")
}
