package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"promo/internal/delivery/api/response"
	deliverycontext "promo/internal/delivery/context"
	domainerrors "promo/internal/domain/errors"
	"promo/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
		wantLogged  bool
	}{
		{
			name:       "domain not found",
			err:        errors.Wrap(domainerrors.ErrPromotionNotFound, "record click"),
			wantStatus: http.StatusNotFound,
			wantCode:   "PROMOTION_NOT_FOUND",
		},
		{
			name:        "bad request keeps details",
			err:         domainerrors.ErrTargetRefMissing.WithDetails("target_ref_id"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "TARGET_REF_MISSING",
			wantDetails: "target_ref_id",
		},
		{
			name:       "server error hides details",
			err:        domainerrors.ErrTransactionFailed.WithDetails("deadlock detected"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "TRANSACTION_FAILED",
			wantLogged: true,
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unexpected error",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/promotions/p-9/click", nil)
			req = req.WithContext(deliverycontext.WithLogger(req.Context(), logger.With(slog.String("promotion_id", "p-9"))))
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)

			if tt.wantLogged {
				assert.Contains(t, buf.String(), "promotion_id=p-9")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestErrorMiddleware_HandleHTTPError_CommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/promotions/p-1/qr", nil), rec)
	require.NoError(t, c.Blob(http.StatusOK, "image/png", []byte{0x89}))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []byte{0x89}, rec.Body.Bytes())
}
