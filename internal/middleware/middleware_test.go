package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, rec := newContext(req)

	var seen string
	err := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return nil
	})(c)

	require.NoError(t, err)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_ReusesIncomingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	c, rec := newContext(req)

	err := RequestID()(func(c echo.Context) error {
		assert.Equal(t, "abc-123", GetRequestID(c))
		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRequestContentType_StripsParameters(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(echo.HeaderContentType, "multipart/form-data; boundary=xyz")
	c, _ := newContext(req)

	assert.Equal(t, "multipart/form-data", RequestContentType(c))
}

func TestRequestContentType_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	c, _ := newContext(req)

	assert.Equal(t, "", RequestContentType(c))
}

func TestGetLogger_FallsBackToNop(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, _ := newContext(req)

	logger := GetLogger(c)
	require.NotNil(t, logger)
}

func TestEnhanceContext_StoresLogger(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, _ := newContext(req)

	ce := NewContextEnhancer(zerolog.Nop())
	err := ce.EnhanceContext()(func(c echo.Context) error {
		logger := GetLogger(c)
		require.NotNil(t, logger)

		// The logger must also be reachable from the plain request
		// context for non-Echo code.
		fromCtx := c.Request().Context().Value(LoggerKey)
		assert.NotNil(t, fromCtx)
		return nil
	})(c)

	require.NoError(t, err)
}
