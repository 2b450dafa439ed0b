package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subsync/subsync-api/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitLogger("test")
}

func TestCorrelationIDMiddleware_GeneratesID(t *testing.T) {
	router := gin.New()
	router.Use(CorrelationIDMiddleware())

	var seen string
	router.GET("/", func(c *gin.Context) {
		seen = GetCorrelationID(c)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(CorrelationIDHeader))
}

func TestCorrelationIDMiddleware_PropagatesIncomingID(t *testing.T) {
	router := gin.New()
	router.Use(CorrelationIDMiddleware())

	var fromContext string
	router.GET("/", func(c *gin.Context) {
		fromContext = CorrelationIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(CorrelationIDHeader, "incoming-id")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "incoming-id", fromContext)
	assert.Equal(t, "incoming-id", rec.Header().Get(CorrelationIDHeader))
}

func TestGetCorrelationID_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetCorrelationID(c))
}
