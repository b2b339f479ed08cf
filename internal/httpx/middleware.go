package httpx

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("rid", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rid, _ := c.Get("rid")
		zap.L().Info("http",
			zap.Any("rid", rid),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("dur", time.Since(start)),
		)
	}
}

// Recovery turns panics into a JSON 500 instead of gin's plain-text default.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		zap.L().Error("panic recovered", zap.Any("err", err), zap.String("path", c.Request.URL.Path))
		Abort(c, http.StatusInternalServerError, "internal server error")
	})
}

// New returns a gin engine with the middleware every service shares.
// Money goes over the wire as JSON numbers ("price": 8.5), as the storefront expects.
func New() *gin.Engine {
	decimal.MarshalJSONWithoutQuotes = true
	r := gin.New()
	r.Use(RequestID(), Logger(), Recovery())
	r.NoRoute(func(c *gin.Context) { Abort(c, http.StatusNotFound, "route not found") })
	return r
}
