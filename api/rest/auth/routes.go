package auth

import (
	"codeberg.org/encore/server/internal/auth"
	"codeberg.org/encore/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// brute-force protection on the gate endpoint
const gateRateLimit = "10-M"

func RegisterRoutes(router *gin.RouterGroup) {
	rate, err := limiter.NewRateFromFormatted(gateRateLimit)
	if err != nil {
		// the format string is a compile-time constant; this cannot happen
		logger.Fatal("invalid gate rate limit", "format", gateRateLimit)
	}

	rateMiddleware := mgin.NewMiddleware(limiter.New(memory.NewStore(), rate))

	router.POST("/auth/gate", rateMiddleware, GateHandler())
	router.GET("/auth/me", auth.GateMiddleware(), MeHandler())
}
