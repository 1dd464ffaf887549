package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/clubfundhq/clubfund_backend/internal/core/ports/services"
	"github.com/clubfundhq/clubfund_backend/internal/middleware"
	"github.com/clubfundhq/clubfund_backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes wires all HTTP routes onto the engine. Three access levels:
// public (no token), token (any authenticated role) and admin.
func RegisterRoutes(engine *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	loginLimiter := limiter.New(memory.NewStore(), limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  10,
	})
	registerAuthRoutes(api, services.Auth, loginLimiter)

	public := api.Group("")
	token := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	admin := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireAdmin())

	registerMemberRoutes(token, admin, services.Member)
	registerMonthlyFeeRoutes(public, admin, services.MonthlyFee)
	registerPenaltyRoutes(token, admin, services.Penalty)
	registerExpenseRoutes(public, admin, services.Expense)
	registerFundRoutes(token, services.Fund)
	registerDebtRoutes(public, services.Debt)
	registerStatisticsRoutes(token, services.Statistics)
}
