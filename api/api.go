package api

import (
	"database/sql"
	"errors"
	"fmt"

	"stablefolio/internal/app"
	"stablefolio/internal/domain"
	"stablefolio/internal/logger"
	l3_service "stablefolio/internal/service/l3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                *sql.DB
	PortfolioService  l3_service.PortfolioService
	RebalancerHandler app.RebalancerHandler
	JwtDecodeSecret   string
}

func (m ApiHandler) StartApi(port int) error {
	router := m.Router()
	return router.Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(func(c *gin.Context) {
		c.Set(logger.ContextKey, logger.New())
	})

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to stablefolio"})
	})

	authed := router.Group("/", m.authMiddleware)
	authed.POST("/portfolio", m.initializePortfolio)
	authed.GET("/portfolio", m.getPortfolio)
	authed.GET("/portfolio/performance", m.getPerformanceHistory)
	authed.GET("/portfolio/metrics", m.getMetrics)
	authed.POST("/portfolio/deposit", m.deposit)
	authed.POST("/portfolio/invest", m.invest)
	authed.POST("/portfolio/withdraw", m.withdraw)
	authed.POST("/portfolio/allocation", m.updateAllocation)
	authed.POST("/portfolio/yields", m.updateYields)
	authed.POST("/portfolio/rebalance/plan", m.planRebalance)
	authed.POST("/portfolio/rebalance/quote", m.quoteRebalance)
	authed.POST("/portfolio/rebalance", m.rebalance)

	return router
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrPortfolioNotFound):
		return 404
	case errors.Is(err, domain.ErrUnauthorized):
		return 403
	case errors.Is(err, domain.ErrPortfolioExists),
		errors.Is(err, domain.ErrRebalanceInProgress),
		errors.Is(err, domain.ErrRebalanceTooFrequent),
		errors.Is(err, domain.ErrNoRebalanceNeeded):
		return 409
	case errors.Is(err, domain.ErrInvalidAllocationPercentage),
		errors.Is(err, domain.ErrAllocationOverflow),
		errors.Is(err, domain.ErrInvalidTokenMint),
		errors.Is(err, domain.ErrInvalidTokenSymbol),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrMathOverflow):
		return 400
	default:
		return 500
	}
}

func returnErrorJson(err error, c *gin.Context) {
	logger.Error(err)
	c.AbortWithStatusJSON(statusForError(err), gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func callerFromContext(c *gin.Context) (string, error) {
	v, ok := c.Get("caller")
	if !ok {
		return "", fmt.Errorf("must be logged in")
	}
	caller, ok := v.(string)
	if !ok || caller == "" {
		return "", fmt.Errorf("misformatted caller identity")
	}
	return caller, nil
}

// ownerOrCaller lets a request name another owner's record explicitly; the
// service rejects the mismatch, keeping the authorization decision in one
// place.
func ownerOrCaller(requested, caller string) string {
	if requested != "" {
		return requested
	}
	return caller
}
