package api

import (
	"stablefolio/internal/calculator"

	"github.com/gin-gonic/gin"
)

type metricsJson struct {
	ProjectedApyBps  string  `json:"projectedApyBps"`
	AverageGrowthBps float64 `json:"averageGrowthBps"`
	GrowthStdevBps   float64 `json:"growthStdevBps"`
	SnapshotCount    int     `json:"snapshotCount"`
}

func (m ApiHandler) getMetrics(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	account, err := m.PortfolioService.GetPortfolio(c, caller, ownerOrCaller(c.Query("owner"), caller))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	metrics, err := calculator.CalculateMetrics(account)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, metricsJson{
		ProjectedApyBps:  metrics.ProjectedAPYBps.String(),
		AverageGrowthBps: metrics.AverageGrowthBps,
		GrowthStdevBps:   metrics.GrowthStdevBps,
		SnapshotCount:    metrics.SnapshotCount,
	})
}
