package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getPortfolio(c *gin.Context) {
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

	c.JSON(200, portfolioToJson(account))
}

func (m ApiHandler) getPerformanceHistory(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	snapshots, err := m.PortfolioService.GetPerformanceHistory(c, caller, ownerOrCaller(c.Query("owner"), caller))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"snapshots": snapshotsToJson(snapshots)})
}
