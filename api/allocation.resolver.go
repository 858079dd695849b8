package api

import (
	"stablefolio/internal/domain"

	"github.com/gin-gonic/gin"
)

type updateAllocationRequest struct {
	Owner               string `json:"owner"`
	AssetID             string `json:"assetId"`
	Symbol              string `json:"symbol"`
	TargetPercentageBps uint32 `json:"targetPercentageBps"`
}

func (m ApiHandler) updateAllocation(c *gin.Context) {
	var requestBody updateAllocationRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	caller, err := callerFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	account, err := m.PortfolioService.AddOrUpdateAllocation(c, caller, ownerOrCaller(requestBody.Owner, caller), domain.AllocationParams{
		AssetID:             requestBody.AssetID,
		Symbol:              requestBody.Symbol,
		TargetPercentageBps: requestBody.TargetPercentageBps,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, portfolioToJson(account))
}

type yieldUpdateJson struct {
	Symbol    string `json:"symbol"`
	NewApyBps uint32 `json:"newApyBps"`
}

type updateYieldsRequest struct {
	Owner   string            `json:"owner"`
	Updates []yieldUpdateJson `json:"updates"`
}

func (m ApiHandler) updateYields(c *gin.Context) {
	var requestBody updateYieldsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	caller, err := callerFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	updates := []domain.YieldUpdate{}
	for _, u := range requestBody.Updates {
		updates = append(updates, domain.YieldUpdate{
			Symbol:    u.Symbol,
			NewAPYBps: u.NewApyBps,
		})
	}

	account, err := m.PortfolioService.UpdateYields(c, caller, ownerOrCaller(requestBody.Owner, caller), updates)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, portfolioToJson(account))
}
