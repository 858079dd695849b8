package api

import (
	"stablefolio/internal/domain"

	"github.com/gin-gonic/gin"
)

type allocationParamsJson struct {
	AssetID             string `json:"assetId"`
	Symbol              string `json:"symbol"`
	TargetPercentageBps uint32 `json:"targetPercentageBps"`
}

type initializePortfolioRequest struct {
	Owner       string                 `json:"owner"`
	Allocations []allocationParamsJson `json:"allocations"`
}

func (m ApiHandler) initializePortfolio(c *gin.Context) {
	var requestBody initializePortfolioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	caller, err := callerFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	params := []domain.AllocationParams{}
	for _, a := range requestBody.Allocations {
		params = append(params, domain.AllocationParams{
			AssetID:             a.AssetID,
			Symbol:              a.Symbol,
			TargetPercentageBps: a.TargetPercentageBps,
		})
	}

	account, err := m.PortfolioService.Initialize(c, caller, ownerOrCaller(requestBody.Owner, caller), params)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, portfolioToJson(account))
}
