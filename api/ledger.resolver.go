package api

import (
	"github.com/gin-gonic/gin"
)

type depositRequest struct {
	Owner  string `json:"owner"`
	Amount uint64 `json:"amount"`
}

func (m ApiHandler) deposit(c *gin.Context) {
	var requestBody depositRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	caller, err := callerFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	account, err := m.PortfolioService.Deposit(c, caller, ownerOrCaller(requestBody.Owner, caller), requestBody.Amount)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, portfolioToJson(account))
}

type investRequest struct {
	Owner   string `json:"owner"`
	AssetID string `json:"assetId"`
	Amount  uint64 `json:"amount"`
}

func (m ApiHandler) invest(c *gin.Context) {
	var requestBody investRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	caller, err := callerFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	account, err := m.PortfolioService.Invest(c, caller, ownerOrCaller(requestBody.Owner, caller), requestBody.AssetID, requestBody.Amount)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, portfolioToJson(account))
}

func (m ApiHandler) withdraw(c *gin.Context) {
	var requestBody investRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	caller, err := callerFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	account, err := m.PortfolioService.Withdraw(c, caller, ownerOrCaller(requestBody.Owner, caller), requestBody.AssetID, requestBody.Amount)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, portfolioToJson(account))
}
