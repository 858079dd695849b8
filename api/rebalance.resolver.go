package api

import (
	"strconv"

	"stablefolio/internal/domain"

	"github.com/gin-gonic/gin"
)

type allocationTargetJson struct {
	AssetID             string `json:"assetId"`
	TargetPercentageBps uint32 `json:"targetPercentageBps"`
}

type rebalanceRequest struct {
	Owner   string                 `json:"owner"`
	Targets []allocationTargetJson `json:"targets"`
}

func (r rebalanceRequest) domainTargets() []domain.AllocationTarget {
	targets := []domain.AllocationTarget{}
	for _, t := range r.Targets {
		targets = append(targets, domain.AllocationTarget{
			AssetID:             t.AssetID,
			TargetPercentageBps: t.TargetPercentageBps,
		})
	}
	return targets
}

func (m ApiHandler) planRebalance(c *gin.Context) {
	var requestBody rebalanceRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	caller, err := callerFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	plan, err := m.PortfolioService.PlanRebalance(c, caller, ownerOrCaller(requestBody.Owner, caller), requestBody.domainTargets())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, planToJson(plan))
}

func (m ApiHandler) rebalance(c *gin.Context) {
	var requestBody rebalanceRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	caller, err := callerFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	plan, err := m.PortfolioService.Rebalance(c, caller, ownerOrCaller(requestBody.Owner, caller), requestBody.domainTargets())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, planToJson(plan))
}

// quoteRebalance plans and prices each leg against the aggregator without
// applying anything.
func (m ApiHandler) quoteRebalance(c *gin.Context) {
	var requestBody rebalanceRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	caller, err := callerFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	response, err := m.RebalancerHandler.QuotePlan(c, caller, ownerOrCaller(requestBody.Owner, caller), requestBody.domainTargets())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	type quotedSwapJson struct {
		swapJson
		QuotedOutAmount *string `json:"quotedOutAmount,omitempty"`
	}

	swaps := []quotedSwapJson{}
	for _, q := range response.Swaps {
		out := quotedSwapJson{
			swapJson: swapJson{
				Side:      string(q.Swap.Side),
				FromAsset: q.Swap.FromAsset,
				ToAsset:   q.Swap.ToAsset,
				Amount:    strconv.FormatUint(q.Swap.Amount, 10),
			},
		}
		if q.QuotedOutAmount != nil {
			s := strconv.FormatUint(*q.QuotedOutAmount, 10)
			out.QuotedOutAmount = &s
		}
		swaps = append(swaps, out)
	}

	c.JSON(200, gin.H{
		"plan":  planToJson(response.Plan),
		"swaps": swaps,
	})
}
