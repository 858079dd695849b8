package calculator

import (
	"fmt"

	"stablefolio/internal/domain"
	"stablefolio/internal/util"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type CalculateMetricsResult struct {
	// value-weighted average of the reported allocation yields
	ProjectedAPYBps decimal.Decimal
	// per-snapshot growth, in bps
	AverageGrowthBps float64
	GrowthStdevBps   float64
	SnapshotCount    int
}

// CalculateMetrics summarizes a portfolio from its allocation yields and its
// snapshot history. Growth statistics need at least two snapshots; with
// fewer, they stay zero.
func CalculateMetrics(account *domain.PortfolioAccount) (*CalculateMetricsResult, error) {
	result := &CalculateMetricsResult{
		ProjectedAPYBps: decimal.Zero,
		SnapshotCount:   len(account.PerformanceHistory),
	}

	if account.TotalValue > 0 {
		weighted := decimal.Zero
		for _, a := range account.Allocations {
			weighted = weighted.Add(
				decimal.NewFromInt(int64(a.APYBps)).Mul(util.DecimalFromUint64(a.CurrentAmount)),
			)
		}
		result.ProjectedAPYBps = weighted.Div(util.DecimalFromUint64(account.TotalValue))
	}

	if len(account.PerformanceHistory) < 2 {
		return result, nil
	}

	// the first snapshot carries no growth; rates are relative to the
	// previous entry
	growthRates := []float64{}
	for _, s := range account.PerformanceHistory[1:] {
		growthRates = append(growthRates, float64(s.GrowthRateBps))
	}

	mean, err := stats.Mean(growthRates)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean growth: %w", err)
	}
	result.AverageGrowthBps = mean

	if len(growthRates) >= 2 {
		stdev, err := stats.StandardDeviationSample(growthRates)
		if err != nil {
			return nil, fmt.Errorf("failed to compute growth stdev: %w", err)
		}
		result.GrowthStdevBps = stdev
	}

	return result, nil
}
