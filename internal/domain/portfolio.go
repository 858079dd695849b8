package domain

import (
	"math"
	"math/bits"
	"time"

	"github.com/google/uuid"
)

const (
	MaxAllocations          = 10
	MaxSymbolLength         = 32
	MaxPerformanceSnapshots = 100

	// basis points: 10000 = 100%
	FullAllocationBps = 10000
	// sanity ceiling for reported yields (1000%)
	MaxAPYBps = 100000

	DefaultDriftThresholdBps = 500
	DefaultRebalanceCooldown = 24 * time.Hour
)

// portfolioNamespace seeds deterministic portfolio ids. The record address is
// computed from the owner key, never looked up.
var portfolioNamespace = uuid.MustParse("b3a9c9d2-6c1f-4a8e-9f03-7f52ce1a8e11")

func DerivePortfolioID(owner string) uuid.UUID {
	return uuid.NewSHA1(portfolioNamespace, []byte(DerivationSeed(owner)))
}

func DerivationSeed(owner string) string {
	return "portfolio:" + owner
}

type AllocationEntry struct {
	AssetID             string
	Symbol              string
	TargetPercentageBps uint32
	CurrentAmount       uint64
	APYBps              uint32
	// zero value means never updated
	LastYieldUpdate time.Time
}

type PerformanceSnapshot struct {
	Timestamp     time.Time
	TotalValue    uint64
	GrowthRateBps int32
}

// PortfolioAccount is the single authoritative record per owner. Mutations
// happen in memory and are persisted in one transaction; TotalValue must
// equal the sum of CurrentAmount over Allocations at every commit.
type PortfolioAccount struct {
	ID                 uuid.UUID
	Owner              string
	DerivationSeed     string
	TotalValue         uint64
	IsRebalancing      bool
	LastRebalance      time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Allocations        []AllocationEntry
	PerformanceHistory []PerformanceSnapshot
}

func NewPortfolioAccount(owner string, now time.Time) *PortfolioAccount {
	return &PortfolioAccount{
		ID:             DerivePortfolioID(owner),
		Owner:          owner,
		DerivationSeed: DerivationSeed(owner),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (p *PortfolioAccount) FindAllocation(assetID string) *AllocationEntry {
	for i := range p.Allocations {
		if p.Allocations[i].AssetID == assetID {
			return &p.Allocations[i]
		}
	}
	return nil
}

func (p *PortfolioAccount) FindAllocationBySymbol(symbol string) *AllocationEntry {
	for i := range p.Allocations {
		if p.Allocations[i].Symbol == symbol {
			return &p.Allocations[i]
		}
	}
	return nil
}

// CalculateTotalValue re-derives total value from the allocation amounts with
// checked addition.
func (p PortfolioAccount) CalculateTotalValue() (uint64, error) {
	var total uint64
	for _, a := range p.Allocations {
		next, err := CheckedAdd(total, a.CurrentAmount)
		if err != nil {
			return 0, err
		}
		total = next
	}
	return total, nil
}

func (p PortfolioAccount) TargetPercentageSum() uint64 {
	var sum uint64
	for _, a := range p.Allocations {
		sum += uint64(a.TargetPercentageBps)
	}
	return sum
}

// CurrentPercentageBps returns the share of total value held by the entry,
// 0 when the portfolio is empty.
func (p PortfolioAccount) CurrentPercentageBps(a AllocationEntry) uint32 {
	return PercentageOf(a.CurrentAmount, p.TotalValue)
}

// NeedsRebalancing reports whether any requested target drifts more than
// thresholdBps from the currently held share. An asset missing from the table
// counts as drifted once its target alone exceeds the threshold.
func (p *PortfolioAccount) NeedsRebalancing(targets []AllocationTarget, thresholdBps uint32) bool {
	if p.TotalValue == 0 {
		return false
	}
	for _, target := range targets {
		current := p.FindAllocation(target.AssetID)
		if current == nil {
			if target.TargetPercentageBps > thresholdBps {
				return true
			}
			continue
		}
		currentBps := p.CurrentPercentageBps(*current)
		var diff uint32
		if currentBps > target.TargetPercentageBps {
			diff = currentBps - target.TargetPercentageBps
		} else {
			diff = target.TargetPercentageBps - currentBps
		}
		if diff > thresholdBps {
			return true
		}
	}
	return false
}

// AppendSnapshot records the current total value with its growth rate over
// the previous snapshot, evicting the oldest entry once the cap is hit.
func (p *PortfolioAccount) AppendSnapshot(now time.Time) {
	var growth int32
	if n := len(p.PerformanceHistory); n > 0 {
		growth = growthRateBps(p.PerformanceHistory[n-1].TotalValue, p.TotalValue)
	}
	if len(p.PerformanceHistory) >= MaxPerformanceSnapshots {
		p.PerformanceHistory = p.PerformanceHistory[1:]
	}
	p.PerformanceHistory = append(p.PerformanceHistory, PerformanceSnapshot{
		Timestamp:     now,
		TotalValue:    p.TotalValue,
		GrowthRateBps: growth,
	})
}

func (p PortfolioAccount) DeepCopy() *PortfolioAccount {
	out := p
	out.Allocations = make([]AllocationEntry, len(p.Allocations))
	copy(out.Allocations, p.Allocations)
	out.PerformanceHistory = make([]PerformanceSnapshot, len(p.PerformanceHistory))
	copy(out.PerformanceHistory, p.PerformanceHistory)
	return &out
}

func CheckedAdd(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, ErrMathOverflow
	}
	return a + b, nil
}

// MulDivBps computes floor(amount * bps / 10000) with 128-bit widening.
// bps must not exceed FullAllocationBps.
func MulDivBps(amount uint64, bps uint32) uint64 {
	hi, lo := bits.Mul64(amount, uint64(bps))
	q, _ := bits.Div64(hi, lo, FullAllocationBps)
	return q
}

// PercentageOf computes part's share of total in basis points, 0 when total
// is 0. part must not exceed total.
func PercentageOf(part, total uint64) uint32 {
	if total == 0 {
		return 0
	}
	hi, lo := bits.Mul64(part, FullAllocationBps)
	q, _ := bits.Div64(hi, lo, total)
	return uint32(q)
}

// growth is truncated toward zero and clamped to [-10000, 10000]
func growthRateBps(prev, cur uint64) int32 {
	if prev == 0 {
		prev = 1
	}
	if cur == prev {
		return 0
	}
	if cur > prev {
		diff := cur - prev
		if diff >= prev {
			return FullAllocationBps
		}
		hi, lo := bits.Mul64(diff, FullAllocationBps)
		q, _ := bits.Div64(hi, lo, prev)
		return int32(q)
	}
	diff := prev - cur
	if diff >= prev {
		return -FullAllocationBps
	}
	hi, lo := bits.Mul64(diff, FullAllocationBps)
	q, _ := bits.Div64(hi, lo, prev)
	return -int32(q)
}
