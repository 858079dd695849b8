package domain

import "errors"

// Engine error kinds. Every failed operation aborts wholesale and surfaces
// one of these; callers match with errors.Is and retry safely.
var (
	ErrInvalidAllocationPercentage = errors.New("invalid allocation percentage")
	ErrAllocationOverflow          = errors.New("allocation overflow")
	ErrInvalidTokenMint            = errors.New("invalid token mint")
	ErrInvalidTokenSymbol          = errors.New("invalid token symbol")
	ErrInvalidAmount               = errors.New("invalid amount")
	ErrInsufficientBalance         = errors.New("insufficient balance")
	ErrMathOverflow                = errors.New("math overflow")
	ErrRebalanceInProgress         = errors.New("rebalance in progress")
	ErrRebalanceTooFrequent        = errors.New("rebalance too frequent")
	ErrNoRebalanceNeeded           = errors.New("no rebalance needed")
	ErrUnauthorized                = errors.New("unauthorized")
	ErrPortfolioNotFound           = errors.New("portfolio not found")
	ErrPortfolioExists             = errors.New("portfolio already exists")
)
