package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"stablefolio/cmd"
	"stablefolio/internal/domain"

	"github.com/gocarina/gocsv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func parseTargets(args []string) ([]domain.AllocationTarget, error) {
	targets := []domain.AllocationTarget{}
	for _, arg := range args {
		asset, bpsStr, found := strings.Cut(arg, "=")
		if !found || asset == "" {
			return nil, fmt.Errorf("expected asset=bps, got %q", arg)
		}
		bps, err := strconv.ParseUint(bpsStr, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid bps in %q: %w", arg, err)
		}
		targets = append(targets, domain.AllocationTarget{
			AssetID:             asset,
			TargetPercentageBps: uint32(bps),
		})
	}
	return targets, nil
}

type snapshotRow struct {
	Timestamp     time.Time `csv:"timestamp"`
	TotalValue    uint64    `csv:"total_value"`
	GrowthRateBps int32     `csv:"growth_rate_bps"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "stablefolio-script",
		Short: "operational scripts for the portfolio engine",
	}

	exportCmd := &cobra.Command{
		Use:   "export-history [owner]",
		Short: "dump an owner's performance snapshots to csv",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			owner := args[0]

			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			snapshots, err := handler.PortfolioService.GetPerformanceHistory(context.Background(), owner, owner)
			if err != nil {
				return err
			}

			rows := []snapshotRow{}
			for _, s := range snapshots {
				rows = append(rows, snapshotRow{
					Timestamp:     s.Timestamp,
					TotalValue:    s.TotalValue,
					GrowthRateBps: s.GrowthRateBps,
				})
			}

			out, err := os.Create(fmt.Sprintf("history_%s.csv", owner))
			if err != nil {
				return err
			}
			defer out.Close()

			return gocsv.MarshalFile(&rows, out)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show-portfolio [owner]",
		Short: "print an owner's portfolio record",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			owner := args[0]

			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			account, err := handler.PortfolioService.GetPortfolio(context.Background(), owner, owner)
			if err != nil {
				return err
			}

			fmt.Printf("portfolio %s (owner %s)\n", account.ID, account.Owner)
			fmt.Printf("total value: %d, rebalancing: %v\n", account.TotalValue, account.IsRebalancing)
			for _, a := range account.Allocations {
				fmt.Printf("  %-10s %-44s target %5d bps, held %d, apy %d bps\n",
					a.Symbol, a.AssetID, a.TargetPercentageBps, a.CurrentAmount, a.APYBps)
			}
			return nil
		},
	}

	quoteCmd := &cobra.Command{
		Use:   "quote-rebalance [owner] [asset=bps ...]",
		Short: "plan a rebalance against the given targets and price each leg",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			owner := args[0]

			targets, err := parseTargets(args[1:])
			if err != nil {
				return err
			}

			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			resp, err := handler.RebalancerHandler.QuotePlan(context.Background(), owner, owner, targets)
			if err != nil {
				return err
			}

			fmt.Printf("run %s: %d swap(s)\n", resp.Plan.RunID, len(resp.Swaps))
			for _, q := range resp.Swaps {
				priced := "unquoted"
				if q.QuotedOutAmount != nil {
					priced = fmt.Sprintf("out %d", *q.QuotedOutAmount)
				}
				fmt.Printf("  %-4s %s -> %s amount %d (%s)\n",
					q.Swap.Side, q.Swap.FromAsset, q.Swap.ToAsset, q.Swap.Amount, priced)
			}
			return nil
		},
	}

	rootCmd.AddCommand(exportCmd, showCmd, quoteCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
