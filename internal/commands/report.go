package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/myfi-dev/myfi/internal/coa"
	"github.com/myfi-dev/myfi/internal/config"
	"github.com/myfi-dev/myfi/internal/ledger"
	"github.com/myfi-dev/myfi/internal/report"
)

func newReportCommand() *cobra.Command {
	var (
		configPath   string
		accountsPath string
		fromStr      string
		toStr        string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Replay the policy, close the books at the horizon, and print the balance sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := time.Parse(dateFormat, fromStr)
			if err != nil {
				return fmt.Errorf("parsing --from: %w", err)
			}
			horizon, err := time.Parse(dateFormat, toStr)
			if err != nil {
				return fmt.Errorf("parsing --to: %w", err)
			}
			return runReport(configPath, accountsPath, from, horizon)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "myfi.yaml", "config file")
	cmd.Flags().StringVar(&accountsPath, "accounts", "accounts.csv", "chart of accounts CSV")
	cmd.Flags().StringVar(&fromStr, "from", "", "simulation start date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("from")
	cmd.Flags().StringVar(&toStr, "to", "", "balance sheet date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runReport(configPath, accountsPath string, from, horizon time.Time) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	chart, err := loadChart(accountsPath)
	if err != nil {
		return err
	}
	s, err := buildScheduler(cfg, from, horizon)
	if err != nil {
		return err
	}

	led := ledger.New(chart, nil)
	for tick := range s.Run(led, horizon) {
		if tick.Err != nil {
			return fmt.Errorf("source failed at %s: %w", tick.Date.Format(dateFormat), tick.Err)
		}
	}

	if _, err := led.Close(horizon, coa.IncomeSummary); err != nil {
		return fmt.Errorf("closing the books: %w", err)
	}
	return report.WriteBalanceSheet(os.Stdout, led)
}
