package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/myfi-dev/myfi/internal/coa"
	"github.com/myfi-dev/myfi/internal/config"
	"github.com/myfi-dev/myfi/internal/ledger"
	"github.com/myfi-dev/myfi/internal/report"
	"github.com/myfi-dev/myfi/internal/runlog"
)

func newRunCommand() *cobra.Command {
	var (
		configPath   string
		accountsPath string
		fromStr      string
		toStr        string
		tracePath    string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Replay the recurring financial policy through calendar time",
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
			return runSimulation(configPath, accountsPath, tracePath, from, horizon, verbose)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "myfi.yaml", "config file")
	cmd.Flags().StringVar(&accountsPath, "accounts", "accounts.csv", "chart of accounts CSV")
	cmd.Flags().StringVar(&fromStr, "from", "", "simulation start date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("from")
	cmd.Flags().StringVar(&toStr, "to", "", "simulation horizon YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("to")
	cmd.Flags().StringVar(&tracePath, "trace", "", "append scheduler ticks to this CSV file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every scheduler tick")

	return cmd
}

func runSimulation(configPath, accountsPath, tracePath string, from, horizon time.Time, verbose bool) error {
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

	log := zerolog.Nop()
	if verbose {
		log = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	s.SetLogger(log)

	led := ledger.New(chart, nil)

	var trace []runlog.Entry
	for tick := range s.Run(led, horizon) {
		if tracePath != "" {
			entry := runlog.Entry{
				Date:         tick.Date,
				Source:       fmt.Sprintf("%T", tick.Source),
				Note:         tick.Outcome.Note,
				Transactions: len(tick.Outcome.Transactions),
			}
			if tick.Err != nil {
				entry.Err = tick.Err.Error()
			}
			trace = append(trace, entry)
		}
		if tick.Err != nil {
			err = fmt.Errorf("source failed at %s: %w", tick.Date.Format(dateFormat), tick.Err)
			break
		}
	}

	if tracePath != "" {
		if logErr := runlog.Append(tracePath, trace); logErr != nil {
			err = errors.Join(err, logErr)
		}
	}
	if err != nil {
		return err
	}

	if err := report.WriteJournal(os.Stdout, led); err != nil {
		return fmt.Errorf("writing journal: %w", err)
	}
	fmt.Println()
	if err := report.WriteBalances(os.Stdout, led); err != nil {
		return fmt.Errorf("writing balances: %w", err)
	}
	return nil
}

func loadChart(path string) (*coa.Chart, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return coa.DefaultChart(), nil
	}
	chart, skipped, err := coa.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "skipped %d chart rows with unknown category codes\n", skipped)
	}
	return chart, nil
}
