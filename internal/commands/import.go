package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/myfi-dev/myfi/internal/coa"
	"github.com/myfi-dev/myfi/internal/importer"
	"github.com/myfi-dev/myfi/internal/ledger"
	"github.com/myfi-dev/myfi/internal/report"
	"github.com/myfi-dev/myfi/internal/statement"
)

func newImportCommand() *cobra.Command {
	var (
		archivePath  string
		accountsPath string
		format       string
		rtn          string
		number       string
		acctType     string
	)

	cmd := &cobra.Command{
		Use:   "import <statement.csv>",
		Short: "Archive a bank statement and preview its ledger postings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(args[0], archivePath, accountsPath, format, rtn, number, acctType)
		},
	}

	cmd.Flags().StringVar(&archivePath, "archive", "archive/statements.db", "statement archive database")
	cmd.Flags().StringVar(&accountsPath, "accounts", "accounts.csv", "chart of accounts CSV")
	cmd.Flags().StringVar(&format, "format", "generic", "statement CSV format")
	cmd.Flags().StringVar(&rtn, "rtn", "", "routing transit number")
	cmd.Flags().StringVar(&number, "number", "", "institution account number (required)")
	_ = cmd.MarkFlagRequired("number")
	cmd.Flags().StringVar(&acctType, "type", "checking", "institution account type")

	return cmd
}

func runImport(src, archivePath, accountsPath, format, rtn, number, acctType string) error {
	reg := importer.DefaultRegistry()
	parser := reg.Get(format)
	if parser == nil {
		return fmt.Errorf("unknown statement format %q", format)
	}

	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	entries, err := parser.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing statement: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("statement %s has no entries", src)
	}

	st := buildStatement(entries, rtn, number, acctType)

	store, err := statement.Open(archivePath)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Save(st)
	if err != nil {
		return fmt.Errorf("archiving statement: %w", err)
	}
	fmt.Printf("archived statement %d: %d entries, %s through %s\n",
		id, len(st.Entries), st.Start.Format(dateFormat), st.End.Format(dateFormat))

	// Preview how the statement books into a fresh ledger.
	chart, err := loadChart(accountsPath)
	if err != nil {
		return err
	}
	led := ledger.New(chart, nil)
	if _, err := statement.Post(led, st, statement.PostKeys{
		Bank:    coa.Cash,
		Income:  coa.OtherIncome,
		Expense: coa.Uncategorized,
	}); err != nil {
		return fmt.Errorf("booking statement: %w", err)
	}
	return report.WriteBalances(os.Stdout, led)
}

func buildStatement(entries []statement.Entry, rtn, number, acctType string) statement.Statement {
	sorted := append([]statement.Entry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Posted.Before(sorted[j].Posted) })

	balance := decimal.Zero
	for _, e := range sorted {
		balance = balance.Add(e.Amount)
	}

	return statement.Statement{
		RTN:       rtn,
		Number:    number,
		AcctType:  acctType,
		Start:     sorted[0].Posted,
		End:       sorted[len(sorted)-1].Posted,
		Balance:   balance,
		Available: balance,
		Entries:   sorted,
	}
}
