// Package root contains the root command for the application.
package root

import (
	"fmt"
	"sort"

	"fincoach/internal/categorizer"
	"fincoach/internal/config"
	"fincoach/internal/logging"
	"fincoach/internal/models"
	"fincoach/internal/store"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands, reconfigured from
	// config in PersistentPreRunE.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the loaded application configuration, available to all
	// subcommands after PersistentPreRunE.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "fincoach",
		Short: "Extract transactions from financial documents and get coaching advice.",
		Long: `fincoach turns bank statements and exports (CSV, Excel, PDF, Word, text)
into normalized transactions, categorizes them, and runs rule-based
debt, savings and budget analyses over the result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			if logFormat != "" {
				cfg.Log.Format = logFormat
			}
			if rulesFile != "" {
				cfg.Categories.RulesFile = rulesFile
			}
			Cfg = cfg
			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			return nil
		},
	}

	logLevel  string
	logFormat string
	rulesFile string
)

// Init registers the persistent flags shared by all subcommands.
func Init() {
	Cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json)")
	Cmd.PersistentFlags().StringVar(&rulesFile, "rules", "", "Path to the category rules YAML file")
}

// NewCategorizer builds a categorizer from the configured rules file,
// falling back to the built-in table when no file is found.
func NewCategorizer() (*categorizer.Categorizer, error) {
	rs := store.NewRuleStore(Cfg.Categories.RulesFile, Log)
	rules, err := rs.LoadRules()
	if err != nil {
		Log.WithError(err).Warn("Falling back to built-in category rules")
		return categorizer.NewDefault(Log), nil
	}
	if len(rules) == 0 {
		return categorizer.NewDefault(Log), nil
	}
	return categorizer.New(rules, Log), nil
}

// PrintSummary writes a human-readable digest of a processed document.
func PrintSummary(s *models.FinancialSummary) {
	fmt.Printf("Transactions: %d (rows: %d, skipped: %d)\n",
		len(s.Transactions),
		s.ProcessingInfo.RowsProcessed,
		s.ProcessingInfo.SkippedRows,
	)
	fmt.Printf("Total income:   %s\n", s.TotalIncome.StringFixed(2))
	fmt.Printf("Total expenses: %s\n", s.TotalExpenses.StringFixed(2))
	fmt.Printf("Net cash flow:  %s\n", s.NetCashFlow().StringFixed(2))
	if len(s.Categories) > 0 {
		fmt.Println("Categories:")
		for _, name := range sortedCategoryNames(s) {
			fmt.Printf("  %-20s %s\n", name, s.Categories[name].StringFixed(2))
		}
	}
	for _, note := range s.ProcessingInfo.Notes {
		fmt.Printf("Note: %s\n", note)
	}
}

func sortedCategoryNames(s *models.FinancialSummary) []string {
	names := make([]string, 0, len(s.Categories))
	for name := range s.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
