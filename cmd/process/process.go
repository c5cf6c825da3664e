// Package process handles the document-to-summary conversion command.
package process

import (
	"fmt"
	"strings"

	"fincoach/cmd/root"
	"fincoach/internal/advisor"
	"fincoach/internal/export"
	"fincoach/internal/processor"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	inputFile    string
	outputCSV    string
	outputJSON   string
	analyze      bool
	goals        string
	extraPayment string
)

// Cmd represents the process command.
var Cmd = &cobra.Command{
	Use:   "process",
	Short: "Extract transactions from a financial document",
	Long: `Process a bank statement or export (CSV, Excel, PDF, Word, text),
normalize and categorize its transactions, and print a summary.
Optionally export the result or run the coaching analyses on it.`,
	RunE: processFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input document")
	Cmd.Flags().StringVar(&outputCSV, "csv", "", "Write normalized transactions to this CSV file")
	Cmd.Flags().StringVar(&outputJSON, "json", "", "Write the full summary to this JSON file")
	Cmd.Flags().BoolVar(&analyze, "analyze", false, "Run debt, savings and budget analyses on the result")
	Cmd.Flags().StringVar(&goals, "goals", "", "Financial goals to factor into the savings strategy")
	Cmd.Flags().StringVar(&extraPayment, "extra-payment", "0", "Extra monthly amount available for debt payoff")
	_ = Cmd.MarkFlagRequired("input")
}

func processFunc(cmd *cobra.Command, args []string) error {
	cat, err := root.NewCategorizer()
	if err != nil {
		return err
	}

	proc := processor.New(cat, root.Log)
	result := proc.ProcessDocument(inputFile)
	if result.IsError() {
		failure := result.Failure
		fmt.Printf("Error: %s\n", failure.Message)
		for _, hint := range failure.Suggestions {
			fmt.Printf("  - %s\n", hint)
		}
		return fmt.Errorf("processing failed: %s", failure.Kind)
	}

	summary := result.Summary
	root.PrintSummary(summary)

	exporter := export.New(root.Log)
	if outputCSV != "" {
		if err := exporter.WriteCSV(outputCSV, summary); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", outputCSV)
	}
	if outputJSON != "" {
		if err := exporter.WriteJSON(outputJSON, summary); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", outputJSON)
	}

	if analyze {
		extra, err := decimal.NewFromString(strings.TrimSpace(extraPayment))
		if err != nil || extra.IsNegative() {
			return fmt.Errorf("invalid --extra-payment value %q", extraPayment)
		}
		report := advisor.New(root.Log).BuildReport(summary, goals, extra)
		fmt.Println()
		fmt.Println(report.Render())
	}
	return nil
}
