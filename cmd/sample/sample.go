// Package sample handles the demo-dataset command.
package sample

import (
	"encoding/json"
	"fmt"
	"time"

	"fincoach/cmd/root"
	"fincoach/internal/advisor"
	sampledata "fincoach/internal/sample"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	asJSON  bool
	analyze bool
)

// Cmd represents the sample command.
var Cmd = &cobra.Command{
	Use:   "sample",
	Short: "Show the built-in demo dataset",
	Long: `Generate one month of demo transactions and print the resulting
summary, so the analyses can be explored without uploading a document.`,
	RunE: sampleFunc,
}

func init() {
	Cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full dataset as JSON")
	Cmd.Flags().BoolVar(&analyze, "analyze", false, "Run the coaching analyses on the demo data")
}

func sampleFunc(cmd *cobra.Command, args []string) error {
	ds := sampledata.Generate(time.Now())

	if asJSON {
		data, err := json.MarshalIndent(ds, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Scenario: %s (%s)\n", ds.Info.Scenario, ds.Info.DateRange)
	root.PrintSummary(&ds.FinancialSummary)

	if analyze {
		report := advisor.New(root.Log).BuildReport(&ds.FinancialSummary, "", decimal.Zero)
		fmt.Println()
		fmt.Println(report.Render())
	}
	return nil
}
