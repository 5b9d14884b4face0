package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Ju21000/planing-ia-2/core/roster"
	"github.com/Ju21000/planing-ia-2/pkg/input"
)

var fairnessCmd = &cobra.Command{
	Use:   "fairness",
	Short: "Print phone-duty fairness ratios without writing outputs",
	RunE:  fairnessReport,
}

func init() {
	rootCmd.AddCommand(fairnessCmd)
}

func fairnessReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	raw, err := input.ReadFile(cfg.Input.Path)
	if err != nil {
		return err
	}
	processor, err := roster.NewProcessor(cfg.Roster, nil, nil, nil)
	if err != nil {
		return err
	}
	_, report := processor.Process(raw)
	rep := report.Fairness
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s, week %s, %d persons\n", report.RunID, report.WeekStart, report.Persons)
	persons := make([]string, 0, len(rep.Ratios))
	for p := range rep.Ratios {
		persons = append(persons, p)
	}
	sort.Strings(persons)
	for _, p := range persons {
		fmt.Fprintf(out, "  %-12s %.4f\n", p, rep.Ratios[p])
	}
	fmt.Fprintf(out, "mean %.4f, stddev %.4f, min %.4f, max %.4f\n", rep.Mean, rep.StdDev, rep.Min, rep.Max)
	return nil
}
