package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-report/internal/ingestion"
)

var validateCommand = &cobra.Command{
	Use:   "validate",
	Short: "Validate candidate and job input files without generating a report",
	Long: `Runs the candidate list and job record files through the same schema and
semantic validation used by generate, reporting any problems without producing
a PDF. Useful for checking upstream exports in CI.`,
	RunE: runValidateCmd,
}

var (
	valCandidates string
	valJob        string
)

func init() {
	validateCommand.Flags().StringVarP(&valCandidates, "candidates", "c", "", "Path to ranked candidate records JSON file")
	validateCommand.Flags().StringVarP(&valJob, "job", "j", "", "Path to job record JSON file")

	rootCmd.AddCommand(validateCommand)
}

func runValidateCmd(_ *cobra.Command, _ []string) error {
	if valCandidates == "" && valJob == "" {
		return fmt.Errorf("provide --candidates, --job, or both")
	}

	failed := false

	if valCandidates != "" {
		candidates, err := ingestion.LoadCandidates(valCandidates)
		if err != nil {
			fmt.Fprintf(os.Stderr, "candidates: INVALID\n%v\n", err)
			failed = true
		} else {
			fmt.Fprintf(os.Stdout, "candidates: OK (%d records)\n", len(candidates))
		}
	}

	if valJob != "" {
		job, err := ingestion.LoadJob(valJob)
		if err != nil {
			fmt.Fprintf(os.Stderr, "job: INVALID\n%v\n", err)
			failed = true
		} else {
			fmt.Fprintf(os.Stdout, "job: OK (%s)\n", job.JobTitle)
		}
	}

	if failed {
		return fmt.Errorf("validation failed")
	}
	return nil
}
