package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/candidate-report/internal/config"
	"github.com/jonathan/candidate-report/internal/fetch"
	"github.com/jonathan/candidate-report/internal/ingestion"
	"github.com/jonathan/candidate-report/internal/observability"
	"github.com/jonathan/candidate-report/internal/pdf"
	"github.com/jonathan/candidate-report/internal/report"
	"github.com/jonathan/candidate-report/internal/scoring"
	"github.com/jonathan/candidate-report/internal/types"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate the candidate assessment PDF report",
	Long: `Reads a ranked candidate list and a job record, aggregates weighted category
scores, and compiles the multi-page PDF report: title block, skill comparison
matrices, per-category score tables, balanced totals, and per-candidate detail
pages.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runGenerateCmd,
}

var (
	genConfigPath  string
	genCandidates  string
	genJob         string
	genOutput      string
	genLogoURL     string
	genLogoLabel   string
	genLogoTimeout int
	genSkillKind   string
	genVerbose     bool
)

func init() {
	// Config file flag (processed first)
	generateCommand.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCommand.Flags().StringVarP(&genCandidates, "candidates", "c", "", "Path to ranked candidate records JSON file")
	generateCommand.Flags().StringVarP(&genJob, "job", "j", "", "Path to job record JSON file")
	generateCommand.Flags().StringVarP(&genOutput, "output", "o", "", "Output PDF path (defaults to a name derived from the job title)")
	generateCommand.Flags().StringVar(&genLogoURL, "logo-url", "", "Header logo image URL (best effort; text fallback on failure)")
	generateCommand.Flags().StringVar(&genLogoLabel, "logo-label", "", "Header text shown when no logo image is available")
	generateCommand.Flags().IntVar(&genLogoTimeout, "logo-timeout", 0, "Logo fetch timeout in seconds")
	generateCommand.Flags().StringVar(&genSkillKind, "skill-kind", "", "Limit skill matrices to one kind: soft or technical")
	generateCommand.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(generateCommand)
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if genConfigPath != "" {
		loadedCfg, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if genVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", genConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("candidates") {
		cfg.Candidates = genCandidates
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = genJob
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = genOutput
	}
	if cmd.Flags().Changed("logo-url") {
		cfg.LogoURL = genLogoURL
	}
	if cmd.Flags().Changed("logo-label") {
		cfg.LogoLabel = genLogoLabel
	}
	if cmd.Flags().Changed("logo-timeout") {
		cfg.LogoTimeout = genLogoTimeout
	}
	if cmd.Flags().Changed("skill-kind") {
		cfg.SkillKind = genSkillKind
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		LogoLabel:   report.DefaultLogoLabel,
		LogoTimeout: int(fetch.DefaultLogoTimeout / time.Second),
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields and merged values
	if cfg.Candidates == "" {
		return fmt.Errorf("--candidates is required (via flag or config)")
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job is required (via flag or config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	return generateReport(ctx, cfg)
}

func generateReport(ctx context.Context, cfg config.Config) error {
	// Load both input documents and the logo concurrently; the logo is best
	// effort and never fails the run.
	var (
		candidates []types.CandidateRecord
		job        *types.JobRecord
		logo       []byte
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		candidates, err = ingestion.LoadCandidates(cfg.Candidates)
		return err
	})
	g.Go(func() error {
		var err error
		job, err = ingestion.LoadJob(cfg.Job)
		return err
	})
	g.Go(func() error {
		logo = fetch.LogoOrFallback(gctx, cfg.LogoURL, time.Duration(cfg.LogoTimeout)*time.Second, cfg.Verbose)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		selected := scoring.SelectCategories(job.Prompt)
		printer.PrintJobRecord(job, selected)
		printer.PrintScoreboard(candidates, selected)
		printer.PrintChunkPlan(len(candidates), report.SkillMatrixChunkSize, report.ScoreTableChunkSize)
	}

	doc := pdf.NewDocument()
	artifact, err := report.GenerateReport(doc, candidates, *job, report.Options{
		SkillKind: types.SkillKind(cfg.SkillKind),
		Logo:      logo,
		LogoLabel: cfg.LogoLabel,
		Verbose:   cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("report generation failed: %w", err)
	}

	outPath := cfg.Output
	if outPath == "" {
		outPath = artifact.Filename
	}
	if err := os.WriteFile(outPath, artifact.Bytes, 0o644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", outPath, err)
	}

	fmt.Fprintf(os.Stdout, "Report written to %s (%d candidates, %d bytes, artifact %s)\n",
		outPath, len(candidates), len(artifact.Bytes), artifact.ID)
	return nil
}
