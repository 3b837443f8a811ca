// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/candidate-report/internal/scoring"
	"github.com/jonathan/candidate-report/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobRecord outputs a human-readable summary of the job and the category
// selection its prompt produced.
func (p *Printer) PrintJobRecord(job *types.JobRecord, selected []scoring.Category) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:     %s\n", job.JobTitle))
	if len(job.Departments) > 0 {
		sb.WriteString(fmt.Sprintf("Depts:    %s\n", strings.Join(job.Departments, ", ")))
	}
	sb.WriteString("\n")

	sb.WriteString("Selected categories:\n")
	for _, cat := range selected {
		sb.WriteString(fmt.Sprintf("  • %s\n", cat.Name))
	}

	if job.Prompt != "" {
		prompt := job.Prompt
		if len(prompt) > 45 {
			prompt = prompt[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nPrompt: %s", prompt))
	}

	p.printBox("JOB RECORD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreboard outputs the top candidates with balanced scores and grades.
func (p *Printer) PrintScoreboard(candidates []types.CandidateRecord, selected []scoring.Category) {
	if len(candidates) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates: %d\n\n", len(candidates)))

	count := min(len(candidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := candidates[i]
		raw := scoring.RawScores(c.RankScore.SubScores)
		final := scoring.FinalBalancedScore(raw, selected)
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, c.CandidateID))
		sb.WriteString(fmt.Sprintf("    Balanced: %.2f (Grade %s)", final, scoring.GradeOf(final)))
		if c.RankScore.HasFinal {
			sb.WriteString(fmt.Sprintf("  Rank: %.2f", c.RankScore.FinalScore))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(candidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(candidates)-maxItemsToShow))
	}

	p.printBox("TOP CANDIDATES", sb.String())
}

// PrintChunkPlan outputs how the candidate list will be partitioned for the
// wide and tall report tables.
func (p *Printer) PrintChunkPlan(candidateCount, matrixChunkSize, tableChunkSize int) {
	if candidateCount == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates:        %d\n", candidateCount))
	sb.WriteString(fmt.Sprintf("Matrix chunks:     %d (max %d columns each)\n",
		chunkCount(candidateCount, matrixChunkSize), matrixChunkSize))
	sb.WriteString(fmt.Sprintf("Score-table chunks: %d (max %d rows each)",
		chunkCount(candidateCount, tableChunkSize), tableChunkSize))

	p.printBox("CHUNK PLAN", sb.String())
}

func chunkCount(n, size int) int {
	if size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}
