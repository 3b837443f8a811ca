package report

import (
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/candidate-report/internal/chunk"
	"github.com/jonathan/candidate-report/internal/scoring"
	"github.com/jonathan/candidate-report/internal/types"
)

// logoImageName is the surface registration key for the header logo.
const logoImageName = "header_logo"

// DefaultLogoLabel is the header text used when no logo image is available.
const DefaultLogoLabel = "Talent Insights"

var (
	reportTitleStyle = Style{Size: 18, Bold: true}
	tableTitleStyle  = Style{Size: 11, Bold: true}
	summaryStyle     = Style{Size: 10}
	mutedStyle       = Style{Size: 9, Gray: true}
)

// Options tune a single report generation run.
type Options struct {
	// SkillKind limits the comparison matrices to one skill kind. When empty
	// (or invalid) both soft and technical matrices are rendered.
	SkillKind types.SkillKind

	// Logo is the pre-fetched header logo image, already resolved before any
	// page is drawn. Nil degrades to the LogoLabel text fallback.
	Logo []byte

	// LogoLabel is the text fallback drawn when no logo image is available.
	LogoLabel string

	Verbose bool
}

// GenerateReport compiles the full multi-page report for the given candidates
// and job in one linear pass and returns the finished document artifact.
// It returns ErrNoCandidates before any page is created when the candidate
// list is empty, and a *GenerationError when the document surface fails; no
// partial artifact is ever returned.
func GenerateReport(s Surface, candidates []types.CandidateRecord, job types.JobRecord, opts Options) (*types.DocumentArtifact, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	selected := scoring.SelectCategories(job.Prompt)
	if opts.Verbose {
		log.Printf("[REPORT] generating report for %q: %d candidates, categories %s",
			job.JobTitle, len(candidates), strings.Join(categoryNames(selected), ", "))
	}

	// Layout order follows the externally supplied ranking score.
	ranked := make([]types.CandidateRecord, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RankScore.FinalScore > ranked[j].RankScore.FinalScore
	})

	// The logo decision is made once, up front: header rendering runs
	// synchronously many times after this point.
	logoName := ""
	if len(opts.Logo) > 0 {
		if err := s.RegisterImage(logoImageName, opts.Logo); err != nil {
			log.Printf("[REPORT] warning: logo unusable, using text fallback: %v", err)
		} else {
			logoName = logoImageName
		}
	}
	logoLabel := opts.LogoLabel
	if logoLabel == "" {
		logoLabel = DefaultLogoLabel
	}

	p := NewPager(s, job.JobTitle, logoName, logoLabel, opts.Verbose)
	p.Start()

	if err := drawTitleBlock(p, s, job, len(ranked), selected, logoName); err != nil {
		return nil, err
	}
	if err := drawSkillMatrices(p, ranked, opts); err != nil {
		return nil, err
	}
	if err := drawScoreTables(p, ranked, selected, opts); err != nil {
		return nil, err
	}
	for _, c := range ranked {
		if err := RenderCandidateDetails(p, c, selected); err != nil {
			return nil, &GenerationError{Message: "candidate detail section", Cause: err}
		}
	}

	data, err := s.Output()
	if err != nil {
		return nil, &GenerationError{Message: "document surface output", Cause: err}
	}

	return &types.DocumentArtifact{
		ID:          uuid.New(),
		Filename:    SuggestedFilename(job.JobTitle),
		Bytes:       data,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// drawTitleBlock renders the first-page title area. The first page carries no
// header bar, so the logo (when available) is drawn inline at the top right.
func drawTitleBlock(p *Pager, s Surface, job types.JobRecord, candidateCount int, selected []scoring.Category, logoName string) error {
	if logoName != "" {
		w, _ := s.PageSize()
		if err := s.DrawImage(logoName, w-marginRight-logoWidth, marginTop, logoWidth, logoHeight); err != nil {
			log.Printf("[REPORT] warning: title-page logo draw failed: %v", err)
		}
	}

	blocks := []Block{
		Heading{Text: "Candidate Assessment Report", Style: reportTitleStyle},
		Heading{Text: job.JobTitle, Style: Style{Size: 13, Bold: true}},
	}
	if len(job.Departments) > 0 {
		blocks = append(blocks, Paragraph{Text: strings.Join(job.Departments, ", "), Style: mutedStyle})
	}
	blocks = append(blocks,
		SplitLine{
			Left:  fmt.Sprintf("Candidates assessed: %d", candidateCount),
			Right: time.Now().Format("2 Jan 2006"),
			Style: summaryStyle,
		},
		Paragraph{Text: "Scoring categories: " + strings.Join(categoryNames(selected), ", "), Style: mutedStyle},
		Spacer{H: 6},
	)

	for _, b := range blocks {
		if err := p.Place(b); err != nil {
			return &GenerationError{Message: "title block", Cause: err}
		}
	}
	return nil
}

// drawSkillMatrices renders the soft/technical skill comparison matrices,
// chunked so each table keeps at most SkillMatrixChunkSize candidate columns.
// Each chunk starts its own page set; only a kind's first chunk carries the
// cell-marker legend.
func drawSkillMatrices(p *Pager, ranked []types.CandidateRecord, opts Options) error {
	kinds := []types.SkillKind{types.SkillKindSoft, types.SkillKindTechnical}
	if opts.SkillKind.Valid() {
		kinds = []types.SkillKind{opts.SkillKind}
	}

	for _, kind := range kinds {
		chunks := chunk.Split(ranked, SkillMatrixChunkSize)
		if opts.Verbose {
			log.Printf("[REPORT] %s matrix: %d chunk(s)", kind, len(chunks))
		}
		for _, ch := range chunks {
			section := ComposeSkillMatrix(kind, ch, p.ContentWidth())
			if len(section.Table.Body) == 0 {
				continue
			}

			p.StartSection()
			if err := p.Place(Heading{Text: section.Title, Style: tableTitleStyle}); err != nil {
				return &GenerationError{Message: "skill matrix title", Cause: err}
			}
			if section.Legend != "" {
				if err := p.Place(Paragraph{Text: section.Legend, Style: mutedStyle}); err != nil {
					return &GenerationError{Message: "skill matrix legend", Cause: err}
				}
			}
			if err := p.Place(Spacer{H: 2}); err != nil {
				return err
			}
			if err := p.PlaceTable(section.Table); err != nil {
				return &GenerationError{Message: "skill matrix table", Cause: err}
			}
		}
	}
	return nil
}

// drawScoreTables renders the per-category raw/weighted tables, the weight
// legend after the final category, and the total balanced score summary.
func drawScoreTables(p *Pager, ranked []types.CandidateRecord, selected []scoring.Category, opts Options) error {
	for ci, cat := range selected {
		chunks := chunk.Split(ranked, ScoreTableChunkSize)
		for _, ch := range chunks {
			title := cat.Name + " Scores (Raw & Weighted)"
			if !ch.First() {
				title += " (continued)"
			}

			p.StartSection()
			if err := p.Place(Heading{Text: title, Style: tableTitleStyle}); err != nil {
				return &GenerationError{Message: "category table title", Cause: err}
			}
			if err := p.Place(Spacer{H: 2}); err != nil {
				return err
			}
			if err := p.PlaceTable(ComposeCategoryScoreTable(cat, ch, p.ContentWidth())); err != nil {
				return &GenerationError{Message: "category score table", Cause: err}
			}

			if ci == len(selected)-1 && ch.Last() {
				if err := placeWeightLegend(p, selected); err != nil {
					return err
				}
			}
		}
	}

	for _, ch := range chunk.Split(ranked, ScoreTableChunkSize) {
		title := "Final Balanced Scores"
		if !ch.First() {
			title += " (continued)"
		}

		p.StartSection()
		if err := p.Place(Heading{Text: title, Style: tableTitleStyle}); err != nil {
			return &GenerationError{Message: "total table title", Cause: err}
		}
		if err := p.Place(Spacer{H: 2}); err != nil {
			return err
		}
		if err := p.PlaceTable(ComposeTotalScoreTable(selected, ch, p.ContentWidth())); err != nil {
			return &GenerationError{Message: "total score table", Cause: err}
		}
	}
	return nil
}

// placeWeightLegend appends the sub-criterion weight legend, right-aligned,
// reusing remaining space on the current page when it fits and forcing a new
// page otherwise.
func placeWeightLegend(p *Pager, selected []scoring.Category) error {
	legend := ComposeWeightLegend(selected)

	// Rough height: one padded line per row plus the header row.
	rowH := p.s.LineHeight(legend.BodyStyle) + 3.0
	p.EnsureSpace(float64(len(legend.Body)+1)*rowH + 4)

	if err := p.Place(Spacer{H: 3}); err != nil {
		return err
	}
	legend.X = p.Left() + p.ContentWidth() - legend.Width()
	if err := p.PlaceTable(legend); err != nil {
		return &GenerationError{Message: "weight legend table", Cause: err}
	}
	return nil
}

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]+`)

// SuggestedFilename derives the artifact filename from the job title, with
// runs of non-alphanumeric characters collapsed to single underscores.
func SuggestedFilename(jobTitle string) string {
	base := nonAlphanumeric.ReplaceAllString(jobTitle, "_")
	base = strings.Trim(base, "_")
	if base == "" {
		base = "candidate"
	}
	return base + "_candidate_report.pdf"
}
