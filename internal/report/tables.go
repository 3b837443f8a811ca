package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/candidate-report/internal/chunk"
	"github.com/jonathan/candidate-report/internal/scoring"
	"github.com/jonathan/candidate-report/internal/types"
)

// Chunk-size policies. Skill matrices grow one column per candidate, so they
// chunk earlier than the one-row-per-candidate score tables.
const (
	SkillMatrixChunkSize = 15
	ScoreTableChunkSize  = 30
)

// Matrix cell markers: '/' for a directly listed skill, '*' for one only
// inferred by the profiling service.
const (
	markDirect   = "/"
	markInferred = "*"
)

var (
	tableHeadStyle = Style{Size: 8.5, Bold: true}
	tableBodyStyle = Style{Size: 8.5}
)

// SkillMatrixSection is one chunk of a skill comparison matrix together with
// its presentation text. Legend is only populated for the first chunk of a
// skill kind; continuation chunks carry an abbreviated title instead.
type SkillMatrixSection struct {
	Title  string
	Legend string
	Table  *Table
}

// ComposeSkillMatrix builds the horizontal skill-presence matrix for one chunk
// of candidates: rows are the sorted union of all distinct skill names in the
// chunk for the requested kind, columns are the chunk's candidates.
func ComposeSkillMatrix(kind types.SkillKind, ch chunk.Chunk[types.CandidateRecord], width float64) SkillMatrixSection {
	// Union of skill names, keyed case-insensitively, displaying the first
	// spelling seen.
	display := make(map[string]string)
	var keys []string
	collect := func(names []string) {
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			if _, seen := display[key]; !seen {
				display[key] = name
				keys = append(keys, key)
			}
		}
	}
	for _, c := range ch.Items {
		collect(c.DetailedProfile.DirectSkills(kind))
		collect(c.DetailedProfile.InferredSkills(kind))
	}
	sort.Strings(keys)

	head := make([]HeaderCell, 0, len(ch.Items)+1)
	head = append(head, HeaderCell{Text: "Skill"})
	for _, c := range ch.Items {
		head = append(head, HeaderCell{Text: c.CandidateID})
	}

	body := make([][]string, 0, len(keys))
	for _, key := range keys {
		row := make([]string, 0, len(ch.Items)+1)
		row = append(row, display[key])
		for _, c := range ch.Items {
			row = append(row, matrixMark(key, c.DetailedProfile, kind))
		}
		body = append(body, row)
	}

	skillColWidth := 45.0
	candColWidth := (width - skillColWidth) / float64(len(ch.Items))
	columns := make([]Column, 0, len(ch.Items)+1)
	columns = append(columns, Column{Width: skillColWidth})
	for range ch.Items {
		columns = append(columns, Column{Width: candColWidth, Align: "C"})
	}

	section := SkillMatrixSection{
		Title: fmt.Sprintf("%s Comparison Matrix", kind.Title()),
		Table: &Table{
			Head:      [][]HeaderCell{head},
			Body:      body,
			Columns:   columns,
			HeadStyle: tableHeadStyle,
			BodyStyle: tableBodyStyle,
		},
	}
	if ch.First() {
		section.Legend = fmt.Sprintf("%s = listed by candidate    %s = AI-inferred", markDirect, markInferred)
	} else {
		section.Title += " (continued)"
	}
	return section
}

// matrixMark returns the cell marker for one skill/candidate pair.
func matrixMark(skillKey string, profile types.DetailedProfile, kind types.SkillKind) string {
	if containsFold(profile.DirectSkills(kind), skillKey) {
		return markDirect
	}
	if containsFold(profile.InferredSkills(kind), skillKey) {
		return markInferred
	}
	return ""
}

func containsFold(names []string, lowerKey string) bool {
	for _, name := range names {
		if strings.ToLower(strings.TrimSpace(name)) == lowerKey {
			return true
		}
	}
	return false
}

// ComposeCategoryScoreTable builds the raw/weighted score table for one
// category over one chunk of candidates. The header spans two rows: the
// candidate and total columns bridge both rows, and each sub-criterion heads a
// Raw/Weighted column pair.
func ComposeCategoryScoreTable(cat scoring.Category, ch chunk.Chunk[types.CandidateRecord], width float64) *Table {
	headTop := []HeaderCell{{Text: "Candidate", RowSpan: 2}}
	headSub := make([]HeaderCell, 0, 2*len(cat.SubCriteria))
	for _, sub := range cat.SubCriteria {
		headTop = append(headTop, HeaderCell{Text: sub.DisplayName, ColSpan: 2})
		headSub = append(headSub,
			HeaderCell{Text: "Raw"},
			HeaderCell{Text: "Weighted"},
		)
	}
	headTop = append(headTop, HeaderCell{Text: "Total Score", RowSpan: 2})

	body := make([][]string, 0, len(ch.Items))
	for _, c := range ch.Items {
		raw := scoring.RawScores(c.RankScore.SubScores)
		row := make([]string, 0, 2*len(cat.SubCriteria)+2)
		row = append(row, c.CandidateID)
		for _, sub := range cat.SubCriteria {
			row = append(row,
				fmt.Sprintf("%.1f", raw.Get(sub.ID)),
				fmt.Sprintf("%.2f", scoring.WeightedSubscore(raw, sub)),
			)
		}
		row = append(row, fmt.Sprintf("%.2f", scoring.Round2(scoring.CategoryTotal(raw, cat))))
		body = append(body, row)
	}

	candColWidth, totalColWidth := 36.0, 26.0
	pairColWidth := (width - candColWidth - totalColWidth) / float64(2*len(cat.SubCriteria))
	columns := []Column{{Width: candColWidth}}
	for range cat.SubCriteria {
		columns = append(columns,
			Column{Width: pairColWidth, Align: "C"},
			Column{Width: pairColWidth, Align: "C"},
		)
	}
	columns = append(columns, Column{Width: totalColWidth, Align: "C", Bold: true})

	return &Table{
		Head:      [][]HeaderCell{headTop, headSub},
		Body:      body,
		Columns:   columns,
		HeadStyle: tableHeadStyle,
		BodyStyle: tableBodyStyle,
	}
}

// ComposeWeightLegend builds the small sub-criterion weight legend appended
// after the final chunk of the final category table. The caller positions it
// (right-aligned) by setting Table.X.
func ComposeWeightLegend(cats []scoring.Category) *Table {
	body := make([][]string, 0, 3*len(cats))
	for _, cat := range cats {
		for _, sub := range cat.SubCriteria {
			body = append(body, []string{
				fmt.Sprintf("%s: %s", cat.Name, sub.DisplayName),
				fmt.Sprintf("%.2f", sub.Weight),
			})
		}
	}

	return &Table{
		Head: [][]HeaderCell{{
			{Text: "Sub-criterion"},
			{Text: "Weight"},
		}},
		Body: body,
		Columns: []Column{
			{Width: 52},
			{Width: 18, Align: "C"},
		},
		HeadStyle: Style{Size: 7.5, Bold: true},
		BodyStyle: Style{Size: 7.5, Gray: true},
	}
}

// ComposeTotalScoreTable builds the final balanced score summary over one
// chunk of candidates: one total column per selected category plus the bolded
// final balanced score.
func ComposeTotalScoreTable(selected []scoring.Category, ch chunk.Chunk[types.CandidateRecord], width float64) *Table {
	head := []HeaderCell{{Text: "Candidate"}}
	for _, cat := range selected {
		head = append(head, HeaderCell{Text: cat.Name + " Total"})
	}
	head = append(head, HeaderCell{Text: "Final Balanced Score"})

	body := make([][]string, 0, len(ch.Items))
	for _, c := range ch.Items {
		raw := scoring.RawScores(c.RankScore.SubScores)
		row := make([]string, 0, len(selected)+2)
		row = append(row, c.CandidateID)
		for _, cat := range selected {
			row = append(row, fmt.Sprintf("%.2f", scoring.Round2(scoring.CategoryTotal(raw, cat))))
		}
		row = append(row, fmt.Sprintf("%.2f", scoring.FinalBalancedScore(raw, selected)))
		body = append(body, row)
	}

	candColWidth, finalColWidth := 36.0, 34.0
	catColWidth := (width - candColWidth - finalColWidth) / float64(len(selected))
	columns := []Column{{Width: candColWidth}}
	for range selected {
		columns = append(columns, Column{Width: catColWidth, Align: "C"})
	}
	columns = append(columns, Column{Width: finalColWidth, Align: "C", Bold: true})

	return &Table{
		Head:      [][]HeaderCell{head},
		Body:      body,
		Columns:   columns,
		HeadStyle: tableHeadStyle,
		BodyStyle: tableBodyStyle,
	}
}
