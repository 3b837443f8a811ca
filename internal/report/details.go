package report

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/candidate-report/internal/scoring"
	"github.com/jonathan/candidate-report/internal/types"
)

// minSubBlockSpace is the room a sub-block needs before its heading is drawn,
// so a heading never sits orphaned at the bottom of a page.
const minSubBlockSpace = 16.0

var (
	detailTitleStyle   = Style{Size: 13, Bold: true}
	sectionStyle       = Style{Size: 10.5, Bold: true}
	subHeadingStyle    = Style{Size: 9, Bold: true}
	bodyStyle          = Style{Size: 9}
	noteStyle          = Style{Size: 7.5, Italic: true, Gray: true}
	tagStyle           = Style{Size: 8}
	inferredLegendNote = "* inferred by profile analysis, not listed by the candidate"
)

// dateSuffixPattern matches a trailing parenthesised date on an entry's first
// line, e.g. "Backend Engineer, Acme (2021 - 2023)". A digit is required so
// ordinary parenthetical remarks are left alone.
var dateSuffixPattern = regexp.MustCompile(`\(([^()]*\d[^()]*)\)\s*$`)

// RenderCandidateDetails lays out one candidate's narrative section. A page
// boundary is always forced first; two candidates never share a page. Every
// sub-block re-checks remaining space itself, so the section self-paginates.
func RenderCandidateDetails(p *Pager, c types.CandidateRecord, selected []scoring.Category) error {
	p.NewPage(true)

	if err := p.Place(Heading{Text: "Candidate " + c.CandidateID, Style: detailTitleStyle}); err != nil {
		return err
	}

	raw := scoring.RawScores(c.RankScore.SubScores)
	final := scoring.FinalBalancedScore(raw, selected)
	left := fmt.Sprintf("Final Balanced Score: %.2f (Grade %s)", final, scoring.GradeOf(final))
	right := ""
	if c.RankScore.HasFinal {
		right = fmt.Sprintf("Rank Score: %.2f", c.RankScore.FinalScore)
	}
	if err := p.Place(SplitLine{Left: left, Right: right, Style: bodyStyle}); err != nil {
		return err
	}

	mix := scoring.CategoryContribution(raw, selected)
	if err := p.Place(Paragraph{Text: "Score mix: " + formatMix(categoryNames(selected), mix), Style: noteStyle}); err != nil {
		return err
	}
	if len(c.InterviewScores) > 0 {
		interviewMix := scoring.InterviewContribution(c.InterviewScores)
		if err := p.Place(Paragraph{Text: "Interview mix: " + formatMix(interviewDimensionNames(), interviewMix), Style: noteStyle}); err != nil {
			return err
		}
	}
	if err := p.Place(Spacer{H: 4}); err != nil {
		return err
	}

	if err := renderSkills(p, c.DetailedProfile); err != nil {
		return err
	}
	if err := renderStructuredSection(p, "Experience", []entryGroup{
		{Title: "Work Experience", Entries: c.DetailedProfile.WorkExperience},
		{Title: "Projects", Entries: c.DetailedProfile.Projects},
		{Title: "Co-curricular Activities", Entries: c.DetailedProfile.CoCurricularActivities},
	}); err != nil {
		return err
	}
	return renderStructuredSection(p, "Education", []entryGroup{
		{Title: "Education", Entries: c.DetailedProfile.Education},
		{Title: "Certifications", Entries: c.DetailedProfile.Certifications},
		{Title: "Awards", Entries: c.DetailedProfile.Awards},
	})
}

// renderSkills draws the soft/technical/language tag lists. Each list is only
// rendered when non-empty, and a legend note follows any list that contains an
// inferred tag.
func renderSkills(p *Pager, profile types.DetailedProfile) error {
	groups := []struct {
		title    string
		direct   []string
		inferred []string
	}{
		{"Soft Skills", profile.SoftSkills, profile.InferredSoftSkills},
		{"Technical Skills", profile.TechnicalSkills, profile.InferredTechnicalSkills},
		{"Languages", profile.Languages, nil},
	}

	any := false
	for _, g := range groups {
		if len(g.direct)+len(g.inferred) > 0 {
			any = true
			break
		}
	}
	if !any {
		return nil
	}

	p.EnsureSpace(minSubBlockSpace)
	if err := p.Place(Heading{Text: "Skills", Style: sectionStyle}); err != nil {
		return err
	}

	for _, g := range groups {
		tags := make([]Tag, 0, len(g.direct)+len(g.inferred))
		for _, name := range g.direct {
			tags = append(tags, Tag{Text: name})
		}
		hasInferred := false
		for _, name := range g.inferred {
			tags = append(tags, Tag{Text: name, Inferred: true})
			hasInferred = true
		}
		if len(tags) == 0 {
			continue
		}

		p.EnsureSpace(minSubBlockSpace)
		if err := p.Place(Heading{Text: g.title, Style: subHeadingStyle}); err != nil {
			return err
		}
		if err := p.Place(TagList{Tags: tags, Style: tagStyle}); err != nil {
			return err
		}
		if hasInferred {
			if err := p.Place(Paragraph{Text: inferredLegendNote, Style: noteStyle}); err != nil {
				return err
			}
		}
		if err := p.Place(Spacer{H: 2}); err != nil {
			return err
		}
	}
	return nil
}

// entryGroup is one titled list of structured-content entries.
type entryGroup struct {
	Title   string
	Entries []string
}

// renderStructuredSection draws a section (Experience, Education) made of
// titled entry groups. Each entry's first line may end with a bracketed date,
// which is stripped and right-aligned on the entry's title line.
func renderStructuredSection(p *Pager, title string, groups []entryGroup) error {
	any := false
	for _, g := range groups {
		if len(g.Entries) > 0 {
			any = true
			break
		}
	}
	if !any {
		return nil
	}

	p.EnsureSpace(minSubBlockSpace)
	if err := p.Place(Heading{Text: title, Style: sectionStyle}); err != nil {
		return err
	}

	for _, g := range groups {
		if len(g.Entries) == 0 {
			continue
		}
		p.EnsureSpace(minSubBlockSpace)
		if err := p.Place(Heading{Text: g.Title, Style: subHeadingStyle}); err != nil {
			return err
		}
		for _, entry := range g.Entries {
			if err := renderEntry(p, entry); err != nil {
				return err
			}
		}
		if err := p.Place(Spacer{H: 2}); err != nil {
			return err
		}
	}
	return nil
}

// renderEntry draws one structured-content entry: a title line with an
// optional right-aligned date, followed by any remaining lines as body text.
func renderEntry(p *Pager, entry string) error {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return nil
	}

	lines := strings.Split(entry, "\n")
	first, date := ExtractEntryDate(lines[0])

	p.EnsureSpace(2 * p.s.LineHeight(bodyStyle))
	if err := p.Place(SplitLine{Left: first, Right: date, Style: Style{Size: 9, Bold: true}}); err != nil {
		return err
	}
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := p.Place(Paragraph{Text: line, Style: bodyStyle}); err != nil {
			return err
		}
	}
	return p.Place(Spacer{H: 1.5})
}

// ExtractEntryDate splits a trailing bracketed date off an entry's first line.
// Lines without one are returned unchanged with an empty date.
func ExtractEntryDate(line string) (text, date string) {
	line = strings.TrimSpace(line)
	m := dateSuffixPattern.FindStringSubmatchIndex(line)
	if m == nil {
		return line, ""
	}
	date = strings.TrimSpace(line[m[2]:m[3]])
	text = strings.TrimSpace(line[:m[0]])
	return text, date
}

// formatMix renders a contribution vector as "Name 38%, Name 25%, ...".
func formatMix(names []string, proportions []float64) string {
	if len(names) != len(proportions) {
		return ""
	}
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s %d%%", name, int(math.Round(proportions[i]*100)))
	}
	return strings.Join(parts, ", ")
}

func categoryNames(cats []scoring.Category) []string {
	names := make([]string, len(cats))
	for i, cat := range cats {
		names[i] = cat.Name
	}
	return names
}

func interviewDimensionNames() []string {
	names := make([]string, len(scoring.InterviewDimensions))
	for i, dim := range scoring.InterviewDimensions {
		names[i] = dim.DisplayName
	}
	return names
}
