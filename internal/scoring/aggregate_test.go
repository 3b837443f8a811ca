package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryWeights_SumToOne(t *testing.T) {
	for _, cat := range AllCategories() {
		t.Run(cat.Name, func(t *testing.T) {
			sum := 0.0
			for _, sub := range cat.SubCriteria {
				assert.Greater(t, sub.Weight, 0.0, "weight for %s must be positive", sub.ID)
				sum += sub.Weight
			}
			assert.InDelta(t, 1.0, sum, 1e-9)
		})
	}
}

func TestInterviewDimensions_SumToOne(t *testing.T) {
	sum := 0.0
	for _, dim := range InterviewDimensions {
		assert.Greater(t, dim.Weight, 0.0, "weight for %s must be positive", dim.Key)
		sum += dim.Weight
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestCategoryTotal_SkillsExample(t *testing.T) {
	raw := RawScores(map[string]float64{
		"skill_relevance":   0.8,
		"skill_proficiency": 0.6,
		"additional_skill":  1.0,
	})

	// 0.8*0.50 + 0.6*0.35 + 1.0*0.15 = 0.40 + 0.21 + 0.15 = 0.76
	total := CategoryTotal(raw, CategorySkills)
	assert.InDelta(t, 0.76, total, 1e-9)

	assert.InDelta(t, 0.40, WeightedSubscore(raw, CategorySkills.SubCriteria[0]), 1e-9)
	assert.InDelta(t, 0.21, WeightedSubscore(raw, CategorySkills.SubCriteria[1]), 1e-9)
	assert.InDelta(t, 0.15, WeightedSubscore(raw, CategorySkills.SubCriteria[2]), 1e-9)
}

func TestCategoryTotal_MissingScoresDefaultToZero(t *testing.T) {
	raw := RawScores(map[string]float64{"skill_relevance": 1.0})

	total := CategoryTotal(raw, CategorySkills)
	assert.InDelta(t, 0.50, total, 1e-9)

	assert.Zero(t, CategoryTotal(raw, CategoryEducation))
}

func TestRawScoreSet_Get_CoercesNaN(t *testing.T) {
	raw := RawScoreSet{SkillRelevance: math.NaN()}
	assert.Zero(t, raw.Get(SkillRelevance))
	assert.Zero(t, raw.Get(ExperienceImpact))
}

func TestFinalBalancedScore_MeanOfSelectedCategories(t *testing.T) {
	raw := RawScores(map[string]float64{
		"skill_relevance":      0.8,
		"skill_proficiency":    0.8,
		"additional_skill":     0.53333,
		"experience_relevance": 0.0,
		"experience_duration":  0.0,
		"experience_impact":    0.0,
	})

	selected := []Category{CategorySkills, CategoryExperience}
	// (0.76 + 0.0) / 2 = 0.38
	assert.InDelta(t, 0.38, FinalBalancedScore(raw, selected), 1e-9)
}

func TestFinalBalancedScore_SkillsAndEducation(t *testing.T) {
	// Skills total 0.42, Education total 0.30 -> mean 0.36.
	raw := RawScores(map[string]float64{
		"skill_relevance": 0.84,
		"degree_level":    0.60,
	})

	selected := []Category{CategorySkills, CategoryEducation}
	assert.InDelta(t, 0.36, FinalBalancedScore(raw, selected), 1e-9)
}

func TestFinalBalancedScore_RoundsToTwoDecimals(t *testing.T) {
	raw := RawScores(map[string]float64{
		"skill_relevance":   0.713,
		"skill_proficiency": 0.713,
		"additional_skill":  0.713,
	})

	score := FinalBalancedScore(raw, []Category{CategorySkills})
	assert.InDelta(t, 0.71, score, 1e-9)
}

func TestFinalBalancedScore_EmptySelection(t *testing.T) {
	raw := RawScores(map[string]float64{"skill_relevance": 1.0})
	assert.Zero(t, FinalBalancedScore(raw, nil))
}

func TestGradeOf_BandBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  Grade
	}{
		{0.95, GradeA},
		{0.80, GradeA},
		{0.79999, GradeB},
		{0.70, GradeB},
		{0.69999, GradeC},
		{0.60, GradeC},
		{0.59999, GradeD},
		{0.50, GradeD},
		{0.49999, GradeE},
		{0.40, GradeE},
		{0.39999, GradeF},
		{0.0, GradeF},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, GradeOf(tc.score), "score %.5f", tc.score)
	}
}

func TestContributionVector_NormalizesToOne(t *testing.T) {
	proportions := ContributionVector(
		[]float64{0.8, 0.4, 0.2},
		[]float64{0.5, 0.3, 0.2},
	)
	require.Len(t, proportions, 3)

	sum := 0.0
	for _, p := range proportions {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	// 0.40 : 0.12 : 0.04 -> 0.40/0.56 etc
	assert.InDelta(t, 0.40/0.56, proportions[0], 1e-9)
	assert.InDelta(t, 0.12/0.56, proportions[1], 1e-9)
	assert.InDelta(t, 0.04/0.56, proportions[2], 1e-9)
}

func TestContributionVector_UniformFallbackOnZeroSum(t *testing.T) {
	proportions := ContributionVector(
		[]float64{0, 0, 0, 0},
		[]float64{0.25, 0.25, 0.25, 0.25},
	)
	require.Len(t, proportions, 4)
	for _, p := range proportions {
		assert.InDelta(t, 0.25, p, 1e-9)
	}
}

func TestContributionVector_CoercesNaNAndNegative(t *testing.T) {
	proportions := ContributionVector(
		[]float64{math.NaN(), -0.5, 1.0},
		[]float64{0.3, 0.3, 0.4},
	)
	require.Len(t, proportions, 3)
	assert.Zero(t, proportions[0])
	assert.Zero(t, proportions[1])
	assert.InDelta(t, 1.0, proportions[2], 1e-9)
}

func TestContributionVector_MismatchedLengths(t *testing.T) {
	assert.Nil(t, ContributionVector([]float64{1, 2}, []float64{1}))
	assert.Nil(t, ContributionVector(nil, nil))
}

func TestCategoryContribution_EqualWeighting(t *testing.T) {
	raw := RawScores(map[string]float64{
		"skill_relevance":      1.0,
		"skill_proficiency":    1.0,
		"additional_skill":     1.0,
		"experience_relevance": 1.0,
		"experience_duration":  1.0,
		"experience_impact":    1.0,
	})

	mix := CategoryContribution(raw, []Category{CategorySkills, CategoryExperience})
	require.Len(t, mix, 2)
	assert.InDelta(t, 0.5, mix[0], 1e-9)
	assert.InDelta(t, 0.5, mix[1], 1e-9)
}

func TestInterviewContribution_MissingDimensionsScoreZero(t *testing.T) {
	mix := InterviewContribution(map[string]float64{"clarity": 0.9})
	require.Len(t, mix, len(InterviewDimensions))

	sum := 0.0
	for i, dim := range InterviewDimensions {
		if dim.Key == "clarity" {
			assert.InDelta(t, 1.0, mix[i], 1e-9)
		} else {
			assert.Zero(t, mix[i])
		}
		sum += mix[i]
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestInterviewContribution_EmptyMapUniform(t *testing.T) {
	mix := InterviewContribution(nil)
	require.Len(t, mix, len(InterviewDimensions))
	for _, p := range mix {
		assert.InDelta(t, 1.0/float64(len(InterviewDimensions)), p, 1e-9)
	}
}

func TestSelectCategories_DefaultsToAllFour(t *testing.T) {
	for _, prompt := range []string{"", "rank by overall potential", "   "} {
		selected := SelectCategories(prompt)
		require.Len(t, selected, 4, "prompt %q", prompt)
		assert.Equal(t, "Skills", selected[0].Name)
		assert.Equal(t, "Cultural Fit", selected[3].Name)
	}
}

func TestSelectCategories_SubstringMatchIsCaseInsensitive(t *testing.T) {
	selected := SelectCategories("Focus on {Skills, EDUCATION} for this role")
	require.Len(t, selected, 2)
	assert.Equal(t, "Skills", selected[0].Name)
	assert.Equal(t, "Education", selected[1].Name)
}

func TestSelectCategories_PreservesCanonicalOrder(t *testing.T) {
	selected := SelectCategories("cultural fit first, then experience")
	require.Len(t, selected, 2)
	assert.Equal(t, "Experience", selected[0].Name)
	assert.Equal(t, "Cultural Fit", selected[1].Name)
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 0.76, Round2(0.7649), 1e-9)
	assert.InDelta(t, 0.77, Round2(0.765), 1e-9)
	assert.InDelta(t, 0.0, Round2(0.0049), 1e-9)
}
