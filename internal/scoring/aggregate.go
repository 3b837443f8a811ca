package scoring

import "math"

// contributionEpsilon is the threshold below which a contribution-vector
// denominator is treated as zero and the uniform fallback applies.
const contributionEpsilon = 1e-9

// RawScoreSet maps sub-criterion identifiers to raw scores in [0,1].
type RawScoreSet map[SubCriterionID]float64

// RawScores builds a RawScoreSet from the stringly-keyed score map supplied by
// the ranking service. Unknown keys are carried along harmlessly; lookups only
// ever go through the closed SubCriterionID set.
func RawScores(m map[string]float64) RawScoreSet {
	set := make(RawScoreSet, len(m))
	for key, value := range m {
		set[SubCriterionID(key)] = value
	}
	return set
}

// Get returns the raw score for the given sub-criterion, coercing missing and
// NaN entries to 0.
func (r RawScoreSet) Get(id SubCriterionID) float64 {
	v, ok := r[id]
	if !ok || math.IsNaN(v) {
		return 0
	}
	return v
}

// WeightedSubscore returns raw * weight for one sub-criterion.
func WeightedSubscore(raw RawScoreSet, sub SubCriterion) float64 {
	return raw.Get(sub.ID) * sub.Weight
}

// CategoryTotal sums the weighted sub-scores of a category.
// Missing raw scores default to 0, so the result is always defined.
func CategoryTotal(raw RawScoreSet, cat Category) float64 {
	total := 0.0
	for _, sub := range cat.SubCriteria {
		total += WeightedSubscore(raw, sub)
	}
	return total
}

// FinalBalancedScore returns the arithmetic mean of the candidate's category
// totals across exactly the selected categories, rounded to 2 decimals. Each
// selected category contributes equally regardless of its sub-criterion count.
// An empty selection yields 0.00.
func FinalBalancedScore(raw RawScoreSet, selected []Category) float64 {
	if len(selected) == 0 {
		return 0
	}

	sum := 0.0
	for _, cat := range selected {
		sum += CategoryTotal(raw, cat)
	}
	return Round2(sum / float64(len(selected)))
}

// ContributionVector converts parallel score and weight vectors into normalized
// proportions that sum to 1.0. Each proportion is score*weight divided by the
// sum of all such products; when the sum is effectively zero the vector falls
// back to uniform 1/n proportions. NaN and negative inputs are coerced to 0
// before normalization.
func ContributionVector(scores, weights []float64) []float64 {
	n := len(scores)
	if n == 0 || n != len(weights) {
		return nil
	}

	raw := make([]float64, n)
	sum := 0.0
	for i := 0; i < n; i++ {
		s, w := scores[i], weights[i]
		if math.IsNaN(s) || s < 0 {
			s = 0
		}
		if math.IsNaN(w) || w < 0 {
			w = 0
		}
		raw[i] = s * w
		sum += raw[i]
	}

	proportions := make([]float64, n)
	if sum <= contributionEpsilon {
		uniform := 1.0 / float64(n)
		for i := range proportions {
			proportions[i] = uniform
		}
		return proportions
	}

	for i := range raw {
		proportions[i] = raw[i] / sum
	}
	return proportions
}

// CategoryContribution returns the candidate's normalized score mix across the
// selected categories: each category's total weighted equally, normalized to
// proportions summing to 1.0.
func CategoryContribution(raw RawScoreSet, selected []Category) []float64 {
	scores := make([]float64, len(selected))
	weights := make([]float64, len(selected))
	for i, cat := range selected {
		scores[i] = CategoryTotal(raw, cat)
		weights[i] = 1.0
	}
	return ContributionVector(scores, weights)
}

// InterviewContribution returns the normalized contribution mix of the flat
// interview dimensions for the given interview score map. Missing dimensions
// score 0; an all-zero or empty map yields the uniform fallback.
func InterviewContribution(interviewScores map[string]float64) []float64 {
	scores := make([]float64, len(InterviewDimensions))
	weights := make([]float64, len(InterviewDimensions))
	for i, dim := range InterviewDimensions {
		scores[i] = interviewScores[dim.Key]
		weights[i] = dim.Weight
	}
	return ContributionVector(scores, weights)
}

// Round2 rounds to 2 decimal places, the precision used for displayed totals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
