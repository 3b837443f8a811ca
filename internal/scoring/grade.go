package scoring

// Grade is a letter grade derived from a score in [0,1].
type Grade string

// Letter grades, best to worst.
const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
	GradeF Grade = "F"
)

// GradeOf maps a score to its letter grade. Band lower bounds are inclusive:
// 0.8 is an A, 0.4 is an E, anything below 0.4 is an F.
func GradeOf(score float64) Grade {
	switch {
	case score >= 0.8:
		return GradeA
	case score >= 0.7:
		return GradeB
	case score >= 0.6:
		return GradeC
	case score >= 0.5:
		return GradeD
	case score >= 0.4:
		return GradeE
	default:
		return GradeF
	}
}
