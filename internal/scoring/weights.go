// Package scoring turns raw per-sub-criterion candidate scores into weighted
// category totals, balanced overall scores, letter grades, and normalized
// contribution vectors for visualization.
package scoring

// SubCriterionID identifies one weighted scoring component within a category.
// The set of identifiers is closed; raw score maps are only ever read through
// these keys, with missing entries defaulting to zero.
type SubCriterionID string

// Sub-criterion identifiers, as emitted by the ranking service.
const (
	SkillRelevance   SubCriterionID = "skill_relevance"
	SkillProficiency SubCriterionID = "skill_proficiency"
	AdditionalSkill  SubCriterionID = "additional_skill"

	ExperienceRelevance SubCriterionID = "experience_relevance"
	ExperienceDuration  SubCriterionID = "experience_duration"
	ExperienceImpact    SubCriterionID = "experience_impact"

	DegreeLevel        SubCriterionID = "degree_level"
	FieldRelevance     SubCriterionID = "field_relevance"
	InstitutionQuality SubCriterionID = "institution_quality"

	ValuesAlignment    SubCriterionID = "values_alignment"
	CommunicationStyle SubCriterionID = "communication_style"
	Adaptability       SubCriterionID = "adaptability"
)

// SubCriterion is one weighted component of a category.
type SubCriterion struct {
	ID          SubCriterionID
	DisplayName string
	Weight      float64 // in (0,1]; weights within a category sum to 1.0
}

// Category is one of the four top-level scoring dimensions.
type Category struct {
	Name        string
	SubCriteria []SubCriterion
}

// The four fixed scoring categories. Weights within each category sum to 1.0.
var (
	CategorySkills = Category{
		Name: "Skills",
		SubCriteria: []SubCriterion{
			{ID: SkillRelevance, DisplayName: "Relevance", Weight: 0.50},
			{ID: SkillProficiency, DisplayName: "Proficiency", Weight: 0.35},
			{ID: AdditionalSkill, DisplayName: "Additional Skill", Weight: 0.15},
		},
	}

	CategoryExperience = Category{
		Name: "Experience",
		SubCriteria: []SubCriterion{
			{ID: ExperienceRelevance, DisplayName: "Relevance", Weight: 0.45},
			{ID: ExperienceDuration, DisplayName: "Duration", Weight: 0.30},
			{ID: ExperienceImpact, DisplayName: "Impact", Weight: 0.25},
		},
	}

	CategoryEducation = Category{
		Name: "Education",
		SubCriteria: []SubCriterion{
			{ID: DegreeLevel, DisplayName: "Degree Level", Weight: 0.50},
			{ID: FieldRelevance, DisplayName: "Field Relevance", Weight: 0.30},
			{ID: InstitutionQuality, DisplayName: "Institution", Weight: 0.20},
		},
	}

	CategoryCulturalFit = Category{
		Name: "Cultural Fit",
		SubCriteria: []SubCriterion{
			{ID: ValuesAlignment, DisplayName: "Values Alignment", Weight: 0.40},
			{ID: CommunicationStyle, DisplayName: "Communication", Weight: 0.35},
			{ID: Adaptability, DisplayName: "Adaptability", Weight: 0.25},
		},
	}
)

// AllCategories returns the four fixed categories in display order.
func AllCategories() []Category {
	return []Category{CategorySkills, CategoryExperience, CategoryEducation, CategoryCulturalFit}
}

// InterviewDimension is one component of the flat interview-analysis weight
// vector. Interview scoring uses the same aggregation contract as the category
// tables but over a single flat dimension set.
type InterviewDimension struct {
	Key         string
	DisplayName string
	Weight      float64
}

// InterviewDimensions is the flat 6-dimension interview weight vector.
// Weights sum to 1.0.
var InterviewDimensions = []InterviewDimension{
	{Key: "relevance", DisplayName: "Relevance", Weight: 0.15},
	{Key: "clarity", DisplayName: "Clarity", Weight: 0.20},
	{Key: "confidence", DisplayName: "Confidence", Weight: 0.20},
	{Key: "engagement", DisplayName: "Engagement", Weight: 0.15},
	{Key: "substance", DisplayName: "Substance", Weight: 0.15},
	{Key: "job_fit", DisplayName: "Job Fit", Weight: 0.15},
}
