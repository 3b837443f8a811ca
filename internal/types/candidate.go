// Package types provides type definitions for structured data exchanged with the
// ranking and profiling services and consumed by the report engine.
package types

import (
	"encoding/json"
	"math"
)

// finalScoreKey is the reserved key inside the rank_score object that carries the
// externally computed overall ranking score rather than a sub-criterion score.
const finalScoreKey = "final_score"

// RankScore holds the raw per-sub-criterion scores supplied by the external
// ranking service, plus the service's own overall final score when present.
// Sub-criterion scores are scalars in [0,1]; consumers must treat missing keys
// as 0.
type RankScore struct {
	SubScores  map[string]float64
	FinalScore float64
	HasFinal   bool
}

// Sub returns the raw score for the given sub-criterion key.
// Missing keys and NaN values are coerced to 0 so downstream aggregation never
// sees an undefined score.
func (r RankScore) Sub(key string) float64 {
	v, ok := r.SubScores[key]
	if !ok || math.IsNaN(v) {
		return 0
	}
	return v
}

// UnmarshalJSON decodes the flat rank_score object, separating the reserved
// final_score entry from the sub-criterion scores.
func (r *RankScore) UnmarshalJSON(data []byte) error {
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.SubScores = make(map[string]float64, len(raw))
	for key, value := range raw {
		if key == finalScoreKey {
			r.FinalScore = value
			r.HasFinal = true
			continue
		}
		r.SubScores[key] = value
	}
	return nil
}

// MarshalJSON re-flattens the rank score into the wire shape used by the
// ranking service.
func (r RankScore) MarshalJSON() ([]byte, error) {
	flat := make(map[string]float64, len(r.SubScores)+1)
	for key, value := range r.SubScores {
		flat[key] = value
	}
	if r.HasFinal {
		flat[finalScoreKey] = r.FinalScore
	}
	return json.Marshal(flat)
}

// DetailedProfile is the structured candidate profile produced by the upstream
// profiling service. All fields are read-only to the report engine.
type DetailedProfile struct {
	SoftSkills              []string `json:"soft_skills,omitempty"`
	TechnicalSkills         []string `json:"technical_skills,omitempty"`
	InferredSoftSkills      []string `json:"inferred_soft_skills,omitempty"`
	InferredTechnicalSkills []string `json:"inferred_technical_skills,omitempty"`
	Languages               []string `json:"languages,omitempty"`
	WorkExperience          []string `json:"work_experience,omitempty"`
	Projects                []string `json:"projects,omitempty"`
	CoCurricularActivities  []string `json:"co_curricular_activities,omitempty"`
	Education               []string `json:"education,omitempty"`
	Certifications          []string `json:"certifications,omitempty"`
	Awards                  []string `json:"awards,omitempty"`
}

// CandidateRecord is one candidate as supplied by the external ranking and
// profiling services.
type CandidateRecord struct {
	CandidateID     string             `json:"candidateId" validate:"required,min=1"`
	RankScore       RankScore          `json:"rank_score"`
	InterviewScores map[string]float64 `json:"interview_scores,omitempty"`
	DetailedProfile DetailedProfile    `json:"detailed_profile"`
}

// SkillKind selects which pair of skill sets (direct + inferred) a skill matrix
// is built from.
type SkillKind string

// Supported skill kinds.
const (
	SkillKindSoft      SkillKind = "soft"
	SkillKindTechnical SkillKind = "technical"
)

// Valid reports whether the kind is one of the supported values.
func (k SkillKind) Valid() bool {
	return k == SkillKindSoft || k == SkillKindTechnical
}

// Title returns the human-readable label used in table headings.
func (k SkillKind) Title() string {
	switch k {
	case SkillKindSoft:
		return "Soft Skills"
	case SkillKindTechnical:
		return "Technical Skills"
	}
	return string(k)
}

// DirectSkills returns the directly listed skills of the given kind.
func (p DetailedProfile) DirectSkills(kind SkillKind) []string {
	if kind == SkillKindSoft {
		return p.SoftSkills
	}
	return p.TechnicalSkills
}

// InferredSkills returns the AI-inferred skills of the given kind.
func (p DetailedProfile) InferredSkills(kind SkillKind) []string {
	if kind == SkillKindSoft {
		return p.InferredSoftSkills
	}
	return p.InferredTechnicalSkills
}
