package types

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankScore_UnmarshalSeparatesFinalScore(t *testing.T) {
	data := []byte(`{"skill_relevance": 0.8, "final_score": 0.67, "degree_level": 0.5}`)

	var rs RankScore
	require.NoError(t, json.Unmarshal(data, &rs))

	assert.True(t, rs.HasFinal)
	assert.InDelta(t, 0.67, rs.FinalScore, 1e-9)
	assert.InDelta(t, 0.8, rs.SubScores["skill_relevance"], 1e-9)
	assert.InDelta(t, 0.5, rs.SubScores["degree_level"], 1e-9)
	assert.NotContains(t, rs.SubScores, "final_score")
}

func TestRankScore_UnmarshalWithoutFinalScore(t *testing.T) {
	var rs RankScore
	require.NoError(t, json.Unmarshal([]byte(`{"skill_relevance": 0.8}`), &rs))

	assert.False(t, rs.HasFinal)
	assert.Zero(t, rs.FinalScore)
}

func TestRankScore_MarshalRestoresWireShape(t *testing.T) {
	rs := RankScore{
		SubScores:  map[string]float64{"skill_relevance": 0.8},
		FinalScore: 0.67,
		HasFinal:   true,
	}

	data, err := json.Marshal(rs)
	require.NoError(t, err)

	var flat map[string]float64
	require.NoError(t, json.Unmarshal(data, &flat))
	assert.InDelta(t, 0.67, flat["final_score"], 1e-9)
	assert.InDelta(t, 0.8, flat["skill_relevance"], 1e-9)
}

func TestRankScore_MarshalOmitsUnsetFinalScore(t *testing.T) {
	rs := RankScore{SubScores: map[string]float64{"skill_relevance": 0.8}}

	data, err := json.Marshal(rs)
	require.NoError(t, err)

	var flat map[string]float64
	require.NoError(t, json.Unmarshal(data, &flat))
	assert.NotContains(t, flat, "final_score")
}

func TestRankScore_SubCoercesMissingAndNaN(t *testing.T) {
	rs := RankScore{SubScores: map[string]float64{"clarity": math.NaN(), "relevance": 0.4}}

	assert.Zero(t, rs.Sub("clarity"))
	assert.Zero(t, rs.Sub("nonexistent"))
	assert.InDelta(t, 0.4, rs.Sub("relevance"), 1e-9)
}

func TestCandidateRecord_DecodesFullDocument(t *testing.T) {
	data := []byte(`{
		"candidateId": "cand-42",
		"rank_score": {"skill_relevance": 0.9, "final_score": 0.81},
		"interview_scores": {"clarity": 0.7},
		"detailed_profile": {
			"soft_skills": ["Communication"],
			"inferred_technical_skills": ["Go"],
			"work_experience": ["Backend Engineer (2020-2023)", "Built APIs"]
		}
	}`)

	var c CandidateRecord
	require.NoError(t, json.Unmarshal(data, &c))

	assert.Equal(t, "cand-42", c.CandidateID)
	assert.True(t, c.RankScore.HasFinal)
	assert.InDelta(t, 0.7, c.InterviewScores["clarity"], 1e-9)
	assert.Equal(t, []string{"Communication"}, c.DetailedProfile.SoftSkills)
	assert.Equal(t, []string{"Go"}, c.DetailedProfile.InferredTechnicalSkills)
}

func TestSkillKind_Valid(t *testing.T) {
	assert.True(t, SkillKindSoft.Valid())
	assert.True(t, SkillKindTechnical.Valid())
	assert.False(t, SkillKind("").Valid())
	assert.False(t, SkillKind("hard").Valid())
}

func TestSkillKind_Title(t *testing.T) {
	assert.Equal(t, "Soft Skills", SkillKindSoft.Title())
	assert.Equal(t, "Technical Skills", SkillKindTechnical.Title())
}

func TestDetailedProfile_SkillAccessors(t *testing.T) {
	p := DetailedProfile{
		SoftSkills:              []string{"Leadership"},
		TechnicalSkills:         []string{"Go"},
		InferredSoftSkills:      []string{"Empathy"},
		InferredTechnicalSkills: []string{"SQL"},
	}

	assert.Equal(t, []string{"Leadership"}, p.DirectSkills(SkillKindSoft))
	assert.Equal(t, []string{"Go"}, p.DirectSkills(SkillKindTechnical))
	assert.Equal(t, []string{"Empathy"}, p.InferredSkills(SkillKindSoft))
	assert.Equal(t, []string{"SQL"}, p.InferredSkills(SkillKindTechnical))
}
