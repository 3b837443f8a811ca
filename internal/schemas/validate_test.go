package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCandidates_AcceptsWellFormedList(t *testing.T) {
	doc := `[
		{
			"candidateId": "cand-1",
			"rank_score": {"skill_relevance": 0.8, "final_score": 0.67},
			"interview_scores": {"clarity": 0.7},
			"detailed_profile": {
				"soft_skills": ["Communication"],
				"technical_skills": ["Go"],
				"inferred_technical_skills": ["Docker"],
				"languages": ["English"],
				"work_experience": ["Backend Engineer (2021 - 2023)"],
				"education": ["BSc Computer Science (2019)"]
			}
		},
		{"candidateId": "cand-2", "rank_score": {}}
	]`
	assert.NoError(t, ValidateCandidates(doc))
}

func TestValidateCandidates_RejectsMissingRequiredFields(t *testing.T) {
	err := ValidateCandidates(`[{"rank_score": {}}]`)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "candidateId")
}

func TestValidateCandidates_RejectsUnknownProfileFields(t *testing.T) {
	doc := `[{
		"candidateId": "cand-1",
		"rank_score": {},
		"detailed_profile": {"hobbies": ["chess"]}
	}]`
	var ve *ValidationError
	require.ErrorAs(t, ValidateCandidates(doc), &ve)
}

func TestValidateCandidates_RejectsNonNumericScores(t *testing.T) {
	doc := `[{"candidateId": "cand-1", "rank_score": {"skill_relevance": "high"}}]`
	assert.Error(t, ValidateCandidates(doc))
}

func TestValidateCandidates_RejectsOutOfRangeInterviewScores(t *testing.T) {
	doc := `[{"candidateId": "cand-1", "rank_score": {}, "interview_scores": {"clarity": 1.5}}]`
	assert.Error(t, ValidateCandidates(doc))
}

func TestValidateCandidates_RejectsMalformedJSON(t *testing.T) {
	assert.Error(t, ValidateCandidates(`[{`))
}

func TestValidateJob_AcceptsWellFormedRecord(t *testing.T) {
	doc := `{
		"jobTitle": "Backend Engineer",
		"departments": ["Engineering"],
		"prompt": "rank by skills and experience"
	}`
	assert.NoError(t, ValidateJob(doc))
}

func TestValidateJob_RequiresTitle(t *testing.T) {
	var ve *ValidationError
	require.ErrorAs(t, ValidateJob(`{"prompt": "rank by skills"}`), &ve)
}

func TestValidateJob_RejectsEmptyTitle(t *testing.T) {
	assert.Error(t, ValidateJob(`{"jobTitle": ""}`))
}

func TestValidateJob_RejectsUnknownFields(t *testing.T) {
	assert.Error(t, ValidateJob(`{"jobTitle": "Engineer", "salary": 100000}`))
}

func TestValidationError_ListsEveryFailure(t *testing.T) {
	err := ValidateCandidates(`[{"rank_score": {}}, {"candidateId": ""}]`)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.GreaterOrEqual(t, len(ve.Errors), 2)
}
