package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-report/internal/config"
)

func TestGenerateReport_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	candidatesPath := filepath.Join(dir, "candidates.json")
	require.NoError(t, os.WriteFile(candidatesPath, []byte(`[
		{
			"candidateId": "cand-1",
			"rank_score": {"skill_relevance": 0.8, "skill_proficiency": 0.7, "final_score": 0.75},
			"detailed_profile": {
				"technical_skills": ["Go", "SQL"],
				"inferred_technical_skills": ["Docker"],
				"work_experience": ["Backend Engineer, Acme (2021 - 2023)\nBuilt the billing pipeline."]
			}
		},
		{
			"candidateId": "cand-2",
			"rank_score": {"skill_relevance": 0.5, "final_score": 0.42},
			"detailed_profile": {"soft_skills": ["Teamwork"]}
		}
	]`), 0o644))

	jobPath := filepath.Join(dir, "job.json")
	require.NoError(t, os.WriteFile(jobPath, []byte(`{
		"jobTitle": "Backend Engineer",
		"departments": ["Engineering"],
		"prompt": "rank by skills and experience"
	}`), 0o644))

	outPath := filepath.Join(dir, "report.pdf")
	cfg := config.Config{
		Candidates:  candidatesPath,
		Job:         jobPath,
		Output:      outPath,
		LogoLabel:   "Talent Insights",
		LogoTimeout: 1,
	}

	require.NoError(t, generateReport(context.Background(), cfg))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "output must be a PDF document")
}

func TestGenerateReport_EmptyCandidateList(t *testing.T) {
	dir := t.TempDir()
	candidatesPath := filepath.Join(dir, "candidates.json")
	require.NoError(t, os.WriteFile(candidatesPath, []byte(`[]`), 0o644))

	jobPath := filepath.Join(dir, "job.json")
	require.NoError(t, os.WriteFile(jobPath, []byte(`{"jobTitle": "Backend Engineer"}`), 0o644))

	cfg := config.Config{
		Candidates: candidatesPath,
		Job:        jobPath,
		Output:     filepath.Join(dir, "report.pdf"),
	}

	err := generateReport(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}
