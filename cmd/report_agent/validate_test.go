package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunValidateCmd_NoInputs(t *testing.T) {
	valCandidates, valJob = "", ""
	assert.Error(t, runValidateCmd(validateCommand, nil))
}

func TestRunValidateCmd_ValidInputs(t *testing.T) {
	valCandidates = writeTemp(t, "candidates.json", `[{"candidateId": "cand-1", "rank_score": {}}]`)
	valJob = writeTemp(t, "job.json", `{"jobTitle": "Backend Engineer"}`)
	defer func() { valCandidates, valJob = "", "" }()

	assert.NoError(t, runValidateCmd(validateCommand, nil))
}

func TestRunValidateCmd_InvalidCandidates(t *testing.T) {
	valCandidates = writeTemp(t, "candidates.json", `[{"rank_score": {}}]`)
	valJob = ""
	defer func() { valCandidates = "" }()

	assert.Error(t, runValidateCmd(validateCommand, nil))
}

func TestRunValidateCmd_InvalidJob(t *testing.T) {
	valCandidates = ""
	valJob = writeTemp(t, "job.json", `{"prompt": "no title"}`)
	defer func() { valJob = "" }()

	assert.Error(t, runValidateCmd(validateCommand, nil))
}
