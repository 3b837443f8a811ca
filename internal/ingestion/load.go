// Package ingestion reads the candidate and job input documents produced by
// the upstream ranking and profiling services.
package ingestion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/candidate-report/internal/schemas"
	"github.com/jonathan/candidate-report/internal/types"
)

// LoadCandidates reads, schema-validates, and decodes a candidate list file.
func LoadCandidates(path string) ([]types.CandidateRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file %s: %w", path, err)
	}

	if err := schemas.ValidateCandidates(string(data)); err != nil {
		return nil, fmt.Errorf("candidates file %s: %w", path, err)
	}

	var candidates []types.CandidateRecord
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse candidates JSON: %w", err)
	}
	return candidates, nil
}

// LoadJob reads, schema-validates, and decodes a job record file.
func LoadJob(path string) (*types.JobRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	if err := schemas.ValidateJob(string(data)); err != nil {
		return nil, fmt.Errorf("job file %s: %w", path, err)
	}

	var job types.JobRecord
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job JSON: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("job record invalid: %w", err)
	}
	return &job, nil
}
