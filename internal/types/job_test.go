package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobRecord_Validate(t *testing.T) {
	job := &JobRecord{JobTitle: "Software Engineer", Departments: []string{"Engineering"}}
	assert.NoError(t, job.Validate())
}

func TestJobRecord_Validate_MissingTitle(t *testing.T) {
	job := &JobRecord{Prompt: "rank by skills"}
	assert.Error(t, job.Validate())
}
