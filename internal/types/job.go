package types

import (
	"github.com/go-playground/validator/v10"
)

// JobRecord describes the job opening a report is generated for.
// Prompt is the recruiter's free-text ranking instruction; it drives which
// scoring categories the report covers.
type JobRecord struct {
	JobTitle    string   `json:"jobTitle" validate:"required,min=1"`
	Departments []string `json:"departments,omitempty"`
	Prompt      string   `json:"prompt,omitempty"`
}

// Validate validates the JobRecord using the validator.
func (j *JobRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
