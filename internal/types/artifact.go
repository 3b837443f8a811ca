package types

import (
	"time"

	"github.com/google/uuid"
)

// DocumentArtifact is the finished report: the rendered bytes plus a suggested
// filename derived from the job title. The artifact is opaque to callers; it is
// either complete or absent (generation never returns partial output).
type DocumentArtifact struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	Bytes       []byte    `json:"-"`
	GeneratedAt time.Time `json:"generated_at"`
}
