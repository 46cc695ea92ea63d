package domain

import (
	"time"

	"github.com/google/uuid"
)

// Export job lifecycle. A job moves pending -> completed | failed and
// is never retried automatically.
const (
	ExportPending   = "pending"
	ExportCompleted = "completed"
	ExportFailed    = "failed"
)

// ExportJob tracks one document export from request to terminal state.
type ExportJob struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	FileName  string    `json:"fileName"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// PDF holds the finished artifact; it is served for download, not
	// part of the job's JSON representation.
	PDF []byte `json:"-"`
}
