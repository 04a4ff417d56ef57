package manager

import (
	"time"

	"github.com/jshim/cinesync/pkg/storage"
)

// TriggerJobRequest represents the request to manually trigger a job
type TriggerJobRequest struct {
	Type string `json:"type" validate:"required"`
	// Parameter narrows the job, e.g. the target date for a box office pull
	Parameter string `json:"parameter,omitempty"`
}

// JobResponse represents a single job in API responses
type JobResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Parameter *string   `json:"parameter,omitempty"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Error     *string   `json:"error,omitempty"`
}

// JobListResponse represents a list of jobs in API responses
type JobListResponse struct {
	Jobs  []JobResponse `json:"jobs"`
	Count int           `json:"count"`
}

// toJobResponse converts a storage.Job to a JobResponse
func toJobResponse(job *storage.Job) JobResponse {
	return JobResponse{
		ID:        int64(job.ID),
		Type:      job.Type,
		Parameter: job.Parameter,
		State:     string(job.State),
		CreatedAt: *job.CreatedAt,
		UpdatedAt: *job.UpdatedAt,
		Error:     job.Error,
	}
}

// isValidJobType validates that a job type string matches one of the defined JobType constants
func isValidJobType(jobType string) bool {
	switch JobType(jobType) {
	case BoxOfficeIngest, CatalogRefresh, BoxOfficeReconcile:
		return true
	default:
		return false
	}
}
