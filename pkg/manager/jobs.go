package manager

import (
	"context"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/jshim/cinesync/pkg/pagination"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/table"
)

// ListJobs returns the job history, newest first, with its pagination meta
func (m MediaManager) ListJobs(ctx context.Context, params pagination.Params) (*JobListResponse, pagination.Meta, error) {
	where := table.JobTransition.MostRecent.EQ(sqlite.Bool(true))

	total, err := m.storage.CountJobs(ctx, where)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	offset, limit := params.CalculateOffsetLimit()
	jobs, err := m.storage.ListJobs(ctx, offset, limit, where)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	response := &JobListResponse{
		Jobs:  make([]JobResponse, 0, len(jobs)),
		Count: total,
	}
	for _, job := range jobs {
		response.Jobs = append(response.Jobs, toJobResponse(job))
	}

	return response, params.BuildMeta(total), nil
}

// GetJob returns one job by id
func (m MediaManager) GetJob(ctx context.Context, id int64) (*JobResponse, error) {
	job, err := m.storage.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	response := toJobResponse(job)
	return &response, nil
}
