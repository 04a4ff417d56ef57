package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/jshim/cinesync/pkg/storage"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/model"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/table"
)

const timestampFormat = "2006-01-02 15:04:05"

// getActiveJob retrieves a pending or running job for the given type and run
// parameter, if any
func (s *SQLite) getActiveJob(ctx context.Context, jobType string, parameter *string) (*storage.Job, error) {
	parameterExpr := table.Job.Parameter.IS_NULL()
	if parameter != nil {
		parameterExpr = table.Job.Parameter.EQ(sqlite.String(*parameter))
	}

	stmt := table.Job.
		SELECT(
			table.Job.AllColumns,
			table.JobTransition.ToState,
			table.JobTransition.UpdatedAt,
			table.JobTransition.Error,
		).
		FROM(
			table.Job.INNER_JOIN(
				table.JobTransition,
				table.Job.ID.EQ(table.JobTransition.JobID),
			),
		).
		WHERE(
			table.JobTransition.Type.EQ(sqlite.String(jobType)).
				AND(parameterExpr).
				AND(table.JobTransition.ToState.IN(
					sqlite.String(string(storage.JobStatePending)),
					sqlite.String(string(storage.JobStateRunning)),
				)).
				AND(table.JobTransition.MostRecent.EQ(sqlite.Bool(true))),
		).
		LIMIT(1)

	job := new(storage.Job)
	err := stmt.QueryContext(ctx, s.db, job)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active job: %w", err)
	}

	return job, nil
}

// CreateJob stores a job and creates an initial state. Creating a pending job
// while one of the same type and run parameter is pending or running fails
// with ErrJobAlreadyPending; a trigger with a different parameter is always
// accepted.
func (s *SQLite) CreateJob(ctx context.Context, job storage.Job, initialState storage.JobState) (int64, error) {
	if job.State == "" {
		job.State = storage.JobStateNew
	}

	err := job.Machine().ToState(initialState)
	if err != nil {
		return 0, err
	}

	if initialState == storage.JobStatePending {
		existing, err := s.getActiveJob(ctx, job.Type, job.Parameter)
		if err == nil && existing != nil {
			return 0, storage.ErrJobAlreadyPending
		}
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return 0, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	jobModel := model.Job{
		Type:      job.Type,
		Parameter: job.Parameter,
	}

	stmt := table.Job.
		INSERT(table.Job.Type, table.Job.Parameter).
		MODEL(jobModel).
		RETURNING(table.Job.ID)

	result, err := stmt.ExecContext(ctx, tx)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	inserted, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	transition := model.JobTransition{
		JobID:      int32(inserted),
		Type:       job.Type,
		ToState:    string(initialState),
		MostRecent: true,
		SortKey:    1,
	}

	transitionStmt := table.JobTransition.
		INSERT(table.JobTransition.AllColumns.
			Except(table.JobTransition.ID, table.JobTransition.CreatedAt, table.JobTransition.UpdatedAt)).
		MODEL(transition)

	_, err = transitionStmt.ExecContext(ctx, tx)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	err = tx.Commit()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	return inserted, nil
}

// GetJob retrieves a job by ID with its current state
func (s *SQLite) GetJob(ctx context.Context, id int64) (*storage.Job, error) {
	stmt := table.Job.
		SELECT(
			table.Job.AllColumns,
			table.JobTransition.ToState,
			table.JobTransition.UpdatedAt,
			table.JobTransition.Error,
		).
		FROM(
			table.Job.INNER_JOIN(
				table.JobTransition,
				table.Job.ID.EQ(table.JobTransition.JobID),
			),
		).
		WHERE(
			table.Job.ID.EQ(sqlite.Int(id)).
				AND(table.JobTransition.MostRecent.EQ(sqlite.Bool(true))),
		)

	job := new(storage.Job)
	err := stmt.QueryContext(ctx, s.db, job)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return job, nil
}

// CountJobs returns the total count of jobs matching the where conditions
func (s *SQLite) CountJobs(ctx context.Context, where ...sqlite.BoolExpression) (int, error) {
	stmt := table.Job.
		SELECT(sqlite.COUNT(table.Job.ID).AS("count")).
		FROM(
			table.Job.INNER_JOIN(
				table.JobTransition,
				table.Job.ID.EQ(table.JobTransition.JobID),
			),
		)

	if len(where) > 0 {
		stmt = stmt.WHERE(sqlite.AND(where...))
	}

	var result struct {
		Count int64
	}
	err := stmt.QueryContext(ctx, s.db, &result)
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	return int(result.Count), nil
}

// ListJobs lists all jobs with optional pagination and where expressions
// If limit is 0, returns all jobs without pagination
func (s *SQLite) ListJobs(ctx context.Context, offset, limit int, where ...sqlite.BoolExpression) ([]*storage.Job, error) {
	stmt := table.Job.
		SELECT(
			table.Job.AllColumns,
			table.JobTransition.ToState,
			table.JobTransition.UpdatedAt,
			table.JobTransition.Error,
		).
		FROM(
			table.Job.INNER_JOIN(
				table.JobTransition,
				table.Job.ID.EQ(table.JobTransition.JobID),
			),
		).
		ORDER_BY(table.Job.CreatedAt.DESC(), table.Job.ID.DESC())

	if len(where) > 0 {
		stmt = stmt.WHERE(sqlite.AND(where...))
	}

	if limit > 0 {
		stmt = stmt.LIMIT(int64(limit)).OFFSET(int64(offset))
	}

	jobs := make([]*storage.Job, 0)
	err := stmt.QueryContext(ctx, s.db, &jobs)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, nil
}

// UpdateJobState updates the state of a job, optionally setting an error message
func (s *SQLite) UpdateJobState(ctx context.Context, id int64, state storage.JobState, errorMsg *string) error {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return err
	}

	err = job.Machine().ToState(state)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	previousStmt := table.JobTransition.
		UPDATE().
		SET(
			table.JobTransition.MostRecent.SET(sqlite.Bool(false)),
			table.JobTransition.UpdatedAt.SET(sqlite.TimestampExp(sqlite.String(time.Now().UTC().Format(timestampFormat)))),
		).
		WHERE(
			table.JobTransition.JobID.EQ(sqlite.Int32(int32(id))).
				AND(table.JobTransition.MostRecent.EQ(sqlite.Bool(true))),
		).
		RETURNING(table.JobTransition.AllColumns)

	var previousTransition model.JobTransition
	err = previousStmt.QueryContext(ctx, tx, &previousTransition)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to update previous job transition: %w", err)
	}

	transition := model.JobTransition{
		JobID:      int32(id),
		Type:       job.Type,
		ToState:    string(state),
		MostRecent: true,
		SortKey:    previousTransition.SortKey + 1,
		Error:      errorMsg,
	}

	insertStmt := table.JobTransition.
		INSERT(table.JobTransition.AllColumns.
			Except(table.JobTransition.ID, table.JobTransition.CreatedAt, table.JobTransition.UpdatedAt)).
		MODEL(transition)

	_, err = insertStmt.ExecContext(ctx, tx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert new job transition: %w", err)
	}

	return tx.Commit()
}

// DeleteJobs removes jobs matching the where conditions and returns the
// number of rows removed
func (s *SQLite) DeleteJobs(ctx context.Context, where ...sqlite.BoolExpression) (int64, error) {
	stmt := table.Job.DELETE()

	if len(where) > 0 {
		stmt = stmt.WHERE(sqlite.AND(where...))
	}

	result, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to delete jobs: %w", err)
	}

	return result.RowsAffected()
}
