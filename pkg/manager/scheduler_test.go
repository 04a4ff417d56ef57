package manager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/jshim/cinesync/config"
	"github.com/jshim/cinesync/pkg/storage"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/model"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(t *testing.T, store storage.Storage, executors map[JobType]JobExecutor) *Scheduler {
	t.Helper()
	return NewScheduler(store, config.Manager{
		Jobs: config.Jobs{
			JobScheduleInterval: time.Minute,
			CleanupPeriod:       -1,
		},
	}, executors)
}

func TestTriggerJob(t *testing.T) {
	t.Run("invalid job type", func(t *testing.T) {
		s := newTestScheduler(t, newTestStore(t), nil)

		_, err := s.TriggerJob(context.Background(), TriggerJobRequest{Type: "NotAJob"})
		assert.Error(t, err)
	})

	t.Run("duplicate trigger is rejected", func(t *testing.T) {
		s := newTestScheduler(t, newTestStore(t), nil)
		ctx := context.Background()

		_, err := s.TriggerJob(ctx, TriggerJobRequest{Type: string(BoxOfficeReconcile)})
		require.NoError(t, err)

		_, err = s.TriggerJob(ctx, TriggerJobRequest{Type: string(BoxOfficeReconcile)})
		assert.ErrorIs(t, err, storage.ErrJobAlreadyPending)
	})

	t.Run("same type different parameter is allowed", func(t *testing.T) {
		s := newTestScheduler(t, newTestStore(t), nil)
		ctx := context.Background()

		_, err := s.TriggerJob(ctx, TriggerJobRequest{Type: string(BoxOfficeIngest), Parameter: "20231117"})
		require.NoError(t, err)

		_, err = s.TriggerJob(ctx, TriggerJobRequest{Type: string(BoxOfficeIngest), Parameter: "20231118"})
		require.NoError(t, err)

		_, err = s.TriggerJob(ctx, TriggerJobRequest{Type: string(BoxOfficeIngest), Parameter: "20231117"})
		assert.ErrorIs(t, err, storage.ErrJobAlreadyPending)
	})
}

func TestExecuteJob(t *testing.T) {
	t.Run("successful run lands in done", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		var ran bool
		s := newTestScheduler(t, store, map[JobType]JobExecutor{
			BoxOfficeReconcile: func(ctx context.Context, job *storage.Job) error {
				ran = true
				return nil
			},
		})

		id, err := s.TriggerJob(ctx, TriggerJobRequest{Type: string(BoxOfficeReconcile)})
		require.NoError(t, err)

		job, err := store.GetJob(ctx, id)
		require.NoError(t, err)
		s.executeJob(ctx, job)

		assert.True(t, ran)

		job, err = store.GetJob(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, storage.JobStateDone, job.State)
	})

	t.Run("failed run lands in error with the message", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		wantErr := errors.New("expected testing error")
		s := newTestScheduler(t, store, map[JobType]JobExecutor{
			CatalogRefresh: func(ctx context.Context, job *storage.Job) error {
				return wantErr
			},
		})

		id, err := s.TriggerJob(ctx, TriggerJobRequest{Type: string(CatalogRefresh)})
		require.NoError(t, err)

		job, err := store.GetJob(ctx, id)
		require.NoError(t, err)
		s.executeJob(ctx, job)

		job, err = store.GetJob(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, storage.JobStateError, job.State)
		require.NotNil(t, job.Error)
		assert.Equal(t, wantErr.Error(), *job.Error)
	})

	t.Run("executor receives the job parameter", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		var got string
		s := newTestScheduler(t, store, map[JobType]JobExecutor{
			BoxOfficeIngest: func(ctx context.Context, job *storage.Job) error {
				if job.Parameter != nil {
					got = *job.Parameter
				}
				return nil
			},
		})

		id, err := s.TriggerJob(ctx, TriggerJobRequest{Type: string(BoxOfficeIngest), Parameter: "20231117"})
		require.NoError(t, err)

		job, err := store.GetJob(ctx, id)
		require.NoError(t, err)
		s.executeJob(ctx, job)

		assert.Equal(t, "20231117", got)
	})

	t.Run("unknown executor lands in error", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		s := newTestScheduler(t, store, map[JobType]JobExecutor{})

		id, err := s.TriggerJob(ctx, TriggerJobRequest{Type: string(BoxOfficeReconcile)})
		require.NoError(t, err)

		job, err := store.GetJob(ctx, id)
		require.NoError(t, err)
		s.executeJob(ctx, job)

		job, err = store.GetJob(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, storage.JobStateError, job.State)
	})

	t.Run("rerun after completion is allowed", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		s := newTestScheduler(t, store, map[JobType]JobExecutor{
			BoxOfficeReconcile: func(ctx context.Context, job *storage.Job) error {
				return nil
			},
		})

		id, err := s.TriggerJob(ctx, TriggerJobRequest{Type: string(BoxOfficeReconcile)})
		require.NoError(t, err)

		job, err := store.GetJob(ctx, id)
		require.NoError(t, err)
		s.executeJob(ctx, job)

		_, err = s.TriggerJob(ctx, TriggerJobRequest{Type: string(BoxOfficeReconcile)})
		assert.NoError(t, err)
	})
}

func TestCancelJob(t *testing.T) {
	t.Run("pending job is cancelled directly", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		s := newTestScheduler(t, store, nil)

		id, err := s.TriggerJob(ctx, TriggerJobRequest{Type: string(BoxOfficeReconcile)})
		require.NoError(t, err)

		require.NoError(t, s.CancelJob(ctx, id))

		job, err := store.GetJob(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, storage.JobStateCancelled, job.State)
	})

	t.Run("unknown job", func(t *testing.T) {
		s := newTestScheduler(t, newTestStore(t), nil)
		err := s.CancelJob(context.Background(), 12345)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestPruneOldJobs(t *testing.T) {
	finishJob := func(t *testing.T, ctx context.Context, store storage.Storage, jobType JobType) int64 {
		t.Helper()
		id, err := store.CreateJob(ctx, storage.Job{Job: model.Job{Type: string(jobType)}}, storage.JobStatePending)
		require.NoError(t, err)
		require.NoError(t, store.UpdateJobState(ctx, id, storage.JobStateRunning, nil))
		require.NoError(t, store.UpdateJobState(ctx, id, storage.JobStateDone, nil))
		return id
	}

	t.Run("a recent job outside the keep list survives", func(t *testing.T) {
		ctx := context.Background()
		store := newTestStore(t)
		s := NewScheduler(store, config.Manager{
			Jobs: config.Jobs{
				CleanupPeriod: time.Hour * 720,
				MinJobsToKeep: 1,
			},
		}, nil)

		for i := 0; i < 3; i++ {
			finishJob(t, ctx, store, CatalogRefresh)
		}

		s.pruneOldJobs(ctx)

		count, err := store.CountJobs(ctx, table.JobTransition.MostRecent.EQ(sqlite.Bool(true)))
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("preserved jobs survive an expired cutoff", func(t *testing.T) {
		ctx := context.Background()
		store := newTestStore(t)
		s := NewScheduler(store, config.Manager{
			Jobs: config.Jobs{
				// every job is immediately past the cutoff
				CleanupPeriod: -time.Hour,
				MinJobsToKeep: 1,
			},
		}, nil)

		finishJob(t, ctx, store, CatalogRefresh)
		newest := finishJob(t, ctx, store, CatalogRefresh)

		s.pruneOldJobs(ctx)

		jobs, err := store.ListJobs(ctx, 0, 0, table.JobTransition.MostRecent.EQ(sqlite.Bool(true)))
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, int32(newest), jobs[0].ID)
	})
}

func TestToJobResponse(t *testing.T) {
	created := time.Date(2023, 11, 17, 9, 0, 0, 0, time.UTC)
	updated := created.Add(2 * time.Minute)

	job := &storage.Job{
		Job: model.Job{
			ID:        7,
			Type:      string(BoxOfficeIngest),
			Parameter: ptr("20231117"),
			CreatedAt: &created,
		},
		State:     storage.JobStateDone,
		UpdatedAt: &updated,
	}

	snaps.MatchJSON(t, toJobResponse(job))
}

func TestIsValidJobType(t *testing.T) {
	assert.True(t, isValidJobType(string(BoxOfficeIngest)))
	assert.True(t, isValidJobType(string(CatalogRefresh)))
	assert.True(t, isValidJobType(string(BoxOfficeReconcile)))
	assert.False(t, isValidJobType("MovieIndex"))
	assert.False(t, isValidJobType(""))
}
