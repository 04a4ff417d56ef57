package storage

import (
	"context"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/jshim/cinesync/pkg/machine"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in storage")
var ErrJobAlreadyPending = errors.New("job of this type already pending")

// ErrAlreadyLinked is returned when a box office entry already references a
// catalog movie. A mapping is set exactly once; a second link is a programming
// error, not something to overwrite.
var ErrAlreadyLinked = errors.New("box office entry already linked to a catalog movie")

type Storage interface {
	Init(ctx context.Context) error
	BoxOfficeStorage
	MovieMetadataStorage
	ReferenceStorage
	MovieMediaStorage
	JobStorage
}

// MappingState tracks whether a box office entry has been reconciled against
// the catalog. The only legal transition is unmapped -> mapped.
type MappingState string

const (
	MappingUnmapped MappingState = "unmapped"
	MappingMapped   MappingState = "mapped"
)

// BoxOfficeEntry decorates the stored row with its mapping state.
type BoxOfficeEntry struct {
	model.BoxOfficeEntry
	State MappingState `json:"state"`
}

func (e BoxOfficeEntry) Machine() *machine.StateMachine[MappingState] {
	return machine.New(e.State,
		machine.From(MappingUnmapped).To(MappingMapped),
	)
}

func MappingStateOf(e model.BoxOfficeEntry) MappingState {
	if e.MovieMetadataID != nil {
		return MappingMapped
	}
	return MappingUnmapped
}

type BoxOfficeStorage interface {
	// UpsertBoxOfficeEntries inserts the pull's entries, skipping rows whose
	// (movie_code, target_date) snapshot already exists. Returns the number of
	// rows actually inserted.
	UpsertBoxOfficeEntries(ctx context.Context, entries []model.BoxOfficeEntry) (int64, error)
	GetBoxOfficeEntry(ctx context.Context, id int64) (*model.BoxOfficeEntry, error)
	ListBoxOfficeEntries(ctx context.Context, targetDate string) ([]*model.BoxOfficeEntry, error)
	ListUnmappedBoxOfficeEntries(ctx context.Context) ([]*model.BoxOfficeEntry, error)
	// LinkBoxOfficeMetadata closes the mapping for an entry. Fails with
	// ErrAlreadyLinked if the entry already references a catalog movie.
	LinkBoxOfficeMetadata(ctx context.Context, entryID, metadataID int32) error
}

type MovieMetadataStorage interface {
	GetMovieMetadata(ctx context.Context, where sqlite.BoolExpression) (*model.MovieMetadata, error)
	ListMovieMetadata(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.MovieMetadata, error)
	// ListMovieMetadataByTmdbIDs is the batch existence lookup: one query for
	// the whole id set, never one per record.
	ListMovieMetadataByTmdbIDs(ctx context.Context, tmdbIDs []int32) ([]*model.MovieMetadata, error)
	BatchCreateMovieMetadata(ctx context.Context, metas []model.MovieMetadata) (int64, error)
	UpdateMovieMetadata(ctx context.Context, meta model.MovieMetadata) error
	SoftDeleteMovieMetadata(ctx context.Context, id int32) error
}

// ReferenceStorage covers the shared reference entities keyed by the catalog
// provider's numeric ids. Creates are insert-or-ignore so reference rows are
// never duplicated across batches.
type ReferenceStorage interface {
	ListGenres(ctx context.Context, ids []int32) ([]*model.Genre, error)
	BatchCreateGenres(ctx context.Context, genres []model.Genre) error

	ListPeopleByTmdbIDs(ctx context.Context, tmdbIDs []int32) ([]*model.Person, error)
	BatchCreatePeople(ctx context.Context, people []model.Person) error

	ListWatchProvidersByTmdbIDs(ctx context.Context, tmdbIDs []int32) ([]*model.WatchProvider, error)
	BatchCreateWatchProviders(ctx context.Context, providers []model.WatchProvider) error
}

// MovieMediaStorage covers the child rows owned by a catalog movie.
type MovieMediaStorage interface {
	BatchLinkMovieGenres(ctx context.Context, links []model.MovieGenre) error
	ListMovieGenres(ctx context.Context, movieMetadataID int32) ([]*model.Genre, error)

	BatchCreateMovieCast(ctx context.Context, cast []model.MovieCast) error
	ListMovieCast(ctx context.Context, movieMetadataID int32) ([]*model.MovieCast, error)

	BatchCreateMovieCrew(ctx context.Context, crew []model.MovieCrew) error
	ListMovieCrew(ctx context.Context, movieMetadataID int32) ([]*model.MovieCrew, error)

	BatchCreateMovieImages(ctx context.Context, images []model.MovieImage) (int64, error)
	ListMovieImages(ctx context.Context, movieMetadataID int32) ([]*model.MovieImage, error)

	BatchCreateMovieVideos(ctx context.Context, videos []model.MovieVideo) (int64, error)
	ListMovieVideos(ctx context.Context, movieMetadataID int32) ([]*model.MovieVideo, error)

	BatchLinkMovieWatchProviders(ctx context.Context, links []model.MovieWatchProvider) error
	ListMovieWatchProviders(ctx context.Context, movieMetadataID int32) ([]*model.MovieWatchProvider, error)
}

type JobState string

const (
	JobStateNew       JobState = ""
	JobStatePending   JobState = "pending"
	JobStateRunning   JobState = "running"
	JobStateError     JobState = "error"
	JobStateDone      JobState = "done"
	JobStateCancelled JobState = "cancelled"
)

type Job struct {
	model.Job
	State     JobState   `alias:"job_transition.to_state" json:"state"`
	Error     *string    `alias:"job_transition.error" json:"error,omitempty"`
	UpdatedAt *time.Time `alias:"job_transition.updated_at" json:"updatedAt"`
}

type JobTransition model.JobTransition

func (j Job) Machine() *machine.StateMachine[JobState] {
	return machine.New(j.State,
		machine.From(JobStateNew).To(JobStatePending),
		machine.From(JobStatePending).To(JobStateRunning, JobStateCancelled),
		machine.From(JobStateRunning).To(JobStateError, JobStateDone, JobStateCancelled),
	)
}

type JobStorage interface {
	CreateJob(ctx context.Context, job Job, initialState JobState) (int64, error)
	GetJob(ctx context.Context, id int64) (*Job, error)
	ListJobs(ctx context.Context, offset, limit int, where ...sqlite.BoolExpression) ([]*Job, error)
	CountJobs(ctx context.Context, where ...sqlite.BoolExpression) (int, error)
	UpdateJobState(ctx context.Context, id int64, state JobState, errorMsg *string) error
	DeleteJobs(ctx context.Context, where ...sqlite.BoolExpression) (int64, error)
}
