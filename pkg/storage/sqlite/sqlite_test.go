package sqlite_test

import (
	"context"
	"testing"

	"github.com/jshim/cinesync/pkg/storage"
	"github.com/jshim/cinesync/pkg/storage/sqlite"
	"github.com/stretchr/testify/require"
)

func initTestDB(t *testing.T) storage.Storage {
	t.Helper()

	store, err := sqlite.New(":memory:")
	require.NoError(t, err)

	err = store.Init(context.Background())
	require.NoError(t, err)

	return store
}

func ptr[T any](v T) *T {
	return &v
}
