package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	repo "github.com/andersevenrud/userbase/internal/user/repository/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var metadataColumns = []string{"id", "user_id", "key", "value", "created_at", "updated_at"}

// TestMetadataList covers the List repository method.
func TestMetadataList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewMetadataRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows(metadataColumns).
			AddRow(int64(1), int64(1), "preferences", "{}", time.Now(), nil).
			AddRow(int64(2), int64(1), "theme", "dark", time.Now(), nil)

		mock.ExpectQuery("SELECT (.+) FROM user_metadata").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		entries, err := r.List(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, "preferences", entries[0].Key)
		assert.Equal(t, "dark", entries[1].Value)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM user_metadata").
			WithArgs(int64(1)).
			WillReturnError(fmt.Errorf("db error"))

		entries, err := r.List(ctx, 1)
		assert.Error(t, err)
		assert.Nil(t, entries)
	})

	t.Run("database error on row scan", func(t *testing.T) {
		rows := pgxmock.NewRows(metadataColumns).
			AddRow("not-an-int", int64(1), "preferences", "{}", time.Now(), nil)

		mock.ExpectQuery("SELECT (.+) FROM user_metadata").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		entries, err := r.List(ctx, 1)
		assert.Error(t, err)
		assert.Nil(t, entries)
		assert.Contains(t, err.Error(), "failed to scan metadata row")
	})
}

// TestMetadataFetch covers the Fetch repository method.
func TestMetadataFetch(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewMetadataRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM user_metadata").
			WithArgs(int64(1), "preferences").
			WillReturnRows(pgxmock.NewRows(metadataColumns).
				AddRow(int64(1), int64(1), "preferences", "{}", time.Now(), nil))

		m, err := r.Fetch(ctx, 1, "preferences")
		require.NoError(t, err)
		assert.Equal(t, "{}", m.Value)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM user_metadata").
			WithArgs(int64(1), "missing").
			WillReturnError(pgx.ErrNoRows)

		m, err := r.Fetch(ctx, 1, "missing")
		require.NoError(t, err)
		assert.Nil(t, m)
	})
}

// TestMetadataInsert covers the Insert repository method.
func TestMetadataInsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewMetadataRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO user_metadata").
			WithArgs(int64(1), "theme", "dark").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.Insert(ctx, 1, "theme", "dark")
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO user_metadata").
			WithArgs(int64(1), "theme", "dark").
			WillReturnError(fmt.Errorf("db error"))

		err := r.Insert(ctx, 1, "theme", "dark")
		assert.Error(t, err)
	})
}

// TestMetadataUpdate covers the Update repository method and its row count.
func TestMetadataUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewMetadataRepository(mock)
	ctx := context.Background()

	t.Run("updates one row", func(t *testing.T) {
		mock.ExpectExec("UPDATE user_metadata").
			WithArgs(int64(1), "theme", "light").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		count, err := r.Update(ctx, 1, "theme", "light")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("reports zero for unknown key", func(t *testing.T) {
		mock.ExpectExec("UPDATE user_metadata").
			WithArgs(int64(1), "missing", "x").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		count, err := r.Update(ctx, 1, "missing", "x")
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}

// TestMetadataDelete covers the Delete repository method and its row count.
func TestMetadataDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewMetadataRepository(mock)
	ctx := context.Background()

	t.Run("deletes one row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM user_metadata").
			WithArgs(int64(1), "theme").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		count, err := r.Delete(ctx, 1, "theme")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("reports zero for unknown key", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM user_metadata").
			WithArgs(int64(1), "missing").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		count, err := r.Delete(ctx, 1, "missing")
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}
