package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atinyakov/url-registry/internal/storage"
)

// fixedCodes returns the given codes in order.
type fixedCodes struct {
	codes []string
	next  int
}

func (f *fixedCodes) Generate() string {
	c := f.codes[f.next%len(f.codes)]
	f.next++
	return c
}

// Helper to set up a mock DB and repository
func setupMockDB(t *testing.T, codes ...string) (*sql.DB, sqlmock.Sqlmock, *URLRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	if len(codes) == 0 {
		codes = []string{"abcDEF123_"}
	}

	repo := CreateURLRepository(db, &fixedCodes{codes: codes}, zap.NewNop())
	return db, mock, repo
}

func urlRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "short_url", "long_url"})
}

func TestCreate(t *testing.T) {
	_, mock, repo := setupMockDB(t, "abcDEF123_")

	mock.ExpectQuery(regexp.QuoteMeta(insertURLQuery)).
		WithArgs("abcDEF123_", "https://example.com").
		WillReturnRows(urlRows().AddRow(1, "abcDEF123_", "https://example.com"))

	result, err := repo.Create(context.Background(), "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, storage.URLRecord{ID: 1, Short: "abcDEF123_", Original: "https://example.com"}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_RetriesUniqueViolation(t *testing.T) {
	_, mock, repo := setupMockDB(t, "collision0", "freshcode1")

	mock.ExpectQuery(regexp.QuoteMeta(insertURLQuery)).
		WithArgs("collision0", "https://example.com").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "urls_short_url_key"})
	mock.ExpectQuery(regexp.QuoteMeta(insertURLQuery)).
		WithArgs("freshcode1", "https://example.com").
		WillReturnRows(urlRows().AddRow(7, "freshcode1", "https://example.com"))

	result, err := repo.Create(context.Background(), "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.ID)
	assert.Equal(t, "freshcode1", result.Short)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_GivesUpAfterMaxAttempts(t *testing.T) {
	_, mock, repo := setupMockDB(t, "collision0")

	for i := 0; i < storage.MaxCreateAttempts; i++ {
		mock.ExpectQuery(regexp.QuoteMeta(insertURLQuery)).
			WithArgs("collision0", "https://example.com").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	}

	_, err := repo.Create(context.Background(), "https://example.com")

	require.ErrorIs(t, err, storage.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_BackendError(t *testing.T) {
	_, mock, repo := setupMockDB(t)
	backendErr := errors.New("connection reset by peer")

	mock.ExpectQuery(regexp.QuoteMeta(insertURLQuery)).
		WillReturnError(backendErr)

	_, err := repo.Create(context.Background(), "https://example.com")

	require.ErrorIs(t, err, backendErr)
	assert.NotErrorIs(t, err, storage.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectURLsQuery)).
		WillReturnRows(urlRows().
			AddRow(1, "abc1234567", "https://example.com").
			AddRow(2, "xyz7654321", "https://example2.com"))

	result, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, storage.URLRecord{ID: 1, Short: "abc1234567", Original: "https://example.com"}, result[0])
	assert.Equal(t, "https://example2.com", result[1].Original)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Empty(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectURLsQuery)).
		WillReturnRows(urlRows())

	result, err := repo.List(context.Background())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_RowError(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectURLsQuery)).
		WillReturnRows(urlRows().
			AddRow(1, "abc1234567", "https://example.com").
			RowError(0, errors.New("row broken")))

	_, err := repo.List(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "row broken")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(deleteURLQuery)).
		WithArgs(int64(3)).
		WillReturnRows(urlRows().AddRow(3, "abc1234567", "https://example.com"))

	result, err := repo.Delete(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, storage.URLRecord{ID: 3, Short: "abc1234567", Original: "https://example.com"}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(deleteURLQuery)).
		WithArgs(int64(42)).
		WillReturnRows(urlRows())

	_, err := repo.Delete(context.Background(), 42)

	require.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_BackendError(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(deleteURLQuery)).
		WithArgs(int64(1)).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.Delete(context.Background(), 1)

	require.ErrorIs(t, err, sql.ErrConnDone)
	assert.NotErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPingContext(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	repo := CreateURLRepository(db, &fixedCodes{codes: []string{"x"}}, zap.NewNop())

	mock.ExpectPing()
	require.NoError(t, repo.PingContext(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("down"))
	require.Error(t, repo.PingContext(context.Background()))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDefaultPoolOptions(t *testing.T) {
	opts := DefaultPoolOptions(8)
	assert.Equal(t, 8, opts.MaxOpenConns)
	assert.Equal(t, 4, opts.MaxIdleConns)

	fallback := DefaultPoolOptions(0)
	assert.Equal(t, 10, fallback.MaxOpenConns)

	single := DefaultPoolOptions(1)
	assert.Equal(t, 1, single.MaxIdleConns)
}
