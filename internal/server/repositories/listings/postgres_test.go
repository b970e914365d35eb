package listings

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func listingColumns() []string {
	return []string{"id", "owner_id", "brand", "name", "description", "imageUrls"}
}

func TestList_PaginatesAndCounts(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT\s+COUNT\(\*\)\s+FROM\s+listing$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(23))
	mock.ExpectQuery(`FROM\s+listing\s+ORDER\s+BY\s+id\s+LIMIT\s+\$1\s+OFFSET\s+\$2`).
		WithArgs(10, 10).
		WillReturnRows(sqlmock.NewRows(listingColumns()).
			AddRow("l-1", "o-1", "Levi's", "501", "denim", []byte(`["https://img/1.png"]`)).
			AddRow("l-2", "o-1", "Gap", "Tee", "cotton", nil))

	got, err := repo.List(context.Background(), models.Page{Number: 2, Size: 0})
	require.NoError(t, err)
	assert.Equal(t, 23, got.TotalCount)
	require.Len(t, got.Listings, 2)
	assert.Equal(t, []string{"https://img/1.png"}, got.Listings[0].ImageURLs)
	assert.Equal(t, []string{}, got.Listings[1].ImageURLs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearch_EscapesPattern(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT\s+COUNT\(\*\)\s+FROM\s+listing\s+WHERE\s+\(data->>'brand'\)\s+ILIKE\s+\$1`).
		WithArgs(`%50\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`ILIKE\s+\$1.*LIMIT\s+\$2\s+OFFSET\s+\$3`).
		WithArgs(`%50\%%`, 10, 0).
		WillReturnRows(sqlmock.NewRows(listingColumns()))

	got, err := repo.Search(context.Background(), "50%", models.Page{})
	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalCount)
	assert.Empty(t, got.Listings)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`WHERE\s+id\s*=\s*\$1`).WithArgs("missing").WillReturnError(sql.ErrNoRows)
	_, err := repo.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+listing\s*\(owner_id,\s*data\).*RETURNING\s+id`).
		WithArgs("o-1", "Levi's", "501", "denim", `["a","b"]`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("l-1"))

	got, err := repo.Create(context.Background(), models.NewListing{
		OwnerID: "o-1", Brand: "Levi's", Name: "501", Description: "denim", ImageURLs: []string{"a", "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, "l-1", got.ID)

	mock.ExpectQuery(`INSERT\s+INTO\s+listing`).WillReturnError(errors.New("db down"))
	_, err = repo.Create(context.Background(), models.NewListing{OwnerID: "o-1"})
	require.ErrorContains(t, err, "db error")
}

func TestUpdateImages(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE\s+listing\s+SET\s+data\s*=\s*jsonb_set\(data,\s*'\{imageUrls\}',\s*\$2::jsonb,\s*true\)\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("l-1", `[]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.UpdateImages(context.Background(), "l-1", nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\_b\%c\\d`, escapeLike(`a_b%c\d`))
	assert.Equal(t, "denim", escapeLike("denim"))
}
