package repository_test

import (
	"context"
	"regexp"
	"testing"

	"hotel/infras/otel/mocks"
	"hotel/internal/domains/hotel/repository"
	gRepo "hotel/shared/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) (repository.Hotel, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	exec := gRepo.NewExecutor(sqlx.NewDb(db, "postgres"), mocks.NewOtel())

	return repository.New(exec, mocks.NewOtel()), mock
}

func TestHotelRepository_All(t *testing.T) {
	repo, mock := setupRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT hotelID, hotelName, latitude, longitude FROM Hotel ORDER BY hotelID")).
		WillReturnRows(sqlmock.NewRows([]string{"hotelid", "hotelname", "latitude", "longitude"}).
			AddRow(int64(1), "Seaside Inn", 20.5, 0.0).
			AddRow(int64(2), "Hilltop", 40.0, -3.25))

	res, err := repo.All(context.Background())

	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "Seaside Inn", "20.5", "0"}, {"2", "Hilltop", "40", "-3.25"}}, res.Rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHotelRepository_IsManagedBy(t *testing.T) {
	query := regexp.QuoteMeta("SELECT 1 FROM Hotel WHERE (Hotel.hotelID = $1 AND Hotel.managerUserID = $2)")

	t.Run("managed", func(t *testing.T) {
		repo, mock := setupRepository(t)

		mock.ExpectQuery(query).WithArgs(3, "5").WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		owned, err := repo.IsManagedBy(context.Background(), 3, "5")

		require.NoError(t, err)
		assert.True(t, owned)
	})

	t.Run("other manager", func(t *testing.T) {
		repo, mock := setupRepository(t)

		mock.ExpectQuery(query).WithArgs(3, "6").WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

		owned, err := repo.IsManagedBy(context.Background(), 3, "6")

		require.NoError(t, err)
		assert.False(t, owned)
	})
}
