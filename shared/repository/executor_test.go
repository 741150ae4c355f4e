package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"hotel/infras/otel/mocks"
	"hotel/shared/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupExecutor(t *testing.T) (repository.Executor, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewExecutor(sqlx.NewDb(db, "postgres"), mocks.NewOtel()), mock
}

func TestExecutor_ExecuteUpdate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		exec, mock := setupExecutor(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE Rooms SET price = $1 WHERE hotelID = $2")).
			WithArgs(120, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := exec.ExecuteUpdate(context.Background(), "UPDATE Rooms SET price = $1 WHERE hotelID = $2", 120, 1)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("constraint violation", func(t *testing.T) {
		exec, mock := setupExecutor(t)

		mock.ExpectExec("INSERT INTO RoomBookings").
			WillReturnError(errors.New("violates foreign key constraint"))

		err := exec.ExecuteUpdate(context.Background(), "INSERT INTO RoomBookings (customerID) VALUES ($1)", 99)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "violates foreign key constraint")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestExecutor_ExecuteQuery(t *testing.T) {
	t.Run("counts rows", func(t *testing.T) {
		exec, mock := setupExecutor(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM Hotel WHERE hotelID = $1")).
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1).AddRow(1))

		count, err := exec.ExecuteQuery(context.Background(), "SELECT 1 FROM Hotel WHERE hotelID = $1", 3)

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows", func(t *testing.T) {
		exec, mock := setupExecutor(t)

		mock.ExpectQuery("SELECT 1 FROM Hotel").
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

		count, err := exec.ExecuteQuery(context.Background(), "SELECT 1 FROM Hotel WHERE hotelID = $1", 404)

		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("query error", func(t *testing.T) {
		exec, mock := setupExecutor(t)

		mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

		_, err := exec.ExecuteQuery(context.Background(), "SELECT 1 FROM Hotel")

		assert.ErrorContains(t, err, "connection reset")
	})

	t.Run("row error", func(t *testing.T) {
		exec, mock := setupExecutor(t)

		mock.ExpectQuery("SELECT").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2).RowError(1, errors.New("broken pipe")))

		_, err := exec.ExecuteQuery(context.Background(), "SELECT id FROM Hotel")

		assert.ErrorContains(t, err, "broken pipe")
	})
}

func TestExecutor_ExecuteQueryAndReturnResult(t *testing.T) {
	t.Run("renders values as text", func(t *testing.T) {
		exec, mock := setupExecutor(t)

		bookingDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		updatedOn := time.Date(2024, 5, 1, 13, 4, 5, 0, time.UTC)

		rows := sqlmock.NewRows([]string{"hotelID", "userType", "latitude", "imageURL", "bookingDate", "updatedOn", "price"}).
			AddRow(int64(7), []byte("manager   "), 12.5, nil, bookingDate, updatedOn, "100")

		mock.ExpectQuery("SELECT").WillReturnRows(rows)

		res, err := exec.ExecuteQueryAndReturnResult(context.Background(), "SELECT hotelID FROM Hotel")

		require.NoError(t, err)
		assert.Equal(t, []string{"hotelID", "userType", "latitude", "imageURL", "bookingDate", "updatedOn", "price"}, res.Columns)
		assert.Equal(t, [][]string{{"7", "manager", "12.5", "", "2024-05-01", "2024-05-01 13:04:05", "100"}}, res.Rows)
	})

	t.Run("formats times by column type", func(t *testing.T) {
		exec, mock := setupExecutor(t)

		midnight := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRowsWithColumnDefinition(
			mock.NewColumn("bookingDate").OfType("DATE", time.Time{}),
			mock.NewColumn("updatedOn").OfType("TIMESTAMP", time.Time{}),
		).AddRow(midnight, midnight)

		mock.ExpectQuery("SELECT bookingDate").WillReturnRows(rows)

		res, err := exec.ExecuteQueryAndReturnResult(context.Background(), "SELECT bookingDate, updatedOn FROM RoomUpdatesLog")

		require.NoError(t, err)
		assert.Equal(t, [][]string{{"2024-05-01", "2024-05-01 00:00:00"}}, res.Rows)
	})

	t.Run("keeps row order", func(t *testing.T) {
		exec, mock := setupExecutor(t)

		mock.ExpectQuery("SELECT roomNumber").
			WillReturnRows(sqlmock.NewRows([]string{"roomNumber"}).AddRow(int64(101)).AddRow(int64(102)).AddRow(int64(201)))

		res, err := exec.ExecuteQueryAndReturnResult(context.Background(), "SELECT roomNumber FROM Rooms ORDER BY roomNumber")

		require.NoError(t, err)
		assert.Equal(t, 3, res.Len())
		assert.Equal(t, "101", res.Value(0, 0))
		assert.Equal(t, "201", res.Value(2, 0))
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		exec, mock := setupExecutor(t)

		mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"price"}))

		res, err := exec.ExecuteQueryAndReturnResult(context.Background(), "SELECT price FROM Rooms")

		require.NoError(t, err)
		assert.True(t, res.Empty())
		assert.NotNil(t, res.Rows)
	})

	t.Run("query error", func(t *testing.T) {
		exec, mock := setupExecutor(t)

		mock.ExpectQuery("SELEC price").WillReturnError(errors.New("syntax error at or near"))

		_, err := exec.ExecuteQueryAndReturnResult(context.Background(), "SELEC price FROM Rooms")

		assert.ErrorContains(t, err, "syntax error")
	})
}

func TestExecutor_WithTx(t *testing.T) {
	t.Run("commit", func(t *testing.T) {
		exec, mock := setupExecutor(t)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE Rooms").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO RoomUpdatesLog").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := exec.WithTx(context.Background(), func(tx repository.Executor) error {
			if err := tx.ExecuteUpdate(context.Background(), "UPDATE Rooms SET price = $1", 1); err != nil {
				return err
			}

			return tx.ExecuteUpdate(context.Background(), "INSERT INTO RoomUpdatesLog (managerID) VALUES ($1)", 2)
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on error", func(t *testing.T) {
		exec, mock := setupExecutor(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO RoomRepairs").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO RoomRepairRequests").WillReturnError(errors.New("insert failed"))
		mock.ExpectRollback()

		err := exec.WithTx(context.Background(), func(tx repository.Executor) error {
			if err := tx.ExecuteUpdate(context.Background(), "INSERT INTO RoomRepairs (companyID) VALUES ($1)", 1); err != nil {
				return err
			}

			return tx.ExecuteUpdate(context.Background(), "INSERT INTO RoomRepairRequests (managerID) VALUES ($1)", 2)
		})

		assert.ErrorContains(t, err, "insert failed")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nested call reuses transaction", func(t *testing.T) {
		exec, mock := setupExecutor(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := exec.WithTx(context.Background(), func(tx repository.Executor) error {
			return tx.WithTx(context.Background(), func(inner repository.Executor) error {
				return inner.ExecuteUpdate(context.Background(), "DELETE FROM RoomBookings")
			})
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin error", func(t *testing.T) {
		exec, mock := setupExecutor(t)

		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		err := exec.WithTx(context.Background(), func(_ repository.Executor) error {
			return nil
		})

		assert.ErrorContains(t, err, "too many connections")
	})
}

func TestExecutor_Rebind(t *testing.T) {
	exec, _ := setupExecutor(t)

	assert.Equal(t, "SELECT 1 FROM Rooms WHERE hotelID = $1 AND roomNumber = $2", exec.Rebind("SELECT 1 FROM Rooms WHERE hotelID = ? AND roomNumber = ?"))
}

func TestResult_Value(t *testing.T) {
	res := repository.Result{Columns: []string{"a", "b"}, Rows: [][]string{{"1", "2"}}}

	assert.Equal(t, "2", res.Value(0, 1))
	assert.Empty(t, res.Value(1, 0))
	assert.Empty(t, res.Value(0, 2))
	assert.Empty(t, res.Value(-1, 0))
}
