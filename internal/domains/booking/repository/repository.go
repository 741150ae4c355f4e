package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	queryRecentByCustomer = `SELECT RoomBookings.hotelID, RoomBookings.roomNumber, RoomBookings.bookingDate, Rooms.price
FROM RoomBookings
JOIN Rooms ON Rooms.hotelID = RoomBookings.hotelID AND Rooms.roomNumber = RoomBookings.roomNumber
WHERE RoomBookings.customerID = $1
ORDER BY RoomBookings.bookingDate DESC, RoomBookings.bookingID DESC
LIMIT $2`

	queryHotelHistory = `SELECT RoomBookings.bookingID, Users.name, RoomBookings.roomNumber, RoomBookings.bookingDate
FROM RoomBookings
JOIN Users ON Users.userID = RoomBookings.customerID%s
ORDER BY RoomBookings.bookingDate, RoomBookings.bookingID`

	queryRegularCustomers = `SELECT Users.name, COUNT(*) AS numBookings
FROM RoomBookings
JOIN Users ON Users.userID = RoomBookings.customerID
WHERE RoomBookings.hotelID = $1
GROUP BY RoomBookings.customerID, Users.name
ORDER BY numBookings DESC, Users.name
LIMIT $2`
)

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	// RecentByCustomer lists hotelID, roomNumber, bookingDate, price, newest first.
	RecentByCustomer(ctx context.Context, customerID string, limit int) (gRepo.Result, error)
	// HotelHistory lists bookingID, name, roomNumber, bookingDate for bookings
	// dated from..to inclusive.
	HotelHistory(ctx context.Context, hotelID int, from, to string) (gRepo.Result, error)
	// RegularCustomers lists name, numBookings, most bookings first.
	RegularCustomers(ctx context.Context, hotelID, limit int) (gRepo.Result, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	otel otel.Otel
}

func New(exec gRepo.Executor, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, exec, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) RecentByCustomer(ctx context.Context, customerID string, limit int) (gRepo.Result, error) {
	return r.query(ctx, "RecentByCustomer", queryRecentByCustomer, customerID, limit)
}

func (r *repositoryImpl) HotelHistory(ctx context.Context, hotelID int, from, to string) (gRepo.Result, error) {
	where, args := r.BuildWhereClause(gDto.And(
		gDto.Eq(model.TableName, model.FieldHotelID, hotelID),
		gDto.Between(model.TableName, model.FieldBookingDate, from, to),
	))

	named, bound, err := sqlx.Named(fmt.Sprintf(queryHotelHistory, where), args)
	if err != nil {
		return gRepo.Result{}, fmt.Errorf("failed to bind booking history: %w", err)
	}

	return r.query(ctx, "HotelHistory", r.Executor().Rebind(named), bound...)
}

func (r *repositoryImpl) RegularCustomers(ctx context.Context, hotelID, limit int) (gRepo.Result, error) {
	return r.query(ctx, "RegularCustomers", queryRegularCustomers, hotelID, limit)
}

func (r *repositoryImpl) query(ctx context.Context, name, query string, args ...any) (res gRepo.Result, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking."+name)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = r.Executor().ExecuteQueryAndReturnResult(ctx, query, args...)
	if err != nil {
		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	return res, nil
}
