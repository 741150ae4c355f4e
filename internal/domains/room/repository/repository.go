package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/internal/domains/room/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	// A room with several bookings on one date still appears once.
	queryAvailability = `SELECT Rooms.roomNumber, Rooms.price,
	CASE WHEN booked.roomNumber IS NULL THEN '` + model.AvailabilityAvailable + `' ELSE '` + model.AvailabilityBooked + `' END AS availability
FROM Rooms
LEFT JOIN (SELECT DISTINCT hotelID, roomNumber FROM RoomBookings WHERE bookingDate = $2) booked
	ON Rooms.hotelID = booked.hotelID AND Rooms.roomNumber = booked.roomNumber
WHERE Rooms.hotelID = $1
ORDER BY Rooms.roomNumber`

	queryAvailablePrice = `SELECT price FROM Rooms
WHERE hotelID = $1 AND roomNumber = $2
AND NOT EXISTS (SELECT 1 FROM RoomBookings WHERE hotelID = $1 AND roomNumber = $2 AND bookingDate = $3)`
)

type Room interface {
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	// Availability lists roomNumber, price, availability for every room of
	// the hotel on bookingDate, ascending by room number.
	Availability(ctx context.Context, hotelID int, bookingDate string) (gRepo.Result, error)
	// AvailablePrice returns the price row of the room only when it has no
	// booking on bookingDate.
	AvailablePrice(ctx context.Context, hotelID, roomNumber int, bookingDate string) (gRepo.Result, error)
	// UpdateWithLog writes fields and the audit row in one transaction.
	UpdateWithLog(ctx context.Context, hotelID, roomNumber int, fields map[string]any, entry model.UpdateLog) error
	RecentUpdates(ctx context.Context, managerID string, limit int) (gRepo.Result, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	logs gRepo.Repository[model.UpdateLog]
	otel otel.Otel
}

func New(exec gRepo.Executor, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, exec, otel),
		logs:       gRepo.NewRepository[model.UpdateLog](model.UpdateLogEntityName, model.UpdateLogTableName, exec, otel),
		otel:       otel,
	}
}

func FilterByRoom(hotelID, roomNumber int) gDto.FilterGroup {
	return gDto.And(
		gDto.Eq(model.TableName, model.FieldHotelID, hotelID),
		gDto.Eq(model.TableName, model.FieldRoomNumber, roomNumber),
	)
}

func (r *repositoryImpl) Availability(ctx context.Context, hotelID int, bookingDate string) (res gRepo.Result, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = r.Executor().ExecuteQueryAndReturnResult(ctx, queryAvailability, hotelID, bookingDate)
	if err != nil {
		return res, fmt.Errorf("failed to get room availability: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) AvailablePrice(ctx context.Context, hotelID, roomNumber int, bookingDate string) (res gRepo.Result, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.AvailablePrice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = r.Executor().ExecuteQueryAndReturnResult(ctx, queryAvailablePrice, hotelID, roomNumber, bookingDate)
	if err != nil {
		return res, fmt.Errorf("failed to check room availability: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) UpdateWithLog(ctx context.Context, hotelID, roomNumber int, fields map[string]any, entry model.UpdateLog) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.UpdateWithLog")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = r.Executor().WithTx(ctx, func(tx gRepo.Executor) error {
		if err := r.UpdateWith(ctx, tx, fields, FilterByRoom(hotelID, roomNumber)); err != nil {
			return err
		}

		return r.logs.InsertWith(ctx, tx, entry)
	})
	if err != nil {
		log.Error().Err(err).Int("hotel_id", hotelID).Int("room_number", roomNumber).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	return nil
}

func (r *repositoryImpl) RecentUpdates(ctx context.Context, managerID string, limit int) (gRepo.Result, error) {
	filter := gDto.And(gDto.Eq(model.UpdateLogTableName, model.FieldManagerID, managerID))
	suffix := fmt.Sprintf("ORDER BY %s DESC LIMIT %d", model.FieldUpdatedOn, limit)

	return r.logs.Find(ctx, filter, suffix, //nolint:wrapcheck
		model.FieldManagerID, model.FieldHotelID, model.FieldRoomNumber, model.FieldUpdatedOn)
}
