package service

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	hotelRepo "hotel/internal/domains/hotel/repository"
	hotelService "hotel/internal/domains/hotel/service"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/internal/session"
	"hotel/shared/constant"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

const messageRoomNotFound = "Room not found."

type Room interface {
	ViewRooms(ctx context.Context, req dto.ViewRoomsRequest) (gRepo.Result, error)
	Exists(ctx context.Context, hotelID, roomNumber int) (bool, error)
	// CheckUpdatable runs the guards of Update so the caller can stop before
	// asking for new values.
	CheckUpdatable(ctx context.Context, sess *session.Session, hotelID, roomNumber int) error
	Update(ctx context.Context, sess *session.Session, req dto.UpdateRoomRequest) error
	RecentUpdates(ctx context.Context, sess *session.Session) (gRepo.Result, error)
}

type serviceImpl struct {
	repo      repository.Room
	hotelRepo hotelRepo.Hotel
	otel      otel.Otel
}

func New(repo repository.Room, hotelRepo hotelRepo.Hotel, otel otel.Otel) Room {
	return &serviceImpl{
		repo:      repo,
		hotelRepo: hotelRepo,
		otel:      otel,
	}
}

func (s *serviceImpl) ViewRooms(ctx context.Context, req dto.ViewRoomsRequest) (res gRepo.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ViewRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.Availability(ctx, req.HotelID, req.BookingDate())
	if err != nil {
		log.Error().Err(err).Int("hotel_id", req.HotelID).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Exists(ctx context.Context, hotelID, roomNumber int) (exists bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Exists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err = s.repo.Exist(ctx, repository.FilterByRoom(hotelID, roomNumber))
	if err != nil {
		log.Error().Err(err).Int("hotel_id", hotelID).Int("room_number", roomNumber).Msg("failed to check if room exists")

		return false, fmt.Errorf("failed to check if room exists: %w", err)
	}

	return exists, nil
}

func (s *serviceImpl) CheckUpdatable(ctx context.Context, sess *session.Session, hotelID, roomNumber int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckUpdatable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = hotelService.EnsureManages(ctx, s.hotelRepo, sess, hotelID); err != nil {
		return err //nolint:wrapcheck
	}

	exists, err := s.Exists(ctx, hotelID, roomNumber)
	if err != nil {
		return err
	}

	if !exists {
		return failure.NotFound(messageRoomNotFound) //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, sess *session.Session, req dto.UpdateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	if err = s.CheckUpdatable(ctx, sess, req.HotelID, req.RoomNumber); err != nil {
		return err
	}

	err = s.repo.UpdateWithLog(ctx, req.HotelID, req.RoomNumber, req.Fields(), req.ToUpdateLog(sess.UserID, timezone.Now()))
	if err != nil {
		log.Error().Err(err).Str("session", sess.ID).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	log.Info().
		Str("session", sess.ID).
		Int("hotel_id", req.HotelID).
		Int("room_number", req.RoomNumber).
		Msg("room updated")

	return nil
}

func (s *serviceImpl) RecentUpdates(ctx context.Context, sess *session.Session) (res gRepo.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecentUpdates")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !sess.IsManager() {
		return res, failure.ManagerOnlyError
	}

	res, err = s.repo.RecentUpdates(ctx, sess.UserID, constant.RecentUpdatesLimit)
	if err != nil {
		log.Error().Err(err).Str("session", sess.ID).Msg("failed to get room updates")

		return res, fmt.Errorf("failed to get room updates: %w", err)
	}

	return res, nil
}
