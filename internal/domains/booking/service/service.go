package service

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	hotelRepo "hotel/internal/domains/hotel/repository"
	hotelService "hotel/internal/domains/hotel/service"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/internal/session"
	"hotel/shared/constant"
	gRepo "hotel/shared/repository"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	// Book inserts the booking when the room has none on the date. The check
	// and the insert are separate statements.
	Book(ctx context.Context, sess *session.Session, req dto.BookRoomRequest) (dto.BookingResponse, error)
	RecentBookings(ctx context.Context, sess *session.Session) (gRepo.Result, error)
	HotelHistory(ctx context.Context, sess *session.Session, req dto.HotelHistoryRequest) (gRepo.Result, error)
	RegularCustomers(ctx context.Context, sess *session.Session, hotelID int) (gRepo.Result, error)
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	hotelRepo hotelRepo.Hotel
	otel      otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, hotelRepo hotelRepo.Hotel, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		hotelRepo: hotelRepo,
		otel:      otel,
	}
}

func (s *serviceImpl) Book(ctx context.Context, sess *session.Session, req dto.BookRoomRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	price, err := s.roomRepo.AvailablePrice(ctx, req.HotelID, req.RoomNumber, req.BookingDate())
	if err != nil {
		log.Error().Err(err).Int("hotel_id", req.HotelID).Int("room_number", req.RoomNumber).Msg("failed to check room availability")

		return res, fmt.Errorf("failed to check room availability: %w", err)
	}

	if price.Empty() {
		return res, nil
	}

	if err = s.repo.Insert(ctx, req.ToModel(sess.UserID)); err != nil {
		log.Error().Err(err).Str("session", sess.ID).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	log.Info().
		Str("session", sess.ID).
		Int("hotel_id", req.HotelID).
		Int("room_number", req.RoomNumber).
		Str("date", req.BookingDate()).
		Msg("room booked")

	return dto.BookingResponse{Available: true, Price: price.Value(0, 0)}, nil
}

func (s *serviceImpl) RecentBookings(ctx context.Context, sess *session.Session) (res gRepo.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecentBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.RecentByCustomer(ctx, sess.UserID, constant.RecentBookingsLimit)
	if err != nil {
		log.Error().Err(err).Str("session", sess.ID).Msg("failed to get recent bookings")

		return res, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) HotelHistory(ctx context.Context, sess *session.Session, req dto.HotelHistoryRequest) (res gRepo.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HotelHistory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = hotelService.EnsureManages(ctx, s.hotelRepo, sess, req.HotelID); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	from, to := req.Range()

	res, err = s.repo.HotelHistory(ctx, req.HotelID, from, to)
	if err != nil {
		log.Error().Err(err).Int("hotel_id", req.HotelID).Msg("failed to get hotel booking history")

		return res, fmt.Errorf("failed to get hotel booking history: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) RegularCustomers(ctx context.Context, sess *session.Session, hotelID int) (res gRepo.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegularCustomers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = hotelService.EnsureManages(ctx, s.hotelRepo, sess, hotelID); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.RegularCustomers(ctx, hotelID, constant.RegularCustomersLimit)
	if err != nil {
		log.Error().Err(err).Int("hotel_id", hotelID).Msg("failed to get regular customers")

		return res, fmt.Errorf("failed to get regular customers: %w", err)
	}

	return res, nil
}
