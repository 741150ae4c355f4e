package service

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	hotelRepo "hotel/internal/domains/hotel/repository"
	hotelService "hotel/internal/domains/hotel/service"
	"hotel/internal/domains/repair/model/dto"
	"hotel/internal/domains/repair/repository"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/internal/session"
	"hotel/shared/constant"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	messageRoomNotFound    = "Room not found."
	messageCompanyNotFound = "Company not found."
)

type Repair interface {
	CompanyExists(ctx context.Context, companyID int) (bool, error)
	// Place re-checks every answer gathered by the prompt loops before writing.
	Place(ctx context.Context, sess *session.Session, req dto.RepairRequest) (dto.RepairResponse, error)
	History(ctx context.Context, sess *session.Session) (gRepo.Result, error)
}

type serviceImpl struct {
	repo      repository.Repair
	roomRepo  roomRepo.Room
	hotelRepo hotelRepo.Hotel
	otel      otel.Otel
}

func New(repo repository.Repair, roomRepo roomRepo.Room, hotelRepo hotelRepo.Hotel, otel otel.Otel) Repair {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		hotelRepo: hotelRepo,
		otel:      otel,
	}
}

func (s *serviceImpl) CompanyExists(ctx context.Context, companyID int) (exists bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CompanyExists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err = s.repo.CompanyExists(ctx, companyID)
	if err != nil {
		log.Error().Err(err).Int("company_id", companyID).Msg("failed to check if company exists")

		return false, fmt.Errorf("failed to check if company exists: %w", err)
	}

	return exists, nil
}

func (s *serviceImpl) Place(ctx context.Context, sess *session.Session, req dto.RepairRequest) (res dto.RepairResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Place")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = hotelService.EnsureManages(ctx, s.hotelRepo, sess, req.HotelID); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	roomExists, err := s.roomRepo.Exist(ctx, roomRepo.FilterByRoom(req.HotelID, req.RoomNumber))
	if err != nil {
		log.Error().Err(err).Int("hotel_id", req.HotelID).Int("room_number", req.RoomNumber).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.NotFound(messageRoomNotFound) //nolint:wrapcheck
	}

	companyExists, err := s.CompanyExists(ctx, req.CompanyID)
	if err != nil {
		return res, err
	}

	if !companyExists {
		return res, failure.NotFound(messageCompanyNotFound) //nolint:wrapcheck
	}

	res.RepairID, err = s.repo.Place(ctx, req.ToModel(), sess.UserID)
	if err != nil {
		log.Error().Err(err).Str("session", sess.ID).Msg("failed to place repair request")

		return res, fmt.Errorf("failed to place repair request: %w", err)
	}

	log.Info().
		Str("session", sess.ID).
		Int("repair_id", res.RepairID).
		Int("company_id", req.CompanyID).
		Msg("repair request placed")

	return res, nil
}

func (s *serviceImpl) History(ctx context.Context, sess *session.Session) (res gRepo.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".History")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !sess.IsManager() {
		return res, failure.ManagerOnlyError
	}

	res, err = s.repo.History(ctx, sess.UserID)
	if err != nil {
		log.Error().Err(err).Str("session", sess.ID).Msg("failed to get repair history")

		return res, fmt.Errorf("failed to get repair history: %w", err)
	}

	return res, nil
}
