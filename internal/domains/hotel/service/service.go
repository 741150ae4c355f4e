package service

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/internal/domains/hotel/model"
	"hotel/internal/domains/hotel/model/dto"
	"hotel/internal/domains/hotel/repository"
	"hotel/internal/session"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"

	"github.com/rs/zerolog/log"
)

type Hotel interface {
	// Nearby lists hotels within constant.NearbyRadius of the point.
	Nearby(ctx context.Context, req dto.NearbyRequest) (gRepo.Result, error)
	Exists(ctx context.Context, hotelID int) (bool, error)
	IsManagedBy(ctx context.Context, sess *session.Session, hotelID int) (bool, error)
	// CheckManager is EnsureManages bound to the service repository.
	CheckManager(ctx context.Context, sess *session.Session, hotelID int) error
}

type serviceImpl struct {
	repo repository.Hotel
	otel otel.Otel
}

func New(repo repository.Hotel, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Nearby filters in process so the distance rule does not depend on a
// function installed in the store.
func (s *serviceImpl) Nearby(ctx context.Context, req dto.NearbyRequest) (res gRepo.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Nearby")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	all, err := s.repo.All(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	hotels, err := dto.HotelsFromResult(all)
	if err != nil {
		log.Error().Err(err).Msg("failed to read hotels")

		return res, fmt.Errorf("failed to read hotels: %w", err)
	}

	nearby := make([]model.Hotel, 0, len(hotels))

	for _, hotel := range hotels {
		if hotel.DistanceTo(req.Latitude, req.Longitude) <= constant.NearbyRadius {
			nearby = append(nearby, hotel)
		}
	}

	return dto.HotelsToResult(nearby), nil
}

func (s *serviceImpl) Exists(ctx context.Context, hotelID int) (exists bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Exists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err = s.repo.Exist(ctx, shared.FilterByID(hotelID, model.FieldHotelID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int("hotel_id", hotelID).Msg("failed to check if hotel exists")

		return false, fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	return exists, nil
}

func (s *serviceImpl) IsManagedBy(ctx context.Context, sess *session.Session, hotelID int) (owned bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsManagedBy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !sess.IsManager() {
		return false, nil
	}

	owned, err = s.repo.IsManagedBy(ctx, hotelID, sess.UserID)
	if err != nil {
		log.Error().Err(err).Int("hotel_id", hotelID).Msg("failed to check hotel manager")

		return false, fmt.Errorf("failed to check hotel manager: %w", err)
	}

	return owned, nil
}

func (s *serviceImpl) CheckManager(ctx context.Context, sess *session.Session, hotelID int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckManager")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return EnsureManages(ctx, s.repo, sess, hotelID)
}

// EnsureManages is the one-shot guard of manager operations: a customer gets
// failure.ManagerOnlyError and a manager of another hotel
// failure.NotHotelManagerError.
func EnsureManages(ctx context.Context, repo repository.Hotel, sess *session.Session, hotelID int) error {
	if !sess.IsManager() {
		return failure.ManagerOnlyError
	}

	owned, err := repo.IsManagedBy(ctx, hotelID, sess.UserID)
	if err != nil {
		log.Error().Err(err).Int("hotel_id", hotelID).Msg("failed to check hotel manager")

		return fmt.Errorf("failed to check hotel manager: %w", err)
	}

	if !owned {
		log.Warn().
			Str("session", sess.ID).
			Str("user_id", sess.UserID).
			Int("hotel_id", hotelID).
			Msg("manager does not manage hotel")

		return failure.NotHotelManagerError
	}

	return nil
}
