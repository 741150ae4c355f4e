package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotel/infras/otel"
	"hotel/internal/domains/hotel/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type Hotel interface {
	// All lists every hotel as hotelID, hotelName, latitude, longitude.
	All(ctx context.Context) (gRepo.Result, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	IsManagedBy(ctx context.Context, hotelID int, managerID string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Hotel]
	otel otel.Otel
}

func New(exec gRepo.Executor, otel otel.Otel) Hotel {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Hotel](model.EntityName, model.TableName, exec, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) All(ctx context.Context) (gRepo.Result, error) {
	return r.Find(ctx, gDto.FilterGroup{}, "ORDER BY "+model.FieldHotelID, //nolint:wrapcheck
		model.FieldHotelID, model.FieldHotelName, model.FieldLatitude, model.FieldLongitude)
}

func (r *repositoryImpl) IsManagedBy(ctx context.Context, hotelID int, managerID string) (bool, error) {
	return r.Exist(ctx, gDto.And( //nolint:wrapcheck
		gDto.Eq(model.TableName, model.FieldHotelID, hotelID),
		gDto.Eq(model.TableName, model.FieldManagerUserID, managerID),
	))
}
