package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"

	"hotel/infras/otel"
	"hotel/internal/domains/repair/model"
	"hotel/shared"
	"hotel/shared/constant"
	gRepo "hotel/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	queryInsertRepair = `INSERT INTO RoomRepairs (companyID, hotelID, roomNumber, repairDate)
VALUES ($1, $2, $3, $4)
RETURNING repairID`

	queryHistory = `SELECT companyID, hotelID, roomNumber, repairDate
FROM RoomRepairs
WHERE repairID IN (SELECT repairID FROM RoomRepairRequests WHERE managerID = $1)
ORDER BY repairDate DESC, repairID DESC`
)

type Repair interface {
	CompanyExists(ctx context.Context, companyID int) (bool, error)
	// Place inserts the ticket and links it to managerID in one transaction,
	// returning the new repairID.
	Place(ctx context.Context, repair model.Repair, managerID string) (int, error)
	// History lists companyID, hotelID, roomNumber, repairDate of the tickets
	// linked to managerID.
	History(ctx context.Context, managerID string) (gRepo.Result, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Repair]
	requests  gRepo.Repository[model.Request]
	companies gRepo.Repository[model.Company]
	otel      otel.Otel
}

func New(exec gRepo.Executor, otel otel.Otel) Repair {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Repair](model.EntityName, model.TableName, exec, otel),
		requests:   gRepo.NewRepository[model.Request](model.RequestEntityName, model.RequestTableName, exec, otel),
		companies:  gRepo.NewRepository[model.Company](model.CompanyEntityName, model.CompanyTableName, exec, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) CompanyExists(ctx context.Context, companyID int) (bool, error) {
	return r.companies.Exist(ctx, shared.FilterByID(companyID, model.FieldCompanyID, model.CompanyTableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) Place(ctx context.Context, repair model.Repair, managerID string) (repairID int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".repair.Place")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = r.Executor().WithTx(ctx, func(tx gRepo.Executor) error {
		res, err := tx.ExecuteQueryAndReturnResult(ctx, queryInsertRepair,
			repair.CompanyID, repair.HotelID, repair.RoomNumber, repair.RepairDate)
		if err != nil {
			return fmt.Errorf("failed to insert repair: %w", err)
		}

		repairID, err = strconv.Atoi(res.Value(0, 0))
		if err != nil {
			return fmt.Errorf("failed to parse repair id %q: %w", res.Value(0, 0), err)
		}

		return r.requests.InsertWith(ctx, tx, model.Request{ManagerID: managerID, RepairID: repairID})
	})
	if err != nil {
		log.Error().Err(err).Str("manager_id", managerID).Msg("failed to place repair request")

		return 0, fmt.Errorf("failed to place repair request: %w", err)
	}

	return repairID, nil
}

func (r *repositoryImpl) History(ctx context.Context, managerID string) (res gRepo.Result, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".repair.History")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = r.Executor().ExecuteQueryAndReturnResult(ctx, queryHistory, managerID)
	if err != nil {
		return res, fmt.Errorf("failed to get repair history: %w", err)
	}

	return res, nil
}
