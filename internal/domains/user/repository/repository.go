package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/user/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/rs/zerolog/log"
)

type User interface {
	// Create inserts user and returns the id the store assigned to it.
	Create(ctx context.Context, user model.User) (int, error)
	// Get returns the zero User when no row has the id.
	Get(ctx context.Context, userID int) (model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	sequence string
	otel     otel.Otel
}

func New(exec gRepo.Executor, cfg *config.Config, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, exec, otel),
		sequence:   cfg.DB.Postgres.UserSequence,
		otel:       otel,
	}
}

// Create runs the insert and the sequence read in one transaction so both
// statements see the same session value of currval.
func (r *repositoryImpl) Create(ctx context.Context, user model.User) (userID int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = r.Executor().WithTx(ctx, func(tx gRepo.Executor) error {
		if err := r.InsertWith(ctx, tx, user); err != nil {
			return err
		}

		res, err := tx.ExecuteQueryAndReturnResult(ctx, "SELECT currval($1::regclass)", r.sequence)
		if err != nil {
			return fmt.Errorf("failed to read new user id: %w", err)
		}

		userID, err = strconv.Atoi(res.Value(0, 0))
		if err != nil {
			return fmt.Errorf("failed to parse new user id %q: %w", res.Value(0, 0), err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return 0, err
	}

	return userID, nil
}

func (r *repositoryImpl) Get(ctx context.Context, userID int) (user model.User, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err := r.Find(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName), "",
		model.FieldUserID, model.FieldName, model.FieldPassword, model.FieldUserType)
	if err != nil {
		return user, err
	}

	if res.Empty() {
		return user, nil
	}

	user.UserID, err = strconv.Atoi(res.Value(0, 0))
	if err != nil {
		return user, fmt.Errorf("failed to parse user id %q: %w", res.Value(0, 0), err)
	}

	user.Name = res.Value(0, 1)
	user.Password = res.Value(0, 2)
	user.UserType = res.Value(0, 3)

	return user, nil
}
