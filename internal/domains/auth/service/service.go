package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/auth/model/dto"
	userModel "hotel/internal/domains/user/model"
	userRepo "hotel/internal/domains/user/repository"
	"hotel/internal/session"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/password"
	"hotel/shared/timezone"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (dto.CreateUserResponse, error)
	// LogIn returns a new session for matching credentials and
	// failure.InvalidCredentialsError otherwise.
	LogIn(ctx context.Context, req dto.LogInRequest) (*session.Session, error)
}

type serviceImpl struct {
	userRepo userRepo.User
	cfg      *config.Config
	otel     otel.Otel
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo: userRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) CreateUser(ctx context.Context, req dto.CreateUserRequest) (res dto.CreateUserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	stored := req.Password

	if s.cfg.Auth.HashPasswords {
		stored, err = password.Hash(req.Password)
		if err != nil {
			log.Error().Err(err).Msg("failed to hash password")

			return res, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	res.UserID, err = s.userRepo.Create(ctx, req.ToUserModel(stored))
	if err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Int("user_id", res.UserID).Msg("user created")

	return res, nil
}

func (s *serviceImpl) LogIn(ctx context.Context, req dto.LogInRequest) (sess *session.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LogIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return nil, err //nolint:wrapcheck
	}

	userID, err := strconv.Atoi(req.UserID)
	if err != nil {
		return nil, failure.InvalidCredentialsError
	}

	if s.cfg.Auth.HashPasswords {
		return s.logInHashed(ctx, userID, req.Password)
	}

	credentials := gDto.And(
		gDto.Eq(userModel.TableName, userModel.FieldUserID, userID),
		gDto.Eq(userModel.TableName, userModel.FieldPassword, req.Password),
	)

	exists, err := s.userRepo.Exist(ctx, credentials)
	if err != nil {
		log.Error().Err(err).Msg("failed to check credentials")

		return nil, fmt.Errorf("failed to check credentials: %w", err)
	}

	if !exists {
		log.Warn().Int("user_id", userID).Msg("login attempt with wrong credentials")

		return nil, failure.InvalidCredentialsError
	}

	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load user")

		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return s.open(user)
}

func (s *serviceImpl) logInHashed(ctx context.Context, userID int, plain string) (*session.Session, error) {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load user")

		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if user.UserID == 0 {
		log.Warn().Int("user_id", userID).Msg("login attempt with non-existent user")

		return nil, failure.InvalidCredentialsError
	}

	if err := password.Verify(plain, user.Password); err != nil {
		if !errors.Is(err, password.ErrInvalidPassword) {
			log.Error().Err(err).Int("user_id", userID).Msg("stored password is not a bcrypt hash")
		}

		return nil, failure.InvalidCredentialsError
	}

	return s.open(user)
}

func (s *serviceImpl) open(user userModel.User) (*session.Session, error) {
	role, err := session.ParseRole(user.UserType)
	if err != nil {
		log.Error().Err(err).Int("user_id", user.UserID).Msg("user has an unknown type")

		return nil, fmt.Errorf("failed to read user type: %w", err)
	}

	sess := session.New(strconv.Itoa(user.UserID), role, timezone.Now())

	log.Info().
		Str("session", sess.ID).
		Str("user_id", sess.UserID).
		Str("role", role.String()).
		Msg("user logged in")

	return sess, nil
}
