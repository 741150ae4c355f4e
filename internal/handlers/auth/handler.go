package auth

import (
	"context"

	"hotel/infras/otel"
	"hotel/internal/domains/auth/model/dto"
	"hotel/internal/domains/auth/service"
	"hotel/internal/session"
	"hotel/shared/constant"
	"hotel/transport/cli/console"

	"github.com/rs/zerolog/log"
)

const (
	promptName     = "\tEnter name: "
	promptPassword = "\tEnter password: "
	promptUserID   = "\tEnter userID: "
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
	console *console.Console
}

func New(service service.Auth, otel otel.Otel, console *console.Console) Handler {
	return Handler{
		service: service,
		otel:    otel,
		console: console,
	}
}

// CreateUser registers a customer and reports the generated user id.
func (handler *Handler) CreateUser(ctx context.Context) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateUser")
	defer scope.End()

	req := dto.CreateUserRequest{}

	var err error

	if req.Name, err = handler.console.Prompt(promptName); err != nil {
		return err //nolint:wrapcheck
	}

	if req.Password, err = handler.console.Prompt(promptPassword); err != nil {
		return err //nolint:wrapcheck
	}

	res, err := handler.service.CreateUser(ctx, req)
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	scope.AddEvent("User created")
	handler.console.Printf("User successfully created with userID = %d\n", res.UserID)

	return nil
}

// LogIn returns the session opened by valid credentials.
func (handler *Handler) LogIn(ctx context.Context) (*session.Session, error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LogIn")
	defer scope.End()

	req := dto.LogInRequest{}

	var err error

	if req.UserID, err = handler.console.Prompt(promptUserID); err != nil {
		return nil, err //nolint:wrapcheck
	}

	if req.Password, err = handler.console.Prompt(promptPassword); err != nil {
		return nil, err //nolint:wrapcheck
	}

	sess, err := handler.service.LogIn(ctx, req)
	if err != nil {
		scope.TraceError(err)

		return nil, err //nolint:wrapcheck
	}

	scope.SetAttribute(constant.OtelSessionAttributeKey, sess.ID)
	log.Info().Str("session", sess.ID).Str("user_id", sess.UserID).Str("role", sess.Role.String()).Msg("logged in")

	return sess, nil
}
