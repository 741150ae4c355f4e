package hotel

import (
	"context"

	"hotel/infras/otel"
	"hotel/internal/domains/hotel/model/dto"
	"hotel/internal/domains/hotel/service"
	"hotel/internal/session"
	"hotel/shared/constant"
	"hotel/shared/input"
	"hotel/transport/cli/console"
)

var (
	latitudeField = input.Field[float64]{
		Prompt: "Enter latitude: ",
		Parse:  input.Float,
	}
	longitudeField = input.Field[float64]{
		Prompt: "Enter longitude: ",
		Parse:  input.Float,
	}
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
	console *console.Console
}

func New(service service.Hotel, otel otel.Otel, console *console.Console) Handler {
	return Handler{
		service: service,
		otel:    otel,
		console: console,
	}
}

// ViewNearby prints the hotels within constant.NearbyRadius of a point.
func (handler *Handler) ViewNearby(ctx context.Context, sess *session.Session) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewNearby")
	defer scope.End()

	scope.SetAttribute(constant.OtelSessionAttributeKey, sess.ID)

	req := dto.NearbyRequest{}

	var err error

	if req.Latitude, err = console.Ask(ctx, handler.console, latitudeField); err != nil {
		return err //nolint:wrapcheck
	}

	if req.Longitude, err = console.Ask(ctx, handler.console, longitudeField); err != nil {
		return err //nolint:wrapcheck
	}

	res, err := handler.service.Nearby(ctx, req)
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	console.PrintTableWithCount(handler.console.Out(), res)

	return nil
}
