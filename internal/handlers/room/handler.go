package room

import (
	"context"
	"time"

	"hotel/infras/otel"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/internal/session"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/input"
	"hotel/transport/cli/console"

	"github.com/rs/zerolog/log"
)

const messageInvalidDate = "Invalid date, use mm/dd/yyyy."

var (
	hotelField = input.Field[int]{
		Prompt: "Enter hotel ID: ",
		Parse:  input.Int,
	}
	roomField = input.Field[int]{
		Prompt: "Enter room number: ",
		Parse:  input.Int,
	}
	dateField = input.Field[time.Time]{
		Prompt:  "Enter date (mm/dd/yyyy): ",
		Parse:   input.Date,
		Invalid: messageInvalidDate,
	}
	priceField = input.Field[int]{
		Prompt: "Enter new price: ",
		Parse:  input.Int,
	}
	imageField = input.Field[string]{
		Prompt: "Enter new image URL: ",
		Parse:  input.Text,
	}
)

type Handler struct {
	service service.Room
	otel    otel.Otel
	console *console.Console
}

func New(service service.Room, otel otel.Otel, console *console.Console) Handler {
	return Handler{
		service: service,
		otel:    otel,
		console: console,
	}
}

// ViewRooms prints every room of a hotel with its availability on a date.
func (handler *Handler) ViewRooms(ctx context.Context, sess *session.Session) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewRooms")
	defer scope.End()

	scope.SetAttribute(constant.OtelSessionAttributeKey, sess.ID)

	req := dto.ViewRoomsRequest{}

	var err error

	if req.HotelID, err = console.Ask(ctx, handler.console, hotelField); err != nil {
		return err //nolint:wrapcheck
	}

	if req.Date, err = console.Ask(ctx, handler.console, dateField); err != nil {
		return err //nolint:wrapcheck
	}

	res, err := handler.service.ViewRooms(ctx, req)
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	console.PrintTableWithCount(handler.console.Out(), res)

	return nil
}

// UpdateRoom changes price and image of a room in a hotel the manager runs.
// Ownership is checked once, before the new values are asked for.
func (handler *Handler) UpdateRoom(ctx context.Context, sess *session.Session) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	scope.SetAttribute(constant.OtelSessionAttributeKey, sess.ID)

	if !sess.IsManager() {
		return failure.ManagerOnlyError
	}

	req := dto.UpdateRoomRequest{}

	var err error

	if req.HotelID, err = console.Ask(ctx, handler.console, hotelField); err != nil {
		return err //nolint:wrapcheck
	}

	if req.RoomNumber, err = console.Ask(ctx, handler.console, roomField); err != nil {
		return err //nolint:wrapcheck
	}

	if err = handler.service.CheckUpdatable(ctx, sess, req.HotelID, req.RoomNumber); err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	if req.Price, err = console.Ask(ctx, handler.console, priceField); err != nil {
		return err //nolint:wrapcheck
	}

	if req.ImageURL, err = console.Ask(ctx, handler.console, imageField); err != nil {
		return err //nolint:wrapcheck
	}

	if err = handler.service.Update(ctx, sess, req); err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	scope.AddEvent("Room updated")
	handler.console.Println("Room information updated successfully.")

	return nil
}

// RecentUpdates prints the latest room updates made by the manager.
func (handler *Handler) RecentUpdates(ctx context.Context, sess *session.Session) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecentUpdates")
	defer scope.End()

	scope.SetAttribute(constant.OtelSessionAttributeKey, sess.ID)

	res, err := handler.service.RecentUpdates(ctx, sess)
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	handler.console.Println("Recent room updates :")

	if res.Empty() {
		handler.console.Println("No updates found.")

		return nil
	}

	for idx := range res.Rows {
		handler.console.Printf("- Manager %s updated room %s on %s\n", res.Value(idx, 0), res.Value(idx, 2), res.Value(idx, 3))
	}

	log.Debug().Str("session", sess.ID).Int("rows", res.Len()).Msg("listed room updates")

	return nil
}
