package repair

import (
	"context"
	"time"

	"hotel/infras/otel"
	hotelService "hotel/internal/domains/hotel/service"
	"hotel/internal/domains/repair/model/dto"
	"hotel/internal/domains/repair/service"
	roomService "hotel/internal/domains/room/service"
	"hotel/internal/session"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/input"
	"hotel/shared/timezone"
	"hotel/transport/cli/console"
)

const (
	messageNotManager     = "You don't manage the specified hotel.\n"
	messageRoomMissing    = "Room not found."
	messageCompanyMissing = "Company not found."
	messageDatePassed     = "\t The date you entered is not valid. Please enter a date that has not yet passed.  "
	messageInvalidDate    = "Invalid date, use mm/dd/yyyy."
)

type Handler struct {
	service      service.Repair
	hotelService hotelService.Hotel
	roomService  roomService.Room
	otel         otel.Otel
	console      *console.Console
}

func New(
	service service.Repair,
	hotelService hotelService.Hotel,
	roomService roomService.Room,
	otel otel.Otel,
	console *console.Console,
) Handler {
	return Handler{
		service:      service,
		hotelService: hotelService,
		roomService:  roomService,
		otel:         otel,
		console:      console,
	}
}

// PlaceRequest asks, one loop per answer, for a managed hotel, one of its
// rooms, a known company and a date that has not passed, then stores the
// repair.
func (handler *Handler) PlaceRequest(ctx context.Context, sess *session.Session) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PlaceRequest")
	defer scope.End()

	scope.SetAttribute(constant.OtelSessionAttributeKey, sess.ID)

	if !sess.IsManager() {
		return failure.ManagerOnlyError
	}

	req := dto.RepairRequest{}

	var err error

	managed := func(ctx context.Context, hotelID int) (bool, error) {
		return handler.hotelService.IsManagedBy(ctx, sess, hotelID) //nolint:wrapcheck
	}

	req.HotelID, err = console.Ask(ctx, handler.console, input.Field[int]{
		Prompt: "Enter hotel ID: ",
		Parse:  input.Int,
		Rules:  []input.Rule[int]{input.Exists(managed, messageNotManager)},
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	roomExists := func(ctx context.Context, roomNumber int) (bool, error) {
		return handler.roomService.Exists(ctx, req.HotelID, roomNumber) //nolint:wrapcheck
	}

	req.RoomNumber, err = console.Ask(ctx, handler.console, input.Field[int]{
		Prompt: "Enter room number: ",
		Parse:  input.Int,
		Rules:  []input.Rule[int]{input.Exists(roomExists, messageRoomMissing)},
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	req.CompanyID, err = console.Ask(ctx, handler.console, input.Field[int]{
		Prompt: "Enter Company ID: ",
		Parse:  input.Int,
		Rules:  []input.Rule[int]{input.Exists(handler.service.CompanyExists, messageCompanyMissing)},
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	handler.console.Printf("current date: %s\n\n", timezone.Format(timezone.Today(), constant.DateDisplayLayout))

	req.Date, err = console.Ask(ctx, handler.console, input.Field[time.Time]{
		Prompt:  "\tEnter Date (mm/dd/yyyy): ",
		Parse:   input.Date,
		Invalid: messageInvalidDate,
		Rules:   []input.Rule[time.Time]{input.NotBefore(timezone.Today, messageDatePassed)},
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	res, err := handler.service.Place(ctx, sess, req)
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	scope.AddEvent("Repair request placed")
	handler.console.Printf("Created repairID: %d\n", res.RepairID)

	return nil
}

// History prints the repairs requested by the manager.
func (handler *Handler) History(ctx context.Context, sess *session.Session) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".History")
	defer scope.End()

	scope.SetAttribute(constant.OtelSessionAttributeKey, sess.ID)

	res, err := handler.service.History(ctx, sess)
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	if res.Empty() {
		handler.console.Println("No repair requests found.")

		return nil
	}

	handler.console.Println("Room Repair History:")
	console.PrintTableWithCount(handler.console.Out(), res)

	return nil
}
