package booking

import (
	"context"
	"time"

	"hotel/infras/otel"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	hotelService "hotel/internal/domains/hotel/service"
	roomService "hotel/internal/domains/room/service"
	"hotel/internal/session"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/input"
	"hotel/shared/timezone"
	"hotel/transport/cli/console"
)

const messageInvalidDate = "Invalid date, use mm/dd/yyyy."

var (
	hotelField = input.Field[int]{
		Prompt: "Enter hotel ID: ",
		Parse:  input.Int,
	}
	bookingDateField = input.Field[time.Time]{
		Prompt:  "Enter date (mm/dd/yyyy): ",
		Parse:   input.Date,
		Invalid: messageInvalidDate,
	}
	startDateField = input.Field[time.Time]{
		Prompt:  "Enter start date (mm/dd/yyyy): ",
		Parse:   input.Date,
		Invalid: messageInvalidDate,
	}
	endDateField = input.Field[time.Time]{
		Prompt:  "Enter end date (mm/dd/yyyy): ",
		Parse:   input.Date,
		Invalid: messageInvalidDate,
	}
)

type Handler struct {
	service      service.Booking
	hotelService hotelService.Hotel
	roomService  roomService.Room
	otel         otel.Otel
	console      *console.Console
}

func New(
	service service.Booking,
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

// BookRoom asks until the hotel and the room exist, then books the room on
// the date when nobody holds it yet.
func (handler *Handler) BookRoom(ctx context.Context, sess *session.Session) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookRoom")
	defer scope.End()

	scope.SetAttribute(constant.OtelSessionAttributeKey, sess.ID)

	req := dto.BookRoomRequest{}

	var err error

	req.HotelID, err = console.Ask(ctx, handler.console, input.Field[int]{
		Prompt: "\tEnter Hotel ID: ",
		Retry:  "\tInvalid Hotel ID. Enter hotel ID: ",
		Parse:  input.Int,
		Rules:  []input.Rule[int]{input.Exists(handler.hotelService.Exists, "Invalid Hotel ID.")},
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	roomExists := func(ctx context.Context, roomNumber int) (bool, error) {
		return handler.roomService.Exists(ctx, req.HotelID, roomNumber) //nolint:wrapcheck
	}

	req.RoomNumber, err = console.Ask(ctx, handler.console, input.Field[int]{
		Prompt: "\tEnter Room Number: ",
		Retry:  "\tInvalid Room No. Enter Room no: ",
		Parse:  input.Int,
		Rules:  []input.Rule[int]{input.Exists(roomExists, "Room not found.")},
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	if req.Date, err = console.Ask(ctx, handler.console, bookingDateField); err != nil {
		return err //nolint:wrapcheck
	}

	res, err := handler.service.Book(ctx, sess, req)
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	if !res.Available {
		handler.console.Println("Sorry, that room is booked.")

		return nil
	}

	scope.AddEvent("Room booked")
	handler.console.Println("Room is available!")
	handler.console.Printf("Booking successful! \nYour cost: $%s\n", res.Price)

	return nil
}

// RecentBookings prints the latest bookings of the logged in user.
func (handler *Handler) RecentBookings(ctx context.Context, sess *session.Session) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecentBookings")
	defer scope.End()

	scope.SetAttribute(constant.OtelSessionAttributeKey, sess.ID)

	res, err := handler.service.RecentBookings(ctx, sess)
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	if res.Empty() {
		handler.console.Println("No bookings found for current customer.")

		return nil
	}

	handler.console.Println("Recent bookings for current customer:")
	console.PrintTable(handler.console.Out(), res)

	return nil
}

// HotelHistory prints the bookings of a managed hotel between two dates.
func (handler *Handler) HotelHistory(ctx context.Context, sess *session.Session) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HotelHistory")
	defer scope.End()

	scope.SetAttribute(constant.OtelSessionAttributeKey, sess.ID)

	if !sess.IsManager() {
		return failure.ManagerOnlyError
	}

	req := dto.HotelHistoryRequest{}

	var err error

	if req.HotelID, err = handler.askManagedHotel(ctx, sess); err != nil {
		return err
	}

	if req.From, err = console.Ask(ctx, handler.console, startDateField); err != nil {
		return err //nolint:wrapcheck
	}

	if req.To, err = console.Ask(ctx, handler.console, endDateField); err != nil {
		return err //nolint:wrapcheck
	}

	res, err := handler.service.HotelHistory(ctx, sess, req)
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	handler.console.Printf("Booking history for hotel %d from %s to %s:\n",
		req.HotelID, timezone.Format(req.From, constant.DateDisplayLayout), timezone.Format(req.To, constant.DateDisplayLayout))

	if res.Empty() {
		handler.console.Println("No bookings found.")

		return nil
	}

	for idx := range res.Rows {
		handler.console.Printf("- Booking ID: %s, Customer Name: %s, Room Number: %s, Booking Date: %s\n",
			res.Value(idx, 0), res.Value(idx, 1), res.Value(idx, 2), res.Value(idx, 3))
	}

	return nil
}

// RegularCustomers prints the customers with the most bookings at a managed
// hotel.
func (handler *Handler) RegularCustomers(ctx context.Context, sess *session.Session) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegularCustomers")
	defer scope.End()

	scope.SetAttribute(constant.OtelSessionAttributeKey, sess.ID)

	if !sess.IsManager() {
		return failure.ManagerOnlyError
	}

	hotelID, err := handler.askManagedHotel(ctx, sess)
	if err != nil {
		return err
	}

	res, err := handler.service.RegularCustomers(ctx, sess, hotelID)
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	handler.console.Printf("Top %d regular customers for hotel %d:\n", constant.RegularCustomersLimit, hotelID)

	if res.Empty() {
		handler.console.Println("No regular customers found.")

		return nil
	}

	for idx := range res.Rows {
		handler.console.Printf("- Customer Name: %s, Number of Bookings: %s\n", res.Value(idx, 0), res.Value(idx, 1))
	}

	return nil
}

// askManagedHotel reads a hotel id and fails once if the manager does not run it.
func (handler *Handler) askManagedHotel(ctx context.Context, sess *session.Session) (int, error) {
	hotelID, err := console.Ask(ctx, handler.console, hotelField)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	if err = handler.hotelService.CheckManager(ctx, sess, hotelID); err != nil {
		return 0, err //nolint:wrapcheck
	}

	return hotelID, nil
}
