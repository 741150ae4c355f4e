package router

import (
	"context"

	"hotel/internal/handlers/auth"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/hotel"
	"hotel/internal/handlers/repair"
	"hotel/internal/handlers/room"
	"hotel/internal/session"
	"hotel/shared/constant"
)

type Action func(ctx context.Context, sess *session.Session) error

type Command struct {
	Choice      int
	Label       string
	ManagerOnly bool
	Run         Action
}

type DomainHandlers struct {
	Auth    auth.Handler
	Hotel   hotel.Handler
	Room    room.Handler
	Booking booking.Handler
	Repair  repair.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	commands       []Command
}

func New(domainHandlers DomainHandlers) *Router {
	r := &Router{
		DomainHandlers: domainHandlers,
	}

	r.setupCommands()

	return r
}

func (r *Router) setupCommands() {
	handlers := &r.DomainHandlers

	r.commands = []Command{
		{Choice: 1, Label: "View Hotels within 30 units", Run: handlers.Hotel.ViewNearby},
		{Choice: 2, Label: "View Rooms", Run: handlers.Room.ViewRooms},
		{Choice: 3, Label: "Book a Room", Run: handlers.Booking.BookRoom},
		{Choice: 4, Label: "View recent booking history", Run: handlers.Booking.RecentBookings},
		{Choice: 5, Label: "Update Room Information", ManagerOnly: true, Run: handlers.Room.UpdateRoom},
		{Choice: 6, Label: "View 5 recent Room Updates Info", ManagerOnly: true, Run: handlers.Room.RecentUpdates},
		{Choice: 7, Label: "View booking history of the hotel", ManagerOnly: true, Run: handlers.Booking.HotelHistory},
		{Choice: 8, Label: "View 5 regular Customers", ManagerOnly: true, Run: handlers.Booking.RegularCustomers},
		{Choice: 9, Label: "Place room repair Request to a company", ManagerOnly: true, Run: handlers.Repair.PlaceRequest},
		{Choice: 10, Label: "View room repair Requests history", ManagerOnly: true, Run: handlers.Repair.History},
	}
}

// Commands lists the role menu entries visible to sess, in menu order. Log
// out is not part of the table.
func (r *Router) Commands(sess *session.Session) []Command {
	visible := make([]Command, 0, len(r.commands))

	for _, cmd := range r.commands {
		if cmd.ManagerOnly && !sess.IsManager() {
			continue
		}

		visible = append(visible, cmd)
	}

	return visible
}

// Find returns the command for choice. Manager entries are unknown to
// customers.
func (r *Router) Find(sess *session.Session, choice int) (Command, bool) {
	if choice == constant.MenuChoiceLogOut {
		return Command{}, false
	}

	for _, cmd := range r.Commands(sess) {
		if cmd.Choice == choice {
			return cmd, true
		}
	}

	return Command{}, false
}
