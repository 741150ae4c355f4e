package model

const (
	TableName  = "RoomBookings"
	EntityName = "booking"

	FieldHotelID     = "hotelID"
	FieldBookingDate = "bookingDate"
)

// Booking holds at most one row per hotel, room and date. The rule is kept by
// an availability check before the insert, not by a constraint.
type Booking struct {
	BookingID   int    `db:"bookingID"   insert:"-"`
	CustomerID  string `db:"customerID"`
	HotelID     int    `db:"hotelID"`
	RoomNumber  int    `db:"roomNumber"`
	BookingDate string `db:"bookingDate"`
}
