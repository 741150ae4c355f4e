package model

import "time"

const (
	TableName  = "Rooms"
	EntityName = "room"

	FieldHotelID    = "hotelID"
	FieldRoomNumber = "roomNumber"
	FieldPrice      = "price"
	FieldImageURL   = "imageURL"
)

const (
	UpdateLogTableName  = "RoomUpdatesLog"
	UpdateLogEntityName = "room_update"

	FieldManagerID = "managerID"
	FieldUpdatedOn = "updatedOn"
)

const (
	AvailabilityAvailable = "Available"
	AvailabilityBooked    = "Booked"
)

type Room struct {
	HotelID    int    `db:"hotelID"`
	RoomNumber int    `db:"roomNumber"`
	Price      int    `db:"price"`
	ImageURL   string `db:"imageURL"`
}

// UpdateLog is one append-only audit row per room update.
type UpdateLog struct {
	UpdateNumber int       `db:"updateNumber" insert:"-"`
	ManagerID    string    `db:"managerID"`
	HotelID      int       `db:"hotelID"`
	RoomNumber   int       `db:"roomNumber"`
	UpdatedOn    time.Time `db:"updatedOn"`
}
