package model

import "math"

const (
	TableName  = "Hotel"
	EntityName = "hotel"

	FieldHotelID       = "hotelID"
	FieldHotelName     = "hotelName"
	FieldLatitude      = "latitude"
	FieldLongitude     = "longitude"
	FieldManagerUserID = "managerUserID"
)

type Hotel struct {
	HotelID       int     `db:"hotelID"       insert:"-"`
	HotelName     string  `db:"hotelName"`
	Latitude      float64 `db:"latitude"`
	Longitude     float64 `db:"longitude"`
	ManagerUserID string  `db:"managerUserID"`
}

// DistanceTo is the plain Euclidean distance between coordinate pairs, not a
// great-circle distance.
func (h Hotel) DistanceTo(latitude, longitude float64) float64 {
	return math.Hypot(h.Latitude-latitude, h.Longitude-longitude)
}
