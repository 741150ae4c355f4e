package dto

import (
	"time"

	"hotel/internal/domains/room/model"
	"hotel/shared/constant"
)

type ViewRoomsRequest struct {
	HotelID int       `validate:"gte=0"`
	Date    time.Time `validate:"required"`
}

// BookingDate is the date bound against RoomBookings.bookingDate.
func (r *ViewRoomsRequest) BookingDate() string {
	return r.Date.Format(constant.DateSQLLayout)
}

type UpdateRoomRequest struct {
	HotelID    int    `validate:"gte=0"`
	RoomNumber int    `validate:"gte=0"`
	Price      int    `validate:"gte=0"`
	ImageURL   string `validate:"max=400"`
}

// Fields are the columns written by an update; both are always set.
func (r *UpdateRoomRequest) Fields() map[string]any {
	return map[string]any{
		model.FieldPrice:    r.Price,
		model.FieldImageURL: r.ImageURL,
	}
}

func (r *UpdateRoomRequest) ToUpdateLog(managerID string, updatedOn time.Time) model.UpdateLog {
	return model.UpdateLog{
		ManagerID:  managerID,
		HotelID:    r.HotelID,
		RoomNumber: r.RoomNumber,
		UpdatedOn:  updatedOn,
	}
}
