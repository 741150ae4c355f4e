package dto

import (
	"time"

	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
)

type BookRoomRequest struct {
	HotelID    int       `validate:"gte=0"`
	RoomNumber int       `validate:"gte=0"`
	Date       time.Time `validate:"required"`
}

func (r *BookRoomRequest) BookingDate() string {
	return r.Date.Format(constant.DateSQLLayout)
}

func (r *BookRoomRequest) ToModel(customerID string) model.Booking {
	return model.Booking{
		CustomerID:  customerID,
		HotelID:     r.HotelID,
		RoomNumber:  r.RoomNumber,
		BookingDate: r.BookingDate(),
	}
}

// BookingResponse reports the price when the room was free and booked.
type BookingResponse struct {
	Available bool
	Price     string
}

type HotelHistoryRequest struct {
	HotelID int       `validate:"gte=0"`
	From    time.Time `validate:"required"`
	To      time.Time `validate:"required,gtefield=From"`
}

func (r *HotelHistoryRequest) Range() (string, string) {
	return r.From.Format(constant.DateSQLLayout), r.To.Format(constant.DateSQLLayout)
}
