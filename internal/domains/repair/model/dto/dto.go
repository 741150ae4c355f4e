package dto

import (
	"time"

	"hotel/internal/domains/repair/model"
	"hotel/shared/constant"
)

type RepairRequest struct {
	HotelID    int       `validate:"gte=0"`
	RoomNumber int       `validate:"gte=0"`
	CompanyID  int       `validate:"gte=0"`
	Date       time.Time `validate:"required,notpast"`
}

func (r *RepairRequest) ToModel() model.Repair {
	return model.Repair{
		CompanyID:  r.CompanyID,
		HotelID:    r.HotelID,
		RoomNumber: r.RoomNumber,
		RepairDate: r.Date.Format(constant.DateSQLLayout),
	}
}

type RepairResponse struct {
	RepairID int
}
