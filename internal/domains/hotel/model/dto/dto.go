package dto

import (
	"fmt"
	"strconv"

	"hotel/internal/domains/hotel/model"
	gRepo "hotel/shared/repository"
)

// NearbyRequest is a point in the same plain coordinate space as the stored
// hotels; no geographic bounds apply.
type NearbyRequest struct {
	Latitude  float64
	Longitude float64
}

// HotelsFromResult reads rows selected as hotelID, hotelName, latitude,
// longitude.
func HotelsFromResult(res gRepo.Result) ([]model.Hotel, error) {
	hotels := make([]model.Hotel, 0, res.Len())

	for idx, row := range res.Rows {
		if len(row) < 4 {
			return nil, fmt.Errorf("hotel row %d has %d columns", idx, len(row))
		}

		hotelID, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("hotel row %d: bad id %q: %w", idx, row[0], err)
		}

		latitude, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("hotel %d: bad latitude %q: %w", hotelID, row[2], err)
		}

		longitude, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, fmt.Errorf("hotel %d: bad longitude %q: %w", hotelID, row[3], err)
		}

		hotels = append(hotels, model.Hotel{
			HotelID:   hotelID,
			HotelName: row[1],
			Latitude:  latitude,
			Longitude: longitude,
		})
	}

	return hotels, nil
}

// HotelsToResult renders hotels back into the listing shape.
func HotelsToResult(hotels []model.Hotel) gRepo.Result {
	res := gRepo.Result{
		Columns: []string{model.FieldHotelID, model.FieldHotelName, model.FieldLatitude, model.FieldLongitude},
		Rows:    make([][]string, 0, len(hotels)),
	}

	for _, hotel := range hotels {
		res.Rows = append(res.Rows, []string{
			strconv.Itoa(hotel.HotelID),
			hotel.HotelName,
			strconv.FormatFloat(hotel.Latitude, 'f', -1, 64),
			strconv.FormatFloat(hotel.Longitude, 'f', -1, 64),
		})
	}

	return res
}
