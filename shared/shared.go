package shared

import (
	"strconv"
	"strings"

	"hotel/shared/dto"

	"github.com/rs/zerolog/log"
)

// ConvertStringToInt accepts only values that fit a 32-bit column.
func ConvertStringToInt(value string) (int, error) {
	res, err := strconv.ParseInt(strings.TrimSpace(value), 10, 32)
	if err != nil {
		log.Debug().Err(err).Str("value", value).Msg("failed to convert string to int")

		return 0, err //nolint:wrapcheck
	}

	return int(res), nil
}

func ConvertStringToFloat(value string) (float64, error) {
	res, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		log.Debug().Err(err).Str("value", value).Msg("failed to convert string to float")

		return 0, err //nolint:wrapcheck
	}

	return res, nil
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
		Operator: dto.FilterGroupOperatorAnd,
	}
}
