package dto

import (
	"fmt"
	"maps"
	"strings"
)

const (
	FilterOperatorEq      = "eq"
	FilterOperatorBetween = "between"
)

const (
	FilterGroupOperatorAnd = "AND"
)

// argPrefix keeps filter arguments apart from SET arguments of the same column.
const argPrefix = "w_"

// Filter is one condition of a WHERE clause. Values are always bound as
// named arguments; for FilterOperatorBetween Value must be a [2]any.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq between"`
	Table    string
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	column := f.Field
	if f.Table != "" {
		column = fmt.Sprintf("%s.%s", f.Table, f.Field)
	}

	argName := f.ArgName
	if argName == "" {
		argName = argPrefix + strings.ToLower(f.Field)
	}

	switch f.Operator {
	case FilterOperatorEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s = :%s", column, argName), args
	case FilterOperatorBetween:
		bounds, ok := f.Value.([2]any)
		if !ok {
			return "", args
		}

		args[argName+"_from"] = bounds[0]
		args[argName+"_to"] = bounds[1]

		return fmt.Sprintf("%s BETWEEN :%s_from AND :%s_to", column, argName, argName), args
	default:
		return "", args
	}
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

// And groups filters (Filter or FilterGroup values) with AND.
func And(filters ...any) FilterGroup {
	return FilterGroup{Filters: filters, Operator: FilterGroupOperatorAnd}
}

// Eq is shorthand for an equality Filter on table.field.
func Eq(table, field string, value any) Filter {
	return Filter{Table: table, Field: field, Value: value, Operator: FilterOperatorEq}
}

// Between is an inclusive range Filter on table.field.
func Between(table, field string, from, to any) Filter {
	return Filter{Table: table, Field: field, Value: [2]any{from, to}, Operator: FilterOperatorBetween}
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	whereClause := []string{}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	for _, filter := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch fill := filter.(type) {
		case Filter:
			where, arg = fill.GetWhereClause()
		case FilterGroup:
			where, arg = fill.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		whereClause = append(whereClause, where)

		maps.Copy(args, arg)
	}

	if len(whereClause) == 0 {
		return "", args
	}

	return fmt.Sprintf("(%s)", strings.Join(whereClause, " "+operator+" ")), args
}
