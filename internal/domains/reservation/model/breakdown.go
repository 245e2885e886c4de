package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Dimension is a column reservations can be grouped by in analytics.
type Dimension string

const (
	DimensionPlanStatus    Dimension = "plan_status"
	DimensionBookingSource Dimension = "booking_source"
	DimensionRoomType      Dimension = "room_type"
	DimensionProperty      Dimension = "property_name"
	DimensionBookingMonth  Dimension = "booking_month"
)

func Dimensions() []Dimension {
	return []Dimension{
		DimensionPlanStatus,
		DimensionBookingSource,
		DimensionRoomType,
		DimensionProperty,
		DimensionBookingMonth,
	}
}

func (d Dimension) IsValid() bool {
	switch d {
	case DimensionPlanStatus, DimensionBookingSource, DimensionRoomType, DimensionProperty, DimensionBookingMonth:
		return true
	default:
		return false
	}
}

// GroupExpression is the SQL the dimension groups on. Only allow-listed dimensions reach the query text.
func (d Dimension) GroupExpression() string {
	if d == DimensionBookingMonth {
		return fmt.Sprintf("TO_CHAR(%s.%s, 'YYYY-MM')", TableName, FieldBookingDate)
	}

	return fmt.Sprintf("%s.%s", TableName, d)
}

// Chronological dimensions read in key order; the rest lead with the largest group.
func (d Dimension) Chronological() bool {
	return d == DimensionBookingMonth
}

// BreakdownRow is one group of a breakdown: how many reservations share the key and what they earn.
type BreakdownRow struct {
	Key          string          `db:"group_key"`
	Reservations int             `db:"reservations"`
	Revenue      decimal.Decimal `db:"revenue"`
}
