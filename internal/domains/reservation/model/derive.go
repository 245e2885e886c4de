package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Primitives are the user-entered inputs every derived column is computed from.
type Primitives struct {
	CheckIn        time.Time
	CheckOut       time.Time
	Adults         int
	Children       int
	Infants        int
	TariffPerNight decimal.Decimal
	AdvanceAmount  decimal.Decimal
}

type Derived struct {
	StayDays      int
	TotalPax      int
	TotalTariff   decimal.Decimal
	BalanceAmount decimal.Decimal
	PaymentStatus PaymentStatus
}

// StayDays counts calendar days from checkIn to checkOut, ignoring time of day. Inverted ranges give 0.
func StayDays(checkIn, checkOut time.Time) int {
	return max(0, calendarDaysBetween(checkIn, checkOut))
}

func calendarDaysBetween(from, to time.Time) int {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	return int(end.Sub(start).Hours() / 24) //nolint:mnd
}

// Derive computes stay length, occupancy and the money columns.
// It fails with InvalidDateRangeError unless checkOut falls on a later calendar day than checkIn.
func Derive(p Primitives) (Derived, error) {
	if calendarDaysBetween(p.CheckIn, p.CheckOut) <= 0 {
		return Derived{}, &InvalidDateRangeError{CheckIn: p.CheckIn, CheckOut: p.CheckOut}
	}

	stayDays := StayDays(p.CheckIn, p.CheckOut)
	totalTariff := p.TariffPerNight.Mul(decimal.NewFromInt(int64(stayDays)))
	balance := decimal.Max(decimal.Zero, totalTariff.Sub(p.AdvanceAmount))

	status := PaymentStatusNotPaid

	switch {
	case balance.IsZero():
		status = PaymentStatusFullyPaid
	case p.AdvanceAmount.IsPositive():
		status = PaymentStatusPartiallyPaid
	}

	return Derived{
		StayDays:      stayDays,
		TotalPax:      p.Adults + p.Children + p.Infants,
		TotalTariff:   totalTariff,
		BalanceAmount: balance,
		PaymentStatus: status,
	}, nil
}
