package model

import "slices"

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodCard         PaymentMethod = "Card"
	PaymentMethodUPI          PaymentMethod = "UPI"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodAgoda        PaymentMethod = "Agoda"
	PaymentMethodMMT          PaymentMethod = "MMT"
	PaymentMethodAirbnb       PaymentMethod = "Airbnb"
	PaymentMethodExpedia      PaymentMethod = "Expedia"
	PaymentMethodStayflexi    PaymentMethod = "Stayflexi"
	PaymentMethodWebsite      PaymentMethod = "Website"
	PaymentMethodOnline       PaymentMethod = "Online"
	PaymentMethodPending      PaymentMethod = "Pending"

	// PaymentMethodNoBalance is reserved for reservations with nothing left to pay.
	PaymentMethodNoBalance PaymentMethod = "No Balance"
)

var paymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodCard,
	PaymentMethodUPI,
	PaymentMethodBankTransfer,
	PaymentMethodAgoda,
	PaymentMethodMMT,
	PaymentMethodAirbnb,
	PaymentMethodExpedia,
	PaymentMethodStayflexi,
	PaymentMethodWebsite,
	PaymentMethodOnline,
	PaymentMethodPending,
	PaymentMethodNoBalance,
}

func (p PaymentMethod) IsValid() bool {
	return slices.Contains(paymentMethods, p)
}

// PaymentMethods lists every accepted method in display order.
func PaymentMethods() []PaymentMethod {
	return slices.Clone(paymentMethods)
}

// IsChannel reports whether p names a way money is actually collected.
func (p PaymentMethod) IsChannel() bool {
	return p.IsValid() && p != PaymentMethodNoBalance
}

type PaymentStatus string

const (
	PaymentStatusFullyPaid     PaymentStatus = "Fully Paid"
	PaymentStatusPartiallyPaid PaymentStatus = "Partially Paid"
	PaymentStatusNotPaid       PaymentStatus = "Not Paid"
)

func (p PaymentStatus) IsValid() bool {
	return p == PaymentStatusFullyPaid || p == PaymentStatusPartiallyPaid || p == PaymentStatusNotPaid
}

type BookingSource string

const (
	BookingSourceDirect BookingSource = "Direct"
	BookingSourceOnline BookingSource = "Online"
	BookingSourceAgent  BookingSource = "Agent"
	BookingSourceWalkIn BookingSource = "Walk-in"
	BookingSourcePhone  BookingSource = "Phone"
)

func (b BookingSource) IsValid() bool {
	return slices.Contains([]BookingSource{
		BookingSourceDirect,
		BookingSourceOnline,
		BookingSourceAgent,
		BookingSourceWalkIn,
		BookingSourcePhone,
	}, b)
}

type ModeOfBooking string

const (
	ModeOfBookingDirect     ModeOfBooking = "Direct"
	ModeOfBookingBookingDrt ModeOfBooking = "Booking-Drt"
	ModeOfBookingWalkIn     ModeOfBooking = "Walk-in"
	ModeOfBookingWebsite    ModeOfBooking = "Website"
	ModeOfBookingPhone      ModeOfBooking = "Phone"
	ModeOfBookingMakeMyTrip ModeOfBooking = "MakeMyTrip"
	ModeOfBookingAirbnb     ModeOfBooking = "Airbnb"
	ModeOfBookingOnline     ModeOfBooking = "Online"
)

func (m ModeOfBooking) IsValid() bool {
	return slices.Contains([]ModeOfBooking{
		ModeOfBookingDirect,
		ModeOfBookingBookingDrt,
		ModeOfBookingWalkIn,
		ModeOfBookingWebsite,
		ModeOfBookingPhone,
		ModeOfBookingMakeMyTrip,
		ModeOfBookingAirbnb,
		ModeOfBookingOnline,
	}, m)
}

type BreakfastPlan string

const (
	BreakfastPlanCP BreakfastPlan = "CP"
	BreakfastPlanEP BreakfastPlan = "EP"
)

func (b BreakfastPlan) IsValid() bool {
	return b == BreakfastPlanCP || b == BreakfastPlanEP
}

// PlanStatus doubles as the cancellation marker; reservations are never deleted.
type PlanStatus string

const (
	PlanStatusConfirmed PlanStatus = "Confirmed"
	PlanStatusPending   PlanStatus = "Pending"
	PlanStatusCancelled PlanStatus = "Cancelled"
	PlanStatusCompleted PlanStatus = "Completed"
	PlanStatusNoShow    PlanStatus = "No Show"
)

func (p PlanStatus) IsValid() bool {
	return slices.Contains([]PlanStatus{
		PlanStatusConfirmed,
		PlanStatusPending,
		PlanStatusCancelled,
		PlanStatusCompleted,
		PlanStatusNoShow,
	}, p)
}
