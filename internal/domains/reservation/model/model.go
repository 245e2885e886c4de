package model

import (
	"time"

	catalogModel "tie/internal/domains/catalog/model"
	"tie/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldBookingID    = "booking_id"
	FieldPropertyName = "property_name"
	FieldRoomType     = "room_type"
	FieldRoomNo       = "room_no"
	FieldGuestName    = "guest_name"
	FieldMobileNo     = "mobile_no"
	FieldCheckIn      = "check_in"
	FieldCheckOut     = "check_out"
	FieldTotalTariff  = "total_tariff"
	FieldPlanStatus   = "plan_status"
	FieldBookingDate  = "booking_date"
	FieldCreatedAt    = "created_at"

	ConstraintPrimaryKey = "reservations_pkey"
	ConstraintGuestRoom  = "reservations_guest_mobile_room_key"
)

// SortableFields may be used as sort_by.
var SortableFields = []string{
	FieldBookingID,
	FieldPropertyName,
	FieldGuestName,
	FieldCheckIn,
	FieldCheckOut,
	FieldTotalTariff,
	FieldBookingDate,
	FieldCreatedAt,
}

type Reservation struct {
	BookingID        string          `db:"booking_id"`
	PropertyName     string          `db:"property_name"`
	RoomType         string          `db:"room_type"`
	RoomNo           string          `db:"room_no"`
	GuestName        string          `db:"guest_name"`
	MobileNo         string          `db:"mobile_no"`
	Adults           int             `db:"adults"`
	Children         int             `db:"children"`
	Infants          int             `db:"infants"`
	TotalPax         int             `db:"total_pax"`
	CheckIn          time.Time       `db:"check_in"`
	CheckOut         time.Time       `db:"check_out"`
	StayDays         int             `db:"stay_days"`
	TariffPerNight   decimal.Decimal `db:"tariff_per_night"`
	TotalTariff      decimal.Decimal `db:"total_tariff"`
	AdvanceAmount    decimal.Decimal `db:"advance_amount"`
	BalanceAmount    decimal.Decimal `db:"balance_amount"`
	AdvanceMethod    PaymentMethod   `db:"advance_method"`
	BalanceMethod    PaymentMethod   `db:"balance_method"`
	PaymentStatus    PaymentStatus   `db:"payment_status"`
	BookingSource    BookingSource   `db:"booking_source"`
	ModeOfBooking    ModeOfBooking   `db:"mode_of_booking"`
	BreakfastPlan    BreakfastPlan   `db:"breakfast_plan"`
	PlanStatus       PlanStatus      `db:"plan_status"`
	EnquiryDate      time.Time       `db:"enquiry_date"`
	BookingDate      time.Time       `db:"booking_date"`
	InvoiceNo        string          `db:"invoice_no"`
	OnlineSource     string          `db:"online_source"`
	SubmittedBy      string          `db:"submitted_by"`
	ModifiedBy       string          `db:"modified_by"`
	ModifiedComments string          `db:"modified_comments"`
	Remarks          string          `db:"remarks"`
	model.Timestamps
}

func (r *Reservation) Triple() catalogModel.Triple {
	return catalogModel.Triple{
		PropertyName: r.PropertyName,
		RoomType:     r.RoomType,
		RoomNo:       r.RoomNo,
	}
}

func (r *Reservation) Primitives() Primitives {
	return Primitives{
		CheckIn:        r.CheckIn,
		CheckOut:       r.CheckOut,
		Adults:         r.Adults,
		Children:       r.Children,
		Infants:        r.Infants,
		TariffPerNight: r.TariffPerNight,
		AdvanceAmount:  r.AdvanceAmount,
	}
}

// ApplyDerived overwrites every derived column. The balance method collapses to NoBalance once nothing is owed.
func (r *Reservation) ApplyDerived(derived Derived) {
	r.StayDays = derived.StayDays
	r.TotalPax = derived.TotalPax
	r.TotalTariff = derived.TotalTariff
	r.BalanceAmount = derived.BalanceAmount
	r.PaymentStatus = derived.PaymentStatus

	if derived.BalanceAmount.IsZero() {
		r.BalanceMethod = PaymentMethodNoBalance
	}
}

// AppendComment adds an edit note on its own line.
func (r *Reservation) AppendComment(actor, comment string, at time.Time) {
	if comment == "" {
		return
	}

	entry := at.Format("2006-01-02 15:04") + " " + actor + ": " + comment
	if r.ModifiedComments == "" {
		r.ModifiedComments = entry

		return
	}

	r.ModifiedComments += "\n" + entry
}

// Summary aggregates a filtered set of reservations.
type Summary struct {
	Reservations    int             `db:"reservations"`
	Revenue         decimal.Decimal `db:"revenue"`
	AdvanceReceived decimal.Decimal `db:"advance_received"`
	BalancePending  decimal.Decimal `db:"balance_pending"`
	AverageTariff   decimal.Decimal `db:"average_tariff"`
	AverageStay     decimal.Decimal `db:"average_stay"`
}
