package dto

import (
	"time"

	"tie/internal/domains/reservation/model"
	"tie/shared"
	"tie/shared/constant"
	gDto "tie/shared/dto"
	"tie/shared/timezone"

	"github.com/shopspring/decimal"
)

// ReservationForm holds the user-entered fields shared by create and edit. Derived columns are not accepted.
type ReservationForm struct {
	PropertyName   string              `json:"property_name"    validate:"notblank,max=100"`
	RoomType       string              `json:"room_type"        validate:"max=100"`
	RoomNo         string              `json:"room_no"          validate:"notblank,max=50"`
	GuestName      string              `json:"guest_name"       validate:"notblank,max=100"`
	MobileNo       string              `json:"mobile_no"        validate:"mobile"`
	Adults         int                 `json:"adults"           validate:"gte=0"`
	Children       int                 `json:"children"         validate:"gte=0"`
	Infants        int                 `json:"infants"          validate:"gte=0"`
	CheckIn        string              `json:"check_in"         validate:"required,datetime=2006-01-02"`
	CheckOut       string              `json:"check_out"        validate:"required,datetime=2006-01-02"`
	TariffPerNight decimal.Decimal     `json:"tariff_per_night" validate:"gte=0,cents"`
	AdvanceAmount  decimal.Decimal     `json:"advance_amount"   validate:"gte=0,cents"`
	AdvanceMethod  model.PaymentMethod `json:"advance_method"   validate:"omitempty,enum"`
	BalanceMethod  model.PaymentMethod `json:"balance_method"   validate:"omitempty,enum"`
	BookingSource  model.BookingSource `json:"booking_source"   validate:"omitempty,enum"`
	ModeOfBooking  model.ModeOfBooking `json:"mode_of_booking"  validate:"omitempty,enum"`
	BreakfastPlan  model.BreakfastPlan `json:"breakfast_plan"   validate:"omitempty,enum"`
	PlanStatus     model.PlanStatus    `json:"plan_status"      validate:"omitempty,enum"`
	EnquiryDate    string              `json:"enquiry_date"     validate:"omitempty,datetime=2006-01-02"`
	BookingDate    string              `json:"booking_date"     validate:"omitempty,datetime=2006-01-02"`
	InvoiceNo      string              `json:"invoice_no"       validate:"max=50"`
	OnlineSource   string              `json:"online_source"    validate:"max=50"`
	Remarks        string              `json:"remarks"          validate:"max=1000"`
}

type CreateReservationRequest struct {
	ReservationForm
}

type UpdateReservationRequest struct {
	ReservationForm
	ModifiedComments string `json:"modified_comments" validate:"max=500"`
}

// Apply copies the form onto r, leaving identity, audit and derived columns alone.
// Omitted choices and dates keep r's current value, then fall back to defaults. Dates must already have passed format validation.
func (f *ReservationForm) Apply(r *model.Reservation, today time.Time) {
	r.PropertyName = f.PropertyName
	r.RoomType = f.RoomType
	r.RoomNo = f.RoomNo
	r.GuestName = f.GuestName
	r.MobileNo = f.MobileNo
	r.Adults = f.Adults
	r.Children = f.Children
	r.Infants = f.Infants
	r.CheckIn = parseDate(f.CheckIn)
	r.CheckOut = parseDate(f.CheckOut)
	r.TariffPerNight = f.TariffPerNight.Round(constant.MoneyScale)
	r.AdvanceAmount = f.AdvanceAmount.Round(constant.MoneyScale)
	r.AdvanceMethod = f.AdvanceMethod
	r.BalanceMethod = f.BalanceMethod
	r.BookingSource = firstSet(f.BookingSource, r.BookingSource, model.BookingSourceDirect)
	r.ModeOfBooking = firstSet(f.ModeOfBooking, r.ModeOfBooking, model.ModeOfBookingDirect)
	r.BreakfastPlan = firstSet(f.BreakfastPlan, r.BreakfastPlan, model.BreakfastPlanCP)
	r.PlanStatus = firstSet(f.PlanStatus, r.PlanStatus, model.PlanStatusConfirmed)
	r.InvoiceNo = f.InvoiceNo
	r.OnlineSource = f.OnlineSource
	r.Remarks = f.Remarks

	enquiry, booking := parseDate(f.EnquiryDate), parseDate(f.BookingDate)
	if enquiry.IsZero() {
		enquiry = r.EnquiryDate
	}

	if booking.IsZero() {
		booking = r.BookingDate
	}

	r.EnquiryDate, r.BookingDate = defaultDates(enquiry, booking, today)
}

// defaultDates fills a missing enquiry or booking date from the other, or from today when both are missing.
func defaultDates(enquiry, booking, today time.Time) (time.Time, time.Time) {
	day := timezone.CalendarDay(today)

	switch {
	case enquiry.IsZero() && booking.IsZero():
		return day, day
	case enquiry.IsZero():
		return booking, booking
	case booking.IsZero():
		return enquiry, enquiry
	default:
		return enquiry, booking
	}
}

func parseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(constant.CalendarFormat, value)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func firstSet[T ~string](values ...T) T {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}

type ReservationResponse struct {
	BookingID        string  `json:"booking_id"`
	PropertyName     string  `json:"property_name"`
	RoomType         string  `json:"room_type"`
	RoomNo           string  `json:"room_no"`
	GuestName        string  `json:"guest_name"`
	MobileNo         string  `json:"mobile_no"`
	Adults           int     `json:"adults"`
	Children         int     `json:"children"`
	Infants          int     `json:"infants"`
	TotalPax         int     `json:"total_pax"`
	CheckIn          string  `json:"check_in"`
	CheckOut         string  `json:"check_out"`
	StayDays         int     `json:"stay_days"`
	TariffPerNight   float64 `json:"tariff_per_night"`
	TotalTariff      float64 `json:"total_tariff"`
	AdvanceAmount    float64 `json:"advance_amount"`
	BalanceAmount    float64 `json:"balance_amount"`
	AdvanceMethod    string  `json:"advance_method"`
	BalanceMethod    string  `json:"balance_method"`
	PaymentStatus    string  `json:"payment_status"`
	BookingSource    string  `json:"booking_source"`
	ModeOfBooking    string  `json:"mode_of_booking"`
	BreakfastPlan    string  `json:"breakfast_plan"`
	PlanStatus       string  `json:"plan_status"`
	EnquiryDate      string  `json:"enquiry_date"`
	BookingDate      string  `json:"booking_date"`
	InvoiceNo        string  `json:"invoice_no"`
	OnlineSource     string  `json:"online_source"`
	SubmittedBy      string  `json:"submitted_by"`
	ModifiedBy       string  `json:"modified_by"`
	ModifiedComments string  `json:"modified_comments"`
	Remarks          string  `json:"remarks"`
	gDto.Timestamps
}

func (r *ReservationResponse) FromModel(m model.Reservation) {
	r.BookingID = m.BookingID
	r.PropertyName = m.PropertyName
	r.RoomType = m.RoomType
	r.RoomNo = m.RoomNo
	r.GuestName = m.GuestName
	r.MobileNo = m.MobileNo
	r.Adults = m.Adults
	r.Children = m.Children
	r.Infants = m.Infants
	r.TotalPax = m.TotalPax
	r.CheckIn = m.CheckIn.Format(constant.CalendarFormat)
	r.CheckOut = m.CheckOut.Format(constant.CalendarFormat)
	r.StayDays = m.StayDays
	r.TariffPerNight = m.TariffPerNight.InexactFloat64()
	r.TotalTariff = m.TotalTariff.InexactFloat64()
	r.AdvanceAmount = m.AdvanceAmount.InexactFloat64()
	r.BalanceAmount = m.BalanceAmount.InexactFloat64()
	r.AdvanceMethod = string(m.AdvanceMethod)
	r.BalanceMethod = string(m.BalanceMethod)
	r.PaymentStatus = string(m.PaymentStatus)
	r.BookingSource = string(m.BookingSource)
	r.ModeOfBooking = string(m.ModeOfBooking)
	r.BreakfastPlan = string(m.BreakfastPlan)
	r.PlanStatus = string(m.PlanStatus)
	r.EnquiryDate = m.EnquiryDate.Format(constant.CalendarFormat)
	r.BookingDate = m.BookingDate.Format(constant.CalendarFormat)
	r.InvoiceNo = m.InvoiceNo
	r.OnlineSource = m.OnlineSource
	r.SubmittedBy = m.SubmittedBy
	r.ModifiedBy = m.ModifiedBy
	r.ModifiedComments = m.ModifiedComments
	r.Remarks = m.Remarks
	r.Timestamps.FromModel(m.Timestamps)
}

// SubmitResponse reports a persisted create or edit. Warnings mention stored catalog values kept as-is.
type SubmitResponse struct {
	State       string              `json:"state"`
	Reservation ReservationResponse `json:"reservation"`
	Warnings    []string            `json:"warnings,omitempty"`
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

type SummaryResponse struct {
	Reservations    int     `json:"reservations"`
	Revenue         float64 `json:"revenue"`
	AdvanceReceived float64 `json:"advance_received"`
	BalancePending  float64 `json:"balance_pending"`
	AverageTariff   float64 `json:"average_tariff"`
	AverageStayDays float64 `json:"average_stay_days"`
}

func (r *SummaryResponse) FromModel(m model.Summary) {
	r.Reservations = m.Reservations
	r.Revenue = m.Revenue.InexactFloat64()
	r.AdvanceReceived = m.AdvanceReceived.InexactFloat64()
	r.BalancePending = m.BalancePending.InexactFloat64()
	r.AverageTariff = m.AverageTariff.Round(2).InexactFloat64() //nolint:mnd
	r.AverageStayDays = m.AverageStay.Round(2).InexactFloat64() //nolint:mnd
}

// BreakdownResponse groups reservations by one dimension, largest group first or in month order.
type BreakdownResponse struct {
	Dimension string           `json:"dimension"`
	Groups    []BreakdownGroup `json:"groups"`
}

type BreakdownGroup struct {
	Key          string  `json:"key"`
	Reservations int     `json:"reservations"`
	Revenue      float64 `json:"revenue"`
}

func (r *BreakdownResponse) FromModels(dimension model.Dimension, rows []model.BreakdownRow) {
	r.Dimension = string(dimension)
	r.Groups = make([]BreakdownGroup, len(rows))

	for i, row := range rows {
		r.Groups[i] = BreakdownGroup{
			Key:          row.Key,
			Reservations: row.Reservations,
			Revenue:      row.Revenue.InexactFloat64(),
		}
	}
}

// EditOptionsResponse lists the choices an edit form should offer, stored values included.
type EditOptionsResponse struct {
	BookingID      string   `json:"booking_id"`
	Properties     []string `json:"properties"`
	RoomTypes      []string `json:"room_types"`
	RoomNumbers    []string `json:"room_numbers"`
	PaymentMethods []string `json:"payment_methods"`
	Stale          []string `json:"stale,omitempty"`
}
