package dto_test

import (
	"testing"
	"time"

	"tie/internal/domains/reservation/model"
	"tie/internal/domains/reservation/model/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var today = time.Date(2025, time.October, 24, 18, 45, 0, 0, time.UTC)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestReservationForm_Apply_Defaults(t *testing.T) {
	form := dto.ReservationForm{
		PropertyName:   "Sea View",
		RoomNo:         "101",
		GuestName:      "Asha Rao",
		MobileNo:       "9876543210",
		CheckIn:        "2025-10-24",
		CheckOut:       "2025-10-26",
		TariffPerNight: decimal.NewFromInt(1000),
	}

	var record model.Reservation
	form.Apply(&record, today)

	assert.Equal(t, day(2025, time.October, 24), record.CheckIn)
	assert.Equal(t, day(2025, time.October, 26), record.CheckOut)
	assert.Equal(t, model.BookingSourceDirect, record.BookingSource)
	assert.Equal(t, model.ModeOfBookingDirect, record.ModeOfBooking)
	assert.Equal(t, model.BreakfastPlanCP, record.BreakfastPlan)
	assert.Equal(t, model.PlanStatusConfirmed, record.PlanStatus)
	assert.Equal(t, day(2025, time.October, 24), record.EnquiryDate)
	assert.Equal(t, day(2025, time.October, 24), record.BookingDate)
}

func TestReservationForm_Apply_DateMirroring(t *testing.T) {
	tests := []struct {
		name            string
		enquiry         string
		booking         string
		expectedEnquiry time.Time
		expectedBooking time.Time
	}{
		{"only enquiry", "2025-10-01", "", day(2025, time.October, 1), day(2025, time.October, 1)},
		{"only booking", "", "2025-10-03", day(2025, time.October, 3), day(2025, time.October, 3)},
		{"both", "2025-10-01", "2025-10-03", day(2025, time.October, 1), day(2025, time.October, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := dto.ReservationForm{EnquiryDate: tt.enquiry, BookingDate: tt.booking}

			var record model.Reservation
			form.Apply(&record, today)

			assert.Equal(t, tt.expectedEnquiry, record.EnquiryDate)
			assert.Equal(t, tt.expectedBooking, record.BookingDate)
		})
	}
}

func TestReservationForm_Apply_KeepsStoredChoices(t *testing.T) {
	record := model.Reservation{
		BookingID:     "TIE20251001004",
		BookingSource: model.BookingSourceAgent,
		BreakfastPlan: model.BreakfastPlanEP,
		PlanStatus:    model.PlanStatusPending,
		EnquiryDate:   day(2025, time.September, 28),
		BookingDate:   day(2025, time.October, 1),
		SubmittedBy:   "fd-1",
	}

	form := dto.ReservationForm{
		GuestName:  "Asha Rao",
		PlanStatus: model.PlanStatusCancelled,
	}
	form.Apply(&record, today)

	assert.Equal(t, "TIE20251001004", record.BookingID)
	assert.Equal(t, "fd-1", record.SubmittedBy)
	assert.Equal(t, model.BookingSourceAgent, record.BookingSource)
	assert.Equal(t, model.BreakfastPlanEP, record.BreakfastPlan)
	assert.Equal(t, model.PlanStatusCancelled, record.PlanStatus)
	assert.Equal(t, day(2025, time.September, 28), record.EnquiryDate)
	assert.Equal(t, day(2025, time.October, 1), record.BookingDate)
}

func TestReservationResponse_FromModel(t *testing.T) {
	record := model.Reservation{
		BookingID:      "TIE20251024001",
		GuestName:      "Asha Rao",
		CheckIn:        day(2025, time.October, 24),
		CheckOut:       day(2025, time.October, 26),
		StayDays:       2,
		TariffPerNight: decimal.RequireFromString("1000.50"),
		TotalTariff:    decimal.RequireFromString("2001.00"),
		PaymentStatus:  model.PaymentStatusNotPaid,
		BalanceMethod:  model.PaymentMethodPending,
	}

	var response dto.ReservationResponse
	response.FromModel(record)

	assert.Equal(t, "TIE20251024001", response.BookingID)
	assert.Equal(t, "2025-10-24", response.CheckIn)
	assert.Equal(t, "2025-10-26", response.CheckOut)
	assert.InDelta(t, 1000.5, response.TariffPerNight, 0.0001)
	assert.InDelta(t, 2001.0, response.TotalTariff, 0.0001)
	assert.Equal(t, "Not Paid", response.PaymentStatus)
	assert.Equal(t, "Pending", response.BalanceMethod)
}

func TestGetReservationsResponse_FromModels(t *testing.T) {
	var response dto.GetReservationsResponse
	response.FromModels([]model.Reservation{{BookingID: "A"}, {BookingID: "B"}}, 21, 10)

	assert.Equal(t, 21, response.TotalData)
	assert.Equal(t, 3, response.TotalPage)
	assert.Len(t, response.Reservations, 2)
	assert.Equal(t, "B", response.Reservations[1].BookingID)
}

func TestSummaryResponse_FromModel(t *testing.T) {
	var response dto.SummaryResponse
	response.FromModel(model.Summary{
		Reservations:  3,
		Revenue:       decimal.NewFromInt(10000),
		AverageTariff: decimal.RequireFromString("1333.3333"),
		AverageStay:   decimal.RequireFromString("2.6667"),
	})

	assert.Equal(t, 3, response.Reservations)
	assert.InDelta(t, 10000, response.Revenue, 0.0001)
	assert.InDelta(t, 1333.33, response.AverageTariff, 0.0001)
	assert.InDelta(t, 2.67, response.AverageStayDays, 0.0001)
}

func TestReservationForm_Apply_MoneyScale(t *testing.T) {
	form := dto.ReservationForm{
		TariffPerNight: decimal.RequireFromString("1000.0000000000000001"),
		AdvanceAmount:  decimal.RequireFromString("250.499"),
	}

	var record model.Reservation
	form.Apply(&record, today)

	assert.Equal(t, "1000", record.TariffPerNight.String())
	assert.Equal(t, "250.5", record.AdvanceAmount.String())
}
