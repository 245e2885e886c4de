package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"tie/infras/otel/mocks"
	"tie/infras/postgres"
	"tie/internal/domains/reservation/model"
	"tie/internal/domains/reservation/repository"
	gDto "tie/shared/dto"
	gRepo "tie/shared/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) (repository.Reservation, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return repository.New(postgres.NewFromDB(sqlx.NewDb(db, "postgres")), mocks.NewOtel()), mock
}

func byBookingID(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldBookingID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

func TestReservation_Insert(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reservations (booking_id, property_name, room_type, room_no")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), model.Reservation{
		BookingID:      "TIE20251024001",
		PropertyName:   "Le Park Resort",
		RoomType:       "Triple Room",
		RoomNo:         "101",
		TariffPerNight: decimal.NewFromInt(3500),
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservation_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(regexp.QuoteMeta("FROM reservations WHERE (reservations.booking_id = $1) LIMIT 1")).
			ExpectQuery().
			WithArgs("TIE20251024001").
			WillReturnRows(sqlmock.NewRows([]string{"booking_id", "guest_name", "total_tariff", "check_in"}).
				AddRow("TIE20251024001", "Asha", "7000.00", time.Date(2025, 10, 24, 0, 0, 0, 0, time.UTC)))

		res, found, err := repo.Get(context.Background(), byBookingID("TIE20251024001"))

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Asha", res.GuestName)
		assert.True(t, res.TotalTariff.Equal(decimal.NewFromInt(7000)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is not an error", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(regexp.QuoteMeta("FROM reservations WHERE")).
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows([]string{"booking_id"}))

		_, found, err := repo.Get(context.Background(), byBookingID("TIE20251024999"))

		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestReservation_Count(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT COUNT(reservations.booking_id) FROM reservations WHERE (reservations.booking_id LIKE $1 ESCAPE '\\')")).
		ExpectQuery().
		WithArgs("TIE20251024%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))

	count, err := repo.Count(context.Background(), gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldBookingID, Value: "TIE20251024", Operator: gDto.FilterOperatorPrefix, Table: model.TableName},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservation_Exist_RequiresFilter(t *testing.T) {
	repo, _ := newRepository(t)

	_, err := repo.Exist(context.Background(), gDto.FilterGroup{})

	assert.Error(t, err)
}

func TestReservation_Update(t *testing.T) {
	t.Run("writes sorted columns", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET guest_name = $1, room_no = $2 WHERE (reservations.booking_id = $3)")).
			WithArgs("Asha", "102", "TIE20251024001").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), map[string]any{"room_no": "102", "guest_name": "Asha"}, byBookingID("TIE20251024001"))

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), map[string]any{"room_no": "102"}, byBookingID("TIE20251024404"))

		assert.ErrorIs(t, err, gRepo.ErrNoRowsAffected)
	})
}

func TestReservation_Summarize(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("COALESCE(SUM(reservations.total_tariff), 0) AS revenue")).
		ExpectQuery().
		WithArgs("Le Park Resort").
		WillReturnRows(sqlmock.NewRows([]string{
			"reservations", "revenue", "advance_received", "balance_pending", "average_tariff", "average_stay",
		}).AddRow(int64(2), "10500.00", "2000.00", "8500.00", "3500.0000", "1.5000"))

	summary, err := repo.Summarize(context.Background(), gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldPropertyName, Value: "Le Park Resort", Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Reservations)
	assert.True(t, summary.Revenue.Equal(decimal.NewFromInt(10500)))
	assert.True(t, summary.BalancePending.Equal(decimal.NewFromInt(8500)))
	assert.True(t, summary.AverageStay.Equal(decimal.RequireFromString("1.5")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservation_Breakdown(t *testing.T) {
	t.Run("by plan status", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(regexp.QuoteMeta("SELECT COALESCE(reservations.plan_status, '') AS group_key, " +
			"COUNT(reservations.booking_id) AS reservations, COALESCE(SUM(reservations.total_tariff), 0) AS revenue " +
			"FROM reservations WHERE (reservations.property_name = $1) GROUP BY 1 ORDER BY reservations DESC, group_key ASC")).
			ExpectQuery().
			WithArgs("Le Park Resort").
			WillReturnRows(sqlmock.NewRows([]string{"group_key", "reservations", "revenue"}).
				AddRow("Confirmed", int64(3), "7500.00").
				AddRow("Cancelled", int64(1), "0.00"))

		rows, err := repo.Breakdown(context.Background(), model.DimensionPlanStatus, gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{Field: model.FieldPropertyName, Value: "Le Park Resort", Operator: gDto.FilterOperatorEq, Table: model.TableName},
			},
		})

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Confirmed", rows[0].Key)
		assert.Equal(t, 3, rows[0].Reservations)
		assert.True(t, rows[0].Revenue.Equal(decimal.NewFromInt(7500)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("by booking month", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(regexp.QuoteMeta("SELECT COALESCE(TO_CHAR(reservations.booking_date, 'YYYY-MM'), '') AS group_key")).
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows([]string{"group_key", "reservations", "revenue"}).
				AddRow("2025-09", int64(2), "4000.00").
				AddRow("2025-10", int64(5), "12500.00"))

		rows, err := repo.Breakdown(context.Background(), model.DimensionBookingMonth, gDto.FilterGroup{})

		require.NoError(t, err)
		assert.Equal(t, "2025-09", rows[0].Key)
		assert.Equal(t, "2025-10", rows[1].Key)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown dimension never reaches the store", func(t *testing.T) {
		repo, mock := newRepository(t)

		_, err := repo.Breakdown(context.Background(), model.Dimension("guest_name; DROP TABLE reservations"), gDto.FilterGroup{})

		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
