package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tie/config"
	"tie/internal/domains/reservation/mocks"
	"tie/internal/domains/reservation/model"
	"tie/internal/domains/reservation/service"
	gDto "tie/shared/dto"
)

func idConfig(maxDaily int) *config.Config {
	cfg := &config.Config{}
	cfg.Reservation.BookingIDPrefix = "TIE"
	cfg.Reservation.MaxDailySequence = maxDaily

	return cfg
}

func fixedClock() time.Time {
	return time.Date(2025, 10, 24, 23, 59, 0, 0, time.UTC)
}

func TestIDGenerator_Generate(t *testing.T) {
	tests := []struct {
		name      string
		maxDaily  int
		setupMock func(repo *mocks.MockReservation)
		want      string
		wantErr   bool
	}{
		{
			name:     "first id of the day",
			maxDaily: 999,
			setupMock: func(repo *mocks.MockReservation) {
				repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
						where, args := filter.GetWhereClause()
						assert.Equal(t, `(reservations.booking_id LIKE :booking_id ESCAPE '\')`, where)
						assert.Equal(t, "TIE20251024%", args["booking_id"])

						return 0, nil
					})
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			want: "TIE20251024001",
		},
		{
			name:     "skips ids taken out of order",
			maxDaily: 999,
			setupMock: func(repo *mocks.MockReservation) {
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(4, nil)
				gomock.InOrder(
					repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil),
					repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil),
				)
			},
			want: "TIE20251024006",
		},
		{
			name:     "namespace exhausted",
			maxDaily: 999,
			setupMock: func(repo *mocks.MockReservation) {
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(999, nil)
			},
			wantErr: true,
		},
		{
			name:     "count failure",
			maxDaily: 999,
			setupMock: func(repo *mocks.MockReservation) {
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name:     "probe failure",
			maxDaily: 999,
			setupMock: func(repo *mocks.MockReservation) {
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockReservation(ctrl)
			tt.setupMock(repo)

			id, err := service.NewIDGenerator(repo, idConfig(tt.maxDaily), fixedClock).Generate(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestIDGenerator_ExhaustionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReservation(ctrl)

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

	_, err := service.NewIDGenerator(repo, idConfig(2), fixedClock).Generate(context.Background())

	var exhausted *model.IDExhaustionError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, "20251024", exhausted.DateStamp)
	assert.Equal(t, 2, exhausted.Max)
}

func TestIDGenerator_ConsecutiveIDsAreDistinct(t *testing.T) {
	store := &memoryStore{}
	generator := service.NewIDGenerator(store, idConfig(999), fixedClock)

	seen := map[string]bool{}

	for range 25 {
		id, err := generator.Generate(context.Background())
		require.NoError(t, err)
		require.NoError(t, store.Insert(context.Background(), model.Reservation{BookingID: id}))

		seen[id] = true
	}

	assert.Len(t, seen, 25)
	assert.True(t, seen["TIE20251024025"])
}
