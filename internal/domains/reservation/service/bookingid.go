package service

import (
	"context"
	"fmt"
	"time"

	"tie/config"
	"tie/internal/domains/reservation/model"
	"tie/internal/domains/reservation/repository"
	"tie/shared"
	"tie/shared/constant"
	gDto "tie/shared/dto"
	"tie/shared/timezone"
)

// Clock supplies the current time in the application timezone.
type Clock func() time.Time

func SystemClock() Clock {
	return timezone.Now
}

// IDGenerator hands out booking ids of the form prefix + YYYYMMDD + 3-digit sequence.
type IDGenerator interface {
	Generate(ctx context.Context) (string, error)
}

type idGenerator struct {
	repo   repository.Reservation
	prefix string
	max    int
	clock  Clock
}

func NewIDGenerator(repo repository.Reservation, cfg *config.Config, clock Clock) IDGenerator {
	return &idGenerator{
		repo:   repo,
		prefix: cfg.Reservation.BookingIDPrefix,
		max:    cfg.Reservation.MaxDailySequence,
		clock:  clock,
	}
}

// Generate starts after the number of ids already issued today and probes upward past any gaps taken out of order.
func (g *idGenerator) Generate(ctx context.Context) (string, error) {
	stamp := g.clock().Format(constant.DateStamp)
	base := g.prefix + stamp

	issued, err := g.repo.Count(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Value:    base,
				Operator: gDto.FilterOperatorPrefix,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to count booking ids: %w", err)
	}

	for seq := issued + 1; seq <= g.max; seq++ {
		id := fmt.Sprintf("%s%03d", base, seq)

		taken, err := g.repo.Exist(ctx, shared.FilterByID(id, model.FieldBookingID, model.TableName))
		if err != nil {
			return "", fmt.Errorf("failed to check booking id: %w", err)
		}

		if !taken {
			return id, nil
		}
	}

	return "", &model.IDExhaustionError{DateStamp: stamp, Max: g.max}
}
