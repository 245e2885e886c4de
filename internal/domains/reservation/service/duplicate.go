package service

import (
	"context"
	"fmt"
	"strings"

	"tie/internal/domains/reservation/model"
	"tie/internal/domains/reservation/repository"
	gDto "tie/shared/dto"
)

// DuplicateGuard finds a stored reservation holding the same guest, mobile and room.
type DuplicateGuard interface {
	Check(ctx context.Context, guestName, mobileNo, roomNo, excludeBookingID string) (string, bool, error)
}

type duplicateGuard struct {
	repo repository.Reservation
}

func NewDuplicateGuard(repo repository.Reservation) DuplicateGuard {
	return &duplicateGuard{repo: repo}
}

// Check compares guest names case-insensitively and the mobile and room exactly.
// The oldest conflicting record wins so the answer is stable for a given snapshot.
func (g *duplicateGuard) Check(ctx context.Context, guestName, mobileNo, roomNo, excludeBookingID string) (string, bool, error) {
	filters := []any{
		gDto.Filter{Field: model.FieldGuestName, Value: guestName, Operator: gDto.FilterOperatorEqFold, Table: model.TableName},
		gDto.Filter{Field: model.FieldMobileNo, Value: mobileNo, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldRoomNo, Value: roomNo, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	}

	if excludeBookingID != "" {
		filters = append(filters, gDto.Filter{
			ArgName:  "exclude_id",
			Field:    model.FieldBookingID,
			Value:    excludeBookingID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	params := gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	candidates, err := g.repo.GetAll(ctx, params, gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd},
		model.FieldBookingID, model.FieldGuestName, model.FieldMobileNo, model.FieldRoomNo, model.FieldCreatedAt)
	if err != nil {
		return "", false, fmt.Errorf("failed to scan for duplicates: %w", err)
	}

	for _, candidate := range candidates {
		if candidate.BookingID == excludeBookingID {
			continue
		}

		if strings.EqualFold(candidate.GuestName, guestName) && candidate.MobileNo == mobileNo && candidate.RoomNo == roomNo {
			return candidate.BookingID, true, nil
		}
	}

	return "", false, nil
}
