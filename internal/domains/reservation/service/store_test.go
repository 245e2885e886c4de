package service_test

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"tie/internal/domains/reservation/model"
	"tie/shared"
	gDto "tie/shared/dto"
	gRepo "tie/shared/repository"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// memoryStore keeps reservations in insertion order and evaluates filter groups the way the SQL builder renders them.
type memoryStore struct {
	mu   sync.Mutex
	rows []model.Reservation

	insertErrs []error
	updateErr  error

	inserts int
	getAlls int
	counts  int
	updates int
}

func (m *memoryStore) Insert(_ context.Context, record model.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.inserts++

	if len(m.insertErrs) > 0 {
		err := m.insertErrs[0]
		m.insertErrs = m.insertErrs[1:]

		if err != nil {
			return err
		}
	}

	for _, row := range m.rows {
		if row.BookingID == record.BookingID {
			return &pq.Error{Code: "23505", Constraint: model.ConstraintPrimaryKey}
		}
	}

	m.rows = append(m.rows, record)

	return nil
}

func (m *memoryStore) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Reservation, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, row := range m.rows {
		if matchGroup(row, filter) {
			return row, true, nil
		}
	}

	return model.Reservation{}, false, nil
}

func (m *memoryStore) GetAll(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.getAlls++

	matched := m.matching(filter)

	if params.SortBy == model.FieldCreatedAt {
		slices.SortStableFunc(matched, func(a, b model.Reservation) int {
			if params.SortDir == gDto.SortDirDesc {
				return b.CreatedAt.Compare(a.CreatedAt)
			}

			return a.CreatedAt.Compare(b.CreatedAt)
		})
	}

	if params.Limit > 0 {
		start := min(max(params.Page-1, 0)*params.Limit, len(matched))
		matched = matched[start:min(start+params.Limit, len(matched))]
	}

	return matched, nil
}

func (m *memoryStore) Exist(_ context.Context, filter gDto.FilterGroup) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.matching(filter)) > 0, nil
}

func (m *memoryStore) Count(_ context.Context, filter gDto.FilterGroup) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counts++

	return len(m.matching(filter)), nil
}

func (m *memoryStore) Update(_ context.Context, columns map[string]any, filter gDto.FilterGroup) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.updates++

	if m.updateErr != nil {
		return m.updateErr
	}

	affected := 0

	for idx := range m.rows {
		if matchGroup(m.rows[idx], filter) {
			assign(reflect.ValueOf(&m.rows[idx]).Elem(), columns)

			affected++
		}
	}

	if affected == 0 {
		return gRepo.ErrNoRowsAffected
	}

	return nil
}

func (m *memoryStore) Summarize(_ context.Context, filter gDto.FilterGroup) (model.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	summary := model.Summary{}
	tariffs := decimal.Zero
	stays := 0

	for _, row := range m.matching(filter) {
		summary.Reservations++
		summary.Revenue = summary.Revenue.Add(row.TotalTariff)
		summary.AdvanceReceived = summary.AdvanceReceived.Add(row.AdvanceAmount)
		summary.BalancePending = summary.BalancePending.Add(row.BalanceAmount)
		tariffs = tariffs.Add(row.TariffPerNight)
		stays += row.StayDays
	}

	if summary.Reservations > 0 {
		count := decimal.NewFromInt(int64(summary.Reservations))
		summary.AverageTariff = tariffs.Div(count)
		summary.AverageStay = decimal.NewFromInt(int64(stays)).Div(count)
	}

	return summary, nil
}

func (m *memoryStore) Breakdown(_ context.Context, dimension model.Dimension, filter gDto.FilterGroup) ([]model.BreakdownRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !dimension.IsValid() {
		return nil, fmt.Errorf("unsupported breakdown dimension %q", dimension)
	}

	groups := map[string]*model.BreakdownRow{}
	keys := []string{}

	for _, row := range m.matching(filter) {
		key := fmt.Sprint(shared.FieldsOf(row)[string(dimension)])
		if dimension == model.DimensionBookingMonth {
			key = row.BookingDate.Format("2006-01")
		}

		group, ok := groups[key]
		if !ok {
			group = &model.BreakdownRow{Key: key, Revenue: decimal.Zero}
			groups[key] = group
			keys = append(keys, key)
		}

		group.Reservations++
		group.Revenue = group.Revenue.Add(row.TotalTariff)
	}

	rows := make([]model.BreakdownRow, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, *groups[key])
	}

	slices.SortFunc(rows, func(a, b model.BreakdownRow) int {
		if !dimension.Chronological() && a.Reservations != b.Reservations {
			return b.Reservations - a.Reservations
		}

		return strings.Compare(a.Key, b.Key)
	})

	return rows, nil
}

func (m *memoryStore) snapshot() []model.Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.rows)
}

func (m *memoryStore) matching(filter gDto.FilterGroup) []model.Reservation {
	matched := []model.Reservation{}

	for _, row := range m.rows {
		if matchGroup(row, filter) {
			matched = append(matched, row)
		}
	}

	return matched
}

func matchGroup(row model.Reservation, group gDto.FilterGroup) bool {
	if len(group.Filters) == 0 {
		return true
	}

	anyMatch := false
	allMatch := true

	for _, item := range group.Filters {
		var ok bool

		switch filter := item.(type) {
		case gDto.Filter:
			ok = matchFilter(row, filter)
		case gDto.FilterGroup:
			ok = matchGroup(row, filter)
		}

		anyMatch = anyMatch || ok
		allMatch = allMatch && ok
	}

	if group.Operator == gDto.FilterGroupOperatorOr {
		return anyMatch
	}

	return allMatch
}

func matchFilter(row model.Reservation, filter gDto.Filter) bool {
	got := fmt.Sprint(shared.FieldsOf(row)[filter.Field])
	want := fmt.Sprint(filter.Value)

	switch filter.Operator {
	case gDto.FilterOperatorEq:
		return got == want
	case gDto.FilterOperatorEqFold:
		return strings.EqualFold(got, want)
	case gDto.FilterOperatorNotEq:
		return got != want
	case gDto.FilterOperatorPrefix:
		return strings.HasPrefix(got, want)
	case gDto.FilterOperatorLike:
		return strings.Contains(strings.ToLower(got), strings.ToLower(want))
	default:
		panic("memoryStore: unsupported operator " + filter.Operator)
	}
}

func assign(val reflect.Value, columns map[string]any) {
	for idx := range val.NumField() {
		field := val.Type().Field(idx)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			assign(val.Field(idx), columns)

			continue
		}

		if value, ok := columns[field.Tag.Get("db")]; ok {
			val.Field(idx).Set(reflect.ValueOf(value))
		}
	}
}
