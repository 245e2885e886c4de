package shared

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"

	"tie/shared/cache"
	"tie/shared/dto"

	"github.com/rs/zerolog/log"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// FieldsOf flattens the db-tagged fields of a struct, embedded structs included, into a column map.
// Zero values are kept so the map can be used as a full replacement row.
func FieldsOf(data any, skip ...string) map[string]any {
	fields := make(map[string]any)

	collectFields(reflect.ValueOf(data), fields)

	for _, column := range skip {
		delete(fields, column)
	}

	return fields
}

func collectFields(val reflect.Value, fields map[string]any) {
	if val.Kind() == reflect.Pointer {
		val = val.Elem()
	}

	typ := val.Type()

	for index := range val.NumField() {
		structField := typ.Field(index)

		if structField.Anonymous && structField.Type.Kind() == reflect.Struct {
			collectFields(val.Field(index), fields)

			continue
		}

		column := structField.Tag.Get("db")
		if column == "" || column == "-" {
			continue
		}

		fields[column] = val.Field(index).Interface()
	}
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a stable key from paging and filter values.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	return BuildCacheKey(
		prefix,
		fmt.Sprintf("p%d", params.Page),
		fmt.Sprintf("l%d", params.Limit),
		params.SortBy,
		params.SortDir,
		where,
		fmt.Sprint(sortedArgs(args)),
	)
}

func sortedArgs(args map[string]any) []string {
	pairs := make([]string, 0, len(args))
	for key, value := range args {
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, value))
	}

	slices.Sort(pairs)

	return pairs
}

func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
