package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockReservationService

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"tie/config"
	"tie/infras/otel"
	auditModel "tie/internal/domains/audit/model"
	auditService "tie/internal/domains/audit/service"
	catalogModel "tie/internal/domains/catalog/model"
	catalogService "tie/internal/domains/catalog/service"
	"tie/internal/domains/reservation/model"
	"tie/internal/domains/reservation/model/dto"
	"tie/internal/domains/reservation/repository"
	"tie/shared"
	"tie/shared/cache"
	"tie/shared/constant"
	gDto "tie/shared/dto"
	"tie/shared/failure"
	gRepo "tie/shared/repository"
	"tie/shared/validator"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cachePrefix         = "reservation:"
	cacheGetReservation = "reservation:get"
	cacheGetAll         = "reservation:get_all"
	cacheCount          = "reservation:count"
	cacheSearch         = "reservation:search"
	cacheSummary        = "reservation:summary"
	cacheBreakdown      = "reservation:breakdown"

	maxIDAttempts = 3
)

// PermissionProvider grants capabilities to roles.
type PermissionProvider interface {
	HasCapability(role, capability string) bool
}

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.SubmitResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (dto.SubmitResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Search(ctx context.Context, req gDto.QueryParams, term string) (dto.GetReservationsResponse, error)
	Summary(ctx context.Context, filter gDto.FilterGroup) (dto.SummaryResponse, error)
	Breakdown(ctx context.Context, dimension model.Dimension, filter gDto.FilterGroup) (dto.BreakdownResponse, error)
	EditOptions(ctx context.Context, id string) (dto.EditOptionsResponse, error)
}

type serviceImpl struct {
	repo    repository.Reservation
	catalog catalogService.Catalog
	ids     IDGenerator
	guard   DuplicateGuard
	perms   PermissionProvider
	audit   auditService.Log
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	clock   Clock
}

func New(
	repo repository.Reservation,
	catalog catalogService.Catalog,
	ids IDGenerator,
	guard DuplicateGuard,
	perms PermissionProvider,
	audit auditService.Log,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	clock Clock,
) Reservation {
	return &serviceImpl{
		repo:    repo,
		catalog: catalog,
		ids:     ids,
		guard:   guard,
		perms:   perms,
		audit:   audit,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		clock:   clock,
	}
}

// submission follows one create or edit from Editing to Rejected or Persisted.
type submission struct {
	state    model.State
	warnings []string
}

func newSubmission() *submission {
	return &submission{state: model.StateEditing}
}

func (s *submission) moveTo(next model.State) {
	if s.state.CanTransition(next) {
		s.state = next
	}
}

func (s *submission) reject(err error) error {
	s.moveTo(model.StateRejected)
	log.Info().Err(err).Str("state", s.state.String()).Msg("reservation rejected")

	return err
}

func (s *submission) response(record model.Reservation) dto.SubmitResponse {
	res := dto.SubmitResponse{State: s.state.String(), Warnings: s.warnings}
	res.Reservation.FromModel(record)

	return res
}

func actorFrom(ctx context.Context) (string, string) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return user, role
}

// Create validates the form, then assigns a booking id and writes the record.
// Checks run in order and the first failing one is returned.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.SubmitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, role := actorFrom(ctx)
	sub := newSubmission()
	sub.moveTo(model.StateValidating)

	if reasons := validator.Reasons(&req); len(reasons) > 0 {
		return res, sub.reject(&model.ValidationError{Reasons: reasons})
	}

	var record model.Reservation

	req.Apply(&record, s.clock())

	if err = s.catalog.Check(record.Triple()); err != nil {
		return res, sub.reject(err)
	}

	if err = s.validateRecord(ctx, &record, constant.Empty); err != nil {
		return res, sub.reject(err)
	}

	if !s.perms.HasCapability(role, constant.CapabilityAdd) {
		return res, sub.reject(&model.PermissionError{Actor: actor, Capability: constant.CapabilityAdd})
	}

	now := s.clock()
	record.SubmittedBy = actor
	record.CreatedAt = now
	record.ModifiedAt = now

	if err = s.insert(ctx, &record); err != nil {
		return res, sub.reject(err)
	}

	sub.moveTo(model.StatePersisted)
	s.afterWrite(ctx, actor, auditModel.ActionCreate, record.BookingID)

	return sub.response(record), nil
}

// Update rewrites a stored reservation under its original booking id.
// Catalog values the stored record already holds are kept with a warning even when the catalog dropped them.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (res dto.SubmitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, role := actorFrom(ctx)

	stored, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	sub := newSubmission()
	sub.moveTo(model.StateValidating)

	if reasons := validator.Reasons(&req); len(reasons) > 0 {
		return res, sub.reject(&model.ValidationError{Reasons: reasons})
	}

	record := stored
	req.Apply(&record, s.clock())

	sub.warnings, err = s.checkEditCatalog(record.Triple(), stored.Triple())
	if err != nil {
		return res, sub.reject(err)
	}

	if err = s.validateRecord(ctx, &record, stored.BookingID); err != nil {
		return res, sub.reject(err)
	}

	if !s.perms.HasCapability(role, constant.CapabilityEdit) {
		return res, sub.reject(&model.PermissionError{Actor: actor, Capability: constant.CapabilityEdit})
	}

	now := s.clock()
	record.ModifiedBy = actor
	record.ModifiedAt = now
	record.AppendComment(actor, req.ModifiedComments, now)

	filter := shared.FilterByID(stored.BookingID, model.FieldBookingID, model.TableName)

	err = s.repo.Update(ctx, shared.FieldsOf(record, model.FieldBookingID, model.FieldCreatedAt), filter)
	if err != nil {
		return res, sub.reject(s.translateWriteError(ctx, err, &record, "update"))
	}

	sub.moveTo(model.StatePersisted)
	s.afterWrite(ctx, actor, auditModel.ActionUpdate, record.BookingID)

	return sub.response(record), nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Reservation, error) {
	record, found, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return record, &model.StoreError{Op: "load", Err: err}
	}

	if !found {
		return record, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	return record, nil
}

// validateRecord derives the computed columns and runs the payment and duplicate checks.
func (s *serviceImpl) validateRecord(ctx context.Context, record *model.Reservation, excludeBookingID string) error {
	derived, err := model.Derive(record.Primitives())
	if err != nil {
		return err //nolint:wrapcheck
	}

	record.ApplyDerived(derived)

	if reasons := paymentReasons(record); len(reasons) > 0 {
		return &model.ValidationError{Reasons: reasons}
	}

	conflicting, duplicate, err := s.guard.Check(ctx, record.GuestName, record.MobileNo, record.RoomNo, excludeBookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check duplicate reservation")

		return &model.StoreError{Op: "validate", Err: err}
	}

	if duplicate {
		return &model.DuplicateError{
			ConflictingBookingID: conflicting,
			GuestName:            record.GuestName,
			MobileNo:             record.MobileNo,
			RoomNo:               record.RoomNo,
		}
	}

	return nil
}

// paymentReasons requires a real collection channel for any money that moved or is still owed.
func paymentReasons(record *model.Reservation) []string {
	var reasons []string

	if record.AdvanceAmount.IsPositive() && !record.AdvanceMethod.IsChannel() {
		reasons = append(reasons, "advance_method is required when an advance is paid")
	}

	if record.BalanceAmount.IsPositive() && !record.BalanceMethod.IsChannel() {
		reasons = append(reasons, "balance_method is required while a balance is due")
	}

	return reasons
}

// checkEditCatalog accepts a triple that resolves in the catalog, or one that only differs from it by values the
// stored record already held.
func (s *serviceImpl) checkEditCatalog(next, stored catalogModel.Triple) ([]string, error) {
	checkErr := s.catalog.Check(next)
	if checkErr == nil {
		return nil, nil
	}

	var keepRoomType, keepRoomNo string

	if next.PropertyName == stored.PropertyName {
		keepRoomType = stored.RoomType

		if next.RoomType == stored.RoomType {
			keepRoomNo = stored.RoomNo
		}
	}

	if next.PropertyName != stored.PropertyName && !slices.Contains(s.catalog.Properties(), next.PropertyName) {
		return nil, checkErr
	}

	if !slices.Contains(s.catalog.EffectiveRoomTypes(next.PropertyName, keepRoomType), next.RoomType) {
		return nil, checkErr
	}

	if !slices.Contains(s.catalog.EffectiveRoomNumbers(next.PropertyName, next.RoomType, keepRoomNo), next.RoomNo) {
		return nil, checkErr
	}

	log.Warn().Err(checkErr).Msg("keeping stored catalog value missing from the catalog")

	return []string{checkErr.Error() + ", the stored value was kept"}, nil
}

// insert retries with a fresh id when another writer claimed the generated one first.
func (s *serviceImpl) insert(ctx context.Context, record *model.Reservation) error {
	for attempt := 1; ; attempt++ {
		id, err := s.ids.Generate(ctx)
		if err != nil {
			var exhausted *model.IDExhaustionError
			if errors.As(err, &exhausted) {
				log.Error().Err(err).Msg("booking ids exhausted")

				return err //nolint:wrapcheck
			}

			log.Error().Err(err).Msg("failed to generate booking id")

			return &model.StoreError{Op: "create", Err: err}
		}

		record.BookingID = id

		err = s.repo.Insert(ctx, *record)
		if err == nil {
			return nil
		}

		if uniqueViolation(err) == model.ConstraintPrimaryKey && attempt < maxIDAttempts {
			log.Warn().Str("booking_id", id).Int("attempt", attempt).Msg("booking id already taken, retrying")

			continue
		}

		return s.translateWriteError(ctx, err, record, "create")
	}
}

// translateWriteError reports the store's guest/room unique index as a duplicate and anything else as a store fault.
func (s *serviceImpl) translateWriteError(ctx context.Context, err error, record *model.Reservation, op string) error {
	if errors.Is(err, gRepo.ErrNoRowsAffected) {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if uniqueViolation(err) == model.ConstraintGuestRoom {
		exclude := constant.Empty
		if op == "update" {
			exclude = record.BookingID
		}

		conflicting, _, guardErr := s.guard.Check(ctx, record.GuestName, record.MobileNo, record.RoomNo, exclude)
		if guardErr != nil {
			log.Error().Err(guardErr).Msg("failed to find conflicting reservation")
		}

		return &model.DuplicateError{
			ConflictingBookingID: conflicting,
			GuestName:            record.GuestName,
			MobileNo:             record.MobileNo,
			RoomNo:               record.RoomNo,
		}
	}

	log.Error().Err(err).Str("op", op).Msg("failed to write reservation")

	return &model.StoreError{Op: op, Err: err}
}

func uniqueViolation(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
		return pqErr.Constraint
	}

	return constant.Empty
}

// afterWrite runs only once the store accepted the write. Caches are cleared before returning so a read
// issued after the response never sees the previous row.
func (s *serviceImpl) afterWrite(ctx context.Context, actor string, action auditModel.Action, bookingID string) {
	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cachePrefix)

	s.audit.Record(ctx, auditModel.NewEvent(actor, action, bookingID, s.clock()))
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	record, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(record)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, cacheGetAll, req, filter)
}

// Search matches term as a case-insensitive substring of the booking id, guest name or mobile number.
func (s *serviceImpl) Search(ctx context.Context, req gDto.QueryParams, term string) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	term = strings.TrimSpace(term)
	if term == constant.Empty {
		return res, failure.BadRequestFromString("search term is required") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{Field: model.FieldBookingID, Value: term, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			gDto.Filter{Field: model.FieldGuestName, Value: term, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			gDto.Filter{Field: model.FieldMobileNo, Value: term, Operator: gDto.FilterOperatorLike, Table: model.TableName},
		},
	}

	return s.list(ctx, cacheSearch, req, filter)
}

func (s *serviceImpl) list(ctx context.Context, prefix string, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	req.RestrictSort(model.SortableFields...)

	if req.SortBy == constant.Empty {
		req.SortBy = constant.DefaultValueSortBy
		req.SortDir = constant.DefaultValueSortDir
	}

	cacheKey := shared.BuildCacheKeyWithQuery(prefix, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.count(ctx, filter)
	if err != nil {
		return res, err
	}

	records, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(records, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, filter gDto.FilterGroup) (total int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCount, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return total, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Summary(ctx context.Context, filter gDto.FilterGroup) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheSummary, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation summary")

		return res, nil
	}

	summary, err := s.repo.Summarize(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to summarize reservations")

		return res, fmt.Errorf("failed to summarize reservations: %w", err)
	}

	res.FromModel(summary)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation summary to cache")
		}
	}()

	return res, nil
}

// Breakdown groups the filtered reservations by status, source, room type, property or booking month.
func (s *serviceImpl) Breakdown(
	ctx context.Context, dimension model.Dimension, filter gDto.FilterGroup,
) (res dto.BreakdownResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Breakdown")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateVar(dimension, "enum"); err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("dimension %q is not supported", dimension)) //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheBreakdown, string(dimension)), gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation breakdown")

		return res, nil
	}

	rows, err := s.repo.Breakdown(ctx, dimension, filter)
	if err != nil {
		log.Error().Err(err).Str("dimension", string(dimension)).Msg("failed to break down reservations")

		return res, fmt.Errorf("failed to break down reservations: %w", err)
	}

	res.FromModels(dimension, rows)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation breakdown to cache")
		}
	}()

	return res, nil
}

// EditOptions lists the catalog choices for editing a stored reservation, stored values included even when stale.
func (s *serviceImpl) EditOptions(ctx context.Context, id string) (res dto.EditOptionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EditOptions")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.BookingID = record.BookingID
	res.Properties = s.catalog.Properties()
	res.RoomTypes = s.catalog.EffectiveRoomTypes(record.PropertyName, record.RoomType)
	res.RoomNumbers = s.catalog.EffectiveRoomNumbers(record.PropertyName, record.RoomType, record.RoomNo)

	if !slices.Contains(res.Properties, record.PropertyName) {
		res.Properties = append(res.Properties, record.PropertyName)
		res.Stale = append(res.Stale, model.FieldPropertyName)
	}

	if roomTypes, _ := s.catalog.RoomTypesOf(record.PropertyName); !slices.Contains(roomTypes, record.RoomType) {
		res.Stale = append(res.Stale, model.FieldRoomType)
	}

	if rooms, _ := s.catalog.RoomNumbersOf(record.PropertyName, record.RoomType); !slices.Contains(rooms, record.RoomNo) {
		res.Stale = append(res.Stale, model.FieldRoomNo)
	}

	for _, method := range model.PaymentMethods() {
		res.PaymentMethods = append(res.PaymentMethods, string(method))
	}

	return res, nil
}
