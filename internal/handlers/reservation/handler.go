package reservation

import (
	"net/http"

	"tie/infras/otel"
	"tie/internal/domains/reservation/model"
	"tie/internal/domains/reservation/model/dto"
	"tie/internal/domains/reservation/service"
	"tie/shared/constant"
	gDto "tie/shared/dto"
	"tie/shared/failure"
	"tie/shared/validator"
	"tie/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryCheckInFrom = "check_in_from"
	queryCheckInTo   = "check_in_to"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/search", handler.SearchReservations)
		routerGroup.Get("/summary", handler.GetSummary)
		routerGroup.Get("/summary/{dimension}", handler.GetBreakdown)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Put("/{id}", handler.UpdateReservation)
		routerGroup.Get("/{id}/options", handler.GetEditOptions)
	})
}

// CreateReservation submits a new reservation.
// @Summary Create a reservation
// @Description Validates the form, derives totals and payment status, assigns a booking ID and stores the record.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Reservation form"
// @Success 201 {object} response.Data[dto.SubmitResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	var req dto.CreateReservationRequest

	// Rule checks happen in the service so every failed rule is reported together.
	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation " + res.Reservation.BookingID + " created by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// UpdateReservation edits an existing reservation.
// @Summary Update a reservation
// @Description Re-validates the whole form, keeps the booking ID and appends the modification comment.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateReservationRequest true "Reservation form"
// @Success 200 {object} response.Data[dto.SubmitResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	var req dto.UpdateReservationRequest

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation " + id + " updated by user " + user)

	response.WithJSON(writer, http.StatusOK, res)
}

// GetReservations lists reservations.
// @Summary List reservations
// @Tags Reservation
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param property_name query string false "Filter by property"
// @Param plan_status query string false "Filter by plan status"
// @Param guest_name query string false "Filter by guest name"
// @Param check_in_from query string false "Earliest check-in date (YYYY-MM-DD)"
// @Param check_in_to query string false "Latest check-in date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetReservationsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filter, err := filterFromQuery(request)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// SearchReservations finds reservations by booking ID, guest name or mobile number.
// @Summary Search reservations
// @Tags Reservation
// @Produce json
// @Param q query string true "Search term"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetReservationsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/search [get]
// @Security BearerAuth
func (handler *Handler) SearchReservations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	res, err := handler.service.Search(ctx, queryParams, request.URL.Query().Get(constant.RequestParamSearch))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservations searched successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// GetSummary aggregates revenue and occupancy figures.
// @Summary Reservation summary
// @Tags Reservation
// @Produce json
// @Param property_name query string false "Filter by property"
// @Param plan_status query string false "Filter by plan status"
// @Param guest_name query string false "Filter by guest name"
// @Param check_in_from query string false "Earliest check-in date (YYYY-MM-DD)"
// @Param check_in_to query string false "Latest check-in date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.SummaryResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/summary [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	filter, err := filterFromQuery(request)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Summary(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to summarize reservations")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation summary retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBreakdown groups reservation counts and revenue by one dimension.
// @Summary Reservation breakdown
// @Tags Reservation
// @Produce json
// @Param dimension path string true "Grouping" Enums(plan_status, booking_source, room_type, property_name, booking_month)
// @Param property_name query string false "Filter by property"
// @Param plan_status query string false "Filter by plan status"
// @Param guest_name query string false "Filter by guest name"
// @Param check_in_from query string false "Earliest check-in date (YYYY-MM-DD)"
// @Param check_in_to query string false "Latest check-in date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.BreakdownResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/summary/{dimension} [get]
// @Security BearerAuth
func (handler *Handler) GetBreakdown(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBreakdown")
	defer scope.End()

	filter, err := filterFromQuery(request)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	dimension := model.Dimension(chi.URLParam(request, constant.RequestParamDimension))

	res, err := handler.service.Breakdown(ctx, dimension, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("dimension", string(dimension)).Msg("failed to break down reservations")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation breakdown retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// GetReservationByID retrieves one reservation.
// @Summary Get a reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// GetEditOptions lists the selectable values for editing a reservation.
// @Summary Edit options of a reservation
// @Description Catalog options for the stored property and room type, including stored values the catalog no longer lists.
// @Tags Reservation
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.EditOptionsResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/options [get]
// @Security BearerAuth
func (handler *Handler) GetEditOptions(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEditOptions")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.EditOptions(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Edit options retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// filterFromQuery builds the list and summary filter. Absent parameters add no condition.
func filterFromQuery(request *http.Request) (gDto.FilterGroup, error) {
	query := request.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if property := query.Get(model.FieldPropertyName); property != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPropertyName,
			Operator: gDto.FilterOperatorEq,
			Value:    property,
			Table:    model.TableName,
		})
	}

	if status := query.Get(model.FieldPlanStatus); status != constant.Empty {
		if validator.ValidateVar(model.PlanStatus(status), "enum") != nil {
			return filterGroup, failure.BadRequestFromString(model.FieldPlanStatus + " has an unsupported value")
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPlanStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if guest := query.Get(model.FieldGuestName); guest != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldGuestName,
			Operator: gDto.FilterOperatorLike,
			Value:    guest,
			Table:    model.TableName,
		})
	}

	bounds := []struct {
		param    string
		operator string
	}{
		{queryCheckInFrom, gDto.FilterOperatorGreaterEq},
		{queryCheckInTo, gDto.FilterOperatorLessEq},
	}

	for _, bound := range bounds {
		value := query.Get(bound.param)
		if value == constant.Empty {
			continue
		}

		if validator.ValidateVar(value, "datetime="+constant.CalendarFormat) != nil {
			return filterGroup, failure.BadRequestFromString(bound.param + " must be a date in " + constant.CalendarFormat + " format")
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  bound.param,
			Field:    model.FieldCheckIn,
			Operator: bound.operator,
			Value:    value,
			Table:    model.TableName,
		})
	}

	return filterGroup, nil
}
