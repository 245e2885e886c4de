package catalog

import (
	"net/http"

	"tie/infras/otel"
	"tie/internal/domains/catalog/model/dto"
	"tie/internal/domains/catalog/service"
	"tie/shared/constant"
	"tie/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	catalog service.Catalog
	otel    otel.Otel
}

func New(catalog service.Catalog, otel otel.Otel) Handler {
	return Handler{
		catalog: catalog,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/catalog/properties", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetProperties)
		routerGroup.Get("/{property}/room-types", handler.GetRoomTypes)
		routerGroup.Get("/{property}/room-types/{roomType}/rooms", handler.GetRooms)
	})
}

// GetProperties lists the bookable properties.
// @Summary List properties
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[dto.PropertiesResponse]
// @Router /v1/catalog/properties [get]
// @Security BearerAuth
func (handler *Handler) GetProperties(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProperties")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, dto.PropertiesResponse{Properties: handler.catalog.Properties()})
}

// GetRoomTypes lists the room types offered at a property.
// @Summary List room types of a property
// @Tags Catalog
// @Produce json
// @Param property path string true "Property name"
// @Success 200 {object} response.Data[dto.RoomTypesResponse]
// @Failure 404 {object} response.Error
// @Router /v1/catalog/properties/{property}/room-types [get]
// @Security BearerAuth
func (handler *Handler) GetRoomTypes(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	property := chi.URLParam(request, constant.RequestParamProperty)

	roomTypes, err := handler.catalog.RoomTypesOf(property)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.RoomTypesResponse{PropertyName: property, RoomTypes: roomTypes})
}

// GetRooms lists the room numbers of a room type.
// @Summary List rooms of a room type
// @Tags Catalog
// @Produce json
// @Param property path string true "Property name"
// @Param roomType path string true "Room type"
// @Success 200 {object} response.Data[dto.RoomsResponse]
// @Failure 404 {object} response.Error
// @Router /v1/catalog/properties/{property}/room-types/{roomType}/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	property := chi.URLParam(request, constant.RequestParamProperty)
	roomType := chi.URLParam(request, constant.RequestParamRoomType)

	rooms, err := handler.catalog.RoomNumbersOf(property, roomType)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.RoomsResponse{PropertyName: property, RoomType: roomType, Rooms: rooms})
}
