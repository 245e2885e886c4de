package model

import (
	"fmt"
	"net/http"

	"tie/shared/failure"
)

type UnknownPropertyError struct {
	PropertyName string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("property %q is not in the catalog", e.PropertyName)
}

func (e *UnknownPropertyError) Unwrap() error {
	return &failure.Failure{Code: http.StatusNotFound, Message: e.Error()}
}

type UnknownRoomTypeError struct {
	PropertyName string
	RoomType     string
}

func (e *UnknownRoomTypeError) Error() string {
	return fmt.Sprintf("room type %q is not offered at %q", e.RoomType, e.PropertyName)
}

func (e *UnknownRoomTypeError) Unwrap() error {
	return &failure.Failure{Code: http.StatusNotFound, Message: e.Error()}
}

// CatalogError rejects a selection that does not resolve in the catalog.
type CatalogError struct {
	Triple Triple
	Reason string
}

func (e *CatalogError) Error() string {
	return e.Reason
}

func (e *CatalogError) Unwrap() error {
	return &failure.Failure{Code: http.StatusBadRequest, Message: e.Reason}
}
