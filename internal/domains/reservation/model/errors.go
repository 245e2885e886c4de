package model

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"tie/shared/failure"
)

// ValidationError carries every reason an input was rejected. It is recoverable by correcting the form.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Reasons, "; ")
}

func (e *ValidationError) ErrorReasons() []string {
	return e.Reasons
}

func (e *ValidationError) Unwrap() error {
	return &failure.Failure{Code: http.StatusBadRequest, Message: e.Error()}
}

type InvalidDateRangeError struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func (e *InvalidDateRangeError) Error() string {
	return "check-out date must be after check-in date"
}

func (e *InvalidDateRangeError) Unwrap() error {
	return &failure.Failure{Code: http.StatusBadRequest, Message: e.Error()}
}

// DuplicateError names the stored reservation already holding the guest, mobile and room combination.
type DuplicateError struct {
	ConflictingBookingID string
	GuestName            string
	MobileNo             string
	RoomNo               string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("guest %q with mobile %q in room %q already exists, existing booking id: %s",
		e.GuestName, e.MobileNo, e.RoomNo, e.ConflictingBookingID)
}

func (e *DuplicateError) Unwrap() error {
	return &failure.Failure{Code: http.StatusConflict, Message: e.Error()}
}

type PermissionError struct {
	Actor      string
	Capability string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("you are not allowed to %s reservations", e.Capability)
}

func (e *PermissionError) Unwrap() error {
	return &failure.Failure{Code: http.StatusForbidden, Message: e.Error()}
}

// StoreError hides the store fault behind a generic message. The same form can be resubmitted.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("could not %s the reservation, please try again", e.Op)
}

func (e *StoreError) Unwrap() []error {
	return []error{
		&failure.Failure{Code: http.StatusInternalServerError, Message: e.Error()},
		e.Err,
	}
}

type IDExhaustionError struct {
	DateStamp string
	Max       int
}

func (e *IDExhaustionError) Error() string {
	return fmt.Sprintf("all %d booking ids for %s are taken, contact an administrator", e.Max, e.DateStamp)
}

func (e *IDExhaustionError) Unwrap() error {
	return failure.Unavailable(e.Error())
}
