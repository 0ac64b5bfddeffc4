package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on insert.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotAuthenticated indicates no valid identity accompanied the request.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNoAddressSelected indicates checkout could not resolve a shipping address.
	ErrNoAddressSelected = errors.New("no address selected")
	// ErrPaymentUnavailable indicates the payment provider could not be reached.
	ErrPaymentUnavailable = errors.New("payment provider unavailable")
	// ErrPaymentFailed indicates the payment was declined or could not be verified.
	ErrPaymentFailed = errors.New("payment failed")
	// ErrInvalidInput indicates a request payload failed validation.
	ErrInvalidInput = errors.New("invalid input")
)
