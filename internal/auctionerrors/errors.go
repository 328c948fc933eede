package auctionerrors

import "errors"

// Not-found errors: the entity does not exist at all.
var (
	ErrCarNotFound     = errors.New("car not found")
	ErrAuctionNotFound = errors.New("auction not found")
	ErrUserNotFound    = errors.New("user not found")
)

// State-conflict errors: the entity exists but is in the wrong state.
var (
	ErrCarNotAvailable      = errors.New("car is not available")
	ErrCarNotOnAuction      = errors.New("car is not on auction")
	ErrAuctionAlreadyExists = errors.New("an active auction already exists for this car")
	ErrAuctionClosed        = errors.New("auction is closed")
	ErrDuplicateID          = errors.New("duplicate id")
)

// Validation errors: caller-correctable input problems.
var (
	ErrInvalidCar = errors.New("invalid car details")
	ErrSelfBid    = errors.New("cannot bid on your own auction")
	ErrBidTooLow  = errors.New("bid amount too low")
)

// ErrUnauthorized rejects an operation by a user who does not own the entity.
var ErrUnauthorized = errors.New("user is not authorized for this operation")

// ErrInternal marks a failure in the middle of a multi-step operation. The
// coordinator rolls back completed steps before surfacing it.
var ErrInternal = errors.New("internal failure")
