package models

import "errors"

// Sentinel errors shared by repositories, services and handlers. Services
// wrap them with context via fmt.Errorf and %w; handlers map them to HTTP
// statuses with errors.Is.
var (
	// ErrEmptyCart rejects a submission with no items.
	ErrEmptyCart = errors.New("order must contain at least one item")
	// ErrInvalidQuantity rejects a cart line with quantity <= 0.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrItemUnavailable covers both unknown and currently unavailable
	// items; callers cannot tell the two apart.
	ErrItemUnavailable = errors.New("food item is not available")
	// ErrInvalidStatus rejects a label outside the fixed status vocabulary.
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrForbidden rejects operations that require the admin role.
	ErrForbidden = errors.New("admin role required")
	// ErrInvalidTransition rejects a status move the lifecycle graph forbids.
	ErrInvalidTransition = errors.New("order status transition not allowed")

	// ErrFoodItemNotFound is returned by catalog lookups for unknown ids.
	ErrFoodItemNotFound = errors.New("food item not found")
	// ErrOrderNotFound covers both unknown orders and orders the caller is
	// not allowed to see, deliberately indistinguishable.
	ErrOrderNotFound = errors.New("order not found")
	// ErrUserNotFound is returned by user lookups for unknown ids or emails.
	ErrUserNotFound = errors.New("user not found")

	// ErrUnauthenticated rejects protected operations without a resolved
	// identity.
	ErrUnauthenticated = errors.New("authentication required")
)
