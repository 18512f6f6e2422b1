package exchangeerrors

import "errors"

// Repository-level errors
var (
	ErrItemNotFound       = errors.New("item not found")
	ErrRequestNotFound    = errors.New("buy request not found")
	ErrForbidden          = errors.New("not found or unauthorized")
	ErrDuplicateCartEntry = errors.New("item already in cart")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrDuplicateRequest   = errors.New("pending request already exists for item")
	ErrConflict           = errors.New("item already taken by a concurrent update")
	ErrInvalidTransition  = errors.New("status transition not permitted")
)

// business logic errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidStatus = errors.New("unknown status value")
)
