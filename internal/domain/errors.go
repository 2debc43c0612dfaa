package domain

import "errors"

// Validation error kinds. Each failure the services can raise maps to exactly
// one of these sentinels so the UI can show a precise message; call sites add
// context with github.com/pkg/errors and callers match with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrMissingParty        = errors.New("item and renter must be present")
	ErrOwnItemRental       = errors.New("owner cannot rent their own item")
	ErrInvalidDateRange    = errors.New("invalid start or end day")
	ErrDateConflict        = errors.New("rental period conflicts with an existing contract")
	ErrInsufficientCredits = errors.New("renter does not have enough credits")
	ErrDuplicateIdentity   = errors.New("email or phone number already in use")
	ErrInvalidInput        = errors.New("invalid input")
	ErrNegativeDays        = errors.New("days to advance cannot be negative")
	ErrMemberOwnsItems     = errors.New("member still owns items")
	ErrItemHasObligations  = errors.New("item has active or future contracts")
)

// State error kinds. These indicate a condition that should be impossible
// given the creation-time checks and are re-guarded at settlement.
var (
	ErrSettlementShortfall = errors.New("insufficient credits at settlement")
)
