package ui

import (
	"errors"

	"stufflending/internal/domain"
)

// errorMessage maps every error kind the services can raise to a specific
// user-facing message. No raw internal fault surfaces unformatted.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingParty):
		return "Invalid item or renter ID."
	case errors.Is(err, domain.ErrOwnItemRental):
		return "Error: The owner cannot rent their own item."
	case errors.Is(err, domain.ErrInvalidDateRange):
		return "Error: Invalid start or end day."
	case errors.Is(err, domain.ErrDateConflict):
		return "Error: The specified rental period conflicts with an existing contract."
	case errors.Is(err, domain.ErrInsufficientCredits):
		return "Error: The renter does not have enough credits to cover the rental cost."
	case errors.Is(err, domain.ErrSettlementShortfall):
		return "Error: A contract could not be settled because the renter no longer has enough credits."
	case errors.Is(err, domain.ErrDuplicateIdentity):
		return "Error: Email or phone number already exists."
	case errors.Is(err, domain.ErrNegativeDays):
		return "Number of days to advance must be positive."
	case errors.Is(err, domain.ErrMemberOwnsItems):
		return "Cannot delete member with active items or contracts."
	case errors.Is(err, domain.ErrItemHasObligations):
		return "Cannot delete an item that has active or future contracts."
	case errors.Is(err, domain.ErrInvalidInput):
		return "Invalid input. Please check the entered values and try again."
	case errors.Is(err, domain.ErrNotFound):
		return "Not found. Please check the entered ID."
	default:
		return "Something went wrong. Please try again."
	}
}
