package repository

import (
	"context"

	"stufflending/internal/domain"
)

type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	Update(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Member, error)
	// IdentityInUse reports whether any member other than excludeID already
	// uses the given email (case-insensitive) or phone.
	IdentityInUse(ctx context.Context, email, phone, excludeID string) (bool, error)
	IDExists(ctx context.Context, id string) (bool, error)
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]domain.Item, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Item, error)
}

// ContractRepository is append-only: contracts are never removed, only
// marked processed by the settlement engine.
type ContractRepository interface {
	Add(ctx context.Context, contract *domain.Contract) error
	GetByID(ctx context.Context, id string) (*domain.Contract, error)
	MarkProcessed(ctx context.Context, id string) error
	// List returns independent copies of all contracts in insertion order.
	List(ctx context.Context) ([]domain.Contract, error)
	// HasDateConflict reports whether any unprocessed contract for the item
	// overlaps the inclusive range [startDay, endDay].
	HasDateConflict(ctx context.Context, itemID, startDay, endDay int) (bool, error)
	// ItemHasObligations reports whether any unprocessed contract for the
	// item has an end day on or after currentDay.
	ItemHasObligations(ctx context.Context, itemID, currentDay int) (bool, error)
}
