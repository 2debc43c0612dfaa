package service

import (
	"context"

	"github.com/shopspring/decimal"

	"stufflending/internal/domain"
)

// DayClock provides the current simulated day to services that need it.
// *clock.Clock implements it.
type DayClock interface {
	CurrentDay() int
}

type MemberService interface {
	CreateMember(ctx context.Context, name, email, phone string) (*domain.Member, error)
	GetMember(ctx context.Context, id string) (*domain.Member, error)
	UpdateMember(ctx context.Context, id, name, email, phone string) (*domain.Member, error)
	// DeleteMember removes a member. A member who still owns items cannot
	// be removed.
	DeleteMember(ctx context.Context, id string) error
	ListMembers(ctx context.Context) ([]domain.Member, error)
	ListOwnedItems(ctx context.Context, memberID string) ([]domain.Item, error)
	// SetCredits overwrites a member's balance. Used by seeding and
	// administrative adjustment; rejects negative balances.
	SetCredits(ctx context.Context, id string, credits decimal.Decimal) error
}

type ItemService interface {
	AddItem(ctx context.Context, ownerID, name, description, category string, costPerDay decimal.Decimal) (*domain.Item, error)
	GetItem(ctx context.Context, id int) (*domain.Item, error)
	UpdateItem(ctx context.Context, id int, name, description, category string, costPerDay decimal.Decimal) (*domain.Item, error)
	// DeleteItem removes an item unless it is still involved in an active
	// or future contract.
	DeleteItem(ctx context.Context, id int) error
	ListItems(ctx context.Context) ([]domain.Item, error)
}

type ContractService interface {
	// CreateContract validates and creates a rental contract, storing it as
	// ACTIVE and flipping the item to unavailable. Validation is fail-fast
	// in a fixed order: presence of item and renter, owner not renting own
	// item, day range, date conflict, renter credits.
	CreateContract(ctx context.Context, itemID int, renterID string, startDay, endDay int) (*domain.Contract, error)
	GetContract(ctx context.Context, id string) (*domain.Contract, error)
	ListContracts(ctx context.Context) ([]domain.Contract, error)
}

type SettlementService interface {
	// ProcessDueContracts sweeps every contract in insertion order and
	// settles those whose end day has passed. A failure on one contract
	// does not stop the sweep; all failures are reported after the sweep
	// completes. Calling it again with the same day is a no-op for
	// contracts already settled.
	ProcessDueContracts(ctx context.Context, currentDay int) error
}
