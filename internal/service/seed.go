package service

import (
	"context"

	"github.com/shopspring/decimal"

	"stufflending/internal/domain"
	"stufflending/internal/logger"
)

// Seeder populates the repositories with a small known data set so the
// application starts with something to show: three members, two items owned
// by the first member, and one active contract.
type Seeder struct {
	members   MemberService
	items     ItemService
	contracts ContractService
}

func NewSeeder(members MemberService, items ItemService, contracts ContractService) *Seeder {
	return &Seeder{members: members, items: items, contracts: contracts}
}

// Seed creates the sample members, items and contract. Each record goes
// through the same validated service path as interactive input.
func (s *Seeder) Seed(ctx context.Context) error {
	alice, err := s.seedMember(ctx, "Alice", "alice@example.com", "1234567890", 500)
	if err != nil {
		return err
	}
	if _, err := s.seedMember(ctx, "Bob", "bob@example.com", "0987654321", 100); err != nil {
		return err
	}
	charlie, err := s.seedMember(ctx, "Charlie", "charlie@example.com", "2345678901", 100)
	if err != nil {
		return err
	}

	if _, err := s.items.AddItem(ctx, alice.ID, "Bicycle", "Mountain bike", string(domain.ItemCategoryVehicle), decimal.NewFromInt(50)); err != nil {
		return err
	}
	hammer, err := s.items.AddItem(ctx, alice.ID, "Hammer", "A sturdy hammer", string(domain.ItemCategoryTool), decimal.NewFromInt(10))
	if err != nil {
		return err
	}

	if _, err := s.contracts.CreateContract(ctx, hammer.ID, charlie.ID, 5, 7); err != nil {
		return err
	}

	logger.Info("Seed data loaded", "members", 3, "items", 2, "contracts", 1)
	return nil
}

func (s *Seeder) seedMember(ctx context.Context, name, email, phone string, credits int64) (*domain.Member, error) {
	member, err := s.members.CreateMember(ctx, name, email, phone)
	if err != nil {
		return nil, err
	}
	if err := s.members.SetCredits(ctx, member.ID, decimal.NewFromInt(credits)); err != nil {
		return nil, err
	}
	member.Credits = decimal.NewFromInt(credits)
	return member, nil
}
