package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"stufflending/internal/domain"
	"stufflending/internal/logger"
	"stufflending/internal/repository"
)

type contractService struct {
	contractRepo repository.ContractRepository
	itemRepo     repository.ItemRepository
	memberRepo   repository.MemberRepository
}

func NewContractService(
	contractRepo repository.ContractRepository,
	itemRepo repository.ItemRepository,
	memberRepo repository.MemberRepository,
) ContractService {
	return &contractService{
		contractRepo: contractRepo,
		itemRepo:     itemRepo,
		memberRepo:   memberRepo,
	}
}

func (s *contractService) CreateContract(ctx context.Context, itemID int, renterID string, startDay, endDay int) (*domain.Contract, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrMissingParty, "item %d", itemID)
	}
	renter, err := s.memberRepo.GetByID(ctx, renterID)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrMissingParty, "renter %s", renterID)
	}

	if item.OwnerID == renter.ID {
		return nil, errors.Wrapf(domain.ErrOwnItemRental, "member %s owns item %d", renter.ID, item.ID)
	}
	if startDay < 0 || endDay < startDay {
		return nil, errors.Wrapf(domain.ErrInvalidDateRange, "start %d, end %d", startDay, endDay)
	}

	conflict, err := s.contractRepo.HasDateConflict(ctx, item.ID, startDay, endDay)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, errors.Wrapf(domain.ErrDateConflict, "item %d, days %d-%d", item.ID, startDay, endDay)
	}

	totalCost := domain.RentalCost(item.CostPerDay, startDay, endDay)
	if !renter.CanAfford(totalCost) {
		return nil, errors.Wrapf(domain.ErrInsufficientCredits,
			"need %s, have %s", totalCost.String(), renter.Credits.String())
	}

	contract := &domain.Contract{
		ID:         uuid.NewString(),
		ItemID:     item.ID,
		RenterID:   renter.ID,
		OwnerID:    item.OwnerID,
		ItemName:   item.Name,
		RenterName: renter.Name,
		CostPerDay: item.CostPerDay,
		StartDay:   startDay,
		EndDay:     endDay,
		TotalCost:  totalCost,
		Status:     domain.ContractStatusActive,
	}
	if err := s.contractRepo.Add(ctx, contract); err != nil {
		return nil, err
	}

	item.Available = false
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	logger.Info("Contract created",
		"contract_id", contract.ID,
		"item_id", contract.ItemID,
		"renter_id", contract.RenterID,
		"start_day", contract.StartDay,
		"end_day", contract.EndDay,
		"total_cost", contract.TotalCost.String())
	return contract, nil
}

func (s *contractService) GetContract(ctx context.Context, id string) (*domain.Contract, error) {
	return s.contractRepo.GetByID(ctx, id)
}

func (s *contractService) ListContracts(ctx context.Context) ([]domain.Contract, error) {
	return s.contractRepo.List(ctx)
}
