package service

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"

	"stufflending/internal/domain"
	"stufflending/internal/logger"
	"stufflending/internal/repository"
)

type settlementService struct {
	contractRepo repository.ContractRepository
	itemRepo     repository.ItemRepository
	memberRepo   repository.MemberRepository
}

func NewSettlementService(
	contractRepo repository.ContractRepository,
	itemRepo repository.ItemRepository,
	memberRepo repository.MemberRepository,
) SettlementService {
	return &settlementService{
		contractRepo: contractRepo,
		itemRepo:     itemRepo,
		memberRepo:   memberRepo,
	}
}

func (s *settlementService) ProcessDueContracts(ctx context.Context, currentDay int) error {
	contracts, err := s.contractRepo.List(ctx)
	if err != nil {
		return err
	}

	var failures []error
	settled := 0
	for i := range contracts {
		c := &contracts[i]
		if !c.DueOn(currentDay) {
			continue
		}
		if err := s.process(ctx, c); err != nil {
			// One renter's shortfall must not block settlement of the
			// remaining due contracts.
			logger.Error("Failed to settle contract",
				"contract_id", c.ID,
				"item_id", c.ItemID,
				"renter_id", c.RenterID,
				"error", err)
			failures = append(failures, err)
			continue
		}
		settled++
	}

	if settled > 0 || len(failures) > 0 {
		logger.Info("Settlement sweep completed",
			"current_day", currentDay,
			"settled", settled,
			"failed", len(failures))
	}
	return errors.Join(failures...)
}

// process transfers the contract's total cost from renter to owner and moves
// the contract to PROCESSED. The credit check from creation time is repeated
// here; on a shortfall the contract stays ACTIVE and no balance goes
// negative.
func (s *settlementService) process(ctx context.Context, c *domain.Contract) error {
	renter, err := s.memberRepo.GetByID(ctx, c.RenterID)
	if err != nil {
		return pkgerrors.Wrapf(err, "settling contract %s", c.ID)
	}
	owner, err := s.memberRepo.GetByID(ctx, c.OwnerID)
	if err != nil {
		return pkgerrors.Wrapf(err, "settling contract %s", c.ID)
	}

	if !renter.CanAfford(c.TotalCost) {
		return pkgerrors.Wrapf(domain.ErrSettlementShortfall,
			"contract %s: need %s, renter %s has %s",
			c.ID, c.TotalCost.String(), renter.ID, renter.Credits.String())
	}

	renter.Credits = renter.Credits.Sub(c.TotalCost)
	if err := s.memberRepo.Update(ctx, renter); err != nil {
		return err
	}
	owner.Credits = owner.Credits.Add(c.TotalCost)
	if err := s.memberRepo.Update(ctx, owner); err != nil {
		return err
	}

	if err := s.contractRepo.MarkProcessed(ctx, c.ID); err != nil {
		return err
	}

	// The item may have been deleted after its last contract expired; the
	// transfer above still stands in that case.
	if item, err := s.itemRepo.GetByID(ctx, c.ItemID); err == nil {
		item.Available = true
		if err := s.itemRepo.Update(ctx, item); err != nil {
			return err
		}
	}

	logger.Info("Contract settled",
		"contract_id", c.ID,
		"item_id", c.ItemID,
		"renter_id", c.RenterID,
		"owner_id", c.OwnerID,
		"amount", c.TotalCost.String())
	return nil
}
