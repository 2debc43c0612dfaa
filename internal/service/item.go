package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"stufflending/internal/domain"
	"stufflending/internal/logger"
	"stufflending/internal/repository"
)

type itemInput struct {
	Name        string `validate:"required"`
	Description string `validate:"required"`
}

type itemService struct {
	itemRepo     repository.ItemRepository
	memberRepo   repository.MemberRepository
	contractRepo repository.ContractRepository
	clock        DayClock
	validate     *validator.Validate
}

func NewItemService(
	itemRepo repository.ItemRepository,
	memberRepo repository.MemberRepository,
	contractRepo repository.ContractRepository,
	clock DayClock,
) ItemService {
	return &itemService{
		itemRepo:     itemRepo,
		memberRepo:   memberRepo,
		contractRepo: contractRepo,
		clock:        clock,
		validate:     validator.New(),
	}
}

func (s *itemService) AddItem(ctx context.Context, ownerID, name, description, category string, costPerDay decimal.Decimal) (*domain.Item, error) {
	name, description = strings.TrimSpace(name), strings.TrimSpace(description)
	cat, cost, err := s.validateItem(name, description, category, costPerDay)
	if err != nil {
		return nil, err
	}

	owner, err := s.memberRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	item := &domain.Item{
		OwnerID:     owner.ID,
		Name:        name,
		Description: description,
		Category:    cat,
		CostPerDay:  cost,
		Available:   true,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	logger.Info("Item added",
		"item_id", item.ID,
		"name", item.Name,
		"owner_id", item.OwnerID,
		"cost_per_day", item.CostPerDay.String())
	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, id int) (*domain.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *itemService) UpdateItem(ctx context.Context, id int, name, description, category string, costPerDay decimal.Decimal) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name, description = strings.TrimSpace(name), strings.TrimSpace(description)
	cat, cost, err := s.validateItem(name, description, category, costPerDay)
	if err != nil {
		return nil, err
	}

	item.Name = name
	item.Description = description
	item.Category = cat
	item.CostPerDay = cost
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) DeleteItem(ctx context.Context, id int) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	blocked, err := s.contractRepo.ItemHasObligations(ctx, item.ID, s.clock.CurrentDay())
	if err != nil {
		return err
	}
	if blocked {
		return errors.Wrapf(domain.ErrItemHasObligations, "item %d", item.ID)
	}

	if err := s.itemRepo.Delete(ctx, item.ID); err != nil {
		return err
	}
	logger.Info("Item deleted", "item_id", item.ID)
	return nil
}

func (s *itemService) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.itemRepo.List(ctx)
}

func (s *itemService) validateItem(name, description, category string, costPerDay decimal.Decimal) (domain.ItemCategory, decimal.Decimal, error) {
	if err := s.validate.Struct(itemInput{Name: name, Description: description}); err != nil {
		return "", decimal.Zero, errors.Wrap(domain.ErrInvalidInput, err.Error())
	}
	cat, err := domain.ParseCategory(category)
	if err != nil {
		return "", decimal.Zero, err
	}
	if !costPerDay.IsPositive() {
		return "", decimal.Zero, errors.Wrapf(domain.ErrInvalidInput, "cost per day must be positive, got %s", costPerDay.String())
	}
	return cat, costPerDay, nil
}
