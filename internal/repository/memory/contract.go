package memory

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"stufflending/internal/domain"
	"stufflending/internal/repository"
)

type contractRepository struct {
	mu sync.Mutex
	// Insertion order is the settlement sweep order, so contracts live in a
	// slice rather than a map.
	contracts []*domain.Contract
	byID      map[string]*domain.Contract
}

// NewContractRepository creates an empty append-only contract store.
func NewContractRepository() repository.ContractRepository {
	return &contractRepository{byID: make(map[string]*domain.Contract)}
}

func (r *contractRepository) Add(_ context.Context, contract *domain.Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[contract.ID]; ok {
		return errors.Wrapf(domain.ErrDuplicateIdentity, "contract %s already exists", contract.ID)
	}
	cp := *contract
	r.contracts = append(r.contracts, &cp)
	r.byID[cp.ID] = &cp
	return nil
}

func (r *contractRepository) GetByID(_ context.Context, id string) (*domain.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, errors.Wrapf(domain.ErrNotFound, "contract %s", id)
	}
	cp := *c
	return &cp, nil
}

// MarkProcessed moves a contract to its terminal state. Marking an already
// processed contract is a no-op.
func (r *contractRepository) MarkProcessed(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return errors.Wrapf(domain.ErrNotFound, "contract %s", id)
	}
	c.Status = domain.ContractStatusProcessed
	return nil
}

func (r *contractRepository) List(_ context.Context) ([]domain.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Contract, 0, len(r.contracts))
	for _, c := range r.contracts {
		out = append(out, *c)
	}
	return out, nil
}

func (r *contractRepository) HasDateConflict(_ context.Context, itemID, startDay, endDay int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.contracts {
		// A processed contract's item is back in circulation.
		if c.ItemID != itemID || c.Processed() {
			continue
		}
		if domain.Overlaps(startDay, endDay, c.StartDay, c.EndDay) {
			return true, nil
		}
	}
	return false, nil
}

func (r *contractRepository) ItemHasObligations(_ context.Context, itemID, currentDay int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.contracts {
		if c.ItemID == itemID && !c.Processed() && c.EndDay >= currentDay {
			return true, nil
		}
	}
	return false, nil
}
