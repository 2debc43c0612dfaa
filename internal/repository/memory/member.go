package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"stufflending/internal/domain"
	"stufflending/internal/repository"
)

type memberRepository struct {
	mu      sync.Mutex
	members map[string]*domain.Member
}

// NewMemberRepository creates an empty in-memory member store keyed by
// member ID.
func NewMemberRepository() repository.MemberRepository {
	return &memberRepository{members: make(map[string]*domain.Member)}
}

func (r *memberRepository) Create(_ context.Context, member *domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[member.ID]; ok {
		return errors.Wrapf(domain.ErrDuplicateIdentity, "member id %s already exists", member.ID)
	}
	cp := *member
	r.members[member.ID] = &cp
	return nil
}

func (r *memberRepository) GetByID(_ context.Context, id string) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[strings.TrimSpace(id)]
	if !ok {
		return nil, errors.Wrapf(domain.ErrNotFound, "member %s", id)
	}
	cp := *m
	return &cp, nil
}

func (r *memberRepository) Update(_ context.Context, member *domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[member.ID]; !ok {
		return errors.Wrapf(domain.ErrNotFound, "member %s", member.ID)
	}
	cp := *member
	r.members[member.ID] = &cp
	return nil
}

func (r *memberRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[id]; !ok {
		return errors.Wrapf(domain.ErrNotFound, "member %s", id)
	}
	delete(r.members, id)
	return nil
}

func (r *memberRepository) List(_ context.Context) ([]domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Member, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memberRepository) IdentityInUse(_ context.Context, email, phone, excludeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.members {
		if m.ID == excludeID {
			continue
		}
		if strings.EqualFold(m.Email, email) || m.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (r *memberRepository) IDExists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.members[id]
	return ok, nil
}
