package service

import (
	"context"
	"math/rand"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"stufflending/internal/domain"
	"stufflending/internal/logger"
	"stufflending/internal/repository"
)

const (
	memberIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	memberIDLength   = 6
)

// memberInput carries the user-entered member fields through validation.
// Phone numbers are 8 to 15 digits.
type memberInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Phone string `validate:"required,number,min=8,max=15"`
}

type memberService struct {
	memberRepo      repository.MemberRepository
	itemRepo        repository.ItemRepository
	validate        *validator.Validate
	startingCredits decimal.Decimal
}

func NewMemberService(
	memberRepo repository.MemberRepository,
	itemRepo repository.ItemRepository,
	startingCredits decimal.Decimal,
) MemberService {
	return &memberService{
		memberRepo:      memberRepo,
		itemRepo:        itemRepo,
		validate:        validator.New(),
		startingCredits: startingCredits,
	}
}

func (s *memberService) CreateMember(ctx context.Context, name, email, phone string) (*domain.Member, error) {
	name, email, phone = strings.TrimSpace(name), strings.TrimSpace(email), strings.TrimSpace(phone)
	if err := s.validate.Struct(memberInput{Name: name, Email: email, Phone: phone}); err != nil {
		return nil, errors.Wrap(domain.ErrInvalidInput, err.Error())
	}

	inUse, err := s.memberRepo.IdentityInUse(ctx, email, phone, "")
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, errors.Wrapf(domain.ErrDuplicateIdentity, "email %s / phone %s", email, phone)
	}

	id, err := s.generateID(ctx)
	if err != nil {
		return nil, err
	}

	member := &domain.Member{
		ID:      id,
		Name:    name,
		Email:   email,
		Phone:   phone,
		Credits: s.startingCredits,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	logger.Info("Member created", "member_id", member.ID, "name", member.Name)
	return member, nil
}

func (s *memberService) GetMember(ctx context.Context, id string) (*domain.Member, error) {
	return s.memberRepo.GetByID(ctx, id)
}

func (s *memberService) UpdateMember(ctx context.Context, id, name, email, phone string) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name, email, phone = strings.TrimSpace(name), strings.TrimSpace(email), strings.TrimSpace(phone)
	if err := s.validate.Struct(memberInput{Name: name, Email: email, Phone: phone}); err != nil {
		return nil, errors.Wrap(domain.ErrInvalidInput, err.Error())
	}

	inUse, err := s.memberRepo.IdentityInUse(ctx, email, phone, member.ID)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, errors.Wrapf(domain.ErrDuplicateIdentity, "email %s / phone %s", email, phone)
	}

	member.Name = name
	member.Email = email
	member.Phone = phone
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *memberService) DeleteMember(ctx context.Context, id string) error {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	owned, err := s.itemRepo.ListByOwner(ctx, member.ID)
	if err != nil {
		return err
	}
	if len(owned) > 0 {
		return errors.Wrapf(domain.ErrMemberOwnsItems, "member %s owns %d item(s)", member.ID, len(owned))
	}

	if err := s.memberRepo.Delete(ctx, member.ID); err != nil {
		return err
	}
	logger.Info("Member deleted", "member_id", member.ID)
	return nil
}

func (s *memberService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	return s.memberRepo.List(ctx)
}

func (s *memberService) ListOwnedItems(ctx context.Context, memberID string) ([]domain.Item, error) {
	return s.itemRepo.ListByOwner(ctx, memberID)
}

func (s *memberService) SetCredits(ctx context.Context, id string, credits decimal.Decimal) error {
	if credits.IsNegative() {
		return errors.Wrap(domain.ErrInvalidInput, "credits cannot be negative")
	}
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	member.Credits = credits
	return s.memberRepo.Update(ctx, member)
}

// generateID produces a 6-character alphanumeric member ID, retrying on the
// unlikely collision with an existing member.
func (s *memberService) generateID(ctx context.Context) (string, error) {
	for {
		var b strings.Builder
		for i := 0; i < memberIDLength; i++ {
			b.WriteByte(memberIDAlphabet[rand.Intn(len(memberIDAlphabet))])
		}
		id := b.String()

		exists, err := s.memberRepo.IDExists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
}
