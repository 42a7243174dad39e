package service

import (
	"context"
	"math/rand"
	"strings"

	"github.com/lionfit/gym-management-backend/internal/repository"
)

// ============================================
// Member Service
// ============================================

type MemberService interface {
	Register(ctx context.Context, name, contact string, subscriptionID int64) (*repository.Member, error)
	List(ctx context.Context) ([]*repository.Member, error)
	Get(ctx context.Context, id int64) (*repository.Member, error)
	GetByCode(ctx context.Context, code string) (*repository.Member, error)
	Update(ctx context.Context, member *repository.Member) (*repository.Member, error)
	Delete(ctx context.Context, id int64) error
}

const (
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength  = 6

	// Attempts before giving up on a unique code. The space is 36^6,
	// collisions only matter after pathological churn.
	codeAttempts = 10
)

type memberService struct {
	repos           *repository.Repositories
	trialPeriodDays int
	notify          *notifier
	now             func() int64
}

func NewMemberService(repos *repository.Repositories, trialPeriodDays int, notify *notifier) MemberService {
	return &memberService{
		repos:           repos,
		trialPeriodDays: trialPeriodDays,
		notify:          notify,
		now:             nowMillis,
	}
}

// Register creates a member with the default trial window: the paid
// period starts now and runs for the configured trial days, and the
// member starts out active.
func (s *memberService) Register(ctx context.Context, name, contact string, subscriptionID int64) (*repository.Member, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(contact) == "" {
		return nil, ErrInvalidInput
	}

	code, err := s.generateCode(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	member := &repository.Member{
		Name:             name,
		Code:             code,
		Contact:          contact,
		SubscriptionID:   subscriptionID,
		StartDate:        now,
		EndDate:          now + int64(s.trialPeriodDays)*dayMillis,
		RegistrationDate: now,
		IsActive:         true,
	}

	if err := s.repos.MemberRepo.Insert(ctx, member); err != nil {
		return nil, err
	}

	s.notify.pushMembers(ctx)
	s.notify.pushStats(ctx)
	return member, nil
}

// List returns all members ordered by name with the active flag
// recomputed live from the end date. The stored flag is a cache that
// drifts between renewals; reads never trust it.
func (s *memberService) List(ctx context.Context) ([]*repository.Member, error) {
	members, err := s.repos.MemberRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for _, m := range members {
		m.IsActive = m.ActiveAt(now)
	}
	return members, nil
}

func (s *memberService) Get(ctx context.Context, id int64) (*repository.Member, error) {
	member, err := s.repos.MemberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrNotFound
	}
	member.IsActive = member.ActiveAt(s.now())
	return member, nil
}

func (s *memberService) GetByCode(ctx context.Context, code string) (*repository.Member, error) {
	member, err := s.repos.MemberRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrNotFound
	}
	member.IsActive = member.ActiveAt(s.now())
	return member, nil
}

func (s *memberService) Update(ctx context.Context, member *repository.Member) (*repository.Member, error) {
	existing, err := s.repos.MemberRepo.FindByID(ctx, member.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if member.EndDate < member.StartDate {
		return nil, ErrInvalidInput
	}

	if err := s.repos.MemberRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	s.notify.pushMembers(ctx)
	s.notify.pushStats(ctx)
	return member, nil
}

// Delete removes the member only. Payments referencing the member stay
// behind as orphans; that asymmetry is accepted.
func (s *memberService) Delete(ctx context.Context, id int64) error {
	if err := s.repos.MemberRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.notify.pushMembers(ctx)
	s.notify.pushStats(ctx)
	return nil
}

func (s *memberService) generateCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < codeAttempts; attempt++ {
		b := make([]byte, codeLength)
		for i := range b {
			b[i] = codeCharset[rand.Intn(len(codeCharset))]
		}
		code := string(b)

		existing, err := s.repos.MemberRepo.FindByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return code, nil
		}
	}
	return "", ErrCodeExhausted
}
