package service

import (
	"context"
	"strings"

	"github.com/lionfit/gym-management-backend/internal/repository"
)

// ============================================
// Subscription Service
// ============================================

type SubscriptionService interface {
	Create(ctx context.Context, subscription *repository.Subscription) (*repository.Subscription, error)
	List(ctx context.Context) ([]*repository.Subscription, error)
	Get(ctx context.Context, id int64) (*repository.Subscription, error)
	Update(ctx context.Context, subscription *repository.Subscription) (*repository.Subscription, error)
	Delete(ctx context.Context, id int64) error
}

type subscriptionService struct {
	repos  *repository.Repositories
	notify *notifier
}

func NewSubscriptionService(repos *repository.Repositories, notify *notifier) SubscriptionService {
	return &subscriptionService{repos: repos, notify: notify}
}

func (s *subscriptionService) Create(ctx context.Context, subscription *repository.Subscription) (*repository.Subscription, error) {
	if strings.TrimSpace(subscription.Type) == "" || !subscription.Price.IsPositive() {
		return nil, ErrInvalidInput
	}

	if err := s.repos.SubscriptionRepo.Insert(ctx, subscription); err != nil {
		return nil, err
	}

	s.notify.pushSubscriptions(ctx)
	s.notify.pushStats(ctx)
	return subscription, nil
}

func (s *subscriptionService) List(ctx context.Context) ([]*repository.Subscription, error) {
	return s.repos.SubscriptionRepo.FindAll(ctx)
}

func (s *subscriptionService) Get(ctx context.Context, id int64) (*repository.Subscription, error) {
	subscription, err := s.repos.SubscriptionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, ErrNotFound
	}
	return subscription, nil
}

func (s *subscriptionService) Update(ctx context.Context, subscription *repository.Subscription) (*repository.Subscription, error) {
	existing, err := s.repos.SubscriptionRepo.FindByID(ctx, subscription.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if strings.TrimSpace(subscription.Type) == "" || !subscription.Price.IsPositive() {
		return nil, ErrInvalidInput
	}

	if err := s.repos.SubscriptionRepo.Update(ctx, subscription); err != nil {
		return nil, err
	}

	s.notify.pushSubscriptions(ctx)
	s.notify.pushStats(ctx)
	return subscription, nil
}

// Delete removes the plan without checking member references. Members
// keep pointing at the deleted id; lookups on it report not found.
func (s *subscriptionService) Delete(ctx context.Context, id int64) error {
	if err := s.repos.SubscriptionRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.notify.pushSubscriptions(ctx)
	s.notify.pushStats(ctx)
	return nil
}
