package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/lionfit/gym-management-backend/internal/config"
	"github.com/lionfit/gym-management-backend/internal/repository"
	"github.com/lionfit/gym-management-backend/internal/socket"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrCodeExhausted      = errors.New("could not generate a unique member code")
)

const dayMillis = int64(24 * 60 * 60 * 1000)

// ============================================
// Services Container
// ============================================

type Services struct {
	Auth         AuthService
	Member       MemberService
	Subscription SubscriptionService
	Payment      PaymentService
	Stats        StatsService
	Broadcaster  *socket.Broadcaster
}

// ServiceDeps contains all dependencies needed to create services
type ServiceDeps struct {
	Config      *config.Config
	Store       *repository.Store
	Broadcaster *socket.Broadcaster
}

func NewServices(deps *ServiceDeps) *Services {
	repos := deps.Store.Repos()

	statsService := NewStatsService(repos)

	// Every mutating service pushes refreshed snapshots through the
	// same notifier so dependent views stay current.
	n := &notifier{
		repos:       repos,
		stats:       statsService,
		broadcaster: deps.Broadcaster,
	}

	policy := RenewalPolicy{
		ExtensionDays:   deps.Config.RenewalExtensionDays,
		UsePlanInterval: deps.Config.RenewalUsePlanInterval,
	}

	return &Services{
		Auth:         NewAuthService(deps.Config),
		Member:       NewMemberService(repos, deps.Config.TrialPeriodDays, n),
		Subscription: NewSubscriptionService(repos, n),
		Payment:      NewPaymentService(deps.Store, policy, n),
		Stats:        statsService,
		Broadcaster:  deps.Broadcaster,
	}
}

// ============================================
// Mutation Notifier
// ============================================

// notifier recomputes and pushes full snapshots after a mutation.
// Pushes are best-effort: a failed read is logged, never surfaced to
// the mutation that triggered it.
type notifier struct {
	repos       *repository.Repositories
	stats       StatsService
	broadcaster *socket.Broadcaster
}

func (n *notifier) pushMembers(ctx context.Context) {
	if n.broadcaster == nil {
		return
	}
	members, err := n.repos.MemberRepo.FindAll(ctx)
	if err != nil {
		log.Printf("[Notify] Error loading members snapshot: %v", err)
		return
	}
	n.broadcaster.BroadcastMembers(members)
}

func (n *notifier) pushSubscriptions(ctx context.Context) {
	if n.broadcaster == nil {
		return
	}
	subscriptions, err := n.repos.SubscriptionRepo.FindAll(ctx)
	if err != nil {
		log.Printf("[Notify] Error loading subscriptions snapshot: %v", err)
		return
	}
	n.broadcaster.BroadcastSubscriptions(subscriptions)
}

func (n *notifier) pushPayments(ctx context.Context) {
	if n.broadcaster == nil {
		return
	}
	payments, err := n.repos.PaymentRepo.FindAll(ctx)
	if err != nil {
		log.Printf("[Notify] Error loading payments snapshot: %v", err)
		return
	}
	n.broadcaster.BroadcastPayments(payments)
}

func (n *notifier) pushStats(ctx context.Context) {
	if n.broadcaster == nil {
		return
	}
	stats, err := n.stats.Snapshot(ctx)
	if err != nil {
		log.Printf("[Notify] Error computing stats snapshot: %v", err)
		return
	}
	n.broadcaster.BroadcastStats(stats)
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
