package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lionfit/gym-management-backend/internal/repository"
)

// ============================================
// Stats Service
// ============================================

// Stats is the dashboard snapshot: four headline numbers plus the
// derived adhesion metric. Recomputed from the store on demand, never
// maintained incrementally.
type Stats struct {
	TotalMembers         int             `json:"totalMembers"`
	ActiveMembers        int             `json:"activeMembers"`
	InactiveMembers      int             `json:"inactiveMembers"`
	ExpiredSubscriptions int             `json:"expiredSubscriptions"`
	MonthlyRevenue       decimal.Decimal `json:"monthlyRevenue"`
	AverageAdhesion      decimal.Decimal `json:"averageAdhesion"`
}

type StatsService interface {
	Snapshot(ctx context.Context) (*Stats, error)
}

type statsService struct {
	repos *repository.Repositories
	now   func() int64
}

func NewStatsService(repos *repository.Repositories) StatsService {
	return &statsService{repos: repos, now: nowMillis}
}

func (s *statsService) Snapshot(ctx context.Context) (*Stats, error) {
	now := s.now()

	total, err := s.repos.MemberRepo.CountTotal(ctx)
	if err != nil {
		return nil, err
	}

	// Active counts the cached flag; inactive counts the live end-date
	// predicate. The two deliberately use different sources, matching
	// how the dashboard always read them.
	active, err := s.repos.MemberRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	inactive, err := s.repos.MemberRepo.CountInactive(ctx, now)
	if err != nil {
		return nil, err
	}

	expired, err := s.repos.SubscriptionRepo.CountExpired(ctx, now)
	if err != nil {
		return nil, err
	}

	revenue, err := s.repos.PaymentRepo.SumAmountInRange(ctx, startOfMonth(now), now)
	if err != nil {
		return nil, err
	}

	// Revenue per active member. Zero when nobody is active, never a
	// division error.
	adhesion := decimal.Zero
	if active > 0 {
		adhesion = revenue.Div(decimal.NewFromInt(int64(active)))
	}

	return &Stats{
		TotalMembers:         total,
		ActiveMembers:        active,
		InactiveMembers:      inactive,
		ExpiredSubscriptions: expired,
		MonthlyRevenue:       revenue,
		AverageAdhesion:      adhesion,
	}, nil
}

// startOfMonth returns midnight of day 1 of the current month in local
// time, as epoch milliseconds.
func startOfMonth(now int64) int64 {
	t := time.UnixMilli(now).Local()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).UnixMilli()
}
