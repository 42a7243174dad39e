package cron

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/lionfit/gym-management-backend/internal/repository"
	"github.com/lionfit/gym-management-backend/internal/service"
	"github.com/lionfit/gym-management-backend/internal/socket"
)

// Scheduler handles scheduled maintenance tasks
type Scheduler struct {
	cron        *cron.Cron
	services    *service.Services
	memberRepo  repository.MemberRepository
	broadcaster *socket.Broadcaster
	now         func() int64
}

// NewScheduler creates a new scheduler
func NewScheduler(services *service.Services, memberRepo repository.MemberRepository, broadcaster *socket.Broadcaster, now func() int64) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		services:    services,
		memberRepo:  memberRepo,
		broadcaster: broadcaster,
		now:         now,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	// Run every hour - reconcile the stored active flags with the
	// members' end dates. The flags only change on renewal otherwise,
	// so members who expire overnight would keep a stale flag.
	s.cron.AddFunc("0 * * * *", func() {
		log.Println("[Cron] Running active flag refresh...")
		s.refreshActiveFlags()
	})

	// Run every day at 7 AM - log the dashboard figures
	s.cron.AddFunc("0 7 * * *", func() {
		log.Println("[Cron] Running daily stats summary...")
		s.logDailyStats()
	})

	s.cron.Start()
	log.Println("[Cron] Scheduler started")
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[Cron] Scheduler stopped")
}

// refreshActiveFlags repersists is_active for every member whose flag
// disagrees with their end date, then pushes updated snapshots when
// anything actually changed.
func (s *Scheduler) refreshActiveFlags() {
	ctx := context.Background()

	changed, err := s.memberRepo.RefreshActiveFlags(ctx, s.now())
	if err != nil {
		log.Printf("[Cron] Error refreshing active flags: %v", err)
		return
	}
	if changed == 0 {
		return
	}
	log.Printf("[Cron] Refreshed active flag for %d members", changed)

	if s.broadcaster == nil {
		return
	}
	members, err := s.memberRepo.FindAll(ctx)
	if err != nil {
		log.Printf("[Cron] Error loading members after refresh: %v", err)
		return
	}
	s.broadcaster.BroadcastMembers(members)

	stats, err := s.services.Stats.Snapshot(ctx)
	if err != nil {
		log.Printf("[Cron] Error computing stats after refresh: %v", err)
		return
	}
	s.broadcaster.BroadcastStats(stats)
}

func (s *Scheduler) logDailyStats() {
	ctx := context.Background()

	stats, err := s.services.Stats.Snapshot(ctx)
	if err != nil {
		log.Printf("[Cron] Error computing daily stats: %v", err)
		return
	}
	log.Printf("[Cron] Daily summary: %d members (%d active, %d inactive), monthly revenue %s",
		stats.TotalMembers, stats.ActiveMembers, stats.InactiveMembers, stats.MonthlyRevenue.StringFixed(2))
}

// ManualTrigger allows manual triggering of scheduled checks (for testing)
func (s *Scheduler) ManualTrigger(checkType string) {
	switch checkType {
	case "refresh":
		s.refreshActiveFlags()
	case "stats":
		s.logDailyStats()
	case "all":
		s.refreshActiveFlags()
		s.logDailyStats()
	}
}
