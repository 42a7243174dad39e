// internal/seed/seed.go
package seed

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lionfit/gym-management-backend/internal/repository"
	"github.com/lionfit/gym-management-backend/internal/service"
)

const dayMillis = int64(24 * 60 * 60 * 1000)

// SeedData loads a small realistic data set for development: three
// plans, a handful of members in different states, and enough payments
// for the dashboard to show something. Skips when members already exist.
func SeedData(repos *repository.Repositories, payments service.PaymentService) {
	ctx := context.Background()

	existing, _ := repos.MemberRepo.FindAll(ctx)
	if len(existing) > 0 {
		log.Println("[Seed] Data already exists, skipping...")
		return
	}

	log.Println("[Seed] Creating initial data...")
	now := time.Now().UnixMilli()

	// ============================================
	// PLANS
	// ============================================
	monthlyStart := now
	monthlyEnd := now + 30*dayMillis
	monthly := &repository.Subscription{
		Type:        "Monthly",
		Description: "Full gym access, billed month to month",
		Price:       decimal.RequireFromString("39.90"),
		StartDate:   &monthlyStart,
		EndDate:     &monthlyEnd,
	}
	repos.SubscriptionRepo.Insert(ctx, monthly)

	quarterlyStart := now
	quarterlyEnd := now + 90*dayMillis
	quarterly := &repository.Subscription{
		Type:        "Quarterly",
		Description: "Three months up front at a discount",
		Price:       decimal.RequireFromString("99.90"),
		StartDate:   &quarterlyStart,
		EndDate:     &quarterlyEnd,
	}
	repos.SubscriptionRepo.Insert(ctx, quarterly)

	annual := &repository.Subscription{
		Type:        "Annual",
		Description: "Twelve months, best rate",
		Price:       decimal.RequireFromString("349.00"),
	}
	repos.SubscriptionRepo.Insert(ctx, annual)

	log.Printf("[Seed] Created 3 plans: Monthly, Quarterly, Annual")

	// ============================================
	// MEMBERS
	// ============================================

	// Paid up well into the future
	ana := &repository.Member{
		Name:             "Ana Costa",
		Code:             "QK7F2M",
		Contact:          "+351 912 000 101",
		SubscriptionID:   monthly.ID,
		StartDate:        now - 60*dayMillis,
		EndDate:          now + 25*dayMillis,
		RegistrationDate: now - 60*dayMillis,
		IsActive:         true,
	}
	repos.MemberRepo.Insert(ctx, ana)

	// Expired last week, flag already swept to inactive
	bruno := &repository.Member{
		Name:             "Bruno Silva",
		Code:             "H3TR9A",
		Contact:          "+351 912 000 102",
		SubscriptionID:   monthly.ID,
		StartDate:        now - 120*dayMillis,
		EndDate:          now - 7*dayMillis,
		RegistrationDate: now - 120*dayMillis,
		IsActive:         false,
	}
	repos.MemberRepo.Insert(ctx, bruno)

	// Fresh trial member registered yesterday
	carla := &repository.Member{
		Name:             "Carla Mendes",
		Code:             "XW41PB",
		Contact:          "+351 912 000 103",
		SubscriptionID:   quarterly.ID,
		StartDate:        now - 1*dayMillis,
		EndDate:          now + 6*dayMillis,
		RegistrationDate: now - 1*dayMillis,
		IsActive:         true,
	}
	repos.MemberRepo.Insert(ctx, carla)

	log.Printf("[Seed] Created 3 members: Ana (active), Bruno (expired), Carla (trial)")

	// ============================================
	// PAYMENTS
	// ============================================

	// Historic payments straight into the repository so they don't
	// move the end dates set above.
	repos.PaymentRepo.Insert(ctx, &repository.Payment{
		MemberID: ana.ID,
		Amount:   monthly.Price,
		Date:     now - 35*dayMillis,
	})
	repos.PaymentRepo.Insert(ctx, &repository.Payment{
		MemberID: bruno.ID,
		Amount:   monthly.Price,
		Date:     now - 37*dayMillis,
	})

	// One payment through the service so the current month has revenue
	// and Ana's period extends the way a front-desk renewal would.
	if payments != nil {
		if _, err := payments.RecordPayment(ctx, ana.ID, monthly.Price, now); err != nil {
			log.Printf("[Seed] Error recording seed payment: %v", err)
		}
	}

	log.Println("[Seed] Done")
}
