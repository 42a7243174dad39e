package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lionfit/gym-management-backend/internal/repository"
)

// ============================================
// Payment Service (Renewal & Status Engine)
// ============================================

// RenewalPolicy decides how far a payment extends a member's paid
// period. The legacy behavior is a flat extension regardless of which
// plan the member holds; UsePlanInterval switches to the plan's own
// validity window length when the plan carries one.
type RenewalPolicy struct {
	ExtensionDays   int
	UsePlanInterval bool
}

// ExtensionMillis returns the extension for one payment.
func (p RenewalPolicy) ExtensionMillis(plan *repository.Subscription) int64 {
	if p.UsePlanInterval && plan != nil && plan.StartDate != nil && plan.EndDate != nil {
		if window := *plan.EndDate - *plan.StartDate; window > 0 {
			return window
		}
	}
	return int64(p.ExtensionDays) * dayMillis
}

type PaymentService interface {
	// RecordPayment persists the payment and, when the member exists,
	// extends their paid period and refreshes their active flag.
	RecordPayment(ctx context.Context, memberID int64, amount decimal.Decimal, date int64) (*repository.Payment, error)
	List(ctx context.Context) ([]*repository.Payment, error)
	ListForMember(ctx context.Context, memberID int64) ([]*repository.Payment, error)
	Delete(ctx context.Context, id int64) error
}

type paymentService struct {
	store  *repository.Store
	policy RenewalPolicy
	notify *notifier
	now    func() int64
}

func NewPaymentService(store *repository.Store, policy RenewalPolicy, notify *notifier) PaymentService {
	return &paymentService{
		store:  store,
		policy: policy,
		notify: notify,
		now:    nowMillis,
	}
}

// RecordPayment runs the whole renewal as one transaction:
//
//  1. the payment is persisted unconditionally;
//  2. the member is looked up; when absent the payment still commits
//     and no renewal happens, which is not an error;
//  3. the member's end date moves forward by the policy extension,
//     counted from the current end date even when it is in the past;
//  4. the active flag is recomputed against the new end date;
//  5. only end date and flag change on the member record.
//
// A zero amount is backfilled from the member's plan price at the time
// of payment.
func (s *paymentService) RecordPayment(ctx context.Context, memberID int64, amount decimal.Decimal, date int64) (*repository.Payment, error) {
	now := s.now()
	if date == 0 {
		date = now
	}

	payment := &repository.Payment{
		MemberID: memberID,
		Amount:   amount,
		Date:     date,
	}

	err := s.store.WithTx(ctx, func(r *repository.Repositories) error {
		member, err := r.MemberRepo.FindByID(ctx, memberID)
		if err != nil {
			return err
		}

		var plan *repository.Subscription
		if member != nil && (payment.Amount.IsZero() || s.policy.UsePlanInterval) {
			plan, err = r.SubscriptionRepo.FindByID(ctx, member.SubscriptionID)
			if err != nil {
				return err
			}
			if payment.Amount.IsZero() && plan != nil {
				payment.Amount = plan.Price
			}
		}

		if err := r.PaymentRepo.Insert(ctx, payment); err != nil {
			return err
		}

		if member == nil {
			// Payment recorded, renewal skipped. Accepted behavior.
			return nil
		}

		member.EndDate += s.policy.ExtensionMillis(plan)
		member.IsActive = now < member.EndDate
		return r.MemberRepo.Update(ctx, member)
	})
	if err != nil {
		return nil, err
	}

	s.notify.pushPayments(ctx)
	s.notify.pushMembers(ctx)
	s.notify.pushStats(ctx)
	return payment, nil
}

func (s *paymentService) List(ctx context.Context) ([]*repository.Payment, error) {
	return s.store.Repos().PaymentRepo.FindAll(ctx)
}

func (s *paymentService) ListForMember(ctx context.Context, memberID int64) ([]*repository.Payment, error) {
	return s.store.Repos().PaymentRepo.FindByMemberID(ctx, memberID)
}

// Delete removes the payment record. The renewal it may have triggered
// stays applied; there is no compensation.
func (s *paymentService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Repos().PaymentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.notify.pushPayments(ctx)
	s.notify.pushStats(ctx)
	return nil
}
