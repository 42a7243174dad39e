// internal/repository/repository.go
package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// ============================================
// Models / Entities
// ============================================

// All dates are epoch milliseconds, matching the persisted layout.

type Member struct {
	ID               int64  `db:"id" json:"id"`
	Name             string `db:"name" json:"name"`
	Code             string `db:"code" json:"code"`
	Contact          string `db:"contact" json:"contact"`
	SubscriptionID   int64  `db:"subscription_id" json:"subscriptionId"`
	StartDate        int64  `db:"start_date" json:"startDate"`
	EndDate          int64  `db:"end_date" json:"endDate"`
	RegistrationDate int64  `db:"registration_date" json:"registrationDate"`
	IsActive         bool   `db:"is_active" json:"isActive"`
}

// ActiveAt is the live status predicate. The stored IsActive flag is a
// cache set at registration and renewal time; anything that needs the
// truth at a given instant goes through this instead.
func (m *Member) ActiveAt(now int64) bool {
	return now < m.EndDate
}

type Subscription struct {
	ID          int64           `db:"id" json:"id"`
	Type        string          `db:"type" json:"type"`
	Description string          `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	StartDate   *int64          `db:"start_date" json:"startDate,omitempty"`
	EndDate     *int64          `db:"end_date" json:"endDate,omitempty"`
}

type Payment struct {
	ID       int64           `db:"id" json:"id"`
	MemberID int64           `db:"member_id" json:"memberId"`
	Amount   decimal.Decimal `db:"amount" json:"amount"`
	Date     int64           `db:"date" json:"date"`
}

// ============================================
// Repository Interfaces
// ============================================

type MemberRepository interface {
	Insert(ctx context.Context, member *Member) error
	Update(ctx context.Context, member *Member) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Member, error)
	FindByCode(ctx context.Context, code string) (*Member, error)
	FindBySubscriptionID(ctx context.Context, subscriptionID int64) (*Member, error)
	FindAll(ctx context.Context) ([]*Member, error)
	CountTotal(ctx context.Context) (int, error)
	CountActive(ctx context.Context) (int, error)
	CountInactive(ctx context.Context, now int64) (int, error)
	RefreshActiveFlags(ctx context.Context, now int64) (int64, error)
}

type SubscriptionRepository interface {
	Insert(ctx context.Context, subscription *Subscription) error
	Update(ctx context.Context, subscription *Subscription) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Subscription, error)
	FindAll(ctx context.Context) ([]*Subscription, error)
	CountExpired(ctx context.Context, now int64) (int, error)
}

type PaymentRepository interface {
	Insert(ctx context.Context, payment *Payment) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Payment, error)
	FindAll(ctx context.Context) ([]*Payment, error)
	FindByMemberID(ctx context.Context, memberID int64) ([]*Payment, error)
	SumAmountInRange(ctx context.Context, start, end int64) (decimal.Decimal, error)
}

// dbtx is satisfied by both *sqlx.DB and *sqlx.Tx so the same
// repository code runs inside and outside a transaction scope.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// ============================================
// Repositories Container
// ============================================

type Repositories struct {
	MemberRepo       MemberRepository
	SubscriptionRepo SubscriptionRepository
	PaymentRepo      PaymentRepository
}

func newRepositories(q dbtx) *Repositories {
	return &Repositories{
		MemberRepo:       &sqliteMemberRepository{q: q},
		SubscriptionRepo: &sqliteSubscriptionRepository{q: q},
		PaymentRepo:      &sqlitePaymentRepository{q: q},
	}
}

// Store owns the database handle and hands out repositories, either
// directly or bound to a single transaction.
type Store struct {
	db    *sqlx.DB
	repos *Repositories
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{
		db:    db,
		repos: newRepositories(db),
	}
}

func (s *Store) Repos() *Repositories {
	return s.repos
}

// WithTx runs fn against transaction-bound repositories. The whole
// scope commits or rolls back as one unit.
func (s *Store) WithTx(ctx context.Context, fn func(*Repositories) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(newRepositories(tx)); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
