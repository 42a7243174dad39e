package repository

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
)

// ============================================
// SQLite Payment Repository
// ============================================

type sqlitePaymentRepository struct {
	q dbtx
}

func (r *sqlitePaymentRepository) Insert(ctx context.Context, payment *Payment) error {
	if payment.ID == 0 {
		query := `INSERT INTO payments (member_id, amount, date) VALUES (?, ?, ?)`
		res, err := r.q.ExecContext(ctx, query, payment.MemberID, payment.Amount, payment.Date)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		payment.ID = id
		return nil
	}

	query := `INSERT OR REPLACE INTO payments (id, member_id, amount, date) VALUES (?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query, payment.ID, payment.MemberID, payment.Amount, payment.Date)
	return err
}

// Delete removes the record only. It never rolls back the renewal the
// payment may have triggered.
func (r *sqlitePaymentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM payments WHERE id = ?`
	_, err := r.q.ExecContext(ctx, query, id)
	return err
}

func (r *sqlitePaymentRepository) FindByID(ctx context.Context, id int64) (*Payment, error) {
	query := `SELECT id, member_id, amount, date FROM payments WHERE id = ?`
	payment := &Payment{}
	err := r.q.GetContext(ctx, payment, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *sqlitePaymentRepository) FindAll(ctx context.Context) ([]*Payment, error) {
	query := `SELECT id, member_id, amount, date FROM payments ORDER BY date DESC, id DESC`
	var payments []*Payment
	if err := r.q.SelectContext(ctx, &payments, query); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *sqlitePaymentRepository) FindByMemberID(ctx context.Context, memberID int64) ([]*Payment, error) {
	query := `SELECT id, member_id, amount, date FROM payments WHERE member_id = ? ORDER BY date DESC, id DESC`
	var payments []*Payment
	if err := r.q.SelectContext(ctx, &payments, query, memberID); err != nil {
		return nil, err
	}
	return payments, nil
}

// SumAmountInRange sums payments with date in [start, end]. Amounts are
// summed as decimals in Go so currency never rides through floats.
func (r *sqlitePaymentRepository) SumAmountInRange(ctx context.Context, start, end int64) (decimal.Decimal, error) {
	query := `SELECT amount FROM payments WHERE date >= ? AND date <= ?`
	var amounts []decimal.Decimal
	if err := r.q.SelectContext(ctx, &amounts, query, start, end); err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total, nil
}
