package repository

import (
	"context"
	"database/sql"
)

// ============================================
// SQLite Subscription Repository
// ============================================

type sqliteSubscriptionRepository struct {
	q dbtx
}

func (r *sqliteSubscriptionRepository) Insert(ctx context.Context, subscription *Subscription) error {
	if subscription.ID == 0 {
		query := `
			INSERT INTO subscriptions (type, description, price, start_date, end_date)
			VALUES (?, ?, ?, ?, ?)
		`
		res, err := r.q.ExecContext(ctx, query,
			subscription.Type, subscription.Description, subscription.Price,
			subscription.StartDate, subscription.EndDate,
		)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		subscription.ID = id
		return nil
	}

	query := `
		INSERT OR REPLACE INTO subscriptions (id, type, description, price, start_date, end_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.q.ExecContext(ctx, query,
		subscription.ID, subscription.Type, subscription.Description, subscription.Price,
		subscription.StartDate, subscription.EndDate,
	)
	return err
}

func (r *sqliteSubscriptionRepository) Update(ctx context.Context, subscription *Subscription) error {
	query := `
		UPDATE subscriptions SET type = ?, description = ?, price = ?, start_date = ?, end_date = ?
		WHERE id = ?
	`
	_, err := r.q.ExecContext(ctx, query,
		subscription.Type, subscription.Description, subscription.Price,
		subscription.StartDate, subscription.EndDate, subscription.ID,
	)
	return err
}

// Delete does not check for members still referencing the plan;
// orphaned references are accepted.
func (r *sqliteSubscriptionRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM subscriptions WHERE id = ?`
	_, err := r.q.ExecContext(ctx, query, id)
	return err
}

func (r *sqliteSubscriptionRepository) FindByID(ctx context.Context, id int64) (*Subscription, error) {
	query := `
		SELECT id, type, description, price, start_date, end_date
		FROM subscriptions WHERE id = ?
	`
	subscription := &Subscription{}
	err := r.q.GetContext(ctx, subscription, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return subscription, nil
}

func (r *sqliteSubscriptionRepository) FindAll(ctx context.Context) ([]*Subscription, error) {
	query := `
		SELECT id, type, description, price, start_date, end_date
		FROM subscriptions ORDER BY end_date DESC, id ASC
	`
	var subscriptions []*Subscription
	if err := r.q.SelectContext(ctx, &subscriptions, query); err != nil {
		return nil, err
	}
	return subscriptions, nil
}

// CountExpired only considers plans that carry an end date; open-ended
// plans never expire.
func (r *sqliteSubscriptionRepository) CountExpired(ctx context.Context, now int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM subscriptions WHERE end_date IS NOT NULL AND end_date <= ?`
	err := r.q.GetContext(ctx, &count, query, now)
	return count, err
}
