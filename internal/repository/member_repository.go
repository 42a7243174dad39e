package repository

import (
	"context"
	"database/sql"
)

// ============================================
// SQLite Member Repository
// ============================================

type sqliteMemberRepository struct {
	q dbtx
}

// Insert upserts by primary key: a member carrying id 0 gets a fresh
// generated id, a member carrying an existing id replaces that row.
// Last write wins, duplicates are not an error.
func (r *sqliteMemberRepository) Insert(ctx context.Context, member *Member) error {
	if member.ID == 0 {
		query := `
			INSERT INTO members (name, code, contact, subscription_id, start_date, end_date, registration_date, is_active)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`
		res, err := r.q.ExecContext(ctx, query,
			member.Name, member.Code, member.Contact, member.SubscriptionID,
			member.StartDate, member.EndDate, member.RegistrationDate, member.IsActive,
		)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		member.ID = id
		return nil
	}

	query := `
		INSERT OR REPLACE INTO members (id, name, code, contact, subscription_id, start_date, end_date, registration_date, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.q.ExecContext(ctx, query,
		member.ID, member.Name, member.Code, member.Contact, member.SubscriptionID,
		member.StartDate, member.EndDate, member.RegistrationDate, member.IsActive,
	)
	return err
}

// Update replaces the full record. A missing id is a silent no-op,
// callers are expected to have fetched first.
func (r *sqliteMemberRepository) Update(ctx context.Context, member *Member) error {
	query := `
		UPDATE members SET name = ?, code = ?, contact = ?, subscription_id = ?,
			start_date = ?, end_date = ?, registration_date = ?, is_active = ?
		WHERE id = ?
	`
	_, err := r.q.ExecContext(ctx, query,
		member.Name, member.Code, member.Contact, member.SubscriptionID,
		member.StartDate, member.EndDate, member.RegistrationDate, member.IsActive,
		member.ID,
	)
	return err
}

func (r *sqliteMemberRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM members WHERE id = ?`
	_, err := r.q.ExecContext(ctx, query, id)
	return err
}

func (r *sqliteMemberRepository) FindByID(ctx context.Context, id int64) (*Member, error) {
	query := `
		SELECT id, name, code, contact, subscription_id, start_date, end_date, registration_date, is_active
		FROM members WHERE id = ?
	`
	member := &Member{}
	err := r.q.GetContext(ctx, member, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (r *sqliteMemberRepository) FindByCode(ctx context.Context, code string) (*Member, error) {
	query := `
		SELECT id, name, code, contact, subscription_id, start_date, end_date, registration_date, is_active
		FROM members WHERE code = ?
	`
	member := &Member{}
	err := r.q.GetContext(ctx, member, query, code)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return member, nil
}

// FindBySubscriptionID is the legacy one-to-one uniqueness check; the
// current schema allows many members per plan, so this returns the
// first match only.
func (r *sqliteMemberRepository) FindBySubscriptionID(ctx context.Context, subscriptionID int64) (*Member, error) {
	query := `
		SELECT id, name, code, contact, subscription_id, start_date, end_date, registration_date, is_active
		FROM members WHERE subscription_id = ?
		ORDER BY id LIMIT 1
	`
	member := &Member{}
	err := r.q.GetContext(ctx, member, query, subscriptionID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (r *sqliteMemberRepository) FindAll(ctx context.Context) ([]*Member, error) {
	query := `
		SELECT id, name, code, contact, subscription_id, start_date, end_date, registration_date, is_active
		FROM members ORDER BY name ASC, id ASC
	`
	var members []*Member
	if err := r.q.SelectContext(ctx, &members, query); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *sqliteMemberRepository) CountTotal(ctx context.Context) (int, error) {
	var count int
	err := r.q.GetContext(ctx, &count, `SELECT COUNT(*) FROM members`)
	return count, err
}

// CountActive counts the cached flag, not the live predicate. It can
// lag reality between renewals and sweeps.
func (r *sqliteMemberRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.q.GetContext(ctx, &count, `SELECT COUNT(*) FROM members WHERE is_active = 1`)
	return count, err
}

func (r *sqliteMemberRepository) CountInactive(ctx context.Context, now int64) (int, error) {
	var count int
	err := r.q.GetContext(ctx, &count, `SELECT COUNT(*) FROM members WHERE end_date <= ?`, now)
	return count, err
}

// RefreshActiveFlags repersists is_active from the live predicate for
// every member and reports how many rows changed.
func (r *sqliteMemberRepository) RefreshActiveFlags(ctx context.Context, now int64) (int64, error) {
	query := `UPDATE members SET is_active = (end_date > ?) WHERE is_active != (end_date > ?)`
	res, err := r.q.ExecContext(ctx, query, now, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
