package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/lionfit/gym-management-backend/internal/db"
	"github.com/lionfit/gym-management-backend/internal/repository"
)

func newTestStore(t *testing.T) (*repository.Store, *repository.Repositories, *notifier) {
	t.Helper()

	memDB, err := db.NewMemoryDB()
	require.NoError(t, err)
	t.Cleanup(func() { memDB.Close() })

	store := repository.NewStore(memDB)
	repos := store.Repos()
	n := &notifier{repos: repos, stats: NewStatsService(repos)}
	return store, repos, n
}

func insertMember(t *testing.T, repos *repository.Repositories, name, code string, subscriptionID, endDate int64, active bool) *repository.Member {
	t.Helper()

	m := &repository.Member{
		Name:             name,
		Code:             code,
		Contact:          "555-0100",
		SubscriptionID:   subscriptionID,
		StartDate:        1000,
		EndDate:          endDate,
		RegistrationDate: 1000,
		IsActive:         active,
	}
	require.NoError(t, repos.MemberRepo.Insert(context.Background(), m))
	return m
}

func insertPlan(t *testing.T, repos *repository.Repositories, typ, price string, start, end *int64) *repository.Subscription {
	t.Helper()

	s := &repository.Subscription{
		Type:      typ,
		Price:     decimal.RequireFromString(price),
		StartDate: start,
		EndDate:   end,
	}
	require.NoError(t, repos.SubscriptionRepo.Insert(context.Background(), s))
	return s
}

func int64Ptr(v int64) *int64 { return &v }
