package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lionfit/gym-management-backend/internal/repository"
)

func newMemberService(t *testing.T, trialDays int, now int64) (*memberService, *repository.Repositories) {
	t.Helper()

	_, repos, n := newTestStore(t)
	svc := NewMemberService(repos, trialDays, n).(*memberService)
	svc.now = func() int64 { return now }
	return svc, repos
}

func TestRegister_DefaultsTrialWindow(t *testing.T) {
	now := 100 * dayMillis
	svc, _ := newMemberService(t, 7, now)

	member, err := svc.Register(context.Background(), "Alice", "555-0100", 0)
	require.NoError(t, err)

	assert.NotZero(t, member.ID)
	assert.Equal(t, now, member.StartDate)
	assert.Equal(t, now+7*dayMillis, member.EndDate)
	assert.Equal(t, now, member.RegistrationDate)
	assert.True(t, member.IsActive)
}

func TestRegister_GeneratesCodeFromCharset(t *testing.T) {
	svc, _ := newMemberService(t, 7, 100*dayMillis)

	member, err := svc.Register(context.Background(), "Alice", "555-0100", 0)
	require.NoError(t, err)

	assert.Len(t, member.Code, codeLength)
	for _, c := range member.Code {
		assert.Contains(t, codeCharset, string(c))
	}
}

func TestRegister_CodesAreUnique(t *testing.T) {
	svc, _ := newMemberService(t, 7, 100*dayMillis)
	ctx := context.Background()

	seen := make(map[string]bool)
	names := []string{"Alice", "Bob", "Carol", "Dave", "Eve"}
	for _, name := range names {
		member, err := svc.Register(ctx, name, "555-0100", 0)
		require.NoError(t, err)
		assert.False(t, seen[member.Code], "duplicate code %s", member.Code)
		seen[member.Code] = true
	}
}

func TestRegister_RejectsBlankFields(t *testing.T) {
	svc, _ := newMemberService(t, 7, 100*dayMillis)
	ctx := context.Background()

	_, err := svc.Register(ctx, "   ", "555-0100", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, "Alice", "", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_RecomputesActiveFlagLive(t *testing.T) {
	now := 100 * dayMillis
	svc, repos := newMemberService(t, 7, now)

	// Stored flag says active but the end date has passed.
	insertMember(t, repos, "Alice", "AAA111", 0, now-dayMillis, true)
	// Stored flag says inactive but the end date is ahead.
	insertMember(t, repos, "Bob", "BBB222", 0, now+dayMillis, false)

	members, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.False(t, members[0].IsActive)
	assert.True(t, members[1].IsActive)
}

func TestGet_RecomputesActiveFlag(t *testing.T) {
	now := 100 * dayMillis
	svc, repos := newMemberService(t, 7, now)

	stale := insertMember(t, repos, "Alice", "AAA111", 0, now-dayMillis, true)

	member, err := svc.Get(context.Background(), stale.ID)
	require.NoError(t, err)
	assert.False(t, member.IsActive)
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := newMemberService(t, 7, 100*dayMillis)

	_, err := svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByCode(t *testing.T) {
	now := 100 * dayMillis
	svc, repos := newMemberService(t, 7, now)

	insertMember(t, repos, "Alice", "QK7F2M", 0, now+dayMillis, true)

	member, err := svc.GetByCode(context.Background(), "QK7F2M")
	require.NoError(t, err)
	assert.Equal(t, "Alice", member.Name)

	_, err = svc.GetByCode(context.Background(), "NOPE00")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_RejectsEndBeforeStart(t *testing.T) {
	now := 100 * dayMillis
	svc, repos := newMemberService(t, 7, now)

	member := insertMember(t, repos, "Alice", "AAA111", 0, now+dayMillis, true)
	member.StartDate = 5000
	member.EndDate = 4000

	_, err := svc.Update(context.Background(), member)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_MissingMemberNotFound(t *testing.T) {
	svc, _ := newMemberService(t, 7, 100*dayMillis)

	_, err := svc.Update(context.Background(), &repository.Member{ID: 404, Name: "Ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_LeavesPaymentsBehind(t *testing.T) {
	now := 100 * dayMillis
	svc, repos := newMemberService(t, 7, now)
	ctx := context.Background()

	member := insertMember(t, repos, "Alice", "AAA111", 0, now+dayMillis, true)
	require.NoError(t, repos.PaymentRepo.Insert(ctx, &repository.Payment{MemberID: member.ID, Date: now}))

	require.NoError(t, svc.Delete(ctx, member.ID))

	gone, err := repos.MemberRepo.FindByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// Payment history survives as orphans.
	payments, err := repos.PaymentRepo.FindByMemberID(ctx, member.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}
