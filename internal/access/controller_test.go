package access

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmlaogao/portal/internal/domain"
	"github.com/pmlaogao/portal/internal/logger"
	"github.com/pmlaogao/portal/internal/quota"
	"github.com/pmlaogao/portal/internal/storage"
	"github.com/pmlaogao/portal/internal/store"
)

type fixture struct {
	store      *store.Store
	controller *Controller
	now        time.Time
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()

	log := logger.New("error", false)
	kv := storage.NewMemoryKV()
	s := store.New(kv, log)
	clock := func() time.Time { return now }
	counter := quota.New(kv, clock)

	return &fixture{
		store:      s,
		controller: NewController(s.Members, counter, DefaultGuestQuota, clock, log),
		now:        now,
	}
}

func seedMember(t *testing.T, f *fixture, m domain.Member) {
	t.Helper()
	require.NoError(t, f.store.Members.ReplaceAll(context.Background(), []domain.Member{m}))
}

func TestEvaluateMemberWithinWindow(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		startDate string
		endDate   string
		wantAllow bool
	}{
		{
			name:      "inside window",
			now:       time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			startDate: "2026-01-01 00:00:00",
			endDate:   "2999-01-01 00:00:00",
			wantAllow: true,
		},
		{
			name:      "before window",
			now:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			startDate: "2026-01-01 00:00:00",
			endDate:   "2999-01-01 00:00:00",
			wantAllow: false,
		},
		{
			name:      "after window",
			now:       time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
			startDate: "2026-01-01 00:00:00",
			endDate:   "2026-12-31 23:59:59",
			wantAllow: false,
		},
		{
			name:      "unparseable start date denies",
			now:       time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			startDate: "not a date",
			endDate:   "2999-01-01 00:00:00",
			wantAllow: false,
		},
		{
			name:      "unparseable end date denies",
			now:       time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			startDate: "2026-01-01 00:00:00",
			endDate:   "whenever",
			wantAllow: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.now)
			seedMember(t, f, domain.Member{
				Username:  "alice",
				Password:  "pw",
				StartDate: tt.startDate,
				EndDate:   tt.endDate,
			})

			d, err := f.controller.Evaluate(context.Background(), domain.Identity{Username: "alice", Role: domain.RoleMember})
			require.NoError(t, err)
			assert.Equal(t, tt.wantAllow, d.Allowed)
			if !tt.wantAllow {
				assert.Equal(t, domain.DenyWindowExpired, d.Reason)
			}
		})
	}
}

func TestEvaluateUnknownMember(t *testing.T) {
	f := newFixture(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	d, err := f.controller.Evaluate(context.Background(), domain.Identity{Username: "ghost", Role: domain.RoleMember})
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, domain.DenyNotFound, d.Reason)
	assert.True(t, d.RequireLogin)
}

func TestEvaluateAdminBypassesWindow(t *testing.T) {
	f := newFixture(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	// No member row at all: the admin role alone grants access.
	d, err := f.controller.Evaluate(context.Background(), domain.Identity{Username: "pmlaogao", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestEvaluateGuestQuotaSequence(t *testing.T) {
	f := newFixture(t, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	guest := domain.Guest("1.2.3.4")

	// Exactly five admits, then the sixth call is the first denial.
	for i := 1; i <= 5; i++ {
		d, err := f.controller.Evaluate(context.Background(), guest)
		require.NoError(t, err)
		assert.True(t, d.Allowed, "call %d should admit", i)
		assert.Equal(t, i, d.GuestCount)
	}

	d, err := f.controller.Evaluate(context.Background(), guest)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, domain.DenyQuotaExceeded, d.Reason)
	assert.True(t, d.RequireLogin)
	assert.Equal(t, 6, d.GuestCount)
}

func TestEvaluateGuestQuotaPerIdentity(t *testing.T) {
	f := newFixture(t, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	for i := 0; i < 6; i++ {
		_, err := f.controller.Evaluate(context.Background(), domain.Guest("1.2.3.4"))
		require.NoError(t, err)
	}

	d, err := f.controller.Evaluate(context.Background(), domain.Guest("5.6.7.8"))
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, d.GuestCount)
}
